package main

import (
	"os"

	"github.com/jrzabott/Base64Tool/internal/cli"
)

// Set at release time via ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
