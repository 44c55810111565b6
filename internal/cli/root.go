// Package cli wires the command line surface to the pipeline service.
package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute is the single entry point for the CLI.
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(version)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the root command with the encode and decode
// subcommands attached.
func NewRootCommand(version string) *cobra.Command {
	a := newApp()

	root := &cobra.Command{
		Use:     "b64tool",
		Short:   "Convert files to Base64 text and back, with optional XZ compression",
		Version: version,
		Example: `  b64tool encode <input_file_path> <output_base64_file> [--compress]
  b64tool decode <input_base64_file> <output_file_path> [--compress]`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		// Tokens cobra does not match as a subcommand fall through here,
		// which keeps the original positional grammar working, including
		// upper-case mode names.
		RunE: a.runPositional,
	}

	// The original accepted --compress in any letter case.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (built-in defaults when omitted)")
	root.PersistentFlags().BoolVar(&a.compress, "compress", false, "compress before encoding / decompress after decoding")

	root.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
	)

	return root
}
