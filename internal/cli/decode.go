package cli

import (
	"github.com/spf13/cobra"

	"github.com/jrzabott/Base64Tool/internal/core/domain"
)

// newDecodeCommand returns the "b64tool decode" command.
func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode INPUT OUTPUT",
		Short: "Decode a Base64 text file back to raw bytes",
		Long:  "Decode a Base64 text file back to raw bytes. Pass --compress when the file was encoded with it, so the payload is decompressed after decoding.",
		Example: `  b64tool decode report.b64 report.pdf
  b64tool decode report.b64 report.pdf --compress`,
		// Too few paths prints usage without error classification, like
		// the top-level grammar. Extra tokens are ignored.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return cmd.Usage()
			}
			return a.run(cmd.Context(), domain.ModeDecode, args[0], args[1])
		},
	}
}
