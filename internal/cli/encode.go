package cli

import (
	"github.com/spf13/cobra"

	"github.com/jrzabott/Base64Tool/internal/core/domain"
)

// newEncodeCommand returns the "b64tool encode" command.
func newEncodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode INPUT OUTPUT",
		Short: "Encode a file to Base64 text",
		Long:  "Encode a file to Base64 text. With --compress, the payload is passed through the XZ compressor before encoding.",
		Example: `  b64tool encode report.pdf report.b64
  b64tool encode report.pdf report.b64 --compress`,
		// Too few paths prints usage without error classification, like
		// the top-level grammar. Extra tokens are ignored.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return cmd.Usage()
			}
			return a.run(cmd.Context(), domain.ModeEncode, args[0], args[1])
		},
	}
}
