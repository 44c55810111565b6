package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jrzabott/Base64Tool/config"
	"github.com/jrzabott/Base64Tool/internal/adapters/compression"
	"github.com/jrzabott/Base64Tool/internal/adapters/encoding"
	"github.com/jrzabott/Base64Tool/internal/core/domain"
	"github.com/jrzabott/Base64Tool/internal/core/services/pipeline"
	"github.com/jrzabott/Base64Tool/pkg/logger"
)

// app carries the state shared between commands: flag values and the
// lazily built pipeline service.
type app struct {
	cfgFile  string
	compress bool

	cfg     *config.Config
	log     *zap.SugaredLogger
	service *pipeline.Service
}

func newApp() *app {
	return &app{}
}

// init loads configuration and builds the logger, adapters and pipeline
// service. Runs once per invocation from PersistentPreRunE.
func (a *app) init(cmd *cobra.Command) error {
	if a.service != nil {
		return nil
	}

	cfg := config.DefaultConfig()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	a.cfg = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	a.log = logger.NewWithLevel("b64tool", level, cfg.Log.Development)

	compressor, err := compression.NewXZCompression(compression.Options{
		ChunkSize: cfg.Pipeline.ChunkSize,
	})
	if err != nil {
		return err
	}

	service, err := pipeline.New(compressor, encoding.NewBase64Codec(), a.log)
	if err != nil {
		return err
	}
	a.service = service

	return nil
}

// run builds the immutable request for one pipeline invocation and
// executes it.
func (a *app) run(ctx context.Context, mode domain.Mode, input, output string) error {
	return a.service.Run(ctx, &domain.Request{
		Mode:       mode,
		InputPath:  input,
		OutputPath: output,
		Compress:   a.compress,
	})
}

// runPositional handles invocations that bypass the subcommands, in the
// original positional grammar: mode token first (any letter case), then
// input and output paths. Fewer than three tokens prints usage only and
// performs no file I/O.
func (a *app) runPositional(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		return cmd.Usage()
	}

	mode, err := domain.ParseMode(args[0])
	if err != nil {
		_ = cmd.Usage()
		return err
	}

	return a.run(cmd.Context(), mode, args[1], args[2])
}
