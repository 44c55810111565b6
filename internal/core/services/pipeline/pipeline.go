// Package pipeline orchestrates one encode or decode run: read the
// payload, apply the optional compression stage and the Base64 stage in
// order, write the result. Stages execute strictly in sequence and no
// two runs share mutable state.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jrzabott/Base64Tool/internal/core/domain"
	"github.com/jrzabott/Base64Tool/internal/core/ports"
	"github.com/jrzabott/Base64Tool/pkg/errors"
	"github.com/jrzabott/Base64Tool/pkg/fs"
	"github.com/jrzabott/Base64Tool/pkg/system"
)

// Service runs the conversion pipeline. The compression stage sits
// behind ports.Compressor and the text encoding behind ports.Codec, so
// the orchestration never touches either format directly.
type Service struct {
	compressor ports.Compressor
	codec      ports.Codec
	log        *zap.SugaredLogger
}

func New(compressor ports.Compressor, codec ports.Codec, log *zap.SugaredLogger) (*Service, error) {
	if err := validateDependencies(compressor, codec); err != nil {
		return nil, err
	}

	svc := Service{compressor: compressor, codec: codec, log: log}
	prepareDefaults(&svc)

	return &svc, nil
}

// Run executes the pipeline matching the request mode off the calling
// path and joins it before returning. It logs a status line at start
// and on completion with the elapsed wall-clock time; the returned
// error is the run's terminal status.
func (s *Service) Run(ctx context.Context, req *domain.Request) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	start := time.Now()
	switch req.Mode {
	case domain.ModeDecode:
		s.log.Infof("Decoding Base64 file: %s", req.InputPath)
	default:
		s.log.Infof("Encoding file: %s", req.InputPath)
	}

	err := system.RunWithContext(ctx, func(ctx context.Context) error {
		if req.Mode == domain.ModeDecode {
			return s.Decode(ctx, req)
		}
		return s.Encode(ctx, req)
	})

	elapsed := time.Since(start)
	if err != nil {
		s.log.Errorw("process failed",
			"mode", req.Mode,
			"input", req.InputPath,
			"error", err,
			"elapsed", elapsed.Round(time.Millisecond),
		)
		return err
	}

	s.log.Infof("Process completed in %.2f seconds.", elapsed.Seconds())
	return nil
}

// Encode loads the input file as raw bytes, compresses them when
// requested, Base64-encodes the result and writes the text output.
func (s *Service) Encode(ctx context.Context, req *domain.Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := fs.ReadFile(req.InputPath)
	if err != nil {
		return errors.New(errors.ErrorStorage, "read input", err)
	}

	if req.Compress {
		if payload, err = s.compressor.Compress(payload); err != nil {
			return err
		}
	}

	text := s.codec.Encode(payload)
	if err := fs.WriteString(req.OutputPath, text); err != nil {
		return errors.New(errors.ErrorStorage, "write output", err)
	}

	s.log.Infof("File written successfully to: %s", req.OutputPath)
	return nil
}

// Decode reads the Base64 text file, recovers the raw bytes,
// decompresses them when requested and writes the binary output.
func (s *Service) Decode(ctx context.Context, req *domain.Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := fs.ReadString(req.InputPath)
	if err != nil {
		return errors.New(errors.ErrorStorage, "read input", err)
	}

	payload, err := s.codec.Decode(text)
	if err != nil {
		return err
	}

	if req.Compress {
		if payload, err = s.compressor.Decompress(payload); err != nil {
			return err
		}
	}

	if err := fs.WriteFile(req.OutputPath, payload); err != nil {
		return errors.New(errors.ErrorStorage, "write output", err)
	}

	s.log.Infof("File written successfully to: %s", req.OutputPath)
	return nil
}
