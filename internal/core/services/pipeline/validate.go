package pipeline

import (
	"fmt"

	"github.com/jrzabott/Base64Tool/internal/core/domain"
	"github.com/jrzabott/Base64Tool/internal/core/ports"
	"github.com/jrzabott/Base64Tool/pkg/errors"
)

func validateDependencies(compressor ports.Compressor, codec ports.Codec) error {
	if compressor == nil {
		return errors.NewValidationError("compressor", nil, fmt.Errorf("compressor is required"))
	}

	if codec == nil {
		return errors.NewValidationError("codec", nil, fmt.Errorf("codec is required"))
	}

	return nil
}

func validateRequest(req *domain.Request) error {
	if req == nil {
		return errors.NewValidationError("request", nil, fmt.Errorf("request is required"))
	}

	if req.Mode != domain.ModeEncode && req.Mode != domain.ModeDecode {
		return errors.NewValidationError("mode", req.Mode, fmt.Errorf("invalid mode: %v", req.Mode))
	}

	if req.InputPath == "" {
		return errors.NewValidationError("inputPath", req.InputPath, fmt.Errorf("input path is required"))
	}

	if req.OutputPath == "" {
		return errors.NewValidationError("outputPath", req.OutputPath, fmt.Errorf("output path is required"))
	}

	return nil
}
