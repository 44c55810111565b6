package domain

import (
	"fmt"
	"strings"

	"github.com/jrzabott/Base64Tool/pkg/errors"
)

// Mode selects the direction of a pipeline run. It is chosen once per
// invocation and never changes afterwards.
type Mode int

const (
	// ModeEncode converts raw bytes to Base64 text.
	ModeEncode Mode = iota + 1

	// ModeDecode converts Base64 text back to raw bytes.
	ModeDecode
)

func (m Mode) String() string {
	switch m {
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// ParseMode matches a mode token case-insensitively against the two
// known modes. Any other token yields a validation error carrying the
// offending text so the caller can show it back to the user.
func ParseMode(text string) (Mode, error) {
	switch strings.ToLower(text) {
	case "encode":
		return ModeEncode, nil
	case "decode":
		return ModeDecode, nil
	default:
		return 0, errors.NewValidationError("mode", text, fmt.Errorf("invalid mode: %s", text))
	}
}
