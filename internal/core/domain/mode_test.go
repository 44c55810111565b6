package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrzabott/Base64Tool/pkg/errors"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		token string
		want  Mode
	}{
		{"encode", ModeEncode},
		{"decode", ModeDecode},
		{"ENCODE", ModeEncode},
		{"Decode", ModeDecode},
		{"eNcOdE", ModeEncode},
	}

	for _, tt := range tests {
		mode, err := ParseMode(tt.token)
		require.NoError(t, err, "token %q", tt.token)
		require.Equal(t, tt.want, mode, "token %q", tt.token)
	}
}

func TestParseModeInvalid(t *testing.T) {
	_, err := ParseMode("transform")
	require.Error(t, err)
	require.ErrorContains(t, err, "transform")

	require.True(t, errors.IsValidationError(err))
	ve := errors.AsValidationError(err)
	require.NotNil(t, ve)
	require.Equal(t, "mode", ve.Field)
	require.Equal(t, "transform", ve.Value)
}

func TestParseModeEmpty(t *testing.T) {
	_, err := ParseMode("")
	require.Error(t, err)
	require.True(t, errors.IsValidationError(err))
}

func TestModeString(t *testing.T) {
	require.Equal(t, "encode", ModeEncode.String())
	require.Equal(t, "decode", ModeDecode.String())
	require.Equal(t, "unknown", Mode(0).String())
}
