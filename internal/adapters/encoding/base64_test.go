package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrzabott/Base64Tool/pkg/errors"
)

func TestEncodeKnownVector(t *testing.T) {
	codec := NewBase64Codec()
	require.Equal(t, "SEVMTE9XT1JMRA==", codec.Encode([]byte("HELLOWORLD")))
}

func TestRoundTrip(t *testing.T) {
	codec := NewBase64Codec()

	inputs := [][]byte{
		{},
		{0x00},
		{0x01, 0x02, 0x03},
		[]byte("HELLOWORLD"),
		{0xff, 0xfe, 0xfd, 0x00, 0x80},
	}

	for _, input := range inputs {
		decoded, err := codec.Decode(codec.Encode(input))
		require.NoError(t, err)
		require.Equal(t, input, decoded)
	}
}

func TestEncodeNeverWrapsLines(t *testing.T) {
	codec := NewBase64Codec()

	text := codec.Encode(make([]byte, 4096))
	require.NotContains(t, text, "\n")
	require.NotContains(t, text, "\r")
}

func TestDecodeToleratesLineBreaks(t *testing.T) {
	codec := NewBase64Codec()

	decoded, err := codec.Decode("SEVMTE9X\nT1JMRA==\n")
	require.NoError(t, err)
	require.Equal(t, []byte("HELLOWORLD"), decoded)

	decoded, err = codec.Decode("SEVMTE9X\r\nT1JMRA==\r\n")
	require.NoError(t, err)
	require.Equal(t, []byte("HELLOWORLD"), decoded)
}

func TestDecodeInvalidInput(t *testing.T) {
	codec := NewBase64Codec()

	tests := []string{
		"\x01",
		"not valid base64!!",
		"SEVMTE9XT1JMRA=", // bad padding
	}

	for _, text := range tests {
		_, err := codec.Decode(text)
		require.Error(t, err, "input %q", text)
		require.True(t, errors.Is(err, errors.ErrorEncoding), "input %q", text)
	}
}
