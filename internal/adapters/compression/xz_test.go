package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrzabott/Base64Tool/internal/core/domain"
	"github.com/jrzabott/Base64Tool/pkg/errors"
)

// Magic bytes opening every .xz container.
var xzHeaderMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

func newTestCompressor(t *testing.T) *XZCompression {
	t.Helper()

	c, err := NewXZCompression(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, c.Close()) })

	return c
}

func TestRoundTrip(t *testing.T) {
	c := newTestCompressor(t)

	inputs := [][]byte{
		{},
		{0x00},
		[]byte("HELLOWORLD"),
		bytes.Repeat([]byte("abcdefgh"), 1000),
		{0xff, 0x00, 0x80, 0x7f},
	}

	for _, input := range inputs {
		compressed, err := c.Compress(input)
		require.NoError(t, err)

		decompressed, err := c.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, input, decompressed)
	}
}

func TestCompressProducesXZContainer(t *testing.T) {
	c := newTestCompressor(t)

	compressed, err := c.Compress([]byte("HELLOWORLD"))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(compressed, xzHeaderMagic))
}

func TestCompressReducesRepetitiveInput(t *testing.T) {
	c := newTestCompressor(t)

	input := bytes.Repeat([]byte{'A'}, 1<<20)
	compressed, err := c.Compress(input)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(input))
}

func TestDecompressCorruptStream(t *testing.T) {
	c := newTestCompressor(t)

	_, err := c.Decompress([]byte("this is not an xz stream"))
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrorCompression))
}

func TestDecompressTruncatedStream(t *testing.T) {
	c := newTestCompressor(t)

	compressed, err := c.Compress(bytes.Repeat([]byte("payload"), 100))
	require.NoError(t, err)

	_, err = c.Decompress(compressed[:len(compressed)/2])
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrorCompression))
}

func TestChunkedCopyMatchesPayloadsLargerThanChunk(t *testing.T) {
	// Chunk smaller than the payload forces multiple copy iterations.
	c, err := NewXZCompression(Options{ChunkSize: 16})
	require.NoError(t, err)

	input := bytes.Repeat([]byte("0123456789"), 512)
	compressed, err := c.Compress(input)
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, input, decompressed)
}

func TestNewXZCompressionDefaultsChunkSize(t *testing.T) {
	c, err := NewXZCompression(Options{})
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestNewXZCompressionRejectsOversizedChunk(t *testing.T) {
	_, err := NewXZCompression(Options{ChunkSize: MaxChunkSize + 1})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(DefaultOptions()))
	require.Error(t, Validate(&domain.CompressionOptions{ChunkSize: 0}))
	require.Error(t, Validate(&domain.CompressionOptions{ChunkSize: MaxChunkSize + 1}))
}
