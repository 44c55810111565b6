package compression

import (
	"fmt"

	"github.com/jrzabott/Base64Tool/internal/core/domain"
)

// Chunk size bounds for the adapter-internal copy buffer.
const (
	DefaultChunkSize uint32 = 256
	MaxChunkSize     uint32 = 1 << 20
)

// Returns CompressionOptions initialized with the default chunk size.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{ChunkSize: DefaultChunkSize}
}

// Checks if the compression options are valid and returns an error if
// any option is outside acceptable bounds.
func Validate(input *domain.CompressionOptions) error {
	if input.ChunkSize == 0 {
		return fmt.Errorf("chunk size must be greater than 0, got %d", input.ChunkSize)
	}

	if input.ChunkSize > MaxChunkSize {
		return fmt.Errorf("chunk size must be at most %d, got %d", MaxChunkSize, input.ChunkSize)
	}

	return nil
}
