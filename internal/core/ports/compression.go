package ports

// Compressor defines the interface for the compression stage.
// This allows us to swap compression algorithms without changing
// pipeline logic.
type Compressor interface {
	// Compress produces a self-contained compressed stream such that
	// Decompress(Compress(data)) == data for all inputs, including empty.
	Compress(data []byte) ([]byte, error)

	// Decompress restores original data from a stream produced by the
	// matching compressor format. Fails on a malformed container.
	Decompress(data []byte) ([]byte, error)

	// Close cleans up compressor resources.
	Close() error
}
