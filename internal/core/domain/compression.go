package domain

// CompressionOptions configures the compression adapter. The compression
// preset itself is fixed; only the internal buffering is tunable.
type CompressionOptions struct {
	// ChunkSize bounds the adapter-internal copy buffer used to stream
	// payloads through the compressor. It caps adapter memory overhead
	// independent of payload size; the surrounding pipeline still holds
	// the full payload in memory. Default is 256 bytes if set to 0.
	ChunkSize uint32
}
