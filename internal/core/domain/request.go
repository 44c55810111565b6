package domain

// Request describes one pipeline invocation. It is constructed once
// from the command line and never mutated; the single run owns it.
type Request struct {
	// Mode selects the encode or decode pipeline.
	Mode Mode

	// InputPath is the file the pipeline reads: raw bytes when encoding,
	// Base64 text when decoding.
	InputPath string

	// OutputPath is the file the pipeline writes: Base64 text when
	// encoding, raw bytes when decoding.
	OutputPath string

	// Compress applies the compression stage before Base64 encoding, or
	// the decompression stage after Base64 decoding. The flag must match
	// on both sides of a round trip; the on-disk format carries no
	// marker to detect a mismatch.
	Compress bool
}
