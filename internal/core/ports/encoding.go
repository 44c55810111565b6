package ports

// Codec defines the interface for the reversible text encoding stage.
type Codec interface {
	// Encode maps raw bytes to printable text. Deterministic, no line
	// wrapping.
	Encode(data []byte) string

	// Decode maps printable text back to raw bytes. Fails on characters
	// outside the encoding alphabet or invalid length/padding.
	Decode(text string) ([]byte, error)
}
