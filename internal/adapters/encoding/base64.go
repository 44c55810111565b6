// Package encoding provides the reversible text encoding stage of the
// pipeline using the standard Base64 alphabet with padding.
package encoding

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jrzabott/Base64Tool/pkg/errors"
)

// Base64Codec maps raw bytes to printable ASCII text and back. Encoding
// is deterministic and never wraps lines. Decoding tolerates embedded
// line breaks: this tool never emits them, but textual storage or
// transfer of the encoded file may introduce them.
type Base64Codec struct{}

func NewBase64Codec() *Base64Codec {
	return &Base64Codec{}
}

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// Encode returns the Base64 encoding of data.
func (c *Base64Codec) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode returns the bytes represented by the Base64 string text,
// stripping line breaks first.
func (c *Base64Codec) Decode(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(lineBreaks.Replace(text))
	if err != nil {
		return nil, errors.New(errors.ErrorEncoding, "decode", fmt.Errorf("malformed base64 input: %w", err))
	}
	return data, nil
}
