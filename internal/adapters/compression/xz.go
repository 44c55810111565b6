// Package compression provides the compression stage of the pipeline
// using the XZ/LZMA2 container format. The streams it produces are
// standard .xz streams with the usual magic header, block structure and
// integrity footer, interchangeable with files handled by the xz
// command-line tools.
package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/jrzabott/Base64Tool/internal/core/domain"
	"github.com/jrzabott/Base64Tool/pkg/errors"
	"github.com/jrzabott/Base64Tool/pkg/pool"
)

type Options struct {
	ChunkSize uint32
}

// XZCompression implements ports.Compressor on top of the xz container.
// Payloads stream through fixed-size pooled chunks, so
// adapter-internal memory stays bounded regardless of payload size. The
// writer preset is the library default; no configurability is exposed.
//
// Instances are safe for concurrent use: every call owns its writer,
// reader and output buffer, and the chunk pool is thread-safe.
type XZCompression struct {
	chunks *pool.ChunkPool
}

// NewXZCompression creates an xz compression instance.
//
// Returns an error if the chunk size is outside acceptable bounds.
func NewXZCompression(opts Options) (*XZCompression, error) {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}

	if err := Validate(&domain.CompressionOptions{ChunkSize: opts.ChunkSize}); err != nil {
		return nil, err
	}

	return &XZCompression{chunks: pool.NewChunkPool(int(opts.ChunkSize))}, nil
}

// Compress produces a self-contained .xz stream for data. The empty
// input yields a valid stream holding an empty payload, so round trips
// hold for every byte sequence.
func (x *XZCompression) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer

	w, err := xz.NewWriter(&out)
	if err != nil {
		return nil, errors.New(errors.ErrorCompression, "compress", fmt.Errorf("failed to create xz writer: %w", err))
	}

	chunk := x.chunks.Get()
	defer x.chunks.Put(chunk)

	// bytes.Reader implements WriterTo, which would make CopyBuffer
	// bypass the chunk; the wrapper keeps the copy bounded.
	if _, err := io.CopyBuffer(w, onlyReader{bytes.NewReader(data)}, chunk); err != nil {
		w.Close()
		return nil, errors.New(errors.ErrorCompression, "compress", err)
	}

	// Close flushes the final block and writes the stream footer.
	if err := w.Close(); err != nil {
		return nil, errors.New(errors.ErrorCompression, "compress", err)
	}

	return out.Bytes(), nil
}

// Decompress restores the original data from an .xz stream.
//
// Returns an error if data is not a well-formed stream of the matching
// container format.
func (x *XZCompression) Decompress(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.New(errors.ErrorCompression, "decompress", fmt.Errorf("corrupt xz stream: %w", err))
	}

	chunk := x.chunks.Get()
	defer x.chunks.Put(chunk)

	var out bytes.Buffer
	if _, err := io.CopyBuffer(&out, onlyReader{r}, chunk); err != nil {
		return nil, errors.New(errors.ErrorCompression, "decompress", fmt.Errorf("corrupt xz stream: %w", err))
	}

	return out.Bytes(), nil
}

// Close releases adapter resources. The xz writer and reader live per
// call, so there is nothing long-lived to tear down.
func (x *XZCompression) Close() error {
	return nil
}

// onlyReader hides any WriterTo/ReaderFrom fast path from io.CopyBuffer.
type onlyReader struct {
	io.Reader
}
