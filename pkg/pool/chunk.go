package pool

import "sync"

// ChunkPool manages a pool of fixed-size byte slices used as copy
// buffers for streaming transforms.
type ChunkPool struct {
	size int       // Size of each chunk.
	pool sync.Pool // Thread-safe pool of chunks.
}

// NewChunkPool creates a pool handing out chunks of the given size.
func NewChunkPool(size int) *ChunkPool {
	return &ChunkPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				chunk := make([]byte, size)
				return &chunk
			},
		},
	}
}

// Get retrieves a chunk from the pool.
func (cp *ChunkPool) Get() []byte {
	return *cp.pool.Get().(*[]byte)
}

// Put returns a chunk to the pool.
func (cp *ChunkPool) Put(chunk []byte) {
	// Don't pool chunks that no longer match the pool size.
	if cap(chunk) != cp.size {
		return
	}

	chunk = chunk[:cp.size]
	cp.pool.Put(&chunk)
}

// Size returns the size of the chunks handed out by the pool.
func (cp *ChunkPool) Size() int {
	return cp.size
}
