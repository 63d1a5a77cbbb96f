// Package pool provides reusable byte buffers for block building.
package pool

import (
	"io"
	"sync"
)

// Block build buffers start at the typical block target size and are
// dropped from the pool once they outgrow the retention threshold, so a
// single oversized block cannot pin memory forever.
const (
	BlockBufferDefaultSize  = 4 * 1024
	BlockBufferMaxRetention = 128 * 1024
)

// ByteBuffer is an appendable byte buffer with an exported backing
// slice. Callers append to B directly or through MustWrite; the helper
// methods exist for the operations plain append does not cover.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the specified initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written to the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer while keeping its allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Truncate shortens the buffer to n bytes.
// Panics if n is negative or beyond the current length.
func (bb *ByteBuffer) Truncate(n int) {
	if n < 0 || n > len(bb.B) {
		panic("Truncate: invalid length")
	}
	bb.B = bb.B[:n]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold n more bytes without reallocating.
//
// Small buffers grow by whole default-size steps to keep early appends
// from reallocating repeatedly; larger buffers grow by a quarter of
// their capacity.
func (bb *ByteBuffer) Grow(n int) {
	available := cap(bb.B) - len(bb.B)
	if available >= n {
		return
	}

	growBy := BlockBufferDefaultSize
	if cap(bb.B) > 4*BlockBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer. It implements io.Writer and never
// fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers with a retention cap.
type ByteBufferPool struct {
	pool         sync.Pool
	maxRetention int
}

// NewByteBufferPool creates a pool handing out buffers of the given
// initial capacity. Buffers whose capacity has grown beyond
// maxRetention are discarded on Put rather than pooled; a maxRetention
// of zero disables the cap.
func NewByteBufferPool(capacity int, maxRetention int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(capacity)
			},
		},
		maxRetention: maxRetention,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxRetention > 0 && cap(bb.B) > p.maxRetention {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var blockBufferPool = NewByteBufferPool(BlockBufferDefaultSize, BlockBufferMaxRetention)

// GetBlockBuffer retrieves a ByteBuffer from the shared block build pool.
func GetBlockBuffer() *ByteBuffer {
	return blockBufferPool.Get()
}

// PutBlockBuffer returns a ByteBuffer to the shared block build pool.
func PutBlockBuffer(bb *ByteBuffer) {
	blockBufferPool.Put(bb)
}
