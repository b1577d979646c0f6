// Package arena implements the chunked bump allocator that backs every
// sequence a strutils.Context hands out.
//
// Only pointer-free byte storage is carved from chunks. Slices returned by
// Alloc are capped at their requested size, so appending to one of them never
// writes into a neighbouring allocation.
package arena

import (
	"errors"
	"fmt"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

var (
	// ErrAllocationFailed is returned when a request cannot be satisfied.
	ErrAllocationFailed = errors.New("arena: allocation failed")
	// ErrLimitExceeded is returned when a request would push the arena past its byte limit.
	ErrLimitExceeded = errors.New("arena: byte limit exceeded")
)

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte // backing memory
	offset int    // allocation offset within buf
}

// Arena is a chunked bump allocator. Not goroutine-safe.
type Arena struct {
	chunks       []chunk
	chunkSize    int
	currentChunk *chunk
	limit        int // max reserved bytes, 0 = unlimited
	reserved     int
}

// Option configures an Arena.
type Option func(*Arena)

// WithLimit caps the total number of bytes the arena may reserve.
// A limit <= 0 means unlimited.
func WithLimit(bytes int) Option {
	return func(a *Arena) {
		if bytes > 0 {
			a.limit = bytes
		}
	}
}

// New creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used. The first chunk is reserved
// lazily on the first non-empty allocation.
func New(chunkSize int, opts ...Option) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize, chunks: make([]chunk, 0, 4)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Alloc returns a zeroed slice of n bytes carved from the arena, with
// len == cap == n. Alloc(0) returns a non-nil empty slice.
func (a *Arena) Alloc(n int) ([]byte, error) {
	a.panicIfReleased()
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocationFailed, n)
	}
	if n == 0 {
		return []byte{}, nil
	}

	// Fast path: use cached current chunk
	if c := a.currentChunk; c != nil && c.offset+n <= len(c.buf) {
		start := c.offset
		c.offset += n
		return c.buf[start:c.offset:c.offset], nil
	}

	// Slow path: need new chunk
	if err := a.grow(n); err != nil {
		return nil, err
	}
	c := a.currentChunk
	c.offset = n
	return c.buf[0:n:n], nil
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a.chunks == nil
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation panics. Slices already handed out stay valid
// for as long as the caller references them.
func (a *Arena) Release() {
	a.chunks = nil
	a.currentChunk = nil
	a.reserved = 0
}

// grow appends a new chunk of at least min bytes.
func (a *Arena) grow(min int) error {
	size := a.chunkSize
	if min > size {
		size = min
	}
	if a.limit > 0 && a.reserved+size > a.limit {
		// A smaller chunk may still fit under the limit.
		if a.reserved+min > a.limit {
			return fmt.Errorf("%w: %d+%d > %d", ErrLimitExceeded, a.reserved, min, a.limit)
		}
		size = a.limit - a.reserved
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.currentChunk = &a.chunks[len(a.chunks)-1]
	a.reserved += size
	return nil
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("arena: use after Release()")
	}
}
