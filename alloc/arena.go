package alloc

import (
	"unsafe"

	"go.uber.org/zap"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Arena is a chunked bump allocator. Not goroutine-safe; wrap it with
// NewLocked for concurrent access.
type Arena struct {
	chunks       []chunk
	chunkSize    int
	currentChunk *chunk
	stats        Stats
}

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Alloc returns n zeroed bytes carved out of the current chunk.
// The caller must ensure the arena remains reachable while the returned
// slice is in use. Returns nil if n <= 0.
func (a *Arena) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}

	// Fast path: use cached current chunk
	c := a.currentChunk
	if c != nil {
		off := alignPtr(c.offset)
		if off+uintptr(n) <= uintptr(len(c.buf)) {
			return a.carve(c, off, n)
		}
	}

	// Slow path: need new chunk
	a.panicIfReleased()
	a.grow(n)
	c = a.currentChunk
	return a.carve(c, alignPtr(c.offset), n)
}

func (a *Arena) carve(c *chunk, off uintptr, n int) []byte {
	start := int(off)
	c.offset = off + uintptr(n)
	a.stats.Allocs++
	a.stats.BytesAllocated += int64(n)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[start])), n)
	// Chunks are reused after Reset, so zero on the way out.
	clear(b)
	return b
}

// Free records the release of b. Arena memory is reclaimed in bulk by
// Reset or Release, never piece by piece.
func (a *Arena) Free(b []byte) {
	if b == nil {
		return
	}
	a.stats.Frees++
	a.stats.BytesFreed += int64(len(b))
}

// EnsureCapacity ensures the current chunk has at least n free bytes.
// If not, it grows the arena with a new chunk.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := a.currentChunk
	if c == nil || uintptr(n)+alignPtr(c.offset) > uintptr(len(c.buf)) {
		a.grow(n)
	}
}

// Reset resets allocation offsets to zero but keeps allocated chunks for reuse.
// Everything previously handed out becomes invalid.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	// Reset cached chunk to first chunk
	if len(a.chunks) > 0 {
		a.currentChunk = &a.chunks[0]
	}
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation panics.
func (a *Arena) Release() {
	if a.chunks != nil {
		Logger().Debug("arena released",
			zap.Int("chunks", len(a.chunks)),
			zap.Int("capacity", a.Capacity()))
	}
	a.chunks = nil
	a.currentChunk = nil
}

// grow appends a new chunk of at least min bytes and makes it current.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	buf := make([]byte, size)
	a.chunks = append(a.chunks, chunk{buf: buf, offset: 0})
	a.currentChunk = &a.chunks[len(a.chunks)-1]
	if len(a.chunks) > 1 {
		Logger().Debug("arena grew",
			zap.Int("chunk_size", size),
			zap.Int("chunks", len(a.chunks)))
	}
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("alloc: arena used after Release()")
	}
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}
