package alloc

import (
	"sync/atomic"
	"unsafe"
)

// Heap allocates every request from the Go heap and counts it.
// The zero value is ready to use and safe for concurrent use.
type Heap struct {
	allocs     atomic.Int64
	frees      atomic.Int64
	bytesAlloc atomic.Int64
	bytesFreed atomic.Int64
}

var defaultHeap Heap

// Default returns the process-wide heap allocator.
func Default() *Heap {
	return &defaultHeap
}

// NewHeap returns a heap allocator with its own counters.
func NewHeap() *Heap {
	return &Heap{}
}

// Alloc returns n zeroed bytes aligned to 8 bytes. Returns nil if n <= 0.
func (h *Heap) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	// Back the bytes with words so typed views over them stay aligned.
	words := make([]uint64, (n+7)/8)
	h.allocs.Add(1)
	h.bytesAlloc.Add(int64(n))
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), n)
}

// Free records the release of b. The memory itself is left to the collector.
func (h *Heap) Free(b []byte) {
	if b == nil {
		return
	}
	h.frees.Add(1)
	h.bytesFreed.Add(int64(len(b)))
}

// Stats returns a snapshot of the allocation counters.
func (h *Heap) Stats() Stats {
	return Stats{
		Allocs:         h.allocs.Load(),
		Frees:          h.frees.Load(),
		BytesAllocated: h.bytesAlloc.Load(),
		BytesFreed:     h.bytesFreed.Load(),
	}
}
