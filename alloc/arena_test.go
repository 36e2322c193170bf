package alloc

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		expected  int
	}{
		{"default chunk size", 0, DefaultChunkSize},
		{"negative chunk size", -1, DefaultChunkSize},
		{"large negative chunk size", -1000, DefaultChunkSize},
		{"custom chunk size", 8192, 8192},
		{"single byte chunks", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(tt.chunkSize)
			if a.chunkSize != tt.expected {
				t.Errorf("NewArena(%d) chunk size = %d, want %d", tt.chunkSize, a.chunkSize, tt.expected)
			}
			if len(a.chunks) != 1 {
				t.Errorf("NewArena(%d) chunks = %d, want 1", tt.chunkSize, len(a.chunks))
			}
		})
	}
}

func TestArenaAlloc(t *testing.T) {
	a := NewArena(1024)

	b1 := a.Alloc(100)
	if len(b1) != 100 {
		t.Errorf("Alloc(100) length = %d, want 100", len(b1))
	}

	if b2 := a.Alloc(0); b2 != nil {
		t.Errorf("Alloc(0) = %v, want nil", b2)
	}

	if b3 := a.Alloc(-1); b3 != nil {
		t.Errorf("Alloc(-1) = %v, want nil", b3)
	}

	// Allocation that forces chunk growth
	b4 := a.Alloc(2000)
	if len(b4) != 2000 {
		t.Errorf("Alloc(2000) length = %d, want 2000", len(b4))
	}
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after large allocation = %d, want 2", a.NumChunks())
	}
}

func TestArenaAllocationsDoNotOverlap(t *testing.T) {
	a := NewArena(256)
	var blocks [][]byte
	for i := 0; i < 40; i++ {
		b := a.Alloc(24)
		for j := range b {
			b[j] = byte(i)
		}
		blocks = append(blocks, b)
	}
	for i, b := range blocks {
		for _, v := range b {
			require.Equal(t, byte(i), v, "block %d was overwritten", i)
		}
	}
	assert.Greater(t, a.NumChunks(), 1)
}

func TestArenaEnsureCapacity(t *testing.T) {
	a := NewArena(1024)
	initialChunks := a.NumChunks()

	a.EnsureCapacity(100)
	if a.NumChunks() != initialChunks {
		t.Errorf("EnsureCapacity(100) changed chunk count")
	}

	a.EnsureCapacity(2000)
	if a.NumChunks() != initialChunks+1 {
		t.Errorf("EnsureCapacity(2000) chunks = %d, want %d", a.NumChunks(), initialChunks+1)
	}

	// The new chunk must now serve the request without another grow.
	a.Alloc(2000)
	assert.Equal(t, initialChunks+1, a.NumChunks())
}

func TestArenaReset(t *testing.T) {
	a := NewArena(1024)

	a.Alloc(100)
	a.Alloc(200)

	if a.SizeInUse() == 0 {
		t.Error("Expected non-zero size in use after allocations")
	}

	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset() = %d, want 0", a.SizeInUse())
	}
	if a.NumChunks() == 0 {
		t.Error("Expected chunks to remain after Reset()")
	}
}

func TestArenaFreeOnlyCounts(t *testing.T) {
	a := NewArena(1024)
	b := a.Alloc(64)
	used := a.SizeInUse()

	a.Free(b)
	a.Free(nil)

	assert.Equal(t, used, a.SizeInUse(), "Free must not hand bytes back to the bump pointer")
	st := a.Stats()
	assert.Equal(t, int64(1), st.Allocs)
	assert.Equal(t, int64(1), st.Frees)
	assert.Equal(t, int64(64), st.BytesFreed)
}

func TestArenaRelease(t *testing.T) {
	a := NewArena(1024)
	a.Alloc(100)

	a.Release()

	if a.chunks != nil {
		t.Error("Expected chunks to be nil after Release()")
	}
	assert.Zero(t, a.NumChunks())
	assert.Zero(t, a.Capacity())

	// Double release is harmless
	a.Release()

	assert.Panics(t, func() { a.Alloc(100) })
	assert.Panics(t, func() { a.Reset() })
	assert.Panics(t, func() { a.EnsureCapacity(10) })
}

func TestArenaHugeRequest(t *testing.T) {
	a := NewArena(1024)
	defer a.Release()

	large := a.Alloc(1024 * 1024)
	assert.Len(t, large, 1024*1024)
	assert.Equal(t, 2, a.NumChunks())
}

func TestAlignPtr(t *testing.T) {
	ptrSize := unsafe.Sizeof(uintptr(0))

	tests := []struct {
		input    uintptr
		expected uintptr
	}{
		{0, 0},
		{1, ptrSize},
		{ptrSize, ptrSize},
		{ptrSize + 1, ptrSize * 2},
	}

	for _, tt := range tests {
		result := alignPtr(tt.input)
		if result != tt.expected {
			t.Errorf("alignPtr(%d) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func BenchmarkArenaAlloc(b *testing.B) {
	a := NewArena(1024 * 1024) // 1MB chunks
	sizes := []int{8, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.Alloc(size)
				if i%1000 == 999 { // Reset periodically to avoid growing too much
					a.Reset()
				}
			}
		})
	}
}

func BenchmarkArenaVsHeap(b *testing.B) {
	b.Run("arena", func(b *testing.B) {
		a := NewArena(1024 * 1024)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Alloc(64)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})

	b.Run("heap", func(b *testing.B) {
		h := NewHeap()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			h.Alloc(64)
		}
	})
}
