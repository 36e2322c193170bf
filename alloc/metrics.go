package alloc

// Stats counts what an allocator handed out and what came back.
type Stats struct {
	Allocs         int64 // Successful Alloc calls
	Frees          int64 // Free calls with non-nil storage
	BytesAllocated int64 // Bytes handed out
	BytesFreed     int64 // Bytes handed back
}

// Live returns the number of allocations not yet freed.
func (s Stats) Live() int64 {
	return s.Allocs - s.Frees
}

// LiveBytes returns the number of bytes not yet freed.
func (s Stats) LiveBytes() int64 {
	return s.BytesAllocated - s.BytesFreed
}

// Sub returns the counters accumulated since an earlier snapshot.
func (s Stats) Sub(earlier Stats) Stats {
	return Stats{
		Allocs:         s.Allocs - earlier.Allocs,
		Frees:          s.Frees - earlier.Frees,
		BytesAllocated: s.BytesAllocated - earlier.BytesAllocated,
		BytesFreed:     s.BytesFreed - earlier.BytesFreed,
	}
}

// Stats returns a snapshot of the allocation counters.
func (a *Arena) Stats() Stats {
	return a.stats
}

// SizeInUse returns the total number of bytes currently carved out of the
// arena's chunks. This includes internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks in the arena.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Stats:       a.stats,
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Stats
	SizeInUse   int     // Bytes currently carved out
	Capacity    int     // Total capacity in bytes
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
