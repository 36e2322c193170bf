package alloc

import "sync"

// Locked is a mutex-protected wrapper around any Allocator for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking.
type Locked struct {
	mu sync.Mutex
	a  Allocator
}

// NewLocked wraps a so it can be shared between goroutines.
func NewLocked(a Allocator) *Locked {
	return &Locked{a: a}
}

// NewSafeArena creates a new thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena(chunkSize int) *Locked {
	return NewLocked(NewArena(chunkSize))
}

// Alloc thread-safely allocates n bytes.
func (l *Locked) Alloc(n int) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Alloc(n)
}

// Free thread-safely hands b back to the wrapped allocator.
func (l *Locked) Free(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Free(b)
}

// Stats thread-safely returns the wrapped allocator's counters, or the zero
// Stats if it keeps none.
func (l *Locked) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	if r, ok := l.a.(Reporter); ok {
		return r.Stats()
	}
	return Stats{}
}

// Do runs fn with exclusive access to the wrapped allocator, for operations
// outside the Allocator interface such as Arena.Reset.
func (l *Locked) Do(fn func(a Allocator)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.a)
}

// Unwrap returns the wrapped allocator. Using it directly bypasses the lock.
func (l *Locked) Unwrap() Allocator {
	return l.a
}
