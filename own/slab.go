package own

import (
	"github.com/pavanmanishd/corekit/alloc"
	"github.com/pavanmanishd/corekit/errors"
)

// Slab owns a contiguous array of values of type T.
type Slab[T any] struct {
	_ [0]func() // incomparable

	buf   []T
	alloc alloc.Allocator
}

// MakeSlab returns a Slab owning n zeroed elements on the Go heap.
func MakeSlab[T any](n int) Slab[T] {
	return MakeSlabIn[T](nil, n)
}

// MakeSlabIn returns a Slab owning n zeroed elements from a. A nil a means
// the Go heap. Returns an empty Slab if n <= 0.
func MakeSlabIn[T any](a alloc.Allocator, n int) Slab[T] {
	buf := alloc.MakeSlice[T](a, n)
	if buf == nil {
		return Slab[T]{}
	}
	return Slab[T]{buf: buf, alloc: a}
}

// AdoptSlice takes responsibility for the full capacity of s.
func AdoptSlice[T any](s []T) Slab[T] {
	if cap(s) == 0 {
		return Slab[T]{}
	}
	return Slab[T]{buf: s[:cap(s)]}
}

// Len returns the number of owned elements.
func (s *Slab[T]) Len() int {
	return len(s.buf)
}

// Empty reports whether the slab owns nothing.
func (s *Slab[T]) Empty() bool {
	return s.buf == nil
}

// Allocator returns the allocator the storage came from, nil for the Go heap.
func (s *Slab[T]) Allocator() alloc.Allocator {
	return s.alloc
}

// At returns element i. i must be in [0, Len()).
func (s *Slab[T]) At(i int) T {
	return s.buf[i]
}

// Ptr returns a pointer to element i. i must be in [0, Len()).
func (s *Slab[T]) Ptr(i int) *T {
	return &s.buf[i]
}

// Set stores v at i. i must be in [0, Len()).
func (s *Slab[T]) Set(i int, v T) {
	s.buf[i] = v
}

// Get returns element i, or an error if the slab is empty or i is out of range.
func (s *Slab[T]) Get(i int) (T, error) {
	if err := s.check("own.slab.get", i); err != nil {
		var zero T
		return zero, err
	}
	return s.buf[i], nil
}

// Store stores v at i, or returns an error if the slab is empty or i is
// out of range.
func (s *Slab[T]) Store(i int, v T) error {
	if err := s.check("own.slab.store", i); err != nil {
		return err
	}
	s.buf[i] = v
	return nil
}

func (s *Slab[T]) check(op string, i int) error {
	if s.buf == nil {
		return errors.Released(op)
	}
	if i < 0 || i >= len(s.buf) {
		return errors.OutOfRange(op, i, len(s.buf))
	}
	return nil
}

// Slice returns the owned elements. The slice aliases the slab and is only
// valid until the slab is released or moved from.
func (s *Slab[T]) Slice() []T {
	return s.buf
}

// Move transfers ownership to the returned Slab and leaves s empty.
func (s *Slab[T]) Move() Slab[T] {
	out := Slab[T]{buf: s.buf, alloc: s.alloc}
	s.buf = nil
	s.alloc = nil
	return out
}

// Replace releases what s owns and takes ownership from other, leaving
// other empty. Replacing a slab with itself is a no-op.
func (s *Slab[T]) Replace(other *Slab[T]) {
	if s == other {
		return
	}
	s.Release()
	s.buf = other.buf
	s.alloc = other.alloc
	other.buf = nil
	other.alloc = nil
}

// Release hands the owned array back to its allocator. Releasing an empty
// slab does nothing.
func (s *Slab[T]) Release() {
	if s.buf == nil {
		return
	}
	// Drop references held by pointerful elements before giving up the storage.
	clear(s.buf)
	alloc.FreeSlice(s.alloc, s.buf)
	s.buf = nil
	s.alloc = nil
}
