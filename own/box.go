package own

import (
	"github.com/pavanmanishd/corekit/alloc"
	"github.com/pavanmanishd/corekit/errors"
)

// Box owns a single value of type T.
type Box[T any] struct {
	_ [0]func() // incomparable

	ptr   *T
	alloc alloc.Allocator
}

// NewBox returns a Box owning a heap copy of v.
func NewBox[T any](v T) Box[T] {
	p := new(T)
	*p = v
	return Box[T]{ptr: p}
}

// NewBoxIn returns a Box owning a copy of v placed in storage from a.
func NewBoxIn[T any](a alloc.Allocator, v T) Box[T] {
	p := alloc.New[T](a)
	*p = v
	return Box[T]{ptr: p, alloc: a}
}

// Adopt takes responsibility for p. The caller must not release or adopt
// p anywhere else.
func Adopt[T any](p *T) Box[T] {
	return Box[T]{ptr: p}
}

// Get returns the owned pointer, or nil if the box is empty.
func (b *Box[T]) Get() *T {
	return b.ptr
}

// Value returns a copy of the owned value. The box must not be empty.
func (b *Box[T]) Value() T {
	return *b.ptr
}

// Load returns a copy of the owned value, or an error if the box is empty.
func (b *Box[T]) Load() (T, error) {
	if b.ptr == nil {
		var zero T
		return zero, errors.Released("own.box.load")
	}
	return *b.ptr, nil
}

// Empty reports whether the box owns nothing.
func (b *Box[T]) Empty() bool {
	return b.ptr == nil
}

// Move transfers ownership to the returned Box and leaves b empty.
func (b *Box[T]) Move() Box[T] {
	out := Box[T]{ptr: b.ptr, alloc: b.alloc}
	b.ptr = nil
	b.alloc = nil
	return out
}

// Replace releases what b owns and takes ownership from other, leaving
// other empty. Replacing a box with itself is a no-op.
func (b *Box[T]) Replace(other *Box[T]) {
	if b == other {
		return
	}
	b.Release()
	b.ptr = other.ptr
	b.alloc = other.alloc
	other.ptr = nil
	other.alloc = nil
}

// Reset releases what b owns and adopts p.
func (b *Box[T]) Reset(p *T) {
	if b.ptr == p {
		return
	}
	b.Release()
	b.ptr = p
}

// Release hands the owned value back to its allocator. Releasing an empty
// box does nothing.
func (b *Box[T]) Release() {
	if b.ptr == nil {
		return
	}
	alloc.Free(b.alloc, b.ptr)
	b.ptr = nil
	b.alloc = nil
}
