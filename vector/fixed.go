package vector

import (
	"iter"

	"github.com/pavanmanishd/corekit/errors"
	"github.com/pavanmanishd/corekit/own"
	"github.com/pavanmanishd/corekit/view"
)

// Fixed is a vector whose capacity is set at construction and never
// changes. Pushing into a full Fixed reports errors.KindFull.
type Fixed[T any] struct {
	_ [0]func() // incomparable

	buf own.Slab[T]
	n   int
}

// NewFixed returns an empty Fixed with room for capacity elements. Only
// WithAllocator is honored from opts.
func NewFixed[T any](capacity int, opts ...Option) Fixed[T] {
	c := newConfig(opts)
	return Fixed[T]{buf: own.MakeSlabIn[T](c.alloc, capacity)}
}

// FixedOf returns a full Fixed holding vals.
func FixedOf[T any](vals ...T) Fixed[T] {
	f := NewFixed[T](len(vals))
	copy(f.buf.Slice(), vals)
	f.n = len(vals)
	return f
}

// Len returns the number of live elements.
func (f *Fixed[T]) Len() int { return f.n }

// Cap returns the fixed capacity.
func (f *Fixed[T]) Cap() int { return f.buf.Len() }

// Empty reports whether there are no live elements.
func (f *Fixed[T]) Empty() bool { return f.n == 0 }

// Full reports whether another push would fail.
func (f *Fixed[T]) Full() bool { return f.n == f.buf.Len() }

// At returns element i. i must be in [0, Len()).
func (f *Fixed[T]) At(i int) T { return f.Slice()[i] }

// Get returns element i, or an out_of_range error.
func (f *Fixed[T]) Get(i int) (T, error) {
	if i < 0 || i >= f.n {
		var zero T
		return zero, errors.OutOfRange("vector.fixed.get", i, f.n)
	}
	return f.buf.At(i), nil
}

// Set overwrites element i, or returns an out_of_range error.
func (f *Fixed[T]) Set(i int, x T) error {
	if i < 0 || i >= f.n {
		return errors.OutOfRange("vector.fixed.set", i, f.n)
	}
	f.buf.Set(i, x)
	return nil
}

// Slice returns the live elements, aliasing the storage.
func (f *Fixed[T]) Slice() []T {
	return f.buf.Slice()[:f.n:f.n]
}

// View returns a non-owning view of the live elements.
func (f *Fixed[T]) View() view.View[T] {
	return view.Of(f.Slice())
}

// All returns an iterator over index/element pairs.
func (f *Fixed[T]) All() iter.Seq2[int, T] {
	return f.View().All()
}

// Values returns an iterator over the elements.
func (f *Fixed[T]) Values() iter.Seq[T] {
	return f.View().Values()
}

// PushBack appends x, or returns a full error.
func (f *Fixed[T]) PushBack(x T) error {
	if f.Full() {
		return errors.Full("vector.fixed.push_back", f.buf.Len())
	}
	f.buf.Set(f.n, x)
	f.n++
	return nil
}

// PushFront inserts x at the front, or returns a full error.
func (f *Fixed[T]) PushFront(x T) error {
	if f.Full() {
		return errors.Full("vector.fixed.push_front", f.buf.Len())
	}
	s := f.buf.Slice()
	copy(s[1:f.n+1], s[:f.n])
	s[0] = x
	f.n++
	return nil
}

// Append copies as many elements of src as fit and returns how many were
// taken. A short append also returns a full error.
func (f *Fixed[T]) Append(src view.View[T]) (int, error) {
	k := copy(f.buf.Slice()[f.n:], src.Slice())
	f.n += k
	if k < src.Len() {
		return k, errors.Full("vector.fixed.append", f.buf.Len())
	}
	return k, nil
}

// PopBack removes and returns the last element.
func (f *Fixed[T]) PopBack() (T, error) {
	if f.n == 0 {
		var zero T
		return zero, errors.Empty("vector.fixed.pop_back")
	}
	return f.remove(f.n - 1), nil
}

// PopFront removes and returns the first element.
func (f *Fixed[T]) PopFront() (T, error) {
	if f.n == 0 {
		var zero T
		return zero, errors.Empty("vector.fixed.pop_front")
	}
	return f.remove(0), nil
}

// Remove removes and returns element i, shifting the suffix down.
func (f *Fixed[T]) Remove(i int) (T, error) {
	if i < 0 || i >= f.n {
		var zero T
		return zero, errors.OutOfRange("vector.fixed.remove", i, f.n)
	}
	return f.remove(i), nil
}

func (f *Fixed[T]) remove(i int) T {
	s := f.buf.Slice()
	x := s[i]
	copy(s[i:f.n-1], s[i+1:f.n])
	var zero T
	s[f.n-1] = zero
	f.n--
	return x
}

// Clear drops every element and keeps the storage.
func (f *Fixed[T]) Clear() {
	clear(f.buf.Slice()[:f.n])
	f.n = 0
}

// Clone returns a deep copy with the same capacity and allocator.
func (f *Fixed[T]) Clone() Fixed[T] {
	out := Fixed[T]{buf: own.MakeSlabIn[T](f.buf.Allocator(), f.buf.Len()), n: f.n}
	copy(out.buf.Slice(), f.Slice())
	return out
}

// Move transfers the storage to the returned Fixed and leaves f empty with
// capacity 0.
func (f *Fixed[T]) Move() Fixed[T] {
	out := Fixed[T]{buf: f.buf.Move(), n: f.n}
	f.n = 0
	return out
}

// Release hands the storage back to its allocator. Capacity becomes 0.
func (f *Fixed[T]) Release() {
	f.buf.Release()
	f.n = 0
}
