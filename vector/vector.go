package vector

import (
	"iter"

	"go.uber.org/zap"

	"github.com/pavanmanishd/corekit/alloc"
	"github.com/pavanmanishd/corekit/errors"
	"github.com/pavanmanishd/corekit/own"
	"github.com/pavanmanishd/corekit/view"
)

// Vector is a growable array that owns its elements. The zero value is an
// empty vector backed by the Go heap.
type Vector[T any] struct {
	_ [0]func() // incomparable

	buf   own.Slab[T]
	n     int
	alloc alloc.Allocator
}

// New returns an empty vector configured by opts.
func New[T any](opts ...Option) Vector[T] {
	return newVector[T](newConfig(opts))
}

// NewIn returns an empty vector with room for capacity elements drawn
// from a. It is New without the option plumbing.
func NewIn[T any](a alloc.Allocator, capacity int) Vector[T] {
	return newVector[T](config{capacity: max(capacity, 0), alloc: a})
}

func newVector[T any](c config) Vector[T] {
	v := Vector[T]{alloc: c.alloc}
	if c.capacity > 0 {
		v.buf = own.MakeSlabIn[T](c.alloc, c.capacity)
	}
	return v
}

// Of returns a vector holding vals, with capacity len(vals).
func Of[T any](vals ...T) Vector[T] {
	return FromSlice(vals)
}

// FromSlice returns a vector holding a copy of s. Its capacity is len(s)
// unless WithCapacity asks for more.
func FromSlice[T any](s []T, opts ...Option) Vector[T] {
	c := newConfig(opts)
	c.capacity = max(c.capacity, len(s))
	v := newVector[T](c)
	copy(v.buf.Slice(), s)
	v.n = len(s)
	return v
}

// FromView returns a vector holding a copy of the elements of src.
func FromView[T any](src view.View[T], opts ...Option) Vector[T] {
	return FromSlice(src.Slice(), opts...)
}

// FromSeq returns a vector holding the elements produced by seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) Vector[T] {
	v := New[T](opts...)
	v.AppendSeq(seq)
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.n
}

// Cap returns the number of elements the vector can hold without growing.
func (v *Vector[T]) Cap() int {
	return v.buf.Len()
}

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.n == 0
}

// Allocator returns the allocator the vector draws from, nil for the Go heap.
func (v *Vector[T]) Allocator() alloc.Allocator {
	return v.alloc
}

// At returns element i. i must be in [0, Len()).
func (v *Vector[T]) At(i int) T {
	return v.Slice()[i]
}

// Ref returns a pointer to element i. i must be in [0, Len()). The pointer
// is invalidated by the next growth, Clear, Move or Release.
func (v *Vector[T]) Ref(i int) *T {
	return &v.Slice()[i]
}

// Get returns element i, or an out_of_range error.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, errors.OutOfRange("vector.get", i, v.n)
	}
	return v.buf.At(i), nil
}

// Set overwrites element i, or returns an out_of_range error.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.n {
		return errors.OutOfRange("vector.set", i, v.n)
	}
	v.buf.Set(i, x)
	return nil
}

// Slice returns the live elements. The slice aliases the vector's storage
// and is only valid until the next growth, Clear, Move or Release.
func (v *Vector[T]) Slice() []T {
	return v.buf.Slice()[:v.n:v.n]
}

// View returns a non-owning view of the live elements.
func (v *Vector[T]) View() view.View[T] {
	return view.Of(v.Slice())
}

// All returns an iterator over index/element pairs, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return v.View().All()
}

// Values returns an iterator over the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return v.View().Values()
}

// Backward returns an iterator over index/element pairs, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Slice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// grow makes room for need elements. When the storage is replaced the old
// slab is returned still owning its elements; the caller releases it once
// it is done reading from it.
func (v *Vector[T]) grow(need int) own.Slab[T] {
	c := v.buf.Len()
	if need <= c {
		return own.Slab[T]{}
	}
	c = max(c*2, 1)
	for c < need {
		c *= 2
	}

	next := own.MakeSlabIn[T](v.alloc, c)
	copy(next.Slice(), v.Slice())
	old := v.buf.Move()
	v.buf.Replace(&next)

	if ce := Logger().Check(zap.DebugLevel, "vector grew"); ce != nil {
		ce.Write(
			zap.Int("len", v.n),
			zap.Int("old_cap", old.Len()),
			zap.Int("new_cap", c),
		)
	}
	return old
}

// Reserve ensures room for at least n elements, growing by the usual rule.
func (v *Vector[T]) Reserve(n int) {
	old := v.grow(n)
	old.Release()
}

// PushBack appends x, growing if the vector is full.
func (v *Vector[T]) PushBack(x T) {
	old := v.grow(v.n + 1)
	v.buf.Set(v.n, x)
	v.n++
	old.Release()
}

// TryPushBack appends x only if it fits in the current capacity.
func (v *Vector[T]) TryPushBack(x T) bool {
	if v.n >= v.buf.Len() {
		return false
	}
	v.buf.Set(v.n, x)
	v.n++
	return true
}

// PushFront inserts x at the front, shifting every element up by one.
func (v *Vector[T]) PushFront(x T) {
	v.insert(0, x)
}

// Insert places x at position i, shifting the suffix up by one. i may
// equal Len().
func (v *Vector[T]) Insert(i int, x T) error {
	if i < 0 || i > v.n {
		return errors.OutOfRange("vector.insert", i, v.n)
	}
	v.insert(i, x)
	return nil
}

func (v *Vector[T]) insert(i int, x T) {
	old := v.grow(v.n + 1)
	s := v.buf.Slice()
	copy(s[i+1:v.n+1], s[i:v.n])
	s[i] = x
	v.n++
	old.Release()
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, errors.Empty("vector.pop_back")
	}
	return v.remove(v.n - 1), nil
}

// PopFront removes and returns the first element.
func (v *Vector[T]) PopFront() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, errors.Empty("vector.pop_front")
	}
	return v.remove(0), nil
}

// Remove removes and returns element i, shifting the suffix down by one.
func (v *Vector[T]) Remove(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, errors.OutOfRange("vector.remove", i, v.n)
	}
	return v.remove(i), nil
}

func (v *Vector[T]) remove(i int) T {
	s := v.buf.Slice()
	x := s[i]
	copy(s[i:v.n-1], s[i+1:v.n])
	var zero T
	s[v.n-1] = zero
	v.n--
	return x
}

// Truncate drops every element from index n on, keeping the capacity.
func (v *Vector[T]) Truncate(n int) error {
	if n < 0 || n > v.n {
		return errors.OutOfRange("vector.truncate", n, v.n+1)
	}
	clear(v.buf.Slice()[n:v.n])
	v.n = n
	return nil
}

// Append appends the elements of src. src may view v itself.
func (v *Vector[T]) Append(src view.View[T]) {
	v.AppendSlice(src.Slice()...)
}

// AppendSlice appends vals with at most one growth. vals may alias v.
func (v *Vector[T]) AppendSlice(vals ...T) {
	if len(vals) == 0 {
		return
	}
	old := v.grow(v.n + len(vals))
	copy(v.buf.Slice()[v.n:], vals)
	v.n += len(vals)
	old.Release()
}

// AppendSeq appends every element produced by seq.
func (v *Vector[T]) AppendSeq(seq iter.Seq[T]) {
	for x := range seq {
		v.PushBack(x)
	}
}

// Clear drops every element and releases the storage. Capacity becomes 0.
func (v *Vector[T]) Clear() {
	v.buf.Release()
	v.n = 0
}

// Release is Clear. It exists so a Vector reads like the other owning
// handles at the end of its life.
func (v *Vector[T]) Release() {
	v.Clear()
}

// Clone returns a deep copy with the same capacity and allocator.
func (v *Vector[T]) Clone() Vector[T] {
	out := Vector[T]{alloc: v.alloc}
	if c := v.buf.Len(); c > 0 {
		out.buf = own.MakeSlabIn[T](v.alloc, c)
		copy(out.buf.Slice(), v.Slice())
	}
	out.n = v.n
	return out
}

// Move transfers the storage to the returned vector in O(1). v is left
// empty with capacity 0 and keeps its allocator.
func (v *Vector[T]) Move() Vector[T] {
	out := Vector[T]{buf: v.buf.Move(), n: v.n, alloc: v.alloc}
	v.n = 0
	return out
}

// Take releases what v owns and takes over the storage of src, leaving src
// empty. Taking from itself is a no-op.
func (v *Vector[T]) Take(src *Vector[T]) {
	if v == src {
		return
	}
	v.buf.Replace(&src.buf)
	v.n = src.n
	v.alloc = src.alloc
	src.n = 0
}

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of elements.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return view.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return view.Equal(a.Slice(), b.Slice())
}
