package view

import (
	"iter"

	"github.com/pavanmanishd/corekit/errors"
)

// View is a non-owning [begin, end) window over a contiguous sequence.
// The zero value is an empty view.
type View[T any] struct {
	s []T
}

// Parts is the result of a boundary split: the parts strictly before and
// strictly after the matched element.
type Parts[T any] struct {
	Before View[T]
	After  View[T]
}

// Of returns a view over s. The view aliases s.
func Of[T any](s []T) View[T] {
	return View[T]{s: s}
}

// Len returns the number of elements in the window.
func (v View[T]) Len() int {
	return len(v.s)
}

// Empty reports whether the window holds no elements.
func (v View[T]) Empty() bool {
	return len(v.s) == 0
}

// At returns element i. i must be in [0, Len()).
func (v View[T]) At(i int) T {
	return v.s[i]
}

// Get returns element i, or an error if i is out of range.
func (v View[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(v.s) {
		var zero T
		return zero, errors.OutOfRange("view.get", i, len(v.s))
	}
	return v.s[i], nil
}

// Set writes v at i through to the backing storage. i must be in [0, Len()).
func (v View[T]) Set(i int, x T) {
	v.s[i] = x
}

// Sub returns the window [b, e) of v. 0 <= b <= e <= Len() must hold.
func (v View[T]) Sub(b, e int) View[T] {
	return View[T]{s: v.s[b:e:e]}
}

// Slice returns the window as a slice aliasing the backing storage.
func (v View[T]) Slice() []T {
	return v.s
}

// All returns an iterator over index/element pairs.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.s {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.s {
			if !yield(x) {
				return
			}
		}
	}
}

// FindIf returns the position of the first element satisfying pred, or Len().
func (v View[T]) FindIf(pred func(T) bool) int {
	return FindIf(v.s, pred)
}

// FindIfNot returns the position of the first element not satisfying pred,
// or Len().
func (v View[T]) FindIfNot(pred func(T) bool) int {
	return FindIfNot(v.s, pred)
}

// AfterIf returns the view starting just past the first element satisfying
// pred. With no match it is the empty view anchored at the end.
func (v View[T]) AfterIf(pred func(T) bool) View[T] {
	return v.from(AfterIf(v.s, pred))
}

// BeforeIf returns the view ending just before the first element satisfying
// pred. With no match it is the whole view.
func (v View[T]) BeforeIf(pred func(T) bool) View[T] {
	return v.to(BeforeIf(v.s, pred))
}

// AroundIf splits the view around the first element satisfying pred in one
// scan. With no match Before is the whole view and After is empty at the end.
func (v View[T]) AroundIf(pred func(T) bool) Parts[T] {
	b, a := AroundIf(v.s, pred)
	return Parts[T]{Before: v.to(b), After: v.from(a)}
}

// CountIf returns the number of elements satisfying pred.
func (v View[T]) CountIf(pred func(T) bool) int {
	return CountIf(v.s, pred)
}

// AllOf reports whether pred holds for every element.
func (v View[T]) AllOf(pred func(T) bool) bool {
	return AllOf(v.s, pred)
}

// AnyOf reports whether pred holds for some element.
func (v View[T]) AnyOf(pred func(T) bool) bool {
	return AnyOf(v.s, pred)
}

// NoneOf reports whether pred holds for no element.
func (v View[T]) NoneOf(pred func(T) bool) bool {
	return NoneOf(v.s, pred)
}

func (v View[T]) from(i int) View[T] {
	return View[T]{s: v.s[i:]}
}

func (v View[T]) to(i int) View[T] {
	return View[T]{s: v.s[:i:i]}
}

// After returns the view just past the first element equal to x.
func After[T comparable](v View[T], x T) View[T] {
	return v.AfterIf(equalTo(x))
}

// Before returns the view up to the first element equal to x.
func Before[T comparable](v View[T], x T) View[T] {
	return v.BeforeIf(equalTo(x))
}

// Around splits v around the first element equal to x.
func Around[T comparable](v View[T], x T) Parts[T] {
	return v.AroundIf(equalTo(x))
}

// FindIn returns the position of the first element of v equal to x, or v.Len().
func FindIn[T comparable](v View[T], x T) int {
	return Find(v.s, x)
}

// CountIn returns the number of elements of v equal to x.
func CountIn[T comparable](v View[T], x T) int {
	return Count(v.s, x)
}

// MismatchOf returns the first positions at which a and b differ.
func MismatchOf[T comparable](a, b View[T]) (int, int) {
	return Mismatch(a.s, b.s)
}

// Equals reports whether a and b hold equal elements in the same order.
func Equals[T comparable](a, b View[T]) bool {
	return Equal(a.s, b.s)
}

// HasPrefix reports whether prefix is a prefix of v.
func HasPrefix[T comparable](v, prefix View[T]) bool {
	return StartsWith(v.s, prefix.s)
}

// HasSuffix reports whether suffix is a suffix of v.
func HasSuffix[T comparable](v, suffix View[T]) bool {
	return EndsWith(v.s, suffix.s)
}
