// Package vector provides Vector, a growable contiguous array with a single
// owner, and Fixed, its fixed-capacity sibling.
//
// Storage is an own.Slab obtained from an alloc.Allocator (the Go heap when
// none is configured). A Vector grows only when a push would exceed its
// capacity; the new capacity is max(2*cap, 1), doubled again until the
// request fits, and the old storage is released exactly once after the
// live elements have been moved over.
//
// Like the handles in package own, a Vector must not be copied by
// assignment. Use Move or Take to transfer it and Clone to duplicate it.
//
// At and Ref are unchecked. Get, Set, PopBack, PopFront and Remove check
// their arguments and return errors.KindOutOfRange or errors.KindEmpty.
package vector
