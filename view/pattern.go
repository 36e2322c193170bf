package view

import "iter"

// IndexOf returns the position of the first occurrence of pattern in v, or
// v.Len(). An empty pattern matches at 0.
func IndexOf[T comparable](v, pattern View[T]) int {
	return Index(v.s, pattern.s)
}

// AroundRange splits v around the first occurrence of pattern. With no
// match Before is v and After is empty at the end. An empty pattern
// matches at the start and consumes nothing: Before is empty, After is v.
func AroundRange[T comparable](v, pattern View[T]) Parts[T] {
	i := Index(v.s, pattern.s)
	if i == len(v.s) && len(pattern.s) > 0 {
		return Parts[T]{Before: v, After: v.from(i)}
	}
	return Parts[T]{Before: v.to(i), After: v.from(i + len(pattern.s))}
}

// AfterRange returns the view just past the first occurrence of pattern.
func AfterRange[T comparable](v, pattern View[T]) View[T] {
	return AroundRange(v, pattern).After
}

// BeforeRange returns the view up to the first occurrence of pattern.
func BeforeRange[T comparable](v, pattern View[T]) View[T] {
	return AroundRange(v, pattern).Before
}

// SplitFunc returns an iterator over the pieces of v separated by elements
// satisfying sep. n separators always yield n+1 pieces, some possibly empty.
// An empty v yields one empty piece.
func SplitFunc[T any](v View[T], sep func(T) bool) iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		rest := v
		for {
			b, a := AroundIf(rest.s, sep)
			if !yield(rest.to(b)) {
				return
			}
			if b == len(rest.s) {
				return
			}
			rest = rest.from(a)
		}
	}
}

// Split returns an iterator over the pieces of v separated by x.
func Split[T comparable](v View[T], x T) iter.Seq[View[T]] {
	return SplitFunc(v, equalTo(x))
}

// SplitRange returns an iterator over the pieces of v separated by
// occurrences of pattern. An empty pattern yields v whole.
func SplitRange[T comparable](v, pattern View[T]) iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		if len(pattern.s) == 0 {
			yield(v)
			return
		}
		rest := v
		for {
			i := Index(rest.s, pattern.s)
			if !yield(rest.to(i)) {
				return
			}
			if i == len(rest.s) {
				return
			}
			rest = rest.from(i + len(pattern.s))
		}
	}
}

// TrimLeftFunc drops the leading elements satisfying pred.
func TrimLeftFunc[T any](v View[T], pred func(T) bool) View[T] {
	return v.from(FindIfNot(v.s, pred))
}

// TrimRightFunc drops the trailing elements satisfying pred.
func TrimRightFunc[T any](v View[T], pred func(T) bool) View[T] {
	// end tracks one past the last element that fails pred.
	end := 0
	for off := 0; off < len(v.s); {
		i := off + FindIfNot(v.s[off:], pred)
		if i == len(v.s) {
			break
		}
		end = i + 1
		off = end
	}
	return v.to(end)
}

// TrimFunc drops leading and trailing elements satisfying pred.
func TrimFunc[T any](v View[T], pred func(T) bool) View[T] {
	return TrimRightFunc(TrimLeftFunc(v, pred), pred)
}
