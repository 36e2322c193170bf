package view

// FindIf returns the index of the first element satisfying pred, or
// len(s) if there is none.
func FindIf[T any](s []T, pred func(T) bool) int {
	for i, v := range s {
		if pred(v) {
			return i
		}
	}
	return len(s)
}

// FindIfNot returns the index of the first element not satisfying pred, or
// len(s) if every element does.
func FindIfNot[T any](s []T, pred func(T) bool) int {
	for i, v := range s {
		if !pred(v) {
			return i
		}
	}
	return len(s)
}

// AfterIf returns the position just past the first element satisfying
// pred, or len(s) if there is none.
func AfterIf[T any](s []T, pred func(T) bool) int {
	i := FindIf(s, pred)
	if i == len(s) {
		return i
	}
	return i + 1
}

// BeforeIf returns the position of the first element satisfying pred, which
// is the end of the part before it, or len(s) if there is none.
func BeforeIf[T any](s []T, pred func(T) bool) int {
	return FindIf(s, pred)
}

// AroundIf returns the end of the part before the first element satisfying
// pred and the start of the part after it. With no match both are len(s).
func AroundIf[T any](s []T, pred func(T) bool) (before, after int) {
	i := FindIf(s, pred)
	if i == len(s) {
		return i, i
	}
	return i, i + 1
}

// MismatchFunc walks a and b in lockstep while eq holds and returns the
// first diverging positions, or the end of whichever ran out first.
func MismatchFunc[T, U any](a []T, b []U, eq func(T, U) bool) (int, int) {
	i := 0
	for i < len(a) && i < len(b) && eq(a[i], b[i]) {
		i++
	}
	return i, i
}

// CountIf returns the number of elements satisfying pred.
func CountIf[T any](s []T, pred func(T) bool) int {
	n := 0
	for _, v := range s {
		if pred(v) {
			n++
		}
	}
	return n
}

// equalTo returns a predicate matching elements equal to x.
func equalTo[T comparable](x T) func(T) bool {
	return func(v T) bool { return v == x }
}

func eq[T comparable](a, b T) bool { return a == b }

// Find returns the index of the first element equal to x, or len(s).
func Find[T comparable](s []T, x T) int {
	return FindIf(s, equalTo(x))
}

// Count returns the number of elements equal to x.
func Count[T comparable](s []T, x T) int {
	return CountIf(s, equalTo(x))
}

// Mismatch returns the first positions at which a and b differ.
func Mismatch[T comparable](a, b []T) (int, int) {
	return MismatchFunc(a, b, eq[T])
}

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of elements.
func EqualFunc[T, U any](a []T, b []U, eq func(T, U) bool) bool {
	i, j := MismatchFunc(a, b, eq)
	return i == len(a) && j == len(b)
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b []T) bool {
	return EqualFunc(a, b, eq[T])
}

// StartsWith reports whether prefix is a prefix of s.
func StartsWith[T comparable](s, prefix []T) bool {
	_, j := Mismatch(s, prefix)
	return j == len(prefix)
}

// EndsWith reports whether suffix is a suffix of s.
func EndsWith[T comparable](s, suffix []T) bool {
	if len(suffix) > len(s) {
		return false
	}
	return Equal(s[len(s)-len(suffix):], suffix)
}

// AllOf reports whether pred holds for every element. True for an empty s.
func AllOf[T any](s []T, pred func(T) bool) bool {
	return FindIfNot(s, pred) == len(s)
}

// AnyOf reports whether pred holds for at least one element.
func AnyOf[T any](s []T, pred func(T) bool) bool {
	return FindIf(s, pred) != len(s)
}

// NoneOf reports whether pred holds for no element. True for an empty s.
func NoneOf[T any](s []T, pred func(T) bool) bool {
	return FindIf(s, pred) == len(s)
}

// Contains reports whether x is present in s.
func Contains[T comparable](s []T, x T) bool {
	return AnyOf(s, equalTo(x))
}

// Index returns the position of the first occurrence of pattern in s, or
// len(s) if there is none. An empty pattern matches at 0.
func Index[T comparable](s, pattern []T) int {
	if len(pattern) == 0 {
		return 0
	}
	first := pattern[0]
	for off := 0; off < len(s); {
		i := off + Find(s[off:], first)
		if i == len(s) || len(s)-i < len(pattern) {
			return len(s)
		}
		if StartsWith(s[i:], pattern) {
			return i
		}
		off = i + 1
	}
	return len(s)
}
