package str

import (
	"iter"
	"unsafe"

	"github.com/pavanmanishd/corekit/view"
)

// View is a non-owning, read-only window over bytes. The zero value is the
// empty view.
type View struct {
	v view.View[byte]
}

// ViewOf returns a view over the bytes of s without copying.
func ViewOf(s string) View {
	if s == "" {
		return View{}
	}
	return View{v: view.Of(unsafe.Slice(unsafe.StringData(s), len(s)))}
}

// ViewBytes returns a view over b without copying.
func ViewBytes(b []byte) View {
	return View{v: view.Of(b)}
}

// ViewCString returns a view over b up to, not including, the first NUL.
// With no NUL the whole of b is viewed. Only for data crossing a
// NUL-terminated boundary.
func ViewCString(b []byte) View {
	return View{v: view.Of(b).BeforeIf(isNUL)}
}

func isNUL(c byte) bool { return c == 0 }

// Generic returns the underlying element view.
func (s View) Generic() view.View[byte] {
	return s.v
}

// Len returns the number of bytes.
func (s View) Len() int { return s.v.Len() }

// Empty reports whether the view has no bytes.
func (s View) Empty() bool { return s.v.Empty() }

// At returns byte i. i must be in [0, Len()).
func (s View) At(i int) byte { return s.v.At(i) }

// Bytes returns the viewed bytes without copying. The result must not be
// modified if the view came from ViewOf.
func (s View) Bytes() []byte { return s.v.Slice() }

// String returns a copy of the viewed bytes as a Go string.
func (s View) String() string { return string(s.v.Slice()) }

// Sub returns bytes [b, e).
func (s View) Sub(b, e int) View { return View{v: s.v.Sub(b, e)} }

// After returns the bytes past the first c, or the empty view at the end.
func (s View) After(c byte) View { return View{v: view.After(s.v, c)} }

// Before returns the bytes up to the first c, or the whole view.
func (s View) Before(c byte) View { return View{v: view.Before(s.v, c)} }

// Around returns the bytes before and after the first c.
func (s View) Around(c byte) (before, after View) {
	sp := view.Around(s.v, c)
	return View{v: sp.Before}, View{v: sp.After}
}

// AfterView returns the bytes past the first occurrence of pattern.
func (s View) AfterView(pattern View) View {
	return View{v: view.AfterRange(s.v, pattern.v)}
}

// BeforeView returns the bytes up to the first occurrence of pattern.
func (s View) BeforeView(pattern View) View {
	return View{v: view.BeforeRange(s.v, pattern.v)}
}

// AroundView returns the bytes before and after the first occurrence of
// pattern.
func (s View) AroundView(pattern View) (before, after View) {
	sp := view.AroundRange(s.v, pattern.v)
	return View{v: sp.Before}, View{v: sp.After}
}

// Index returns the position of the first occurrence of pattern, or Len().
func (s View) Index(pattern View) int {
	return view.IndexOf(s.v, pattern.v)
}

// IndexByte returns the position of the first c, or Len().
func (s View) IndexByte(c byte) int {
	return view.FindIn(s.v, c)
}

// Contains reports whether pattern occurs in s.
func (s View) Contains(pattern View) bool {
	return pattern.Empty() || s.Index(pattern) != s.Len()
}

// Count returns the number of bytes equal to c.
func (s View) Count(c byte) int {
	return view.CountIn(s.v, c)
}

// Equal reports whether s and o hold the same bytes.
func (s View) Equal(o View) bool {
	return view.Equals(s.v, o.v)
}

// EqualString reports whether s holds the bytes of o.
func (s View) EqualString(o string) bool {
	return s.Equal(ViewOf(o))
}

// StartsWith reports whether prefix is a prefix of s.
func (s View) StartsWith(prefix View) bool {
	return view.HasPrefix(s.v, prefix.v)
}

// EndsWith reports whether suffix is a suffix of s.
func (s View) EndsWith(suffix View) bool {
	return view.HasSuffix(s.v, suffix.v)
}

// Split returns an iterator over the pieces of s separated by sep.
func (s View) Split(sep byte) iter.Seq[View] {
	return func(yield func(View) bool) {
		for p := range view.Split(s.v, sep) {
			if !yield(View{v: p}) {
				return
			}
		}
	}
}

// SplitView returns an iterator over the pieces of s separated by pattern.
func (s View) SplitView(pattern View) iter.Seq[View] {
	return func(yield func(View) bool) {
		for p := range view.SplitRange(s.v, pattern.v) {
			if !yield(View{v: p}) {
				return
			}
		}
	}
}

// TrimSpace drops leading and trailing ASCII whitespace.
func (s View) TrimSpace() View {
	return View{v: view.TrimFunc(s.v, isSpace)}
}

// TrimFunc drops leading and trailing bytes satisfying pred.
func (s View) TrimFunc(pred func(byte) bool) View {
	return View{v: view.TrimFunc(s.v, pred)}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
