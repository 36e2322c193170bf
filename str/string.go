package str

import (
	"github.com/pavanmanishd/corekit/alloc"
	"github.com/pavanmanishd/corekit/vector"
)

// Option configures a String at construction.
type Option = vector.Option

// WithCapacity preallocates room for n bytes.
func WithCapacity(n int) Option { return vector.WithCapacity(n) }

// WithAllocator draws storage from a instead of the Go heap.
func WithAllocator(a alloc.Allocator) Option { return vector.WithAllocator(a) }

// String is a growable byte string that owns its storage. The zero value
// is the empty string. A String must not be copied by assignment; use Move,
// Take or Clone.
type String struct {
	_ [0]func() // incomparable

	buf vector.Vector[byte]
}

// New returns an empty String configured by opts.
func New(opts ...Option) String {
	return String{buf: vector.New[byte](opts...)}
}

// NewIn returns an empty String with room for capacity bytes drawn from a.
func NewIn(a alloc.Allocator, capacity int) String {
	return String{buf: vector.NewIn[byte](a, capacity)}
}

// From returns a String holding a copy of s.
func From(s string, opts ...Option) String {
	return FromView(ViewOf(s), opts...)
}

// FromView returns a String holding a copy of v.
func FromView(v View, opts ...Option) String {
	return String{buf: vector.FromView(v.Generic(), opts...)}
}

// FromBytes returns a String holding a copy of b.
func FromBytes(b []byte, opts ...Option) String {
	return String{buf: vector.FromSlice(b, opts...)}
}

// FromCString returns a String holding a copy of b up to the first NUL.
func FromCString(b []byte, opts ...Option) String {
	return FromView(ViewCString(b), opts...)
}

// Len returns the number of bytes.
func (s *String) Len() int { return s.buf.Len() }

// Cap returns the number of bytes s can hold without growing.
func (s *String) Cap() int { return s.buf.Cap() }

// Empty reports whether s has no bytes.
func (s *String) Empty() bool { return s.buf.Empty() }

// At returns byte i. i must be in [0, Len()).
func (s *String) At(i int) byte { return s.buf.At(i) }

// Allocator returns the allocator s draws from, nil for the Go heap.
func (s *String) Allocator() alloc.Allocator { return s.buf.Allocator() }

// View returns a view of the bytes. It is invalidated by the next growth,
// Clear, Move or Release.
func (s *String) View() View {
	return View{v: s.buf.View()}
}

// Bytes returns the bytes, aliasing the storage.
func (s *String) Bytes() []byte { return s.buf.Slice() }

// String returns a copy of the bytes as a Go string.
func (s *String) String() string { return string(s.buf.Slice()) }

// CString returns a NUL-terminated copy of the bytes. The terminator is
// never part of s itself.
func (s *String) CString() []byte {
	out := make([]byte, s.Len()+1)
	copy(out, s.buf.Slice())
	return out
}

// Reserve ensures room for at least n bytes.
func (s *String) Reserve(n int) { s.buf.Reserve(n) }

// PushBack appends c, growing if needed.
func (s *String) PushBack(c byte) { s.buf.PushBack(c) }

// TryPushBack appends c only if it fits without growing.
func (s *String) TryPushBack(c byte) bool { return s.buf.TryPushBack(c) }

// Append appends the bytes of v. v may view s itself.
func (s *String) Append(v View) { s.buf.Append(v.Generic()) }

// AppendString appends the bytes of v.
func (s *String) AppendString(v string) { s.Append(ViewOf(v)) }

// TryAppend appends v only if it fits without growing.
func (s *String) TryAppend(v View) bool {
	if s.Len()+v.Len() > s.Cap() {
		return false
	}
	s.buf.AppendSlice(v.Bytes()...)
	return true
}

// Write appends p. It never fails.
func (s *String) Write(p []byte) (int, error) {
	s.buf.AppendSlice(p...)
	return len(p), nil
}

// WriteByte appends c. It never fails.
func (s *String) WriteByte(c byte) error {
	s.buf.PushBack(c)
	return nil
}

// WriteString appends v. It never fails.
func (s *String) WriteString(v string) (int, error) {
	s.AppendString(v)
	return len(v), nil
}

// Clear drops every byte and releases the storage.
func (s *String) Clear() { s.buf.Clear() }

// Truncate keeps the first n bytes and drops the rest.
func (s *String) Truncate(n int) error { return s.buf.Truncate(n) }

// Release is Clear.
func (s *String) Release() { s.buf.Release() }

// Clone returns a deep copy.
func (s *String) Clone() String {
	return String{buf: s.buf.Clone()}
}

// Move transfers the storage to the returned String and leaves s empty.
func (s *String) Move() String {
	return String{buf: s.buf.Move()}
}

// Take releases what s owns and takes over the storage of src.
func (s *String) Take(src *String) {
	s.buf.Take(&src.buf)
}

// Equal reports whether s and o hold the same bytes.
func (s *String) Equal(o *String) bool { return s.View().Equal(o.View()) }

// EqualString reports whether s holds the bytes of o.
func (s *String) EqualString(o string) bool { return s.View().EqualString(o) }

// StartsWith reports whether prefix is a prefix of s.
func (s *String) StartsWith(prefix View) bool { return s.View().StartsWith(prefix) }

// EndsWith reports whether suffix is a suffix of s.
func (s *String) EndsWith(suffix View) bool { return s.View().EndsWith(suffix) }

// After returns the bytes past the first c.
func (s *String) After(c byte) View { return s.View().After(c) }

// Before returns the bytes up to the first c.
func (s *String) Before(c byte) View { return s.View().Before(c) }

// Around returns the bytes before and after the first c.
func (s *String) Around(c byte) (before, after View) { return s.View().Around(c) }
