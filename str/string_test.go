package str

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/corekit/alloc"
)

var (
	_ io.Writer       = (*String)(nil)
	_ io.ByteWriter   = (*String)(nil)
	_ io.StringWriter = (*String)(nil)
	_ fmt.Stringer    = (*String)(nil)
	_ fmt.Stringer    = View{}
)

func TestStringConstructors(t *testing.T) {
	s := From("hello")
	assert.Equal(t, "hello", s.String())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 5, s.Cap())

	b := FromBytes([]byte("bytes"))
	assert.True(t, b.EqualString("bytes"))

	c := FromCString([]byte("cstr\x00junk"))
	assert.Equal(t, "cstr", c.String())

	v := FromView(ViewOf("view"))
	assert.Equal(t, "view", v.String())

	var z String
	assert.True(t, z.Empty())
	assert.Equal(t, "", z.String())
}

func TestStringCString(t *testing.T) {
	s := From("abc")
	cs := s.CString()
	assert.Equal(t, []byte("abc\x00"), cs)
	assert.Equal(t, 3, s.Len(), "terminator is not part of the string")

	var z String
	assert.Equal(t, []byte{0}, z.CString())
}

func TestStringAppend(t *testing.T) {
	s := New()
	s.PushBack('a')
	s.AppendString("bc")
	s.Append(ViewOf("de"))
	s.Append(s.View())
	assert.Equal(t, "abcdeabcde", s.String())
}

func TestStringNewInAndTruncate(t *testing.T) {
	h := alloc.NewHeap()
	s := NewIn(h, 8)
	defer s.Release()
	assert.Equal(t, 8, s.Cap())

	s.AppendString("key=value")
	require.NoError(t, s.Truncate(3))
	assert.Equal(t, "key", s.String())
	assert.Error(t, s.Truncate(4))
	assert.Equal(t, int64(2), h.Stats().Allocs, "one growth past the initial 8 bytes")
}

func TestStringTryAppend(t *testing.T) {
	s := New(WithCapacity(4))
	assert.True(t, s.TryAppend(ViewOf("abc")))
	assert.False(t, s.TryAppend(ViewOf("de")))
	assert.True(t, s.TryPushBack('d'))
	assert.False(t, s.TryPushBack('e'))
	assert.Equal(t, "abcd", s.String())
	assert.Equal(t, 4, s.Cap())
}

func TestStringWriters(t *testing.T) {
	var s String
	n, err := fmt.Fprintf(&s, "%d-%s", 42, "x")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, s.WriteByte('!'))
	n, err = s.WriteString("?")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "42-x!?", s.String())
}

func TestStringOwnership(t *testing.T) {
	h := alloc.NewHeap()
	s := From("owned", WithAllocator(h))
	c := s.Clone()
	m := s.Move()

	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Cap())
	assert.True(t, m.Equal(&c))

	var dst String
	dst.Take(&m)
	assert.Equal(t, "owned", dst.String())
	assert.True(t, m.Empty())

	dst.Release()
	c.Release()
	s.Release()
	assert.Equal(t, int64(0), h.Stats().Live())
}

func TestStringDelegates(t *testing.T) {
	s := From("key=value")
	assert.True(t, s.StartsWith(ViewOf("key")))
	assert.True(t, s.EndsWith(ViewOf("value")))
	assert.Equal(t, "value", s.After('=').String())
	assert.Equal(t, "key", s.Before('=').String())
	b, a := s.Around('=')
	assert.Equal(t, "key", b.String())
	assert.Equal(t, "value", a.String())
	assert.Equal(t, byte('k'), s.At(0))
	assert.Equal(t, []byte("key=value"), s.Bytes())

	s.Clear()
	assert.Equal(t, 0, s.Cap())
}

func TestStringReserve(t *testing.T) {
	var s String
	s.Reserve(10)
	assert.GreaterOrEqual(t, s.Cap(), 10)
	assert.Nil(t, s.Allocator())
}
