package format

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/corekit/errors"
)

// countingWriter records every Write call.
type countingWriter struct {
	bytes.Buffer
	calls int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls++
	return w.Buffer.Write(p)
}

// failingWriter accepts limit bytes and then fails.
type failingWriter struct {
	limit int
	got   []byte
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(w.got)+len(p) > w.limit {
		k := w.limit - len(w.got)
		w.got = append(w.got, p[:k]...)
		return k, io.ErrClosedPipe
	}
	w.got = append(w.got, p...)
	return len(p), nil
}

// shortWriter drops the last byte of every write without reporting it.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) - 1, nil }

func TestWriterSinkStagesDigits(t *testing.T) {
	var w countingWriter
	n, err := FormatTo(&w, "#", int64(-1234567890))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "-1234567890", w.String())
	assert.Equal(t, 1, w.calls)
}

func TestWriterSinkFlushesWhenStageFills(t *testing.T) {
	var w countingWriter
	k := &writerSink{w: &w}
	for i := 0; i < 100; i++ {
		k.AppendByte('x')
	}
	k.flush()
	require.NoError(t, k.err)
	assert.Equal(t, strings.Repeat("x", 100), w.String())
	assert.Equal(t, 2, w.calls)
	assert.Equal(t, 100, k.n)
}

func TestWriterSinkStickyError(t *testing.T) {
	w := &failingWriter{limit: 4}
	n, err := FormatTo(w, "abc # def #", 12345, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrWrite)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Equal(t, 4, n)
	assert.Equal(t, "abc ", string(w.got))
}

func TestWriterSinkShortWrite(t *testing.T) {
	_, err := FormatTo(shortWriter{}, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestCounter(t *testing.T) {
	var c Counter
	c.AppendByte('a')
	c.AppendString("bc")
	c.AppendBytes([]byte("def"))
	assert.Equal(t, 6, c.N)
}

func TestWriterSinkReuseStartsClean(t *testing.T) {
	for i := 0; i < 3; i++ {
		_, err := FormatTo(shortWriter{}, "x#", 1)
		require.Error(t, err)

		var buf bytes.Buffer
		n, err := FormatTo(&buf, "ok #", 2)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, "ok 2", buf.String())
	}
}
