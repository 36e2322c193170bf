package format

import (
	"io"
	"sync"

	"github.com/pavanmanishd/corekit/str"
)

// Sink receives formatted bytes. Formatters write only through a Sink.
type Sink interface {
	AppendByte(c byte)
	AppendString(s string)
	AppendBytes(p []byte)
}

// Counter is a Sink that only counts bytes. It is handy for checking that
// a formatter writes what its size function promised.
type Counter struct {
	N int
}

func (c *Counter) AppendByte(byte)       { c.N++ }
func (c *Counter) AppendString(s string) { c.N += len(s) }
func (c *Counter) AppendBytes(p []byte)  { c.N += len(p) }

// stringSink appends into a String sized ahead of time. It never grows the
// String; bytes that do not fit are counted as overflow. The sink owns the
// String while rendering.
type stringSink struct {
	s        str.String
	overflow int
}

var stringSinks = sync.Pool{New: func() any { return new(stringSink) }}

func getStringSink() *stringSink {
	return stringSinks.Get().(*stringSink)
}

// put hands the sink back. Its String must already have been moved out.
func (k *stringSink) put() {
	k.s.Release()
	k.overflow = 0
	stringSinks.Put(k)
}

func (k *stringSink) AppendByte(c byte) {
	if !k.s.TryPushBack(c) {
		k.overflow++
	}
}

func (k *stringSink) AppendString(p string) {
	if !k.s.TryAppend(str.ViewOf(p)) {
		k.overflow += len(p)
	}
}

func (k *stringSink) AppendBytes(p []byte) {
	if !k.s.TryAppend(str.ViewBytes(p)) {
		k.overflow += len(p)
	}
}

// writerSink writes through to an io.Writer as output is produced. Single
// bytes are staged in a small inline array so a run of digits reaches w as
// one Write. The first error sticks and later output is dropped.
type writerSink struct {
	w       io.Writer
	n       int
	err     error
	pending int
	buf     [64]byte
}

var writerSinks = sync.Pool{New: func() any { return new(writerSink) }}

func getWriterSink(w io.Writer) *writerSink {
	k := writerSinks.Get().(*writerSink)
	k.w = w
	return k
}

func (k *writerSink) put() {
	k.w, k.n, k.err, k.pending = nil, 0, nil, 0
	writerSinks.Put(k)
}

func (k *writerSink) AppendByte(c byte) {
	if k.err != nil {
		return
	}
	if k.pending == len(k.buf) {
		k.flush()
		if k.err != nil {
			return
		}
	}
	k.buf[k.pending] = c
	k.pending++
}

func (k *writerSink) AppendString(p string) {
	k.flush()
	if k.err != nil || p == "" {
		return
	}
	n, err := io.WriteString(k.w, p)
	k.record(n, len(p), err)
}

func (k *writerSink) AppendBytes(p []byte) {
	k.flush()
	if k.err != nil || len(p) == 0 {
		return
	}
	n, err := k.w.Write(p)
	k.record(n, len(p), err)
}

func (k *writerSink) flush() {
	if k.err != nil || k.pending == 0 {
		return
	}
	n, err := k.w.Write(k.buf[:k.pending])
	k.record(n, k.pending, err)
	k.pending = 0
}

func (k *writerSink) record(n, want int, err error) {
	k.n += n
	if err == nil && n < want {
		err = io.ErrShortWrite
	}
	k.err = err
}
