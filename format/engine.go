package format

import (
	"io"
	"reflect"

	"go.uber.org/zap"

	"github.com/pavanmanishd/corekit/alloc"
	"github.com/pavanmanishd/corekit/errors"
	"github.com/pavanmanishd/corekit/str"
)

const placeholder = '#'

// Engine renders templates against a registry. The zero value uses the
// default registry and the Go heap.
type Engine struct {
	reg   *Registry
	alloc alloc.Allocator
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry renders with r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		e.reg = r
	}
}

// WithAllocator draws the storage of formatted Strings from a.
func WithAllocator(a alloc.Allocator) Option {
	return func(e *Engine) {
		e.alloc = a
	}
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) registry() *Registry {
	if e.reg == nil {
		return defaultRegistry
	}
	return e.reg
}

// Size returns the exact number of bytes tpl renders to with args.
func (e *Engine) Size(tpl string, args ...any) (int, error) {
	return e.size("format.size", tpl, args)
}

func (e *Engine) size(op, tpl string, args []any) (int, error) {
	if holes := str.ViewOf(tpl).Count(placeholder); len(args) > holes {
		return 0, errors.New(op, errors.KindArgumentCount).
			Detail("%d arguments for %d placeholders", len(args), holes).
			Build()
	}
	// Every consumed placeholder is replaced by its argument.
	return e.argsSize(len(tpl)-len(args), args)
}

func (e *Engine) argsSize(total int, args []any) (int, error) {
	r := e.registry()
	for _, a := range args {
		n, err := r.sizeOf(reflect.ValueOf(a))
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// render walks tpl, copying the literal text before each placeholder and
// then the argument that replaces it.
func (e *Engine) render(s Sink, tpl string, args []any) {
	r := e.registry()
	rest := str.ViewOf(tpl)
	for _, a := range args {
		before, after := rest.Around(placeholder)
		s.AppendBytes(before.Bytes())
		r.writeOf(s, reflect.ValueOf(a))
		rest = after
	}
	s.AppendBytes(rest.Bytes())
}

func (e *Engine) renderArgs(s Sink, args []any) {
	r := e.registry()
	for _, a := range args {
		r.writeOf(s, reflect.ValueOf(a))
	}
}

// Format renders tpl into a new String. The String's storage is allocated
// exactly once, at its final size, and not at all when the result is empty.
func (e *Engine) Format(tpl string, args ...any) (str.String, error) {
	n, err := e.size("format.format", tpl, args)
	if err != nil {
		return str.String{}, err
	}
	sink := e.sinkFor(n)
	defer sink.put()
	e.render(sink, tpl, args)
	return sink.finish("format.format", tpl, n)
}

// Concat renders args back to back with no template.
func (e *Engine) Concat(args ...any) (str.String, error) {
	n, err := e.argsSize(0, args)
	if err != nil {
		return str.String{}, err
	}
	sink := e.sinkFor(n)
	defer sink.put()
	e.renderArgs(sink, args)
	return sink.finish("format.concat", "", n)
}

func (e *Engine) sinkFor(n int) *stringSink {
	sink := getStringSink()
	sink.s = str.NewIn(e.alloc, n)
	return sink
}

// finish moves the rendered String out of the sink, or releases it when
// the formatters wrote a different number of bytes than they promised.
func (k *stringSink) finish(op, tpl string, n int) (str.String, error) {
	if err := checkWritten(op, tpl, n, k.s.Len()+k.overflow); err != nil {
		return str.String{}, err
	}
	return k.s.Move(), nil
}

// Append renders tpl onto the end of dst, growing dst at most once. On
// error dst is left as it was. dst itself may not be one of args.
func (e *Engine) Append(dst *str.String, tpl string, args ...any) error {
	const op = "format.append"
	for i, a := range args {
		if p, ok := a.(*str.String); ok && p == dst {
			return errors.New(op, errors.KindInvalidInput).
				Detail("argument %d aliases the destination", i).
				Build()
		}
	}
	n, err := e.size(op, tpl, args)
	if err != nil {
		return err
	}
	start := dst.Len()
	dst.Reserve(start + n)

	sink := getStringSink()
	defer sink.put()
	sink.s.Take(dst)
	e.render(sink, tpl, args)
	wrote := sink.s.Len() - start + sink.overflow
	dst.Take(&sink.s)

	if err := checkWritten(op, tpl, n, wrote); err != nil {
		_ = dst.Truncate(start)
		return err
	}
	return nil
}

// FormatTo renders tpl straight into w and returns the number of bytes
// written. Nothing is written when the arguments are rejected.
func (e *Engine) FormatTo(w io.Writer, tpl string, args ...any) (int, error) {
	if _, err := e.size("format.format_to", tpl, args); err != nil {
		return 0, err
	}
	sink := getWriterSink(w)
	defer sink.put()
	e.render(sink, tpl, args)
	return sink.finish("format.format_to")
}

// ConcatTo renders args back to back into w.
func (e *Engine) ConcatTo(w io.Writer, args ...any) (int, error) {
	if _, err := e.argsSize(0, args); err != nil {
		return 0, err
	}
	sink := getWriterSink(w)
	defer sink.put()
	e.renderArgs(sink, args)
	return sink.finish("format.concat_to")
}

func (e *Engine) println(w io.Writer, tpl string, args []any) (int, error) {
	if _, err := e.size("format.println", tpl, args); err != nil {
		return 0, err
	}
	sink := getWriterSink(w)
	defer sink.put()
	e.render(sink, tpl, args)
	sink.AppendByte('\n')
	return sink.finish("format.println")
}

func (k *writerSink) finish(op string) (int, error) {
	k.flush()
	if k.err != nil {
		return k.n, errors.Wrap(op, errors.KindWrite, k.err, "")
	}
	return k.n, nil
}

func checkWritten(op, tpl string, want, got int) error {
	if want == got {
		return nil
	}
	Logger().Warn("formatted size mismatch",
		zap.String("op", op),
		zap.String("template", tpl),
		zap.Int("want", want),
		zap.Int("got", got),
	)
	return errors.New(op, errors.KindSizeMismatch).
		Detail("formatters reported %d bytes but wrote %d", want, got).
		Build()
}
