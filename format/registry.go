package format

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/pavanmanishd/corekit/errors"
	"github.com/pavanmanishd/corekit/str"
)

// Entry formats values of one concrete type. Write must emit exactly
// Size(v) bytes for every v.
type Entry struct {
	Size  func(v any) int
	Write func(s Sink, v any)
}

// Formattable is implemented by types that render themselves. The
// Registry is passed along so composite values can format their parts
// with Registry.Size and Registry.Write.
type Formattable interface {
	FormatSize(r *Registry) int
	FormatTo(s Sink, r *Registry)
}

// Registry maps concrete types to formatters. It is safe for concurrent
// use; registering while formatting on another goroutine is allowed.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]Entry
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by the package-level functions
// and by engines built without WithRegistry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry returns a registry holding the built-in formatters.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[reflect.Type]Entry)}
	Register(r,
		func(v str.View) int { return v.Len() },
		func(s Sink, v str.View) { s.AppendBytes(v.Bytes()) },
	)
	Register(r,
		func(v *str.String) int { return v.Len() },
		func(s Sink, v *str.String) { s.AppendBytes(v.Bytes()) },
	)
	return r
}

// Register installs a formatter for values whose dynamic type is exactly T.
// It replaces any earlier entry for T, including the built-in rule for T's
// kind.
func Register[T any](r *Registry, size func(T) int, write func(Sink, T)) {
	r.Set(reflect.TypeFor[T](), Entry{
		Size:  func(v any) int { return size(v.(T)) },
		Write: func(s Sink, v any) { write(s, v.(T)) },
	})
}

// Set installs e for values of type t.
func (r *Registry) Set(t reflect.Type, e Entry) {
	r.mu.Lock()
	_, replaced := r.entries[t]
	r.entries[t] = e
	r.mu.Unlock()

	if replaced {
		Logger().Info("formatter replaced", zap.Stringer("type", t))
	}
}

// Delete removes the entry for t, falling back to the built-in rules.
func (r *Registry) Delete(t reflect.Type) {
	r.mu.Lock()
	delete(r.entries, t)
	r.mu.Unlock()
}

func (r *Registry) lookup(t reflect.Type) (Entry, bool) {
	r.mu.RLock()
	e, ok := r.entries[t]
	r.mu.RUnlock()
	return e, ok
}

// Size returns the number of bytes v renders to.
func (r *Registry) Size(v any) (int, error) {
	return r.sizeOf(reflect.ValueOf(v))
}

// Write renders v into s. It reports the same errors as Size and writes
// nothing when it fails.
func (r *Registry) Write(s Sink, v any) error {
	rv := reflect.ValueOf(v)
	if _, err := r.sizeOf(rv); err != nil {
		return err
	}
	r.writeOf(s, rv)
	return nil
}

const opSize = "format.size"

// maxDepth bounds how deeply sequences may nest. A sequence that contains
// itself hits the bound instead of overflowing the stack.
const maxDepth = 64

var formattableType = reflect.TypeFor[Formattable]()

func (r *Registry) sizeOf(v reflect.Value) (int, error) {
	return r.sizeAt(v, 0)
}

func (r *Registry) sizeAt(v reflect.Value, depth int) (int, error) {
	v, err := resolve(v)
	if err != nil {
		return 0, err
	}
	t := v.Type()
	if e, ok := r.lookup(t); ok {
		return e.Size(v.Interface()), nil
	}
	if t.Implements(formattableType) {
		return v.Interface().(Formattable).FormatSize(r), nil
	}

	switch v.Kind() {
	case reflect.Bool:
		return boolSize(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intSize(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintSize(v.Uint()), nil
	case reflect.String:
		return v.Len(), nil
	case reflect.Slice, reflect.Array:
		return r.seqSize(v, depth)
	}
	if s, ok := sliceOf(v); ok {
		return r.seqSize(s, depth)
	}
	return 0, errors.Unsupported(opSize, t.String())
}

// writeOf renders v. sizeOf must have accepted v, which also bounds the
// recursion here.
func (r *Registry) writeOf(s Sink, v reflect.Value) {
	v, _ = resolve(v)
	t := v.Type()
	if e, ok := r.lookup(t); ok {
		e.Write(s, v.Interface())
		return
	}
	if t.Implements(formattableType) {
		v.Interface().(Formattable).FormatTo(s, r)
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		writeBool(s, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeInt(s, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(s, v.Uint())
	case reflect.String:
		s.AppendString(v.String())
	case reflect.Slice, reflect.Array:
		r.writeSeq(s, v)
	default:
		if seq, ok := sliceOf(v); ok {
			r.writeSeq(s, seq)
		}
	}
}

// resolve unwraps interface values and rejects nil.
func resolve(v reflect.Value) (reflect.Value, error) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, errors.Unsupported(opSize, "nil")
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return v, errors.Unsupported(opSize, "nil")
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return v, errors.New(opSize, errors.KindUnsupported).
			Type(v.Type().String()).
			Detail("nil pointer").
			Build()
	}
	return v, nil
}

func (r *Registry) seqSize(v reflect.Value, depth int) (int, error) {
	if depth == maxDepth {
		return 0, errors.New(opSize, errors.KindUnsupported).
			Type(v.Type().String()).
			Detail("sequences nested deeper than %d", maxDepth).
			Build()
	}
	n := v.Len()
	if n == 0 {
		return 2, nil
	}
	total := 2 + 2*(n-1)
	for i := 0; i < n; i++ {
		k, err := r.sizeAt(v.Index(i), depth+1)
		if err != nil {
			return 0, err
		}
		total += k
	}
	return total, nil
}

func (r *Registry) writeSeq(s Sink, v reflect.Value) {
	s.AppendByte('{')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			s.AppendString(", ")
		}
		r.writeOf(s, v.Index(i))
	}
	s.AppendByte('}')
}

var sliceMethods sync.Map // reflect.Type -> int

// sliceOf calls v.Slice() when v's type has a method `Slice() []E`.
func sliceOf(v reflect.Value) (reflect.Value, bool) {
	t := v.Type()
	idx, ok := sliceMethods.Load(t)
	if !ok {
		i := -1
		if m, found := t.MethodByName("Slice"); found &&
			m.Type.NumIn() == 1 && m.Type.NumOut() == 1 &&
			m.Type.Out(0).Kind() == reflect.Slice {
			i = m.Index
		}
		idx, _ = sliceMethods.LoadOrStore(t, i)
	}
	if idx.(int) < 0 {
		return reflect.Value{}, false
	}
	return v.Method(idx.(int)).Call(nil)[0], true
}
