package alloc

import (
	"reflect"
	"sync"
	"unsafe"
)

// Allocator hands out zeroed, pointer-free storage and takes it back.
type Allocator interface {
	// Alloc returns n zeroed bytes, or nil if n <= 0.
	Alloc(n int) []byte
	// Free returns storage obtained from Alloc. Passing nil is a no-op.
	Free(b []byte)
}

// Reporter is implemented by allocators that keep allocation counts.
type Reporter interface {
	Stats() Stats
}

var pointerFree sync.Map // reflect.Type -> bool

// PointerFree reports whether values of T contain no pointers and can
// therefore live in allocator-owned bytes.
func PointerFree[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := pointerFree.Load(t); ok {
		return v.(bool)
	}
	free := typePointerFree(t)
	pointerFree.Store(t, free)
	return free
}

func typePointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || typePointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !typePointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// New returns a pointer to a zeroed T. The storage comes from a when a is
// non-nil and T is pointer-free; otherwise it comes from the Go heap.
func New[T any](a Allocator) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if a == nil || size == 0 || !PointerFree[T]() {
		return new(T)
	}
	b := a.Alloc(size)
	return (*T)(unsafe.Pointer(&b[0]))
}

// Free hands the storage behind p back to a. It must be given the same
// allocator New was called with.
func Free[T any](a Allocator, p *T) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if a == nil || p == nil || size == 0 || !PointerFree[T]() {
		return
	}
	a.Free(unsafe.Slice((*byte)(unsafe.Pointer(p)), size))
}

// MakeSlice returns a zeroed slice of n elements of type T with len and
// cap both n. Returns nil if n <= 0.
func MakeSlice[T any](a Allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if a == nil || elemSize == 0 || !PointerFree[T]() {
		return make([]T, n)
	}
	b := a.Alloc(elemSize * n)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// FreeSlice hands the full capacity of s back to a. It must be given the
// same allocator MakeSlice was called with.
func FreeSlice[T any](a Allocator, s []T) {
	if a == nil || cap(s) == 0 {
		return
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 || !PointerFree[T]() {
		return
	}
	s = s[:cap(s)]
	a.Free(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), elemSize*len(s)))
}
