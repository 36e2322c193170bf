package format

import (
	"encoding/binary"
	"unsafe"
)

// Char renders as the single byte it holds rather than as a number.
type Char byte

func (c Char) FormatSize(*Registry) int     { return 1 }
func (c Char) FormatTo(s Sink, _ *Registry) { s.AppendByte(byte(c)) }

const hexDigits = "0123456789ABCDEF"

var littleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// HexValue renders the raw storage of a value as upper-case hex digits,
// two per byte, most significant byte first.
type HexValue[T any] struct {
	v T
}

// Hex wraps v for a fixed-width hex dump of its raw storage.
func Hex[T any](v T) HexValue[T] {
	return HexValue[T]{v: v}
}

func (h HexValue[T]) FormatSize(*Registry) int {
	return 2 * int(unsafe.Sizeof(h.v))
}

func (h HexValue[T]) FormatTo(s Sink, _ *Registry) {
	eachByteMSB(&h.v, func(b byte) {
		s.AppendByte(hexDigits[b>>4])
		s.AppendByte(hexDigits[b&0x0F])
	})
}

// BinValue renders the raw storage of a value as binary digits, eight per
// byte, most significant byte and bit first.
type BinValue[T any] struct {
	v T
}

// Bin wraps v for a fixed-width binary dump of its raw storage.
func Bin[T any](v T) BinValue[T] {
	return BinValue[T]{v: v}
}

func (b BinValue[T]) FormatSize(*Registry) int {
	return 8 * int(unsafe.Sizeof(b.v))
}

func (b BinValue[T]) FormatTo(s Sink, _ *Registry) {
	eachByteMSB(&b.v, func(c byte) {
		for bit := 7; bit >= 0; bit-- {
			s.AppendByte('0' + (c>>bit)&1)
		}
	})
}

// eachByteMSB visits the bytes of *p from the most significant end.
func eachByteMSB[T any](p *T, fn func(byte)) {
	n := int(unsafe.Sizeof(*p))
	if n == 0 {
		return
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
	if littleEndian {
		for i := n - 1; i >= 0; i-- {
			fn(raw[i])
		}
		return
	}
	for i := 0; i < n; i++ {
		fn(raw[i])
	}
}
