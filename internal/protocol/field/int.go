package field

import (
	"strconv"

	"github.com/danmuck/lsewire/internal/protocol/render"
)

// Integer lists the wire integer widths.
type Integer interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64
}

// Int is a sized integer field.
type Int[T Integer] struct {
	value T
}

type (
	Int8     = Int[int8]
	UInt8    = Int[uint8]
	Int16    = Int[int16]
	UInt16   = Int[uint16]
	Int32    = Int[int32]
	UInt32   = Int[uint32]
	Int64    = Int[int64]
	UInt64   = Int[uint64]
	Bitfield = Int[uint8]
)

// IntOf wraps v.
func IntOf[T Integer](v T) Int[T] {
	return Int[T]{value: v}
}

func (i Int[T]) Get() T {
	return i.value
}

func (i *Int[T]) Set(v T) {
	i.value = v
}

// Add adds v in place, wrapping on overflow.
func (i *Int[T]) Add(v T) {
	i.value += v
}

// Sub subtracts v in place, wrapping on overflow.
func (i *Int[T]) Sub(v T) {
	i.value -= v
}

// Parse scans a leading integer literal from s.
//
// Trailing bytes are ignored. When no literal can be scanned, or the literal
// does not fit T, the value becomes zero. Unsigned widths reject a sign.
func (i *Int[T]) Parse(s string) {
	bits := i.Size() * 8
	if i.signed() {
		v, _ := scanSigned(s, bits)
		i.value = T(v)
		return
	}
	v, _ := scanUnsigned(s, bits)
	i.value = T(v)
}

// ParseText parses the content of a fixed-width text field.
func (i *Int[T]) ParseText(t Text) {
	i.Parse(t.String())
}

// String renders the decimal value; 8-bit widths render as numbers, not
// characters.
func (i Int[T]) String() string {
	if i.signed() {
		return strconv.FormatInt(int64(i.value), 10)
	}
	return strconv.FormatUint(uint64(i.value), 10)
}

func (i Int[T]) JSON(bool) string {
	if i.signed() {
		return render.Int(int64(i.value))
	}
	return render.Uint(uint64(i.value))
}

func (Int[T]) IsNull() bool { return false }

func (i Int[T]) signed() bool {
	var zero T
	return zero-1 < zero
}

func (i Int[T]) Size() int {
	switch any(i.value).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32:
		return 4
	default:
		return 8
	}
}

func (i Int[T]) Encode(b []byte) int {
	switch n := i.Size(); n {
	case 1:
		b[0] = byte(i.value)
		return n
	case 2:
		ByteOrder.PutUint16(b, uint16(i.value))
		return n
	case 4:
		ByteOrder.PutUint32(b, uint32(i.value))
		return n
	default:
		ByteOrder.PutUint64(b, uint64(i.value))
		return n
	}
}

func (i *Int[T]) Decode(b []byte) int {
	switch n := i.Size(); n {
	case 1:
		i.value = T(b[0])
		return n
	case 2:
		i.value = T(ByteOrder.Uint16(b))
		return n
	case 4:
		i.value = T(ByteOrder.Uint32(b))
		return n
	default:
		i.value = T(ByteOrder.Uint64(b))
		return n
	}
}
