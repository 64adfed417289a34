// Package field owns the wire-level primitive types of the order entry
// protocol.
//
// Each type has a fixed wire width and encodes at an explicit byte offset,
// so message layouts never depend on Go struct packing.
// Text parsing is best effort: malformed input degrades to a defined value
// instead of failing.
package field

import (
	"encoding/binary"

	"github.com/danmuck/lsewire/internal/protocol/render"
)

// ByteOrder is the byte order of every multi-byte integer on the wire.
var ByteOrder = binary.LittleEndian

// Codec encodes and decodes a value at a fixed width.
//
// Encode and Decode expect len(b) >= Size() and return the bytes consumed.
type Codec interface {
	Size() int
	Encode(b []byte) int
	Decode(b []byte) int
}

// Field is a wire value that can render itself.
type Field interface {
	render.Value
	Codec
}
