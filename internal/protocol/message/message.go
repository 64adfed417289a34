// Package message owns concrete message layouts and their byte codecs.
//
// A message is a Header followed, without padding, by an ordered list of
// fields. Field order is both the wire order and the rendering order.
package message

import (
	"github.com/danmuck/lsewire/internal/protocol/field"
	"github.com/danmuck/lsewire/internal/protocol/render"
)

// Member is one named field of a layout.
type Member = render.Member[field.Field]

// Message is a complete wire message.
type Message interface {
	field.Field
	// Name is the type tag used by the stream rendering.
	Name() string
	// MessageType is the header type code.
	MessageType() byte
	// Fields returns the layout in wire order, header first.
	Fields() []Member
}

// SizeOf returns the sum of the wire widths of fields.
func SizeOf(fields []Member) int {
	n := 0
	for _, f := range fields {
		n += f.Value.Size()
	}
	return n
}

// Marshal encodes m into a new buffer.
func Marshal(m Message) []byte {
	b := make([]byte, m.Size())
	m.Encode(b)
	return b
}

// MarshalTo encodes m into b and returns the number of bytes written.
func MarshalTo(b []byte, m Message) (int, error) {
	if len(b) < m.Size() {
		return 0, ErrShortBuffer
	}
	return m.Encode(b), nil
}

// Unmarshal decodes b into m. m must come from its constructor so that
// fixed-width text fields know their widths.
func Unmarshal(b []byte, m Message) error {
	if len(b) < m.Size() {
		return ErrTruncated
	}
	m.Decode(b)
	return nil
}

func encodeFields(b []byte, fields []Member) int {
	off := 0
	for _, f := range fields {
		off += f.Value.Encode(b[off:])
	}
	return off
}

func decodeFields(b []byte, fields []Member) int {
	off := 0
	for _, f := range fields {
		off += f.Value.Decode(b[off:])
	}
	return off
}
