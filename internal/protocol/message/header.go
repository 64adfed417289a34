package message

import (
	"github.com/danmuck/lsewire/internal/protocol/field"
	"github.com/danmuck/lsewire/internal/protocol/render"
)

const (
	// StartByte opens every message on the wire.
	StartByte = 0x02
	// HeaderSize is the wire width of Header.
	HeaderSize = 4
	// lengthOverhead is the part of a message not counted by Header.Length.
	lengthOverhead = 3
)

// Header is the fixed message prologue.
type Header struct {
	Start  field.Int8
	Length field.Int16
	Type   field.Alpha
}

// NewHeader builds the header of a message of size total bytes.
func NewHeader(size int, messageType byte) Header {
	return Header{
		Start:  field.IntOf[int8](StartByte),
		Length: field.IntOf(int16(size - lengthOverhead)),
		Type:   field.Alpha(messageType),
	}
}

// MessageSize is the total message size declared by Length.
func (h Header) MessageSize() int {
	return int(uint16(h.Length.Get())) + lengthOverhead
}

func (h *Header) Fields() []Member {
	return []Member{
		{Name: "Start", Value: &h.Start},
		{Name: "Length", Value: &h.Length},
		{Name: "Type", Value: &h.Type},
	}
}

func (h Header) String() string {
	return render.Stream("Header", h.Fields())
}

func (h Header) JSON(verbose bool) string {
	return render.Object(h.Fields(), verbose)
}

func (Header) IsNull() bool { return false }

func (Header) Size() int { return HeaderSize }

func (h Header) Encode(b []byte) int {
	return encodeFields(b, h.Fields())
}

func (h *Header) Decode(b []byte) int {
	return decodeFields(b, h.Fields())
}

// ParseHeader decodes the header at the start of b.
func ParseHeader(b []byte) (Header, error) {
	var h Header
	if len(b) < HeaderSize {
		return Header{}, ErrTruncated
	}
	h.Decode(b)
	return h, nil
}
