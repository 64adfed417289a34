package message

import (
	"github.com/danmuck/lsewire/internal/protocol/field"
	"github.com/danmuck/lsewire/internal/protocol/render"
)

// Unknown carries a message whose type code has no registered layout.
// The body after the header is kept verbatim.
type Unknown struct {
	Header  Header
	Payload field.Raw
}

// NewUnknown sizes the payload from the length declared by h.
func NewUnknown(h Header) *Unknown {
	return &Unknown{
		Header:  h,
		Payload: field.NewRaw(h.MessageSize() - HeaderSize),
	}
}

func (*Unknown) Name() string { return "Unknown" }

func (m *Unknown) MessageType() byte { return m.Header.Type.Byte() }

func (m *Unknown) Fields() []Member {
	return []Member{
		{Name: "Header", Value: &m.Header},
		{Name: "Payload", Value: &m.Payload},
	}
}

func (m *Unknown) String() string           { return render.Stream(m.Name(), m.Fields()) }
func (m *Unknown) JSON(verbose bool) string { return render.Object(m.Fields(), verbose) }
func (*Unknown) IsNull() bool               { return false }
func (m *Unknown) Size() int                { return SizeOf(m.Fields()) }
func (m *Unknown) Encode(b []byte) int      { return encodeFields(b, m.Fields()) }
func (m *Unknown) Decode(b []byte) int      { return decodeFields(b, m.Fields()) }
