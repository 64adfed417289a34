package field

import (
	"encoding/hex"

	"github.com/danmuck/lsewire/internal/protocol/render"
)

// Raw is an opaque byte run of fixed width, rendered as hex.
type Raw struct {
	width int
	value string
}

// NewRaw returns a zeroed Raw of the given width.
func NewRaw(width int) Raw {
	if width < 0 {
		width = 0
	}
	return Raw{width: width, value: string(make([]byte, width))}
}

// Bytes returns a copy of the stored bytes.
func (r Raw) Bytes() []byte {
	return []byte(r.value)
}

// Set copies up to Width bytes of b, zero filling the rest.
func (r *Raw) Set(b []byte) {
	buf := make([]byte, r.width)
	copy(buf, b)
	r.value = string(buf)
}

func (r Raw) String() string {
	return hex.EncodeToString([]byte(r.value))
}

func (r Raw) JSON(bool) string {
	return render.Quote(r.String())
}

func (Raw) IsNull() bool { return false }

func (r Raw) Size() int { return r.width }

func (r Raw) Encode(b []byte) int {
	return copy(b[:r.width], r.value)
}

func (r *Raw) Decode(b []byte) int {
	r.value = string(b[:r.width])
	return r.width
}
