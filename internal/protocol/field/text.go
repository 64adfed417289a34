package field

import (
	"strconv"
	"strings"

	"github.com/danmuck/lsewire/internal/protocol/render"
)

// Text is a fixed-width character field.
//
// Assigned text longer than the width is silently truncated; shorter text
// is zero padded on the wire. Reading stops at the first zero byte.
type Text struct {
	width int
	value string
}

// NewText returns an empty Text of the given width.
func NewText(width int) Text {
	if width < 0 {
		width = 0
	}
	return Text{width: width}
}

// TextOf returns a Text of the given width holding s.
func TextOf(width int, s string) Text {
	t := NewText(width)
	t.Set(s)
	return t
}

// Width returns the fixed wire width.
func (t Text) Width() int {
	return t.width
}

// Set copies up to Width bytes of s.
func (t *Text) Set(s string) {
	if len(s) > t.width {
		s = s[:t.width]
	}
	t.value = s
}

// SetInt stores the decimal form of v.
func (t *Text) SetInt(v int64) {
	t.Set(strconv.FormatInt(v, 10))
}

// SetUint stores the decimal form of v.
func (t *Text) SetUint(v uint64) {
	t.Set(strconv.FormatUint(v, 10))
}

// String returns the bytes preceding the first zero byte.
func (t Text) String() string {
	if i := strings.IndexByte(t.value, 0); i >= 0 {
		return t.value[:i]
	}
	return t.value
}

// Bytes returns the zero padded wire image.
func (t Text) Bytes() []byte {
	b := make([]byte, t.width)
	t.Encode(b)
	return b
}

func (t Text) JSON(bool) string {
	return render.Quote(t.String())
}

func (Text) IsNull() bool { return false }

func (t Text) Size() int { return t.width }

func (t Text) Encode(b []byte) int {
	n := copy(b[:t.width], t.value)
	clear(b[n:t.width])
	return t.width
}

// Decode keeps the receiver's width and reads that many bytes.
func (t *Text) Decode(b []byte) int {
	t.value = string(b[:t.width])
	return t.width
}
