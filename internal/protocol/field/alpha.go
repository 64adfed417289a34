package field

import "github.com/danmuck/lsewire/internal/protocol/render"

// Alpha is a single ASCII character field.
type Alpha byte

// Set stores the first byte of s, or zero when s is empty.
func (a *Alpha) Set(s string) {
	if s == "" {
		*a = 0
		return
	}
	*a = Alpha(s[0])
}

// Byte returns the stored character.
func (a Alpha) Byte() byte {
	return byte(a)
}

// String renders the character, or nothing when it is zero.
func (a Alpha) String() string {
	if a == 0 {
		return ""
	}
	return string([]byte{byte(a)})
}

// JSON always renders a one-character string, escaping a zero byte.
func (a Alpha) JSON(bool) string {
	return render.Quote(string([]byte{byte(a)}))
}

func (Alpha) IsNull() bool { return false }

func (Alpha) Size() int { return 1 }

func (a Alpha) Encode(b []byte) int {
	b[0] = byte(a)
	return 1
}

func (a *Alpha) Decode(b []byte) int {
	*a = Alpha(b[0])
	return 1
}
