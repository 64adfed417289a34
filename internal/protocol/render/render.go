// Package render owns the textual forms of wire values.
//
// Every field, enumeration and message renders two ways:
// - a diagnostic stream form (String)
// - a JSON form with a verbose/compact switch (JSON)
//
// Composite values build both forms from their members in declaration order.
package render

import (
	"strconv"
	"strings"
)

// Null is the JSON placeholder emitted for members that report IsNull.
const Null = "null"

// Value is the rendering capability shared by all wire values.
type Value interface {
	String() string
	JSON(verbose bool) string
	IsNull() bool
}

// Member names one value inside a composite.
type Member[V Value] struct {
	Name  string
	Value V
}

// Object renders members as a JSON object, preserving member order.
func Object[V Value](members []Member[V], verbose bool) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Quote(m.Name))
		b.WriteByte(':')
		if m.Value.IsNull() {
			b.WriteString(Null)
			continue
		}
		b.WriteString(m.Value.JSON(verbose))
	}
	b.WriteByte('}')
	return b.String()
}

// Stream renders members as "[typeName]=Name: value Name: value".
func Stream[V Value](typeName string, members []Member[V]) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(typeName)
	b.WriteString("]=")
	for i, m := range members {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.Name)
		b.WriteString(": ")
		b.WriteString(m.Value.String())
	}
	return b.String()
}

// Int renders a signed integer as a JSON number.
func Int(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Uint renders an unsigned integer as a JSON number.
func Uint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// Quote renders s as a JSON string literal.
//
// Bytes >= 0x80 are copied through untouched so multi-byte UTF-8 survives.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c <= 0x1f {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0x0f])
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

const hexDigits = "0123456789abcdef"
