// Package enum owns the closed code vocabularies of the order entry protocol.
//
// Each vocabulary is one label table consulted by both the stream and the
// JSON renderers. Codes missing from a table are kept as-is and rendered
// with an "Invalid <Name>" label; decoding never rejects a code.
package enum

import (
	"strconv"

	"github.com/danmuck/lsewire/internal/protocol/render"
)

// Code is the underlying representation of every enumeration.
type Code interface {
	~uint8
}

// Entry pairs a raw code with its canonical label.
type Entry[T Code] struct {
	Code  T
	Label string
}

// Vocabulary maps the raw codes of one enumeration to labels.
type Vocabulary[T Code] struct {
	name   string
	char   bool
	labels map[T]string
	codes  []T
}

func newVocabulary[T Code](name string, entries ...Entry[T]) *Vocabulary[T] {
	v := &Vocabulary[T]{
		name:   name,
		labels: make(map[T]string, len(entries)),
		codes:  make([]T, 0, len(entries)),
	}
	for _, e := range entries {
		if _, dup := v.labels[e.Code]; dup {
			panic("enum: duplicate code in " + name)
		}
		v.labels[e.Code] = e.Label
		v.codes = append(v.codes, e.Code)
	}
	return v
}

// newCharVocabulary declares a vocabulary whose codes are ASCII characters.
// Known codes print as '<c>'.
func newCharVocabulary[T Code](name string, entries ...Entry[T]) *Vocabulary[T] {
	v := newVocabulary(name, entries...)
	v.char = true
	return v
}

func (v *Vocabulary[T]) Name() string {
	return v.name
}

// Label returns the canonical label of code.
func (v *Vocabulary[T]) Label(code T) (string, bool) {
	label, ok := v.labels[code]
	return label, ok
}

func (v *Vocabulary[T]) Known(code T) bool {
	_, ok := v.labels[code]
	return ok
}

// Codes returns the known codes in declaration order.
func (v *Vocabulary[T]) Codes() []T {
	out := make([]T, len(v.codes))
	copy(out, v.codes)
	return out
}

// Stream renders "<raw>(<Label>)", or "<raw>(Invalid <Name>)" for an
// unknown code.
func (v *Vocabulary[T]) Stream(code T) string {
	label, ok := v.labels[code]
	if !ok {
		return strconv.Itoa(int(code)) + "(Invalid " + v.name + ")"
	}
	if v.char {
		return "'" + string([]byte{byte(code)}) + "'(" + label + ")"
	}
	return strconv.Itoa(int(code)) + "(" + label + ")"
}

// JSON renders the quoted stream form when verbose and the bare numeric
// code otherwise.
func (v *Vocabulary[T]) JSON(code T, verbose bool) string {
	if verbose {
		return render.Quote(v.Stream(code))
	}
	return render.Uint(uint64(code))
}

func encodeCode[T Code](b []byte, code T) int {
	b[0] = byte(code)
	return 1
}

func decodeCode[T Code](b []byte, code *T) int {
	*code = T(b[0])
	return 1
}
