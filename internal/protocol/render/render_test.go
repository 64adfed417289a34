package render

import (
	"strconv"
	"testing"
)

type stubValue struct {
	text string
	json string
	null bool
}

func (s stubValue) String() string   { return s.text }
func (s stubValue) JSON(bool) string { return s.json }
func (s stubValue) IsNull() bool     { return s.null }

type modeValue int

func (m modeValue) String() string { return strconv.Itoa(int(m)) }
func (m modeValue) JSON(verbose bool) string {
	if verbose {
		return Quote("v" + m.String())
	}
	return m.String()
}
func (modeValue) IsNull() bool { return false }

func TestObjectPreservesOrderWithoutTrailingComma(t *testing.T) {
	members := []Member[stubValue]{
		{Name: "A", Value: stubValue{text: "10", json: "10"}},
		{Name: "B", Value: stubValue{text: "x", json: Quote("x")}},
	}
	if got := Object(members, false); got != `{"A":10,"B":"x"}` {
		t.Fatalf("unexpected object: %s", got)
	}
}

func TestObjectSubstitutesNull(t *testing.T) {
	members := []Member[stubValue]{
		{Name: "A", Value: stubValue{json: "1"}},
		{Name: "B", Value: stubValue{json: "2", null: true}},
	}
	if got := Object(members, true); got != `{"A":1,"B":null}` {
		t.Fatalf("unexpected object: %s", got)
	}
}

func TestObjectPassesMode(t *testing.T) {
	members := []Member[modeValue]{{Name: "Q", Value: 7}}
	if got := Object(members, true); got != `{"Q":"v7"}` {
		t.Fatalf("verbose object: %s", got)
	}
	if got := Object(members, false); got != `{"Q":7}` {
		t.Fatalf("compact object: %s", got)
	}
}

func TestObjectEmpty(t *testing.T) {
	if got := Object([]Member[stubValue]{}, true); got != "{}" {
		t.Fatalf("unexpected empty object: %s", got)
	}
}

func TestStream(t *testing.T) {
	members := []Member[stubValue]{
		{Name: "Start", Value: stubValue{text: "2"}},
		{Name: "Length", Value: stubValue{text: "122"}},
		{Name: "Type", Value: stubValue{text: "D"}},
	}
	want := "[Header]=Start: 2 Length: 122 Type: D"
	if got := Stream("Header", members); got != want {
		t.Fatalf("stream mismatch: got=%q want=%q", got, want)
	}
}

func TestQuoteEscapes(t *testing.T) {
	cases := map[string]string{
		"plain":     `"plain"`,
		`a"b`:       `"a\"b"`,
		`a\b`:       `"a\\b"`,
		"tab\tnl\n": `"tab\tnl\n"`,
		"\b\f\r":    `"\b\f\r"`,
		"\x00":      `"\u0000"`,
		"\x1f":      `"\u001f"`,
		"é":         `"é"`,
	}
	for in, want := range cases {
		if got := Quote(in); got != want {
			t.Fatalf("Quote(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNumbers(t *testing.T) {
	if got := Int(-42); got != "-42" {
		t.Fatalf("Int: %s", got)
	}
	if got := Uint(18446744073709551615); got != "18446744073709551615" {
		t.Fatalf("Uint: %s", got)
	}
}
