package exprmode

import (
	"testing"

	"github.com/lasseh/nestjink/stringstream"
)

func tokenize(t *testing.T, line string) []struct{ style, value string } {
	t.Helper()
	mode := New()
	state := mode.StartState(0, nil)
	stream := stringstream.New(line)

	var out []struct{ style, value string }
	for !stream.AtEnd() {
		start := stream.Pos()
		style := mode.Token(stream, state)
		if stream.Pos() == start {
			stream.Next()
			continue
		}
		out = append(out, struct{ style, value string }{style, line[start:stream.Pos()]})
	}
	return out
}

func TestDottedIdentifierAndPipeFilter(t *testing.T) {
	toks := tokenize(t, "iface.status | upper")

	want := []struct{ style, value string }{
		{"variable", "iface"},
		{"operator", "."},
		{"variable", "status"},
		{"", " "},
		{"operator", "|"},
		{"", " "},
		{"variable", "upper"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestStringAndNumberLiterals(t *testing.T) {
	toks := tokenize(t, `status == "up" | count 3.5`)

	var sawString, sawNumber bool
	for _, tok := range toks {
		if tok.style == "string" && tok.value == `"up"` {
			sawString = true
		}
		if tok.style == "number" && tok.value == "3.5" {
			sawNumber = true
		}
	}
	if !sawString {
		t.Errorf("expected a string literal token, got %v", toks)
	}
	if !sawNumber {
		t.Errorf("expected a number literal token, got %v", toks)
	}
}

func TestUnrecognizedRunIsError(t *testing.T) {
	toks := tokenize(t, "==")
	if len(toks) != 1 || toks[0].style != "error" {
		t.Errorf("expected a single error token for \"==\", got %v", toks)
	}
}

func TestRoundTrip(t *testing.T) {
	line := `iface.status | default "unknown"`
	toks := tokenize(t, line)
	var got string
	for _, tok := range toks {
		got += tok.value
	}
	if got != line {
		t.Fatalf("round-trip mismatch:\n got: %q\nwant: %q", got, line)
	}
}
