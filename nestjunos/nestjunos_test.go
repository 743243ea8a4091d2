package nestjunos

import (
	"strings"
	"testing"

	"github.com/lasseh/nestjink/nesting"
	"github.com/lasseh/nestjink/stringstream"
)

// tokenizeDocument drives a NestingMode across every line of doc, the way
// an embedder would, and returns the (style, value) pairs in order. A
// style of "" for whitespace/punctuation the host doesn't style is kept
// so callers can assert on exact reconstruction.
func tokenizeDocument(t *testing.T, mode *nesting.NestingMode, doc string) []struct{ style, value string } {
	t.Helper()

	var out []struct{ style, value string }
	lines := strings.Split(doc, "\n")
	state := mode.StartState(0, nil)
	for _, line := range lines {
		stream := stringstream.New(line)
		for !stream.AtEnd() {
			start := stream.Pos()
			style := mode.Token(stream, state)
			if stream.Pos() == start {
				stream.Next()
				continue
			}
			out = append(out, struct{ style, value string }{style, line[start:stream.Pos()]})
		}
		state = mode.CopyState(state)
	}
	return out
}

func reconstruct(toks []struct{ style, value string }) string {
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.value)
	}
	return b.String()
}

// hasClass reports whether one of style's space-joined classes equals
// class. Delimiter tokens carry a "<base> <base>-open"/"<base>
// <base>-close" pair (Config.OpenStyle/CloseStyle), sometimes prefixed
// with an inner mode's own style (Separate/TokenizeWith variants), so
// callers check membership rather than exact equality.
func hasClass(style, class string) bool {
	for _, c := range strings.Fields(style) {
		if c == class {
			return true
		}
	}
	return false
}

func TestNewDefaultOptionsWiresBothSubModes(t *testing.T) {
	mode, err := New(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if mode == nil {
		t.Fatal("New() returned nil mode")
	}
}

func TestXMLFenceIsRecognizedAndStyled(t *testing.T) {
	mode, err := New(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	doc := "set system host-name router\n" +
		"## BEGIN-XML\n" +
		"<rpc-reply><name>ge-0/0/0</name></rpc-reply>\n" +
		"## END-XML\n" +
		"set interfaces ge-0/0/1 description test\n"

	toks := tokenizeDocument(t, mode, doc)

	// Round-trip: concatenating every emitted value must reproduce the
	// lines (minus the newlines tokenizeDocument doesn't feed through).
	want := strings.ReplaceAll(doc, "\n", "")
	if got := reconstruct(toks); got != want {
		t.Fatalf("round-trip mismatch:\n got: %q\nwant: %q", got, want)
	}

	var sawFence, sawTagName bool
	for _, tok := range toks {
		if hasClass(tok.style, "xml-fence") {
			sawFence = true
		}
		if tok.style == "tag-name" {
			sawTagName = true
		}
	}
	if !sawFence {
		t.Error("expected a token carrying the \"xml-fence\" class for the ## BEGIN-XML/## END-XML markers")
	}
	if !sawTagName {
		t.Error("expected at least one token styled \"tag-name\" inside the rpc-reply body")
	}
}

func TestJSONFenceWithExprAndDigestSuffix(t *testing.T) {
	mode, err := New(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	digest := strings.Repeat("a1", 32) // 64 hex chars
	doc := "## BEGIN-JSON\n" +
		`{"interface": "ge-0/0/0", "status": "{{ iface.status }}"}` + "\n" +
		"## END-JSON sha256:" + digest + "\n"

	toks := tokenizeDocument(t, mode, doc)

	want := strings.ReplaceAll(doc, "\n", "")
	if got := reconstruct(toks); got != want {
		t.Fatalf("round-trip mismatch:\n got: %q\nwant: %q", got, want)
	}

	var sawJSONFence, sawProperty, sawVariable, sawDigest bool
	for _, tok := range toks {
		if hasClass(tok.style, "json-fence") {
			sawJSONFence = true
		}
		switch tok.style {
		case "property":
			sawProperty = true
		case "variable":
			sawVariable = true
		case "digest":
			sawDigest = true
			if !strings.HasPrefix(tok.value, "sha256:") {
				t.Errorf("digest token value %q missing sha256: prefix", tok.value)
			}
		}
	}
	if !sawJSONFence {
		t.Error("expected a token carrying the \"json-fence\" class")
	}
	if !sawProperty {
		t.Error("expected a token styled \"property\" for a JSON key")
	}
	if !sawVariable {
		t.Error("expected a token styled \"variable\" inside the {{ }} placeholder")
	}
	if !sawDigest {
		t.Error("expected a trailing sha256 digest token after ## END-JSON")
	}
}

func TestFenceMarkerInsideQuotesIsNotRecognized(t *testing.T) {
	mode, err := New(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// A description string that happens to contain fence-like text must
	// stay inside the string mask, never trigger XML recognition.
	doc := `set interfaces ge-0/0/0 description "see ## BEGIN-XML for details"` + "\n"

	toks := tokenizeDocument(t, mode, doc)

	want := strings.ReplaceAll(doc, "\n", "")
	if got := reconstruct(toks); got != want {
		t.Fatalf("round-trip mismatch:\n got: %q\nwant: %q", got, want)
	}

	for _, tok := range toks {
		if hasClass(tok.style, "xml-fence") {
			t.Error("fence marker inside a quoted string must not be recognized as an XML fence")
		}
	}
}

func TestOptionsCanDisableEitherSubMode(t *testing.T) {
	mode, err := New(nil, Options{XML: false, JSON: true})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	doc := "## BEGIN-XML\n<a>b</a>\n## END-XML\n"
	toks := tokenizeDocument(t, mode, doc)

	for _, tok := range toks {
		if hasClass(tok.style, "xml-fence") {
			t.Error("XML sub-mode disabled via Options but fence was still recognized")
		}
	}
}
