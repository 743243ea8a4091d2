// Package jsonmode tokenizes the JSON payload nested inside a product's
// "## BEGIN-JSON" / "## END-JSON" fenced block (nestjunos's Separate
// variant). It is itself a nesting.NestingMode: a flat JSON tokenizer
// host with one sub-mode config that recurses into modes/exprmode for
// "{{ ... }}" template placeholders, exercising §4.4's recursive-nesting
// path (a NestingMode nested inside a NestingMode).
package jsonmode

import (
	"regexp"

	"github.com/lasseh/nestjink/modes/exprmode"
	"github.com/lasseh/nestjink/nesting"
)

var (
	numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?`)
	keywordPunct  = regexp.MustCompile(`^(?:true|false|null)\b`)
)

// hostState is the flat JSON host mode's per-document state: whether the
// cursor is positioned right after a ':' (so the next string literal
// styles as a value rather than a key), and whether a string literal is
// still open across this call (resuming one that a nested "{{ }}"
// placeholder interrupted partway through).
type hostState struct {
	afterColon    bool
	inString      bool
	stringIsValue bool
}

// host is the flat (non-nesting) JSON tokenizer that New below uses as
// the host mode of its NestingMode.
type host struct{}

func (h *host) StartState(outerIndent int, nestState *nesting.NestState) nesting.State {
	return &hostState{}
}

func (h *host) CopyState(s nesting.State) nesting.State {
	old := s.(*hostState)
	cp := *old
	return &cp
}

func (h *host) Token(stream nesting.Stream, s nesting.State) string {
	st := s.(*hostState)

	if st.inString {
		return h.continueString(stream, st)
	}

	if stream.EatSpace() > 0 {
		return ""
	}

	if stream.Eat(func(r rune) bool { return r == '{' || r == '}' || r == '[' || r == ']' }) {
		st.afterColon = false
		return "brace"
	}
	if stream.Eat(func(r rune) bool { return r == ':' }) {
		st.afterColon = true
		return "punctuation"
	}
	if stream.Eat(func(r rune) bool { return r == ',' }) {
		st.afterColon = false
		return "punctuation"
	}

	if stream.Eat(func(r rune) bool { return r == '"' }) {
		st.inString = true
		st.stringIsValue = st.afterColon
		st.afterColon = false
		return h.continueString(stream, st)
	}

	if m := stream.Match(nesting.NewRegexPattern(keywordPunct.String()), true); m != nil {
		return "atom"
	}

	if m := stream.Match(nesting.NewRegexPattern(numberPattern.String()), true); m != nil {
		return "number"
	}

	stream.Next()
	return "error"
}

// continueString scans forward from the cursor for the string's closing
// quote, skipping `\` escape pairs as 2-byte units. Called both right
// after the opening quote (the common case, consuming the whole literal
// in one token) and again on a later Token call if a nested "{{ }}"
// placeholder clipped the view partway through: st.inString carries that
// distinction across calls, so a `"` reached on resumption closes the
// same string it opened rather than starting another one.
func (h *host) continueString(stream nesting.Stream, st *hostState) string {
	style := "property"
	if st.stringIsValue {
		style = "string"
	}

	for !stream.AtEnd() {
		r, ok := stream.Next()
		if !ok {
			break
		}
		if r == '\\' {
			stream.Next()
			continue
		}
		if r == '"' {
			st.inString = false
			return style
		}
	}
	return style
}

// New builds the jsonmode NestingMode: a flat JSON host plus one
// compiled Config recursing into exprmode for "{{ ... }}" placeholders.
func New() (*nesting.NestingMode, error) {
	exprConfig, err := nesting.Compile(nesting.Config{
		Open:       nesting.NewStringPattern("{{"),
		Close:      nesting.NewStringPattern("}}"),
		Mode:       exprmode.New(),
		Variant:    nesting.VariantSeparate,
		DelimStyle: "json-placeholder",
		InnerStyle: "json-placeholder-body",
	}, nesting.CompileOptions{Clv: 0})
	if err != nil {
		return nil, err
	}

	return nesting.New(&host{}, []*nesting.Config{exprConfig}, nil), nil
}
