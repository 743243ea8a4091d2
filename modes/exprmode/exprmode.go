// Package exprmode tokenizes the small template-expression language found
// inside "{{ ... }}" placeholders (dotted identifiers, string literals,
// numbers, pipe filters, and the `|`/`.` operators). It is nested two
// levels deep in the product's default configuration: host -> JSON
// payload -> expression placeholder, exercising nesting.NestingMode's
// recursive-nesting path.
package exprmode

import (
	"regexp"
	"unicode"

	"github.com/lasseh/nestjink/nesting"
)

var (
	identPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
	numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?`)
	stringPattern = regexp.MustCompile(`^"(?:[^"\\]|\\.)*"?`)
)

// State is exprmode's per-document state. The grammar is regular enough
// that nothing besides "are we inside a string" needs tracking across
// token() calls, and even that resolves within a single call since
// stringPattern matches a whole literal at once.
type State struct{}

// Mode is the exported nesting.Mode implementation.
type Mode struct{}

// New returns the exprmode Mode. It has no configuration.
func New() *Mode { return &Mode{} }

// StartState implements nesting.Mode.
func (m *Mode) StartState(outerIndent int, nestState *nesting.NestState) nesting.State {
	return &State{}
}

// CopyState implements nesting.Mode. State is immutable (empty), so the
// same value can be reused.
func (m *Mode) CopyState(s nesting.State) nesting.State {
	return &State{}
}

// Token implements nesting.Mode.
func (m *Mode) Token(stream nesting.Stream, s nesting.State) string {
	if stream.EatSpace() > 0 {
		return ""
	}

	if stream.Eat(func(r rune) bool { return r == '|' || r == '.' }) {
		return "operator"
	}

	pattern := nesting.NewRegexPattern(stringPattern.String())
	if match := stream.Match(pattern, true); match != nil {
		return "string"
	}

	pattern = nesting.NewRegexPattern(numberPattern.String())
	if match := stream.Match(pattern, true); match != nil {
		return "number"
	}

	pattern = nesting.NewRegexPattern(identPattern.String())
	if match := stream.Match(pattern, true); match != nil {
		return "variable"
	}

	stream.EatWhile(func(r rune) bool { return !unicode.IsSpace(r) && r != '|' && r != '.' })
	return "error"
}
