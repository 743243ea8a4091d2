// Package xmlmode tokenizes the XML payload nested inside a product's
// "## BEGIN-XML" / "## END-XML" fenced block (nestjunos's Static
// variant). It is deliberately flat: tags, attributes, and text content,
// with no further nesting, matching the Static variant's contract that
// the sub-mode never sees the delimiter text itself.
package xmlmode

import (
	"regexp"
	"strings"

	"github.com/lasseh/nestjink/nesting"
)

var (
	tagNamePattern  = regexp.MustCompile(`^[A-Za-z_][\w.:-]*`)
	attrNamePattern = regexp.MustCompile(`^[A-Za-z_][\w.:-]*`)
	attrValPattern  = regexp.MustCompile(`^"[^"]*"|^'[^']*'`)
)

// State tracks whether the cursor is inside a tag's angle brackets, the
// one piece of context needed to tell attribute names from element text.
type State struct {
	inTag bool
}

// Mode is the exported nesting.Mode implementation.
type Mode struct{}

// New returns the xmlmode Mode.
func New() *Mode { return &Mode{} }

func (m *Mode) StartState(outerIndent int, nestState *nesting.NestState) nesting.State {
	return &State{}
}

func (m *Mode) CopyState(s nesting.State) nesting.State {
	old := s.(*State)
	cp := *old
	return &cp
}

func (m *Mode) Token(stream nesting.Stream, s nesting.State) string {
	st := s.(*State)

	if stream.EatSpace() > 0 {
		return ""
	}

	if !st.inTag {
		if stream.Eat(func(r rune) bool { return r == '<' }) {
			st.inTag = true
			return "tag-bracket"
		}
		stream.EatWhile(func(r rune) bool { return r != '<' })
		return "text"
	}

	if stream.Eat(func(r rune) bool { return r == '>' }) {
		st.inTag = false
		return "tag-bracket"
	}
	if stream.Eat(func(r rune) bool { return r == '/' }) {
		return "tag-bracket"
	}
	if stream.Eat(func(r rune) bool { return r == '=' }) {
		return "punctuation"
	}

	// A name is an attribute name only when "=" follows it (spaces and
	// tabs allowed in between); otherwise it falls through to tag-name.
	if match := stream.Match(nesting.NewRegexPattern(attrNamePattern.String()), false); match != nil {
		after := stream.Value()[stream.Pos()+match.Length:]
		if strings.HasPrefix(strings.TrimLeft(after, " \t"), "=") {
			stream.SetPos(stream.Pos() + match.Length)
			return "attribute-name"
		}
	}
	if match := stream.Match(nesting.NewRegexPattern(attrValPattern.String()), true); match != nil {
		return "attribute-value"
	}
	if match := stream.Match(nesting.NewRegexPattern(tagNamePattern.String()), true); match != nil {
		return "tag-name"
	}

	stream.Next()
	return "error"
}
