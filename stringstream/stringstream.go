// Package stringstream is a reference implementation of nesting.Stream:
// a cursor over one line of text, the kind of object the embedding
// editor owns and hands to a nesting.Mode one line at a time.
package stringstream

import (
	"strings"
	"unicode/utf8"

	"github.com/lasseh/nestjink/nesting"
)

// StringStream is a cursor over a single line, plus scoped retraction
// support (nesting's retractable interface, §2): a nesting.Mode delegating to a
// sub-mode can temporarily shorten what Value() reports without touching
// the real line.
type StringStream struct {
	line string // the true, full line text
	view string // what Value() currently reports (== line unless retracted)
	pos  int
}

// New creates a StringStream over one line of text.
func New(line string) *StringStream {
	return &StringStream{line: line, view: line}
}

// Pos returns the current cursor offset.
func (s *StringStream) Pos() int { return s.pos }

// SetPos moves the cursor to an absolute offset.
func (s *StringStream) SetPos(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.view) {
		pos = len(s.view)
	}
	s.pos = pos
}

// Value returns the currently visible text.
func (s *StringStream) Value() string { return s.view }

// AtEnd reports whether the cursor is at the end of Value().
func (s *StringStream) AtEnd() bool { return s.pos >= len(s.view) }

// Next consumes and returns the next rune.
func (s *StringStream) Next() (rune, bool) {
	if s.AtEnd() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.view[s.pos:])
	s.pos += size
	return r, true
}

// Eat consumes the next rune if accept returns true for it.
func (s *StringStream) Eat(accept func(rune) bool) bool {
	if s.AtEnd() {
		return false
	}
	r, size := utf8.DecodeRuneInString(s.view[s.pos:])
	if !accept(r) {
		return false
	}
	s.pos += size
	return true
}

// EatWhile consumes runes while accept holds, returning the count.
func (s *StringStream) EatWhile(accept func(rune) bool) int {
	n := 0
	for s.Eat(accept) {
		n++
	}
	return n
}

// SkipTo advances the cursor to the first occurrence of sub at or after
// pos, returning whether it was found. The cursor is left unchanged if
// not found.
func (s *StringStream) SkipTo(sub string) bool {
	idx := strings.Index(s.view[s.pos:], sub)
	if idx < 0 {
		return false
	}
	s.pos += idx
	return true
}

// SkipToEnd moves the cursor to the end of Value().
func (s *StringStream) SkipToEnd() { s.pos = len(s.view) }

// SOL reports whether the cursor is at the start of the line.
func (s *StringStream) SOL() bool { return s.pos == 0 }

// EatSpace consumes a run of space/tab characters.
func (s *StringStream) EatSpace() int {
	return s.EatWhile(func(r rune) bool { return r == ' ' || r == '\t' })
}

// Match runs re against the text from the cursor onward, per
// nesting.Stream's contract.
func (s *StringStream) Match(re nesting.Pattern, consume bool) *nesting.Match {
	m := re.Exec(s.view, s.pos)
	if m == nil || m.Index != 0 {
		// Stream.Match is "does it match right here", unlike the core's
		// own unanchored DelimSearch use of Pattern.Exec.
		return nil
	}
	if consume {
		s.pos += m.Length
	}
	return m
}

// Retract implements the retractable interface nesting/streamview.go needs:
// it shortens Value() to its first end bytes (measured from the true
// line) without discarding the true line.
func (s *StringStream) Retract(end int) {
	if end < 0 {
		end = 0
	}
	if end > len(s.line) {
		end = len(s.line)
	}
	s.view = s.line[:end]
}

// Restore implements retractable: it puts Value() back to the true,
// full line.
func (s *StringStream) Restore(full string) {
	s.view = full
	s.line = full
}

