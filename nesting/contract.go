// Package nesting implements a nesting tokenizer combinator: given a host
// mode and an ordered set of sub-mode configurations, it produces a mode
// that transparently switches between the host and nested sub-modes based
// on configurable open/close delimiters.
//
// The package only depends on two external contracts, both defined here:
// Stream (a cursor over one line of text, owned by the embedding editor)
// and Mode (the tokenizer interface every host and sub-mode must satisfy,
// including NestingMode itself). Nothing in this package talks to a real
// terminal, file, or editor widget.
package nesting

// State is the opaque per-document tokenizer state a Mode owns. The core
// never inspects it beyond copying the pointer returned by StartState and
// handing it back on the next Token/Indent/BlankLine call.
type State any

// Stream is a cursor over a single line's text. Implementations are
// supplied by the embedder (see package stringstream for a reference
// implementation); the core only ever calls these methods.
type Stream interface {
	// Pos returns the current cursor offset into Value().
	Pos() int
	// SetPos moves the cursor to an absolute offset, 0 <= pos <= len(Value()).
	SetPos(pos int)
	// Value returns the stream's currently visible text. StreamView
	// retraction (§ StreamView) changes what this returns without
	// mutating the real line.
	Value() string
	// AtEnd reports whether the cursor has reached the end of Value().
	AtEnd() bool
	// Next consumes and returns the next rune, or (0, false) at end.
	Next() (rune, bool)
	// Eat consumes the next rune if it satisfies accept, returning true
	// on success.
	Eat(accept func(rune) bool) bool
	// EatWhile consumes runes while accept returns true, returning the
	// count consumed.
	EatWhile(accept func(rune) bool) int
	// SkipTo advances the cursor to the first occurrence of s at or after
	// the current position (cursor unchanged if not found), returning
	// whether it was found.
	SkipTo(s string) bool
	// SkipToEnd advances the cursor to the end of Value().
	SkipToEnd()
	// SOL reports whether the cursor is at the start of the line.
	SOL() bool
	// EatSpace consumes run of space/tab at the cursor, returning the
	// count consumed.
	EatSpace() int
	// Match runs re (already anchored the way the caller needs) against
	// the text from the cursor onward. When consume is true and the
	// match succeeds, the cursor advances past the match. Returns the
	// *Match (Index, Length and Groups relative to the cursor) or nil.
	Match(re Pattern, consume bool) *Match
}

// Indent is the sentinel a Mode's Indent returns to mean "I have no
// opinion, defer to the outer indent logic" (§6 PASS).
const Indent_PASS = -1

// Mode is the contract every host mode, sub-mode, and NestingMode itself
// satisfies (§6).
type Mode interface {
	// StartState creates a fresh per-document state. outerIndent is the
	// indent level inherited from whatever contains this mode (0 at the
	// document root). nestState, when non-nil, is the NestState of the
	// NestingMode this mode is nested under, letting a sub-mode reach
	// shared editor context without a global.
	StartState(outerIndent int, nestState *NestState) State

	// CopyState deep-clones s the way the embedder's line-cache contract
	// requires: the returned state must share no mutable substructure
	// with s.
	CopyState(s State) State

	// Token consumes at least one character from stream (or exhausts the
	// line) and returns the CSS-class-shaped style string for the span it
	// consumed ("" for unstyled text).
	Token(stream Stream, s State) string
}

// IndentMode is implemented by modes that have an opinion about
// indentation (optional per §6).
type IndentMode interface {
	Indent(s State, textAfter string, line string) int
}

// BlankLineMode is implemented by modes that need to do something special
// on a blank line (optional per §6).
type BlankLineMode interface {
	BlankLine(s State)
}

// InnerMode is implemented by modes that can report which mode/state pair
// is currently responsible for styling, used by bracket matchers and by
// recursive NestingMode nesting (optional per §6).
type InnerMode interface {
	InnerMode(s State) (Mode, State)
}

// MetaMode is implemented by modes that expose the meta fields
// compileNestMasksAtMode (§4.1) uses to synthesize string/comment/escape
// masks for free.
type MetaMode interface {
	Meta() Meta
}

// Meta carries the mode-level metadata §4.1 describes.
type Meta struct {
	StringQuotes     []string // e.g. []string{`"`, "'"}
	StringEscape     string   // e.g. `\`
	LineComment      []string // one or more markers, e.g. []string{"#", "//"}
	BlockCommentOpen string
	BlockCommentEnd  string
}
