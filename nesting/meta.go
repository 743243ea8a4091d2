package nesting

import "regexp"

// CompileMasksFromMeta synthesizes root-level (Clv 0) mask Configs from a
// MetaMode's Meta (§4.1 compileNestMasksAtMode): one mask per string quote
// and one per line-comment marker, plus a block-comment mask when both
// BlockCommentOpen and BlockCommentEnd are set. Callers append the result
// to the Config slice passed to New so string/comment regions take part
// in the same priority search as every other root-level sub-mode.
//
// Meta.LineComment is a slice rather than a single string (§9 open
// question) specifically so a host with more than one comment marker
// gets a mask per marker instead of forcing callers to pick one.
func CompileMasksFromMeta(meta Meta, opts CompileOptions) ([]*Config, error) {
	var raw []Config

	// A string's own close quote must not fire on an escaped quote
	// (`\"` inside a `"`-delimited string). Rather than hand-rolling an
	// "unescaped quote" regex, an escape sequence is its own mask nested
	// inside the string mask (§4.5): `\` plus the one character it
	// protects always starts no later than any quote it's shielding, so
	// stepMaskContinuation's nested-mask check (masksm.go) always enters
	// the escape mask first and consumes the pair as a unit before the
	// string's own close pattern ever sees it.
	var escapeMasks []*Config
	if meta.StringEscape != "" {
		escapeMasks = []*Config{{
			Open:       NewRegexPattern(regexp.QuoteMeta(meta.StringEscape) + `.`),
			Close:      hereEmptyPattern,
			InnerStyle: "string",
			IsMask:     true,
		}}
	}

	for _, quote := range meta.StringQuotes {
		raw = append(raw, Config{
			Open:       NewStringPattern(quote),
			Close:      NewStringPattern(quote),
			DelimStyle: "string",
			IsMask:     true,
			Masks:      escapeMasks,
		})
	}

	for _, marker := range meta.LineComment {
		raw = append(raw, Config{
			Open:       NewStringPattern(marker),
			Close:      eolPattern,
			DelimStyle: "comment",
			IsMask:     true,
		})
	}

	if meta.BlockCommentOpen != "" && meta.BlockCommentEnd != "" {
		raw = append(raw, Config{
			Open:       NewStringPattern(meta.BlockCommentOpen),
			Close:      NewStringPattern(meta.BlockCommentEnd),
			DelimStyle: "comment",
			IsMask:     true,
		})
	}

	compiled := make([]*Config, 0, len(raw))
	for _, r := range raw {
		c, err := Compile(r, opts)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, c)
	}
	return compiled, nil
}

// eolPattern matches zero-width at the end of whatever's left in the
// current search window, the "rest of line" close every line-comment
// mask uses.
var eolPattern = NewRegexPattern(`$`)

// hereEmptyPattern matches zero-width at the cursor itself, regardless of
// start-of-line position (unlike closeAtSOL, which only fires at SOL).
// The escape mask uses it so the escaped pair closes the instant its two
// bytes are consumed, with no further content or close text of its own.
var hereEmptyPattern = NewRegexPattern(`^`)
