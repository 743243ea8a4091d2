package nesting

import "regexp"

// Pattern is a compiled delimiter spec (§4.1). Strings become patterns by
// regex-escaping every character; an already-a-regex spec is compiled
// as-is. Patterns are not anchored themselves — callers always exec
// against a line slice starting at the position they care about, exactly
// as spec.md §4.1 describes.
type Pattern struct {
	re  *regexp.Regexp
	src string
}

// Match is the result of running a Pattern against a stream, enriched
// (§3 MatchRecord) with the config and role that produced it once
// DelimSearch gets hold of it.
type Match struct {
	Index   int      // offset of the match relative to the search start
	Length  int       // length of the matched text
	Groups  []string // submatch groups, Groups[0] is the full match
	Text    string    // the matched text, equal to Groups[0]

	// Populated by DelimSearch/continuation, not by Pattern.Exec itself.
	Config        *Config
	AbsoluteIndex int
	OriginalIndex int
	Role          Role
	State         *NestState
}

// Role distinguishes an open match from a close match (§3 MatchRecord).
type Role int

const (
	RoleOpen Role = iota
	RoleClose
)

// NewStringPattern compiles a literal string delimiter by escaping every
// regex metacharacter in it.
func NewStringPattern(literal string) Pattern {
	return Pattern{re: regexp.MustCompile(regexp.QuoteMeta(literal)), src: literal}
}

// NewRegexPattern compiles an already-regex delimiter spec verbatim. The
// caller is responsible for anchoring (e.g. `^` for start-of-text
// patterns like close-at-SOL); most delimiter regexes are deliberately
// unanchored so they can be found anywhere in the remaining line.
func NewRegexPattern(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(expr), src: expr}
}

// closeAtSOL is the pattern used when a Config has no explicit close: it
// succeeds with a zero-width match, but only when invoked at start of
// line (§4.1).
var closeAtSOL = Pattern{re: regexp.MustCompile(`^`), src: "<close-at-SOL>"}

// String returns the pattern's original source (string literal or regex),
// useful for debugging and for building delimStyle names.
func (p Pattern) String() string { return p.src }

// IsZero reports whether p was never compiled (the zero Pattern), used to
// distinguish "no close configured" from "close configured as closeAtSOL".
func (p Pattern) IsZero() bool { return p.re == nil }

// Exec runs the pattern against text starting at fromOffset, returning the
// match position relative to fromOffset (so Index==0 means "matches right
// here"), or nil. This is the canonical exec(text.slice(from)) primitive
// §3 and §4.1 describe: Exec slices text at fromOffset itself, so callers
// pass the whole line and the offset.
func (p Pattern) Exec(text string, fromOffset int) *Match {
	if p.re == nil || fromOffset > len(text) {
		return nil
	}
	sub := text[fromOffset:]
	loc := p.re.FindStringSubmatchIndex(sub)
	if loc == nil {
		return nil
	}
	groups := make([]string, len(loc)/2)
	for i := range groups {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 {
			continue
		}
		groups[i] = sub[s:e]
	}
	return &Match{
		Index:  loc[0],
		Length: loc[1] - loc[0],
		Groups: groups,
		Text:   groups[0],
	}
}
