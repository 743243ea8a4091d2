// Package lexer classifies JunOS CLI text (configuration syntax, show
// command output, CLI prompts, and `show ... | compare` diffs) into styled
// spans. Mode is a nesting.Mode: it knows nothing about XML, JSON, or any
// other nested payload format — that wiring lives in nestjunos, which
// plugs Mode in as the host mode of a nesting.NestingMode.
package lexer

import (
	"strings"
	"unicode"

	"github.com/lasseh/nestjink/nesting"
)

// sampleCap bounds how much of the document LexerState accumulates before
// giving up on auto-detection and just picking config mode, mirroring the
// whole-document heuristic's original sample size.
const sampleCap = parseModeDetectionSampleSize

// LexerState is Mode's per-document state. Unlike the original Lexer,
// which walked the entire input in one Tokenize call, LexerState persists
// across Token calls (one per line, many per line for long lines) via the
// nesting package's StartState/CopyState contract.
type LexerState struct {
	parseMode     ParseMode
	detectedMode  bool
	sample        string
	expectingValue bool
	expectingUnit  bool
	lastToken      string

	inBlockComment bool

	// promptQueue holds the styled spans (user, '@', host, mode char,
	// command text) of a line that matched promptPattern; each following
	// Token call emits the next span instead of re-lexing the line.
	promptQueue []promptSpan
}

type promptSpan struct {
	style string
	text  string
}

// Mode is the exported nesting.Mode implementation.
type Mode struct {
	forcedParseMode ParseMode
	autoDetect      bool
}

// NewMode returns a Mode that auto-detects config vs. show-output syntax
// from the first lines it sees.
func NewMode() *Mode {
	return &Mode{autoDetect: true}
}

// NewModeWithParseMode returns a Mode pinned to a specific ParseMode,
// skipping auto-detection entirely.
func NewModeWithParseMode(pm ParseMode) *Mode {
	return &Mode{forcedParseMode: pm}
}

func (m *Mode) StartState(outerIndent int, nestState *nesting.NestState) nesting.State {
	st := &LexerState{parseMode: ParseModeAuto}
	if !m.autoDetect {
		st.parseMode = m.forcedParseMode
		st.detectedMode = true
	}
	return st
}

func (m *Mode) CopyState(s nesting.State) nesting.State {
	old := s.(*LexerState)
	cp := *old
	cp.promptQueue = append([]promptSpan(nil), old.promptQueue...)
	return &cp
}

// Meta implements nesting.MetaMode, letting an embedder synthesize
// string/comment masks from the same rules Token applies directly.
func (m *Mode) Meta() nesting.Meta {
	return nesting.Meta{
		StringQuotes:     []string{`"`, `'`},
		StringEscape:     `\`,
		LineComment:      []string{"#"},
		BlockCommentOpen: "/*",
		BlockCommentEnd:  "*/",
	}
}

func (m *Mode) Token(stream nesting.Stream, s nesting.State) string {
	st := s.(*LexerState)

	if len(st.promptQueue) > 0 {
		span := st.promptQueue[0]
		st.promptQueue = st.promptQueue[1:]
		consumeLiteral(stream, span.text)
		return span.style
	}

	if stream.SOL() {
		if st.inBlockComment {
			return scanBlockCommentBody(stream, st)
		}
		if style, ok := scanDiffLine(stream); ok {
			return style
		}
		if queued, ok := tryTokenizePrompt(stream.Value()); ok {
			st.promptQueue = queued
			if len(st.promptQueue) > 0 {
				span := st.promptQueue[0]
				st.promptQueue = st.promptQueue[1:]
				consumeLiteral(stream, span.text)
				return span.style
			}
		}
	}

	if n := stream.EatSpace(); n > 0 {
		return ""
	}

	if len(st.sample) < sampleCap {
		st.sample += stream.Value()[stream.Pos():min(len(stream.Value()), stream.Pos()+64)]
	}

	r, ok := peekRune(stream)
	if !ok {
		stream.Next()
		return ""
	}

	switch {
	case strings.HasPrefix(stream.Value()[stream.Pos():], "/*"):
		return scanBlockCommentStart(stream, st)
	case r == '#':
		return scanLineAnnotationOrComment(stream)
	case r == '"' || r == '\'':
		style := scanString(stream, r)
		if st.expectingValue {
			st.expectingValue = false
			return "value"
		}
		return style
	case r == '{' || r == '}':
		stream.Next()
		return "brace"
	case r == ';':
		stream.Next()
		st.expectingValue = false
		return "semicolon"
	case r == '<':
		// "<...>" containing '*' and no whitespace ("<*>", "<ge-*>") is
		// one wildcard token; any other '<' is an operator.
		rest := stream.Value()[stream.Pos():]
		if end := strings.IndexByte(rest, '>'); end > 0 {
			inner := rest[1:end]
			if strings.Contains(inner, "*") && !strings.ContainsAny(inner, " \t<") {
				stream.SetPos(stream.Pos() + end + 1)
				return "wildcard"
			}
		}
		stream.Next()
		return "operator"
	case r == '*':
		stream.Next()
		return "wildcard"
	case r == '=' || r == '|' || r == '/':
		stream.Next()
		return "operator"
	}

	if !unicode.IsSpace(r) {
		return scanWord(stream, st)
	}

	stream.Next()
	return ""
}

func peekRune(stream nesting.Stream) (rune, bool) {
	v := stream.Value()
	pos := stream.Pos()
	if pos >= len(v) {
		return 0, false
	}
	for _, r := range v[pos:] {
		return r, true
	}
	return 0, false
}

func consumeLiteral(stream nesting.Stream, text string) {
	for range text {
		stream.Next()
	}
}

// scanString consumes a quoted string (double or single quoted), handling
// backslash escapes but not spanning lines (JunOS quoted values are
// single-line).
func scanString(stream nesting.Stream, quote rune) string {
	stream.Next() // opening quote
	for !stream.AtEnd() {
		r, ok := stream.Next()
		if !ok {
			break
		}
		if r == '\\' {
			stream.Next()
			continue
		}
		if r == quote {
			break
		}
	}
	return "string"
}

// scanLineAnnotationOrComment distinguishes "##" product annotations from
// plain "#" line comments; both run to end of line.
func scanLineAnnotationOrComment(stream nesting.Stream) string {
	stream.Next()
	if stream.Eat(func(r rune) bool { return r == '#' }) {
		stream.SkipToEnd()
		return "annotation"
	}
	stream.SkipToEnd()
	return "comment"
}

func scanBlockCommentStart(stream nesting.Stream, st *LexerState) string {
	consumeLiteral(stream, "/*")
	st.inBlockComment = true
	return scanBlockCommentBody(stream, st)
}

func scanBlockCommentBody(stream nesting.Stream, st *LexerState) string {
	line := stream.Value()
	pos := stream.Pos()
	if idx := strings.Index(line[pos:], "*/"); idx >= 0 {
		stream.SetPos(pos + idx + 2)
		st.inBlockComment = false
		return "comment"
	}
	stream.SkipToEnd()
	return "comment"
}

// scanDiffLine recognizes `show ... | compare` output: lines starting
// with "+" (added), "-" (removed), or "[edit ...]" (context header).
// Returns ok=false when the line isn't diff-shaped, leaving the cursor
// untouched.
func scanDiffLine(stream nesting.Stream) (string, bool) {
	line := stream.Value()
	switch {
	case strings.HasPrefix(line, "+   ") || strings.HasPrefix(line, "+ "):
		stream.SkipToEnd()
		return "diff-add", true
	case strings.HasPrefix(line, "-   ") || strings.HasPrefix(line, "- "):
		stream.SkipToEnd()
		return "diff-remove", true
	case strings.HasPrefix(line, "[edit"):
		stream.SkipToEnd()
		return "diff-context", true
	}
	return "", false
}

// tryTokenizePrompt matches a full JunOS CLI prompt line and, on success,
// returns the prompt split into styled spans (user, '@', hostname, mode
// char, trailing command text) queued for sequential consumption.
func tryTokenizePrompt(line string) ([]promptSpan, bool) {
	m := promptPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	edit := m[2]
	user := m[4]
	host := m[5]
	modeChar := m[6]
	rest := m[8]

	var spans []promptSpan
	if edit != "" {
		spans = append(spans, promptSpan{"diff-context", edit})
	}
	spans = append(spans, promptSpan{"prompt-user", user})
	spans = append(spans, promptSpan{"prompt-at", "@"})
	if modeChar == "#" {
		spans = append(spans, promptSpan{"prompt-host-conf", host})
		spans = append(spans, promptSpan{"prompt-conf", modeChar})
	} else {
		spans = append(spans, promptSpan{"prompt-host-oper", host})
		spans = append(spans, promptSpan{"prompt-oper", modeChar})
	}
	if rest != "" {
		spans = append(spans, promptSpan{"", " "}, promptSpan{"command-text", rest})
	}
	return spans, true
}

// scanWord consumes a run of non-space, non-delimiter characters and
// classifies it via the shared classification tables.
func scanWord(stream nesting.Stream, st *LexerState) string {
	start := stream.Pos()
	stream.EatWhile(func(r rune) bool {
		switch r {
		case ' ', '\t', '{', '}', ';', '"', '#', '<', '*':
			return false
		}
		return !unicode.IsSpace(r)
	})
	word := stream.Value()[start:stream.Pos()]
	if word == "" {
		stream.Next()
		return ""
	}
	tt := st.classifyWord(word)
	return styleForTokenType(tt)
}

// styleForTokenType maps the legacy TokenType enum to the lowercase,
// hyphenated style strings Mode.Token emits, keeping highlighter's theme
// keys readable CSS-class names.
func styleForTokenType(t TokenType) string {
	switch t {
	case TokenCommand:
		return "command"
	case TokenSection:
		return "section"
	case TokenProtocol:
		return "protocol"
	case TokenAction:
		return "action"
	case TokenInterface:
		return "interface"
	case TokenIPv4:
		return "ipv4"
	case TokenIPv4Prefix:
		return "ipv4-prefix"
	case TokenIPv6:
		return "ipv6"
	case TokenIPv6Prefix:
		return "ipv6-prefix"
	case TokenMAC:
		return "mac"
	case TokenNumber:
		return "number"
	case TokenIdentifier:
		return "identifier"
	case TokenKeyword:
		return "keyword"
	case TokenUnit:
		return "unit"
	case TokenASN:
		return "asn"
	case TokenCommunity:
		return "community"
	case TokenValue:
		return "value"
	case TokenStateGood:
		return "state-good"
	case TokenStateBad:
		return "state-bad"
	case TokenStateWarning:
		return "state-warning"
	case TokenStateNeutral:
		return "state-neutral"
	case TokenColumnHeader:
		return "column-header"
	case TokenStatusSymbol:
		return "status-symbol"
	case TokenTimeDuration:
		return "time-duration"
	case TokenPercentage:
		return "percentage"
	case TokenByteSize:
		return "byte-size"
	case TokenRouteProtocol:
		return "route-protocol"
	case TokenTableName:
		return "table-name"
	default:
		return ""
	}
}
