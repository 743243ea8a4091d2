package lexer

import (
	"strings"

	"github.com/lasseh/nestjink/nesting"
	"github.com/lasseh/nestjink/stringstream"
)

// Lexer is a convenience wrapper around Mode for callers that just want a
// flat []Token slice for a whole document, matching the shape tests and
// simple tools expect without driving the nesting.Stream contract by hand.
type Lexer struct {
	mode  *Mode
	state *LexerState
	raw   string
}

// New returns a Lexer over input that auto-detects config vs. show-output
// mode, matching the whole-document API older callers (and tests) expect.
// New code that drives the nesting engine directly should use Mode
// (NewMode) instead.
func New(input string) *Lexer {
	m := NewMode()
	return &Lexer{mode: m, state: m.StartState(0, nil).(*LexerState), raw: input}
}

// SetParseMode pins the lexer to a specific ParseMode, disabling
// auto-detection for the remainder of the document.
func (l *Lexer) SetParseMode(pm ParseMode) {
	l.state.parseMode = pm
	l.state.detectedMode = true
}

// GetParseMode returns the lexer's current (possibly auto-detected) mode.
func (l *Lexer) GetParseMode() ParseMode {
	return l.state.parseMode
}

// detectParseMode runs the auto-detection heuristic over the whole
// document without mutating the lexer's own state, for callers that want
// to inspect the verdict directly.
func (l *Lexer) detectParseMode() ParseMode {
	return detectParseMode(l.raw)
}

// Tokenize lexes the whole document line by line and returns every token
// in order, reconstructing the old whole-document Token shape ({Type,
// Value, Line, Column}) on top of the per-line nesting.Mode contract.
// The Type field is TypeForStyle of the style Mode.Token returned;
// whitespace runs and the line breaks between lines come back as
// TokenText tokens.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	lines := strings.Split(l.raw, "\n")
	for lineNum, line := range lines {
		stream := stringstream.New(line)
		for !stream.AtEnd() {
			start := stream.Pos()
			style := l.mode.Token(stream, l.state)
			if stream.Pos() == start {
				stream.Next()
				continue
			}
			value := line[start:stream.Pos()]
			tokens = append(tokens, Token{
				Type:   TypeForStyle(style),
				Value:  value,
				Line:   lineNum + 1,
				Column: start + 1,
			})
		}
		if lineNum < len(lines)-1 {
			tokens = append(tokens, Token{Type: TokenText, Value: "\n", Line: lineNum + 1, Column: len(line) + 1})
		}
	}
	return tokens
}

// TypeForStyle is the reverse of styleForTokenType: it maps a style string
// (as emitted by Mode.Token, or by any nesting.Mode using the same
// vocabulary) back to the legacy TokenType enum, for callers bridging the
// style-string world with TokenType-keyed code such as highlighter.Theme.
func TypeForStyle(style string) TokenType {
	switch style {
	case "command":
		return TokenCommand
	case "section":
		return TokenSection
	case "protocol":
		return TokenProtocol
	case "action":
		return TokenAction
	case "interface":
		return TokenInterface
	case "ipv4":
		return TokenIPv4
	case "ipv4-prefix":
		return TokenIPv4Prefix
	case "ipv6":
		return TokenIPv6
	case "ipv6-prefix":
		return TokenIPv6Prefix
	case "mac":
		return TokenMAC
	case "number":
		return TokenNumber
	case "identifier":
		return TokenIdentifier
	case "keyword":
		return TokenKeyword
	case "unit":
		return TokenUnit
	case "asn":
		return TokenASN
	case "community":
		return TokenCommunity
	case "string":
		return TokenString
	case "value":
		return TokenValue
	case "comment":
		return TokenComment
	case "annotation":
		return TokenAnnotation
	case "brace":
		return TokenBrace
	case "semicolon":
		return TokenSemicolon
	case "wildcard":
		return TokenWildcard
	case "operator":
		return TokenOperator
	case "state-good":
		return TokenStateGood
	case "state-bad":
		return TokenStateBad
	case "state-warning":
		return TokenStateWarning
	case "state-neutral":
		return TokenStateNeutral
	case "column-header":
		return TokenColumnHeader
	case "status-symbol":
		return TokenStatusSymbol
	case "time-duration":
		return TokenTimeDuration
	case "percentage":
		return TokenPercentage
	case "byte-size":
		return TokenByteSize
	case "route-protocol":
		return TokenRouteProtocol
	case "table-name":
		return TokenTableName
	case "prompt-user":
		return TokenPromptUser
	case "prompt-at":
		return TokenPromptAt
	case "prompt-host-oper":
		return TokenPromptHostOper
	case "prompt-host-conf":
		return TokenPromptHostConf
	case "prompt-oper":
		return TokenPromptOper
	case "prompt-conf":
		return TokenPromptConf
	case "diff-add":
		return TokenDiffAdd
	case "diff-remove":
		return TokenDiffRemove
	case "diff-context":
		return TokenDiffContext
	default:
		return TokenText
	}
}

var _ nesting.Mode = (*Mode)(nil)
