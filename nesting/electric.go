package nesting

import "strings"

// DelimKind distinguishes which side of a delimiter pair was just
// consumed, passed to ElectricConfigure (§4.6).
type DelimKind int

const (
	DelimOpenKind DelimKind = iota
	DelimCloseKind
)

// ElectricSpec is what ElectricConfigure registers on NestState; on the
// next Indent call its Indent takes precedence over the mode-owned indent
// when Test(line) is true.
type ElectricSpec struct {
	Test   func(line string) bool
	Indent func(state *NestState, textAfter string, line string) int
}

// ElectricDelimiters is the optional per-Config hook (§4.6). Configure is
// called immediately after the parser consumes a delimiter token; a
// non-nil return registers itself on the state.
type ElectricDelimiters struct {
	Configure func(state *NestState, kind DelimKind) *ElectricSpec
}

// DefaultElectricDelimiters implements "re-indent any line that begins
// (after whitespace) with the close delimiter using the host mode's
// indent", the default behavior spec.md §4.6 describes for
// `electricDelimiters: true`.
func DefaultElectricDelimiters(closeText string) *ElectricDelimiters {
	return &ElectricDelimiters{
		Configure: func(state *NestState, kind DelimKind) *ElectricSpec {
			if kind != DelimCloseKind {
				return nil
			}
			return &ElectricSpec{
				Test: func(line string) bool {
					return strings.HasPrefix(strings.TrimLeft(line, " \t"), closeText)
				},
				Indent: func(state *NestState, textAfter, line string) int {
					if state.hostMode == nil {
						return Indent_PASS
					}
					if im, ok := state.hostMode.(IndentMode); ok {
						return im.Indent(state.HostState, textAfter, line)
					}
					return Indent_PASS
				},
			}
		},
	}
}
