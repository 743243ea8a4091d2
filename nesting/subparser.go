package nesting

// This file holds the per-variant mechanics shared by delimiter-open and
// delimiter-close handling (§4.4): the four SubParser variants differ
// only in how they surface delimiter characters as tokens, so both
// StepDelimOpen/StepFinalizeDirect/StepDelimClose in topparser.go funnel
// through delimStep here rather than duplicating the switch four times.

// delimStyleFor returns the precomputed open/close style for cfg
// depending on role.
func delimStyleFor(cfg *Config, role Role) string {
	if role == RoleClose {
		return cfg.CloseStyle()
	}
	return cfg.OpenStyle()
}

// consumeN advances stream by n runes worth of bytes measured from the
// text slice it was matched against; since Pattern.Exec works on byte
// slices of a Go string, n here is a byte count, consistent with
// Match.Length.
func consumeN(stream Stream, n int) {
	stream.SetPos(stream.Pos() + n)
}

// delimStep implements one dispatch of "consume the delimiter text for
// the given role, styled per cfg.Variant" (§4.4's per-variant table). It
// is called once per Token() invocation and may need several calls to
// fully consume a multi-character delimiter under Separate/TokenizeWith,
// exactly like UntilOpen/UntilEOL elsewhere in this package.
//
// Returns the style to emit and whether the delimiter region is now
// fully consumed (so the caller can advance past DelimOpen/DelimClose).
func (m *NestingMode) delimStep(stream Stream, state *NestState, cfg *Config, match *Match, role Role, frameState State) (style string, finished bool) {
	switch cfg.Variant {
	case VariantInclude:
		// Delimiter text is ordinary content; nothing to do here. Callers
		// route Include straight past delimStep into continuation.
		return "", true

	case VariantStatic:
		consumeN(stream, match.Length)
		return delimStyleFor(cfg, role), true

	case VariantSeparate, VariantTokenizeWith:
		if !state.retracted {
			retractTo(stream, state, stream.Pos()+match.Length)
		}
		var inner string
		if cfg.Variant == VariantTokenizeWith && cfg.DelimMode != nil {
			if state.delimHelperState == nil {
				state.delimHelperState = cfg.DelimMode.StartState(0, state)
			}
			inner = m.callToken(cfg.DelimMode, stream, state.delimHelperState)
		} else {
			inner = m.callToken(cfg.Mode, stream, frameState)
		}
		style = combineStyle(inner, delimStyleFor(cfg, role))
		if stream.AtEnd() {
			restore(stream, state)
			state.delimHelperState = nil
			finished = true
		}
		return style, finished

	default:
		return "", true
	}
}

// combineStyle joins two CSS-class-shaped style strings, skipping empty
// ones, matching the "<delimStyle> <delimStyle>-open" space-joined shape
// §4.1 specifies.
func combineStyle(a, b string) string {
	switch {
	case a == "" && b == "":
		return ""
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
