package nesting

import "strings"

// TopParser (§4.3): searching for a sub-mode entry at the host level, and
// the SubParser continuation (§4.4) once one is active. Both halves share
// NestState's single ParserStep dispatch; this file holds every step
// function that isn't mask-related (see masksm.go) or delimiter-variant
// plumbing (see subparser.go).

// rootConfigs returns the configs to search at the host level: any
// outstanding suffixes first (highest priority, §4.3 suffix chaining),
// then the normal sub-mode set in declaration order.
func (m *NestingMode) rootConfigs(state *NestState) []*Config {
	if len(state.suffixes) == 0 {
		return m.subConfigs
	}
	combined := make([]*Config, 0, len(state.suffixes)+len(m.subConfigs))
	combined = append(combined, state.suffixes...)
	combined = append(combined, m.subConfigs...)
	return combined
}

// stepTopEntry implements §4.3 TopEntry: search for the next sub-mode (or
// suffix, or host-level mask) open from the cursor; PreStartSub's retract
// is folded in here rather than being its own step.
func (m *NestingMode) stepTopEntry(stream Stream, state *NestState) (string, bool) {
	line := stream.Value()
	pos := stream.Pos()

	configs := m.rootConfigs(state)
	match := searchOpen(line, pos, configs)

	isSuffixMatch := match != nil && configIsIn(match.Config, state.suffixes)
	isBlank := strings.TrimSpace(line) == ""

	switch {
	case match == nil && !isBlank:
		state.suffixes = nil
	case match == nil && isBlank:
		state.suffixes = filterInline(state.suffixes)
	default:
		// Any search attempt on a non-blank line uses up the suffix
		// window (§3 invariant 6), whether or not a suffix actually won.
		if !isBlank || isSuffixMatch {
			state.suffixes = nil
		}
	}

	if match == nil {
		state.Parser = StepUntilEOL
		return "", false
	}

	if match.AbsoluteIndex == pos {
		state.nextEntry = &pendingEntry{match: match, kind: EntryAtCursor}
		state.Parser = StepStartSub
		return "", false
	}

	retractTo(stream, state, match.AbsoluteIndex)
	state.nextEntry = &pendingEntry{match: match, kind: EntryAhead}
	state.Parser = StepUntilOpen
	return "", false
}

func configIsIn(c *Config, list []*Config) bool {
	for _, l := range list {
		if l == c {
			return true
		}
	}
	return false
}

func filterInline(list []*Config) []*Config {
	kept := make([]*Config, 0, len(list))
	for _, c := range list {
		if !c.Inline {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// stepUntilOpen runs the host mode up to the retracted boundary just
// before a sub-mode's open delimiter (§4.3 UntilOpen).
func (m *NestingMode) stepUntilOpen(stream Stream, state *NestState) (string, bool) {
	style := m.callToken(state.hostMode, stream, state.HostState)
	if stream.AtEnd() {
		restore(stream, state)
		state.Parser = StepStartSub
	}
	return style, true
}

// stepUntilEOL runs whichever mode currently owns tokenization (host at
// the top level, the active sub-mode otherwise) for one token, re-entering
// the appropriate entry/continuation step once the line is exhausted.
func (m *NestingMode) stepUntilEOL(stream Stream, state *NestState) (string, bool) {
	var style string
	if state.SubConfig == nil {
		style = m.callToken(state.hostMode, stream, state.HostState)
		if stream.AtEnd() {
			state.Parser = StepTopEntry
		}
	} else {
		style = m.callToken(state.SubConfig.Mode, stream, state.SubState)
		if style == "" {
			style = state.SubConfig.InnerStyle
		}
		if stream.AtEnd() {
			state.Parser = StepSubAtSOL
		}
	}
	return style, true
}

// stepSubAtSOL replays the close/open check at the start of a new line,
// before any content is tokenized, mirroring stepMaskAtSOL's symmetry for
// an active sub-mode rather than a mask (§3 SubAtSOL).
func (m *NestingMode) stepSubAtSOL(stream Stream, state *NestState) (string, bool) {
	state.Parser = StepSubContinuation
	return "", false
}

// stepStartSub activates the sub-mode (or host-level mask) a search just
// found (§4.3 StartSub).
func (m *NestingMode) stepStartSub(stream Stream, state *NestState) (string, bool) {
	entry := state.nextEntry
	state.nextEntry = nil
	match := entry.match
	cfg := match.Config

	if cfg.IsMask {
		state.nextEntry = &pendingEntry{match: match, kind: EntryAtCursor}
		state.Parser = StepMaskEntry
		return "", false
	}

	effective := cfg
	if cfg.Start != nil {
		delta, err := cfg.Start(match, state.ctx)
		if err != nil {
			trace("Start callback error for config %v: %v", cfg.Open, err)
		} else if delta.Mode != nil || delta.ModeSpec.Name != "" || delta.InnerStyle != "" {
			overridden := *cfg
			if delta.Mode != nil {
				overridden.Mode = delta.Mode
			}
			if delta.ModeSpec.Name != "" {
				overridden.ModeSpec = delta.ModeSpec
			}
			if delta.InnerStyle != "" {
				overridden.InnerStyle = delta.InnerStyle
			}
			effective = &overridden
		}
	}

	mode, err := effective.resolvedMode(state.ctx)
	if err != nil {
		trace("mode resolution failed, skipping sub-mode entry: %v", err)
		consumeN(stream, max(match.Length, 1))
		state.Parser = StepTopEntry
		return "", true
	}
	if mode != effective.Mode {
		// ModeSpec resolved lazily: cache the concrete Mode on a
		// per-instance copy rather than mutating the shared compiled
		// Config, which other NestState trees may be using concurrently.
		resolved := *effective
		resolved.Mode = mode
		effective = &resolved
	}

	outerIndent := 0
	subState := mode.StartState(outerIndent, state)

	state.Stack = append(state.Stack, StackFrame{Config: effective, State: subState, StartMatch: match})
	state.NestLevel++
	state.SubConfig = effective
	state.SubState = subState

	if effective.Variant == VariantInclude {
		state.Parser = StepSubContinuation
		return "", false
	}

	state.Parser = StepDelimOpen
	return "", false
}

// stepDelimOpen surfaces the sub-mode's open delimiter text per its
// configured variant (§4.4).
func (m *NestingMode) stepDelimOpen(stream Stream, state *NestState) (string, bool) {
	frame := &state.Stack[len(state.Stack)-1]
	style, finished := m.delimStep(stream, state, frame.Config, frame.StartMatch, RoleOpen, frame.State)
	if finished {
		m.fireElectric(state, frame.Config, DelimOpenKind)
		state.Parser = StepSubContinuation
	}
	if style == "" && !finished {
		return "", false
	}
	return style, true
}

// stepSubContinuation is the shared "continuation" FSM of §4.4, evaluated
// fresh on every call while a sub-mode is active: it decides, in priority
// order, whether to delegate to a deeper already-active nested
// NestingMode, let a nested NestingMode open further before checking our
// own close, enter one of our own masks, finalize against our own close,
// or simply keep tokenizing ordinary content.
func (m *NestingMode) stepSubContinuation(stream Stream, state *NestState) (string, bool) {
	frame := &state.Stack[len(state.Stack)-1]
	cfg := frame.Config
	line := stream.Value()
	pos := stream.Pos()
	atSOL := stream.SOL()

	if nm, ok := cfg.Mode.(*NestingMode); ok {
		if nested, ok := frame.State.(*NestState); ok && nested.SubConfig != nil {
			state.Parser = StepUntilSubInnerClose
			return "", false
		}
		end := searchClose(line, pos, cfg, atSOL)
		if nested, ok := frame.State.(*NestState); ok {
			openCandidate := nm.peekOpen(nested, line, pos)
			if winsAgainst(openCandidate, end) {
				style := m.callToken(cfg.Mode, stream, frame.State)
				return style, true
			}
		}
		return m.evaluateClose(stream, state, frame, cfg, end)
	}

	end := searchClose(line, pos, cfg, atSOL)
	return m.evaluateClose(stream, state, frame, cfg, end)
}

// evaluateClose is the remainder of stepSubContinuation's priority order:
// masks, then the close itself (immediate, distance, or none).
func (m *NestingMode) evaluateClose(stream Stream, state *NestState, frame *StackFrame, cfg *Config, end *Match) (string, bool) {
	line := stream.Value()
	pos := stream.Pos()

	if len(cfg.Masks) > 0 {
		maskOpen := searchMaskOpen(line, pos, cfg.Masks)
		if winsAgainst(maskOpen, end) {
			state.nextEntry = &pendingEntry{match: maskOpen, kind: EntryAtCursor}
			state.Parser = StepMaskEntry
			return "", false
		}
	}

	if end == nil {
		state.Parser = StepUntilEOL
		return "", false
	}
	state.pendingEnd = end

	switch {
	case end.AbsoluteIndex == pos && end.Length > 0:
		retractTo(stream, state, end.AbsoluteIndex+end.Length)
		state.Parser = StepFinalizeDirect
		return "", false
	case end.AbsoluteIndex == pos:
		// Zero-width close right at the cursor: nothing to tokenize and no
		// delimiter text to surface.
		m.finishSub(state)
		return "", false
	case end.Length == 0:
		retractTo(stream, state, end.AbsoluteIndex)
		state.Parser = StepFinalizeToNull
		return "", false
	default:
		retractTo(stream, state, end.AbsoluteIndex)
		state.Parser = StepFinalizeToDelim
		return "", false
	}
}

// stepFinalizeDirect handles a close found exactly at the cursor with
// non-empty delimiter text: surface it, then finalize.
func (m *NestingMode) stepFinalizeDirect(stream Stream, state *NestState) (string, bool) {
	return m.closeDelimStep(stream, state)
}

// stepDelimClose is reached after FinalizeToDelim has tokenized ordinary
// content up to the close; it surfaces the close delimiter text itself.
func (m *NestingMode) stepDelimClose(stream Stream, state *NestState) (string, bool) {
	return m.closeDelimStep(stream, state)
}

// closeDelimStep is shared by stepFinalizeDirect and stepDelimClose: both
// consume/surface the close delimiter text per variant, then finalize.
func (m *NestingMode) closeDelimStep(stream Stream, state *NestState) (string, bool) {
	frame := &state.Stack[len(state.Stack)-1]
	end := state.pendingEnd
	style, finished := m.delimStep(stream, state, frame.Config, end, RoleClose, frame.State)
	if finished {
		state.pendingEnd = nil
		m.fireElectric(state, frame.Config, DelimCloseKind)
		m.finishSub(state)
	}
	if style == "" && !finished {
		return "", false
	}
	return style, true
}

// stepFinalizeToDelim tokenizes ordinary content up to (but not
// including) the close delimiter, then hands off to stepDelimClose.
func (m *NestingMode) stepFinalizeToDelim(stream Stream, state *NestState) (string, bool) {
	frame := &state.Stack[len(state.Stack)-1]
	style := m.callToken(frame.Config.Mode, stream, frame.State)
	if style == "" {
		style = frame.Config.InnerStyle
	}
	if stream.AtEnd() {
		restore(stream, state)
		state.Parser = StepDelimClose
	}
	return style, true
}

// stepFinalizeToNull tokenizes ordinary content up to a zero-width close
// found further along the line, then finalizes without surfacing any
// delimiter token.
func (m *NestingMode) stepFinalizeToNull(stream Stream, state *NestState) (string, bool) {
	frame := &state.Stack[len(state.Stack)-1]
	style := m.callToken(frame.Config.Mode, stream, frame.State)
	if style == "" {
		style = frame.Config.InnerStyle
	}
	if stream.AtEnd() {
		restore(stream, state)
		state.pendingEnd = nil
		m.finishSub(state)
	}
	return style, true
}

// stepUntilSubInnerClose delegates to an already-doubly-nested sub-mode
// until it settles back to its own top level.
func (m *NestingMode) stepUntilSubInnerClose(stream Stream, state *NestState) (string, bool) {
	frame := &state.Stack[len(state.Stack)-1]
	style := m.callToken(frame.Config.Mode, stream, frame.State)
	if nested, ok := frame.State.(*NestState); ok && nested.SubConfig == nil {
		state.Parser = StepSubContinuation
	}
	return style, true
}

// finishSub pops the active sub-mode frame, publishes its suffixes (if
// any) for the next TopEntry search, and resets to TopEntry. Per §4.4,
// this itself never surfaces a token; the loop continues so the very same
// Token() call makes real progress from TopEntry.
func (m *NestingMode) finishSub(state *NestState) {
	if len(state.Stack) == 0 {
		// Reachable only if something drove Parser into a sub-continuation
		// step with no frame pushed (a bug in this package, not bad input);
		// recover by falling back to TopEntry rather than panicking.
		trace("%v: finishSub with no active stack frame", ErrStackUnderflow)
		state.Parser = StepTopEntry
		return
	}
	frame := state.Stack[len(state.Stack)-1]
	state.Stack = state.Stack[:len(state.Stack)-1]
	state.NestLevel--
	state.SubConfig = nil
	state.SubState = nil
	if len(frame.Config.Suffix) > 0 {
		state.suffixes = frame.Config.Suffix
	}
	if len(state.Stack) > 0 {
		parent := state.Stack[len(state.Stack)-1]
		state.SubConfig = parent.Config
		state.SubState = parent.State
		state.Parser = StepSubContinuation
		return
	}
	state.Parser = StepTopEntry
}

// fireElectric notifies a Config's electric-delimiter hook, if any, after
// the corresponding delimiter text has been fully consumed (§4.6).
func (m *NestingMode) fireElectric(state *NestState, cfg *Config, kind DelimKind) {
	if cfg.Electric == nil || cfg.Electric.Configure == nil {
		return
	}
	if spec := cfg.Electric.Configure(state, kind); spec != nil {
		state.electricRequest = spec
	}
}

// peekOpen runs the same search stepTopEntry would, without mutating
// state, so an outer NestingMode can decide whether its nested
// NestingMode wants to open further before checking its own close.
func (m *NestingMode) peekOpen(state *NestState, line string, pos int) *Match {
	configs := m.rootConfigs(state)
	return searchOpen(line, pos, configs)
}
