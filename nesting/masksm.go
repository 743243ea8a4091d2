package nesting

// Mask sub-machine (§4.5): non-exiting regions, possibly recursively
// nested (e.g. an escape sequence inside a string). Masks get an
// explicit maskFrame stack (state.go) rather than a fake activation of
// the host mode as a pseudo sub-mode.

// stepMaskEntry consumes the just-matched mask's open text (masks are
// only ever entered at the cursor; stepSubContinuation/stepMaskContinuation
// both search from the current position before advancing further, so a
// winning mask-open match always starts exactly there) and pushes its
// frame.
func (m *NestingMode) stepMaskEntry(stream Stream, state *NestState) (string, bool) {
	entry := state.nextEntry
	state.nextEntry = nil
	cfg := entry.match.Config

	hostLike := true
	if len(state.masks) > 0 {
		hostLike = state.masks[len(state.masks)-1].hostLike
	} else if state.SubConfig != nil {
		hostLike = false
	}
	state.masks = append(state.masks, &maskFrame{config: cfg, hostLike: hostLike})

	consumeN(stream, entry.match.Length)
	state.Parser = StepMaskContinuation
	style := cfg.OpenStyle()
	if style == "" {
		style = cfg.InnerStyle
	}
	if entry.match.Length == 0 {
		// A zero-width mask open makes no progress; let the loop continue
		// straight into evaluating its close/content this same call.
		return "", false
	}
	return style, true
}

// maskTokenTarget returns the mode/state pair that owns content tokenized
// while frame is the innermost active mask.
func (m *NestingMode) maskTokenTarget(state *NestState, frame *maskFrame) (Mode, State) {
	if frame.hostLike {
		return state.hostMode, state.HostState
	}
	top := state.Stack[len(state.Stack)-1]
	return top.Config.Mode, top.State
}

// popMaskFrame pops the innermost mask, consumes its close text and
// returns its close style plus whether the frame it closed was
// host-level, so the caller knows where control returns to.
func popMaskFrame(stream Stream, state *NestState, end *Match) (style string, wasHostLike bool) {
	top := state.masks[len(state.masks)-1]
	state.masks = state.masks[:len(state.masks)-1]
	consumeN(stream, end.Length)
	return top.config.CloseStyle(), top.hostLike
}

// stepMaskContinuation re-evaluates, on every call while masks are
// active, whether the innermost mask's own nested masks fire, whether its
// close is immediately at the cursor, or whether ordinary content needs
// tokenizing up to a close found further along the line (§4.5's
// checkEnd/MaskContinuation, folded into one re-entrant step since
// nothing about the line changes between one evaluation and the content
// actually being tokenized).
func (m *NestingMode) stepMaskContinuation(stream Stream, state *NestState) (string, bool) {
	if len(state.masks) == 0 {
		// Reachable only if something drove Parser to StepMaskContinuation
		// without a mask frame to match it (a bug in this package, not bad
		// input); recover by falling back to TopEntry rather than panicking.
		trace("%v: stepMaskContinuation with no active mask frame", ErrMaskUnderflow)
		state.Parser = StepTopEntry
		return "", false
	}
	top := state.masks[len(state.masks)-1]
	line := stream.Value()
	pos := stream.Pos()
	atSOL := stream.SOL()

	end := searchClose(line, pos, top.config, atSOL)

	if len(top.config.Masks) > 0 {
		nested := searchMaskOpen(line, pos, top.config.Masks)
		if winsAgainst(nested, end) {
			state.nextEntry = &pendingEntry{match: nested, kind: EntryAtCursor}
			state.Parser = StepMaskEntry
			return "", false
		}
	}

	if end == nil {
		state.Parser = StepMaskUntilEOL
		return "", false
	}

	if end.AbsoluteIndex > pos {
		// Content between the cursor and the close still needs tokenizing.
		state.pendingEnd = end
		retractTo(stream, state, end.AbsoluteIndex)
		state.Parser = StepMaskUntilEOL
		return "", false
	}

	style, wasHostLike := popMaskFrame(stream, state, end)
	state.transitionAfterMaskClose(wasHostLike)
	if end.Length == 0 {
		return "", false
	}
	return style, true
}

// transitionAfterMaskClose sets Parser once a mask's close has been fully
// consumed, depending on whether another mask is still open above it.
func (s *NestState) transitionAfterMaskClose(wasHostLike bool) {
	switch {
	case len(s.masks) > 0:
		s.Parser = StepMaskContinuation
	case wasHostLike:
		s.Parser = StepFinalizeMaskToHost
	default:
		s.Parser = StepSubContinuation
	}
}

// stepMaskUntilEOL tokenizes ordinary content inside the innermost mask
// using whichever mode owns this region. When stepMaskContinuation
// retracted the stream to stop short of a close found further along the
// line, reaching that boundary here means the close itself is next, not
// end of line.
func (m *NestingMode) stepMaskUntilEOL(stream Stream, state *NestState) (string, bool) {
	top := state.masks[len(state.masks)-1]
	mode, frameState := m.maskTokenTarget(state, top)
	style := m.callToken(mode, stream, frameState)

	if !stream.AtEnd() {
		return style, true
	}
	if state.retracted && state.pendingEnd != nil {
		restore(stream, state)
		end := state.pendingEnd
		state.pendingEnd = nil
		closeStyle, wasHostLike := popMaskFrame(stream, state, end)
		state.transitionAfterMaskClose(wasHostLike)
		return combineStyle(style, closeStyle), true
	}
	state.Parser = StepMaskAtSOL
	return style, true
}

// stepMaskAtSOL replays the close/nested-mask check at the start of a new
// line, before any content is tokenized.
func (m *NestingMode) stepMaskAtSOL(stream Stream, state *NestState) (string, bool) {
	state.Parser = StepMaskContinuation
	return "", false
}

// stepFinalizeMaskToHost returns control to TopEntry once the outermost
// mask (one entered directly under the host, Clv==0) has fully closed.
// Because hostLike masks always tokenized using state.HostState directly
// rather than a forked copy, there is no state to copy back here — this
// step only exists to restore any outstanding retraction and reset Parser.
func (m *NestingMode) stepFinalizeMaskToHost(stream Stream, state *NestState) (string, bool) {
	restore(stream, state)
	state.Parser = StepTopEntry
	return "", false
}
