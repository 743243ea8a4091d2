package nesting

// NestingMode is the public facade (§4.7, §6): a Mode built from a host
// mode and an ordered set of compiled sub-mode Configs, transparently
// switching between them as it tokenizes.
type NestingMode struct {
	host       Mode
	subConfigs []*Config
	resolver   Resolver
}

// New builds a NestingMode. configs must already be compiled (see
// Compile); resolver may be nil if every config resolves its mode
// statically (no ModeSpec-only configs).
func New(host Mode, configs []*Config, resolver Resolver) *NestingMode {
	return &NestingMode{host: host, subConfigs: configs, resolver: resolver}
}

// StartState creates the root NestState for a fresh document. outerIndent
// and nestState follow the Mode contract; nestState is non-nil only when
// this NestingMode itself is acting as someone else's sub-mode (recursive
// nesting, e.g. a template-expression mode nested inside a JSON mode
// nested inside a host).
func (m *NestingMode) StartState(outerIndent int, nestState *NestState) State {
	s := &NestState{
		hostMode: m.host,
		Parser:   StepTopEntry,
	}
	if nestState != nil && nestState.ctx != nil {
		s.ctx = nestState.ctx
	} else {
		s.ctx = &EditorContext{Resolver: m.resolver}
	}
	s.HostState = m.host.StartState(outerIndent, s)
	return s
}

// CopyState deep-clones a NestState: every field that could be mutated
// independently afterward is cloned, including the sub-mode stack and
// mask stack, so the embedder's line-cache contract holds (§3 invariant
// 5, §6 CopyState).
func (m *NestingMode) CopyState(s State) State {
	old := s.(*NestState)
	cp := *old
	cp.HostState = m.host.CopyState(old.HostState)

	if len(old.Stack) > 0 {
		cp.Stack = make([]StackFrame, len(old.Stack))
		for i, f := range old.Stack {
			nf := f
			if f.Config.Mode != nil {
				nf.State = f.Config.Mode.CopyState(f.State)
			}
			cp.Stack[i] = nf
		}
		top := cp.Stack[len(cp.Stack)-1]
		cp.SubConfig = top.Config
		cp.SubState = top.State
	}

	if len(old.masks) > 0 {
		cp.masks = make([]*maskFrame, len(old.masks))
		for i, f := range old.masks {
			nf := *f
			cp.masks[i] = &nf
		}
	}

	if len(old.suffixes) > 0 {
		cp.suffixes = append([]*Config(nil), old.suffixes...)
	}

	cp.nextEntry = nil
	cp.pendingEnd = nil
	cp.originalLine = ""
	cp.retracted = false
	cp.delimHelperState = nil
	cp.electricRequest = nil

	return &cp
}

// callToken invokes mode.Token, falling back to consuming one character
// with no style if mode is nil (a misconfigured ModeSpec that failed to
// resolve) so the forward-progress invariant still holds.
func (m *NestingMode) callToken(mode Mode, stream Stream, s State) string {
	if mode == nil {
		stream.Next()
		return ""
	}
	return mode.Token(stream, s)
}

// Token is the main dispatch loop (§3, §9): it repeatedly runs the step
// function named by state.Parser until one of them reports real progress
// (a style to emit, possibly empty, after consuming characters or
// exhausting the line), then returns. Steps that only rearrange state
// (entering a sub-mode, finalizing one, checking a mask) loop internally
// without returning to the caller.
func (m *NestingMode) Token(stream Stream, s State) string {
	state := s.(*NestState)

	for {
		var style string
		var done bool
		switch state.Parser {
		case StepTopEntry:
			style, done = m.stepTopEntry(stream, state)
		case StepUntilOpen:
			style, done = m.stepUntilOpen(stream, state)
		case StepStartSub:
			style, done = m.stepStartSub(stream, state)
		case StepUntilEOL:
			style, done = m.stepUntilEOL(stream, state)
		case StepSubAtSOL:
			style, done = m.stepSubAtSOL(stream, state)
		case StepSubContinuation:
			style, done = m.stepSubContinuation(stream, state)
		case StepDelimOpen:
			style, done = m.stepDelimOpen(stream, state)
		case StepDelimClose:
			style, done = m.stepDelimClose(stream, state)
		case StepFinalizeDirect:
			style, done = m.stepFinalizeDirect(stream, state)
		case StepFinalizeToDelim:
			style, done = m.stepFinalizeToDelim(stream, state)
		case StepFinalizeToNull:
			style, done = m.stepFinalizeToNull(stream, state)
		case StepUntilSubInnerClose:
			style, done = m.stepUntilSubInnerClose(stream, state)
		case StepMaskEntry:
			style, done = m.stepMaskEntry(stream, state)
		case StepMaskContinuation:
			style, done = m.stepMaskContinuation(stream, state)
		case StepMaskUntilEOL:
			style, done = m.stepMaskUntilEOL(stream, state)
		case StepMaskAtSOL:
			style, done = m.stepMaskAtSOL(stream, state)
		case StepFinalizeMaskToHost:
			style, done = m.stepFinalizeMaskToHost(stream, state)
		default:
			// Unreachable for any state produced by this package; fail
			// safe by consuming one char rather than looping forever.
			stream.Next()
			return ""
		}
		if done {
			return style
		}
	}
}

// Indent implements IndentMode: it consults an outstanding electric
// request first (§4.6), then the mode currently responsible for styling.
func (m *NestingMode) Indent(s State, textAfter, line string) int {
	state := s.(*NestState)
	if state.electricRequest != nil && state.electricRequest.Test(line) {
		req := state.electricRequest
		state.electricRequest = nil
		return req.Indent(state, textAfter, line)
	}
	mode, ms := state.InnerMode()
	if im, ok := mode.(IndentMode); ok {
		return im.Indent(ms, textAfter, line)
	}
	return Indent_PASS
}

// BlankLine implements BlankLineMode by forwarding to whichever mode owns
// the current region.
func (m *NestingMode) BlankLine(s State) {
	state := s.(*NestState)
	mode, ms := state.InnerMode()
	if bl, ok := mode.(BlankLineMode); ok {
		bl.BlankLine(ms)
	}
}

// InnerMode implements InnerMode by delegating to NestState.InnerMode.
func (m *NestingMode) InnerMode(s State) (Mode, State) {
	state := s.(*NestState)
	return state.InnerMode()
}
