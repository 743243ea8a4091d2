package nesting

// ParserStep is the tagged discriminant for "which step function runs
// next" (§3, §9 "ad-hoc FSM via step-function reassignment" rewritten as
// a single step(state, stream) dispatcher instead of closures).
type ParserStep int

const (
	StepTopEntry ParserStep = iota
	StepUntilOpen
	StepStartSub
	StepUntilEOL
	StepSubAtSOL
	StepSubContinuation
	StepFinalizeDirect
	StepFinalizeToDelim
	StepFinalizeToNull
	StepDelimOpen
	StepDelimClose
	StepMaskEntry
	StepMaskAtSOL
	StepMaskUntilEOL
	StepMaskContinuation
	StepFinalizeMaskToHost
	StepUntilSubInnerClose
)

func (s ParserStep) String() string {
	names := [...]string{
		"TopEntry", "UntilOpen", "StartSub", "UntilEOL", "SubAtSOL",
		"SubContinuation", "FinalizeDirect", "FinalizeToDelim",
		"FinalizeToNull", "DelimOpen", "DelimClose", "MaskEntry",
		"MaskAtSOL", "MaskUntilEOL", "MaskContinuation",
		"FinalizeMaskToHost", "UntilSubInnerClose",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// StackFrame is one element of the sub-mode stack (§3): one currently (or
// formerly) active non-mask sub-mode below the host.
type StackFrame struct {
	Config     *Config
	State      State
	StartMatch *Match
	EndMatch   *Match
}

// maskFrame is one element of the active mask stack (§4.5). Masks get
// their own stack rather than reusing SubConfig/SubState, replacing the
// source's "fake activation" of the host mode as a pseudo sub-mode (§9).
type maskFrame struct {
	config *Config
	// hostLike is true when this mask is a root-level (Clv==0) mask: its
	// content is tokenized by the enclosing host/sub mode itself, using
	// that mode's own State, rather than a distinct sub-state.
	hostLike bool
}

// EntryKind records how a pending sub-mode entry was found, so StartSub
// knows whether the open delimiter starts at the cursor or further along
// the line.
type EntryKind int

const (
	EntryAtCursor EntryKind = iota
	EntryAhead
)

// pendingEntry is the transient "a sub-mode entry is about to happen"
// record (§3 NestState.nextEntry).
type pendingEntry struct {
	match *Match
	kind  EntryKind
}

// NestState is the per-line, copyable tokenizer state NestingMode owns
// (§3). It is created by StartState, cloned by CopyState after every
// line, and never shared across documents.
type NestState struct {
	hostMode  Mode
	HostState State

	SubConfig *Config
	SubState  State

	Parser ParserStep

	masks []*maskFrame

	// suffixes is valid only for the next effective open-search
	// attempt(s); cleared per invariant 6.
	suffixes []*Config

	nextEntry  *pendingEntry
	pendingEnd *Match

	// delimHelperState is the VariantTokenizeWith helper mode's own state
	// while a delimiter region spans more than one Token() call.
	delimHelperState State

	// originalLine backs up the true line contents while a parser step
	// has retracted the stream's visible line end (§3 invariant 3).
	originalLine string
	retracted    bool

	Stack     []StackFrame
	NestLevel int

	// electricRequest is the outstanding ElectricSpec registered by the
	// most recent delimiter consumption, consulted by Indent (§4.6).
	electricRequest *ElectricSpec

	// ctx is the explicit editor handle threaded through Start callbacks
	// (§9 "implicit bidirectional parent pointer" replacement). Only the
	// root NestState of a NestingMode tree sets this directly; nested
	// NestingModes inherit it via outerNest at StartState time.
	ctx *EditorContext
}

// InnerMode reports which mode/state pair is currently responsible for
// styling (§4.7), used by bracket matchers.
func (s *NestState) InnerMode() (Mode, State) {
	if s.SubConfig != nil {
		if im, ok := s.SubConfig.resolveForInner(); ok {
			if nested, nestedState, ok := recurseInnerMode(im, s.SubState); ok {
				return nested, nestedState
			}
		}
		return s.SubConfig.Mode, s.SubState
	}
	return s.hostMode, s.HostState
}

// resolveForInner returns the already-resolved mode for InnerMode
// delegation, when one is set (masks and unresolved-ModeSpec configs
// report ok=false and the caller falls back to the config's own fields).
func (c *Config) resolveForInner() (Mode, bool) {
	if c.Mode == nil {
		return nil, false
	}
	return c.Mode, true
}

func recurseInnerMode(m Mode, s State) (Mode, State, bool) {
	im, ok := m.(InnerMode)
	if !ok {
		return nil, nil, false
	}
	innerMode, innerState := im.InnerMode(s)
	if innerMode == nil {
		return nil, nil, false
	}
	return innerMode, innerState, true
}
