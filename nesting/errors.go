package nesting

import "errors"

// Configuration errors (§7): returned from Compile. ErrConfigUnresolvedMode
// can also arise during Token, when a ModeSpec fails to resolve at
// sub-mode entry; there it is only traced, the entry is skipped, and the
// error is not returned to the caller.
var (
	ErrConfigMissingOpen    = errors.New("nesting: config missing Open pattern")
	ErrConfigUnresolvedMode = errors.New("nesting: config mode unresolved")
)

// Runtime invariant errors (§5): these indicate a bug in this package or
// in a caller violating the state-machine's contract, not bad input.
var (
	ErrStackUnderflow = errors.New("nesting: stack frame underflow")
	ErrMaskUnderflow  = errors.New("nesting: mask stack underflow")
)
