package nesting

import "fmt"

// Variant selects which of the four SubParser behaviors (§4.4) a Config
// uses to surface its open/close delimiter characters as tokens.
type Variant int

const (
	// VariantStatic emits one precomputed delimStyle-open/-close token
	// for the delimiter text; the sub-mode never sees it.
	VariantStatic Variant = iota
	// VariantSeparate re-tokenizes the delimiter text with the sub-mode
	// itself, prefixed with delimStyle-open/-close.
	VariantSeparate
	// VariantTokenizeWith tokenizes the delimiter text with a dedicated
	// helper mode (its own state), prefixed with delimStyle-open/-close.
	VariantTokenizeWith
	// VariantInclude passes the delimiter text through the sub-mode as
	// ordinary content; no separate token is emitted for it.
	VariantInclude
)

// ModeSpec names a mode plus its construction options, resolved to a
// concrete Mode by a mode registry (§6). Config.Mode may hold either a
// ModeSpec (resolved lazily via Resolver) or an already-concrete Mode.
type ModeSpec struct {
	Name    string
	Options map[string]any
}

// Resolver resolves a ModeSpec to a concrete Mode (the mode registry
// contract, §6). Side-effect-free except for caching.
type Resolver interface {
	Resolve(spec ModeSpec) (Mode, error)
}

// ConfigDelta is what a Config's Start callback returns: a small record
// of per-instance overrides rather than a mutation of the shared Config
// (§9 "Config objects with dynamically added instance methods").
type ConfigDelta struct {
	Mode       Mode     // overrides Config.mode for this instance, if non-nil
	ModeSpec   ModeSpec // overrides Config.ModeSpec for this instance, if Name != ""
	InnerStyle string   // overrides Config.InnerStyle for this instance, if non-empty
}

// IndentFunc computes a sub-mode's starting indent (§3 Config.indent).
// Returning Indent_PASS defers to the outer indent.
type IndentFunc func(outerIndent int, match *Match, nest *NestState) int

// StartFunc is a Config's dynamic per-instance override hook (§3
// Config.start). It must be pure with respect to match (§5).
type StartFunc func(match *Match, ctx *EditorContext) (ConfigDelta, error)

// Comparator is the priority-arbitration hook (§4.2). comp is asked only
// on the currently-held candidate ("this"); true means this keeps
// priority, false means other replaces it.
type Comparator func(this, other *Match) bool

// EditorContext is the explicit handle a Start callback uses to reach
// whatever context the embedder wants to expose, replacing the implicit
// bidirectional nestState->editor chain the source relied on (§9).
type EditorContext struct {
	Resolver Resolver
	Extra    any
}

// Config is a compiled, immutable sub-mode descriptor (§3). Zero value is
// invalid; build one with Compile.
type Config struct {
	Open  Pattern
	Close Pattern // IsZero() means "close at start of next line"

	Mode     Mode
	ModeSpec ModeSpec // used when Mode is nil and a Resolver is available

	// DelimMode is the dedicated helper mode VariantTokenizeWith uses to
	// tokenize the delimiter text itself, distinct from Mode (which
	// tokenizes the nested content).
	DelimMode Mode

	Start  StartFunc
	Indent IndentFunc

	Variant Variant

	InnerStyle string // style applied while the sub-mode's own token() doesn't already style something
	DelimStyle string // base name; OpenStyle()/CloseStyle() derive the -open/-close forms

	IsMask bool
	Masks  []*Config
	Suffix []*Config // declared as "suffixes" in spec.md; spelled Suffix here, plural via the slice

	Comp Comparator

	Clv int // configuration nesting level: 0 = root-level under the host mode

	Electric *ElectricDelimiters

	// Inline marks a suffix as one that should still be discarded (not
	// retried) when searchOpen is invoked on a blank line (§4.3 suffix
	// chaining / invariant 6).
	Inline bool
}

// OpenStyle returns the precomputed "<delimStyle> <delimStyle>-open" form
// (§4.1), or "" if DelimStyle is unset.
func (c *Config) OpenStyle() string {
	if c.DelimStyle == "" {
		return ""
	}
	return c.DelimStyle + " " + c.DelimStyle + "-open"
}

// CloseStyle returns the precomputed "<delimStyle> <delimStyle>-close" form.
func (c *Config) CloseStyle() string {
	if c.DelimStyle == "" {
		return ""
	}
	return c.DelimStyle + " " + c.DelimStyle + "-close"
}

// resolvedMode returns c.Mode, resolving c.ModeSpec via ctx.Resolver on
// first use. A mask Config is exempt (masks don't tokenize with a
// separate mode; they run the enclosing host/sub-mode's own token()).
func (c *Config) resolvedMode(ctx *EditorContext) (Mode, error) {
	if c.Mode != nil {
		return c.Mode, nil
	}
	if c.ModeSpec.Name == "" {
		if c.IsMask {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: config has neither Mode nor ModeSpec", ErrConfigUnresolvedMode)
	}
	if ctx == nil || ctx.Resolver == nil {
		return nil, fmt.Errorf("%w: no Resolver available for mode %q", ErrConfigUnresolvedMode, c.ModeSpec.Name)
	}
	mode, err := ctx.Resolver.Resolve(c.ModeSpec)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %q: %v", ErrConfigUnresolvedMode, c.ModeSpec.Name, err)
	}
	return mode, nil
}

// defaultComparator implements the tie-break rule of §4.2: at the same
// offset a null-width match wins over a consuming one; among consuming
// matches the longest wins; otherwise the leftmost wins.
func defaultComparator(this, other *Match) bool {
	if this == nil {
		return false
	}
	if other == nil {
		return true
	}
	if this.Index == other.Index {
		if this.Length == 0 {
			return true
		}
		return this.Length >= other.Length && other.Length > 0
	}
	return this.Index < other.Index
}

// CompileOptions are the inputs Compile needs beyond the raw Config
// fields: the declared nesting level and whether this config is itself a
// mask (both propagate to Masks/Suffix recursively).
type CompileOptions struct {
	Clv    int
	IsMask bool
}

// Compile normalizes and validates a raw Config, recursively compiling
// Masks and Suffix at clv+1, and installing the default comparator when
// none is set. It is the only place Config.Clv/IsMask/Comp are assigned,
// so compiling the same raw Config twice is idempotent (§3 invariant 5).
func Compile(raw Config, opts CompileOptions) (*Config, error) {
	c := raw
	c.Clv = opts.Clv
	c.IsMask = c.IsMask || opts.IsMask

	if c.Open.IsZero() {
		return nil, fmt.Errorf("%w: Open pattern is required", ErrConfigMissingOpen)
	}
	if c.Close.IsZero() {
		c.Close = closeAtSOL
	}
	if !c.IsMask && c.Mode == nil && c.ModeSpec.Name == "" {
		return nil, fmt.Errorf("%w: non-mask config requires Mode or ModeSpec", ErrConfigUnresolvedMode)
	}
	if c.Comp == nil {
		c.Comp = defaultComparator
	}

	compiledMasks := make([]*Config, 0, len(c.Masks))
	for _, m := range c.Masks {
		cm, err := Compile(*m, CompileOptions{Clv: opts.Clv + 1, IsMask: true})
		if err != nil {
			return nil, err
		}
		compiledMasks = append(compiledMasks, cm)
	}
	c.Masks = compiledMasks

	compiledSuffix := make([]*Config, 0, len(c.Suffix))
	for _, s := range c.Suffix {
		cs, err := Compile(*s, CompileOptions{Clv: opts.Clv + 1})
		if err != nil {
			return nil, err
		}
		compiledSuffix = append(compiledSuffix, cs)
	}
	c.Suffix = compiledSuffix

	return &c, nil
}
