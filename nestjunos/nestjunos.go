// Package nestjunos is the Config table (spec.md §3) for this product: it
// wires lexer.Mode up as a nesting.NestingMode host with three nested
// sub-modes (modes/xmlmode, modes/jsonmode, modes/exprmode) plus the
// string/comment masks synthesized from lexer's own quoting rules.
//
// Fence syntax: a NetCONF-style RPC reply embedded in `show` output opens
// with "## BEGIN-XML" and closes with "## END-XML" (Static variant: the
// fence text itself never reaches xmlmode). A structured JSON payload
// opens with "## BEGIN-JSON" and closes with "## END-JSON" (Separate
// variant: jsonmode re-tokenizes the fence text too, which is how a
// payload emitted right after a fence on the same line still gets
// styled consistently). A JSON payload may be followed, on the same
// line its closing fence appears, by a "sha256:<64 hex>" digest of the
// payload (Include variant suffix: the digest text flows straight into
// its own tiny tokenizer with no separate delimiter step).
package nestjunos

import (
	"regexp"

	"github.com/lasseh/nestjink/lexer"
	"github.com/lasseh/nestjink/modes/jsonmode"
	"github.com/lasseh/nestjink/modes/xmlmode"
	"github.com/lasseh/nestjink/nesting"
	"github.com/lasseh/nestjink/registry"
)

const jsonModeName = "nestjunos.json"

var digestPattern = regexp.MustCompile(`^sha256:[0-9a-f]{64}`)

// digestMode tokenizes a trailing "sha256:<hex>" suffix as a single span.
// It has no internal state worth tracking across lines since a digest
// never spans more than one line.
type digestMode struct{}

func (digestMode) StartState(outerIndent int, nestState *nesting.NestState) nesting.State {
	return nil
}
func (digestMode) CopyState(s nesting.State) nesting.State { return nil }
func (digestMode) Token(stream nesting.Stream, s nesting.State) string {
	if stream.Match(nesting.NewRegexPattern(digestPattern.String()), true) != nil {
		return "digest"
	}
	stream.SkipToEnd()
	return "digest"
}

// Options selects which fenced sub-modes New wires in. Both default on;
// a caller that only ever sees one payload kind can disable the other to
// keep it from competing in the delimiter search.
type Options struct {
	XML  bool
	JSON bool
}

// DefaultOptions enables both the XML and JSON sub-modes.
func DefaultOptions() Options {
	return Options{XML: true, JSON: true}
}

// New builds the product's NestingMode: lexer.Mode as host, XML/JSON
// sub-modes, the digest suffix, and string/comment masks. reg is the
// mode registry the JSON config resolves its ModeSpec through; New
// registers jsonmode's factory on it, replacing any factory (and cached
// mode) already registered under that name.
func New(reg *registry.Registry, opts Options) (*nesting.NestingMode, error) {
	if reg == nil {
		reg = registry.New()
	}
	reg.Register(jsonModeName, func(opts map[string]any) (nesting.Mode, error) {
		return jsonmode.New()
	})

	var configs []*nesting.Config

	if opts.XML {
		xmlConfig, err := nesting.Compile(nesting.Config{
			Open:       nesting.NewStringPattern("## BEGIN-XML"),
			Close:      nesting.NewStringPattern("## END-XML"),
			Mode:       xmlmode.New(),
			Variant:    nesting.VariantStatic,
			DelimStyle: "xml-fence",
			InnerStyle: "xml",
		}, nesting.CompileOptions{Clv: 0})
		if err != nil {
			return nil, err
		}
		configs = append(configs, xmlConfig)
	}

	if opts.JSON {
		digestRaw := &nesting.Config{
			Open:       nesting.NewRegexPattern(`sha256:[0-9a-f]{64}`),
			Close:      nesting.NewRegexPattern(`$`),
			Mode:       digestMode{},
			Variant:    nesting.VariantInclude,
			DelimStyle: "digest",
			InnerStyle: "digest",
		}

		jsonConfig, err := nesting.Compile(nesting.Config{
			Open:       nesting.NewStringPattern("## BEGIN-JSON"),
			Close:      nesting.NewStringPattern("## END-JSON"),
			ModeSpec:   nesting.ModeSpec{Name: jsonModeName},
			Variant:    nesting.VariantSeparate,
			DelimStyle: "json-fence",
			InnerStyle: "json",
			Suffix:     []*nesting.Config{digestRaw},
		}, nesting.CompileOptions{Clv: 0})
		if err != nil {
			return nil, err
		}
		configs = append(configs, jsonConfig)
	}

	host := lexer.NewMode()
	masks, err := nesting.CompileMasksFromMeta(host.Meta(), nesting.CompileOptions{Clv: 0})
	if err != nil {
		return nil, err
	}
	configs = append(configs, masks...)

	return nesting.New(host, configs, reg), nil
}
