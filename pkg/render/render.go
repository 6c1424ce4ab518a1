package render

import (
	"github.com/pkg/errors"

	"github.com/go-go-golems/grillo/pkg/helpfiles"
)

// Target selects the language of the generated artifact.
type Target string

const (
	TargetC  Target = "c"
	TargetGo Target = "go"
)

// DefaultTool is the tool name recorded in generated-file banners.
const DefaultTool = "grillo"

// Options configure a renderer. Zero values select per-target defaults.
type Options struct {
	// Tool is the name recorded in the generated-file banner.
	Tool string
	// FuncName overrides the name of the emitted lookup function.
	FuncName string
	// PackageName is the package clause of generated Go output. The C
	// target ignores it.
	PackageName string
}

// A Renderer serializes a parsed corpus into generated source text. Render
// is a pure transform: the same corpus always yields byte-identical
// output.
type Renderer interface {
	Render(corpus *helpfiles.Corpus) ([]byte, error)
}

// New returns the renderer for target.
func New(target Target, opts Options) (Renderer, error) {
	switch target {
	case TargetC:
		return NewCRenderer(opts), nil
	case TargetGo:
		return NewGoRenderer(opts), nil
	default:
		return nil, errors.Errorf("unknown render target %q (expected %q or %q)", target, TargetC, TargetGo)
	}
}
