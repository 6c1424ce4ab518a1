package render

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"

	"github.com/go-go-golems/grillo/pkg/helpfiles"
)

// Defaults for the Go target when the corresponding option is empty.
const (
	DefaultGoFuncName = "GetContent"
	DefaultGoPackage  = "helpdocs"
)

// GoRenderer emits the help tables as a Go source file: one sections slice
// per help file, a helpFiles table, and a lookup function returning
// (content, ok). It mirrors the C target's layout; slices carry no
// sentinel entries because the scan is bounded by the slice length.
type GoRenderer struct {
	opts Options
}

func NewGoRenderer(opts Options) *GoRenderer {
	if opts.Tool == "" {
		opts.Tool = DefaultTool
	}
	if opts.FuncName == "" {
		opts.FuncName = DefaultGoFuncName
	}
	if opts.PackageName == "" {
		opts.PackageName = DefaultGoPackage
	}
	return &GoRenderer{opts: opts}
}

func (r *GoRenderer) Render(corpus *helpfiles.Corpus) ([]byte, error) {
	f := jen.NewFile(r.opts.PackageName)
	f.HeaderComment(fmt.Sprintf("Code generated by %s. DO NOT EDIT.", r.opts.Tool))

	f.Type().Id("helpSection").Struct(
		jen.Id("name").String(),
		jen.Id("content").String(),
	)
	f.Type().Id("helpFile").Struct(
		jen.Id("filename").String(),
		jen.Id("sections").Index().Id("helpSection"),
	)

	varNames := map[string]string{}
	tableEntries := make([]jen.Code, 0, corpus.Len())
	for _, hf := range corpus.Files {
		varName := "sections" + strcase.ToCamel(Identifier(hf.Name))
		if other, ok := varNames[varName]; ok {
			return nil, errors.Errorf("help files %q and %q both map to identifier %s", other, hf.Name, varName)
		}
		varNames[varName] = hf.Name

		entries := make([]jen.Code, 0, len(hf.Sections))
		for _, s := range hf.Sections {
			entries = append(entries, jen.Values(jen.Lit(s.Name), jen.Lit(s.Content())))
		}
		f.Var().Id(varName).Op("=").Index().Id("helpSection").Values(entries...)

		tableEntries = append(tableEntries, jen.Values(jen.Lit(hf.Name), jen.Id(varName)))
	}

	f.Var().Id("helpFiles").Op("=").Index().Id("helpFile").Values(tableEntries...)

	f.Comment(fmt.Sprintf("%s returns the help content registered for filename and topic; the boolean is false when no such file or topic exists.", r.opts.FuncName))
	f.Func().Id(r.opts.FuncName).
		Params(jen.Id("filename").String(), jen.Id("topic").String()).
		Params(jen.String(), jen.Bool()).
		Block(
			jen.For(jen.List(jen.Id("_"), jen.Id("f")).Op(":=").Range().Id("helpFiles")).Block(
				jen.If(jen.Id("f").Dot("filename").Op("!=").Id("filename")).Block(
					jen.Continue(),
				),
				jen.For(jen.List(jen.Id("_"), jen.Id("s")).Op(":=").Range().Id("f").Dot("sections")).Block(
					jen.If(jen.Id("s").Dot("name").Op("==").Id("topic")).Block(
						jen.Return(jen.Id("s").Dot("content"), jen.True()),
					),
				),
			),
			jen.Return(jen.Lit(""), jen.False()),
		)

	var b bytes.Buffer
	if err := f.Render(&b); err != nil {
		return nil, errors.Wrap(err, "failed to render Go help tables")
	}
	return b.Bytes(), nil
}
