package main

import (
	"context"
	"fmt"
	"io"

	"github.com/go-go-golems/glazed/pkg/cmds"
	"github.com/go-go-golems/glazed/pkg/cmds/fields"
	"github.com/go-go-golems/glazed/pkg/cmds/values"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/go-go-golems/grillo/pkg/generate"
	"github.com/go-go-golems/grillo/pkg/render"
)

type GenerateCommand struct {
	*cmds.CommandDescription
}

var _ cmds.WriterCommand = (*GenerateCommand)(nil)

type GenerateSettings struct {
	Root      string   `glazed:"root"`
	Output    string   `glazed:"output"`
	Target    string   `glazed:"target"`
	Package   string   `glazed:"package"`
	Function  string   `glazed:"function"`
	Prefix    string   `glazed:"prefix"`
	Extension string   `glazed:"extension"`
	Exclude   []string `glazed:"exclude"`
	Manifest  string   `glazed:"manifest"`
	Debug     bool     `glazed:"debug"`
}

func NewGenerateCommand() (*GenerateCommand, error) {
	description := cmds.NewCommandDescription(
		"generate",
		cmds.WithShort("Render help files into a source file with static lookup tables"),
		cmds.WithFlags(
			fields.New("root", fields.TypeString, fields.WithHelp("Directory to search for help files"), fields.WithDefault(".")),
			fields.New("output", fields.TypeString, fields.WithHelp("Path of the generated source file")),
			fields.New("target", fields.TypeChoice, fields.WithHelp("Output language"), fields.WithChoices("c", "go"), fields.WithDefault("c")),
			fields.New("package", fields.TypeString, fields.WithHelp("Package name for the go target (default helpdocs)")),
			fields.New("function", fields.TypeString, fields.WithHelp("Name of the generated lookup function")),
			fields.New("prefix", fields.TypeString, fields.WithHelp("Base name prefix of help files"), fields.WithDefault("help-")),
			fields.New("extension", fields.TypeString, fields.WithHelp("File extension of help files"), fields.WithDefault(".txt")),
			fields.New("exclude", fields.TypeStringList, fields.WithHelp("Directory names to skip while searching"), fields.WithDefault([]string{".git", "3rd-party"})),
			fields.New("manifest", fields.TypeString, fields.WithHelp("YAML manifest whose fields override the flags")),
			fields.New("debug", fields.TypeBool, fields.WithHelp("Debug mode - show parsed layers"), fields.WithDefault(false)),
		),
	)

	return &GenerateCommand{CommandDescription: description}, nil
}

func (c *GenerateCommand) RunIntoWriter(ctx context.Context, parsedValues *values.Values, w io.Writer) error {
	s := &GenerateSettings{}
	if err := parsedValues.DecodeSectionInto(values.DefaultSlug, s); err != nil {
		return errors.Wrap(err, "failed to initialize settings")
	}

	if s.Debug {
		b, err := yaml.Marshal(parsedValues)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "=== Parsed Layers Debug ===")
		fmt.Fprintln(w, string(b))
		fmt.Fprintln(w, "==========================")
		return nil
	}

	settings := generate.Settings{
		Root:         s.Root,
		Output:       s.Output,
		Target:       render.Target(s.Target),
		Tool:         render.DefaultTool,
		FuncName:     s.Function,
		PackageName:  s.Package,
		Prefix:       s.Prefix,
		Extension:    s.Extension,
		ExcludedDirs: s.Exclude,
	}

	if s.Manifest != "" {
		m, err := generate.LoadManifest(s.Manifest)
		if err != nil {
			return err
		}
		m.Apply(&settings)
	}

	res, err := generate.Run(settings)
	if err != nil {
		return err
	}

	sections := 0
	for _, f := range res.Corpus.Files {
		sections += len(f.Sections)
	}
	fmt.Fprintf(w, "Searched %s: %d help files, %d sections\n", settings.Root, res.Corpus.Len(), sections)

	if res.Written {
		fmt.Fprintf(w, "Wrote %s\n", settings.Output)
	} else {
		fmt.Fprintf(w, "%s is up to date\n", settings.Output)
	}

	return nil
}
