package main

import (
	"context"
	"fmt"
	"io"

	"github.com/go-go-golems/glazed/pkg/cmds"
	"github.com/go-go-golems/glazed/pkg/cmds/fields"
	"github.com/go-go-golems/glazed/pkg/cmds/values"
	"github.com/pkg/errors"

	"github.com/go-go-golems/grillo/pkg/generate"
	"github.com/go-go-golems/grillo/pkg/helpfiles"
)

type CheckCommand struct {
	*cmds.CommandDescription
}

var _ cmds.WriterCommand = (*CheckCommand)(nil)

type CheckSettings struct {
	Root      string   `glazed:"root"`
	Prefix    string   `glazed:"prefix"`
	Extension string   `glazed:"extension"`
	Exclude   []string `glazed:"exclude"`
	Strict    bool     `glazed:"strict"`
}

func NewCheckCommand() (*CheckCommand, error) {
	description := cmds.NewCommandDescription(
		"check",
		cmds.WithShort("Report authoring mistakes in help files"),
		cmds.WithFlags(
			fields.New("root", fields.TypeString, fields.WithHelp("Directory to search for help files"), fields.WithDefault(".")),
			fields.New("prefix", fields.TypeString, fields.WithHelp("Base name prefix of help files"), fields.WithDefault("help-")),
			fields.New("extension", fields.TypeString, fields.WithHelp("File extension of help files"), fields.WithDefault(".txt")),
			fields.New("exclude", fields.TypeStringList, fields.WithHelp("Directory names to skip while searching"), fields.WithDefault([]string{".git", "3rd-party"})),
			fields.New("strict", fields.TypeBool, fields.WithHelp("Treat warnings as errors"), fields.WithDefault(false)),
		),
	)

	return &CheckCommand{CommandDescription: description}, nil
}

func (c *CheckCommand) RunIntoWriter(ctx context.Context, parsedValues *values.Values, w io.Writer) error {
	s := &CheckSettings{}
	if err := parsedValues.DecodeSectionInto(values.DefaultSlug, s); err != nil {
		return errors.Wrap(err, "failed to initialize settings")
	}

	paths, err := helpfiles.Locate(s.Root, helpfiles.LocateOptions{
		Prefix:       s.Prefix,
		Extension:    s.Extension,
		ExcludedDirs: s.Exclude,
	})
	if err != nil {
		return err
	}
	corpus, err := helpfiles.Parse(paths)
	if err != nil {
		return err
	}

	findings := generate.Lint(paths, corpus)
	for _, f := range findings {
		fmt.Fprintln(w, f.String())
	}

	fatal := 0
	for _, f := range findings {
		if f.Severity == generate.SeverityError || s.Strict {
			fatal++
		}
	}
	if fatal > 0 {
		return errors.Errorf("check failed with %d fatal findings", fatal)
	}

	if len(findings) == 0 {
		fmt.Fprintf(w, "checked %d help files; no findings\n", len(paths))
	} else {
		fmt.Fprintf(w, "checked %d help files; %d warnings\n", len(paths), len(findings))
	}

	return nil
}
