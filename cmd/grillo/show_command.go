package main

import (
	"context"
	"fmt"
	"io"

	"github.com/go-go-golems/glazed/pkg/cmds"
	"github.com/go-go-golems/glazed/pkg/cmds/fields"
	"github.com/go-go-golems/glazed/pkg/cmds/values"
	"github.com/pkg/errors"

	"github.com/go-go-golems/grillo/pkg/helpfiles"
)

type ShowCommand struct {
	*cmds.CommandDescription
}

var _ cmds.WriterCommand = (*ShowCommand)(nil)

type ShowSettings struct {
	Root      string   `glazed:"root"`
	Prefix    string   `glazed:"prefix"`
	Extension string   `glazed:"extension"`
	Exclude   []string `glazed:"exclude"`
	File      string   `glazed:"file"`
	Topic     string   `glazed:"topic"`
}

func NewShowCommand() (*ShowCommand, error) {
	description := cmds.NewCommandDescription(
		"show",
		cmds.WithShort("Print a help topic the way the generated lookup would return it"),
		cmds.WithFlags(
			fields.New("root", fields.TypeString, fields.WithHelp("Directory to search for help files"), fields.WithDefault(".")),
			fields.New("prefix", fields.TypeString, fields.WithHelp("Base name prefix of help files"), fields.WithDefault("help-")),
			fields.New("extension", fields.TypeString, fields.WithHelp("File extension of help files"), fields.WithDefault(".txt")),
			fields.New("exclude", fields.TypeStringList, fields.WithHelp("Directory names to skip while searching"), fields.WithDefault([]string{".git", "3rd-party"})),
			fields.New("file", fields.TypeString, fields.WithHelp("Base name of the help file, e.g. help-mpi.txt"), fields.WithRequired(true)),
			fields.New("topic", fields.TypeString, fields.WithHelp("Section name; omit to list the file's topics")),
		),
	)

	return &ShowCommand{CommandDescription: description}, nil
}

func (c *ShowCommand) RunIntoWriter(ctx context.Context, parsedValues *values.Values, w io.Writer) error {
	s := &ShowSettings{}
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

	file := corpus.File(s.File)
	if file == nil {
		return errors.Errorf("no help file %s under %s", s.File, s.Root)
	}

	if s.Topic == "" {
		for _, sec := range file.Sections {
			fmt.Fprintln(w, sec.Name)
		}
		return nil
	}

	content, ok := corpus.Lookup(s.File, s.Topic)
	if !ok {
		return errors.Errorf("no topic [%s] in %s", s.Topic, s.File)
	}
	fmt.Fprintln(w, content)

	return nil
}
