package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-go-golems/glazed/pkg/cmds"
	"github.com/go-go-golems/glazed/pkg/cmds/fields"
	"github.com/go-go-golems/glazed/pkg/cmds/values"
	"github.com/mb0/glob"
	"github.com/pkg/errors"

	"github.com/go-go-golems/grillo/pkg/helpfiles"
)

type ListCommand struct {
	*cmds.CommandDescription
}

var _ cmds.WriterCommand = (*ListCommand)(nil)

type ListSettings struct {
	Root      string   `glazed:"root"`
	Prefix    string   `glazed:"prefix"`
	Extension string   `glazed:"extension"`
	Exclude   []string `glazed:"exclude"`
	Filter    string   `glazed:"filter"`
	Long      bool     `glazed:"long"`
}

func NewListCommand() (*ListCommand, error) {
	description := cmds.NewCommandDescription(
		"list",
		cmds.WithShort("List the help files found under a directory"),
		cmds.WithFlags(
			fields.New("root", fields.TypeString, fields.WithHelp("Directory to search for help files"), fields.WithDefault(".")),
			fields.New("prefix", fields.TypeString, fields.WithHelp("Base name prefix of help files"), fields.WithDefault("help-")),
			fields.New("extension", fields.TypeString, fields.WithHelp("File extension of help files"), fields.WithDefault(".txt")),
			fields.New("exclude", fields.TypeStringList, fields.WithHelp("Directory names to skip while searching"), fields.WithDefault([]string{".git", "3rd-party"})),
			fields.New("filter", fields.TypeString, fields.WithHelp("Only list files whose base name matches this glob")),
			fields.New("long", fields.TypeBool, fields.WithHelp("Also show the sections of each file"), fields.WithDefault(false)),
		),
	)

	return &ListCommand{CommandDescription: description}, nil
}

func (c *ListCommand) RunIntoWriter(ctx context.Context, parsedValues *values.Values, w io.Writer) error {
	s := &ListSettings{}
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

	if s.Filter != "" {
		filtered := paths[:0]
		for _, p := range paths {
			ok, err := glob.Match(s.Filter, filepath.Base(p))
			if err != nil {
				return errors.Wrapf(err, "invalid filter %q", s.Filter)
			}
			if ok {
				filtered = append(filtered, p)
			}
		}
		paths = filtered
	}

	if !s.Long {
		for _, p := range paths {
			fmt.Fprintln(w, p)
		}
		return nil
	}

	corpus, err := helpfiles.Parse(paths)
	if err != nil {
		return err
	}
	for _, f := range corpus.Files {
		if len(f.Sections) == 0 {
			fmt.Fprintf(w, "%s: no sections\n", f.Path)
			continue
		}
		names := make([]string, 0, len(f.Sections))
		for _, sec := range f.Sections {
			names = append(names, sec.Name)
		}
		fmt.Fprintf(w, "%s: %d sections (%s)\n", f.Path, len(f.Sections), strings.Join(names, ", "))
	}

	return nil
}
