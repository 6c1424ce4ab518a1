package helpfiles

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Parse reads every path in order and returns the assembled corpus. Paths
// are processed in the order given, which must be the locator's order so
// that base-name collisions resolve deterministically.
func Parse(paths []string) (*Corpus, error) {
	corpus := NewCorpus()
	for _, path := range paths {
		f, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		corpus.Add(f)
	}
	return corpus, nil
}

// ParseFile reads a single help file. A file that cannot be opened or read
// is a fatal error for the whole run.
//
// Lines are classified after trimming surrounding whitespace: blank lines
// and #-comments are dropped, [name] starts (or restarts) a section, and
// everything else is content, kept untrimmed. Content before the first
// header is dropped; the line numbers are recorded on the returned File so
// callers can report them.
func ParseFile(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open help file %s", path)
	}
	defer func() {
		_ = r.Close()
	}()

	f := &File{
		Name: filepath.Base(path),
		Path: path,
	}

	var current *Section
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "#"):
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			name := trimmed[1 : len(trimmed)-1]
			if f.Section(name) != nil {
				f.RestartedSections = append(f.RestartedSections, name)
			}
			current = f.upsertSection(name)
		case current != nil:
			current.Lines = append(current.Lines, line)
		default:
			f.OrphanLines = append(f.OrphanLines, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "could not read help file %s", path)
	}

	log.Debug().Str("path", path).Int("sections", len(f.Sections)).Msg("parsed help file")
	return f, nil
}
