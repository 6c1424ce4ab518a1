package helpfiles

import (
	"strings"
)

// Section is a single named block of text inside a help file. Lines holds
// the content lines in file order, in their original untrimmed form.
type Section struct {
	Name  string
	Lines []string
}

// Content returns the section text: content lines joined with newlines,
// with no trailing newline.
func (s *Section) Content() string {
	return strings.Join(s.Lines, "\n")
}

// File is one parsed help file. Name is the base filename and is the key
// used for lookups; Path is where the file was found. Sections keep their
// discovery order.
//
// OrphanLines and RestartedSections record what the parser dropped or
// reset, for tools that want to report on it. They play no part in
// lookups or rendering.
type File struct {
	Name     string
	Path     string
	Sections []*Section

	// OrphanLines are 1-based numbers of content lines that appeared
	// before the first section header and were dropped.
	OrphanLines []int
	// RestartedSections lists section names whose header appeared again
	// later in the file, discarding the earlier content.
	RestartedSections []string
}

// Section returns the section with the given name, or nil if the file has
// no such section.
func (f *File) Section(name string) *Section {
	for _, s := range f.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// upsertSection returns the section named name, appending a new empty one
// if it does not exist yet. A section that already exists keeps its place
// in the file but its accumulated lines are discarded, so a repeated
// header restarts accumulation.
func (f *File) upsertSection(name string) *Section {
	if s := f.Section(name); s != nil {
		s.Lines = nil
		return s
	}
	s := &Section{Name: name}
	f.Sections = append(f.Sections, s)
	return s
}

// Corpus is an ordered collection of parsed help files keyed by base
// filename. Files keep the order in which they were added; adding a file
// whose name is already present replaces the earlier entry in place, so
// the last file processed wins while iteration order stays stable.
type Corpus struct {
	Files []*File

	index map[string]int
}

func NewCorpus() *Corpus {
	return &Corpus{index: map[string]int{}}
}

// Add inserts f into the corpus, replacing any existing file with the same
// base name.
func (c *Corpus) Add(f *File) {
	if i, ok := c.index[f.Name]; ok {
		c.Files[i] = f
		return
	}
	c.index[f.Name] = len(c.Files)
	c.Files = append(c.Files, f)
}

// File returns the corpus entry for the given base filename, or nil.
func (c *Corpus) File(name string) *File {
	i, ok := c.index[name]
	if !ok {
		return nil
	}
	return c.Files[i]
}

func (c *Corpus) Len() int {
	return len(c.Files)
}

// Lookup returns the content stored for the given filename and topic. It
// has the same semantics as the lookup function in generated output: exact
// case-sensitive matches, first match wins, and a miss returns ok=false
// rather than an error.
func (c *Corpus) Lookup(filename, topic string) (string, bool) {
	f := c.File(filename)
	if f == nil {
		return "", false
	}
	s := f.Section(topic)
	if s == nil {
		return "", false
	}
	return s.Content(), true
}
