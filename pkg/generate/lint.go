package generate

import (
	"fmt"
	"path/filepath"

	"github.com/go-go-golems/grillo/pkg/helpfiles"
	"github.com/go-go-golems/grillo/pkg/render"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is a single diagnostic about the help file corpus.
type Finding struct {
	Severity Severity
	Path     string
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Path, f.Message)
}

// Lint inspects the located paths and the parsed corpus for conditions
// that generation silently tolerates but that usually indicate an
// authoring mistake: content before any section header, section headers
// that appear twice in one file, sections with no content, two paths
// sharing a base name, and file names whose derived identifiers collide.
// The result is deterministic for a given input.
func Lint(paths []string, corpus *helpfiles.Corpus) []Finding {
	findings := []Finding{}

	byBase := map[string][]string{}
	for _, p := range paths {
		base := filepath.Base(p)
		byBase[base] = append(byBase[base], p)
	}
	for _, p := range paths {
		base := filepath.Base(p)
		dups := byBase[base]
		if len(dups) > 1 && p != dups[len(dups)-1] {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Path:     p,
				Message:  fmt.Sprintf("base name %s is shadowed by %s", base, dups[len(dups)-1]),
			})
		}
	}

	byIdent := map[string]string{}
	for _, f := range corpus.Files {
		for _, line := range f.OrphanLines {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Path:     f.Path,
				Message:  fmt.Sprintf("line %d has content before the first section header", line),
			})
		}
		for _, name := range f.RestartedSections {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Path:     f.Path,
				Message:  fmt.Sprintf("section [%s] appears more than once; earlier content is discarded", name),
			})
		}
		for _, s := range f.Sections {
			if len(s.Lines) == 0 {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Path:     f.Path,
					Message:  fmt.Sprintf("section [%s] has no content", s.Name),
				})
			}
		}

		ident := render.Identifier(f.Name)
		if other, ok := byIdent[ident]; ok {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Path:     f.Path,
				Message:  fmt.Sprintf("file name maps to identifier %s, already taken by %s", ident, other),
			})
		} else {
			byIdent[ident] = f.Name
		}
	}

	return findings
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
