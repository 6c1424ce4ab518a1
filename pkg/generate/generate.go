package generate

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/go-go-golems/grillo/pkg/helpfiles"
	"github.com/go-go-golems/grillo/pkg/render"
)

// Settings describe one generation run.
type Settings struct {
	// Root is the directory searched for help files. Empty means the
	// current directory.
	Root string
	// Output is the path of the generated source file. Required.
	Output string
	// Target selects the output language. Empty means C.
	Target render.Target

	// Renderer knobs, all optional.
	Tool        string
	FuncName    string
	PackageName string

	// Locator knobs, all optional.
	Prefix       string
	Extension    string
	ExcludedDirs []string
}

// LocateOptions returns the locator configuration for these settings.
func (s Settings) LocateOptions() helpfiles.LocateOptions {
	return helpfiles.LocateOptions{
		Prefix:       s.Prefix,
		Extension:    s.Extension,
		ExcludedDirs: s.ExcludedDirs,
	}
}

// Result reports what a run found and did.
type Result struct {
	Paths   []string
	Corpus  *helpfiles.Corpus
	Written bool
}

// Run executes the full pipeline: locate help files under Root, parse
// them, render the Target artifact, and write it to Output. The write is
// skipped when the rendered bytes match the existing file, so downstream
// builds see no spurious changes.
func Run(s Settings) (*Result, error) {
	if s.Output == "" {
		return nil, errors.New("output path is required")
	}
	if s.Root == "" {
		s.Root = "."
	}
	if s.Target == "" {
		s.Target = render.TargetC
	}

	log.Info().
		Str("root", s.Root).
		Str("output", s.Output).
		Str("target", string(s.Target)).
		Msg("generating help tables")

	paths, err := helpfiles.Locate(s.Root, s.LocateOptions())
	if err != nil {
		return nil, err
	}
	corpus, err := helpfiles.Parse(paths)
	if err != nil {
		return nil, err
	}

	renderer, err := render.New(s.Target, render.Options{
		Tool:        s.Tool,
		FuncName:    s.FuncName,
		PackageName: s.PackageName,
	})
	if err != nil {
		return nil, err
	}
	data, err := renderer.Render(corpus)
	if err != nil {
		return nil, err
	}

	written, err := WriteFileIdempotent(s.Output, data)
	if err != nil {
		return nil, err
	}
	if written {
		log.Info().Str("path", s.Output).Int("files", corpus.Len()).Msg("wrote generated help tables")
	}

	return &Result{Paths: paths, Corpus: corpus, Written: written}, nil
}

// WriteFileIdempotent writes data to path unless the file already holds
// exactly those bytes, and reports whether a write happened. The parent
// directory is created as needed. An existing file that cannot be read is
// an error, the same as an unreadable input.
func WriteFileIdempotent(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		log.Info().Str("path", path).Msg("help content unchanged; not re-writing")
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "could not read existing output %s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, errors.Wrapf(err, "could not create output directory %s", dir)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, errors.Wrapf(err, "could not write output %s", path)
	}
	return true, nil
}
