package generate

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/go-go-golems/grillo/pkg/render"
)

// Manifest is the YAML description of a generation run. Fields that are
// set override the corresponding command line flags, so a project can
// check in a single file that pins its help table layout.
type Manifest struct {
	Root      string   `yaml:"root,omitempty"`
	Output    string   `yaml:"output,omitempty"`
	Target    string   `yaml:"target,omitempty"`
	Package   string   `yaml:"package,omitempty"`
	Function  string   `yaml:"function,omitempty"`
	Prefix    string   `yaml:"prefix,omitempty"`
	Extension string   `yaml:"extension,omitempty"`
	Exclude   []string `yaml:"exclude,omitempty"`
}

// LoadManifest reads and validates a manifest file. Unknown keys are
// rejected so typos fail loudly instead of silently falling back to
// defaults.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read manifest %s", path)
	}

	m := &Manifest{}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "could not parse manifest %s", path)
	}

	if err := validateManifest(m); err != nil {
		return nil, errors.Wrapf(err, "invalid manifest %s", path)
	}
	return m, nil
}

func validateManifest(m *Manifest) error {
	switch render.Target(m.Target) {
	case "", render.TargetC, render.TargetGo:
	default:
		return errors.Errorf("unknown target %q (expected %q or %q)", m.Target, render.TargetC, render.TargetGo)
	}
	return nil
}

// Apply overlays the manifest's set fields onto s. Unset fields leave the
// existing value alone; an explicit empty exclude list still counts as
// set once the YAML key is present.
func (m *Manifest) Apply(s *Settings) {
	if m.Root != "" {
		s.Root = m.Root
	}
	if m.Output != "" {
		s.Output = m.Output
	}
	if m.Target != "" {
		s.Target = render.Target(m.Target)
	}
	if m.Package != "" {
		s.PackageName = m.Package
	}
	if m.Function != "" {
		s.FuncName = m.Function
	}
	if m.Prefix != "" {
		s.Prefix = m.Prefix
	}
	if m.Extension != "" {
		s.Extension = m.Extension
	}
	if m.Exclude != nil {
		s.ExcludedDirs = m.Exclude
	}
}
