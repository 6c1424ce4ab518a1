package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-go-golems/grillo/pkg/render"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grillo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	t.Run("loads all fields", func(t *testing.T) {
		path := writeManifest(t, `root: ./docs
output: generated/help.go
target: go
package: opalhelp
function: LookupHelp
prefix: topic-
extension: .ini
exclude:
  - .git
  - vendor
`)

		m, err := LoadManifest(path)
		require.NoError(t, err)
		assert.Equal(t, "./docs", m.Root)
		assert.Equal(t, "generated/help.go", m.Output)
		assert.Equal(t, "go", m.Target)
		assert.Equal(t, "opalhelp", m.Package)
		assert.Equal(t, "LookupHelp", m.Function)
		assert.Equal(t, "topic-", m.Prefix)
		assert.Equal(t, ".ini", m.Extension)
		assert.Equal(t, []string{".git", "vendor"}, m.Exclude)
	})

	t.Run("an empty file is a valid empty manifest", func(t *testing.T) {
		path := writeManifest(t, "")

		m, err := LoadManifest(path)
		require.NoError(t, err)
		assert.Equal(t, &Manifest{}, m)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := writeManifest(t, "funcname: LookupHelp\n")

		_, err := LoadManifest(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not parse manifest")
	})

	t.Run("unknown targets are rejected", func(t *testing.T) {
		path := writeManifest(t, "target: rust\n")

		_, err := LoadManifest(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown target")
	})

	t.Run("missing files are an error", func(t *testing.T) {
		_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not read manifest")
	})
}

func TestManifestApply(t *testing.T) {
	t.Run("set fields override, unset fields keep flag values", func(t *testing.T) {
		s := Settings{
			Root:         ".",
			Output:       "help.c",
			Target:       render.TargetC,
			FuncName:     "from_flags",
			Prefix:       "help-",
			ExcludedDirs: []string{".git"},
		}
		m := &Manifest{
			Output:   "generated/help.go",
			Target:   "go",
			Package:  "opalhelp",
			Function: "LookupHelp",
		}

		m.Apply(&s)

		assert.Equal(t, ".", s.Root)
		assert.Equal(t, "generated/help.go", s.Output)
		assert.Equal(t, render.TargetGo, s.Target)
		assert.Equal(t, "opalhelp", s.PackageName)
		assert.Equal(t, "LookupHelp", s.FuncName)
		assert.Equal(t, "help-", s.Prefix)
		assert.Equal(t, []string{".git"}, s.ExcludedDirs)
	})

	t.Run("an explicit empty exclude list disables the default exclusions", func(t *testing.T) {
		path := writeManifest(t, "exclude: []\n")
		m, err := LoadManifest(path)
		require.NoError(t, err)

		s := Settings{ExcludedDirs: []string{".git", "3rd-party"}}
		m.Apply(&s)

		require.NotNil(t, s.ExcludedDirs)
		assert.Empty(t, s.ExcludedDirs)
	})

	t.Run("an empty manifest changes nothing", func(t *testing.T) {
		s := Settings{Root: ".", Output: "help.c", ExcludedDirs: []string{".git"}}
		(&Manifest{}).Apply(&s)
		assert.Equal(t, Settings{Root: ".", Output: "help.c", ExcludedDirs: []string{".git"}}, s)
	})
}
