package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-go-golems/grillo/pkg/render"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestRun(t *testing.T) {
	t.Run("generates C tables end to end", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"help-mpi.txt":            "[general]\nHello world\n",
			"nested/help-btl.txt":     "[usage]\nUse the btl\n",
			".git/help-ignored.txt":   "[general]\nshould not appear\n",
			"nested/README.txt":       "not a help file\n",
			"3rd-party/help-vend.txt": "[general]\nvendored\n",
		})
		out := filepath.Join(t.TempDir(), "out", "help.c")

		res, err := Run(Settings{Root: root, Output: out})
		require.NoError(t, err)

		assert.True(t, res.Written)
		assert.Len(t, res.Paths, 2)
		assert.Equal(t, 2, res.Corpus.Len())

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		s := string(data)
		assert.Contains(t, s, "THIS FILE IS GENERATED AUTOMATICALLY!")
		assert.Contains(t, s, "ini_entries_help_mpi_txt")
		assert.Contains(t, s, "ini_entries_help_btl_txt")
		assert.Contains(t, s, "show_help_get_content")
		assert.NotContains(t, s, "help-ignored")
		assert.NotContains(t, s, "vendored")
	})

	t.Run("second run leaves an identical output untouched", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"help-mpi.txt": "[general]\nHello world\n",
		})
		out := filepath.Join(t.TempDir(), "help.c")

		res, err := Run(Settings{Root: root, Output: out})
		require.NoError(t, err)
		require.True(t, res.Written)

		before, err := os.Stat(out)
		require.NoError(t, err)

		res, err = Run(Settings{Root: root, Output: out})
		require.NoError(t, err)
		assert.False(t, res.Written)

		after, err := os.Stat(out)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime())
	})

	t.Run("rewrites when the help content changed", func(t *testing.T) {
		root := t.TempDir()
		helpPath := filepath.Join(root, "help-mpi.txt")
		require.NoError(t, os.WriteFile(helpPath, []byte("[general]\nfirst\n"), 0o644))
		out := filepath.Join(t.TempDir(), "help.c")

		res, err := Run(Settings{Root: root, Output: out})
		require.NoError(t, err)
		require.True(t, res.Written)

		require.NoError(t, os.WriteFile(helpPath, []byte("[general]\nsecond\n"), 0o644))

		res, err = Run(Settings{Root: root, Output: out})
		require.NoError(t, err)
		assert.True(t, res.Written)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "second")
		assert.NotContains(t, string(data), "first")
	})

	t.Run("generates Go tables when asked", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"help-mpi.txt": "[general]\nHello world\n",
		})
		out := filepath.Join(t.TempDir(), "help.go")

		res, err := Run(Settings{
			Root:        root,
			Output:      out,
			Target:      render.TargetGo,
			PackageName: "opalhelp",
			FuncName:    "LookupHelp",
		})
		require.NoError(t, err)
		require.True(t, res.Written)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		s := string(data)
		assert.Contains(t, s, "package opalhelp")
		assert.Contains(t, s, "func LookupHelp(filename string, topic string) (string, bool)")
	})

	t.Run("an empty tree still produces a valid artifact", func(t *testing.T) {
		root := t.TempDir()
		out := filepath.Join(t.TempDir(), "help.c")

		res, err := Run(Settings{Root: root, Output: out})
		require.NoError(t, err)
		assert.True(t, res.Written)
		assert.Empty(t, res.Paths)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "static file_entry help_files[] = {")
	})

	t.Run("output path is required", func(t *testing.T) {
		_, err := Run(Settings{Root: t.TempDir()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output path is required")
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		_, err := Run(Settings{
			Root:   t.TempDir(),
			Output: filepath.Join(t.TempDir(), "help.rs"),
			Target: render.Target("rust"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown render target")
	})

	t.Run("missing root is an error", func(t *testing.T) {
		_, err := Run(Settings{
			Root:   filepath.Join(t.TempDir(), "does-not-exist"),
			Output: filepath.Join(t.TempDir(), "help.c"),
		})
		require.Error(t, err)
	})
}

func TestWriteFileIdempotent(t *testing.T) {
	t.Run("creates the file and its parents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "out.c")

		written, err := WriteFileIdempotent(path, []byte("hello"))
		require.NoError(t, err)
		assert.True(t, written)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("skips the write when bytes match", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.c")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

		written, err := WriteFileIdempotent(path, []byte("hello"))
		require.NoError(t, err)
		assert.False(t, written)
	})

	t.Run("overwrites when bytes differ", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.c")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

		written, err := WriteFileIdempotent(path, []byte("new"))
		require.NoError(t, err)
		assert.True(t, written)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("fails when the output path is a directory", func(t *testing.T) {
		_, err := WriteFileIdempotent(t.TempDir(), []byte("hello"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not read existing output")
	})

	t.Run("fails when a parent is a regular file", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		_, err := WriteFileIdempotent(filepath.Join(blocker, "out.c"), []byte("hello"))
		require.Error(t, err)
	})
}
