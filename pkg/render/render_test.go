package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-go-golems/grillo/pkg/helpfiles"
)

func section(name string, lines ...string) *helpfiles.Section {
	return &helpfiles.Section{Name: name, Lines: lines}
}

func helpFile(name string, sections ...*helpfiles.Section) *helpfiles.File {
	return &helpfiles.File{Name: name, Path: name, Sections: sections}
}

func makeCorpus(files ...*helpfiles.File) *helpfiles.Corpus {
	c := helpfiles.NewCorpus()
	for _, f := range files {
		c.Add(f)
	}
	return c
}

func mpiCorpus() *helpfiles.Corpus {
	return makeCorpus(
		helpFile("help-mpi.txt",
			section("general", "Hello world"),
			section("details", "Line one", "Line two"),
		),
	)
}

func TestNew(t *testing.T) {
	r, err := New(TargetC, Options{})
	require.NoError(t, err)
	assert.IsType(t, &CRenderer{}, r)

	r, err = New(TargetGo, Options{})
	require.NoError(t, err)
	assert.IsType(t, &GoRenderer{}, r)

	_, err = New(Target("rust"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rust")
}
