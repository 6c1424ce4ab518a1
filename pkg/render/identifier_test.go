package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"help-mpi.txt", "help_mpi_txt"},
		{"help-mca-coll-base.txt", "help_mca_coll_base_txt"},
		{"HELP-MPI.TXT", "HELP_MPI_TXT"},
		{"help--double.txt", "help_double_txt"},
		{"help-a.b.c.txt", "help_a_b_c_txt"},
		{".txt", "txt"},
		{"---", "help"},
		{"", "help"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Identifier(c.filename), "filename %q", c.filename)
	}
}
