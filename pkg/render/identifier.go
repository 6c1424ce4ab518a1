package render

import (
	"regexp"
	"strings"
)

var nonAlnumRE = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Identifier maps a help filename to a symbol fragment usable in generated
// source: runs of characters outside [A-Za-z0-9] collapse into a single
// underscore, and leading and trailing underscores are trimmed. The
// transform is not injective ("help-a.txt" and "help.a.txt" coincide), so
// renderers reject corpora where two filenames produce the same symbol.
func Identifier(filename string) string {
	s := nonAlnumRE.ReplaceAllString(filename, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "help"
	}
	return s
}
