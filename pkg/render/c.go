package render

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/pkg/errors"

	"github.com/go-go-golems/grillo/pkg/helpfiles"
)

// DefaultCFuncName is the lookup function emitted by the C target when
// Options.FuncName is empty.
const DefaultCFuncName = "show_help_get_content"

// CRenderer emits the help tables as a C source file: one static
// ini_entry array per help file, a help_files table mapping filenames to
// arrays, and a lookup function scanning both with strcmp. Arrays and the
// table are NULL-terminated.
type CRenderer struct {
	opts Options
}

func NewCRenderer(opts Options) *CRenderer {
	return &CRenderer{opts: opts}
}

type cFileData struct {
	Filename string
	Ident    string
	Sections []*helpfiles.Section
}

type cRenderData struct {
	Tool     string
	FuncName string
	Files    []cFileData
}

func (r *CRenderer) Render(corpus *helpfiles.Corpus) ([]byte, error) {
	files := make([]cFileData, 0, corpus.Len())
	idents := map[string]string{}
	for _, f := range corpus.Files {
		ident := "ini_entries_" + Identifier(f.Name)
		if other, ok := idents[ident]; ok {
			return nil, errors.Errorf("help files %q and %q both map to identifier %s", other, f.Name, ident)
		}
		idents[ident] = f.Name
		files = append(files, cFileData{
			Filename: f.Name,
			Ident:    ident,
			Sections: f.Sections,
		})
	}

	var b bytes.Buffer
	data := cRenderData{
		Tool:     r.opts.Tool,
		FuncName: r.opts.FuncName,
		Files:    files,
	}
	if err := cTemplate.Execute(&b, data); err != nil {
		return nil, errors.Wrap(err, "failed to render C help tables")
	}
	return b.Bytes(), nil
}

// EscapeC escapes s for embedding in a C string literal. Backslashes are
// doubled before quotes are escaped, and newlines become an escaped
// newline followed by a close-quote/reopen-quote pair, so multi-line
// content stays readable in the generated source while concatenating back
// into a single string constant. The transform is injective: unescaping
// always recovers s exactly.
func EscapeC(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", "\\n\"\n\"")
	return s
}

var cTemplate = template.Must(template.New("c-help-tables").
	Funcs(sprig.FuncMap()).
	Funcs(template.FuncMap{"cstr": EscapeC}).
	Parse(cTemplateSrc))

const cTemplateSrc = `// THIS FILE IS GENERATED AUTOMATICALLY! EDITS WILL BE LOST!
// This file generated by {{ .Tool | default "` + DefaultTool + `" }}

#include <stdio.h>
#include <string.h>

typedef struct {
    const char *section;
    const char *content;
} ini_entry;

typedef struct {
    const char *filename;
    ini_entry *entries;
} file_entry;

{{ range .Files -}}
static ini_entry {{ .Ident }}[] = {
{{- range .Sections }}
    { "{{ cstr .Name }}", "{{ cstr .Content }}" },
{{- end }}
    { NULL, NULL }
};

{{ end -}}
static file_entry help_files[] = {
{{- range .Files }}
    { "{{ cstr .Filename }}", {{ .Ident }} },
{{- end }}
    { NULL, NULL }
};


const char *{{ .FuncName | default "` + DefaultCFuncName + `" }}(const char *filename, const char *topic)
{
    file_entry *fe;
    ini_entry *ie;

    for (int i = 0; help_files[i].filename != NULL; ++i) {
        fe = &(help_files[i]);
        if (strcmp(fe->filename, filename) == 0) {
            for (int j = 0; fe->entries[j].section != NULL; ++j) {
                ie = &(fe->entries[j]);
                if (strcmp(ie->section, topic) == 0) {
                    return ie->content;
                }
            }
        }
    }

    return NULL;
}
`
