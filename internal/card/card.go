// Package card formats an enriched word as plain text for the CLI and
// the clipboard.
package card

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/f3rmion/adjespin/internal/word"
)

// Formatter renders words through a text template.
type Formatter struct {
	template *template.Template
}

// NewFormatter creates a formatter with the default template.
func NewFormatter() *Formatter {
	return &Formatter{
		template: template.Must(template.New("card").Parse(DefaultTemplate)),
	}
}

// SetTemplate sets a custom card template.
func (f *Formatter) SetTemplate(tmpl string) error {
	t, err := template.New("card").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	f.template = t
	return nil
}

// data is what templates see.
type data struct {
	Word          string
	Title         string
	Definition    string
	Example       string
	Pronunciation string
}

// Format renders w.
func (f *Formatter) Format(w word.Enriched) (string, error) {
	var buf bytes.Buffer
	err := f.template.Execute(&buf, data{
		Word:          w.Word,
		Title:         w.Title(),
		Definition:    w.Definition,
		Example:       w.Example,
		Pronunciation: w.Pronunciation,
	})
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Format renders w with the default template.
func Format(w word.Enriched) string {
	out, err := NewFormatter().Format(w)
	if err != nil {
		// The default template only reads string fields.
		return w.Title()
	}
	return out
}

// DefaultTemplate prints the title line, the definition and the example in
// quotes when there is one.
const DefaultTemplate = `{{ .Title }}
{{- if .Definition }}
{{ .Definition }}{{ else }}
(no definition found){{ end }}
{{- if .Example }}
"{{ .Example }}"{{ end }}`

// OneLineTemplate fits a word on a single line, for lists.
const OneLineTemplate = `{{ .Title }}{{ if .Definition }} - {{ .Definition }}{{ end }}`
