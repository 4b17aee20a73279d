package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

// TemplateData carries the placeholders the embedded templates know about.
type TemplateData struct {
	Year int
	Day  int
}

// PaddedDay returns the zero-padded day used in file names.
func (d TemplateData) PaddedDay() string {
	return fmt.Sprintf("%02d", d.Day)
}

// Render fills one embedded template ("day.go.tpl", "README.md.tpl",
// "config.yaml.tpl") with year/day data.
func Render(name string, data TemplateData) (string, error) {
	raw, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("scaffold: missing template %s: %w", name, err)
	}
	tpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("scaffold: parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("scaffold: render template %s: %w", name, err)
	}
	return buf.String(), nil
}
