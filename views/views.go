// Package views holds the embedded HTML templates and renders animal cards.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	m "github.com/ChrisTheAbysswalker/animals-web/models"
)

const (
	IndexTemplate = "index.tmpl"
	CardTemplate  = "card.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Load parses every embedded template into one set.
func Load() (*template.Template, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// RenderCard serializes one animal to a <li class="cards__item"> fragment.
func RenderCard(tmpl *template.Template, animal m.DisplayAnimal) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, CardTemplate, animal); err != nil {
		return "", fmt.Errorf("rendering card %q: %w", animal.Name, err)
	}
	// Output of html/template is already escaped.
	return template.HTML(buf.String()), nil
}

// RenderCards concatenates the cards for records in the order given.
func RenderCards(tmpl *template.Template, records []m.AnimalRecord) (template.HTML, error) {
	var sb strings.Builder
	for _, record := range records {
		card, err := RenderCard(tmpl, record.Display())
		if err != nil {
			return "", err
		}
		sb.WriteString(string(card))
	}
	return template.HTML(sb.String()), nil
}
