// Package tailwind provides a Tailwind CSS configuration exporter.
package tailwind

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"text/template"

	"github.com/jmylchreest/brandkit/internal/export"
)

//go:embed *.tmpl
var templates embed.FS

// Exporter implements export.Exporter for Tailwind CSS.
type Exporter struct{}

// New creates a new Tailwind CSS exporter.
func New() *Exporter {
	return &Exporter{}
}

// Name returns the exporter name.
func (e *Exporter) Name() string {
	return "tailwind"
}

// Description returns the exporter description.
func (e *Exporter) Description() string {
	return "tailwind.config.js extending theme colours with a brand palette"
}

// FileName returns the default output file name.
func (e *Exporter) FileName() string {
	return "tailwind.config.js"
}

// ConfigData holds data for the config template.
type ConfigData struct {
	Name     string
	Colours  []ConfigColour
	Gradient string
}

// ConfigColour is a single brand colour entry.
type ConfigColour struct {
	Key string
	Hex string
}

// Export creates the tailwind.config.js content.
func (e *Exporter) Export(doc export.Document) ([]byte, error) {
	tmplContent, err := templates.ReadFile("tailwind.config.js.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read config template: %w", err)
	}

	tmpl, err := template.New("tailwind.config.js").Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, prepareConfigData(doc)); err != nil {
		return nil, fmt.Errorf("failed to execute config template: %w", err)
	}

	return buf.Bytes(), nil
}

// prepareConfigData keys colours by slugged name, falling back to their
// 1-based position. Duplicate names keep the first colour's slug and fall
// back to the position for the rest.
func prepareConfigData(doc export.Document) ConfigData {
	data := ConfigData{Name: doc.Name}
	seen := make(map[string]bool)
	for i, c := range doc.Colours {
		key := export.Slug(c.Name)
		if key == "" || seen[key] {
			key = strconv.Itoa(i + 1)
		}
		seen[key] = true
		data.Colours = append(data.Colours, ConfigColour{Key: key, Hex: c.Hex})
	}
	if doc.Gradient != nil {
		data.Gradient = doc.Gradient.CSS()
	}
	return data
}
