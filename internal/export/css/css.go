// Package css exports a palette as CSS custom properties.
package css

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/brandkit/internal/export"
)

// Exporter implements export.Exporter for CSS custom properties.
type Exporter struct{}

// New creates a new CSS exporter.
func New() *Exporter {
	return &Exporter{}
}

// Name returns the exporter name.
func (e *Exporter) Name() string {
	return "css"
}

// Description returns the exporter description.
func (e *Exporter) Description() string {
	return "CSS custom properties on :root (--color-1, --color-2, ...)"
}

// FileName returns the default output file name.
func (e *Exporter) FileName() string {
	return "palette.css"
}

// Export renders the palette as a :root block. Colours are numbered from 1
// in palette order; named colours also get an alias pointing at their
// numbered variable.
func (e *Exporter) Export(doc export.Document) ([]byte, error) {
	lines := make([]string, 0, len(doc.Colours)*2+1)
	for i, c := range doc.Colours {
		lines = append(lines, fmt.Sprintf("--color-%d: %s;", i+1, c.Hex))
	}
	for i, c := range doc.Colours {
		if slug := export.Slug(c.Name); slug != "" {
			lines = append(lines, fmt.Sprintf("--color-%s: var(--color-%d);", slug, i+1))
		}
	}
	if doc.Gradient != nil {
		lines = append(lines, fmt.Sprintf("--gradient: %s;", doc.Gradient.CSS()))
	}

	return []byte(":root {\n" + strings.Join(lines, "\n") + "\n}"), nil
}
