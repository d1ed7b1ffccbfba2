// Package export provides the interface and registry for palette exporters.
package export

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jmylchreest/brandkit/internal/colour"
)

// Document is everything an exporter may render.
type Document struct {
	Name     string           `json:"name,omitempty" yaml:"name,omitempty"`
	Base     string           `json:"base,omitempty" yaml:"base,omitempty"`
	Scheme   colour.Scheme    `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Seed     *int64           `json:"seed,omitempty" yaml:"seed,omitempty"`
	Colours  colour.Palette   `json:"colours" yaml:"colours"`
	Gradient *colour.Gradient `json:"gradient,omitempty" yaml:"gradient,omitempty"`
}

// Validate checks that every colour in the document can be rendered.
func (d Document) Validate() error {
	for i, c := range d.Colours {
		if !colour.IsValidHex(c.Hex) {
			return fmt.Errorf("colour %d: %w: %q", i+1, colour.ErrInvalidFormat, c.Hex)
		}
	}
	if d.Gradient != nil {
		if err := d.Gradient.Validate(); err != nil {
			return fmt.Errorf("gradient: %w", err)
		}
	}
	return nil
}

// Exporter renders a Document into a file format.
type Exporter interface {
	// Name returns the exporter's name (e.g., "css", "tailwind").
	Name() string

	// Description returns a human-readable description of the exporter.
	Description() string

	// FileName returns the default file name for the output.
	FileName() string

	// Export renders the document.
	Export(doc Document) ([]byte, error)
}

// Registry holds all registered exporters.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates a registry containing the given exporters.
func NewRegistry(exporters ...Exporter) *Registry {
	r := &Registry{
		exporters: make(map[string]Exporter),
	}
	for _, e := range exporters {
		r.Register(e)
	}
	return r
}

// Register adds an exporter to the registry, replacing any with the same name.
func (r *Registry) Register(e Exporter) {
	r.exporters[e.Name()] = e
}

// Get retrieves an exporter by name.
func (r *Registry) Get(name string) (Exporter, bool) {
	e, ok := r.exporters[name]
	return e, ok
}

// List returns all registered exporter names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Export validates doc and renders it with the named exporter.
func (r *Registry) Export(name string, doc Document) ([]byte, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown export format: %s (available: %s)", name, strings.Join(r.List(), ", "))
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return e.Export(doc)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a colour name into an identifier safe for CSS variables and
// JavaScript object keys. It returns "" when nothing usable remains.
func Slug(name string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
}
