// Package structured exports palettes as machine-readable JSON or YAML.
package structured

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/brandkit/internal/colour"
	"github.com/jmylchreest/brandkit/internal/export"
)

type gradientEntry struct {
	colour.Gradient `yaml:",inline"`
	CSS             string `json:"css" yaml:"css"`
}

type document struct {
	Name     string                `json:"name,omitempty" yaml:"name,omitempty"`
	Base     string                `json:"base,omitempty" yaml:"base,omitempty"`
	Scheme   colour.Scheme         `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Seed     *int64                `json:"seed,omitempty" yaml:"seed,omitempty"`
	Colours  []colour.ColourDetail `json:"colours" yaml:"colours"`
	Gradient *gradientEntry        `json:"gradient,omitempty" yaml:"gradient,omitempty"`
}

func expand(doc export.Document) (document, error) {
	colours, err := doc.Colours.Details()
	if err != nil {
		return document{}, err
	}
	out := document{
		Name:    doc.Name,
		Base:    doc.Base,
		Scheme:  doc.Scheme,
		Seed:    doc.Seed,
		Colours: colours,
	}
	if doc.Gradient != nil {
		out.Gradient = &gradientEntry{Gradient: *doc.Gradient, CSS: doc.Gradient.CSS()}
	}
	return out, nil
}

// JSONExporter implements export.Exporter for JSON.
type JSONExporter struct{}

// NewJSON creates a new JSON exporter.
func NewJSON() *JSONExporter {
	return &JSONExporter{}
}

// Name returns the exporter name.
func (e *JSONExporter) Name() string { return "json" }

// Description returns the exporter description.
func (e *JSONExporter) Description() string {
	return "JSON document with hex, RGB and HSL for every colour"
}

// FileName returns the default output file name.
func (e *JSONExporter) FileName() string { return "palette.json" }

// Export renders the document as indented JSON.
func (e *JSONExporter) Export(doc export.Document) ([]byte, error) {
	out, err := expand(doc)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// YAMLExporter implements export.Exporter for YAML.
type YAMLExporter struct{}

// NewYAML creates a new YAML exporter.
func NewYAML() *YAMLExporter {
	return &YAMLExporter{}
}

// Name returns the exporter name.
func (e *YAMLExporter) Name() string { return "yaml" }

// Description returns the exporter description.
func (e *YAMLExporter) Description() string {
	return "YAML document with hex, RGB and HSL for every colour"
}

// FileName returns the default output file name.
func (e *YAMLExporter) FileName() string { return "palette.yaml" }

// Export renders the document as YAML.
func (e *YAMLExporter) Export(doc export.Document) ([]byte, error) {
	out, err := expand(doc)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return data, nil
}
