// Package testing provides shared test utilities for exporters.
package testing

import (
	"strings"
	"testing"

	"github.com/jmylchreest/brandkit/internal/colour"
	"github.com/jmylchreest/brandkit/internal/export"
)

// SampleDocument returns a named brand document with a gradient.
func SampleDocument() export.Document {
	g := colour.DefaultGradient()
	seed := int64(42)
	return export.Document{
		Name:     "Acme",
		Base:     "#60d9c4",
		Scheme:   colour.SchemeAnalogous,
		Seed:     &seed,
		Colours:  colour.DefaultBrandPalette(),
		Gradient: &g,
	}
}

// TestBasicInterface tests the methods every exporter must implement.
func TestBasicInterface(t *testing.T, e export.Exporter, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		if e.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", e.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if e.Description() == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("FileName", func(t *testing.T) {
		if e.FileName() == "" {
			t.Error("FileName() should not be empty")
		}
	})
}

// TestExportContains exports doc and checks the output contains each want string.
func TestExportContains(t *testing.T, e export.Exporter, doc export.Document, want []string) string {
	t.Helper()
	out, err := e.Export(doc)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	content := string(out)
	for _, w := range want {
		if !strings.Contains(content, w) {
			t.Errorf("Export() output missing %q\n%s", w, content)
		}
	}
	return content
}

// TestEmptyPalette checks that an empty document exports without error.
func TestEmptyPalette(t *testing.T, e export.Exporter) {
	t.Run("EmptyPalette", func(t *testing.T) {
		if _, err := e.Export(export.Document{}); err != nil {
			t.Errorf("Export() of empty document error = %v", err)
		}
	})
}
