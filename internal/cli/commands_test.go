package cli_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/brandkit/internal/colour"
)

func TestConvertCommand(t *testing.T) {
	setupTests(t)

	t.Run("HexToRGBAndHSL", func(t *testing.T) {
		out, _, err := execute(t, "convert", "#336699")
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"#336699", "rgb(51, 102, 153)", "hsl(210, 50%, 40%)"} {
			if !strings.Contains(out, want) {
				t.Errorf("convert output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("HSLToHex", func(t *testing.T) {
		out, _, err := execute(t, "convert", "--hsl", "330,60,45", "--hsl", "hsl(210, 50%, 40%)")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, "#b82e73") || !strings.Contains(out, "#336699") {
			t.Errorf("convert --hsl output:\n%s", out)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		out, _, err := execute(t, "convert", "--json", "f0a")
		if err != nil {
			t.Fatal(err)
		}
		var rows []struct {
			Input string     `json:"input"`
			Hex   string     `json:"hex"`
			RGB   colour.RGB `json:"rgb"`
		}
		if err := json.Unmarshal([]byte(out), &rows); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if len(rows) != 1 || rows[0].Hex != "#ff00aa" || rows[0].RGB != (colour.RGB{R: 255, B: 170}) {
			t.Errorf("rows = %+v", rows)
		}
	})

	t.Run("InvalidColour", func(t *testing.T) {
		_, _, err := execute(t, "convert", "zzzzzz")
		if !errors.Is(err, colour.ErrInvalidFormat) {
			t.Errorf("error = %v, want ErrInvalidFormat", err)
		}
	})

	t.Run("NoInput", func(t *testing.T) {
		if _, _, err := execute(t, "convert"); err == nil {
			t.Error("convert without input should fail")
		}
	})
}

func TestHarmonyCommand(t *testing.T) {
	setupTests(t)

	out, _, err := execute(t, "harmony", "#ff0000", "--scheme", "triadic")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Triadic harmony of #ff0000", "Distance", "+120", "120°", "#00ff00", "#0000ff"} {
		if !strings.Contains(out, want) {
			t.Errorf("harmony output missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "harmony", "f00", "--all")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range colour.Schemes() {
		if !strings.Contains(out, s.Label()+" harmony") {
			t.Errorf("--all output missing %s", s.Label())
		}
	}

	out, _, err = execute(t, "harmony", "#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Analogous harmony") {
		t.Errorf("default scheme should come from config:\n%s", out)
	}

	if _, _, err := execute(t, "harmony", "#ff0000", "--scheme", "pastel"); err == nil {
		t.Error("unknown scheme should fail")
	}
}

func TestContrastCommand(t *testing.T) {
	setupTests(t)

	t.Run("Table", func(t *testing.T) {
		out, _, err := execute(t, "contrast", "#767676", "#ffffff")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, "Ratio       4.54:1") {
			t.Errorf("missing ratio:\n%s", out)
		}
		if !strings.Contains(out, "PASS") || !strings.Contains(out, "FAIL") {
			t.Errorf("expected both PASS and FAIL:\n%s", out)
		}
	})

	t.Run("JSONWithSwap", func(t *testing.T) {
		out, _, err := execute(t, "contrast", "--json", "--swap", "777", "fff")
		if err != nil {
			t.Fatal(err)
		}
		var result colour.ContrastResult
		if err := json.Unmarshal([]byte(out), &result); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if result.Foreground != "#ffffff" || result.Background != "#777777" {
			t.Errorf("swap not applied: %+v", result)
		}
		want := colour.WCAGResult{AA: false, AALarge: true, AAA: false, AAALarge: false}
		if result.WCAG != want {
			t.Errorf("WCAG = %+v, want %+v", result.WCAG, want)
		}
	})

	t.Run("InvalidColour", func(t *testing.T) {
		_, _, err := execute(t, "contrast", "#fff", "white")
		if err == nil || !strings.Contains(err.Error(), "background") {
			t.Errorf("error = %v, want background error", err)
		}
		if !errors.Is(err, colour.ErrInvalidFormat) {
			t.Errorf("error should wrap ErrInvalidFormat: %v", err)
		}
	})
}

func TestGradientCommand(t *testing.T) {
	setupTests(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Default", nil, "background: linear-gradient(90deg, #2dd4bf 0%, #a78bfa 100%);"},
		{"Preset", []string{"--preset", "Sunset", "--angle", "135"}, "linear-gradient(135deg, #ff6b6b 0%, #ffe66d 100%)"},
		{"Stops", []string{"--type", "radial", "--stop", "#000@0", "--stop", "#FFFFFF@100%"}, "radial-gradient(circle, #000000 0%, #ffffff 100%)"},
		{"Conic", []string{"--type", "conic", "--angle", "45"}, "conic-gradient(from 45deg, #2dd4bf 0%, #a78bfa 100%)"},
		{"AddStop", []string{"--add-stop", "1"}, "linear-gradient(90deg, #2dd4bf 0%, #ffffff 50%, #a78bfa 100%)"},
		{"SortedStops", []string{"--stop", "#ffffff@100", "--stop", "#000000@0"}, "linear-gradient(90deg, #000000 0%, #ffffff 100%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"gradient"}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}

	t.Run("RandomIsSeeded", func(t *testing.T) {
		first, _, err := execute(t, "gradient", "--random", "--seed", "7")
		if err != nil {
			t.Fatal(err)
		}
		second, _, _ := execute(t, "gradient", "--random", "--seed", "7")
		if first != second {
			t.Errorf("same seed produced %q and %q", first, second)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		for _, args := range [][]string{
			{"gradient", "--remove-stop", "1"},
			{"gradient", "--stop", "#000000"},
			{"gradient", "--stop", "#000000@0"},
			{"gradient", "--angle", "400"},
			{"gradient", "--type", "diamond"},
			{"gradient", "--preset", "nope"},
			{"gradient", "--add-stop", "4"},
		} {
			if _, _, err := execute(t, args...); err == nil {
				t.Errorf("%v should fail", args)
			}
		}
	})

	t.Run("ListPresets", func(t *testing.T) {
		out, _, err := execute(t, "gradient", "--list-presets")
		if err != nil {
			t.Fatal(err)
		}
		for _, name := range []string{"sunset", "ocean", "forest", "aurora", "peach", "mint"} {
			if !strings.Contains(out, name) {
				t.Errorf("preset list missing %s", name)
			}
		}
	})

	t.Run("JSON", func(t *testing.T) {
		out, _, err := execute(t, "gradient", "--json")
		if err != nil {
			t.Fatal(err)
		}
		var decoded struct {
			colour.Gradient
			CSS string `json:"css"`
		}
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded.Type != colour.GradientLinear || len(decoded.Stops) != 2 || !strings.HasPrefix(decoded.CSS, "linear-gradient(") {
			t.Errorf("decoded = %+v", decoded)
		}
	})
}

func TestExportCommand(t *testing.T) {
	dir := setupTests(t)
	config := `brand:
  name: Acme
palette:
  base: "#60d9c4"
  slots: 2
  colours:
    - hex: "#60d9c4"
      name: Primary
    - hex: "#1a1a2e"
      name: Dark
export:
  format: css
  output_dir: dist
gradient:
  preset: mint
  angle: 120
`
	if err := os.WriteFile(filepath.Join(dir, "brandkit.yaml"), []byte(config), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("Stdout", func(t *testing.T) {
		out, _, err := execute(t, "export", "--stdout")
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{
			"--color-1: #60d9c4;",
			"--color-dark: var(--color-2);",
			"--gradient: linear-gradient(120deg, #2dd4bf 0%, #06b6d4 100%);",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("export output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("AllToConfiguredDir", func(t *testing.T) {
		_, errOut, err := execute(t, "export", "--all")
		if err != nil {
			t.Fatal(err)
		}
		for _, name := range []string{"palette.css", "palette.json", "palette.yaml", "tailwind.config.js"} {
			path := filepath.Join(dir, "dist", name)
			if _, err := os.Stat(path); err != nil {
				t.Errorf("expected %s: %v", path, err)
			}
			if !strings.Contains(errOut, name) {
				t.Errorf("expected a status line for %s, got %q", name, errOut)
			}
		}
	})

	t.Run("OutputDirFlag", func(t *testing.T) {
		outDir := filepath.Join(dir, "custom")
		if _, _, err := execute(t, "export", "tailwind", "--output-dir", outDir); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(filepath.Join(outDir, "tailwind.config.js"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "'primary': '#60d9c4',") {
			t.Errorf("tailwind output:\n%s", data)
		}
	})

	t.Run("List", func(t *testing.T) {
		out, _, err := execute(t, "export", "--list")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, "tailwind.config.js") || !strings.Contains(out, "palette.yaml") {
			t.Errorf("list output:\n%s", out)
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		if _, _, err := execute(t, "export", "--stdout", "scss"); err == nil {
			t.Error("unknown format should fail")
		}
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		t.Setenv("BRANDKIT_SCHEME", "pastel")
		_, _, err := execute(t, "export", "--stdout")
		if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
			t.Errorf("error = %v, want invalid configuration", err)
		}
	})
}
