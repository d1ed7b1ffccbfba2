package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/brandkit/internal/colour"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAverageColour(t *testing.T) {
	tests := []struct {
		name  string
		fill  func(x, y int) color.NRGBA
		want  colour.RGB
		error bool
	}{
		{
			name: "solid",
			fill: func(x, y int) color.NRGBA { return color.NRGBA{R: 45, G: 212, B: 191, A: 255} },
			want: colour.RGB{R: 45, G: 212, B: 191},
		},
		{
			name: "transparent background ignored",
			fill: func(x, y int) color.NRGBA {
				if x < 2 {
					return color.NRGBA{R: 255, A: 255}
				}
				return color.NRGBA{G: 255, A: 0}
			},
			want: colour.RGB{R: 255},
		},
		{
			name: "two halves",
			fill: func(x, y int) color.NRGBA {
				if x < 2 {
					return color.NRGBA{R: 255, A: 255}
				}
				return color.NRGBA{B: 255, A: 255}
			},
			want: colour.RGB{R: 128, B: 128},
		},
		{
			name:  "fully transparent",
			fill:  func(x, y int) color.NRGBA { return color.NRGBA{} },
			error: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					img.SetNRGBA(x, y, tt.fill(x, y))
				}
			}

			got, err := AverageColour(img)
			if tt.error {
				if err == nil {
					t.Fatalf("AverageColour() expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("AverageColour() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AverageColour() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := AverageColour(nil); err == nil {
		t.Error("AverageColour(nil) should fail")
	}
}

func TestBaseColourFromFile(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 255})
		}
	}
	path := writePNG(t, img)

	got, err := BaseColourFromFile(NewFileLoader(), path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "#336699" {
		t.Errorf("BaseColourFromFile() = %s, want #336699", got)
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("hi"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "empty", path: "", wantErr: "empty"},
		{name: "missing", path: filepath.Join(dir, "missing.png"), wantErr: "not found"},
		{name: "directory", path: dir, wantErr: "directory"},
		{name: "wrong extension", path: txt, wantErr: "unsupported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateImagePath(%q) error = %v, want containing %q", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsCorruptImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not really a png"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader().Load(path); err == nil || !strings.Contains(err.Error(), "decode") {
		t.Errorf("Load() error = %v, want decode failure", err)
	}
}
