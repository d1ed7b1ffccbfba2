package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/brandkit/internal/colour"
)

func TestParseHSLTriple(t *testing.T) {
	tests := []struct {
		in      string
		h, s, l float64
		wantErr bool
	}{
		{in: "210,50,40", h: 210, s: 50, l: 40},
		{in: " 330 , 60% , 45% ", h: 330, s: 60, l: 45},
		{in: "hsl(0, 100%, 50%)", h: 0, s: 100, l: 50},
		{in: "12.5,10,90", h: 12.5, s: 10, l: 90},
		{in: "210,50", wantErr: true},
		{in: "a,b,c", wantErr: true},
		{in: "0,150,50", wantErr: true},
		{in: "0,50,-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, s, l, err := parseHSLTriple(tt.in)
			if tt.wantErr {
				if !errors.Is(err, colour.ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if h != tt.h || s != tt.s || l != tt.l {
				t.Errorf("parseHSLTriple(%q) = %v, %v, %v", tt.in, h, s, l)
			}
		})
	}
}

func TestStopsValue(t *testing.T) {
	var v stopsValue
	for _, s := range []string{"#2DD4BF@0", "a78bfa@100%"} {
		if err := v.Set(s); err != nil {
			t.Fatalf("Set(%q) = %v", s, err)
		}
	}

	if got := v.String(); got != "#2dd4bf@0,#a78bfa@100" {
		t.Errorf("String() = %q", got)
	}
	if v.Type() != "stop" {
		t.Errorf("Type() = %q", v.Type())
	}

	for _, bad := range []string{"#2dd4bf", "nothex@10", "#2dd4bf@mid"} {
		if err := v.Set(bad); err == nil {
			t.Errorf("Set(%q) should fail", bad)
		}
	}
	if len(v.stops) != 2 {
		t.Errorf("failed Set calls should not add stops, have %d", len(v.stops))
	}
}

func TestSeedInputIncludesLockedColours(t *testing.T) {
	p := colour.Palette{{Hex: "#111111", Locked: true}, {Hex: "#222222"}}
	got := seedInput("#2dd4bf", colour.SchemeTriadic, p)
	if got != "#2dd4bf|triadic|2|#111111" {
		t.Errorf("seedInput() = %q", got)
	}
}

func TestRenderPalette(t *testing.T) {
	p := colour.Palette{{Hex: "#60d9c4", Name: "Primary", Locked: true}, {Hex: "#ffffff"}}
	want := "1. #60d9c4  Primary  [locked]\n2. #ffffff\n"
	if got := renderPalette(p, false); got != want {
		t.Errorf("renderPalette() = %q, want %q", got, want)
	}
}

func TestRenderPaletteSwatches(t *testing.T) {
	previous := colour.DisableColourOutput
	colour.DisableColourOutput = false
	t.Cleanup(func() { colour.DisableColourOutput = previous })

	p := colour.Palette{{Hex: "#60d9c4", Name: "Primary", Locked: true}}
	got := renderPalette(p, true)

	if !strings.HasPrefix(got, "1. \033[48;2;96;217;196m") {
		t.Errorf("swatch should carry the colour as background: %q", got)
	}
	if !strings.Contains(got, " #60d9c4 \033[0m") || !strings.HasSuffix(got, "  Primary  [locked]\n") {
		t.Errorf("renderPalette() = %q", got)
	}
}
