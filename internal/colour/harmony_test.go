package colour

import (
	"slices"
	"testing"
)

func TestGenerateHarmony(t *testing.T) {
	tests := []struct {
		name   string
		base   int
		scheme Scheme
		want   []int
	}{
		{name: "complementary", base: 0, scheme: SchemeComplementary, want: []int{0, 180}},
		{name: "complementary wraps", base: 270, scheme: SchemeComplementary, want: []int{270, 90}},
		{name: "analogous", base: 100, scheme: SchemeAnalogous, want: []int{70, 100, 130}},
		{name: "analogous wraps below zero", base: 10, scheme: SchemeAnalogous, want: []int{340, 10, 40}},
		{name: "triadic", base: 200, scheme: SchemeTriadic, want: []int{200, 320, 80}},
		{name: "split complementary", base: 30, scheme: SchemeSplitComplementary, want: []int{30, 180, 240}},
		{name: "tetradic", base: 45, scheme: SchemeTetradic, want: []int{45, 135, 225, 315}},
		{name: "monochromatic", base: 12, scheme: SchemeMonochromatic, want: []int{12, 12, 12, 12, 12}},
		{name: "unknown scheme", base: 77, scheme: Scheme("pentadic"), want: []int{77}},
		{name: "unknown scheme keeps base as given", base: 400, scheme: Scheme("pentadic"), want: []int{400}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateHarmony(tt.base, tt.scheme)
			if !slices.Equal(got, tt.want) {
				t.Errorf("GenerateHarmony(%d, %s) = %v, want %v", tt.base, tt.scheme, got, tt.want)
			}
		})
	}
}

func TestGenerateHarmonyRange(t *testing.T) {
	for _, scheme := range Schemes() {
		for base := 0; base < 360; base += 7 {
			for _, h := range GenerateHarmony(base, scheme) {
				if h < 0 || h >= 360 {
					t.Fatalf("GenerateHarmony(%d, %s) produced hue %d", base, scheme, h)
				}
			}
		}
	}
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Scheme
		wantErr bool
	}{
		{in: "triadic", want: SchemeTriadic},
		{in: "Split-Complementary", want: SchemeSplitComplementary},
		{in: "split_complementary", want: SchemeSplitComplementary},
		{in: " monochromatic ", want: SchemeMonochromatic},
		{in: "rainbow", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScheme(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScheme(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseScheme(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSchemeOffsetsAreCopies(t *testing.T) {
	offsets := SchemeTriadic.Offsets()
	offsets[1] = 999
	if got := SchemeTriadic.Offsets(); got[1] != 120 {
		t.Errorf("Offsets() shares state with the scheme table: %v", got)
	}
}

func TestSchemeLabel(t *testing.T) {
	if got := SchemeSplitComplementary.Label(); got != "Split Complementary" {
		t.Errorf("Label() = %s", got)
	}
	if got := Scheme("x").Label(); got != "Custom" {
		t.Errorf("Label() for unknown = %s", got)
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2, want int
	}{
		{0, 180, 180},
		{350, 10, 20},
		{10, 350, 20},
		{90, 90, 0},
		{0, 270, 90},
	}
	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); got != tt.want {
			t.Errorf("HueDistance(%d, %d) = %d, want %d", tt.h1, tt.h2, got, tt.want)
		}
	}
}
