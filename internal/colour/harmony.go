package colour

import (
	"fmt"
	"slices"
	"strings"
)

// Scheme identifies a colour harmony rule.
type Scheme string

const (
	SchemeComplementary      Scheme = "complementary"
	SchemeAnalogous          Scheme = "analogous"
	SchemeTriadic            Scheme = "triadic"
	SchemeSplitComplementary Scheme = "split-complementary"
	SchemeTetradic           Scheme = "tetradic"
	SchemeMonochromatic      Scheme = "monochromatic"
)

// schemeOffsets maps each scheme to hue offsets in degrees from the base hue.
var schemeOffsets = map[Scheme][]int{
	SchemeComplementary:      {0, 180},
	SchemeAnalogous:          {-30, 0, 30},
	SchemeTriadic:            {0, 120, 240},
	SchemeSplitComplementary: {0, 150, 210},
	SchemeTetradic:           {0, 90, 180, 270},
	SchemeMonochromatic:      {0, 0, 0, 0, 0},
}

// Schemes returns all supported harmony schemes in display order.
func Schemes() []Scheme {
	return []Scheme{
		SchemeComplementary,
		SchemeAnalogous,
		SchemeTriadic,
		SchemeSplitComplementary,
		SchemeTetradic,
		SchemeMonochromatic,
	}
}

// ParseScheme converts a string to a Scheme.
// Matching ignores case and accepts underscores or spaces in place of hyphens.
func ParseScheme(s string) (Scheme, error) {
	normalised := strings.ToLower(strings.TrimSpace(s))
	normalised = strings.NewReplacer("_", "-", " ", "-").Replace(normalised)

	scheme := Scheme(normalised)
	if slices.Contains(Schemes(), scheme) {
		return scheme, nil
	}
	return "", fmt.Errorf("invalid harmony scheme: %s (valid: %s)", s, strings.Join(schemeNames(), ", "))
}

// Label returns a human-readable name for the scheme.
func (s Scheme) Label() string {
	switch s {
	case SchemeComplementary:
		return "Complementary"
	case SchemeAnalogous:
		return "Analogous"
	case SchemeTriadic:
		return "Triadic"
	case SchemeSplitComplementary:
		return "Split Complementary"
	case SchemeTetradic:
		return "Tetradic"
	case SchemeMonochromatic:
		return "Monochromatic"
	default:
		return "Custom"
	}
}

// Offsets returns a copy of the scheme's hue offsets.
// Unknown schemes have a single zero offset.
func (s Scheme) Offsets() []int {
	offsets, ok := schemeOffsets[s]
	if !ok {
		return []int{0}
	}
	return slices.Clone(offsets)
}

// GenerateHarmony derives the hues for a scheme from a base hue.
// Hues of known schemes are normalised into [0, 360). An unknown scheme
// yields just the base hue, returned as given.
func GenerateHarmony(baseHue int, scheme Scheme) []int {
	offsets, ok := schemeOffsets[scheme]
	if !ok {
		return []int{baseHue}
	}
	hues := make([]int, len(offsets))
	for i, offset := range offsets {
		hues[i] = wrapHue(baseHue + offset)
	}
	return hues
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 int) int {
	diff := wrapHue(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

func wrapHue(h int) int {
	return ((h % 360) + 360) % 360
}

func schemeNames() []string {
	schemes := Schemes()
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = string(s)
	}
	return names
}
