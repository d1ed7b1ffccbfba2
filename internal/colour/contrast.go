package colour

import (
	"fmt"
	"image/color"
	"math"
)

// WCAG 2.x contrast thresholds.
const (
	ContrastAA       = 4.5
	ContrastAALarge  = 3.0
	ContrastAAA      = 7.0
	ContrastAAALarge = 4.5
)

// WCAGResult records which WCAG levels a contrast ratio satisfies.
type WCAGResult struct {
	AA       bool `json:"aa"`
	AALarge  bool `json:"aa_large"`
	AAA      bool `json:"aaa"`
	AAALarge bool `json:"aaa_large"`
}

// ContrastResult is the outcome of evaluating a foreground/background pair.
type ContrastResult struct {
	Foreground string     `json:"foreground"`
	Background string     `json:"background"`
	Ratio      float64    `json:"ratio"`
	WCAG       WCAGResult `json:"wcag"`
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Luminance is RelativeLuminance for any color.Color. Alpha is ignored.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	return RelativeLuminance(RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
}

// gammaCorrect linearises an sRGB channel.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex is ContrastRatio for hex strings.
// It returns 0 if either colour cannot be parsed. A real ratio is never
// below 1, so 0 always means "not computable".
func ContrastRatioHex(a, b string) float64 {
	rgbA, err := HexToRGB(a)
	if err != nil {
		return 0
	}
	rgbB, err := HexToRGB(b)
	if err != nil {
		return 0
	}
	return ContrastRatio(rgbA, rgbB)
}

// ClassifyWCAG compares a contrast ratio against the WCAG thresholds.
// AA for normal text and AAA for large text share the 4.5 threshold.
func ClassifyWCAG(ratio float64) WCAGResult {
	return WCAGResult{
		AA:       ratio >= ContrastAA,
		AALarge:  ratio >= ContrastAALarge,
		AAA:      ratio >= ContrastAAA,
		AAALarge: ratio >= ContrastAAALarge,
	}
}

// CheckContrast evaluates a foreground/background pair.
// Unlike ContrastRatioHex it reports malformed input as an error.
func CheckContrast(fg, bg string) (ContrastResult, error) {
	fgRGB, err := HexToRGB(fg)
	if err != nil {
		return ContrastResult{}, fmt.Errorf("foreground: %w", err)
	}
	bgRGB, err := HexToRGB(bg)
	if err != nil {
		return ContrastResult{}, fmt.Errorf("background: %w", err)
	}

	ratio := ContrastRatio(fgRGB, bgRGB)
	return ContrastResult{
		Foreground: fgRGB.Hex(),
		Background: bgRGB.Hex(),
		Ratio:      ratio,
		WCAG:       ClassifyWCAG(ratio),
	}, nil
}

// Swap returns the result with foreground and background exchanged.
// The ratio is symmetric so only the labels move.
func (r ContrastResult) Swap() ContrastResult {
	r.Foreground, r.Background = r.Background, r.Foreground
	return r
}

// BestTextColour returns black or white, whichever contrasts more with bg.
func BestTextColour(bg RGB) RGB {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	if ContrastRatio(black, bg) >= ContrastRatio(white, bg) {
		return black
	}
	return white
}
