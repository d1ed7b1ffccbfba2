package colour

import (
	"fmt"
	"math"
)

// HSL represents a colour in hue/saturation/lightness form.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H int `json:"h" yaml:"h"`
	S int `json:"s" yaml:"s"`
	L int `json:"l" yaml:"l"`
}

// String returns the HSL colour in CSS notation, e.g. "hsl(210, 50%, 40%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// Hex renders the HSL colour back to "#rrggbb".
func (c HSL) Hex() string {
	return HSLToHex(float64(c.H), float64(c.S), float64(c.L))
}

// HexToHSL converts a hex colour to HSL.
// Malformed input yields the zero HSL rather than an error; use ParseHSL
// when the caller needs to tell black apart from bad input.
func HexToHSL(hex string) HSL {
	hsl, err := ParseHSL(hex)
	if err != nil {
		return HSL{}
	}
	return hsl
}

// ParseHSL converts a hex colour to HSL, returning ErrInvalidFormat for
// malformed input.
func ParseHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// RGBToHSL converts RGB to HSL, rounding each component to the nearest
// integer (halves round up).
func RGBToHSL(rgb RGB) HSL {
	h, s, l := rgbToHSL(rgb)

	hue := int(roundHalfUp(h * 360))
	if hue >= 360 {
		hue -= 360
	}

	return HSL{
		H: hue,
		S: int(roundHalfUp(s * 100)),
		L: int(roundHalfUp(l * 100)),
	}
}

// rgbToHSL converts RGB to HSL colour space.
// Returns hue as a fraction of a turn [0, 1), saturation and lightness [0, 1].
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if maxVal == minVal {
		return 0, 0, l
	}

	d := maxVal - minVal
	if l > 0.5 {
		s = d / (2.0 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}

	return h / 6, s, l
}

// HSLToHex converts HSL to a lowercase "#rrggbb" string using the CSS Color
// Module conversion. h is in degrees, s and l are percentages.
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

// HSLToRGB converts HSL to RGB using the CSS Color Module conversion.
// Inputs outside the nominal ranges are not rejected; channels that fall
// outside [0, 255] are clamped.
func HSLToRGB(h, s, l float64) RGB {
	l /= 100
	a := (s * math.Min(l, 1-l)) / 100

	f := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		c := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return clampChannel(roundHalfUp(255 * c))
	}

	return RGB{R: f(0), G: f(8), B: f(4)}
}

// roundHalfUp rounds to the nearest integer with halves rounding towards
// positive infinity.
func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

func clampChannel(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
