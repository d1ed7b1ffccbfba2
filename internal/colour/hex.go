// Package colour provides colour conversion, harmony derivation and WCAG
// contrast evaluation for brand palettes.
package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a colour string is not a valid hex colour.
var ErrInvalidFormat = errors.New("invalid colour format")

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HexToRGB parses a six digit hex colour with an optional leading '#'.
// Case is ignored. Shorthand forms are rejected; see NormalizeHex.
func HexToRGB(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 || !isHexDigits(digits) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}

	// Each pair is two validated hex digits so ParseUint cannot fail or overflow.
	r, _ := strconv.ParseUint(digits[0:2], 16, 8)
	g, _ := strconv.ParseUint(digits[2:4], 16, 8)
	b, _ := strconv.ParseUint(digits[4:6], 16, 8)

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// NormalizeHex canonicalises user input into "#rrggbb".
// It accepts "#RGB" shorthand and surrounding whitespace in addition to
// everything HexToRGB accepts.
func NormalizeHex(hex string) (string, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(digits) == 3 && isHexDigits(digits) {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	rgb, err := HexToRGB(digits)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	return rgb.Hex(), nil
}

// IsValidHex reports whether HexToRGB would accept hex.
func IsValidHex(hex string) bool {
	_, err := HexToRGB(hex)
	return err == nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
