package colour

import (
	"fmt"
	"slices"
)

// Source supplies uniformly distributed values in [0, 1).
// *math/rand.Rand satisfies it; tests can substitute a fixed sequence.
type Source interface {
	Float64() float64
}

// PaletteColor is a single palette slot.
type PaletteColor struct {
	Hex    string `json:"hex" yaml:"hex"`
	Locked bool   `json:"locked" yaml:"locked"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Palette is an ordered set of palette slots.
// Edits return a new Palette and leave the receiver untouched.
type Palette []PaletteColor

// Saturation and lightness bounds for regenerated colours, in percent.
const (
	minSaturation     = 60.0
	saturationSpread  = 30.0
	minLightness      = 45.0
	lightnessSpread   = 20.0
	monoLightnessBase = 30.0
	monoLightnessStep = 15.0
)

// DefaultPalette returns the five starter colours, all unlocked.
func DefaultPalette() Palette {
	return Palette{
		{Hex: "#2dd4bf"},
		{Hex: "#a78bfa"},
		{Hex: "#fb923c"},
		{Hex: "#f472b6"},
		{Hex: "#38bdf8"},
	}
}

// DefaultBrandPalette returns the named colours a new brand starts with.
func DefaultBrandPalette() Palette {
	return Palette{
		{Hex: "#60d9c4", Name: "Primary"},
		{Hex: "#ffb5c5", Name: "Secondary"},
		{Hex: "#a5b4fc", Name: "Accent"},
		{Hex: "#1a1a2e", Name: "Dark"},
		{Hex: "#ffffff", Name: "Light"},
	}
}

// NewPalette creates an unlocked palette from hex colours.
// Every colour must be valid; shorthand is expanded.
func NewPalette(hexes []string) (Palette, error) {
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		hex, err := NormalizeHex(h)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i+1, err)
		}
		p[i] = PaletteColor{Hex: hex}
	}
	return p, nil
}

// Regenerate returns a new palette in which every unlocked slot is replaced
// by a colour on the scheme's harmony. Slot i takes hue hues[i mod len(hues)],
// a saturation drawn from [60, 90) and a lightness drawn from [45, 65).
// Monochromatic palettes instead use a fixed lightness of 30 + 15*i.
// Locked slots are copied through unchanged.
//
// rng must be usable: a nil interface is rejected, but a typed nil such as
// a (*rand.Rand)(nil) stored in Source panics on the first draw.
func Regenerate(colours []PaletteColor, baseHex string, scheme Scheme, rng Source) ([]PaletteColor, error) {
	base, err := ParseHSL(baseHex)
	if err != nil {
		return nil, fmt.Errorf("base colour: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	hues := GenerateHarmony(base.H, scheme)
	out := make([]PaletteColor, len(colours))
	for i, c := range colours {
		if c.Locked {
			out[i] = c
			continue
		}

		hue := hues[i%len(hues)]
		saturation := minSaturation + rng.Float64()*saturationSpread
		var lightness float64
		if scheme == SchemeMonochromatic {
			lightness = monoLightnessBase + float64(i)*monoLightnessStep
		} else {
			lightness = minLightness + rng.Float64()*lightnessSpread
		}

		out[i] = PaletteColor{
			Hex:  HSLToHex(float64(hue), saturation, lightness),
			Name: c.Name,
		}
	}
	return out, nil
}

// Regenerate is the method form of the package-level Regenerate.
func (p Palette) Regenerate(baseHex string, scheme Scheme, rng Source) (Palette, error) {
	return Regenerate(p, baseHex, scheme, rng)
}

// Len returns the number of colours in the palette.
func (p Palette) Len() int {
	return len(p)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p Palette) Get(index int) (PaletteColor, error) {
	if err := p.checkIndex(index); err != nil {
		return PaletteColor{}, err
	}
	return p[index], nil
}

// WithLocked returns a copy with the slot's lock flag set to locked.
func (p Palette) WithLocked(index int, locked bool) (Palette, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	}
	out := slices.Clone(p)
	out[index].Locked = locked
	return out, nil
}

// ToggleLock returns a copy with the slot's lock flag flipped.
func (p Palette) ToggleLock(index int) (Palette, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	}
	return p.WithLocked(index, !p[index].Locked)
}

// WithColour returns a copy with the slot's colour replaced.
func (p Palette) WithColour(index int, hex string) (Palette, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	}
	normalised, err := NormalizeHex(hex)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(p)
	out[index].Hex = normalised
	return out, nil
}

// Append returns a copy with c added at the end.
func (p Palette) Append(c PaletteColor) (Palette, error) {
	normalised, err := NormalizeHex(c.Hex)
	if err != nil {
		return nil, err
	}
	c.Hex = normalised
	out := make(Palette, len(p), len(p)+1)
	copy(out, p)
	return append(out, c), nil
}

// Remove returns a copy without the slot at index.
func (p Palette) Remove(index int) (Palette, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	}
	return slices.Delete(slices.Clone(p), index, index+1), nil
}

// Hexes returns the palette colours as hex strings.
func (p Palette) Hexes() []string {
	hexes := make([]string, len(p))
	for i, c := range p {
		hexes[i] = c.Hex
	}
	return hexes
}

// All returns an iterator over all colours in the palette.
func (p Palette) All() func(func(int, PaletteColor) bool) {
	return func(yield func(int, PaletteColor) bool) {
		for i, c := range p {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ColourDetail is a palette colour with its derived RGB and HSL values.
type ColourDetail struct {
	Hex    string `json:"hex" yaml:"hex"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Locked bool   `json:"locked" yaml:"locked"`
	RGB    RGB    `json:"rgb" yaml:"rgb"`
	HSL    HSL    `json:"hsl" yaml:"hsl"`
}

// Details expands every colour into a ColourDetail. The first malformed
// colour is reported by its 1-based slot.
func (p Palette) Details() ([]ColourDetail, error) {
	details := make([]ColourDetail, len(p))
	for i, c := range p {
		rgb, err := HexToRGB(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i+1, err)
		}
		details[i] = ColourDetail{
			Hex:    rgb.Hex(),
			Name:   c.Name,
			Locked: c.Locked,
			RGB:    rgb,
			HSL:    RGBToHSL(rgb),
		}
	}
	return details, nil
}

// String returns a human-readable string representation of the palette.
func (p Palette) String() string {
	if len(p) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p))
	for i, c := range p {
		lock := ""
		if c.Locked {
			lock = " [locked]"
		}
		name := ""
		if c.Name != "" {
			name = " " + c.Name
		}
		result += fmt.Sprintf("  %2d: %s%s%s\n", i+1, c.Hex, name, lock)
	}
	return result
}

func (p Palette) checkIndex(index int) error {
	if index < 0 || index >= len(p) {
		return fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p))
	}
	return nil
}
