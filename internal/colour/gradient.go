package colour

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientType selects the CSS gradient function.
type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
	GradientConic  GradientType = "conic"
)

// Stop limits for a gradient.
const (
	MinStops = 2
	MaxStops = 5
)

// newStopColour is the colour given to stops added with AddStop.
const newStopColour = "#ffffff"

// Stop is a gradient colour stop. Position is a percentage.
type Stop struct {
	Colour   string `json:"colour" yaml:"colour"`
	Position int    `json:"position" yaml:"position"`
}

// Gradient describes a CSS gradient. Angle applies to linear and conic
// gradients and is ignored for radial ones.
type Gradient struct {
	Type  GradientType `json:"type" yaml:"type"`
	Angle int          `json:"angle" yaml:"angle"`
	Stops []Stop       `json:"stops" yaml:"stops"`
}

// GradientPreset is a named set of stops.
type GradientPreset struct {
	Name  string
	Stops []Stop
}

var gradientPresets = []GradientPreset{
	{Name: "Sunset", Stops: []Stop{{"#ff6b6b", 0}, {"#ffe66d", 100}}},
	{Name: "Ocean", Stops: []Stop{{"#667eea", 0}, {"#764ba2", 100}}},
	{Name: "Forest", Stops: []Stop{{"#11998e", 0}, {"#38ef7d", 100}}},
	{Name: "Aurora", Stops: []Stop{{"#00c6fb", 0}, {"#005bea", 50}, {"#9d50bb", 100}}},
	{Name: "Peach", Stops: []Stop{{"#ffb88c", 0}, {"#de6262", 100}}},
	{Name: "Mint", Stops: []Stop{{"#2dd4bf", 0}, {"#06b6d4", 100}}},
}

// GradientTypes returns the supported gradient types.
func GradientTypes() []GradientType {
	return []GradientType{GradientLinear, GradientRadial, GradientConic}
}

// ParseGradientType converts a string to a GradientType.
func ParseGradientType(s string) (GradientType, error) {
	t := GradientType(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(GradientTypes(), t) {
		return t, nil
	}
	return "", fmt.Errorf("invalid gradient type: %s (valid: linear, radial, conic)", s)
}

// DefaultGradient returns the starting gradient: a 90 degree linear blend
// between the first two default palette colours.
func DefaultGradient() Gradient {
	return Gradient{
		Type:  GradientLinear,
		Angle: 90,
		Stops: []Stop{{"#2dd4bf", 0}, {"#a78bfa", 100}},
	}
}

// Presets returns the built-in gradient presets.
func Presets() []GradientPreset {
	presets := make([]GradientPreset, len(gradientPresets))
	for i, p := range gradientPresets {
		presets[i] = GradientPreset{Name: p.Name, Stops: slices.Clone(p.Stops)}
	}
	return presets
}

// WithPreset returns a copy whose stops are replaced by the named preset.
// The name is matched case-insensitively.
func (g Gradient) WithPreset(name string) (Gradient, error) {
	for _, p := range gradientPresets {
		if strings.EqualFold(p.Name, name) {
			g.Stops = slices.Clone(p.Stops)
			return g, nil
		}
	}
	return Gradient{}, fmt.Errorf("unknown gradient preset: %s", name)
}

// sortedStops returns the stops ordered by position. Stops sharing a
// position keep their relative order.
func (g Gradient) sortedStops() []Stop {
	stops := slices.Clone(g.Stops)
	slices.SortStableFunc(stops, func(a, b Stop) int {
		return a.Position - b.Position
	})
	return stops
}

// CSS renders the gradient as a CSS image value.
func (g Gradient) CSS() string {
	stops := g.sortedStops()
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = fmt.Sprintf("%s %d%%", s.Colour, s.Position)
	}
	list := strings.Join(parts, ", ")

	switch g.Type {
	case GradientLinear:
		return fmt.Sprintf("linear-gradient(%ddeg, %s)", g.Angle, list)
	case GradientRadial:
		return fmt.Sprintf("radial-gradient(circle, %s)", list)
	default:
		return fmt.Sprintf("conic-gradient(from %ddeg, %s)", g.Angle, list)
	}
}

// Declaration renders the gradient as a CSS background declaration.
func (g Gradient) Declaration() string {
	return fmt.Sprintf("background: %s;", g.CSS())
}

// AddStop returns a copy with a white stop added midway between the
// positions of the first and last stops.
func (g Gradient) AddStop() (Gradient, error) {
	if len(g.Stops) >= MaxStops {
		return Gradient{}, fmt.Errorf("gradient already has the maximum of %d stops", MaxStops)
	}
	if len(g.Stops) == 0 {
		return Gradient{}, fmt.Errorf("gradient has no stops")
	}

	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	position := int(roundHalfUp(float64(last.Position+first.Position) / 2))

	stops := make([]Stop, len(g.Stops), len(g.Stops)+1)
	copy(stops, g.Stops)
	g.Stops = append(stops, Stop{Colour: newStopColour, Position: position})
	return g, nil
}

// RemoveStop returns a copy without the stop at index.
func (g Gradient) RemoveStop(index int) (Gradient, error) {
	if len(g.Stops) <= MinStops {
		return Gradient{}, fmt.Errorf("gradient needs at least %d stops", MinStops)
	}
	if index < 0 || index >= len(g.Stops) {
		return Gradient{}, fmt.Errorf("stop index out of bounds: %d (gradient has %d stops)", index, len(g.Stops))
	}
	g.Stops = slices.Delete(slices.Clone(g.Stops), index, index+1)
	return g, nil
}

// UpdateStop returns a copy with the stop at index replaced.
func (g Gradient) UpdateStop(index int, stop Stop) (Gradient, error) {
	if index < 0 || index >= len(g.Stops) {
		return Gradient{}, fmt.Errorf("stop index out of bounds: %d (gradient has %d stops)", index, len(g.Stops))
	}
	hex, err := NormalizeHex(stop.Colour)
	if err != nil {
		return Gradient{}, err
	}
	stop.Colour = hex
	g.Stops = slices.Clone(g.Stops)
	g.Stops[index] = stop
	return g, nil
}

// Randomize returns a copy with two random stops at 0% and 100%.
func (g Gradient) Randomize(rng Source) Gradient {
	g.Stops = []Stop{
		{Colour: randomHex(rng), Position: 0},
		{Colour: randomHex(rng), Position: 100},
	}
	return g
}

func randomHex(rng Source) string {
	return fmt.Sprintf("#%06x", int(rng.Float64()*0xffffff))
}

// Validate checks that the gradient can be rendered.
func (g Gradient) Validate() error {
	if !slices.Contains(GradientTypes(), g.Type) {
		return fmt.Errorf("invalid gradient type: %q", g.Type)
	}
	if g.Angle < 0 || g.Angle > 360 {
		return fmt.Errorf("angle must be between 0 and 360, got %d", g.Angle)
	}
	if len(g.Stops) < MinStops || len(g.Stops) > MaxStops {
		return fmt.Errorf("gradient must have %d-%d stops, got %d", MinStops, MaxStops, len(g.Stops))
	}
	for i, s := range g.Stops {
		if !IsValidHex(s.Colour) {
			return fmt.Errorf("stop %d: %w: %q", i+1, ErrInvalidFormat, s.Colour)
		}
		if s.Position < 0 || s.Position > 100 {
			return fmt.Errorf("stop %d: position must be between 0 and 100, got %d", i+1, s.Position)
		}
	}
	return nil
}

// Sample returns n colours evenly spaced from 0% to 100% along the
// gradient, interpolated in CIE L*a*b*. Positions before the first stop or
// after the last take that stop's colour.
func (g Gradient) Sample(n int) ([]RGB, error) {
	if n < 1 {
		return nil, fmt.Errorf("sample count must be positive, got %d", n)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	stops := g.sortedStops()
	colours := make([]colorful.Color, len(stops))
	for i, s := range stops {
		rgb, _ := HexToRGB(s.Colour)
		colours[i] = toColorful(rgb)
	}

	samples := make([]RGB, n)
	for i := range samples {
		pos := 0.0
		if n > 1 {
			pos = float64(i) * 100 / float64(n-1)
		}
		samples[i] = fromColorful(blendAt(stops, colours, pos))
	}
	return samples, nil
}

func blendAt(stops []Stop, colours []colorful.Color, pos float64) colorful.Color {
	if pos <= float64(stops[0].Position) {
		return colours[0]
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := float64(stops[i-1].Position), float64(stops[i].Position)
		if pos > hi {
			continue
		}
		if hi == lo {
			return colours[i]
		}
		return colours[i-1].BlendLab(colours[i], (pos-lo)/(hi-lo)).Clamped()
	}
	return colours[len(colours)-1]
}

func toColorful(rgb RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}
