// Package config loads brandkit settings from brandkit.yaml and BRANDKIT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/brandkit/internal/colour"
	"github.com/jmylchreest/brandkit/internal/seed"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "brandkit.yaml"

// Slot limits for generated palettes.
const (
	MinSlots     = 1
	MaxSlots     = 10
	DefaultSlots = 5
)

// Config represents the top-level brandkit.yaml configuration.
type Config struct {
	Brand    BrandConfig     `yaml:"brand"`
	Palette  PaletteConfig   `yaml:"palette"`
	Seed     SeedConfig      `yaml:"seed"`
	Export   ExportConfig    `yaml:"export"`
	Gradient *GradientConfig `yaml:"gradient,omitempty"`
}

// BrandConfig identifies the brand being described.
type BrandConfig struct {
	Name string `yaml:"name"`
}

// PaletteConfig controls palette generation.
type PaletteConfig struct {
	Base    string         `yaml:"base"`
	Scheme  string         `yaml:"scheme"`
	Slots   int            `yaml:"slots"`
	Colours []ColourConfig `yaml:"colours,omitempty"` // Existing colours; locked ones survive regeneration
}

// ColourConfig is a configured palette slot.
type ColourConfig struct {
	Hex    string `yaml:"hex"`
	Name   string `yaml:"name,omitempty"`
	Locked bool   `yaml:"locked,omitempty"`
}

// SeedConfig controls how the random source is seeded.
type SeedConfig struct {
	Mode  string `yaml:"mode"`
	Value *int64 `yaml:"value,omitempty"` // Only used when mode is "manual"
}

// ExportConfig selects the default exporter and destination.
type ExportConfig struct {
	Format    string `yaml:"format"`
	OutputDir string `yaml:"output_dir,omitempty"`
}

// GradientConfig describes the brand gradient.
type GradientConfig struct {
	Type   string       `yaml:"type"`
	Angle  *int         `yaml:"angle,omitempty"` // nil keeps the default angle
	Preset string       `yaml:"preset,omitempty"`
	Stops  []StopConfig `yaml:"stops,omitempty"`
}

// StopConfig is a configured gradient stop.
type StopConfig struct {
	Colour   string `yaml:"colour"`
	Position int    `yaml:"position"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Palette: PaletteConfig{
			Base:   "#2dd4bf",
			Scheme: string(colour.SchemeAnalogous),
			Slots:  DefaultSlots,
		},
		Seed: SeedConfig{
			Mode: string(seed.ModeRandom),
		},
		Export: ExportConfig{
			Format: "css",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and
// then the environment. An empty path means DefaultPath, which may be
// absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified config path, intended to be read
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file; defaults and environment only.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays BRANDKIT_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("BRANDKIT_NAME"); v != "" {
		c.Brand.Name = v
	}
	if v := os.Getenv("BRANDKIT_BASE"); v != "" {
		c.Palette.Base = v
	}
	if v := os.Getenv("BRANDKIT_SCHEME"); v != "" {
		c.Palette.Scheme = v
	}
	if v := os.Getenv("BRANDKIT_SLOTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BRANDKIT_SLOTS: %w", err)
		}
		c.Palette.Slots = n
	}
	if v := os.Getenv("BRANDKIT_SEED_MODE"); v != "" {
		c.Seed.Mode = v
	}
	if v := os.Getenv("BRANDKIT_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("BRANDKIT_SEED: %w", err)
		}
		c.Seed.Mode = string(seed.ModeManual)
		c.Seed.Value = &n
	}
	if v := os.Getenv("BRANDKIT_FORMAT"); v != "" {
		c.Export.Format = v
	}
	if v := os.Getenv("BRANDKIT_OUTPUT_DIR"); v != "" {
		c.Export.OutputDir = v
	}
	return nil
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := colour.NormalizeHex(c.Palette.Base); err != nil {
		errs = append(errs, fmt.Errorf("palette.base: %w", err))
	}
	if _, err := colour.ParseScheme(c.Palette.Scheme); err != nil {
		errs = append(errs, fmt.Errorf("palette.scheme: %w", err))
	}
	if c.Palette.Slots < MinSlots || c.Palette.Slots > MaxSlots {
		errs = append(errs, fmt.Errorf("palette.slots must be between %d and %d, got %d", MinSlots, MaxSlots, c.Palette.Slots))
	}
	if len(c.Palette.Colours) > c.Palette.Slots {
		errs = append(errs, fmt.Errorf("palette.colours has %d entries but only %d slots", len(c.Palette.Colours), c.Palette.Slots))
	}
	for i, col := range c.Palette.Colours {
		if _, err := colour.NormalizeHex(col.Hex); err != nil {
			errs = append(errs, fmt.Errorf("palette.colours[%d]: %w", i, err))
		}
	}

	mode, err := seed.ParseMode(c.Seed.Mode)
	if err != nil {
		errs = append(errs, fmt.Errorf("seed.mode: %w", err))
	} else if mode == seed.ModeManual && c.Seed.Value == nil {
		errs = append(errs, errors.New("seed.value is required when seed.mode is manual"))
	}

	if c.Export.Format == "" {
		errs = append(errs, errors.New("export.format is required"))
	}

	if c.Gradient != nil {
		if _, err := c.Gradient.Build(); err != nil {
			errs = append(errs, fmt.Errorf("gradient: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Scheme returns the configured harmony scheme.
func (c *Config) Scheme() (colour.Scheme, error) {
	return colour.ParseScheme(c.Palette.Scheme)
}

// Base returns the configured base colour in canonical form.
func (c *Config) Base() (string, error) {
	return colour.NormalizeHex(c.Palette.Base)
}

// SeedConfig converts the seed settings for the seed package.
func (c *Config) SeedConfig() (seed.Config, error) {
	mode, err := seed.ParseMode(c.Seed.Mode)
	if err != nil {
		return seed.Config{}, err
	}
	return seed.Config{Mode: mode, Value: c.Seed.Value}, nil
}

// BuildPalette returns the configured colours padded with default colours
// up to the slot count.
func (c *Config) BuildPalette() (colour.Palette, error) {
	defaults := colour.DefaultPalette()
	p := make(colour.Palette, 0, max(c.Palette.Slots, len(c.Palette.Colours)))
	for i, col := range c.Palette.Colours {
		hex, err := colour.NormalizeHex(col.Hex)
		if err != nil {
			return nil, fmt.Errorf("palette.colours[%d]: %w", i, err)
		}
		p = append(p, colour.PaletteColor{Hex: hex, Name: col.Name, Locked: col.Locked})
	}
	for len(p) < c.Palette.Slots {
		p = append(p, defaults[len(p)%len(defaults)])
	}
	return p, nil
}

// Build converts the gradient settings into a colour.Gradient. A preset
// supplies the stops unless explicit stops are configured.
func (g *GradientConfig) Build() (colour.Gradient, error) {
	out := colour.DefaultGradient()

	if g.Type != "" {
		t, err := colour.ParseGradientType(g.Type)
		if err != nil {
			return colour.Gradient{}, err
		}
		out.Type = t
	}
	if g.Angle != nil {
		out.Angle = *g.Angle
	}

	if g.Preset != "" {
		withPreset, err := out.WithPreset(g.Preset)
		if err != nil {
			return colour.Gradient{}, err
		}
		out = withPreset
	}

	if len(g.Stops) > 0 {
		out.Stops = make([]colour.Stop, len(g.Stops))
		for i, s := range g.Stops {
			hex, err := colour.NormalizeHex(s.Colour)
			if err != nil {
				return colour.Gradient{}, fmt.Errorf("stop %d: %w", i+1, err)
			}
			out.Stops[i] = colour.Stop{Colour: hex, Position: s.Position}
		}
	}

	if err := out.Validate(); err != nil {
		return colour.Gradient{}, err
	}
	return out, nil
}

// String summarises the configuration for verbose logging.
func (c *Config) String() string {
	parts := []string{
		"base=" + c.Palette.Base,
		"scheme=" + c.Palette.Scheme,
		"slots=" + strconv.Itoa(c.Palette.Slots),
		"seed=" + c.Seed.Mode,
		"format=" + c.Export.Format,
	}
	return strings.Join(parts, " ")
}
