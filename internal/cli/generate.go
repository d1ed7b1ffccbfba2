package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandkit/internal/colour"
	"github.com/jmylchreest/brandkit/internal/config"
	"github.com/jmylchreest/brandkit/internal/export"
	"github.com/jmylchreest/brandkit/internal/image"
	"github.com/jmylchreest/brandkit/internal/seed"
)

// formatHex is the plain listing format; every other format is an exporter.
const formatHex = "hex"

// swatchWidth fits a hex code with a space either side.
const swatchWidth = 9

// generateFlags holds the flags of the generate command.
type generateFlags struct {
	name      string
	base      string
	scheme    string
	slots     int
	lock      []int
	keep      []string
	seedMode  string
	seedValue int64
	fromImage string
	format    string
	output    string
	preview   bool
}

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a harmonious brand palette",
		Long: `Generate a palette from a base colour and a harmony scheme.

Unlocked slots are redrawn with hues from the scheme and a random
saturation and lightness; locked slots are kept exactly. Pass the previous
palette with --keep and choose which slots to hold with --lock.

The seed decides every random draw. Use --seed (or --seed-mode content) to
regenerate the same palette again.`,
		Example: `  brandkit generate --base '#2dd4bf' --scheme triadic
  brandkit generate --keep '#60d9c4,#ffb5c5,#a5b4fc' --lock 1 --seed 42
  brandkit generate --from-image logo.png --format css --output brand.css`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "brand name used by exporters")
	flags.StringVarP(&f.base, "base", "b", "", "base colour (hex)")
	flags.StringVarP(&f.scheme, "scheme", "s", "", "harmony scheme")
	flags.IntVarP(&f.slots, "slots", "n", 0, fmt.Sprintf("number of colours (%d-%d)", config.MinSlots, config.MaxSlots))
	flags.IntSliceVarP(&f.lock, "lock", "l", nil, "1-based slots to keep unchanged (e.g. 1,3)")
	flags.StringSliceVarP(&f.keep, "keep", "k", nil, "existing palette colours, in slot order")
	flags.StringVar(&f.seedMode, "seed-mode", "", "seed mode: content, manual, random")
	flags.Int64Var(&f.seedValue, "seed", 0, "seed value (implies --seed-mode manual)")
	flags.StringVarP(&f.fromImage, "from-image", "i", "", "derive the base colour from an image (png, jpg, gif, webp)")
	flags.StringVarP(&f.format, "format", "f", formatHex, "output format: hex or an exporter (css, json, yaml, tailwind)")
	flags.StringVarP(&f.output, "output", "o", "", "write to this file instead of stdout")
	flags.BoolVarP(&f.preview, "preview", "p", false, "show colour swatches")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *globalOptions, f *generateFlags) error {
	cfg := *opts.cfg
	if err := applyGenerateFlags(cmd, &cfg, f); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	base, err := cfg.Base()
	if err != nil {
		return err
	}
	scheme, err := cfg.Scheme()
	if err != nil {
		return err
	}

	palette, err := cfg.BuildPalette()
	if err != nil {
		return err
	}
	for _, slot := range f.lock {
		palette, err = palette.WithLocked(slot-1, true)
		if err != nil {
			return fmt.Errorf("--lock %d: %w", slot, err)
		}
	}

	seedCfg, err := cfg.SeedConfig()
	if err != nil {
		return err
	}
	seedValue, err := seed.Calculate(seedInput(base, scheme, palette), seedCfg)
	if err != nil {
		return err
	}
	opts.logger.Debug("generating palette", "base", base, "scheme", scheme, "slots", palette.Len(), "seed_mode", seedCfg.Mode, "seed", seedValue)

	generated, err := palette.Regenerate(base, scheme, seed.NewSource(seedValue))
	if err != nil {
		return err
	}

	if seedCfg.Mode == seed.ModeRandom {
		opts.infof(cmd, "seed: %d (reuse with --seed %d)", seedValue, seedValue)
	}

	var data []byte
	if f.format == formatHex {
		data = []byte(renderPalette(generated, f.preview && opts.colourEnabled()))
	} else {
		doc := export.Document{
			Name:    cfg.Brand.Name,
			Base:    base,
			Scheme:  scheme,
			Seed:    &seedValue,
			Colours: generated,
		}
		if cfg.Gradient != nil {
			g, err := cfg.Gradient.Build()
			if err != nil {
				return err
			}
			doc.Gradient = &g
		}
		data, err = newRegistry().Export(f.format, doc)
		if err != nil {
			return err
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		if f.preview && opts.colourEnabled() {
			fmt.Fprint(cmd.ErrOrStderr(), renderPalette(generated, true))
		}
	}

	return writeOutput(cmd, opts, f.output, data)
}

// applyGenerateFlags overlays explicitly set flags onto cfg.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config, f *generateFlags) error {
	flags := cmd.Flags()

	if f.name != "" {
		cfg.Brand.Name = f.name
	}
	if f.fromImage != "" {
		hex, err := image.BaseColourFromFile(image.NewFileLoader(), f.fromImage)
		if err != nil {
			return err
		}
		cfg.Palette.Base = hex
	}
	if f.base != "" {
		cfg.Palette.Base = f.base
	}
	if f.scheme != "" {
		cfg.Palette.Scheme = f.scheme
	}
	if flags.Changed("keep") {
		cfg.Palette.Colours = make([]config.ColourConfig, len(f.keep))
		for i, hex := range f.keep {
			cfg.Palette.Colours[i] = config.ColourConfig{Hex: hex}
		}
		if !flags.Changed("slots") {
			cfg.Palette.Slots = max(cfg.Palette.Slots, len(f.keep))
		}
	}
	if flags.Changed("slots") {
		cfg.Palette.Slots = f.slots
	}
	if f.seedMode != "" {
		cfg.Seed.Mode = f.seedMode
	}
	if flags.Changed("seed") {
		v := f.seedValue
		cfg.Seed.Value = &v
		if f.seedMode == "" {
			cfg.Seed.Mode = string(seed.ModeManual)
		}
	}
	return nil
}

// seedInput identifies a generation request for content-based seeding.
func seedInput(base string, scheme colour.Scheme, p colour.Palette) string {
	parts := []string{base, string(scheme), strconv.Itoa(p.Len())}
	for _, c := range p {
		if c.Locked {
			parts = append(parts, c.Hex)
		}
	}
	return strings.Join(parts, "|")
}

// renderPalette lists one colour per line, with swatches when requested.
func renderPalette(p colour.Palette, swatches bool) string {
	var b strings.Builder
	for i, c := range p.All() {
		line := c.Hex
		if swatches {
			rgb, err := colour.HexToRGB(c.Hex)
			if err == nil {
				line = colour.ColourPreviewWithText(rgb, c.Hex, swatchWidth)
			}
		}
		if c.Name != "" {
			line += "  " + c.Name
		}
		if c.Locked {
			line += "  [locked]"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	return b.String()
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, opts *globalOptions, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 -- output directories are user-facing
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- exported palettes are not sensitive
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	opts.infof(cmd, "wrote %s", path)
	return nil
}
