package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/brandkit/internal/colour"
	"github.com/jmylchreest/brandkit/internal/seed"
)

// stopsValue collects repeated --stop flags of the form "#hex@position".
type stopsValue struct {
	stops []colour.Stop
}

var _ pflag.Value = (*stopsValue)(nil)

func (v *stopsValue) String() string {
	parts := make([]string, len(v.stops))
	for i, s := range v.stops {
		parts[i] = fmt.Sprintf("%s@%d", s.Colour, s.Position)
	}
	return strings.Join(parts, ",")
}

func (v *stopsValue) Set(s string) error {
	stop, err := parseStop(s)
	if err != nil {
		return err
	}
	v.stops = append(v.stops, stop)
	return nil
}

func (v *stopsValue) Type() string {
	return "stop"
}

// parseStop parses "#hex@position"; the position may carry a "%" suffix.
func parseStop(s string) (colour.Stop, error) {
	hexPart, posPart, ok := strings.Cut(s, "@")
	if !ok {
		return colour.Stop{}, fmt.Errorf("invalid stop %q (want #hex@position)", s)
	}
	hex, err := colour.NormalizeHex(hexPart)
	if err != nil {
		return colour.Stop{}, err
	}
	pos, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(posPart), "%"))
	if err != nil {
		return colour.Stop{}, fmt.Errorf("invalid stop position in %q: %w", s, err)
	}
	return colour.Stop{Colour: hex, Position: pos}, nil
}

// gradientFlags holds the flags of the gradient command.
type gradientFlags struct {
	gradientType string
	angle        int
	stops        stopsValue
	preset       string
	random       bool
	seedValue    int64
	addStops     int
	removeStops  []int
	preview      bool
	samples      int
	jsonOut      bool
	listPresets  bool
}

func newGradientCmd(opts *globalOptions) *cobra.Command {
	f := &gradientFlags{}

	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Design a CSS gradient",
		Long: `Build a linear, radial or conic CSS gradient from 2 to 5 colour stops.

Start from the configured gradient (or the default teal to violet blend),
a preset, explicit --stop values, or --random colours, and print the CSS
background declaration.`,
		Example: `  brandkit gradient --preset sunset --angle 135
  brandkit gradient --type radial --stop '#2dd4bf@0' --stop '#a78bfa@100'
  brandkit gradient --random --seed 7 --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGradient(cmd, opts, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.gradientType, "type", "t", "", "gradient type: linear, radial, conic")
	flags.IntVarP(&f.angle, "angle", "a", 0, "angle in degrees (0-360)")
	flags.Var(&f.stops, "stop", "colour stop as #hex@position (repeatable)")
	flags.StringVar(&f.preset, "preset", "", "start from a preset (sunset, ocean, forest, aurora, peach, mint)")
	flags.BoolVar(&f.random, "random", false, "use two random colours")
	flags.Int64Var(&f.seedValue, "seed", 0, "seed for --random")
	flags.IntVar(&f.addStops, "add-stop", 0, "append this many white midpoint stops")
	flags.IntSliceVar(&f.removeStops, "remove-stop", nil, "1-based stop to remove (applied in order)")
	flags.BoolVarP(&f.preview, "preview", "p", false, "show a colour strip of the gradient")
	flags.IntVar(&f.samples, "samples", 32, "number of preview samples")
	flags.BoolVar(&f.jsonOut, "json", false, "output as JSON")
	flags.BoolVar(&f.listPresets, "list-presets", false, "list the built-in presets and exit")

	return cmd
}

func runGradient(cmd *cobra.Command, opts *globalOptions, f *gradientFlags) error {
	out := cmd.OutOrStdout()

	if f.listPresets {
		table := NewTable([]string{"Preset", "Stops", "CSS"})
		for _, p := range colour.Presets() {
			g := colour.Gradient{Type: colour.GradientLinear, Angle: 90, Stops: p.Stops}
			table.AddRow([]string{strings.ToLower(p.Name), strconv.Itoa(len(p.Stops)), g.CSS()})
		}
		fmt.Fprint(out, table.Render())
		return nil
	}

	g := colour.DefaultGradient()
	if opts.cfg.Gradient != nil {
		configured, err := opts.cfg.Gradient.Build()
		if err != nil {
			return fmt.Errorf("gradient config: %w", err)
		}
		g = configured
	}

	var err error
	if f.preset != "" {
		if g, err = g.WithPreset(f.preset); err != nil {
			return err
		}
	}
	if len(f.stops.stops) > 0 {
		g.Stops = f.stops.stops
	}
	if f.random {
		seedCfg := seed.Config{Mode: seed.ModeRandom}
		if cmd.Flags().Changed("seed") {
			seedCfg = seed.Config{Mode: seed.ModeManual, Value: &f.seedValue}
		}
		seedValue, err := seed.Calculate("", seedCfg)
		if err != nil {
			return err
		}
		opts.logger.Debug("randomising gradient", "seed", seedValue)
		g = g.Randomize(seed.NewSource(seedValue))
	}
	if f.gradientType != "" {
		if g.Type, err = colour.ParseGradientType(f.gradientType); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("angle") {
		g.Angle = f.angle
	}
	for _, index := range f.removeStops {
		if g, err = g.RemoveStop(index - 1); err != nil {
			return fmt.Errorf("--remove-stop %d: %w", index, err)
		}
	}
	for range f.addStops {
		if g, err = g.AddStop(); err != nil {
			return err
		}
	}

	if err := g.Validate(); err != nil {
		return err
	}
	opts.logger.Debug("built gradient", "type", g.Type, "angle", g.Angle, "stops", len(g.Stops))

	if f.jsonOut {
		data, err := json.MarshalIndent(struct {
			colour.Gradient
			CSS string `json:"css"`
		}{g, g.CSS()}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal gradient: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprintln(out, g.Declaration())
	}

	if f.preview && opts.colourEnabled() {
		samples, err := g.Sample(f.samples)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, colour.GradientPreview(samples))
	}
	return nil
}
