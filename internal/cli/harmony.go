package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandkit/internal/colour"
)

func newHarmonyCmd(opts *globalOptions) *cobra.Command {
	var (
		schemeName string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Show the harmonious hues for a base colour",
		Long: `Rotate the hue of a base colour by the offsets of a harmony scheme.

Each harmony colour keeps the saturation and lightness of the base.
Schemes: complementary, analogous, triadic, split-complementary,
tetradic, monochromatic.`,
		Example: `  brandkit harmony '#2dd4bf' --scheme triadic
  brandkit harmony f0a --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := colour.NormalizeHex(args[0])
			if err != nil {
				return err
			}
			base := colour.HexToHSL(hex)

			schemes := colour.Schemes()
			if !all {
				if schemeName == "" {
					schemeName = opts.cfg.Palette.Scheme
				}
				scheme, err := colour.ParseScheme(schemeName)
				if err != nil {
					return err
				}
				schemes = []colour.Scheme{scheme}
			}

			out := cmd.OutOrStdout()
			for i, scheme := range schemes {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s harmony of %s (%s)\n", scheme.Label(), hex, base)

				table := NewTable([]string{"#", "Offset", "Hue", "Distance", "Hex"})
				hues := colour.GenerateHarmony(base.H, scheme)
				offsets := scheme.Offsets()
				swatches := make([]colour.RGB, len(hues))
				for j, hue := range hues {
					rgb := colour.HSLToRGB(float64(hue), float64(base.S), float64(base.L))
					swatches[j] = rgb
					table.AddRow([]string{
						strconv.Itoa(j + 1),
						fmt.Sprintf("%+d", offsets[j]),
						strconv.Itoa(hue),
						fmt.Sprintf("%d°", colour.HueDistance(hue, base.H)),
						rgb.Hex(),
					})
				}
				fmt.Fprint(out, table.Render())

				if opts.colourEnabled() {
					for j, rgb := range swatches {
						fmt.Fprintln(out, colour.FormatColourWithLabel(rgb, fmt.Sprintf("%d°", hues[j]), 6))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemeName, "scheme", "s", "", "harmony scheme (default palette.scheme from config)")
	cmd.Flags().BoolVar(&all, "all", false, "show every scheme")

	return cmd
}
