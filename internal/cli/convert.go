package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandkit/internal/colour"
)

// conversion is one row of convert output.
type conversion struct {
	Input string     `json:"input"`
	Hex   string     `json:"hex"`
	RGB   colour.RGB `json:"rgb"`
	HSL   colour.HSL `json:"hsl"`
}

func newConvertCmd(opts *globalOptions) *cobra.Command {
	var (
		hslInputs []string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "convert [colour...]",
		Short: "Convert colours between hex, RGB and HSL",
		Long: `Convert hex colours to RGB and HSL, or HSL triples to hex.

Hex colours may omit the leading # and may use the 3-digit shorthand.
HSL triples are given as "h,s,l" with s and l as percentages.`,
		Example: `  brandkit convert '#336699'
  brandkit convert 2dd4bf f0a
  brandkit convert --hsl 210,50,40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(hslInputs) == 0 {
				return errors.New("at least one colour or --hsl value is required")
			}

			var rows []conversion
			for _, arg := range args {
				hex, err := colour.NormalizeHex(arg)
				if err != nil {
					return err
				}
				rows = append(rows, newConversion(arg, hex))
			}
			for _, in := range hslInputs {
				h, s, l, err := parseHSLTriple(in)
				if err != nil {
					return err
				}
				rows = append(rows, newConversion(in, colour.HSLToHex(h, s, l)))
			}
			opts.logger.Debug("converted colours", "count", len(rows))

			if jsonOut {
				data, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal conversions: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			table := NewTable([]string{"Input", "Hex", "RGB", "HSL"})
			for _, r := range rows {
				table.AddRow([]string{r.Input, r.Hex, r.RGB.String(), r.HSL.String()})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())

			if opts.colourEnabled() {
				for _, r := range rows {
					fmt.Fprintln(cmd.OutOrStdout(), colour.FormatColourWithLabel(r.RGB, r.Input, 6))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&hslInputs, "hsl", nil, "HSL triple to convert to hex, as h,s,l (repeatable)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")

	return cmd
}

// newConversion expects hex to be valid already.
func newConversion(input, hex string) conversion {
	rgb, _ := colour.HexToRGB(hex)
	return conversion{Input: input, Hex: rgb.Hex(), RGB: rgb, HSL: colour.RGBToHSL(rgb)}
}

// parseHSLTriple parses "h,s,l", allowing an optional "%" on s and l and
// an optional hsl(...) wrapper.
func parseHSLTriple(s string) (h, sat, light float64, err error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "hsl(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q (want h,s,l)", colour.ErrInvalidFormat, s)
	}

	values := make([]float64, 3)
	for i, p := range parts {
		p = strings.TrimSuffix(strings.TrimSpace(p), "%")
		v, perr := strconv.ParseFloat(p, 64)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q: %w", colour.ErrInvalidFormat, s, perr)
		}
		values[i] = v
	}

	if values[1] < 0 || values[1] > 100 || values[2] < 0 || values[2] > 100 {
		return 0, 0, 0, fmt.Errorf("%w: %q (saturation and lightness must be 0-100)", colour.ErrInvalidFormat, s)
	}
	return values[0], values[1], values[2], nil
}
