package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandkit/internal/colour"
)

func newContrastCmd(opts *globalOptions) *cobra.Command {
	var (
		swap    bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check WCAG contrast between two colours",
		Long: `Compute the WCAG 2.x contrast ratio between a text colour and a background
colour and report which conformance levels it meets:

  AA          normal text   4.5:1
  AA Large    large text    3.0:1
  AAA         normal text   7.0:1
  AAA Large   large text    4.5:1`,
		Example: `  brandkit contrast '#767676' '#ffffff'
  brandkit contrast fff 1a1a2e --swap`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colour.NormalizeHex(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := colour.NormalizeHex(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			result, err := colour.CheckContrast(fg, bg)
			if err != nil {
				return err
			}
			if swap {
				result = result.Swap()
			}
			opts.logger.Debug("checked contrast", "foreground", result.Foreground, "background", result.Background, "ratio", result.Ratio)

			out := cmd.OutOrStdout()
			if jsonOut {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal result: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "Foreground  %s\n", result.Foreground)
			fmt.Fprintf(out, "Background  %s\n", result.Background)
			fmt.Fprintf(out, "Ratio       %.2f:1\n\n", result.Ratio)

			table := NewTable([]string{"Level", "Text", "Minimum", "Result"})
			table.AddRow([]string{"AA", "normal", formatThreshold(colour.ContrastAA), badge(result.WCAG.AA)})
			table.AddRow([]string{"AA Large", "large", formatThreshold(colour.ContrastAALarge), badge(result.WCAG.AALarge)})
			table.AddRow([]string{"AAA", "normal", formatThreshold(colour.ContrastAAA), badge(result.WCAG.AAA)})
			table.AddRow([]string{"AAA Large", "large", formatThreshold(colour.ContrastAAALarge), badge(result.WCAG.AAALarge)})
			fmt.Fprint(out, table.Render())

			if opts.colourEnabled() {
				fgRGB, _ := colour.HexToRGB(result.Foreground)
				bgRGB, _ := colour.HexToRGB(result.Background)
				fmt.Fprintf(out, "\n%s\n", colour.TextSample(fgRGB, bgRGB, "Sample text"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&swap, "swap", false, "swap foreground and background")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")

	return cmd
}

func formatThreshold(t float64) string {
	return fmt.Sprintf("%.1f:1", t)
}

// badge renders PASS or FAIL, coloured when the terminal allows it.
func badge(pass bool) string {
	if pass {
		return color.New(color.FgGreen, color.Bold).Sprint("PASS")
	}
	return color.New(color.FgRed, color.Bold).Sprint("FAIL")
}
