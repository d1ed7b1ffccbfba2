// Package cli provides the command-line interface for brandkit.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandkit/internal/colour"
	"github.com/jmylchreest/brandkit/internal/config"
	"github.com/jmylchreest/brandkit/internal/version"
)

// globalOptions holds the persistent flags and the state derived from them
// before any subcommand runs.
type globalOptions struct {
	verbose    bool
	quiet      bool
	noColour   bool
	configPath string

	logger hclog.Logger
	cfg    *config.Config
}

// NewRootCmd builds the brandkit command tree. Each call returns fresh flag
// state, so tests can execute commands repeatedly.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "brandkit",
		Short: "A brand colour palette toolkit",
		Long: `brandkit builds brand colour palettes from colour theory.

Convert between hex, RGB and HSL, generate harmonious palettes from a base
colour while keeping locked colours, check WCAG contrast between text and
background colours, design CSS gradients, and export the result as CSS
variables, JSON, YAML or a Tailwind config.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	pf.BoolVar(&opts.noColour, "no-colour", false, "disable coloured terminal output")
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default ./"+config.DefaultPath+")")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newHarmonyCmd(opts))
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newContrastCmd(opts))
	rootCmd.AddCommand(newGradientCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))

	return rootCmd
}

// setup configures logging and terminal colour, then loads configuration.
func (o *globalOptions) setup(cmd *cobra.Command) error {
	o.logger = newLogger(o.verbose, o.quiet, cmd.ErrOrStderr())

	enabled := !o.noColour && os.Getenv("BRANDKIT_NO_COLOR") == "" && os.Getenv("NO_COLOR") == "" &&
		isTerminal(cmd.OutOrStdout())
	colour.DisableColourOutput = !enabled
	color.NoColor = !enabled

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logger.Debug("loaded configuration", "path", o.configPath, "config", cfg.String())

	return nil
}

// colourEnabled reports whether ANSI output was enabled by setup.
func (o *globalOptions) colourEnabled() bool {
	return !colour.DisableColourOutput
}

// infof writes a status message to stderr unless --quiet is set.
func (o *globalOptions) infof(cmd *cobra.Command, format string, args ...any) {
	if o.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
