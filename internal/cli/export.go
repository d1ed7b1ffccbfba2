package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandkit/internal/export"
	"github.com/jmylchreest/brandkit/internal/export/css"
	"github.com/jmylchreest/brandkit/internal/export/structured"
	"github.com/jmylchreest/brandkit/internal/export/tailwind"
	"github.com/jmylchreest/brandkit/internal/security"
)

// newRegistry returns a registry with every built-in exporter.
func newRegistry() *export.Registry {
	return export.NewRegistry(
		css.New(),
		structured.NewJSON(),
		structured.NewYAML(),
		tailwind.New(),
	)
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	var (
		all       bool
		stdout    bool
		outputDir string
		list      bool
	)

	cmd := &cobra.Command{
		Use:   "export [format...]",
		Short: "Export the configured brand palette",
		Long: `Write the palette and gradient from brandkit.yaml using one or more
exporters. Without arguments the export.format from the config is used.

Files are written to --output-dir (default export.output_dir, or the
current directory) under each exporter's default file name.`,
		Example: `  brandkit export css tailwind
  brandkit export --all --output-dir dist/brand
  brandkit export json --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := newRegistry()

			if list {
				table := NewTable([]string{"Format", "File", "Description"})
				table.SetColumnMaxWidth(2, 60)
				for _, name := range registry.List() {
					e, _ := registry.Get(name)
					table.AddRow([]string{name, e.FileName(), e.Description()})
				}
				fmt.Fprint(cmd.OutOrStdout(), table.Render())
				return nil
			}

			cfg := opts.cfg
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			formats := args
			switch {
			case all:
				formats = registry.List()
			case len(formats) == 0:
				formats = []string{cfg.Export.Format}
			}

			doc, err := documentFromConfig(opts)
			if err != nil {
				return err
			}

			if outputDir == "" {
				outputDir = cfg.Export.OutputDir
			}

			for _, format := range formats {
				format = strings.ToLower(strings.TrimSpace(format))
				data, err := registry.Export(format, doc)
				if err != nil {
					return err
				}
				opts.logger.Debug("exported palette", "format", format, "bytes", len(data))

				if stdout {
					if len(data) > 0 && data[len(data)-1] != '\n' {
						data = append(data, '\n')
					}
					if _, err := cmd.OutOrStdout().Write(data); err != nil {
						return err
					}
					continue
				}

				e, _ := registry.Get(format)
				if err := security.ValidateOutputName(e.FileName(), outputDir); err != nil {
					return err
				}
				if err := writeOutput(cmd, opts, filepath.Join(outputDir, e.FileName()), data); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "export every format")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print to stdout instead of writing files")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "directory for exported files")
	cmd.Flags().BoolVar(&list, "list", false, "list available formats and exit")

	return cmd
}

// documentFromConfig builds an export document from the loaded config
// without regenerating any colours.
func documentFromConfig(opts *globalOptions) (export.Document, error) {
	cfg := opts.cfg

	base, err := cfg.Base()
	if err != nil {
		return export.Document{}, err
	}
	scheme, err := cfg.Scheme()
	if err != nil {
		return export.Document{}, err
	}
	palette, err := cfg.BuildPalette()
	if err != nil {
		return export.Document{}, err
	}

	doc := export.Document{
		Name:    cfg.Brand.Name,
		Base:    base,
		Scheme:  scheme,
		Seed:    cfg.Seed.Value,
		Colours: palette,
	}
	if cfg.Gradient != nil {
		g, err := cfg.Gradient.Build()
		if err != nil {
			return export.Document{}, err
		}
		doc.Gradient = &g
	}
	return doc, nil
}
