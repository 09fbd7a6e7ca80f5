// Command ggchart renders line charts described in YAML files to PNG.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/chartfile"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type renderFlags struct {
	output  string
	width   int
	height  int
	title   string
	locale  string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ggchart",
		Short:        "Render line charts to PNG images",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render [chart.yaml]",
		Short: "Render a chart file",
		Long: `Render reads a YAML chart description, with inline series or a CSV/XLSX
data table, and writes the chart as a PNG image.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "chart.png", "Output PNG path")
	cmd.Flags().IntVar(&f.width, "width", 0, "Override image width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 0, "Override image height in pixels")
	cmd.Flags().StringVar(&f.title, "title", "", "Override chart title")
	cmd.Flags().StringVar(&f.locale, "locale", "", "BCP 47 language tag for value labels (e.g. de, en-US)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log render stages to stderr")
	return cmd
}

func runRender(cmd *cobra.Command, path string, f renderFlags) error {
	if f.verbose {
		ggchart.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c, err := chartfile.Load(path)
	if err != nil {
		return err
	}
	if f.width > 0 || f.height > 0 {
		w, h := c.Width, c.Height
		if f.width > 0 {
			w = f.width
		}
		if f.height > 0 {
			h = f.height
		}
		c = c.WithDimensions(w, h)
	}
	if f.title != "" {
		c = c.WithTitle(f.title)
	}

	var opts []ggchart.RenderOption
	if f.locale != "" {
		tag, err := language.Parse(f.locale)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", f.locale, err)
		}
		opts = append(opts, ggchart.WithLocale(tag))
	}

	if err := c.Render(f.output, opts...); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Chart saved to %s (%dx%d)\n", f.output, c.Width, c.Height)
	return nil
}
