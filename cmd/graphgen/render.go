// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/graphgen/internal/extract"
	"github.com/pdiddy/graphgen/internal/render"
	"github.com/pdiddy/graphgen/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render [text...]",
	Short: "Render extracted values as a pie, bar, or progress chart",
	Long: `Render extracts a series from the input text and draws it as a chart
image. The file defaults to <kind>-chart.<format> in the output directory.`,
	Example: `  graphgen render "50% residence, 10% commercial, 10% institutional, 20% industrial"
  graphgen render --kind bar --format svg --out charts/land-use.svg --file land-use.txt`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	text, err := inputFromCommand(cmd, args)
	if err != nil {
		return err
	}

	opts, outDir, err := renderOptionsFromFlags(cmd, cfg.Render)
	if err != nil {
		return err
	}

	series := extract.Extract(text)
	if series.IsEmpty() {
		return fmt.Errorf("no data points found; try something like \"50%% residence, 10%% commercial\"")
	}

	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		path = filepath.Join(outDir, render.Filename(opts.Kind, opts.Format))
	}

	if err := render.New(logger).RenderFile(path, series, opts); err != nil {
		if errors.Is(err, render.ErrZeroTotal) {
			return fmt.Errorf("cannot draw a %s chart: %w", opts.Kind, err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rendered: %s (%d data points)\n", path, len(series))
	return nil
}

// renderOptionsFromFlags applies explicitly set flags on top of rc.
func renderOptionsFromFlags(cmd *cobra.Command, rc types.RenderConfig) (render.Options, string, error) {
	flags := cmd.Flags()

	if flags.Changed("kind") {
		v, _ := flags.GetString("kind")
		kind, err := types.ParseChartKind(v)
		if err != nil {
			return render.Options{}, "", err
		}
		rc.Kind = kind
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		format, err := types.ParseImageFormat(v)
		if err != nil {
			return render.Options{}, "", err
		}
		rc.Format = format
	}
	if flags.Changed("width") {
		rc.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		rc.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("scale") {
		rc.Scale, _ = flags.GetFloat64("scale")
	}
	if flags.Changed("output-dir") {
		rc.OutputDir, _ = flags.GetString("output-dir")
	}
	if rc.Width <= 0 || rc.Height <= 0 || rc.Scale <= 0 {
		return render.Options{}, "", fmt.Errorf("width, height and scale must be positive")
	}

	opts := render.OptionsFromConfig(rc)
	opts.Title, _ = flags.GetString("title")
	return opts, rc.OutputDir, nil
}

func init() {
	d := types.DefaultConfig().Render

	renderCmd.Flags().String("file", "", "read input text from a file (\"-\" for stdin)")
	renderCmd.Flags().String("kind", string(d.Kind), "chart kind: pie, bar, or progress")
	renderCmd.Flags().String("format", string(d.Format), "image format: png or svg")
	renderCmd.Flags().String("out", "", "output file (default: <output-dir>/<kind>-chart.<format>)")
	renderCmd.Flags().String("output-dir", d.OutputDir, "directory for chart files")
	renderCmd.Flags().String("title", "", "chart title")
	renderCmd.Flags().Int("width", d.Width, "chart width in pixels before scaling")
	renderCmd.Flags().Int("height", d.Height, "chart height in pixels before scaling")
	renderCmd.Flags().Float64("scale", d.Scale, "resolution multiplier")

	rootCmd.AddCommand(renderCmd)
}
