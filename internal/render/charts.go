// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pdiddy/graphgen/pkg/types"
)

// Palettes are cycled by data point index.
var (
	piePalette = hexColors(
		"e76e50", "2a9d90", "274754", "e8c468",
		"f4a462", "8e5572", "5b8e7d", "bc4b51",
	)
	barPalette = hexColors(
		"ff7043", // coral
		"26a69a", // teal
		"5c6bc0", // indigo
		"ffa726", // amber
		"78909c", // blue-grey
		"ec407a", // pink
		"7cb342", // light-green
		"8d6e63", // brown
	)
	progressPalette = hexColors(
		"f39c12", // orange
		"e91e63", // pink
		"3f51b5", // blue
		"00bcd4", // teal
		"8bc34a", // green
	)
	progressTrack = drawing.ColorFromHex("eeeeee")
)

// progressMax is the value a progress bar is measured against.
const progressMax = 100.0

func hexColors(hex ...string) []drawing.Color {
	colors := make([]drawing.Color, len(hex))
	for i, h := range hex {
		colors[i] = drawing.ColorFromHex(h)
	}
	return colors
}

func colorAt(palette []drawing.Color, i int) drawing.Color {
	return palette[i%len(palette)]
}

// titlePadding leaves room above the plot when a title is set.
func titlePadding(title string, scale float64) chart.Style {
	top := 20
	if title != "" {
		top = 50
	}
	return chart.Style{Padding: chart.Box{
		Top:    int(float64(top) * scale),
		Left:   int(20 * scale),
		Right:  int(30 * scale),
		Bottom: int(20 * scale),
	}}
}

// barGeometry fits n bars and their gaps into roughly three quarters of the
// canvas width. Bars never exceed 40px before scaling.
func barGeometry(n, width int, scale float64) (barWidth, spacing int) {
	usable := float64(width) * 0.75
	bw := usable / (1.5 * float64(n))
	bw = math.Min(bw, 40*scale)
	if bw < 1 {
		bw = 1
	}
	barWidth = int(bw)
	spacing = int(bw / 2)
	if spacing < 1 {
		spacing = 1
	}
	return barWidth, spacing
}

// pieChart labels each slice "<name>: <share>%".
func pieChart(series types.Series, opts Options) (*chart.PieChart, error) {
	if series.Total() == 0 {
		return nil, ErrZeroTotal
	}
	width, height, dpi := opts.pixels()

	values := make([]chart.Value, len(series))
	for i, p := range series {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s: %.0f%%", p.Name, series.Share(i)*100),
			Value: p.Value,
			Style: chart.Style{
				FillColor:   colorAt(piePalette, i),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1 * opts.Scale,
			},
		}
	}

	return &chart.PieChart{
		Title:      opts.Title,
		Width:      width,
		Height:     height,
		DPI:        dpi,
		Background: titlePadding(opts.Title, opts.Scale),
		Values:     values,
	}, nil
}

// barChart draws one bar per data point on a 0..max axis.
func barChart(series types.Series, opts Options) (*chart.BarChart, error) {
	maxValue := 0.0
	for _, p := range series {
		maxValue = math.Max(maxValue, p.Value)
	}
	if maxValue == 0 {
		return nil, ErrZeroTotal
	}
	width, height, dpi := opts.pixels()
	barWidth, spacing := barGeometry(len(series), width, opts.Scale)

	bars := make([]chart.Value, len(series))
	for i, p := range series {
		bars[i] = chart.Value{
			Label: p.Name,
			Value: p.Value,
			Style: chart.Style{
				FillColor:   colorAt(barPalette, i),
				StrokeColor: colorAt(barPalette, i),
			},
		}
	}

	return &chart.BarChart{
		Title:      opts.Title,
		Width:      width,
		Height:     height,
		DPI:        dpi,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: titlePadding(opts.Title, opts.Scale),
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue},
		},
		Bars: bars,
	}, nil
}

// progressChart draws each value as a filled segment over a grey track that
// tops out at 100. Values at or above 100 fill the whole bar.
func progressChart(series types.Series, opts Options) (*chart.StackedBarChart, error) {
	width, height, dpi := opts.pixels()
	barWidth, spacing := barGeometry(len(series), width, opts.Scale)

	bars := make([]chart.StackedBar, len(series))
	for i, p := range series {
		filled := math.Min(p.Value, progressMax)
		values := []chart.Value{{
			Label: fmt.Sprintf("%.0f%%", p.Value),
			Value: filled,
			Style: chart.Style{
				FillColor:   colorAt(progressPalette, i),
				StrokeColor: colorAt(progressPalette, i),
			},
		}}
		if filled < progressMax {
			values = append(values, chart.Value{
				Value: progressMax - filled,
				Style: chart.Style{
					FillColor:   progressTrack,
					StrokeColor: progressTrack,
				},
			})
		}
		bars[i] = chart.StackedBar{
			Name:   p.Name,
			Width:  barWidth,
			Values: values,
		}
	}

	// Bar names stay on one line. Word wrapping a name wider than its bar
	// slot emits a line per rune and pushes the axis off the canvas.
	return &chart.StackedBarChart{
		Title:      opts.Title,
		Width:      width,
		Height:     height,
		DPI:        dpi,
		BarSpacing: spacing,
		Background: titlePadding(opts.Title, opts.Scale),
		XAxis:      chart.Style{TextWrap: chart.TextWrapNone},
		Bars:       bars,
	}, nil
}
