// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a chart kind string is not recognised.
var ErrUnknownKind = errors.New("unknown chart kind")

// ErrUnknownFormat is returned when an image or output format string is not recognised.
var ErrUnknownFormat = errors.New("unknown format")

// ChartKind selects how a Series is drawn.
type ChartKind string

const (
	ChartPie      ChartKind = "pie"
	ChartBar      ChartKind = "bar"
	ChartProgress ChartKind = "progress"
)

// ChartKinds lists every supported kind in display order.
var ChartKinds = []ChartKind{ChartPie, ChartBar, ChartProgress}

// ParseChartKind converts s (case-insensitive) into a ChartKind.
func ParseChartKind(s string) (ChartKind, error) {
	k := ChartKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ChartKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q: use pie, bar, or progress", ErrUnknownKind, s)
}

// ImageFormat selects the encoding of a rendered chart.
type ImageFormat string

const (
	ImagePNG ImageFormat = "png"
	ImageSVG ImageFormat = "svg"
)

// ParseImageFormat converts s (case-insensitive) into an ImageFormat.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch f := ImageFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ImagePNG, ImageSVG:
		return f, nil
	}
	return "", fmt.Errorf("%w %q: use png or svg", ErrUnknownFormat, s)
}

// ContentType returns the MIME type for the image format.
func (f ImageFormat) ContentType() string {
	if f == ImageSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// OutputFormat selects how a Series is printed.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// ParseOutputFormat converts s (case-insensitive) into an OutputFormat.
// An empty string selects the table format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return OutputTable, nil
	case OutputTable, OutputJSON, OutputYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w %q: use table, json, or yaml", ErrUnknownFormat, s)
}
