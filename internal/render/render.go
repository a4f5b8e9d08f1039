// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render draws a Series as a pie, bar, or progress chart and encodes
// it as PNG or SVG. Charts are drawn with go-chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"

	"github.com/pdiddy/graphgen/pkg/types"
)

var (
	// ErrEmptySeries is returned when there is nothing to draw.
	ErrEmptySeries = errors.New("series has no data points")

	// ErrZeroTotal is returned when every value is zero, so no slice or bar
	// has a size.
	ErrZeroTotal = errors.New("series values sum to zero")
)

const (
	defaultWidth  = 800
	defaultHeight = 400
	defaultScale  = 2.0
)

// Options controls a single render.
type Options struct {
	Kind   types.ChartKind
	Format types.ImageFormat
	Title  string

	// Width and Height are in pixels before scaling.
	Width  int
	Height int

	// Scale multiplies the pixel size and DPI. Zero means the default of 2.
	Scale float64
}

// OptionsFromConfig builds render options from the configured defaults.
func OptionsFromConfig(cfg types.RenderConfig) Options {
	return Options{
		Kind:   cfg.Kind,
		Format: cfg.Format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
	}
}

func (o Options) withDefaults() Options {
	if o.Kind == "" {
		o.Kind = types.ChartPie
	}
	if o.Format == "" {
		o.Format = types.ImagePNG
	}
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Scale <= 0 {
		o.Scale = defaultScale
	}
	return o
}

// pixels returns the scaled canvas size and DPI.
func (o Options) pixels() (width, height int, dpi float64) {
	return int(float64(o.Width) * o.Scale), int(float64(o.Height) * o.Scale), chart.DefaultDPI * o.Scale
}

// Filename returns the download name for a chart, e.g. "pie-chart.png".
func Filename(kind types.ChartKind, format types.ImageFormat) string {
	return fmt.Sprintf("%s-chart.%s", kind, format)
}

// drawer is satisfied by every go-chart chart type.
type drawer interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Renderer draws charts. The zero value is not usable; call New.
type Renderer struct {
	logger *zap.Logger
}

// New returns a Renderer that logs to logger. A nil logger discards logs.
func New(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger}
}

// Render draws series according to opts and writes the encoded image to w.
func (r *Renderer) Render(w io.Writer, series types.Series, opts Options) error {
	if series.IsEmpty() {
		return ErrEmptySeries
	}
	opts = opts.withDefaults()

	var provider chart.RendererProvider
	switch opts.Format {
	case types.ImagePNG:
		provider = chart.PNG
	case types.ImageSVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("%w %q: use png or svg", types.ErrUnknownFormat, opts.Format)
	}

	var (
		d   drawer
		err error
	)
	switch opts.Kind {
	case types.ChartPie:
		d, err = pieChart(series, opts)
	case types.ChartBar:
		d, err = barChart(series, opts)
	case types.ChartProgress:
		d, err = progressChart(series, opts)
	default:
		return fmt.Errorf("%w %q: use pie, bar, or progress", types.ErrUnknownKind, opts.Kind)
	}
	if err != nil {
		return err
	}

	r.logger.Debug("rendering chart",
		zap.String("kind", string(opts.Kind)),
		zap.String("format", string(opts.Format)),
		zap.Int("points", len(series)),
		zap.Float64("scale", opts.Scale))

	if err := d.Render(provider, w); err != nil {
		return fmt.Errorf("rendering %s chart: %w", opts.Kind, err)
	}
	return nil
}

// RenderFile renders series into path, creating parent directories as needed.
func (r *Renderer) RenderFile(path string, series types.Series, opts Options) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := r.Render(f, series, opts); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	r.logger.Info("chart written", zap.String("path", path))
	return nil
}
