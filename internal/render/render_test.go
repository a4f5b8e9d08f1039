// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/graphgen/pkg/types"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func sampleSeries() types.Series {
	return types.Series{
		{Name: "Residence", Value: 50},
		{Name: "Commercial", Value: 10},
		{Name: "Institutional", Value: 10},
		{Name: "Industrial", Value: 20},
	}
}

func TestRender(t *testing.T) {
	r := New(zap.NewNop())

	for _, kind := range types.ChartKinds {
		for _, format := range []types.ImageFormat{types.ImagePNG, types.ImageSVG} {
			t.Run(string(kind)+"/"+string(format), func(t *testing.T) {
				var buf bytes.Buffer
				err := r.Render(&buf, sampleSeries(), Options{
					Kind:   kind,
					Format: format,
					Title:  "Land use",
					Width:  400,
					Height: 300,
					Scale:  1,
				})
				require.NoError(t, err)
				require.NotZero(t, buf.Len())

				if format == types.ImagePNG {
					assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "output should be a PNG")
				} else {
					assert.Contains(t, buf.String(), "<svg")
				}
			})
		}
	}
}

func TestRender_SingleDataPoint(t *testing.T) {
	r := New(nil)
	for _, kind := range types.ChartKinds {
		t.Run(string(kind), func(t *testing.T) {
			var buf bytes.Buffer
			err := r.Render(&buf, types.Series{{Name: "Everything", Value: 100}}, Options{Kind: kind, Scale: 1})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
		})
	}
}

func TestRender_ProgressPNGLongNames(t *testing.T) {
	series := types.Series{
		{Name: "Institutional", Value: 10},
		{Name: "Residence", Value: 50},
		{Name: "Small business and retail", Value: 75},
		{Name: "Industrial", Value: 100},
	}
	r := New(nil)
	for _, scale := range []float64{1, 2} {
		t.Run(fmt.Sprintf("scale %v", scale), func(t *testing.T) {
			var buf bytes.Buffer
			err := r.Render(&buf, series, Options{Kind: types.ChartProgress, Format: types.ImagePNG, Scale: scale})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
		})
	}
}

func TestRender_PieLabelsShowShare(t *testing.T) {
	c, err := pieChart(sampleSeries(), Options{Width: 100, Height: 100, Scale: 1})
	require.NoError(t, err)
	require.Len(t, c.Values, 4)
	assert.Equal(t, "Residence: 56%", c.Values[0].Label)
	assert.Equal(t, "Industrial: 22%", c.Values[3].Label)
}

func TestRender_ProgressTrack(t *testing.T) {
	c, err := progressChart(types.Series{
		{Name: "Half", Value: 50},
		{Name: "Over", Value: 120},
	}, Options{Width: 400, Height: 300, Scale: 1})
	require.NoError(t, err)
	require.Len(t, c.Bars, 2)

	require.Len(t, c.Bars[0].Values, 2, "partial bar has a track")
	assert.Equal(t, 50.0, c.Bars[0].Values[0].Value)
	assert.Equal(t, 50.0, c.Bars[0].Values[1].Value)

	require.Len(t, c.Bars[1].Values, 1, "full bar has no track")
	assert.Equal(t, 100.0, c.Bars[1].Values[0].Value)
}

func TestRender_Errors(t *testing.T) {
	r := New(nil)
	zeros := types.Series{{Name: "A", Value: 0}, {Name: "B", Value: 0}}

	tests := []struct {
		name   string
		series types.Series
		opts   Options
		want   error
	}{
		{"empty series", types.Series{}, Options{}, ErrEmptySeries},
		{"nil series", nil, Options{}, ErrEmptySeries},
		{"zero pie", zeros, Options{Kind: types.ChartPie}, ErrZeroTotal},
		{"zero bar", zeros, Options{Kind: types.ChartBar}, ErrZeroTotal},
		{"unknown kind", sampleSeries(), Options{Kind: "radar"}, types.ErrUnknownKind},
		{"unknown format", sampleSeries(), Options{Format: "gif"}, types.ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := r.Render(&buf, tt.series, tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, buf.Len(), "nothing should be written on error")
		})
	}
}

func TestRender_ZeroProgressIsAllowed(t *testing.T) {
	var buf bytes.Buffer
	err := New(nil).Render(&buf, types.Series{{Name: "A", Value: 0}, {Name: "B", Value: 30}}, Options{Kind: types.ChartProgress, Scale: 1})
	require.NoError(t, err)
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "pie-chart.png")

	err := New(nil).RenderFile(path, sampleSeries(), Options{Kind: types.ChartPie, Scale: 1})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestRenderFile_RemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar-chart.png")

	err := New(nil).RenderFile(path, types.Series{}, Options{Kind: types.ChartBar})
	require.ErrorIs(t, err, ErrEmptySeries)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "failed render should not leave a file behind")
}

func TestOptions(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, types.ChartPie, o.Kind)
	assert.Equal(t, types.ImagePNG, o.Format)
	assert.Equal(t, defaultWidth, o.Width)
	assert.Equal(t, defaultHeight, o.Height)
	assert.Equal(t, defaultScale, o.Scale)

	w, h, dpi := Options{Width: 100, Height: 50, Scale: 2}.pixels()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
	assert.InDelta(t, 184.0, dpi, 0.001)

	cfg := types.DefaultConfig().Render
	assert.Equal(t, Options{Kind: cfg.Kind, Format: cfg.Format, Width: cfg.Width, Height: cfg.Height, Scale: cfg.Scale}, OptionsFromConfig(cfg))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "pie-chart.png", Filename(types.ChartPie, types.ImagePNG))
	assert.Equal(t, "bar-chart.svg", Filename(types.ChartBar, types.ImageSVG))
}

func TestBarGeometry(t *testing.T) {
	bw, sp := barGeometry(4, 800, 1)
	assert.Equal(t, 40, bw)
	assert.Equal(t, 20, sp)

	bw, sp = barGeometry(300, 400, 1)
	assert.GreaterOrEqual(t, bw, 1)
	assert.GreaterOrEqual(t, sp, 1)
}
