// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/graphgen/pkg/types"
)

// --- readInput ---

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("50% residence\n10% commercial\n"), 0o644))

	tests := []struct {
		name   string
		args   []string
		file   string
		stdin  string
		noPipe bool
		want   string
		errIs  error
	}{
		{name: "args joined", args: []string{"50%", "residence,", "10% commercial"}, want: "50% residence, 10% commercial"},
		{name: "args win over file", args: []string{"1 a"}, file: file, want: "1 a"},
		{name: "file", file: file, want: "50% residence\n10% commercial\n"},
		{name: "stdin", stdin: "20 parks", want: "20 parks"},
		{name: "dash reads stdin", file: "-", stdin: "30 roads", want: "30 roads"},
		{name: "nothing", noPipe: true, errIs: errNoInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdin io.Reader
			if !tt.noPipe {
				stdin = strings.NewReader(tt.stdin)
			}
			got, err := readInput(tt.args, tt.file, stdin)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := readInput(nil, filepath.Join(t.TempDir(), "nope.txt"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input file")
}

// --- loadConfig ---

func TestLoadConfig_Defaults(t *testing.T) {
	got, err := loadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), got)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`render:
  kind: BAR
  format: svg
  width: 640
  scale: 1.5
  output_dir: charts
serve:
  addr: ":9090"
  delay: 500ms
output:
  format: json
`), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	got, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, types.ChartBar, got.Render.Kind)
	assert.Equal(t, types.ImageSVG, got.Render.Format)
	assert.Equal(t, 640, got.Render.Width)
	assert.Equal(t, 400, got.Render.Height, "unset keys keep defaults")
	assert.Equal(t, 1.5, got.Render.Scale)
	assert.Equal(t, "charts", got.Render.OutputDir)
	assert.Equal(t, ":9090", got.Serve.Addr)
	assert.Equal(t, 500*time.Millisecond, got.Serve.Delay)
	assert.Equal(t, 5*time.Second, got.Serve.ShutdownTimeout)
	assert.Equal(t, types.OutputJSON, got.Output.Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
		want string
	}{
		{"kind", "render.kind", "radar", "render.kind"},
		{"image format", "render.format", "gif", "render.format"},
		{"output format", "output.format", "xml", "output.format"},
		{"width", "render.width", 0, "render size"},
		{"scale", "render.scale", -1, "render.scale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)
			_, err := loadConfig(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// --- commands ---

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExtractCommand(t *testing.T) {
	out, err := execute(t, "extract", "--format", "json", "--explain", "10% small business, 20% open space")
	require.NoError(t, err)

	assert.Contains(t, out, "strategy: percent-pattern")
	start := strings.Index(out, "[")
	require.GreaterOrEqual(t, start, 0)

	var series types.Series
	require.NoError(t, json.Unmarshal([]byte(out[start:]), &series))
	assert.Equal(t, types.Series{
		{Name: "Small business", Value: 10},
		{Name: "Open space", Value: 20},
	}, series)
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		kind  string
		scale string
	}{
		{"bar", "1"},
		{"progress", "1"},
		{"progress", "2"},
		{"pie", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.scale, func(t *testing.T) {
			dir := t.TempDir()
			out, err := execute(t, "render", "--kind", tt.kind, "--format", "png", "--scale", tt.scale,
				"--output-dir", dir, "50% residence, 10% commercial, 10% institutional, 20% industrial")
			require.NoError(t, err)

			path := filepath.Join(dir, tt.kind+"-chart.png")
			assert.Contains(t, out, "rendered: "+path)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.NotZero(t, info.Size())
		})
	}
}

func TestRenderCommand_NoData(t *testing.T) {
	_, err := execute(t, "render", "--out", filepath.Join(t.TempDir(), "x.png"), "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data points found")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "graphgen dev\n", out)
}
