// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RenderConfig holds settings for chart rendering and export.
type RenderConfig struct {
	// Kind is the default chart kind (pie, bar, or progress).
	Kind ChartKind `json:"kind" yaml:"kind" mapstructure:"kind"`

	// Format is the default image format (png or svg).
	Format ImageFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Width and Height are the chart size in pixels before scaling.
	Width  int `json:"width" yaml:"width" mapstructure:"width"`
	Height int `json:"height" yaml:"height" mapstructure:"height"`

	// Scale multiplies the pixel size and DPI so downloads stay sharp (default 2).
	Scale float64 `json:"scale" yaml:"scale" mapstructure:"scale"`

	// OutputDir is the directory chart files are written to when no explicit
	// output path is given.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
}

// ServeConfig holds settings for the HTTP server.
type ServeConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// Delay is an artificial pause applied before extraction responses.
	// The interactive UI uses it to show a "generating" state.
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay"`

	// ShutdownTimeout bounds graceful shutdown after the context is cancelled.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// OutputConfig holds settings for printing series on the terminal.
type OutputConfig struct {
	// Format is table, json, or yaml.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups every section of the graphgen configuration file.
type Config struct {
	Render RenderConfig `json:"render" yaml:"render" mapstructure:"render"`
	Serve  ServeConfig  `json:"serve" yaml:"serve" mapstructure:"serve"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
}

// DefaultConfig returns the configuration used when no file or flag overrides a key.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Kind:      ChartPie,
			Format:    ImagePNG,
			Width:     800,
			Height:    400,
			Scale:     2,
			OutputDir: ".",
		},
		Serve: ServeConfig{
			Addr:            ":8080",
			Delay:           0,
			ShutdownTimeout: 5 * time.Second,
		},
		Output: OutputConfig{
			Format: OutputTable,
		},
	}
}
