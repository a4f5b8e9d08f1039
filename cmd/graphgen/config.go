// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/graphgen/pkg/types"
)

// setDefaults registers every config key with its default so environment
// variables are picked up by Unmarshal even when no config file exists.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()

	v.SetDefault("render.kind", string(d.Render.Kind))
	v.SetDefault("render.format", string(d.Render.Format))
	v.SetDefault("render.width", d.Render.Width)
	v.SetDefault("render.height", d.Render.Height)
	v.SetDefault("render.scale", d.Render.Scale)
	v.SetDefault("render.output_dir", d.Render.OutputDir)

	v.SetDefault("serve.addr", d.Serve.Addr)
	v.SetDefault("serve.delay", d.Serve.Delay)
	v.SetDefault("serve.shutdown_timeout", d.Serve.ShutdownTimeout)

	v.SetDefault("output.format", string(d.Output.Format))
}

// loadConfig merges defaults with whatever v has read and validates the
// enumerated fields.
func loadConfig(v *viper.Viper) (types.Config, error) {
	setDefaults(v)

	var c types.Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}

	kind, err := types.ParseChartKind(string(c.Render.Kind))
	if err != nil {
		return c, fmt.Errorf("render.kind: %w", err)
	}
	c.Render.Kind = kind

	format, err := types.ParseImageFormat(string(c.Render.Format))
	if err != nil {
		return c, fmt.Errorf("render.format: %w", err)
	}
	c.Render.Format = format

	out, err := types.ParseOutputFormat(string(c.Output.Format))
	if err != nil {
		return c, fmt.Errorf("output.format: %w", err)
	}
	c.Output.Format = out

	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return c, fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Scale <= 0 {
		return c, fmt.Errorf("render.scale must be positive, got %v", c.Render.Scale)
	}

	return c, nil
}
