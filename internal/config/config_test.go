package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/mapline"
	"github.com/gogpu/mapline/tile"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 256, cfg.Tiles.Size)
	assert.Equal(t, 4096, cfg.Tiles.CacheSize)
	assert.False(t, cfg.Valkey.Enabled())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	spec, err := cfg.Gradient.Spec()
	require.NoError(t, err)
	def := mapline.DefaultGradientSpec()
	assert.Equal(t, def.Stops(), spec.Stops())
	assert.Equal(t, def.Axis(), spec.Axis())
	assert.Equal(t, def.StrokeWidth(), spec.StrokeWidth())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("MAPLINE_TILES_SIZE", "512")
	t.Setenv("MAPLINE_VALKEY_ADDR", "localhost:6379")
	t.Setenv("MAPLINE_GRADIENT_AXIS", "vertical")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Tiles.Size)
	assert.True(t, cfg.Valkey.Enabled())
	assert.Equal(t, "vertical", cfg.Gradient.Axis)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
log:
  level: debug
  format: text
gradient:
  axis: vertical
  stroke_width: 8
  interpolation: linear
  stops:
    - offset: 0
      color: "#000000"
    - offset: 1
      color: "#ffffff"
`), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)

	spec, err := cfg.Gradient.Spec()
	require.NoError(t, err)
	assert.Equal(t, mapline.AxisVertical, spec.Axis())
	assert.Equal(t, 8.0, spec.StrokeWidth())
	assert.Equal(t, mapline.InterpolateLinear, spec.Interpolation())
	require.Len(t, spec.Stops(), 2)
	assert.Equal(t, mapline.White, spec.Stops()[1].Color)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
gradient:
  stroke_width: -1
`), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gradient")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "server.read_timeout"},
		{"tile size", func(c *Config) { c.Tiles.Size = 8 }, "tiles.size"},
		{"warm zoom", func(c *Config) { c.Tiles.WarmZoom = 30 }, "tiles.warm_zoom"},
		{"warm zoom past warm limit", func(c *Config) { c.Tiles.WarmZoom = tile.MaxWarmZoom + 1 }, "tiles.warm_zoom"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"padding", func(c *Config) { c.Overlay.Padding = -1 }, "overlay.padding"},
		{"stops", func(c *Config) { c.Gradient.Stops = c.Gradient.Stops[:1] }, "gradient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGradientConfig_Spec(t *testing.T) {
	g := GradientConfig{
		Stops: []StopConfig{
			{Offset: 0, Color: "#ff0000"},
			{Offset: 1, Color: "#0000ff80"},
		},
		StrokeWidth: 3,
		LineCap:     "round",
		LineJoin:    "bevel",
		MiterLimit:  4,
	}
	spec, err := g.Spec()
	require.NoError(t, err)
	assert.Equal(t, mapline.AxisHorizontal, spec.Axis())
	assert.Equal(t, mapline.LineCapRound, spec.LineCap())
	assert.Equal(t, mapline.LineJoinBevel, spec.LineJoin())
	assert.Equal(t, 4.0, spec.MiterLimit())
	assert.InDelta(t, 128.0/255, spec.Stops()[1].Color.A, 1e-12)

	back := GradientFromSpec(spec)
	assert.Equal(t, "#0000ff80", back.Stops[1].Color)
	assert.Equal(t, "horizontal", back.Axis)
	assert.Equal(t, "srgb", back.Interpolation)
}

func TestGradientConfig_SpecErrors(t *testing.T) {
	base := GradientFromSpec(mapline.DefaultGradientSpec())

	tests := []struct {
		name   string
		mutate func(*GradientConfig)
		want   error
	}{
		{"bad color", func(g *GradientConfig) { g.Stops[0].Color = "red" }, mapline.ErrInvalidColor},
		{"bad axis", func(g *GradientConfig) { g.Axis = "diagonal" }, mapline.ErrInvalidAxis},
		{"bad cap", func(g *GradientConfig) { g.LineCap = "pointy" }, mapline.ErrInvalidLineStyle},
		{"bad interpolation", func(g *GradientConfig) { g.Interpolation = "lab" }, mapline.ErrInvalidInterpolation},
		{"width", func(g *GradientConfig) { g.StrokeWidth = 0 }, mapline.ErrInvalidStrokeWidth},
		{"order", func(g *GradientConfig) { g.Stops[0].Offset = 0.9 }, mapline.ErrStopsNotMonotonic},
		{"range", func(g *GradientConfig) { g.Stops[2].Offset = 2 }, mapline.ErrStopOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := base
			g.Stops = append([]StopConfig(nil), base.Stops...)
			tt.mutate(&g)
			_, err := g.Spec()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGradientConfig_Dash(t *testing.T) {
	g := GradientFromSpec(mapline.DefaultGradientSpec())
	assert.Empty(t, g.Dash)

	g.Dash = []float64{8, 4}
	g.DashOffset = 2
	spec, err := g.Spec()
	require.NoError(t, err)
	require.NotNil(t, spec.Dash())
	assert.Equal(t, []float64{8, 4}, spec.Dash().Array)
	assert.Equal(t, 2.0, spec.Dash().Offset)

	back := GradientFromSpec(spec)
	assert.Equal(t, []float64{8, 4}, back.Dash)
	assert.Equal(t, 2.0, back.DashOffset)

	g.Dash = []float64{0, 0}
	_, err = g.Spec()
	assert.ErrorIs(t, err, mapline.ErrInvalidDash)
}

func TestValidate_WarmZoomAtLimit(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	cfg.Tiles.WarmZoom = tile.MaxWarmZoom
	assert.NoError(t, cfg.Validate())
}
