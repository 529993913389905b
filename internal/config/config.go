// Package config loads the tile server configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gogpu/mapline"
	"github.com/gogpu/mapline/tile"
)

// Config holds all tile server configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Tiles    TilesConfig    `mapstructure:"tiles"`
	Valkey   ValkeyConfig   `mapstructure:"valkey"`
	Log      LogConfig      `mapstructure:"log"`
	Overlay  OverlayConfig  `mapstructure:"overlay"`
	Gradient GradientConfig `mapstructure:"gradient"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type TilesConfig struct {
	Size      int `mapstructure:"size"`
	CacheSize int `mapstructure:"cache_size"`
	// WarmZoom is the deepest zoom level rendered ahead of requests when the
	// overlay changes. Negative disables warming.
	WarmZoom int `mapstructure:"warm_zoom"`
}

type ValkeyConfig struct {
	Addr string `mapstructure:"addr"`
	// TTL in seconds.
	TTL int `mapstructure:"ttl"`
}

// Enabled reports whether a shared tile cache is configured.
func (v ValkeyConfig) Enabled() bool { return v.Addr != "" }

// Expiry returns the TTL as a duration.
func (v ValkeyConfig) Expiry() time.Duration {
	return time.Duration(v.TTL) * time.Second
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OverlayConfig struct {
	// File is a GeoJSON document loaded at startup. Empty serves the sample
	// route.
	File string `mapstructure:"file"`
	// Padding, in map points, tightens the overlay bounds around the path.
	// Zero keeps whole-world bounds.
	Padding float64 `mapstructure:"padding"`
}

// Load reads configuration from defaults, an optional config.yaml and
// MAPLINE_ environment variables.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return load(v)
}

// LoadFile reads configuration from the YAML file at path, with defaults and
// environment variables applied as in Load.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return load(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("tiles.size", tile.DefaultSize)
	v.SetDefault("tiles.cache_size", 4096)
	v.SetDefault("tiles.warm_zoom", 6)
	v.SetDefault("valkey.addr", "")
	v.SetDefault("valkey.ttl", 3600)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("overlay.file", "")
	v.SetDefault("overlay.padding", 0)

	d := GradientFromSpec(mapline.DefaultGradientSpec())
	stops := make([]map[string]any, len(d.Stops))
	for i, s := range d.Stops {
		stops[i] = map[string]any{"offset": s.Offset, "color": s.Color}
	}
	v.SetDefault("gradient.stops", stops)
	v.SetDefault("gradient.axis", d.Axis)
	v.SetDefault("gradient.stroke_width", d.StrokeWidth)
	v.SetDefault("gradient.line_cap", d.LineCap)
	v.SetDefault("gradient.line_join", d.LineJoin)
	v.SetDefault("gradient.miter_limit", d.MiterLimit)
	v.SetDefault("gradient.interpolation", d.Interpolation)
	v.SetDefault("gradient.dash", []float64{})
	v.SetDefault("gradient.dash_offset", 0.0)
}

func load(v *viper.Viper) (*Config, error) {
	// MAPLINE_TILES_SIZE → tiles.size
	v.SetEnvPrefix("MAPLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Tiles.Size < 16 || c.Tiles.Size > 4096 {
		errs = append(errs, fmt.Sprintf("tiles.size must be 16-4096, got %d", c.Tiles.Size))
	}
	if c.Tiles.CacheSize < 0 {
		errs = append(errs, "tiles.cache_size must not be negative")
	}
	if c.Tiles.WarmZoom > tile.MaxWarmZoom {
		errs = append(errs, fmt.Sprintf("tiles.warm_zoom must be at most %d, got %d", tile.MaxWarmZoom, c.Tiles.WarmZoom))
	}
	if c.Valkey.TTL < 0 {
		errs = append(errs, "valkey.ttl must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}
	if c.Overlay.Padding < 0 {
		errs = append(errs, "overlay.padding must not be negative")
	}
	if _, err := c.Gradient.Spec(); err != nil {
		errs = append(errs, "gradient: "+err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
