package config

import (
	"fmt"

	"github.com/gogpu/mapline"
)

// GradientConfig is the serialized form of a mapline.GradientSpec, shared by
// the config file and the HTTP API.
type GradientConfig struct {
	Stops         []StopConfig `mapstructure:"stops" json:"stops"`
	Axis          string       `mapstructure:"axis" json:"axis"`
	StrokeWidth   float64      `mapstructure:"stroke_width" json:"stroke_width"`
	LineCap       string       `mapstructure:"line_cap" json:"line_cap,omitempty"`
	LineJoin      string       `mapstructure:"line_join" json:"line_join,omitempty"`
	MiterLimit    float64      `mapstructure:"miter_limit" json:"miter_limit,omitempty"`
	Interpolation string       `mapstructure:"interpolation" json:"interpolation,omitempty"`
	Dash          []float64    `mapstructure:"dash" json:"dash,omitempty"`
	DashOffset    float64      `mapstructure:"dash_offset" json:"dash_offset,omitempty"`
}

// StopConfig is one color stop; Color is "#rrggbb" or "#rrggbbaa".
type StopConfig struct {
	Offset float64 `mapstructure:"offset" json:"offset"`
	Color  string  `mapstructure:"color" json:"color"`
}

// Spec validates the configuration and builds the spec it describes.
// Empty axis, cap, join and interpolation fields take the defaults, and so
// does a zero miter limit.
func (g GradientConfig) Spec() (*mapline.GradientSpec, error) {
	stops := make([]mapline.ColorStop, len(g.Stops))
	for i, s := range g.Stops {
		c, err := mapline.ParseHex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		stops[i] = mapline.ColorStop{Offset: s.Offset, Color: c}
	}

	axis := mapline.AxisHorizontal
	if g.Axis != "" {
		a, err := mapline.ParseAxis(g.Axis)
		if err != nil {
			return nil, err
		}
		axis = a
	}
	interp, err := mapline.ParseInterpolation(g.Interpolation)
	if err != nil {
		return nil, err
	}

	opts := []mapline.GradientOption{
		mapline.WithStops(stops...),
		mapline.WithAxis(axis),
		mapline.WithStrokeWidth(g.StrokeWidth),
		mapline.WithInterpolation(interp),
	}
	if g.LineCap != "" {
		c, err := mapline.ParseLineCap(g.LineCap)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mapline.WithLineCap(c))
	}
	if g.LineJoin != "" {
		j, err := mapline.ParseLineJoin(g.LineJoin)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mapline.WithLineJoin(j))
	}
	if g.MiterLimit != 0 {
		opts = append(opts, mapline.WithMiterLimit(g.MiterLimit))
	}
	if len(g.Dash) > 0 {
		d := &mapline.Dash{Array: g.Dash, Offset: g.DashOffset}
		opts = append(opts, mapline.WithDash(d))
	}
	return mapline.NewGradientSpec(opts...)
}

// GradientFromSpec returns the serialized form of spec.
func GradientFromSpec(spec *mapline.GradientSpec) GradientConfig {
	stops := spec.Stops()
	g := GradientConfig{
		Stops:         make([]StopConfig, len(stops)),
		Axis:          spec.Axis().String(),
		StrokeWidth:   spec.StrokeWidth(),
		LineCap:       spec.LineCap().String(),
		LineJoin:      spec.LineJoin().String(),
		MiterLimit:    spec.MiterLimit(),
		Interpolation: spec.Interpolation().String(),
	}
	for i, s := range stops {
		g.Stops[i] = StopConfig{Offset: s.Offset, Color: s.Color.Hex()}
	}
	if d := spec.Dash(); d != nil {
		g.Dash = d.Array
		g.DashOffset = d.Offset
	}
	return g
}
