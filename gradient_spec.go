package mapline

import (
	"fmt"
	"math"
)

// DefaultStrokeWidth is the baseline stroke width in device pixels.
const DefaultStrokeWidth = 5.0

// DefaultMiterLimit is the miter limit used when none is configured.
const DefaultMiterLimit = 10.0

// GradientSpec is the immutable configuration of a gradient polyline draw:
// the color ramp, its axis, and the stroke the ramp is confined to.
//
// A GradientSpec can only be obtained through NewGradientSpec or
// DefaultGradientSpec, so every instance is valid. Renderers hold a pointer
// and replace it atomically; a draw reads exactly one spec.
type GradientSpec struct {
	stops         []ColorStop
	axis          Axis
	strokeWidth   float64
	lineCap       LineCap
	lineJoin      LineJoin
	miterLimit    float64
	interpolation Interpolation
	dash          *Dash
}

// GradientOption configures a GradientSpec during creation.
//
// Example:
//
//	spec, err := mapline.NewGradientSpec(
//	    mapline.WithColors(mapline.Red, mapline.Yellow),
//	    mapline.WithAxis(mapline.AxisVertical),
//	    mapline.WithStrokeWidth(8),
//	)
type GradientOption func(*GradientSpec)

// WithStops sets the color stops. Offsets must be in [0, 1] and
// non-decreasing; equal offsets make a hard color change.
func WithStops(stops ...ColorStop) GradientOption {
	return func(s *GradientSpec) {
		s.stops = append([]ColorStop(nil), stops...)
	}
}

// WithColors sets evenly spaced stops: the first color at 0, the last at 1.
func WithColors(colors ...RGBA) GradientOption {
	return func(s *GradientSpec) {
		s.stops = make([]ColorStop, len(colors))
		for i, c := range colors {
			offset := 0.0
			if len(colors) > 1 {
				offset = float64(i) / float64(len(colors)-1)
			}
			s.stops[i] = ColorStop{Offset: offset, Color: c}
		}
	}
}

// WithAxis sets the gradient axis.
func WithAxis(axis Axis) GradientOption {
	return func(s *GradientSpec) {
		s.axis = axis
	}
}

// WithStrokeWidth sets the baseline stroke width in device pixels.
func WithStrokeWidth(width float64) GradientOption {
	return func(s *GradientSpec) {
		s.strokeWidth = width
	}
}

// WithLineCap sets the shape of the path ends.
func WithLineCap(c LineCap) GradientOption {
	return func(s *GradientSpec) {
		s.lineCap = c
	}
}

// WithLineJoin sets the shape of the corners.
func WithLineJoin(j LineJoin) GradientOption {
	return func(s *GradientSpec) {
		s.lineJoin = j
	}
}

// WithMiterLimit sets the miter limit for miter joins.
func WithMiterLimit(limit float64) GradientOption {
	return func(s *GradientSpec) {
		s.miterLimit = limit
	}
}

// WithInterpolation sets the color space stops are blended in.
func WithInterpolation(i Interpolation) GradientOption {
	return func(s *GradientSpec) {
		s.interpolation = i
	}
}

// WithDash sets a dash pattern in device pixels. Nil or an empty pattern
// draws a solid line.
func WithDash(d *Dash) GradientOption {
	return func(s *GradientSpec) {
		s.dash = nil
		if d != nil && len(d.Array) > 0 {
			s.dash = d.Clone()
		}
	}
}

// NewGradientSpec builds a validated spec. Unset fields take the defaults of
// DefaultGradientSpec: red, green and blue stops at 0, 0.5 and 1, horizontal
// axis, a 5 pixel butt-capped, miter-joined stroke and sRGB interpolation.
func NewGradientSpec(opts ...GradientOption) (*GradientSpec, error) {
	s := defaultGradientSpec()
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultGradientSpec returns the default spec.
func DefaultGradientSpec() *GradientSpec {
	s := defaultGradientSpec()
	return &s
}

func defaultGradientSpec() GradientSpec {
	return GradientSpec{
		stops: []ColorStop{
			{Offset: 0, Color: Red},
			{Offset: 0.5, Color: Green},
			{Offset: 1, Color: Blue},
		},
		axis:          AxisHorizontal,
		strokeWidth:   DefaultStrokeWidth,
		lineCap:       LineCapButt,
		lineJoin:      LineJoinMiter,
		miterLimit:    DefaultMiterLimit,
		interpolation: InterpolateSRGB,
	}
}

func (s *GradientSpec) validate() error {
	if len(s.stops) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewStops, len(s.stops))
	}
	for i, stop := range s.stops {
		if !(stop.Offset >= 0 && stop.Offset <= 1) {
			return fmt.Errorf("%w: stop %d has offset %v", ErrStopOutOfRange, i, stop.Offset)
		}
		if i > 0 && stop.Offset < s.stops[i-1].Offset {
			return fmt.Errorf("%w: stop %d offset %v follows %v", ErrStopsNotMonotonic, i, stop.Offset, s.stops[i-1].Offset)
		}
	}
	if !(s.strokeWidth > 0) || math.IsInf(s.strokeWidth, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidStrokeWidth, s.strokeWidth)
	}
	if !(s.miterLimit >= 1) || math.IsInf(s.miterLimit, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidMiterLimit, s.miterLimit)
	}
	switch s.axis {
	case AxisHorizontal, AxisVertical:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidAxis, s.axis)
	}
	switch s.interpolation {
	case InterpolateSRGB, InterpolateLinear:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInterpolation, s.interpolation)
	}
	if s.lineCap < LineCapButt || s.lineCap > LineCapSquare {
		return fmt.Errorf("%w: %v", ErrInvalidLineStyle, s.lineCap)
	}
	if s.lineJoin < LineJoinMiter || s.lineJoin > LineJoinBevel {
		return fmt.Errorf("%w: %v", ErrInvalidLineStyle, s.lineJoin)
	}
	if s.dash != nil {
		for i, l := range s.dash.Array {
			if !(l >= 0) || math.IsInf(l, 0) {
				return fmt.Errorf("%w: length %d is %v", ErrInvalidDash, i, l)
			}
		}
		if !s.dash.IsDashed() {
			return fmt.Errorf("%w: no positive length", ErrInvalidDash)
		}
		if !isFinite(s.dash.Offset) {
			return fmt.Errorf("%w: offset %v", ErrInvalidDash, s.dash.Offset)
		}
	}
	return nil
}

// Stops returns a copy of the color stops.
func (s *GradientSpec) Stops() []ColorStop {
	return append([]ColorStop(nil), s.stops...)
}

// Axis returns the gradient axis.
func (s *GradientSpec) Axis() Axis { return s.axis }

// StrokeWidth returns the baseline stroke width in device pixels.
func (s *GradientSpec) StrokeWidth() float64 { return s.strokeWidth }

// LineCap returns the cap style.
func (s *GradientSpec) LineCap() LineCap { return s.lineCap }

// LineJoin returns the join style.
func (s *GradientSpec) LineJoin() LineJoin { return s.lineJoin }

// MiterLimit returns the miter limit.
func (s *GradientSpec) MiterLimit() float64 { return s.miterLimit }

// Interpolation returns the interpolation space.
func (s *GradientSpec) Interpolation() Interpolation { return s.interpolation }

// Dash returns a copy of the dash pattern, or nil for a solid line.
func (s *GradientSpec) Dash() *Dash { return s.dash.Clone() }

// Stroke returns the stroke for a draw at zoom: the baseline width divided
// by the zoom scale, with the spec's cap, join and miter limit.
func (s *GradientSpec) Stroke(zoom ZoomScale) Stroke {
	return Stroke{
		Width:      StrokeWidthForZoom(s.strokeWidth, zoom),
		Cap:        s.lineCap,
		Join:       s.lineJoin,
		MiterLimit: s.miterLimit,
	}
}

// With returns a new validated spec with opts applied on top of s.
func (s *GradientSpec) With(opts ...GradientOption) (*GradientSpec, error) {
	c := *s
	c.stops = s.Stops()
	c.dash = s.dash.Clone()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// gradient returns the per-draw gradient for outline bounds.
func (s *GradientSpec) gradient(bounds Rect) *LinearGradient {
	start, end := GradientAxis(bounds, s.axis)
	return NewLinearGradient(start, end, s.stops, s.interpolation)
}
