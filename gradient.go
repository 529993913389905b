package mapline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/mapline/internal/color"
)

// Axis selects the direction a gradient runs across the stroke's bounds.
type Axis int

const (
	// AxisHorizontal runs the gradient from the left edge of the bounds to
	// the right edge, at mid height.
	AxisHorizontal Axis = iota
	// AxisVertical runs the gradient from the top edge of the bounds to the
	// bottom edge, at mid width.
	AxisVertical
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis parses "horizontal" or "vertical" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return AxisHorizontal, nil
	case "vertical", "v":
		return AxisVertical, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
}

// Interpolation selects the color space stops are blended in.
type Interpolation int

const (
	// InterpolateSRGB blends the encoded sRGB components directly, the way a
	// device-RGB gradient does.
	InterpolateSRGB Interpolation = iota
	// InterpolateLinear blends in linear light and re-encodes to sRGB.
	InterpolateLinear
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case InterpolateSRGB:
		return "srgb"
	case InterpolateLinear:
		return "linear"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// ParseInterpolation parses "srgb" or "linear" (case-insensitive).
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srgb", "":
		return InterpolateSRGB, nil
	case "linear":
		return InterpolateLinear, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInterpolation, s)
}

func (i Interpolation) space() color.Space {
	if i == InterpolateLinear {
		return color.SpaceLinear
	}
	return color.SpaceSRGB
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset returns the interpolated color at offset t with pad
// extension: offsets outside the stop range hold the nearest end color.
// stops must be sorted by offset.
func colorAtOffset(stops []ColorStop, t float64, interp Interpolation) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = clamp01(t)
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s0, s1 := stops[idx-1], stops[idx]
	span := s1.Offset - s0.Offset
	if span <= 0 {
		return s1.Color
	}
	local := (t - s0.Offset) / span
	c := color.Lerp(toF64(s0.Color), toF64(s1.Color), local, interp.space())
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toF64(c RGBA) color.F64 {
	return color.F64{R: c.R, G: c.G, B: c.B, A: c.A}
}
