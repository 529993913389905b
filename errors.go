package mapline

import "errors"

// Configuration errors returned by NewGradientSpec and the Parse helpers.
// Draw never returns errors: a spec that exists has already been validated.
var (
	// ErrTooFewStops is returned when a gradient has fewer than two stops.
	ErrTooFewStops = errors.New("mapline: gradient needs at least two color stops")

	// ErrStopOutOfRange is returned when a stop offset is outside [0, 1] or not finite.
	ErrStopOutOfRange = errors.New("mapline: color stop offset out of [0, 1]")

	// ErrStopsNotMonotonic is returned when stop offsets decrease.
	ErrStopsNotMonotonic = errors.New("mapline: color stop offsets must be non-decreasing")

	// ErrInvalidStrokeWidth is returned for a non-positive or non-finite baseline width.
	ErrInvalidStrokeWidth = errors.New("mapline: stroke width must be positive and finite")

	// ErrInvalidMiterLimit is returned for a miter limit below 1.
	ErrInvalidMiterLimit = errors.New("mapline: miter limit must be at least 1")

	// ErrInvalidAxis is returned for an unknown gradient axis.
	ErrInvalidAxis = errors.New("mapline: invalid gradient axis")

	// ErrInvalidInterpolation is returned for an unknown interpolation space.
	ErrInvalidInterpolation = errors.New("mapline: invalid interpolation")

	// ErrInvalidLineStyle is returned for an unknown cap or join.
	ErrInvalidLineStyle = errors.New("mapline: invalid line style")

	// ErrInvalidDash is returned for a dash pattern with a negative or
	// non-finite length, no positive length, or a non-finite offset.
	ErrInvalidDash = errors.New("mapline: invalid dash pattern")
)
