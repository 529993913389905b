package clip

import "errors"

// ErrEmptyBounds is returned when a mask is requested for an empty device rectangle.
var ErrEmptyBounds = errors.New("clip: empty mask bounds")

// Point is a device-space point (copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// PathElement is one device-space path command.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new ring.
type MoveTo struct {
	Point Point
}

// LineTo adds a straight edge.
type LineTo struct {
	Point Point
}

// CubicTo adds a cubic Bézier edge.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Close closes the current ring.
type Close struct{}

func (MoveTo) isPathElement()  {}
func (LineTo) isPathElement()  {}
func (CubicTo) isPathElement() {}
func (Close) isPathElement()   {}
