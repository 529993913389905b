package mapline

// LinearGradient is a linear color transition between two points with pad
// extension. It is built per draw from a GradientSpec and the stroke's
// bounds, and is not retained afterwards.
type LinearGradient struct {
	Start         Point       // Start point of the gradient
	End           Point       // End point of the gradient
	Stops         []ColorStop // Color stops, sorted by offset
	Interpolation Interpolation
}

// NewLinearGradient creates a gradient from start to end.
// The stops must already be sorted; GradientSpec guarantees that.
func NewLinearGradient(start, end Point, stops []ColorStop, interp Interpolation) *LinearGradient {
	return &LinearGradient{
		Start:         start,
		End:           end,
		Stops:         stops,
		Interpolation: interp,
	}
}

// ColorAt returns the color at the given drawing-space point.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		if len(g.Stops) == 0 {
			return Transparent
		}
		return g.Stops[0].Color
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t, g.Interpolation)
}

// GradientAxis returns the gradient anchors for bounds.
//
// Horizontal: (minX, midY) to (maxX, midY).
// Vertical: (midX, minY) to (midX, maxY).
func GradientAxis(bounds Rect, axis Axis) (start, end Point) {
	mid := bounds.Mid()
	if axis == AxisVertical {
		return Pt(mid.X, bounds.Min.Y), Pt(mid.X, bounds.Max.Y)
	}
	return Pt(bounds.Min.X, mid.Y), Pt(bounds.Max.X, mid.Y)
}
