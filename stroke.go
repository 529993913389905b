package mapline

import (
	"fmt"
	"strings"

	"github.com/gogpu/mapline/internal/stroke"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return fmt.Sprintf("LineCap(%d)", int(c))
	}
}

// ParseLineCap parses "butt", "round" or "square".
func ParseLineCap(s string) (LineCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "butt", "":
		return LineCapButt, nil
	case "round":
		return LineCapRound, nil
	case "square":
		return LineCapSquare, nil
	}
	return 0, fmt.Errorf("%w: cap %q", ErrInvalidLineStyle, s)
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the join name.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("LineJoin(%d)", int(j))
	}
}

// ParseLineJoin parses "miter", "round" or "bevel".
func ParseLineJoin(s string) (LineJoin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "miter", "":
		return LineJoinMiter, nil
	case "round":
		return LineJoinRound, nil
	case "bevel":
		return LineJoinBevel, nil
	}
	return 0, fmt.Errorf("%w: join %q", ErrInvalidLineStyle, s)
}

// Stroke defines the style for stroking a centerline.
type Stroke struct {
	// Width is the line width in drawing-space units.
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 10
	MiterLimit float64
}

// DefaultStroke returns a 1-unit stroke with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: DefaultMiterLimit,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// StrokeWidthForZoom returns the drawing-space width that renders as
// baseline device pixels at the given zoom scale. The product of the result
// and zoom is constant.
func StrokeWidthForZoom(baseline float64, zoom ZoomScale) float64 {
	return baseline / float64(zoom)
}

// BuildPath returns the centerline through points: a MoveTo to the first
// point followed by a LineTo per remaining point, in order, unclosed.
// An empty slice yields an empty path; a single point yields a lone MoveTo.
func BuildPath(points []Point) *Path {
	p := NewPath()
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// StrokeOutline returns the closed outline covering the stroke of path.
// The outline is filled with the nonzero rule. A path without a
// non-zero-length segment, or a non-positive width, yields an empty path.
func StrokeOutline(path *Path, s Stroke) *Path {
	exp := stroke.NewExpander(stroke.Style{
		Width:      s.Width,
		Cap:        stroke.Cap(s.Cap),
		Join:       stroke.Join(s.Join),
		MiterLimit: s.MiterLimit,
	})
	// The join tolerance is in drawing units, so it has to follow the width.
	if s.Width > 0 {
		exp.SetTolerance(s.Width / 64)
	}

	in := make([]stroke.Element, 0, path.Len())
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			in = append(in, stroke.MoveTo{Point: stroke.Point(e.Point)})
		case LineTo:
			in = append(in, stroke.LineTo{Point: stroke.Point(e.Point)})
		case Close:
			in = append(in, stroke.Close{})
		}
	}

	out := NewPath()
	for _, elem := range exp.Expand(in) {
		switch e := elem.(type) {
		case stroke.MoveTo:
			out.MoveTo(e.Point.X, e.Point.Y)
		case stroke.LineTo:
			out.LineTo(e.Point.X, e.Point.Y)
		case stroke.CubicTo:
			out.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case stroke.Close:
			out.Close()
		}
	}
	return out
}
