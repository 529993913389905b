package clip

import "math"

// flattenTolerance is the maximum distance in pixels between a cubic and its
// polyline approximation.
const flattenTolerance = 0.1

// flatten converts path elements into closed rings of points.
// Open subpaths are closed implicitly, as filling requires.
func flatten(elements []PathElement) [][]Point {
	var rings [][]Point
	var ring []Point

	flush := func() {
		if len(ring) >= 3 {
			rings = append(rings, ring)
		}
		ring = nil
	}

	for _, el := range elements {
		switch el := el.(type) {
		case MoveTo:
			flush()
			ring = append(ring, el.Point)
		case LineTo:
			ring = append(ring, el.Point)
		case CubicTo:
			if len(ring) == 0 {
				continue
			}
			ring = flattenCubic(ring, ring[len(ring)-1], el.Control1, el.Control2, el.Point, 0)
		case Close:
			flush()
		}
	}
	flush()
	return rings
}

// flattenCubic appends points approximating the cubic p0..p3 (excluding p0).
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, depth int) []Point {
	if depth >= 16 || math.Max(lineDistance(p1, p0, p3), lineDistance(p2, p0, p3)) < flattenTolerance {
		return append(dst, p3)
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)
	dst = flattenCubic(dst, p0, q0, r0, s, depth+1)
	return flattenCubic(dst, s, r1, q2, p3, depth+1)
}

// lineDistance returns the distance from p to the segment a-b.
func lineDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 < 1e-20 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// halfPlane is one side of the clip rectangle.
type halfPlane struct {
	inside    func(Point) bool
	intersect func(a, b Point) Point
}

// clipRing clips a closed ring to the rectangle [x0,x1]×[y0,y1] with
// Sutherland–Hodgman. Winding numbers of points inside the rectangle are
// preserved, including for self-intersecting rings.
func clipRing(ring []Point, x0, y0, x1, y1 float64) []Point {
	planes := [4]halfPlane{
		{func(p Point) bool { return p.X >= x0 }, func(a, b Point) Point { return atX(a, b, x0) }},
		{func(p Point) bool { return p.X <= x1 }, func(a, b Point) Point { return atX(a, b, x1) }},
		{func(p Point) bool { return p.Y >= y0 }, func(a, b Point) Point { return atY(a, b, y0) }},
		{func(p Point) bool { return p.Y <= y1 }, func(a, b Point) Point { return atY(a, b, y1) }},
	}

	out := ring
	for _, hp := range planes {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case hp.inside(cur):
				if !hp.inside(prev) {
					out = append(out, hp.intersect(prev, cur))
				}
				out = append(out, cur)
			case hp.inside(prev):
				out = append(out, hp.intersect(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func atY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + t*(b.X-a.X), Y: y}
}
