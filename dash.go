package mapline

import "math"

// Dash is a dash pattern: alternating dash and gap lengths, in device pixels
// when set on a GradientSpec. An odd-length pattern repeats twice, so [5]
// means 5 on, 5 off.
type Dash struct {
	Array []float64

	// Offset is how far into the pattern the line starts.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash and gap lengths.
// Negative lengths count as their absolute value. It returns nil, a solid
// line, when no length is positive.
//
//	NewDash(8, 4)       // 8 on, 4 off
//	NewDash(12, 4, 2, 4) // long dash, short dash
func NewDash(lengths ...float64) *Dash {
	positive := false
	norm := make([]float64, len(lengths))
	for i, l := range lengths {
		norm[i] = math.Abs(l)
		if norm[i] > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}
	return &Dash{Array: norm}
}

// WithOffset returns a copy of d starting offset into the pattern.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	c := d.Clone()
	c.Offset = offset
	return c
}

// PatternLength returns the length of one full cycle.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// IsDashed reports whether d describes a dashed line rather than a solid one.
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone returns a deep copy of d.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	return &Dash{
		Array:  append([]float64(nil), d.Array...),
		Offset: d.Offset,
	}
}

// NormalizedOffset returns the offset reduced to [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	n := d.PatternLength()
	if n <= 0 {
		return 0
	}
	off := math.Mod(d.Offset, n)
	if off < 0 {
		off += n
	}
	return off
}

// Scale returns d with every length and the offset multiplied by factor.
// A non-positive factor returns d unchanged.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	c := d.Clone()
	for i := range c.Array {
		c.Array[i] *= factor
	}
	c.Offset *= factor
	return c
}

// effectiveArray returns the pattern with an odd-length array doubled.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	return append(append(make([]float64, 0, 2*len(d.Array)), d.Array...), d.Array...)
}

// Apply returns the dashes of the polyline through points as open subpaths.
// The pattern runs continuously across vertices, and a dash spanning a
// vertex stays one subpath so it is joined rather than capped there.
//
// When visible is not empty only dashes inside it are emitted; the pattern
// phase still advances over the skipped parts, so the dashes of a long line
// do not depend on which part of it is drawn.
func (d *Dash) Apply(points []Point, visible Rect) *Path {
	out := NewPath()
	if !d.IsDashed() || len(points) < 2 {
		return out
	}

	s := newDasher(d)
	drawing := false
	for k := 1; k < len(points); k++ {
		a, b := points[k-1], points[k]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}

		t0, t1 := 0.0, 1.0
		if !visible.IsEmpty() {
			var ok bool
			if t0, t1, ok = clipSegment(a, b, visible); !ok {
				s.advance(segLen)
				drawing = false
				continue
			}
		}

		s.advance(t0 * segLen)
		pos, end := t0*segLen, t1*segLen
		if s.on && !(drawing && t0 == 0) {
			p := a.Lerp(b, t0)
			out.MoveTo(p.X, p.Y)
		}
		for end-pos > s.rem {
			pos += s.rem
			p := a.Lerp(b, pos/segLen)
			if s.on {
				out.LineTo(p.X, p.Y)
			} else {
				out.MoveTo(p.X, p.Y)
			}
			s.next()
		}
		s.rem -= end - pos
		if s.on {
			p := a.Lerp(b, t1)
			out.LineTo(p.X, p.Y)
		}
		drawing = s.on && t1 == 1
		s.advance((1 - t1) * segLen)
	}
	return out
}

// dasher tracks the position within a dash pattern.
type dasher struct {
	array []float64
	total float64
	i     int
	rem   float64 // length left in array[i]
	on    bool
}

func newDasher(d *Dash) *dasher {
	s := &dasher{array: d.effectiveArray(), total: d.PatternLength(), on: true}
	s.rem = s.array[0]
	s.advance(d.NormalizedOffset())
	return s
}

func (s *dasher) next() {
	s.i = (s.i + 1) % len(s.array)
	s.rem = s.array[s.i]
	s.on = s.i%2 == 0
}

// advance moves dist along the pattern.
func (s *dasher) advance(dist float64) {
	if dist <= 0 {
		return
	}
	dist = math.Mod(dist, s.total)
	for dist > s.rem {
		dist -= s.rem
		s.next()
	}
	s.rem -= dist
}

// clipSegment returns the parameter range of segment ab inside r
// (Liang-Barsky). ok is false when the segment misses r.
func clipSegment(a, b Point, r Rect) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	dx, dy := b.X-a.X, b.Y-a.Y
	for _, e := range [4][2]float64{
		{-dx, a.X - r.Min.X},
		{dx, r.Max.X - a.X},
		{-dy, a.Y - r.Min.Y},
		{dy, r.Max.Y - a.Y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return t0, t1, true
}
