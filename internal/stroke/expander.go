package stroke

import "math"

// Point is a 2D point. It mirrors the root package type to avoid an import cycle.
type Point struct {
	X, Y float64
}

func (p Point) add(v vec) Point { return Point{X: p.X + v.x, Y: p.Y + v.y} }
func (p Point) sub(q Point) vec { return vec{x: p.X - q.X, y: p.Y - q.Y} }

// vec is a 2D displacement.
type vec struct {
	x, y float64
}

func (v vec) scale(s float64) vec         { return vec{x: v.x * s, y: v.y * s} }
func (v vec) neg() vec                    { return vec{x: -v.x, y: -v.y} }
func (v vec) dot(w vec) float64           { return v.x*w.x + v.y*w.y }
func (v vec) cross(w vec) float64         { return v.x*w.y - v.y*w.x }
func (v vec) length() float64             { return math.Hypot(v.x, v.y) }
func (v vec) perp() vec                   { return vec{x: -v.y, y: v.x} }
func (v vec) angle() float64              { return math.Atan2(v.y, v.x) }
func (v vec) isZero() bool                { return v.x == 0 && v.y == 0 }
func (v vec) at(c Point, s float64) Point { return c.add(v.scale(s)) }

// Cap is the shape of open path ends.
type Cap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a half circle of radius width/2.
	CapRound
	// CapSquare extends the stroke by width/2 past the endpoint.
	CapSquare
)

// Join is the shape of the corner between two segments.
type Join int

const (
	// JoinMiter extends the outer edges until they meet, up to the miter limit.
	JoinMiter Join = iota
	// JoinRound fills the corner with a circular arc.
	JoinRound
	// JoinBevel cuts the corner with a straight edge.
	JoinBevel
)

// Style holds the stroke parameters. Width is in the same units as the input points.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// DefaultStyle returns a 1-unit stroke with butt caps and miter joins
// limited at 10, the CoreGraphics defaults.
func DefaultStyle() Style {
	return Style{Width: 1, Cap: CapButt, Join: JoinMiter, MiterLimit: 10}
}

// Element is one command of an input or output path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

// LineTo adds a straight segment.
type LineTo struct{ Point Point }

// CubicTo adds a cubic Bézier segment. Only produced by caps and joins.
type CubicTo struct{ Control1, Control2, Point Point }

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isElement()  {}
func (LineTo) isElement()  {}
func (CubicTo) isElement() {}
func (Close) isElement()   {}

// Expander turns stroked polylines into fill outlines.
// An Expander is not safe for concurrent use; it is cheap to create one per call.
type Expander struct {
	style Style

	// tolerance controls when a join is too shallow to matter.
	tolerance float64

	fwd  *builder
	back *builder
	out  *builder

	start     Point
	startNorm vec
	startTan  vec
	last      Point
	lastTan   vec
	lastNorm  vec
}

// NewExpander creates an expander for the given style.
func NewExpander(style Style) *Expander {
	return &Expander{style: style, tolerance: 0.25}
}

// SetTolerance sets the join tolerance. Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Style returns the stroke style of the expander.
func (e *Expander) Style() Style {
	return e.style
}

// Expand returns the outline of the stroked path. Subpaths without a
// non-zero-length segment produce nothing, so a lone MoveTo yields an empty
// outline. Input CubicTo elements are ignored.
func (e *Expander) Expand(elements []Element) []Element {
	e.fwd = newBuilder()
	e.back = newBuilder()
	e.out = newBuilder()
	if e.style.Width <= 0 {
		return nil
	}

	for _, el := range elements {
		switch el := el.(type) {
		case MoveTo:
			e.finishOpen()
			e.start = el.Point
			e.last = el.Point
		case LineTo:
			e.lineTo(el.Point)
		case Close:
			if e.last != e.start {
				e.lineTo(e.start)
			}
			e.finishClosed()
			e.last = e.start
		}
	}
	e.finishOpen()

	return e.out.elements
}

func (e *Expander) lineTo(p Point) {
	if p == e.last {
		return
	}
	tan := p.sub(e.last)
	norm := e.normal(tan)
	if e.fwd.empty() {
		e.fwd.moveTo(e.last.add(norm.neg()))
		e.back.moveTo(e.last.add(norm))
		e.startTan = tan
		e.startNorm = norm
	} else {
		e.join(e.last, tan, norm)
	}
	e.fwd.lineTo(p.add(norm.neg()))
	e.back.lineTo(p.add(norm))
	e.last = p
	e.lastTan = tan
	e.lastNorm = norm
}

// normal returns the half-width normal of tangent tan.
func (e *Expander) normal(tan vec) vec {
	return tan.perp().scale(0.5 * e.style.Width / tan.length())
}

// join connects the previous segment to one leaving p0 along tan.
func (e *Expander) join(p0 Point, tan, norm vec) {
	prev := e.lastTan
	cross := prev.cross(tan)
	dot := prev.dot(tan)
	hypot := math.Hypot(cross, dot)

	threshold := 2 * e.tolerance / e.style.Width
	if dot > 0 && math.Abs(cross) < hypot*threshold {
		e.fwd.lineTo(p0.add(norm.neg()))
		e.back.lineTo(p0.add(norm))
		return
	}

	switch e.style.Join {
	case JoinMiter:
		limit := e.style.MiterLimit * e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limit {
			e.miter(p0, tan, norm, cross)
		}
	case JoinRound:
		angle := math.Atan2(cross, dot)
		if angle > 0 {
			e.arc(e.fwd, p0, e.lastNorm.neg(), angle)
		} else {
			e.arc(e.back, p0, e.lastNorm, angle)
		}
	}
	e.fwd.lineTo(p0.add(norm.neg()))
	e.back.lineTo(p0.add(norm))
}

// miter adds the miter tip on the outer side of the corner at p0.
func (e *Expander) miter(p0 Point, tan, norm vec, cross float64) {
	side, prevOff, curOff := e.fwd, e.lastNorm.neg(), norm.neg()
	if cross < 0 {
		side, prevOff, curOff = e.back, e.lastNorm, norm
	}
	if cross == 0 {
		return
	}
	from := p0.add(prevOff)
	to := p0.add(curOff)
	h := e.lastTan.cross(to.sub(from)) / cross
	side.lineTo(to.add(tan.scale(-h)))
}

// arc appends a circular arc around center, starting at center+from and
// sweeping angle radians, split into quarter-circle cubics.
func (e *Expander) arc(b *builder, center Point, from vec, angle float64) {
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	r := from.length()
	a0 := from.angle()
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		a1 := a0 + step
		u0 := vec{x: math.Cos(a0), y: math.Sin(a0)}
		u1 := vec{x: math.Cos(a1), y: math.Sin(a1)}
		p0 := u0.at(center, r)
		p1 := u1.at(center, r)
		c1 := p0.add(u0.perp().scale(k * r))
		c2 := p1.add(u1.perp().scale(-k * r))
		b.cubicTo(c1, c2, p1)
		a0 = a1
	}
}

// capEnd adds the cap at center, going from center+norm to center-norm.
func (e *Expander) capEnd(center Point, norm vec) {
	switch e.style.Cap {
	case CapRound:
		e.arc(e.out, center, norm, math.Pi)
	case CapSquare:
		ext := norm.perp()
		e.out.lineTo(center.add(norm).add(ext))
		e.out.lineTo(center.add(norm.neg()).add(ext))
		e.out.lineTo(center.add(norm.neg()))
	default:
		e.out.lineTo(center.add(norm.neg()))
	}
}

// finishOpen emits the outline of an open subpath.
func (e *Expander) finishOpen() {
	if e.fwd.empty() {
		return
	}
	e.out.append(e.fwd)
	// lastNorm points at the back side; the end cap runs from fwd to back.
	e.capEnd(e.last, e.lastNorm.neg())
	e.out.appendReversed(e.back)
	e.capEnd(e.start, e.startNorm)
	e.out.close()

	e.fwd = newBuilder()
	e.back = newBuilder()
}

// finishClosed emits a closed subpath as two rings.
func (e *Expander) finishClosed() {
	if e.fwd.empty() {
		return
	}
	e.join(e.start, e.startTan, e.startNorm)
	e.out.append(e.fwd)
	e.out.close()

	if n := len(e.back.elements); n > 0 {
		e.out.moveTo(endPoint(e.back.elements[n-1]))
	}
	e.out.appendReversed(e.back)
	e.out.close()

	e.fwd = newBuilder()
	e.back = newBuilder()
}

func endPoint(el Element) Point {
	switch el := el.(type) {
	case MoveTo:
		return el.Point
	case LineTo:
		return el.Point
	case CubicTo:
		return el.Point
	}
	return Point{}
}

// builder accumulates one side of the outline.
type builder struct {
	elements []Element
}

func newBuilder() *builder {
	return &builder{elements: make([]Element, 0, 32)}
}

func (b *builder) empty() bool    { return len(b.elements) == 0 }
func (b *builder) moveTo(p Point) { b.elements = append(b.elements, MoveTo{Point: p}) }
func (b *builder) lineTo(p Point) { b.elements = append(b.elements, LineTo{Point: p}) }
func (b *builder) cubicTo(c1, c2, p Point) {
	b.elements = append(b.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
}
func (b *builder) close() { b.elements = append(b.elements, Close{}) }

func (b *builder) append(other *builder) {
	b.elements = append(b.elements, other.elements...)
}

// appendReversed appends other walked backwards, skipping its MoveTo.
func (b *builder) appendReversed(other *builder) {
	els := other.elements
	for i := len(els) - 1; i >= 1; i-- {
		to := endPoint(els[i-1])
		switch el := els[i].(type) {
		case LineTo:
			b.lineTo(to)
		case CubicTo:
			b.cubicTo(el.Control2, el.Control1, to)
		}
	}
}
