package mapline

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/mapline/internal/clip"
)

// Context is the 2D graphics context a renderer draws into: a destination
// image, a current transform from drawing space to device pixels, and an
// optional clip.
//
// A Context is not safe for concurrent use. Each draw gets its own.
type Context struct {
	dst    draw.Image
	matrix Matrix

	// clip is the device coverage of the current clip. When clipped is set
	// and clip is nil the clip covers nothing.
	clip    *clip.Mask
	clipped bool

	stack []contextState
}

type contextState struct {
	matrix  Matrix
	clip    *clip.Mask
	clipped bool
}

// ContextOption configures a Context during creation.
type ContextOption func(*Context)

// WithMatrix sets the initial drawing-space to device transform.
//
// Example:
//
//	m := mapline.DrawingMatrix(overlay.BoundingMapRect().Origin, region, zoom, 0, 0)
//	dc := mapline.NewContext(img, mapline.WithMatrix(m))
func WithMatrix(m Matrix) ContextOption {
	return func(c *Context) {
		c.matrix = m
	}
}

// NewContext creates a context drawing into dst with the identity transform
// and no clip.
func NewContext(dst draw.Image, opts ...ContextOption) *Context {
	c := &Context{
		dst:    dst,
		matrix: Identity(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Image returns the destination image.
func (c *Context) Image() draw.Image {
	return c.dst
}

// Bounds returns the device bounds of the destination.
func (c *Context) Bounds() image.Rectangle {
	return c.dst.Bounds()
}

// Matrix returns the current transform.
func (c *Context) Matrix() Matrix {
	return c.matrix
}

// SetMatrix replaces the current transform.
func (c *Context) SetMatrix(m Matrix) {
	c.matrix = m
}

// Push saves the current transform and clip.
func (c *Context) Push() {
	c.stack = append(c.stack, contextState{
		matrix:  c.matrix,
		clip:    c.clip,
		clipped: c.clipped,
	})
}

// Pop restores the last saved state.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix = s.matrix
	c.clip = s.clip
	c.clipped = s.clipped
}

// Clip intersects the clip with the interior of path (nonzero rule), after
// mapping the path through the current transform. It reports whether any
// device pixel remains drawable.
func (c *Context) Clip(path *Path) bool {
	bounds := c.dst.Bounds()
	if c.clipped {
		if c.clip == nil {
			return false
		}
		bounds = bounds.Intersect(c.clip.Covered())
	}

	m, err := clip.NewMask(clipElements(path.Transform(c.matrix)), bounds)
	if err != nil {
		// Empty bounds: nothing is drawable.
		c.clip, c.clipped = nil, true
		return false
	}
	if c.clip != nil {
		m.Intersect(c.clip)
	}
	c.clipped = true
	if m.Empty() {
		c.clip = nil
		return false
	}
	c.clip = m
	return true
}

// ResetClip removes the clip, restoring the full destination as drawable.
func (c *Context) ResetClip() {
	c.clip = nil
	c.clipped = false
}

// ClipBounds returns the device rectangle that can still be drawn to.
func (c *Context) ClipBounds() image.Rectangle {
	if !c.clipped {
		return c.dst.Bounds()
	}
	if c.clip == nil {
		return image.Rectangle{}
	}
	return c.clip.Covered().Intersect(c.dst.Bounds())
}

// DrawLinearGradient paints g over every drawable pixel, composited with
// source-over and weighted by clip coverage. The gradient is evaluated in
// drawing space at each pixel center.
func (c *Context) DrawLinearGradient(g *LinearGradient) {
	r := c.ClipBounds()
	if r.Empty() {
		return
	}
	src := &gradientImage{g: g, inv: c.matrix.Invert()}
	if c.clip == nil {
		draw.Draw(c.dst, r, src, r.Min, draw.Over)
		return
	}
	draw.DrawMask(c.dst, r, src, r.Min, c.clip.Alpha(), r.Min, draw.Over)
}

// gradientImage exposes a gradient as an unbounded image in device space.
type gradientImage struct {
	g   *LinearGradient
	inv Matrix
}

func (*gradientImage) ColorModel() color.Model { return color.NRGBA64Model }

func (*gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (gi *gradientImage) At(x, y int) color.Color {
	p := gi.inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	rgba := gi.g.ColorAt(p.X, p.Y)
	return color.NRGBA64{
		R: to16(rgba.R),
		G: to16(rgba.G),
		B: to16(rgba.B),
		A: to16(rgba.A),
	}
}

func to16(v float64) uint16 {
	return uint16(clamp01(v)*65535 + 0.5)
}

// clipElements converts path elements to the clip rasterizer's form.
func clipElements(p *Path) []clip.PathElement {
	elements := p.Elements()
	result := make([]clip.PathElement, len(elements))
	for i, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			result[i] = clip.MoveTo{Point: clip.Pt(e.Point.X, e.Point.Y)}
		case LineTo:
			result[i] = clip.LineTo{Point: clip.Pt(e.Point.X, e.Point.Y)}
		case CubicTo:
			result[i] = clip.CubicTo{
				Control1: clip.Pt(e.Control1.X, e.Control1.Y),
				Control2: clip.Pt(e.Control2.X, e.Control2.Y),
				Point:    clip.Pt(e.Point.X, e.Point.Y),
			}
		case Close:
			result[i] = clip.Close{}
		}
	}
	return result
}
