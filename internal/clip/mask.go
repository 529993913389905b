// Package clip rasterizes device-space outlines into anti-aliased coverage
// masks used to confine painting to a shape.
package clip

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// Mask is an 8-bit coverage mask over a device rectangle.
// Each pixel holds the fraction of the pixel covered by the shape under the
// nonzero winding rule (0 = outside, 255 = fully inside).
type Mask struct {
	alpha *image.Alpha
	// covered is the tight rectangle of non-zero coverage.
	covered image.Rectangle
}

// NewMask rasterizes elements into a mask covering bounds.
// Geometry outside bounds is clipped before rasterization, so arbitrarily
// distant points are safe.
func NewMask(elements []PathElement, bounds image.Rectangle) (*Mask, error) {
	if bounds.Empty() {
		return nil, ErrEmptyBounds
	}

	m := &Mask{alpha: image.NewAlpha(bounds)}

	// A one pixel margin keeps clip-induced edges off the visible border.
	x0 := float64(bounds.Min.X - 1)
	y0 := float64(bounds.Min.Y - 1)
	x1 := float64(bounds.Max.X + 1)
	y1 := float64(bounds.Max.Y + 1)

	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src
	ox := float32(bounds.Min.X)
	oy := float32(bounds.Min.Y)

	drawn := false
	for _, ring := range flatten(elements) {
		ring = clipRing(ring, x0, y0, x1, y1)
		if len(ring) < 3 {
			continue
		}
		z.MoveTo(float32(ring[0].X)-ox, float32(ring[0].Y)-oy)
		for _, p := range ring[1:] {
			z.LineTo(float32(p.X)-ox, float32(p.Y)-oy)
		}
		z.ClosePath()
		drawn = true
	}
	if drawn {
		z.Draw(m.alpha, bounds, image.Opaque, image.Point{})
	}
	m.covered = coveredRect(m.alpha)
	return m, nil
}

// coveredRect returns the smallest rectangle containing every non-zero pixel.
func coveredRect(a *image.Alpha) image.Rectangle {
	b := a.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := a.Pix[a.PixOffset(b.Min.X, y) : a.PixOffset(b.Min.X, y)+b.Dx()]
		for i, v := range row {
			if v == 0 {
				continue
			}
			x := b.Min.X + i
			minX = min(minX, x)
			maxX = max(maxX, x+1)
			minY = min(minY, y)
			maxY = max(maxY, y+1)
		}
	}
	if minX >= maxX || minY >= maxY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// Alpha returns the underlying coverage image.
func (m *Mask) Alpha() *image.Alpha {
	return m.alpha
}

// Bounds returns the device rectangle the mask was rasterized for.
func (m *Mask) Bounds() image.Rectangle {
	return m.alpha.Bounds()
}

// Covered returns the tight rectangle of non-zero coverage.
// It is empty when the shape covers no pixel.
func (m *Mask) Covered() image.Rectangle {
	return m.covered
}

// Empty reports whether no pixel has coverage.
func (m *Mask) Empty() bool {
	return m.covered.Empty()
}

// Coverage returns the coverage (0-255) at device pixel (x, y).
// Pixels outside the mask have no coverage.
func (m *Mask) Coverage(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(m.alpha.Rect) {
		return 0
	}
	return m.alpha.AlphaAt(x, y).A
}

// Intersect multiplies m's coverage by other's, pixel by pixel, so that m
// covers only what both masks cover.
func (m *Mask) Intersect(other *Mask) {
	a := m.alpha
	b := a.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := a.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, off = x+1, off+1 {
			v := a.Pix[off]
			if v == 0 {
				continue
			}
			o := uint32(other.Coverage(x, y))
			a.Pix[off] = uint8((uint32(v)*o + 127) / 255)
		}
	}
	m.covered = coveredRect(a)
}
