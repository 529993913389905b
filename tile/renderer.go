package tile

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/gogpu/mapline"
)

// DefaultSize is the default tile edge in pixels.
const DefaultSize = 256

// Renderer renders snapshots into tiles.
type Renderer struct {
	size    int
	encoder png.Encoder
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize sets the tile edge in pixels. Non-positive sizes are ignored.
func WithSize(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.size = n
		}
	}
}

// WithCompression sets the PNG compression level.
func WithCompression(level png.CompressionLevel) Option {
	return func(r *Renderer) {
		r.encoder.CompressionLevel = level
	}
}

// NewRenderer creates a tile renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		size:    DefaultSize,
		encoder: png.Encoder{CompressionLevel: png.BestSpeed},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the tile edge in pixels.
func (r *Renderer) Size() int {
	return r.size
}

// Render draws the snapshot's overlay into a transparent tile image.
func (r *Renderer) Render(s *Snapshot, c Coord) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.size, r.size))
	region := c.MapRect()
	zoom := c.ZoomScale(r.size)
	m := mapline.DrawingMatrix(s.Overlay.BoundingMapRect().Origin, region, zoom, 0, 0)
	s.Renderer.Draw(region, zoom, mapline.NewContext(img, mapline.WithMatrix(m)))
	return img
}

// RenderPNG renders the tile and encodes it as PNG.
func (r *Renderer) RenderPNG(s *Snapshot, c Coord) ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCoord, c)
	}
	var buf bytes.Buffer
	if err := r.encoder.Encode(&buf, r.Render(s, c)); err != nil {
		return nil, fmt.Errorf("tile: encode %s: %w", c, err)
	}
	return buf.Bytes(), nil
}
