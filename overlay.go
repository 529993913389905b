package mapline

import "math"

// OverlayKind identifies an overlay type for renderer dispatch.
type OverlayKind string

const (
	// KindGradientPolyline is the kind of GradientPolylineOverlay.
	KindGradientPolyline OverlayKind = "gradient-polyline"
)

// Overlay is a geographic record a host asks a renderer to draw.
type Overlay interface {
	// Kind selects the renderer factory.
	Kind() OverlayKind
	// Coordinate is the anchor point of the overlay.
	Coordinate() GeoPoint
	// BoundingMapRect is the region of the world the overlay may draw in.
	// Its origin is the origin of the renderer's drawing space.
	BoundingMapRect() MapRect
}

// GradientPolylineOverlay is the immutable record of a polyline drawn with a
// gradient stroke.
type GradientPolylineOverlay struct {
	points []GeoPoint
	anchor GeoPoint
	bounds MapRect
}

// OverlayOption configures a GradientPolylineOverlay during creation.
type OverlayOption func(*overlayOptions)

type overlayOptions struct {
	tight   bool
	padding float64
}

// WithTightBounds makes the bounding map rect the extent of the points,
// grown by padding map points on each side, instead of the whole world.
// The draw never clips to the bounding map rect; padding only matters to
// hosts that cull overlays by it, which should pad by half the widest
// stroke at the smallest zoom scale they draw.
func WithTightBounds(padding float64) OverlayOption {
	return func(o *overlayOptions) {
		o.tight = true
		o.padding = math.Max(0, padding)
	}
}

// NewGradientPolylineOverlay creates an overlay for points. The points are
// copied. The anchor is the first point, or the zero GeoPoint for an empty
// polyline. The bounding map rect is the whole world unless WithTightBounds
// is given.
func NewGradientPolylineOverlay(points Polyline, opts ...OverlayOption) *GradientPolylineOverlay {
	var o overlayOptions
	for _, opt := range opts {
		opt(&o)
	}

	ov := &GradientPolylineOverlay{
		points: append([]GeoPoint(nil), points...),
		bounds: MapRectWorld,
	}
	if len(points) > 0 {
		ov.anchor = points[0]
	}
	if o.tight && len(points) > 0 {
		ov.bounds = tightMapRect(points).Grow(o.padding, o.padding)
	}
	return ov
}

func tightMapRect(points []GeoPoint) MapRect {
	first := MapPointForCoordinate(points[0])
	minX, minY, maxX, maxY := first.X, first.Y, first.X, first.Y
	for _, c := range points[1:] {
		p := MapPointForCoordinate(c)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return NewMapRect(minX, minY, maxX-minX, maxY-minY)
}

// Kind returns KindGradientPolyline.
func (o *GradientPolylineOverlay) Kind() OverlayKind { return KindGradientPolyline }

// Coordinate returns the anchor point.
func (o *GradientPolylineOverlay) Coordinate() GeoPoint { return o.anchor }

// BoundingMapRect returns the overlay's bounding region.
func (o *GradientPolylineOverlay) BoundingMapRect() MapRect { return o.bounds }

// Points returns a copy of the polyline.
func (o *GradientPolylineOverlay) Points() Polyline {
	return append(Polyline(nil), o.points...)
}

// PointCount returns the number of points.
func (o *GradientPolylineOverlay) PointCount() int { return len(o.points) }

// polyline returns the points without copying; callers must not modify it.
func (o *GradientPolylineOverlay) polyline() Polyline { return o.points }
