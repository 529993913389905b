package mapline

import "math"

// GeoPoint is a geographic coordinate in decimal degrees.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Geo is a convenience function to create a GeoPoint.
func Geo(lat, lon float64) GeoPoint {
	return GeoPoint{Latitude: lat, Longitude: lon}
}

// Polyline is an ordered sequence of geographic points. Consecutive points
// are connected by straight segments in map space.
type Polyline []GeoPoint

// MapSizeWorld is the width and height of the world in map points: 2^28,
// which is 256 pixel tiles at zoom level 20.
const MapSizeWorld = 268435456.0

// MapPoint is a point on the flat Web-Mercator world plane. The origin is
// the top-left corner (180°W, ~85°N) and y grows southwards.
type MapPoint struct {
	X, Y float64
}

// MapSize is an extent in map points.
type MapSize struct {
	Width, Height float64
}

// MapRect is a rectangle in map points.
type MapRect struct {
	Origin MapPoint
	Size   MapSize
}

// MapRectWorld is the rectangle covering the whole world plane.
var MapRectWorld = MapRect{Size: MapSize{Width: MapSizeWorld, Height: MapSizeWorld}}

// NewMapRect creates a map rect from origin and size.
func NewMapRect(x, y, w, h float64) MapRect {
	return MapRect{Origin: MapPoint{X: x, Y: y}, Size: MapSize{Width: w, Height: h}}
}

// MinX returns the left edge.
func (r MapRect) MinX() float64 { return r.Origin.X }

// MinY returns the top edge.
func (r MapRect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge.
func (r MapRect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r MapRect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// IsEmpty reports whether the rect has no area.
func (r MapRect) IsEmpty() bool {
	return !(r.Size.Width > 0 && r.Size.Height > 0)
}

// Intersects reports whether the two rects overlap with positive area.
func (r MapRect) Intersects(o MapRect) bool {
	return r.MinX() < o.MaxX() && o.MinX() < r.MaxX() &&
		r.MinY() < o.MaxY() && o.MinY() < r.MaxY()
}

// Grow returns the rect grown by dx, dy on each side (shrunk when negative).
func (r MapRect) Grow(dx, dy float64) MapRect {
	return NewMapRect(r.Origin.X-dx, r.Origin.Y-dy, r.Size.Width+2*dx, r.Size.Height+2*dy)
}

// Union returns the smallest rect containing both.
func (r MapRect) Union(o MapRect) MapRect {
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return NewMapRect(minX, minY, maxX-minX, maxY-minY)
}

// ZoomScale is the number of device pixels per map point. A zoom scale of 1
// renders the world 2^28 pixels wide.
type ZoomScale float64

// ZoomScaleForLevel returns the zoom scale of an XYZ zoom level for the
// given tile size in pixels.
func ZoomScaleForLevel(level int, tileSize int) ZoomScale {
	return ZoomScale(float64(tileSize) * math.Exp2(float64(level)) / MapSizeWorld)
}
