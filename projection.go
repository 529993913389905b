package mapline

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// MaxLatitude is the latitude at which the square Web-Mercator world ends.
// Coordinates beyond it are clamped before projecting.
const MaxLatitude = 85.05112877980659

// earthRadiusPi is half the Mercator world width in meters.
const earthRadiusPi = orb.EarthRadius * math.Pi

// MapPointForCoordinate projects a geographic coordinate onto the world
// plane. Every finite coordinate yields a finite map point; latitudes are
// clamped to ±MaxLatitude and longitudes are not wrapped.
func MapPointForCoordinate(c GeoPoint) MapPoint {
	lat := math.Max(-MaxLatitude, math.Min(MaxLatitude, c.Latitude))
	m := project.WGS84.ToMercator(orb.Point{c.Longitude, lat})
	return MapPoint{
		X: (m[0]/earthRadiusPi + 1) / 2 * MapSizeWorld,
		Y: (1 - m[1]/earthRadiusPi) / 2 * MapSizeWorld,
	}
}

// CoordinateForMapPoint is the inverse of MapPointForCoordinate.
func CoordinateForMapPoint(p MapPoint) GeoPoint {
	m := orb.Point{
		(p.X/MapSizeWorld*2 - 1) * earthRadiusPi,
		(1 - p.Y/MapSizeWorld*2) * earthRadiusPi,
	}
	ll := project.Mercator.ToWGS84(m)
	return GeoPoint{Latitude: ll[1], Longitude: ll[0]}
}

// Projector maps geographic coordinates into a renderer's drawing space.
//
// Drawing space is the world plane translated so that Origin, the origin
// of the overlay's bounding map rect, is (0, 0). Positions in drawing space
// do not depend on the zoom scale: the host's drawing matrix applies it, and
// only the stroke width is divided by it.
type Projector struct {
	Origin MapPoint
}

// NewProjector returns a projector for an overlay whose bounding map rect
// starts at origin.
func NewProjector(origin MapPoint) Projector {
	return Projector{Origin: origin}
}

// PointForMapPoint returns the drawing-space point of a map point.
func (pr Projector) PointForMapPoint(p MapPoint) Point {
	return Point{X: p.X - pr.Origin.X, Y: p.Y - pr.Origin.Y}
}

// Project returns the drawing-space point of a geographic coordinate.
func (pr Projector) Project(c GeoPoint) Point {
	return pr.PointForMapPoint(MapPointForCoordinate(c))
}

// ProjectPolyline projects every point of pl in order.
// An empty polyline yields nil.
func (pr Projector) ProjectPolyline(pl Polyline) []Point {
	if len(pl) == 0 {
		return nil
	}
	pts := make([]Point, len(pl))
	for i, c := range pl {
		pts[i] = pr.Project(c)
	}
	return pts
}

// RectForMapRect returns the drawing-space rectangle of a map rect.
func (pr Projector) RectForMapRect(r MapRect) Rect {
	return Rect{
		Min: pr.PointForMapPoint(r.Origin),
		Max: pr.PointForMapPoint(MapPoint{X: r.MaxX(), Y: r.MaxY()}),
	}
}

// DrawingMatrix returns the transform from an overlay's drawing space into
// device pixels of dst, for a draw of region at zoom. origin is the origin
// of the overlay's bounding map rect and dst.Min the device pixel the
// region's top-left corner lands on.
func DrawingMatrix(origin MapPoint, region MapRect, zoom ZoomScale, dstMinX, dstMinY int) Matrix {
	z := float64(zoom)
	return Translate(float64(dstMinX), float64(dstMinY)).
		Multiply(Scale(z, z)).
		Multiply(Translate(origin.X-region.Origin.X, origin.Y-region.Origin.Y))
}
