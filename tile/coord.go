package tile

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"

	"github.com/gogpu/mapline"
)

// MaxZoom is the deepest zoom level served.
const MaxZoom = 24

// MaxWarmZoom is the deepest zoom level rendered ahead of requests. Cover
// grows fourfold per level, so deeper levels are rendered on demand only.
const MaxWarmZoom = 14

// ErrInvalidCoord is returned for tile coordinates outside the tile pyramid.
var ErrInvalidCoord = errors.New("tile: invalid tile coordinate")

// Coord is an XYZ tile address: x grows east, y grows south.
type Coord struct {
	Z, X, Y uint32
}

// ParseCoord parses decimal z, x and y and checks the result is valid.
func ParseCoord(z, x, y string) (Coord, error) {
	var c Coord
	for _, f := range []struct {
		s   string
		dst *uint32
	}{{z, &c.Z}, {x, &c.X}, {y, &c.Y}} {
		v, err := strconv.ParseUint(f.s, 10, 32)
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, f.s)
		}
		*f.dst = uint32(v)
	}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("%w: %s", ErrInvalidCoord, c)
	}
	return c, nil
}

// Valid reports whether the coordinate addresses an existing tile.
func (c Coord) Valid() bool {
	if c.Z > MaxZoom {
		return false
	}
	n := uint32(1) << c.Z
	return c.X < n && c.Y < n
}

// String returns "z/x/y".
func (c Coord) String() string {
	return fmt.Sprintf("%d/%d/%d", c.Z, c.X, c.Y)
}

// span is the width of one tile in map points.
func (c Coord) span() float64 {
	return mapline.MapSizeWorld / math.Exp2(float64(c.Z))
}

// MapRect returns the region of the world plane the tile shows.
func (c Coord) MapRect() mapline.MapRect {
	s := c.span()
	return mapline.NewMapRect(float64(c.X)*s, float64(c.Y)*s, s, s)
}

// ZoomScale returns the zoom scale of the tile rendered tileSize pixels wide.
func (c Coord) ZoomScale(tileSize int) mapline.ZoomScale {
	return mapline.ZoomScale(float64(tileSize) / c.span())
}

// Tile returns the coordinate as an orb map tile.
func (c Coord) Tile() maptile.Tile {
	return maptile.New(c.X, c.Y, maptile.Zoom(c.Z))
}

// Bound returns the geographic bounds of the tile.
func (c Coord) Bound() orb.Bound {
	return c.Tile().Bound()
}

// Cover returns the tiles at zoom level z that the stroke of overlay can
// touch when drawn halfWidth pixels either side of the centerline. Tiles are
// ordered row by row. An overlay without points covers nothing.
func Cover(points mapline.Polyline, z uint32, tileSize int, halfWidth float64) []Coord {
	if len(points) == 0 || z > MaxZoom {
		return nil
	}

	ls := make(orb.LineString, len(points))
	for i, p := range points {
		ls[i] = orb.Point{p.Longitude, p.Latitude}
	}
	b := ls.Bound()

	zoom := Coord{Z: z}.ZoomScale(tileSize)
	pad := halfWidth / float64(zoom)
	nw := mapline.MapPointForCoordinate(mapline.Geo(b.Max.Lat(), b.Min.Lon()))
	se := mapline.MapPointForCoordinate(mapline.Geo(b.Min.Lat(), b.Max.Lon()))
	nw.X -= pad
	nw.Y -= pad
	se.X += pad
	se.Y += pad

	first := maptile.At(clampLonLat(mapline.CoordinateForMapPoint(nw)), maptile.Zoom(z))
	last := maptile.At(clampLonLat(mapline.CoordinateForMapPoint(se)), maptile.Zoom(z))

	edge := (uint32(1) << z) - 1
	x0, x1 := minU32(first.X, edge), minU32(last.X, edge)
	y0, y1 := minU32(first.Y, edge), minU32(last.Y, edge)

	var out []Coord
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			out = append(out, Coord{Z: z, X: x, Y: y})
		}
	}
	return out
}

// clampLonLat keeps a coordinate inside the tile pyramid's range.
func clampLonLat(g mapline.GeoPoint) orb.Point {
	lon := math.Max(-180, math.Min(math.Nextafter(180, 0), g.Longitude))
	lat := math.Max(-mapline.MaxLatitude, math.Min(mapline.MaxLatitude, g.Latitude))
	return orb.Point{lon, lat}
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// Fit returns the region and zoom scale that show points in a width x height
// image with margin pixels on every side, centered.
func Fit(points mapline.Polyline, width, height, margin int) (mapline.MapRect, mapline.ZoomScale) {
	if len(points) == 0 {
		return mapline.MapRectWorld, mapline.ZoomScale(float64(width) / mapline.MapSizeWorld)
	}

	first := mapline.MapPointForCoordinate(points[0])
	minX, minY, maxX, maxY := first.X, first.Y, first.X, first.Y
	for _, p := range points[1:] {
		mp := mapline.MapPointForCoordinate(p)
		minX = math.Min(minX, mp.X)
		minY = math.Min(minY, mp.Y)
		maxX = math.Max(maxX, mp.X)
		maxY = math.Max(maxY, mp.Y)
	}

	innerW := float64(max(width-2*margin, 1))
	innerH := float64(max(height-2*margin, 1))
	w, h := maxX-minX, maxY-minY
	zoom := math.Inf(1)
	if w > 0 {
		zoom = innerW / w
	}
	if h > 0 {
		zoom = math.Min(zoom, innerH/h)
	}
	if math.IsInf(zoom, 1) {
		// A single location: show it at street level.
		zoom = float64(mapline.ZoomScaleForLevel(16, 256))
	}

	regionW := float64(width) / zoom
	regionH := float64(height) / zoom
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	return mapline.NewMapRect(cx-regionW/2, cy-regionH/2, regionW, regionH), mapline.ZoomScale(zoom)
}
