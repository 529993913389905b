package mapline

import (
	"image"
	"testing"
)

// longRoute returns n points zig-zagging east from San Francisco.
func longRoute(n int) Polyline {
	pl := make(Polyline, n)
	for i := range pl {
		lat := 37.7749
		if i%2 == 1 {
			lat -= 0.05
		}
		pl[i] = Geo(lat, -122.4194+float64(i)*0.02)
	}
	return pl
}

// BenchmarkDraw benchmarks a full draw of routes of various sizes into a
// 256x256 tile fitted to the route.
func BenchmarkDraw(b *testing.B) {
	sizes := []struct {
		name   string
		points int
	}{
		{"3pts", 3},
		{"100pts", 100},
		{"1000pts", 1000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			route := longRoute(size.points)
			o := NewGradientPolylineOverlay(route)
			spec := DefaultGradientSpec()
			region, zoom := fitRegion(route, 256, 8)
			img := image.NewRGBA(image.Rect(0, 0, 256, 256))
			m := DrawingMatrix(o.BoundingMapRect().Origin, region, zoom, 0, 0)

			b.ReportAllocs()
			for b.Loop() {
				DrawGradientPolyline(NewContext(img, WithMatrix(m)), o, spec, region, zoom)
			}
		})
	}
}

// BenchmarkStrokeOutline benchmarks stroke expansion alone.
func BenchmarkStrokeOutline(b *testing.B) {
	pr := NewProjector(MapRectWorld.Origin)
	path := BuildPath(pr.ProjectPolyline(longRoute(1000)))
	s := DefaultStroke().WithWidth(5000)

	b.ReportAllocs()
	for b.Loop() {
		StrokeOutline(path, s)
	}
}

// BenchmarkColorAtOffset benchmarks the per-pixel stop lookup.
func BenchmarkColorAtOffset(b *testing.B) {
	b.ReportAllocs()
	t := 0.0
	for b.Loop() {
		colorAtOffset(rgbStops, t, InterpolateSRGB)
		t += 0.001
		if t > 1 {
			t = 0
		}
	}
}
