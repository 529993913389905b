// Package mapline draws geographic polylines on map surfaces with a stroke
// whose color follows a linear multi-stop gradient.
//
// # Overview
//
// A draw takes an overlay (the polyline), the visible map region and zoom
// scale, and a graphics context. It projects the points into the overlay's
// drawing space, strokes the centerline at a constant device width, clips to
// the stroke outline and paints a gradient running across the outline's
// bounding box.
//
// # Quick Start
//
//	import "github.com/gogpu/mapline"
//
//	route := mapline.Polyline{
//	    mapline.Geo(37.7749, -122.4194), // San Francisco
//	    mapline.Geo(37.3352, -122.0322), // San José
//	    mapline.Geo(34.0522, -118.2437), // Los Angeles
//	}
//	overlay := mapline.NewGradientPolylineOverlay(route)
//	renderer := mapline.RendererFor(overlay)
//
//	img := image.NewRGBA(image.Rect(0, 0, 256, 256))
//	m := mapline.DrawingMatrix(overlay.BoundingMapRect().Origin, region, zoom, 0, 0)
//	renderer.Draw(region, zoom, mapline.NewContext(img, mapline.WithMatrix(m)))
//
// # Coordinate Spaces
//
// Geographic coordinates are projected with spherical Web-Mercator onto a
// world plane of MapSizeWorld map points, origin at the top-left, y growing
// south. A renderer's drawing space is that plane translated to the origin
// of its overlay's bounding map rect. The zoom scale is device pixels per
// map point; the context's transform carries it from drawing space to
// device pixels.
//
// # Configuration
//
// GradientSpec values are immutable and validated on construction. A
// renderer holds one and swaps it atomically, so a draw never observes a
// half-applied configuration.
//
// # Concurrency
//
// Draw is synchronous and does no I/O. Overlays and specs may be shared
// between goroutines; a Context may not.
package mapline

// Version is the current version of the library.
const Version = "0.1.0"
