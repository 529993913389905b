// Command mapline-demo renders a gradient polyline to a PNG file.
package main

import (
	"flag"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/mapline"
	"github.com/gogpu/mapline/internal/geoio"
	"github.com/gogpu/mapline/tile"
)

func main() {
	var (
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 600, "image height")
		margin     = flag.Int("margin", 40, "margin around the path in pixels")
		input      = flag.String("input", "", "GeoJSON file with a LineString (default: San Francisco, San José, Los Angeles)")
		output     = flag.String("output", "mapline.png", "output file")
		axis       = flag.String("axis", "horizontal", "gradient axis: horizontal or vertical")
		stroke     = flag.Float64("stroke", mapline.DefaultStrokeWidth, "stroke width in pixels")
		linear     = flag.Bool("linear", false, "interpolate colors in linear light")
		background = flag.String("background", "#ffffff", "background color")
	)
	flag.Parse()

	points := geoio.SampleRoute()
	if *input != "" {
		var err error
		if points, err = geoio.LoadPolyline(*input); err != nil {
			log.Fatalf("Failed to load path: %v", err)
		}
	}

	a, err := mapline.ParseAxis(*axis)
	if err != nil {
		log.Fatal(err)
	}
	interp := mapline.InterpolateSRGB
	if *linear {
		interp = mapline.InterpolateLinear
	}
	spec, err := mapline.NewGradientSpec(
		mapline.WithAxis(a),
		mapline.WithStrokeWidth(*stroke),
		mapline.WithInterpolation(interp),
	)
	if err != nil {
		log.Fatalf("Invalid gradient: %v", err)
	}
	bg, err := mapline.ParseHex(*background)
	if err != nil {
		log.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg.Color()), image.Point{}, draw.Src)

	overlay := mapline.NewGradientPolylineOverlay(points)
	region, zoom := tile.Fit(points, *width, *height, *margin)
	m := mapline.DrawingMatrix(overlay.BoundingMapRect().Origin, region, zoom, 0, 0)

	r := mapline.NewRegistry(spec).RendererFor(overlay)
	r.Draw(region, zoom, mapline.NewContext(img, mapline.WithMatrix(m)))

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Path of %d points saved to %s (%dx%d)\n", len(points), *output, *width, *height)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
