// Package geoio reads and writes polylines as GeoJSON.
package geoio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gogpu/mapline"
)

// ErrNoLineString is returned when a document holds no usable line geometry.
var ErrNoLineString = errors.New("geoio: no LineString in document")

// SampleRoute is San Francisco, San José, Los Angeles.
func SampleRoute() mapline.Polyline {
	return mapline.Polyline{
		mapline.Geo(37.7749, -122.4194),
		mapline.Geo(37.3352, -122.0322),
		mapline.Geo(34.0522, -118.2437),
	}
}

// ParsePolyline extracts the first line from a GeoJSON FeatureCollection,
// Feature or bare geometry. LineString, MultiLineString (first line) and
// MultiPoint geometries are accepted.
func ParsePolyline(data []byte) (mapline.Polyline, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("geoio: decode: %w", err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("geoio: decode feature collection: %w", err)
		}
		for _, f := range fc.Features {
			if pl, ok := fromGeometry(f.Geometry); ok {
				return pl, nil
			}
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("geoio: decode feature: %w", err)
		}
		if pl, ok := fromGeometry(f.Geometry); ok {
			return pl, nil
		}
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("geoio: decode geometry: %w", err)
		}
		if pl, ok := fromGeometry(g.Geometry()); ok {
			return pl, nil
		}
	}
	return nil, ErrNoLineString
}

func fromGeometry(g orb.Geometry) (mapline.Polyline, bool) {
	switch g := g.(type) {
	case orb.LineString:
		return toPolyline(g), true
	case orb.MultiLineString:
		if len(g) > 0 {
			return toPolyline(g[0]), true
		}
	case orb.MultiPoint:
		return toPolyline(g), true
	}
	return nil, false
}

func toPolyline[P ~[]orb.Point](pts P) mapline.Polyline {
	pl := make(mapline.Polyline, len(pts))
	for i, p := range pts {
		pl[i] = mapline.Geo(p.Lat(), p.Lon())
	}
	return pl
}

// LoadPolyline reads a GeoJSON file and parses it with ParsePolyline.
func LoadPolyline(path string) (mapline.Polyline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geoio: %w", err)
	}
	pl, err := ParsePolyline(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pl, nil
}

// LineString converts a polyline to an orb LineString.
func LineString(pl mapline.Polyline) orb.LineString {
	ls := make(orb.LineString, len(pl))
	for i, p := range pl {
		ls[i] = orb.Point{p.Longitude, p.Latitude}
	}
	return ls
}

// EncodeLineString encodes pl as a GeoJSON Feature with a LineString geometry.
func EncodeLineString(pl mapline.Polyline) ([]byte, error) {
	f := geojson.NewFeature(LineString(pl))
	data, err := f.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("geoio: encode: %w", err)
	}
	return data, nil
}
