package geomio

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/groundplan/groundplan/geo"
)

// Decode errors.
var (
	ErrUnknownFormat = errors.New("geomio: unrecognized parcel format")
	ErrNoPolygon     = errors.New("geomio: payload contains no polygon")
	ErrDegenerate    = errors.New("geomio: parcel ring has fewer than 3 vertices")
)

// ParseParcel decodes a parcel boundary from a GeoJSON payload or a
// bare [[lng, lat], ...] coordinate array. For feature collections the
// first polygonal feature wins; for multipolygons the largest part
// wins. The returned ring is closed.
func ParseParcel(data []byte) (geo.Ring, error) {
	switch Detect(data) {
	case GeoJSON:
		return parseGeoJSON(data)
	case CoordinateArray:
		return parseCoordinateArray(data)
	default:
		return nil, ErrUnknownFormat
	}
}

// LoadParcel reads and decodes a parcel boundary file.
func LoadParcel(path string) (geo.Ring, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geomio: read parcel: %w", err)
	}
	return ParseParcel(data)
}

func parseGeoJSON(data []byte) (geo.Ring, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("geomio: parse geojson: %w", err)
	}

	switch probe.Type {
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("geomio: parse feature collection: %w", err)
		}
		for _, f := range fc.Features {
			if ring, err := ringFromGeom(f.Geometry); err == nil {
				return ring, nil
			}
		}
		return nil, ErrNoPolygon
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("geomio: parse feature: %w", err)
		}
		return ringFromGeom(f.Geometry)
	default:
		var g geom.T
		if err := geojson.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("geomio: parse geometry: %w", err)
		}
		return ringFromGeom(g)
	}
}

func parseCoordinateArray(data []byte) (geo.Ring, error) {
	var coords [][]float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return nil, fmt.Errorf("geomio: parse coordinate array: %w", err)
	}
	ring := make(geo.Ring, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			return nil, ErrDegenerate
		}
		ring = append(ring, geo.Point{Lng: c[0], Lat: c[1]})
	}
	return validRing(ring)
}

// ringFromGeom extracts the exterior ring of a polygonal geometry.
func ringFromGeom(g geom.T) (geo.Ring, error) {
	switch v := g.(type) {
	case *geom.Polygon:
		if v.NumLinearRings() == 0 {
			return nil, ErrNoPolygon
		}
		return validRing(ringFromCoords(v.LinearRing(0).Coords()))
	case *geom.MultiPolygon:
		best, bestArea := geo.Ring(nil), 0.0
		for i := 0; i < v.NumPolygons(); i++ {
			p := v.Polygon(i)
			if p.NumLinearRings() == 0 {
				continue
			}
			ring := ringFromCoords(p.LinearRing(0).Coords())
			if a := math.Abs(ring.Area()); a > bestArea {
				best, bestArea = ring, a
			}
		}
		if best == nil {
			return nil, ErrNoPolygon
		}
		return validRing(best)
	default:
		return nil, ErrNoPolygon
	}
}

func ringFromCoords(coords []geom.Coord) geo.Ring {
	ring := make(geo.Ring, 0, len(coords))
	for _, c := range coords {
		ring = append(ring, geo.Point{Lng: c[0], Lat: c[1]})
	}
	return ring
}

func validRing(ring geo.Ring) (geo.Ring, error) {
	if len(ring.Open()) < 3 {
		return nil, ErrDegenerate
	}
	return ring.Close(), nil
}
