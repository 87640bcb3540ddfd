package geomio

import (
	"encoding/json"
	"fmt"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
	"github.com/groundplan/groundplan/setback"
)

// Export is everything a plan writes to GeoJSON. Nil or empty fields
// are skipped, so a bare parcel exports cleanly.
type Export struct {
	Parcel  geo.Ring
	Result  *setback.Result
	Bands   *model.Bands
	Hatch   []model.HatchLine
	Objects []*model.DrawnObject
}

// MarshalPlan encodes an export as a GeoJSON feature collection. Each
// feature carries a "layer" property (parcel, envelope, band, hatch,
// object) so downstream tools can filter by role.
func MarshalPlan(e Export) ([]byte, error) {
	fc := geojson.FeatureCollection{}

	if len(e.Parcel) > 0 {
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry:   polygonGeom(e.Parcel),
			Properties: map[string]interface{}{"layer": "parcel"},
		})
	}
	if e.Result != nil && len(e.Result.Envelope) > 0 {
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry: polygonGeom(e.Result.Envelope),
			Properties: map[string]interface{}{
				"layer": "envelope",
				"mode":  string(e.Result.Setbacks.Mode),
			},
		})
	}
	if e.Bands != nil {
		for _, band := range []struct {
			category string
			rings    []geo.Ring
		}{
			{"front", e.Bands.Front},
			{"lateral", e.Bands.Lateral},
			{"rear", e.Bands.Rear},
		} {
			for _, ring := range band.rings {
				fc.Features = append(fc.Features, &geojson.Feature{
					Geometry: polygonGeom(ring),
					Properties: map[string]interface{}{
						"layer":    "band",
						"category": band.category,
					},
				})
			}
		}
	}
	for _, h := range e.Hatch {
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry:   lineGeom(h.A, h.B),
			Properties: map[string]interface{}{"layer": "hatch"},
		})
	}
	for _, o := range e.Objects {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       o.ID,
			Geometry: polygonGeom(o.Polygon),
			Properties: map[string]interface{}{
				"layer":   "object",
				"kind":    string(o.Kind),
				"area_m2": o.AreaM2,
				"version": o.Version,
			},
		})
	}

	data, err := json.Marshal(&fc)
	if err != nil {
		return nil, fmt.Errorf("geomio: marshal plan: %w", err)
	}
	return data, nil
}

func polygonGeom(ring geo.Ring) *geom.Polygon {
	closed := ring.Close()
	flat := make([]float64, 0, len(closed)*2)
	for _, p := range closed {
		flat = append(flat, p.Lng, p.Lat)
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}

func lineGeom(a, b geo.Point) *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, []float64{a.Lng, a.Lat, b.Lng, b.Lat})
}
