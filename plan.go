package groundplan

import (
	"math"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/geomio"
	"github.com/groundplan/groundplan/model"
	"github.com/groundplan/groundplan/render"
	"github.com/groundplan/groundplan/setback"
	"github.com/groundplan/groundplan/shape"
)

// Plan is the computed result for one parcel: envelope, forbidden-zone
// bands, hatching, and the classified boundary. Plans are immutable;
// interactive state lives in the engine returned by Engine.
type Plan struct {
	parcel  geo.Ring
	result  setback.Result
	bands   model.Bands
	hatch   []model.HatchLine
	options planOptions
}

// Parcel returns the parcel boundary.
func (p *Plan) Parcel() geo.Ring {
	return p.parcel.Clone()
}

// Envelope returns the buildable envelope. It is never empty: when the
// rules could not be applied the parcel itself is returned.
func (p *Plan) Envelope() geo.Ring {
	return p.result.Envelope.Clone()
}

// Segments returns the classified boundary edges.
func (p *Plan) Segments() []model.Segment {
	out := make([]model.Segment, len(p.result.Segments))
	copy(out, p.result.Segments)
	return out
}

// Setbacks returns the applied distances and mode.
func (p *Plan) Setbacks() model.Setbacks {
	return p.result.Setbacks
}

// Bands returns the forbidden strips between parcel and envelope,
// grouped by facade category.
func (p *Plan) Bands() model.Bands {
	return p.bands
}

// Hatch returns the hatch lines filling the forbidden zone.
func (p *Plan) Hatch() []model.HatchLine {
	out := make([]model.HatchLine, len(p.hatch))
	copy(out, p.hatch)
	return out
}

// ParcelAreaM2 returns the parcel area in square meters.
func (p *Plan) ParcelAreaM2() float64 {
	return math.Abs(p.parcel.Area())
}

// EnvelopeAreaM2 returns the buildable area in square meters.
func (p *Plan) EnvelopeAreaM2() float64 {
	return math.Abs(p.result.Envelope.Area())
}

// Engine returns a new interactive shape engine bounded by the plan's
// envelope. Engines are independent; call once and keep the result.
func (p *Plan) Engine() *shape.Engine {
	eng := shape.NewEngine(p.options.shapeCfg)
	eng.SetSnapSettings(p.options.snap)
	eng.SetEnvelope(p.result.Envelope)
	return eng
}

// GeoJSON encodes the plan, plus any drawn objects, as a GeoJSON
// feature collection.
func (p *Plan) GeoJSON(objects []*model.DrawnObject) ([]byte, error) {
	return geomio.MarshalPlan(geomio.Export{
		Parcel:  p.parcel,
		Result:  &p.result,
		Bands:   &p.bands,
		Hatch:   p.hatch,
		Objects: objects,
	})
}

// WritePNG renders the plan to a PNG file. eng may be nil for a bare
// setback rendering.
func (p *Plan) WritePNG(path string, eng *shape.Engine) error {
	scene := render.Scene{
		Parcel:   p.parcel,
		Envelope: p.result.Envelope,
		Bands:    &p.bands,
		Hatch:    p.hatch,
	}
	if eng != nil {
		scene.Objects = eng.Objects()
		scene.ActiveID = eng.ActiveID()
		scene.Guides = eng.Guides()
		if id := eng.ActiveID(); id != "" {
			scene.Handles = eng.Handles(id)
		}
	}
	return render.SavePNG(path, scene, p.options.renderCfg)
}
