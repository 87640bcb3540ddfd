package groundplan

import (
	"errors"
	"fmt"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/geomio"
	"github.com/groundplan/groundplan/model"
	"github.com/groundplan/groundplan/render"
	"github.com/groundplan/groundplan/setback"
	"github.com/groundplan/groundplan/shape"
)

// ErrNoParcel is returned by Plan when no parcel source was given.
var ErrNoParcel = errors.New("groundplan: no parcel source")

// Planner provides a fluent interface for configuring a plan
// computation. Each configuration method returns a new Planner
// instance, making it safe to branch chains and reuse prefixes.
type Planner struct {
	// Parcel source: exactly one of these is used, checked in order.
	parcel  geo.Ring
	payload []byte
	path    string

	options planOptions

	// Accumulated error (fail-fast).
	err error
}

// clone creates a shallow copy of the Planner with a deep copy of
// options, so each chain method returns an independent instance.
func (p *Planner) clone() *Planner {
	return &Planner{
		parcel:  p.parcel,
		payload: p.payload,
		path:    p.path,
		options: p.options.clone(),
		err:     p.err,
	}
}

// Rules sets the setback ruleset directly.
func (p *Planner) Rules(r setback.Ruleset) *Planner {
	np := p.clone()
	np.options.rules = &r
	np.options.rulesPath = ""
	return np
}

// RulesFile sets a YAML ruleset file, loaded when Plan is called.
func (p *Planner) RulesFile(path string) *Planner {
	np := p.clone()
	np.options.rules = nil
	np.options.rulesPath = path
	return np
}

// FrontEdge selects the street-facing boundary edge by index, enabling
// directional setbacks.
func (p *Planner) FrontEdge(index int) *Planner {
	np := p.clone()
	if index < 0 {
		np.err = fmt.Errorf("groundplan: front edge index %d is negative", index)
		return np
	}
	np.options.frontEdge = index
	np.options.facade = nil
	return np
}

// Facade selects the street-facing edge by an explicit segment, as
// delivered by a map click. The segment is matched to the nearest
// boundary edge.
func (p *Planner) Facade(seg model.FacadeSegment) *Planner {
	np := p.clone()
	np.options.facade = &seg
	np.options.frontEdge = -1
	return np
}

// SetbackConfig overrides the envelope engine tunables.
func (p *Planner) SetbackConfig(cfg setback.Config) *Planner {
	np := p.clone()
	np.options.setbackCfg = cfg
	return np
}

// ShapeConfig overrides the shape engine tunables.
func (p *Planner) ShapeConfig(cfg shape.Config) *Planner {
	np := p.clone()
	np.options.shapeCfg = cfg
	return np
}

// RenderConfig overrides the PNG rendering options.
func (p *Planner) RenderConfig(cfg render.Config) *Planner {
	np := p.clone()
	np.options.renderCfg = cfg
	return np
}

// Snap overrides the shape engine's snapping settings.
func (p *Planner) Snap(s shape.SnapSettings) *Planner {
	np := p.clone()
	np.options.snap = s
	return np
}

// NoHatch disables hatch-line generation.
func (p *Planner) NoHatch() *Planner {
	np := p.clone()
	np.options.hatch = false
	return np
}

// Plan resolves the parcel, rules, and facade selection and computes
// the buildable envelope, forbidden-zone bands, and hatching. Envelope
// computation degrades instead of failing: with unusable rules the
// plan's envelope is the parcel itself.
func (p *Planner) Plan() (*Plan, error) {
	if p.err != nil {
		return nil, p.err
	}
	parcel, err := p.resolveParcel()
	if err != nil {
		return nil, err
	}
	rules, err := p.resolveRules()
	if err != nil {
		return nil, err
	}
	facade, err := p.resolveFacade(parcel)
	if err != nil {
		return nil, err
	}

	sb := rules.Resolve(facade != nil)
	res := setback.ComputeEnvelope(parcel, facade, sb, p.options.setbackCfg)
	frame := geo.FrameForRing(parcel)
	bands := setback.ComputeBands(parcel, res.EnvelopeRing, res.Segments, frame)

	var hatch []model.HatchLine
	if p.options.hatch {
		hatch = setback.ComputeHatch(parcel, res.Envelope, p.options.setbackCfg)
	}

	return &Plan{
		parcel:  parcel,
		result:  res,
		bands:   bands,
		hatch:   hatch,
		options: p.options.clone(),
	}, nil
}

func (p *Planner) resolveParcel() (geo.Ring, error) {
	switch {
	case len(p.parcel) > 0:
		return p.parcel, nil
	case len(p.payload) > 0:
		return geomio.ParseParcel(p.payload)
	case p.path != "":
		return geomio.LoadParcel(p.path)
	default:
		return nil, ErrNoParcel
	}
}

func (p *Planner) resolveRules() (setback.Ruleset, error) {
	if p.options.rules != nil {
		return *p.options.rules, nil
	}
	if p.options.rulesPath != "" {
		return setback.LoadRuleset(p.options.rulesPath)
	}
	// No rules at all: Resolve yields HasData false and the envelope
	// engine returns the parcel unchanged.
	return setback.Ruleset{}, nil
}

func (p *Planner) resolveFacade(parcel geo.Ring) (*model.FacadeSegment, error) {
	if p.options.facade != nil {
		f := *p.options.facade
		return &f, nil
	}
	if p.options.frontEdge < 0 {
		return nil, nil
	}
	open := parcel.Open()
	if p.options.frontEdge >= len(open) {
		return nil, fmt.Errorf("groundplan: front edge index %d out of range (parcel has %d edges)",
			p.options.frontEdge, len(open))
	}
	i := p.options.frontEdge
	return &model.FacadeSegment{
		Start:     open[i],
		End:       open[(i+1)%len(open)],
		EdgeIndex: i,
	}, nil
}
