package groundplan

import (
	"github.com/groundplan/groundplan/model"
	"github.com/groundplan/groundplan/render"
	"github.com/groundplan/groundplan/setback"
	"github.com/groundplan/groundplan/shape"
)

// planOptions holds configuration for plan computation.
type planOptions struct {
	// Setback rules, either inline or loaded from a file at Plan time.
	rules     *setback.Ruleset
	rulesPath string

	// Facade selection: an explicit segment, or a parcel edge index.
	// frontEdge is -1 when unset.
	facade    *model.FacadeSegment
	frontEdge int

	// Engine tunables.
	setbackCfg setback.Config
	shapeCfg   shape.Config
	renderCfg  render.Config
	snap       shape.SnapSettings

	// Hatching is on by default; large parcels may disable it.
	hatch bool
}

// defaultOptions returns the default plan options.
func defaultOptions() planOptions {
	return planOptions{
		frontEdge:  -1,
		setbackCfg: setback.DefaultConfig(),
		shapeCfg:   shape.DefaultConfig(),
		renderCfg:  render.DefaultConfig(),
		snap:       shape.DefaultSnapSettings(),
		hatch:      true,
	}
}

// clone creates a deep copy of planOptions.
func (o planOptions) clone() planOptions {
	newOpts := o
	if o.rules != nil {
		r := *o.rules
		newOpts.rules = &r
	}
	if o.facade != nil {
		f := *o.facade
		newOpts.facade = &f
	}
	return newOpts
}
