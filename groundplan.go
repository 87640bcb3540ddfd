// Package groundplan provides a fluent API for site-planning geometry:
// it derives the buildable envelope of a parcel from setback rules and
// hands back an interactive engine for placing building and parking
// footprints inside it.
//
// Basic usage:
//
//	plan, err := groundplan.FromFile("parcel.geojson").
//	    RulesFile("zone.yaml").
//	    Plan()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Printf("buildable area: %.0f m2\n", plan.EnvelopeAreaM2())
//
// With a known street-facing edge the setbacks apply directionally:
//
//	plan, err := groundplan.FromRing(parcel).
//	    Rules(ruleset).
//	    FrontEdge(0).
//	    Plan()
//
// Interactive editing runs through the plan's engine:
//
//	eng := plan.Engine()
//	id, err := eng.CreateFromTemplate(shape.TemplateRectangle, model.KindBuilding)
//
// For advanced use the lower-level geo, setback, and shape packages
// are also available.
package groundplan

import (
	"github.com/groundplan/groundplan/geo"
)

// FromFile starts a planner from a parcel boundary file (GeoJSON or a
// bare coordinate array). The file is read when Plan is called.
func FromFile(path string) *Planner {
	return &Planner{
		path:    path,
		options: defaultOptions(),
	}
}

// FromGeoJSON starts a planner from an in-memory parcel payload.
func FromGeoJSON(data []byte) *Planner {
	return &Planner{
		payload: append([]byte(nil), data...),
		options: defaultOptions(),
	}
}

// FromRing starts a planner from an already decoded parcel boundary.
func FromRing(parcel geo.Ring) *Planner {
	return &Planner{
		parcel:  parcel.Close(),
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts and
// tests where error handling would be cumbersome.
//
// Example:
//
//	plan := groundplan.Must(groundplan.FromFile("parcel.geojson").Plan())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
