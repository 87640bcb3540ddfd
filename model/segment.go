package model

import "github.com/groundplan/groundplan/geo"

// FacadeCategory classifies a boundary edge relative to the selected
// front facade.
type FacadeCategory string

// Facade categories.
const (
	CategoryFront   FacadeCategory = "front"
	CategoryLateral FacadeCategory = "lateral"
	CategoryRear    FacadeCategory = "rear"
)

// FacadeSegment is the boundary edge the user selected as the parcel's
// front. EdgeIndex is a hint used when the midpoint match fails; a
// negative value means no hint.
type FacadeSegment struct {
	Start     geo.Point
	End       geo.Point
	EdgeIndex int
}

// Segment is one classified boundary edge. Segments are recomputed
// whenever the parcel or facade selection changes and are never
// persisted independently.
type Segment struct {
	Start      geo.Point
	End        geo.Point
	Index      int
	Category   FacadeCategory
	LengthM    float64
	BearingDeg float64
	Midpoint   geo.Point
}

// SetbackMode identifies how setback distances were applied.
type SetbackMode string

// Setback application modes. Directional mode requires a selected
// facade; uniform mode applies the maximum distance on every edge;
// fallback-uniform means a directional reconstruction was attempted
// and degenerated into the uniform tier.
const (
	ModeDirectional     SetbackMode = "directional"
	ModeUniform         SetbackMode = "uniform"
	ModeFallbackUniform SetbackMode = "fallback-uniform"
)

// Setbacks holds the per-category minimum distances resolved from an
// external ruleset, plus the flags the envelope engine needs. Values
// are derived, never mutated in place.
type Setbacks struct {
	FrontM    float64
	LateralM  float64
	RearM     float64
	MaxM      float64
	Mode      SetbackMode
	HasData   bool
	HasFacade bool
}

// Zero reports whether no setback distance is positive.
func (s Setbacks) Zero() bool {
	return s.FrontM <= 0 && s.LateralM <= 0 && s.RearM <= 0
}

// ForCategory returns the distance applicable to a facade category.
func (s Setbacks) ForCategory(c FacadeCategory) float64 {
	switch c {
	case CategoryFront:
		return s.FrontM
	case CategoryRear:
		return s.RearM
	default:
		return s.LateralM
	}
}
