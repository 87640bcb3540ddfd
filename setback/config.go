package setback

// Config holds the tunable constants of the setback pipeline. The
// rear-edge scoring values are empirical; they resolve the common
// quadrilateral case and degrade to "best available edge" on irregular
// parcels.
type Config struct {
	// FacadeMatchToleranceM is the maximum distance between the
	// selected facade's midpoint and a boundary edge's midpoint for
	// the two to be considered the same edge.
	FacadeMatchToleranceM float64

	// RearAxisCutoffDeg is how far off the opposite-of-front bearing
	// an edge may point and still be scored as axis-aligned.
	RearAxisCutoffDeg float64

	// RearAxisWeight is the weight of axis alignment relative to
	// distance from the front edge when scoring rear candidates.
	RearAxisWeight float64

	// OffAxisDiscount multiplies the distance score of edges beyond
	// the axis cutoff.
	OffAxisDiscount float64

	// StitchGuardFactor and StitchGuardSlackM bound how far a stitched
	// corner may land from its original vertex: factor*maxSetback+slack.
	// Beyond that the corner falls back to the offset-endpoint midpoint.
	StitchGuardFactor float64
	StitchGuardSlackM float64

	// MinEdgeM is the edge length below which a boundary edge is
	// ignored during offsetting.
	MinEdgeM float64

	// Hatch geometry: spacing between sweep lines, their angle in
	// degrees clockwise from north, and the minimum emitted segment.
	HatchSpacingM float64
	HatchAngleDeg float64
	MinHatchSegM  float64
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		FacadeMatchToleranceM: 10,
		RearAxisCutoffDeg:     60,
		RearAxisWeight:        3,
		OffAxisDiscount:       0.25,
		StitchGuardFactor:     3,
		StitchGuardSlackM:     50,
		MinEdgeM:              0.01,
		HatchSpacingM:         2,
		HatchAngleDeg:         45,
		MinHatchSegM:          0.5,
	}
}
