package shape

// Config holds the engine's tunable constants.
type Config struct {
	// Template sizing: target area as a fraction of envelope area,
	// per object kind.
	BuildingAreaFraction float64
	ParkingAreaFraction  float64

	// MaxSideFraction caps the template base dimension at this
	// fraction of the envelope's shorter bounding-box side.
	MaxSideFraction float64

	// MinDimM and MaxDimM clamp the template base dimension.
	MinDimM float64
	MaxDimM float64

	// FitAttempts and FitShrink control the template retry loop.
	FitAttempts int
	FitShrink   float64

	// ScaleMin and ScaleMax clamp interactive scaling.
	ScaleMin float64
	ScaleMax float64

	// RotateSnapDeg is the rotation increment when angle snapping is
	// on and no free-rotation modifier is held.
	RotateSnapDeg float64

	// HistoryLimit bounds the undo history.
	HistoryLimit int

	// ContainmentTolM is how far outside the envelope a vertex may sit
	// (floating-point slack) and still count as contained.
	ContainmentTolM float64
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		BuildingAreaFraction: 0.12,
		ParkingAreaFraction:  0.06,
		MaxSideFraction:      0.35,
		MinDimM:              5,
		MaxDimM:              50,
		FitAttempts:          5,
		FitShrink:            0.85,
		ScaleMin:             0.2,
		ScaleMax:             5,
		RotateSnapDeg:        5,
		HistoryLimit:         50,
		ContainmentTolM:      0.01,
	}
}

// SnapSettings is the process-wide snapping configuration. It is
// mutated only through Engine.SetSnapSettings and affects every
// subsequent transform and creation call.
type SnapSettings struct {
	// Enabled gates all snapping.
	Enabled bool
	// GridM is the grid size in meters.
	GridM float64
	// Angle enables 5-degree rotation snapping.
	Angle bool
	// Envelope enables snapping moved objects onto nearby envelope
	// edges (within 3x the grid size).
	Envelope bool
	// Objects enables advisory alignment guides against other
	// objects' centroids (within 2x the grid size).
	Objects bool
	// ToleranceM overrides the envelope snap distance when positive;
	// zero means 3x the grid size.
	ToleranceM float64
}

// DefaultSnapSettings returns snapping defaults: everything on, 1 m grid.
func DefaultSnapSettings() SnapSettings {
	return SnapSettings{
		Enabled:  true,
		GridM:    1,
		Angle:    true,
		Envelope: true,
		Objects:  true,
	}
}

// envelopeSnapDist returns the effective envelope snap threshold.
func (s SnapSettings) envelopeSnapDist() float64 {
	if s.ToleranceM > 0 {
		return s.ToleranceM
	}
	return 3 * s.GridM
}

// guideDist returns the effective alignment-guide threshold.
func (s SnapSettings) guideDist() float64 {
	return 2 * s.GridM
}
