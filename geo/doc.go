// Package geo provides the geometric foundation for site planning:
// geographic points and rings, a local tangent-plane projection, and
// the low-level primitives every other package builds on.
//
// # Coordinate Systems
//
// Two coordinate systems are used throughout:
//
//   - [Point] - geographic coordinates (longitude, latitude in degrees)
//   - [XY] - local coordinates (meters east/north of a frame origin)
//
// All distance, offset, and intersection math happens in local meters,
// because degree-based math is nonlinear away from the equator. A
// [Frame] converts between the two systems using an equirectangular
// approximation centered on the feature of interest:
//
//	frame := geo.FrameForRing(parcel)
//	local := frame.ToLocalRing(parcel)
//	// ... meter-space math ...
//	result := frame.FromLocalRing(local)
//
// The approximation is accurate to well under setback tolerances for
// features up to a few kilometers across, which covers any land parcel.
//
// # Failure Semantics
//
// Primitives that can fail numerically (parallel segments, degenerate
// rings) report failure through an ok bool or a zero value. Nothing in
// this package panics on near-degenerate input; callers are expected
// to have a fallback.
package geo
