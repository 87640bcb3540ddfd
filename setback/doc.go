// Package setback derives the legally buildable envelope of a land
// parcel from its boundary, an optional user-selected front facade,
// and per-facade minimum distances.
//
// # Pipeline
//
// The package implements three stages, in dependency order:
//
//  1. [Classify] - labels every boundary edge front, lateral, or rear
//     relative to the selected facade (all lateral when none is set).
//  2. [ComputeEnvelope] - offsets each edge inward by its category's
//     distance, stitches the offset edges back into a closed ring, and
//     intersects the result with the parcel.
//  3. [ComputeBands] and [ComputeHatch] - derive the forbidden strip
//     between parcel and envelope for visualization.
//
// # Robustness Contract
//
// The envelope computation never fails and never returns nil. It
// degrades through three tiers:
//
//   - directional: per-category offsets stitched by line intersection
//   - uniform: a single inward buffer by the maximum distance
//   - identity: the parcel itself, unchanged
//
// A tier is abandoned when it produces fewer than three usable points,
// a degenerate ring, or an area not strictly smaller than the parcel.
// Whatever tier succeeds, the envelope is a subset of the parcel.
//
// # Configuration
//
// Heuristic constants (facade matching tolerance, rear-edge scoring
// weights, stitch guards, hatch geometry) live in [Config] and can be
// tuned without touching the algorithms:
//
//	cfg := setback.DefaultConfig()
//	cfg.RearAxisCutoffDeg = 75
//	res := setback.ComputeEnvelope(parcel, facade, sb, cfg)
package setback
