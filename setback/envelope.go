package setback

import (
	"math"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

// Result is the outcome of an envelope computation. Envelope is always
// a usable closed ring: the buildable region, or the parcel itself
// when every tier degenerated. EnvelopeRing is the stitched offset
// ring before intersection with the parcel; vertex i is the inward
// image of parcel vertex i, so its edges correspond one-to-one with
// parcel edges, which the band generator relies on.
type Result struct {
	Envelope     geo.Ring
	EnvelopeRing geo.Ring
	Segments     []model.Segment
	Setbacks     model.Setbacks
}

// offsetEdge is one boundary edge pushed inward by its setback.
type offsetEdge struct {
	a, b  geo.XY // offset endpoints
	origB geo.XY // original vertex shared with the next edge
}

// ComputeEnvelope derives the buildable envelope from a parcel
// boundary, an optional facade selection, and resolved setbacks. It
// never returns a nil or degenerate envelope: directional offsetting
// is tried first, then a uniform buffer by the maximum distance, and
// finally the parcel itself.
func ComputeEnvelope(parcel geo.Ring, facade *model.FacadeSegment, sb model.Setbacks, cfg Config) Result {
	parcel = parcel.Close()
	segments := Classify(parcel, facade, cfg)

	res := Result{
		Envelope:     parcel.Clone(),
		EnvelopeRing: parcel.Clone(),
		Segments:     segments,
		Setbacks:     sb,
	}
	if len(parcel.Open()) < 3 || sb.Zero() || !sb.HasData {
		return res
	}

	frame := geo.FrameForRing(parcel)
	localParcel := frame.ToLocalRing(parcel)
	parcelArea := math.Abs(localParcel.SignedArea())
	if parcelArea <= 0 {
		return res
	}

	hasFront := false
	for i := range segments {
		if segments[i].Category == model.CategoryFront {
			hasFront = true
			break
		}
	}

	// Tier 1: directional offsets, only meaningful with a front edge.
	if sb.Mode == model.ModeDirectional {
		if hasFront {
			if ring, ok := offsetAndStitch(localParcel, segments, sb, false, cfg); ok {
				if env, ok := acceptEnvelope(ring, localParcel, parcelArea); ok {
					res.EnvelopeRing = frame.FromLocalRing(closeLocal(ring))
					res.Envelope = frame.FromLocalRing(closeLocal(env))
					return res
				}
			}
		}
		// The tiers below apply the maximum distance uniformly.
		res.Setbacks.Mode = model.ModeFallbackUniform
	}

	// Tier 2: uniform inward buffer by the maximum distance.
	if ring, ok := offsetAndStitch(localParcel, segments, sb, true, cfg); ok {
		if env, ok := acceptEnvelope(ring, localParcel, parcelArea); ok {
			res.EnvelopeRing = frame.FromLocalRing(closeLocal(ring))
			res.Envelope = frame.FromLocalRing(closeLocal(env))
			return res
		}
	}

	// Tier 3: identity. The parcel itself is the bound.
	return res
}

// offsetAndStitch pushes every usable edge inward and reconnects the
// offset edges by extended line intersection. When an intersection is
// missing (parallel edges) or lands implausibly far from the original
// vertex, the corner falls back to the midpoint of the two offset
// endpoints instead of projecting toward infinity.
func offsetAndStitch(localParcel geo.LocalRing, segments []model.Segment, sb model.Setbacks, uniform bool, cfg Config) (geo.LocalRing, bool) {
	pts := openLocal(localParcel)
	n := len(pts)
	if n < 3 || n != len(segments) {
		return nil, false
	}

	// Interior side: left of travel for counterclockwise rings.
	ccw := !localParcel.IsClockwise()

	edges := make([]offsetEdge, n)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length < cfg.MinEdgeM {
			// Too short for a stable normal. Kept in place so that
			// vertex correspondence with the parcel holds.
			edges[i] = offsetEdge{a: a, b: b, origB: b}
			continue
		}
		dist := sb.MaxM
		if !uniform {
			dist = sb.ForCategory(segments[i].Category)
		}
		nx, ny := -dy/length, dx/length
		if !ccw {
			nx, ny = -nx, -ny
		}
		edges[i] = offsetEdge{
			a:     geo.XY{X: a.X + nx*dist, Y: a.Y + ny*dist},
			b:     geo.XY{X: b.X + nx*dist, Y: b.Y + ny*dist},
			origB: b,
		}
	}

	guard := cfg.StitchGuardFactor*sb.MaxM + cfg.StitchGuardSlackM
	// Corner i is where offset edges i-1 and i meet: the inward image
	// of parcel vertex i. Stitched edge i then spans the offset of
	// parcel edge i.
	ring := make(geo.LocalRing, n)
	for i := 0; i < n; i++ {
		prev, cur := edges[(i-1+n)%n], edges[i]
		corner, ok := geo.SegmentIntersection(prev.a, prev.b, cur.a, cur.b, true)
		if !ok || geo.DistanceXY(corner, prev.origB) > guard {
			corner = geo.XY{X: (prev.b.X + cur.a.X) / 2, Y: (prev.b.Y + cur.a.Y) / 2}
		}
		ring[i] = corner
	}
	return ring, true
}

// acceptEnvelope intersects a stitched ring with the parcel and
// validates the outcome: at least three points and an area strictly
// between zero and the parcel's.
func acceptEnvelope(ring, localParcel geo.LocalRing, parcelArea float64) (geo.LocalRing, bool) {
	if math.Abs(ring.SignedArea()) <= 0 {
		return nil, false
	}
	env := clipRing(ring, localParcel)
	if len(env) < 3 {
		return nil, false
	}
	area := math.Abs(env.SignedArea())
	if area <= 0 || area >= parcelArea {
		return nil, false
	}
	return env, true
}

func openLocal(lr geo.LocalRing) geo.LocalRing {
	if len(lr) >= 2 && lr[0] == lr[len(lr)-1] {
		return lr[:len(lr)-1]
	}
	return lr
}

func closeLocal(lr geo.LocalRing) geo.LocalRing {
	if len(lr) == 0 || (len(lr) >= 2 && lr[0] == lr[len(lr)-1]) {
		return lr
	}
	out := make(geo.LocalRing, len(lr)+1)
	copy(out, lr)
	out[len(lr)] = lr[0]
	return out
}
