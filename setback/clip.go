package setback

import "github.com/groundplan/groundplan/geo"

// clipEps tolerates points sitting numerically on a clip edge.
const clipEps = 1e-9

// clipRing clips the subject ring against every edge of the clip ring
// (Sutherland-Hodgman). The result is exact for convex clip rings; for
// concave parcels it may over-trim, which the callers' area checks
// catch and route into the next fallback tier. Returns the open
// clipped ring, possibly empty.
func clipRing(subject, clip geo.LocalRing) geo.LocalRing {
	clipPts := openLocal(clip)
	if len(clipPts) < 3 {
		return nil
	}
	// Inside is the left of each directed clip edge; walk the clip
	// ring counterclockwise so that holds.
	if clip.IsClockwise() {
		reversed := make(geo.LocalRing, len(clipPts))
		for i, p := range clipPts {
			reversed[len(clipPts)-1-i] = p
		}
		clipPts = reversed
	}

	output := openLocal(subject).Clone()
	for i := 0; i < len(clipPts) && len(output) > 0; i++ {
		a, b := clipPts[i], clipPts[(i+1)%len(clipPts)]
		input := output
		output = nil
		for j := range input {
			cur := input[j]
			prev := input[(j+len(input)-1)%len(input)]
			curIn := sideOf(a, b, cur) >= -clipEps
			prevIn := sideOf(a, b, prev) >= -clipEps
			switch {
			case curIn && prevIn:
				output = append(output, cur)
			case curIn && !prevIn:
				if x, ok := geo.SegmentIntersection(prev, cur, a, b, true); ok {
					output = append(output, x)
				}
				output = append(output, cur)
			case !curIn && prevIn:
				if x, ok := geo.SegmentIntersection(prev, cur, a, b, true); ok {
					output = append(output, x)
				}
			}
		}
	}
	return dedupe(output)
}

// sideOf returns positive when p is left of the directed line a->b.
func sideOf(a, b, p geo.XY) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// dedupe removes consecutive near-duplicate points introduced by
// clipping along shared edges.
func dedupe(lr geo.LocalRing) geo.LocalRing {
	if len(lr) < 2 {
		return lr
	}
	out := make(geo.LocalRing, 0, len(lr))
	for _, p := range lr {
		if len(out) > 0 && geo.DistanceXY(out[len(out)-1], p) < 1e-7 {
			continue
		}
		out = append(out, p)
	}
	if len(out) >= 2 && geo.DistanceXY(out[0], out[len(out)-1]) < 1e-7 {
		out = out[:len(out)-1]
	}
	return out
}
