package setback

import (
	"math"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

// Classify labels every boundary edge of the parcel relative to the
// selected facade. Every edge starts lateral; when a facade is
// supplied and the boundary has at least three edges, the matching
// edge becomes front and the best opposite candidate becomes rear.
// Without a facade the classification stays lateral-only and the
// envelope engine must use uniform-mode setbacks.
func Classify(parcel geo.Ring, facade *model.FacadeSegment, cfg Config) []model.Segment {
	pts := parcel.Open()
	n := len(pts)
	if n < 2 {
		return nil
	}

	segments := make([]model.Segment, n)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		segments[i] = model.Segment{
			Start:      a,
			End:        b,
			Index:      i,
			Category:   model.CategoryLateral,
			LengthM:    geo.Distance(a, b),
			BearingDeg: geo.Bearing(a, b),
			Midpoint:   geo.Midpoint(a, b),
		}
	}

	if facade == nil || n < 3 {
		return segments
	}

	frontIdx := matchFacadeEdge(segments, facade, cfg)
	if frontIdx < 0 {
		return segments
	}
	segments[frontIdx].Category = model.CategoryFront

	if rearIdx := selectRearEdge(segments, frontIdx, cfg); rearIdx >= 0 {
		segments[rearIdx].Category = model.CategoryRear
	}
	return segments
}

// matchFacadeEdge finds the boundary edge matching the facade segment:
// nearest midpoint within tolerance, falling back to the caller-supplied
// edge index. Returns -1 when neither resolves.
func matchFacadeEdge(segments []model.Segment, facade *model.FacadeSegment, cfg Config) int {
	fMid := geo.Midpoint(facade.Start, facade.End)
	best, bestDist := -1, cfg.FacadeMatchToleranceM
	for i := range segments {
		if d := geo.Distance(segments[i].Midpoint, fMid); d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		return best
	}
	if facade.EdgeIndex >= 0 && facade.EdgeIndex < len(segments) {
		return facade.EdgeIndex
	}
	return -1
}

// selectRearEdge scores every non-front edge and returns the best rear
// candidate. Edges roughly opposite the front bearing score on both
// axis alignment and distance from the front midpoint (weighted
// RearAxisWeight:1); edges beyond the cutoff score on discounted
// distance alone, so irregular parcels still get a "best available"
// rear edge instead of none.
func selectRearEdge(segments []model.Segment, frontIdx int, cfg Config) int {
	front := segments[frontIdx]
	oppositeBearing := math.Mod(front.BearingDeg+180, 360)

	maxDist := 0.0
	for i := range segments {
		if i == frontIdx {
			continue
		}
		if d := geo.Distance(segments[i].Midpoint, front.Midpoint); d > maxDist {
			maxDist = d
		}
	}
	if maxDist == 0 {
		return -1
	}

	best, bestScore := -1, -1.0
	for i := range segments {
		if i == frontIdx {
			continue
		}
		distScore := geo.Distance(segments[i].Midpoint, front.Midpoint) / maxDist
		diff := geo.BearingDiff(segments[i].BearingDeg, oppositeBearing)

		var score float64
		if diff <= cfg.RearAxisCutoffDeg {
			axisScore := 1 - diff/cfg.RearAxisCutoffDeg
			score = cfg.RearAxisWeight*axisScore + distScore
		} else {
			score = distScore * cfg.OffAxisDiscount
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
