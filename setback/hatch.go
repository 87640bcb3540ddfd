package setback

import (
	"math"
	"sort"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

// ComputeHatch sweeps parallel lines across the parcel and emits the
// sub-segments that fall inside the parcel but outside the envelope,
// producing hatching confined to the non-buildable band without a
// general polygon-with-holes clip. Segments shorter than MinHatchSegM
// are discarded.
func ComputeHatch(parcel, envelope geo.Ring, cfg Config) []model.HatchLine {
	frame := geo.FrameForRing(parcel)
	lp := frame.ToLocalRing(parcel)
	le := frame.ToLocalRing(envelope)
	if len(openLocal(lp)) < 3 {
		return nil
	}

	min, max := lp.BBox()
	diag := geo.DistanceXY(min, max)
	if diag <= 0 || cfg.HatchSpacingM <= 0 {
		return nil
	}
	center := geo.XY{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}

	rad := cfg.HatchAngleDeg * math.Pi / 180
	dir := geo.XY{X: math.Sin(rad), Y: math.Cos(rad)}   // along the hatch lines
	normal := geo.XY{X: -dir.Y, Y: dir.X}               // sweep direction
	half := diag/2 + cfg.HatchSpacingM

	var lines []model.HatchLine
	for off := -half; off <= half; off += cfg.HatchSpacingM {
		base := geo.XY{X: center.X + normal.X*off, Y: center.Y + normal.Y*off}
		a := geo.XY{X: base.X - dir.X*diag, Y: base.Y - dir.Y*diag}
		b := geo.XY{X: base.X + dir.X*diag, Y: base.Y + dir.Y*diag}
		lines = append(lines, clipSweepLine(a, b, lp, le, frame, cfg)...)
	}
	return lines
}

// clipSweepLine intersects one sweep segment with both rings, sorts
// the hits along the segment, and walks consecutive pairs emitting the
// spans whose midpoint is inside the parcel and outside the envelope.
func clipSweepLine(a, b geo.XY, parcel, envelope geo.LocalRing, frame *geo.Frame, cfg Config) []model.HatchLine {
	ts := []float64{0, 1}
	ts = append(ts, ringHits(a, b, parcel)...)
	ts = append(ts, ringHits(a, b, envelope)...)
	sort.Float64s(ts)

	length := geo.DistanceXY(a, b)
	var out []model.HatchLine
	for i := 0; i+1 < len(ts); i++ {
		t1, t2 := ts[i], ts[i+1]
		if (t2-t1)*length < cfg.MinHatchSegM {
			continue
		}
		mid := lerp(a, b, (t1+t2)/2)
		if !geo.PointInRingXY(mid, parcel) || geo.PointInRingXY(mid, envelope) {
			continue
		}
		out = append(out, model.HatchLine{
			A: frame.FromLocal(lerp(a, b, t1)),
			B: frame.FromLocal(lerp(a, b, t2)),
		})
	}
	return out
}

// ringHits returns the parameters along a->b at which the segment
// crosses the ring's edges.
func ringHits(a, b geo.XY, ring geo.LocalRing) []float64 {
	pts := openLocal(ring)
	if len(pts) < 3 {
		return nil
	}
	abLen := geo.DistanceXY(a, b)
	if abLen == 0 {
		return nil
	}
	var ts []float64
	for i := range pts {
		c, d := pts[i], pts[(i+1)%len(pts)]
		if x, ok := geo.SegmentIntersection(a, b, c, d, false); ok {
			ts = append(ts, geo.DistanceXY(a, x)/abLen)
		}
	}
	return ts
}

func lerp(a, b geo.XY, t float64) geo.XY {
	return geo.XY{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
