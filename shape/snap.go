package shape

import (
	"math"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

// envelopeSnapCorrection finds the candidate vertex closest to the
// envelope boundary and, when it is within the snap distance, returns
// the translation that lands it exactly on the boundary.
func (e *Engine) envelopeSnapCorrection(candidate geo.LocalRing) (geo.XY, bool) {
	if len(e.localEnvelope) == 0 {
		return geo.XY{}, false
	}
	limit := e.snap.envelopeSnapDist()
	best := math.Inf(1)
	var corr geo.XY

	env := e.localEnvelope
	n := len(env)
	if n >= 2 && env[0] == env[n-1] {
		n--
	}
	for _, v := range candidate {
		for i := 0; i < n; i++ {
			q, d := geo.ProjectToSegment(v, env[i], env[(i+1)%n])
			// Vertices already on (or inside past) the edge do not pull.
			if d < 1e-9 || d >= best || d > limit {
				continue
			}
			best = d
			corr = geo.XY{X: q.X - v.X, Y: q.Y - v.Y}
		}
	}
	if math.IsInf(best, 1) {
		return geo.XY{}, false
	}
	return corr, true
}

// alignmentGuides compares the moving ring's centroid against the
// centroids of every other object and emits a vertical or horizontal
// guide for each axis match within the guide distance. Guides are
// rendered by the host; they do not snap geometry.
func (e *Engine) alignmentGuides(movingID string, candidate geo.LocalRing, frame *geo.Frame) []model.SnapGuide {
	limit := e.snap.guideDist()
	c := candidate.Centroid()

	var guides []model.SnapGuide
	for _, other := range e.objects {
		if other.ID == movingID {
			continue
		}
		oc := frame.ToLocalRing(other.Polygon).Centroid()
		if math.Abs(oc.X-c.X) <= limit {
			guides = append(guides, model.SnapGuide{
				Horizontal: false,
				A:          frame.FromLocal(geo.XY{X: oc.X, Y: math.Min(oc.Y, c.Y) - limit}),
				B:          frame.FromLocal(geo.XY{X: oc.X, Y: math.Max(oc.Y, c.Y) + limit}),
			})
		}
		if math.Abs(oc.Y-c.Y) <= limit {
			guides = append(guides, model.SnapGuide{
				Horizontal: true,
				A:          frame.FromLocal(geo.XY{X: math.Min(oc.X, c.X) - limit, Y: oc.Y}),
				B:          frame.FromLocal(geo.XY{X: math.Max(oc.X, c.X) + limit, Y: oc.Y}),
			})
		}
	}
	return guides
}
