package setback

import (
	"math"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

// minBandAreaM2 filters out sliver quadrilaterals produced along edges
// whose setback distance is zero.
const minBandAreaM2 = 0.01

// ComputeBands derives the per-category forbidden strips between the
// parcel boundary and the stitched envelope ring. Each boundary edge
// pairs with its corresponding envelope-ring edge to form a
// quadrilateral, which is clipped to the parcel and collected under
// the edge's facade category.
func ComputeBands(parcel, envelopeRing geo.Ring, segments []model.Segment, frame *geo.Frame) model.Bands {
	var bands model.Bands

	pPts := openLocal(frame.ToLocalRing(parcel))
	ePts := openLocal(frame.ToLocalRing(envelopeRing))
	if len(pPts) < 3 || len(pPts) != len(ePts) || len(segments) != len(pPts) {
		return bands
	}
	localParcel := frame.ToLocalRing(parcel)

	n := len(pPts)
	for i := 0; i < n; i++ {
		quad := geo.LocalRing{
			pPts[i], pPts[(i+1)%n], ePts[(i+1)%n], ePts[i],
		}
		clipped := clipRing(quad, localParcel)
		if len(clipped) < 3 || math.Abs(clipped.SignedArea()) < minBandAreaM2 {
			continue
		}
		ring := frame.FromLocalRing(closeLocal(clipped))
		switch segments[i].Category {
		case model.CategoryFront:
			bands.Front = append(bands.Front, ring)
		case model.CategoryRear:
			bands.Rear = append(bands.Rear, ring)
		default:
			bands.Lateral = append(bands.Lateral, ring)
		}
	}
	return bands
}
