package setback

import (
	"math"
	"testing"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

func TestHatchConfinedToBand(t *testing.T) {
	parcel := rectRing(2.35, 48.85, 40, 40)
	res := ComputeEnvelope(parcel, nil, uniformSetbacks(5), DefaultConfig())

	lines := ComputeHatch(parcel, res.Envelope, DefaultConfig())
	if len(lines) == 0 {
		t.Fatal("expected hatch lines in a 5 m band")
	}

	frame := geo.FrameForRing(parcel)
	lp := frame.ToLocalRing(parcel)
	le := frame.ToLocalRing(res.Envelope)
	for i, l := range lines {
		mid := frame.ToLocal(geo.Midpoint(l.A, l.B))
		if !geo.PointInRingXY(mid, lp) {
			t.Errorf("hatch %d midpoint outside the parcel", i)
		}
		if geo.PointInRingXY(mid, le) {
			t.Errorf("hatch %d midpoint inside the envelope", i)
		}
	}
}

func TestHatchMinimumLength(t *testing.T) {
	parcel := rectRing(2.35, 48.85, 40, 40)
	res := ComputeEnvelope(parcel, nil, uniformSetbacks(5), DefaultConfig())
	cfg := DefaultConfig()
	for i, l := range ComputeHatch(parcel, res.Envelope, cfg) {
		if d := geo.Distance(l.A, l.B); d < cfg.MinHatchSegM-0.01 {
			t.Errorf("hatch %d length = %.3f m, want >= %.1f", i, d, cfg.MinHatchSegM)
		}
	}
}

func TestHatchZeroBand(t *testing.T) {
	// Envelope equals parcel: nothing to hatch.
	parcel := rectRing(2.35, 48.85, 40, 40)
	if lines := ComputeHatch(parcel, parcel, DefaultConfig()); len(lines) != 0 {
		t.Errorf("identical parcel and envelope produced %d hatch lines, want 0", len(lines))
	}
}

func TestHatchDegenerateInput(t *testing.T) {
	if lines := ComputeHatch(geo.Ring{}, geo.Ring{}, DefaultConfig()); lines != nil {
		t.Errorf("empty rings produced %d hatch lines", len(lines))
	}
}

func TestBandsCoverSetbackStrip(t *testing.T) {
	parcel := rectRing(2.35, 48.85, 20, 60)
	cfg := DefaultConfig()
	res := ComputeEnvelope(parcel, facadeForEdge(parcel, 0), directionalSetbacks(5, 3, 4), cfg)

	frame := geo.FrameForRing(parcel)
	bands := ComputeBands(parcel, res.EnvelopeRing, res.Segments, frame)

	if len(bands.Front) != 1 || len(bands.Rear) != 1 || len(bands.Lateral) != 2 {
		t.Fatalf("band counts front/rear/lateral = %d/%d/%d, want 1/1/2",
			len(bands.Front), len(bands.Rear), len(bands.Lateral))
	}

	// Union of bands approximates parcel minus envelope.
	var total float64
	for _, r := range bands.All() {
		total += r.Area()
	}
	want := parcel.Area() - res.Envelope.Area()
	if total < want*0.9 || total > want*1.3 {
		t.Errorf("band area sum = %.1f, want near %.1f", total, want)
	}

	// Band vertices stay within the parcel.
	for _, r := range bands.All() {
		assertContained(t, r, parcel, 0.05)
	}
}

func TestBandsAlignWithTheirEdges(t *testing.T) {
	// 20 m x 60 m parcel, facade on the south edge, front 5 / lateral
	// 3 / rear 4. Each band must cover the full strip along its own
	// edge, not a strip skewed onto a neighbour.
	parcel := rectRing(2.35, 48.85, 20, 60)
	cfg := DefaultConfig()
	res := ComputeEnvelope(parcel, facadeForEdge(parcel, 0), directionalSetbacks(5, 3, 4), cfg)

	frame := geo.FrameForRing(parcel)
	bands := ComputeBands(parcel, res.EnvelopeRing, res.Segments, frame)
	if len(bands.Front) != 1 || len(bands.Rear) != 1 || len(bands.Lateral) != 2 {
		t.Fatalf("band counts front/rear/lateral = %d/%d/%d, want 1/1/2",
			len(bands.Front), len(bands.Rear), len(bands.Lateral))
	}

	inBands := func(rings []geo.Ring, x, y float64) bool {
		q := geo.XY{X: x, Y: y}
		for _, r := range rings {
			if geo.PointInRingXY(q, frame.ToLocalRing(r)) {
				return true
			}
		}
		return false
	}
	probes := []struct {
		rings []geo.Ring
		x, y  float64
		name  string
	}{
		{bands.Front, -5, -27.5, "front west half"},
		{bands.Front, 5, -27.5, "front east half"},
		{bands.Rear, -5, 28, "rear west half"},
		{bands.Rear, 5, 28, "rear east half"},
		{bands.Lateral, -8.5, -20, "west lateral south"},
		{bands.Lateral, -8.5, 20, "west lateral north"},
		{bands.Lateral, 8.5, 0, "east lateral middle"},
	}
	for _, p := range probes {
		if !inBands(p.rings, p.x, p.y) {
			t.Errorf("%s point (%.1f, %.1f) is not covered by its band", p.name, p.x, p.y)
		}
	}

	// Trapezoid areas: front (20+14)/2*5, rear (20+14)/2*4.
	if a := bands.Front[0].Area(); math.Abs(a-85) > 2 {
		t.Errorf("front band area = %.1f, want ~85", a)
	}
	if a := bands.Rear[0].Area(); math.Abs(a-68) > 2 {
		t.Errorf("rear band area = %.1f, want ~68", a)
	}
	for i, r := range bands.Lateral {
		if a := r.Area(); math.Abs(a-166.5) > 3 {
			t.Errorf("lateral band %d area = %.1f, want ~166.5", i, a)
		}
	}

	// No band reaches into the buildable envelope.
	env := frame.ToLocalRing(res.Envelope)
	for _, r := range bands.All() {
		if geo.PointInRingXY(frame.ToLocal(r.Centroid()), env) {
			t.Errorf("band centroid %v lies inside the envelope", r.Centroid())
		}
	}
}

func TestBandsSurviveTinyEdge(t *testing.T) {
	// A sub-centimeter chamfer edge is not offset, but it must keep
	// its place in the stitched ring so the other bands still pair up.
	frame := geo.NewFrame(geo.Point{Lng: 2.35, Lat: 48.85})
	parcel := frame.FromLocalRing(geo.LocalRing{
		{X: -20, Y: -20}, {X: 20, Y: -20}, {X: 20, Y: 19.995},
		{X: 19.995, Y: 20}, {X: -20, Y: 20},
	}).Close()
	res := ComputeEnvelope(parcel, nil, uniformSetbacks(5), DefaultConfig())

	bands := ComputeBands(parcel, res.EnvelopeRing, res.Segments, frame)
	if n := len(bands.All()); n < 4 {
		t.Fatalf("chamfered parcel produced %d bands, want at least 4", n)
	}
}

func TestBandsEmptyForIdentityEnvelope(t *testing.T) {
	parcel := rectRing(2.35, 48.85, 40, 40)
	segments := Classify(parcel, nil, DefaultConfig())
	frame := geo.FrameForRing(parcel)
	bands := ComputeBands(parcel, parcel, segments, frame)
	if n := len(bands.All()); n != 0 {
		t.Errorf("identity envelope produced %d bands, want 0", n)
	}
}

func TestBandsMismatchedRings(t *testing.T) {
	parcel := rectRing(2.35, 48.85, 40, 40)
	frame := geo.FrameForRing(parcel)
	var segments []model.Segment
	bands := ComputeBands(parcel, geo.Ring{}, segments, frame)
	if n := len(bands.All()); n != 0 {
		t.Errorf("mismatched rings produced %d bands, want 0", n)
	}
}
