package geo

import (
	"math"
	"testing"
)

// squareRing returns a closed ring approximating a size x size meter
// square centered on (lng, lat).
func squareRing(lng, lat, size float64) Ring {
	halfLat := size / 2 / MetersPerDegreeLat
	halfLng := size / 2 / (MetersPerDegreeLat * math.Cos(lat*math.Pi/180))
	return Ring{
		{Lng: lng - halfLng, Lat: lat - halfLat},
		{Lng: lng + halfLng, Lat: lat - halfLat},
		{Lng: lng + halfLng, Lat: lat + halfLat},
		{Lng: lng - halfLng, Lat: lat + halfLat},
		{Lng: lng - halfLng, Lat: lat - halfLat},
	}
}

func TestFrameRoundTrip(t *testing.T) {
	f := NewFrame(Point{Lng: 2.35, Lat: 48.85})
	tests := []Point{
		{Lng: 2.35, Lat: 48.85},
		{Lng: 2.3512, Lat: 48.8493},
		{Lng: 2.3461, Lat: 48.8525},
	}
	for _, p := range tests {
		got := f.FromLocal(f.ToLocal(p))
		if math.Abs(got.Lng-p.Lng) > 1e-12 || math.Abs(got.Lat-p.Lat) > 1e-12 {
			t.Errorf("round trip of %v = %v", p, got)
		}
	}
}

func TestDistance(t *testing.T) {
	a := Point{Lng: 2.35, Lat: 48.85}
	b := f48FromOffset(a, 100, 0) // 100 m east
	if d := Distance(a, b); math.Abs(d-100) > 0.01 {
		t.Errorf("Distance() = %v, want ~100", d)
	}
}

// f48FromOffset returns the point dx meters east and dy meters north of p.
func f48FromOffset(p Point, dx, dy float64) Point {
	f := NewFrame(p)
	return f.FromLocal(XY{X: dx, Y: dy})
}

func TestBearing(t *testing.T) {
	origin := Point{Lng: 2.35, Lat: 48.85}
	tests := []struct {
		dx, dy float64
		want   float64
	}{
		{0, 100, 0},    // north
		{100, 0, 90},   // east
		{0, -100, 180}, // south
		{-100, 0, 270}, // west
	}
	for _, tt := range tests {
		got := Bearing(origin, f48FromOffset(origin, tt.dx, tt.dy))
		if BearingDiff(got, tt.want) > 0.01 {
			t.Errorf("Bearing(+%v,+%v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestBearingDiff(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{350, 10, 20},
		{90, 270, 180},
		{45, 135, 90},
	}
	for _, tt := range tests {
		if got := BearingDiff(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("BearingDiff(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 XY
		extend         bool
		want           XY
		wantOK         bool
	}{
		{
			name: "crossing segments",
			p1:   XY{0, 0}, p2: XY{10, 10},
			p3: XY{0, 10}, p4: XY{10, 0},
			want: XY{5, 5}, wantOK: true,
		},
		{
			name: "parallel",
			p1:   XY{0, 0}, p2: XY{10, 0},
			p3: XY{0, 5}, p4: XY{10, 5},
			wantOK: false,
		},
		{
			name: "bounded miss",
			p1:   XY{0, 0}, p2: XY{1, 1},
			p3: XY{0, 10}, p4: XY{10, 0},
			wantOK: false,
		},
		{
			name: "extended hit",
			p1:   XY{0, 0}, p2: XY{1, 1},
			p3: XY{0, 10}, p4: XY{10, 0},
			extend: true,
			want:   XY{5, 5}, wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SegmentIntersection(tt.p1, tt.p2, tt.p3, tt.p4, tt.extend)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9) {
				t.Errorf("intersection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointInRing(t *testing.T) {
	square := squareRing(2.35, 48.85, 40)
	center := Point{Lng: 2.35, Lat: 48.85}
	if !PointInRing(center, square) {
		t.Error("center should be inside the square")
	}
	outside := f48FromOffset(center, 30, 0)
	if PointInRing(outside, square) {
		t.Error("point 30 m east of a 40 m square should be outside")
	}
}

func TestRingArea(t *testing.T) {
	square := squareRing(2.35, 48.85, 40)
	if a := square.Area(); math.Abs(a-1600) > 1 {
		t.Errorf("Area() = %v, want ~1600", a)
	}
}

func TestSignedAreaWinding(t *testing.T) {
	ccw := LocalRing{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if ccw.SignedArea() <= 0 {
		t.Error("counterclockwise ring should have positive signed area")
	}
	if ccw.IsClockwise() {
		t.Error("counterclockwise ring reported as clockwise")
	}
	cw := LocalRing{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	if cw.SignedArea() >= 0 {
		t.Error("clockwise ring should have negative signed area")
	}
}

func TestRotateXYIdentity(t *testing.T) {
	pts := LocalRing{{3, 4}, {-2, 7}, {5, -1}}
	pivot := XY{1, 1}
	for _, deg := range []float64{0, 360} {
		for _, p := range pts {
			got := RotateXY(p, pivot, deg)
			if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
				t.Errorf("RotateXY(%v, %v°) = %v, want unchanged", p, deg, got)
			}
		}
	}
}

func TestRotateXYQuarterTurn(t *testing.T) {
	// Clockwise quarter turn about the origin sends north to east.
	got := RotateXY(XY{0, 1}, XY{0, 0}, 90)
	if math.Abs(got.X-1) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("RotateXY((0,1), 90°) = %v, want (1,0)", got)
	}
}

func TestProjectToSegment(t *testing.T) {
	q, d := ProjectToSegment(XY{5, 5}, XY{0, 0}, XY{10, 0})
	if math.Abs(q.X-5) > 1e-9 || math.Abs(q.Y) > 1e-9 {
		t.Errorf("projection = %v, want (5,0)", q)
	}
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("distance = %v, want 5", d)
	}
	// Beyond the segment end, the projection clamps to the endpoint.
	q, _ = ProjectToSegment(XY{15, 5}, XY{0, 0}, XY{10, 0})
	if math.Abs(q.X-10) > 1e-9 {
		t.Errorf("clamped projection = %v, want x=10", q)
	}
}

func TestRingCloseOpen(t *testing.T) {
	open := Ring{{0, 0}, {1, 0}, {1, 1}}
	closed := open.Close()
	if !closed.Closed() {
		t.Fatal("Close() did not close the ring")
	}
	if len(closed) != 4 {
		t.Errorf("closed ring has %d points, want 4", len(closed))
	}
	if got := closed.Open(); len(got) != 3 {
		t.Errorf("Open() returned %d points, want 3", len(got))
	}
}

func TestRingReverse(t *testing.T) {
	ring := Ring{{0, 0}, {1, 0}, {1, 1}}.Close()
	frame := NewFrame(ring.Centroid())
	if cw := frame.ToLocalRing(ring).IsClockwise(); cw {
		t.Fatal("test ring should start counterclockwise")
	}
	rev := ring.Reverse()
	if !rev.Closed() {
		t.Error("Reverse() lost the closing point")
	}
	if cw := frame.ToLocalRing(rev).IsClockwise(); !cw {
		t.Error("Reverse() did not flip the winding")
	}
	if rev.Reverse()[1] != ring[1] {
		t.Error("double Reverse() is not the identity")
	}
}
