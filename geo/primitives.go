package geo

import "math"

// parallelEps is the cross-product magnitude below which two segment
// directions are treated as parallel.
const parallelEps = 1e-10

// Distance returns the distance between two geographic points in
// meters, measured in a local frame centered between them.
func Distance(a, b Point) float64 {
	f := NewFrame(Midpoint(a, b))
	return DistanceXY(f.ToLocal(a), f.ToLocal(b))
}

// DistanceXY returns the Euclidean distance between two local points.
func DistanceXY(a, b XY) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{Lng: (a.Lng + b.Lng) / 2, Lat: (a.Lat + b.Lat) / 2}
}

// Bearing returns the initial bearing from a to b in degrees clockwise
// from north, normalized to [0, 360).
func Bearing(a, b Point) float64 {
	f := NewFrame(Midpoint(a, b))
	return BearingXY(f.ToLocal(a), f.ToLocal(b))
}

// BearingXY returns the bearing from a to b in degrees clockwise from
// north (local +Y), normalized to [0, 360).
func BearingXY(a, b XY) float64 {
	deg := math.Atan2(b.X-a.X, b.Y-a.Y) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// BearingDiff returns the smallest absolute difference between two
// bearings in degrees, in [0, 180].
func BearingDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SegmentIntersection returns the intersection of segments p1-p2 and
// p3-p4. With extend set, the segments are treated as infinite lines
// and the intersection may lie outside either segment. Parallel or
// near-parallel inputs return ok = false rather than a far-away point.
func SegmentIntersection(p1, p2, p3, p4 XY, extend bool) (XY, bool) {
	d1 := XY{X: p2.X - p1.X, Y: p2.Y - p1.Y}
	d2 := XY{X: p4.X - p3.X, Y: p4.Y - p3.Y}
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < parallelEps {
		return XY{}, false
	}
	t := ((p3.X-p1.X)*d2.Y - (p3.Y-p1.Y)*d2.X) / denom
	u := ((p3.X-p1.X)*d1.Y - (p3.Y-p1.Y)*d1.X) / denom
	if !extend {
		const slack = 1e-9
		if t < -slack || t > 1+slack || u < -slack || u > 1+slack {
			return XY{}, false
		}
	}
	return XY{X: p1.X + t*d1.X, Y: p1.Y + t*d1.Y}, true
}

// PointInRing reports whether a geographic point is inside the ring
// using the even-odd rule. Points exactly on an edge may land on
// either side; callers needing boundary tolerance should test distance
// to the ring separately.
func PointInRing(p Point, r Ring) bool {
	pts := r.Open()
	if len(pts) < 3 {
		return false
	}
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Lat > p.Lat) != (pj.Lat > p.Lat) &&
			p.Lng < (pj.Lng-pi.Lng)*(p.Lat-pi.Lat)/(pj.Lat-pi.Lat)+pi.Lng {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PointInRingXY is the even-odd test in local coordinates.
func PointInRingXY(p XY, lr LocalRing) bool {
	pts := lr
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return false
	}
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// ProjectToSegment returns the point on segment a-b closest to p, and
// the distance from p to that point.
func ProjectToSegment(p, a, b XY) (XY, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a, DistanceXY(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	q := XY{X: a.X + t*dx, Y: a.Y + t*dy}
	return q, DistanceXY(p, q)
}

// DistanceToRing returns the shortest distance from a local point to
// the boundary of a local ring.
func DistanceToRing(p XY, lr LocalRing) float64 {
	pts := lr
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) == 0 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	for i := range pts {
		_, d := ProjectToSegment(p, pts[i], pts[(i+1)%len(pts)])
		if d < best {
			best = d
		}
	}
	return best
}

// RotateXY rotates p about pivot by the given angle in degrees,
// measured clockwise (matching bearing convention).
func RotateXY(p, pivot XY, deg float64) XY {
	rad := -deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	return XY{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}
