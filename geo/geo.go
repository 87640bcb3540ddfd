package geo

import "math"

// Point is a geographic coordinate in degrees.
type Point struct {
	Lng, Lat float64
}

// XY is a position in a local frame, in meters east (X) and north (Y)
// of the frame origin.
type XY struct {
	X, Y float64
}

// Ring is an ordered ring of geographic points. A closed ring repeats
// its first point at the end; most operations accept either form.
type Ring []Point

// LocalRing is a ring projected into a local frame.
type LocalRing []XY

// Closed reports whether the ring's last point repeats its first.
func (r Ring) Closed() bool {
	if len(r) < 2 {
		return false
	}
	return r[0] == r[len(r)-1]
}

// Close returns the ring with its first point appended if it is not
// already closed. The receiver is not modified.
func (r Ring) Close() Ring {
	if len(r) == 0 || r.Closed() {
		return r
	}
	out := make(Ring, len(r)+1)
	copy(out, r)
	out[len(r)] = r[0]
	return out
}

// Open returns the ring without a repeated closing point.
func (r Ring) Open() Ring {
	if r.Closed() {
		return r[:len(r)-1]
	}
	return r
}

// Clone returns an independent copy of the ring.
func (r Ring) Clone() Ring {
	if r == nil {
		return nil
	}
	out := make(Ring, len(r))
	copy(out, r)
	return out
}

// Reverse returns a copy of the ring with the winding direction
// flipped. A closing point stays in place.
func (r Ring) Reverse() Ring {
	open := r.Open()
	out := make(Ring, 0, len(r))
	for i := len(open) - 1; i >= 0; i-- {
		out = append(out, open[i])
	}
	if r.Closed() {
		out = append(out, out[0])
	}
	return out
}

// Centroid returns the arithmetic mean of the ring's vertices (the
// closing point, if present, is ignored). Returns the zero Point for
// an empty ring.
func (r Ring) Centroid() Point {
	pts := r.Open()
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.Lng
		sy += p.Lat
	}
	n := float64(len(pts))
	return Point{Lng: sx / n, Lat: sy / n}
}

// BBox returns the geographic bounding box of the ring as min and max
// corners.
func (r Ring) BBox() (min, max Point) {
	if len(r) == 0 {
		return Point{}, Point{}
	}
	min, max = r[0], r[0]
	for _, p := range r[1:] {
		min.Lng = math.Min(min.Lng, p.Lng)
		min.Lat = math.Min(min.Lat, p.Lat)
		max.Lng = math.Max(max.Lng, p.Lng)
		max.Lat = math.Max(max.Lat, p.Lat)
	}
	return min, max
}

// Area returns the ring's area in square meters, computed in a local
// frame centered on the ring.
func (r Ring) Area() float64 {
	pts := r.Open()
	if len(pts) < 3 {
		return 0
	}
	return math.Abs(FrameForRing(r).ToLocalRing(r).SignedArea())
}

// SignedArea returns the shoelace area of the local ring: positive for
// counterclockwise winding, negative for clockwise.
func (lr LocalRing) SignedArea() float64 {
	pts := lr
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsClockwise reports whether the local ring winds clockwise.
func (lr LocalRing) IsClockwise() bool {
	return lr.SignedArea() < 0
}

// Centroid returns the arithmetic mean of the local ring's vertices.
func (lr LocalRing) Centroid() XY {
	pts := lr
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) == 0 {
		return XY{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return XY{X: sx / n, Y: sy / n}
}

// BBox returns the local bounding box of the ring as min and max corners.
func (lr LocalRing) BBox() (min, max XY) {
	if len(lr) == 0 {
		return XY{}, XY{}
	}
	min, max = lr[0], lr[0]
	for _, p := range lr[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Clone returns an independent copy of the local ring.
func (lr LocalRing) Clone() LocalRing {
	if lr == nil {
		return nil
	}
	out := make(LocalRing, len(lr))
	copy(out, lr)
	return out
}
