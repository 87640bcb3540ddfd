package geo

import "math"

// MetersPerDegreeLat is the approximate north-south length of one
// degree of latitude. The east-west length of one degree of longitude
// is this value scaled by the cosine of the latitude.
const MetersPerDegreeLat = 111320.0

// Frame is a local tangent-plane coordinate frame: an equirectangular
// projection centered on an origin point, with X in meters east and Y
// in meters north. Frames are cheap to construct and immutable.
type Frame struct {
	origin       Point
	metersPerLng float64
}

// NewFrame returns a frame centered on the given geographic point.
func NewFrame(origin Point) *Frame {
	return &Frame{
		origin:       origin,
		metersPerLng: MetersPerDegreeLat * math.Cos(origin.Lat*math.Pi/180),
	}
}

// FrameForRing returns a frame centered on the ring's centroid.
func FrameForRing(r Ring) *Frame {
	return NewFrame(r.Centroid())
}

// Origin returns the geographic point at the frame's local (0, 0).
func (f *Frame) Origin() Point {
	return f.origin
}

// ToLocal converts a geographic point to local meters.
func (f *Frame) ToLocal(p Point) XY {
	return XY{
		X: (p.Lng - f.origin.Lng) * f.metersPerLng,
		Y: (p.Lat - f.origin.Lat) * MetersPerDegreeLat,
	}
}

// FromLocal converts local meters back to a geographic point.
func (f *Frame) FromLocal(q XY) Point {
	return Point{
		Lng: f.origin.Lng + q.X/f.metersPerLng,
		Lat: f.origin.Lat + q.Y/MetersPerDegreeLat,
	}
}

// ToLocalRing converts every point of a ring to local meters.
func (f *Frame) ToLocalRing(r Ring) LocalRing {
	out := make(LocalRing, len(r))
	for i, p := range r {
		out[i] = f.ToLocal(p)
	}
	return out
}

// FromLocalRing converts a local ring back to geographic coordinates.
func (f *Frame) FromLocalRing(lr LocalRing) Ring {
	out := make(Ring, len(lr))
	for i, q := range lr {
		out[i] = f.FromLocal(q)
	}
	return out
}
