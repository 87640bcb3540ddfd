package model

import (
	"time"

	"github.com/groundplan/groundplan/geo"
)

// ObjectKind distinguishes the two kinds of drawn footprint.
type ObjectKind string

// Drawn object kinds.
const (
	KindBuilding ObjectKind = "building"
	KindParking  ObjectKind = "parking"
)

// DrawnObject is a user-created building or parking footprint. It is
// owned exclusively by the shape engine; hosts receive copies.
type DrawnObject struct {
	ID        string
	Kind      ObjectKind
	Polygon   geo.Ring
	AreaM2    float64
	CreatedAt time.Time
	Version   int
}

// Clone returns a deep copy of the object.
func (o *DrawnObject) Clone() *DrawnObject {
	if o == nil {
		return nil
	}
	c := *o
	c.Polygon = o.Polygon.Clone()
	return &c
}

// EdgeLengthsM returns the length in meters of each polygon edge, in
// ring order, for dimension overlays.
func (o *DrawnObject) EdgeLengthsM() []float64 {
	pts := o.Polygon.Open()
	if len(pts) < 2 {
		return nil
	}
	out := make([]float64, len(pts))
	for i := range pts {
		out[i] = geo.Distance(pts[i], pts[(i+1)%len(pts)])
	}
	return out
}

// CloneObjects deep-copies a slice of drawn objects.
func CloneObjects(objs []*DrawnObject) []*DrawnObject {
	if objs == nil {
		return nil
	}
	out := make([]*DrawnObject, len(objs))
	for i, o := range objs {
		out[i] = o.Clone()
	}
	return out
}
