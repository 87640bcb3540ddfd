package model

import "github.com/groundplan/groundplan/geo"

// Bands holds the forbidden-zone strips between parcel and envelope,
// one multipolygon per facade category. The union of all bands
// approximates parcel minus envelope.
type Bands struct {
	Front   []geo.Ring
	Lateral []geo.Ring
	Rear    []geo.Ring
}

// All returns every band ring regardless of category.
func (b Bands) All() []geo.Ring {
	out := make([]geo.Ring, 0, len(b.Front)+len(b.Lateral)+len(b.Rear))
	out = append(out, b.Front...)
	out = append(out, b.Lateral...)
	out = append(out, b.Rear...)
	return out
}

// HatchLine is one clipped diagonal segment marking non-buildable area.
type HatchLine struct {
	A, B geo.Point
}

// HandleID identifies one of the eight stretch handles or the rotation
// handle shown for a selected object.
type HandleID string

// Stretch handles are named for compass positions on the object's
// bounding box; HandleRotate floats above the north edge.
const (
	HandleNW     HandleID = "nw"
	HandleN      HandleID = "n"
	HandleNE     HandleID = "ne"
	HandleE      HandleID = "e"
	HandleSE     HandleID = "se"
	HandleS      HandleID = "s"
	HandleSW     HandleID = "sw"
	HandleW      HandleID = "w"
	HandleRotate HandleID = "rotate"
)

// StretchHandles lists the eight bounding-box handles in display order.
var StretchHandles = []HandleID{
	HandleNW, HandleN, HandleNE, HandleE, HandleSE, HandleS, HandleSW, HandleW,
}

// Handle is a grab point rendered by the host UI.
type Handle struct {
	ID    HandleID
	Point geo.Point
}

// SnapGuide is a transient alignment guide produced while moving an
// object near another object's centroid. Guides are advisory: they are
// rendered but never mutate geometry.
type SnapGuide struct {
	Horizontal bool
	A, B       geo.Point
}
