package shape

import (
	"math"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

// TransformKind identifies the active gesture.
type TransformKind string

// Transform kinds.
const (
	TransformMove    TransformKind = "move"
	TransformRotate  TransformKind = "rotate"
	TransformScale   TransformKind = "scale"
	TransformStretch TransformKind = "stretch"
)

// action is the transient state of one pointer-drag gesture. It lives
// from StartTransform to EndTransform and is then discarded.
type action struct {
	kind     TransformKind
	id       string
	frame    *geo.Frame
	original geo.LocalRing // geometry snapshot at gesture start
	startPtr geo.XY
	pivot    geo.XY // centroid of the original geometry

	handle model.HandleID // stretch only

	startBearing float64 // rotate only
	startDist    float64 // scale only

	origMin, origMax geo.XY // original bounding box, stretch only
}

// StartTransform begins a gesture on an object. It snapshots the
// original geometry, pivot, and per-kind start state, and pushes one
// history entry so the whole drag undoes as a unit. Returns false when
// another transform is active, the object is unknown, or the stretch
// handle is missing; all are no-ops.
func (e *Engine) StartTransform(kind TransformKind, id string, startPointer geo.Point, handle model.HandleID) bool {
	if e.action != nil {
		return false
	}
	obj := e.lookup(id)
	if obj == nil {
		return false
	}
	frame := e.objectFrame(obj)
	original := frame.ToLocalRing(obj.Polygon)
	pivot := original.Centroid()
	start := frame.ToLocal(startPointer)

	a := &action{
		kind:     kind,
		id:       id,
		frame:    frame,
		original: original.Clone(),
		startPtr: start,
		pivot:    pivot,
	}
	switch kind {
	case TransformMove:
	case TransformRotate:
		a.startBearing = geo.BearingXY(pivot, start)
	case TransformScale:
		a.startDist = geo.DistanceXY(pivot, start)
		if a.startDist == 0 {
			return false
		}
	case TransformStretch:
		valid := false
		for _, h := range model.StretchHandles {
			if h == handle {
				valid = true
				break
			}
		}
		if !valid {
			return false
		}
		a.handle = handle
		a.origMin, a.origMax = localBBox(original)
	default:
		return false
	}

	e.pushHistory(string(kind) + " " + string(obj.Kind))
	e.action = a
	e.activeID = id
	return true
}

// ApplyTransform advances the active gesture to the current pointer
// position. The candidate geometry is committed only when it stays
// within the envelope; a rejected candidate leaves the object at its
// last valid state while the gesture remains active. freeModifier
// disables angle snapping during rotation. Applying with no active
// transform is a no-op.
func (e *Engine) ApplyTransform(pointer geo.Point, freeModifier bool) bool {
	a := e.action
	if a == nil {
		return false
	}
	obj := e.lookup(a.id)
	if obj == nil {
		return false
	}
	cur := a.frame.ToLocal(pointer)

	var candidate geo.LocalRing
	switch a.kind {
	case TransformMove:
		candidate = e.applyMove(a, cur)
	case TransformRotate:
		candidate = e.applyRotate(a, cur, freeModifier)
	case TransformScale:
		candidate = e.applyScale(a, cur)
	case TransformStretch:
		candidate = e.applyStretch(a, cur)
	}
	if candidate == nil {
		return false
	}
	if !e.localWithinEnvelope(candidate) {
		return false
	}
	e.commit(obj, a.frame.FromLocalRing(candidate))
	return true
}

// EndTransform finishes the gesture, clearing the transient action,
// snap guides, and rotation readout. History was pushed at gesture
// start, so ending pushes nothing.
func (e *Engine) EndTransform() {
	e.action = nil
	e.guides = nil
	e.rotating = false
	e.readout = 0
}

// TransformActive reports whether a gesture is in progress.
func (e *Engine) TransformActive() bool {
	return e.action != nil
}

// applyMove translates the original ring by the pointer delta, snapped
// to the grid and then onto a nearby envelope edge.
func (e *Engine) applyMove(a *action, cur geo.XY) geo.LocalRing {
	delta := geo.XY{X: cur.X - a.startPtr.X, Y: cur.Y - a.startPtr.Y}
	if e.snap.Enabled && e.snap.GridM > 0 {
		delta.X = snapValue(delta.X, e.snap.GridM)
		delta.Y = snapValue(delta.Y, e.snap.GridM)
	}
	candidate := translate(a.original, delta)

	if e.snap.Enabled && e.snap.Envelope {
		if corr, ok := e.envelopeSnapCorrection(candidate); ok {
			candidate = translate(candidate, corr)
		}
	}
	if e.snap.Enabled && e.snap.Objects {
		e.guides = e.alignmentGuides(a.id, candidate, a.frame)
	}
	return candidate
}

// applyRotate rotates the original ring about its centroid by the
// bearing swept since gesture start, snapped to RotateSnapDeg unless
// the free modifier is held.
func (e *Engine) applyRotate(a *action, cur geo.XY, free bool) geo.LocalRing {
	angle := geo.BearingXY(a.pivot, cur) - a.startBearing
	if e.snap.Enabled && e.snap.Angle && !free {
		angle = snapValue(angle, e.cfg.RotateSnapDeg)
	}
	e.rotating = true
	e.readout = normalizeDeg(angle)

	out := make(geo.LocalRing, len(a.original))
	for i, p := range a.original {
		out[i] = geo.RotateXY(p, a.pivot, angle)
	}
	return out
}

// applyScale scales the original ring uniformly about its centroid by
// the pointer-distance ratio, clamped to the configured range.
func (e *Engine) applyScale(a *action, cur geo.XY) geo.LocalRing {
	factor := geo.DistanceXY(a.pivot, cur) / a.startDist
	factor = clampF(factor, e.cfg.ScaleMin, e.cfg.ScaleMax)

	out := make(geo.LocalRing, len(a.original))
	for i, p := range a.original {
		out[i] = geo.XY{
			X: a.pivot.X + (p.X-a.pivot.X)*factor,
			Y: a.pivot.Y + (p.Y-a.pivot.Y)*factor,
		}
	}
	return out
}

// applyStretch redefines the bounding-box sides owned by the grabbed
// handle from the (grid-snapped) pointer, then remaps every vertex by
// its normalized position in the original box, preserving the shape's
// relative proportions.
func (e *Engine) applyStretch(a *action, cur geo.XY) geo.LocalRing {
	if e.snap.Enabled && e.snap.GridM > 0 {
		cur.X = snapValue(cur.X, e.snap.GridM)
		cur.Y = snapValue(cur.Y, e.snap.GridM)
	}
	newMin, newMax := a.origMin, a.origMax
	switch a.handle {
	case model.HandleW:
		newMin.X = cur.X
	case model.HandleE:
		newMax.X = cur.X
	case model.HandleS:
		newMin.Y = cur.Y
	case model.HandleN:
		newMax.Y = cur.Y
	case model.HandleNW:
		newMin.X, newMax.Y = cur.X, cur.Y
	case model.HandleNE:
		newMax.X, newMax.Y = cur.X, cur.Y
	case model.HandleSW:
		newMin.X, newMin.Y = cur.X, cur.Y
	case model.HandleSE:
		newMax.X, newMin.Y = cur.X, cur.Y
	}
	if newMax.X-newMin.X < 0.1 || newMax.Y-newMin.Y < 0.1 {
		return nil // inverted or collapsed box
	}

	ow := a.origMax.X - a.origMin.X
	oh := a.origMax.Y - a.origMin.Y
	if ow <= 0 || oh <= 0 {
		return nil
	}
	out := make(geo.LocalRing, len(a.original))
	for i, p := range a.original {
		u := (p.X - a.origMin.X) / ow
		v := (p.Y - a.origMin.Y) / oh
		out[i] = geo.XY{
			X: newMin.X + u*(newMax.X-newMin.X),
			Y: newMin.Y + v*(newMax.Y-newMin.Y),
		}
	}
	return out
}

func translate(lr geo.LocalRing, d geo.XY) geo.LocalRing {
	out := make(geo.LocalRing, len(lr))
	for i, p := range lr {
		out[i] = geo.XY{X: p.X + d.X, Y: p.Y + d.Y}
	}
	return out
}

func localBBox(lr geo.LocalRing) (geo.XY, geo.XY) {
	return lr.BBox()
}

// snapValue rounds v to the nearest multiple of step.
func snapValue(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// normalizeDeg maps an angle to [0, 360).
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
