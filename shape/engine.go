package shape

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

// rotationHandleOffsetM is how far the rotation handle floats above
// the object's bounding box.
const rotationHandleOffsetM = 5

// Engine owns the drawn-object arena and all interactive state. It is
// not safe for concurrent use; the host adapter drives it from a
// single event loop.
type Engine struct {
	cfg  Config
	snap SnapSettings

	envelope      geo.Ring
	frame         *geo.Frame
	localEnvelope geo.LocalRing

	objects  []*model.DrawnObject
	activeID string

	action   *action
	guides   []model.SnapGuide
	readout  float64
	rotating bool

	history history
}

// NewEngine returns an engine with no envelope and no objects.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:     cfg,
		snap:    DefaultSnapSettings(),
		history: history{limit: cfg.HistoryLimit},
	}
}

// SetEnvelope installs the buildable envelope that constrains every
// object. Existing objects are left untouched; subsequent transforms
// are checked against the new bound.
func (e *Engine) SetEnvelope(env geo.Ring) {
	env = env.Close()
	e.envelope = env
	if len(env.Open()) >= 3 {
		e.frame = geo.FrameForRing(env)
		e.localEnvelope = e.frame.ToLocalRing(env)
	} else {
		e.frame = nil
		e.localEnvelope = nil
	}
}

// Envelope returns the current envelope ring.
func (e *Engine) Envelope() geo.Ring {
	return e.envelope.Clone()
}

// SetSnapSettings replaces the snapping configuration.
func (e *Engine) SetSnapSettings(s SnapSettings) {
	e.snap = s
}

// SnapSettings returns the current snapping configuration.
func (e *Engine) SnapSettings() SnapSettings {
	return e.snap
}

// Objects returns copies of every drawn object in creation order.
func (e *Engine) Objects() []*model.DrawnObject {
	return model.CloneObjects(e.objects)
}

// Object returns a copy of one object by id.
func (e *Engine) Object(id string) (*model.DrawnObject, bool) {
	if o := e.lookup(id); o != nil {
		return o.Clone(), true
	}
	return nil, false
}

// Select marks an object as active. Returns false for unknown ids.
func (e *Engine) Select(id string) bool {
	if e.lookup(id) == nil {
		return false
	}
	e.activeID = id
	return true
}

// ClearSelection clears the active object (the Escape action). It does
// not cancel an in-progress drag.
func (e *Engine) ClearSelection() {
	e.activeID = ""
}

// ActiveID returns the selected object's id, or "".
func (e *Engine) ActiveID() string {
	return e.activeID
}

// AddObject inserts a manually drawn polygon. The ring must lie within
// the current envelope; ErrOutsideEnvelope is returned otherwise.
func (e *Engine) AddObject(kind model.ObjectKind, ring geo.Ring) (string, error) {
	ring = ring.Close()
	if len(ring.Open()) < 3 {
		return "", ErrDegenerateRing
	}
	if !e.ringWithinEnvelope(ring) {
		return "", ErrOutsideEnvelope
	}
	e.pushHistory("add " + string(kind))
	obj := e.newObject(kind, ring)
	e.objects = append(e.objects, obj)
	e.activeID = obj.ID
	return obj.ID, nil
}

// Delete removes an object. Returns false for unknown ids.
func (e *Engine) Delete(id string) bool {
	for i, o := range e.objects {
		if o.ID == id {
			e.pushHistory("delete " + string(o.Kind))
			e.objects = append(e.objects[:i], e.objects[i+1:]...)
			if e.activeID == id {
				e.activeID = ""
			}
			return true
		}
	}
	return false
}

// ClearAll removes every drawn object.
func (e *Engine) ClearAll() {
	if len(e.objects) == 0 {
		return
	}
	e.pushHistory("clear all")
	e.objects = nil
	e.activeID = ""
}

// Guides returns the transient alignment guides from the current move
// gesture. Guides are advisory; they never mutate geometry.
func (e *Engine) Guides() []model.SnapGuide {
	return e.guides
}

// RotationReadout returns the current rotation angle in degrees and
// whether a rotate gesture is in progress.
func (e *Engine) RotationReadout() (float64, bool) {
	return e.readout, e.rotating
}

// Handles returns the transform handles for an object: eight stretch
// handles on its bounding box plus one rotation handle floating above,
// all as geographic points. Returns nil for unknown ids or when no
// frame is available.
func (e *Engine) Handles(id string) []model.Handle {
	obj := e.lookup(id)
	if obj == nil {
		return nil
	}
	frame := e.objectFrame(obj)
	lr := frame.ToLocalRing(obj.Polygon)
	min, max := lr.BBox()
	cx := (min.X + max.X) / 2
	cy := (min.Y + max.Y) / 2

	points := map[model.HandleID]geo.XY{
		model.HandleNW: {X: min.X, Y: max.Y},
		model.HandleN:  {X: cx, Y: max.Y},
		model.HandleNE: {X: max.X, Y: max.Y},
		model.HandleE:  {X: max.X, Y: cy},
		model.HandleSE: {X: max.X, Y: min.Y},
		model.HandleS:  {X: cx, Y: min.Y},
		model.HandleSW: {X: min.X, Y: min.Y},
		model.HandleW:  {X: min.X, Y: cy},
	}
	handles := make([]model.Handle, 0, len(model.StretchHandles)+1)
	for _, hid := range model.StretchHandles {
		handles = append(handles, model.Handle{ID: hid, Point: frame.FromLocal(points[hid])})
	}
	handles = append(handles, model.Handle{
		ID:    model.HandleRotate,
		Point: frame.FromLocal(geo.XY{X: cx, Y: max.Y + rotationHandleOffsetM}),
	})
	return handles
}

// CoverageRatio returns total drawn building area divided by envelope
// area, for plan summaries. Zero when no envelope is set.
func (e *Engine) CoverageRatio() float64 {
	envArea := e.envelope.Area()
	if envArea <= 0 {
		return 0
	}
	var built float64
	for _, o := range e.objects {
		if o.Kind == model.KindBuilding {
			built += o.AreaM2
		}
	}
	return built / envArea
}

// lookup returns the arena object (not a copy) or nil.
func (e *Engine) lookup(id string) *model.DrawnObject {
	if id == "" {
		return nil
	}
	for _, o := range e.objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// objectFrame returns the engine frame, or a frame centered on the
// object when no envelope has been set.
func (e *Engine) objectFrame(obj *model.DrawnObject) *geo.Frame {
	if e.frame != nil {
		return e.frame
	}
	return geo.FrameForRing(obj.Polygon)
}

func (e *Engine) newObject(kind model.ObjectKind, ring geo.Ring) *model.DrawnObject {
	return &model.DrawnObject{
		ID:        uuid.NewString(),
		Kind:      kind,
		Polygon:   ring.Clone(),
		AreaM2:    ring.Area(),
		CreatedAt: time.Now(),
		Version:   1,
	}
}

// ringWithinEnvelope reports whether every vertex of the geographic
// ring lies inside the envelope, with floating-point slack. With no
// envelope set, everything is within bounds.
func (e *Engine) ringWithinEnvelope(ring geo.Ring) bool {
	if len(e.localEnvelope) == 0 {
		return true
	}
	for _, p := range ring.Open() {
		q := e.frame.ToLocal(p)
		if !geo.PointInRingXY(q, e.localEnvelope) &&
			geo.DistanceToRing(q, e.localEnvelope) > e.cfg.ContainmentTolM {
			return false
		}
	}
	return true
}

// localWithinEnvelope is ringWithinEnvelope for rings already in the
// engine frame.
func (e *Engine) localWithinEnvelope(lr geo.LocalRing) bool {
	if len(e.localEnvelope) == 0 {
		return true
	}
	for _, q := range lr {
		if !geo.PointInRingXY(q, e.localEnvelope) &&
			geo.DistanceToRing(q, e.localEnvelope) > e.cfg.ContainmentTolM {
			return false
		}
	}
	return true
}

// commit installs a new polygon on an object and bumps its version.
func (e *Engine) commit(obj *model.DrawnObject, ring geo.Ring) {
	obj.Polygon = ring
	obj.AreaM2 = ring.Area()
	obj.Version++
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
