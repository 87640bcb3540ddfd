package shape

import (
	"time"

	"github.com/groundplan/groundplan/model"
)

// snapshot is one history entry: a full deep copy of the drawn-object
// sets plus the active selection.
type snapshot struct {
	buildings []*model.DrawnObject
	parkings  []*model.DrawnObject
	activeID  string
	takenAt   time.Time
	label     string
}

// history is a bounded linear undo history. entries[0:cursor] are the
// undoable past states; pushing while the cursor is not at the tip
// discards the forward (redo) entries. suppress blocks the re-entrant
// pushes that state restoration would otherwise trigger.
type history struct {
	entries  []snapshot
	cursor   int
	limit    int
	suppress bool
}

// pushHistory records the current state before a mutation.
func (e *Engine) pushHistory(label string) {
	h := &e.history
	if h.suppress {
		return
	}
	h.entries = append(h.entries[:h.cursor], e.takeSnapshot(label))
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.cursor = len(h.entries)
}

// Undo restores the previous snapshot. Returns false when there is
// nothing to undo.
func (e *Engine) Undo() bool {
	h := &e.history
	if h.cursor == 0 {
		return false
	}
	if h.cursor == len(h.entries) {
		// At the tip: bank the current state so redo can return here.
		h.entries = append(h.entries, e.takeSnapshot("tip"))
	}
	h.cursor--
	e.restoreSnapshot(h.entries[h.cursor])
	return true
}

// Redo re-applies an undone snapshot. Returns false at the tip.
func (e *Engine) Redo() bool {
	h := &e.history
	if h.cursor+1 >= len(h.entries) {
		return false
	}
	h.cursor++
	e.restoreSnapshot(h.entries[h.cursor])
	return true
}

// CanUndo reports whether an undo step is available.
func (e *Engine) CanUndo() bool { return e.history.cursor > 0 }

// CanRedo reports whether a redo step is available.
func (e *Engine) CanRedo() bool { return e.history.cursor+1 < len(e.history.entries) }

func (e *Engine) takeSnapshot(label string) snapshot {
	s := snapshot{
		activeID: e.activeID,
		takenAt:  time.Now(),
		label:    label,
	}
	for _, o := range e.objects {
		if o.Kind == model.KindParking {
			s.parkings = append(s.parkings, o.Clone())
		} else {
			s.buildings = append(s.buildings, o.Clone())
		}
	}
	return s
}

// restoreSnapshot replaces the arena with a snapshot's deep copy,
// preserving creation order (buildings and parkings interleave by
// CreatedAt).
func (e *Engine) restoreSnapshot(s snapshot) {
	e.history.suppress = true
	defer func() { e.history.suppress = false }()

	objs := make([]*model.DrawnObject, 0, len(s.buildings)+len(s.parkings))
	bi, pi := 0, 0
	for bi < len(s.buildings) || pi < len(s.parkings) {
		switch {
		case bi == len(s.buildings):
			objs = append(objs, s.parkings[pi].Clone())
			pi++
		case pi == len(s.parkings):
			objs = append(objs, s.buildings[bi].Clone())
			bi++
		case s.buildings[bi].CreatedAt.Before(s.parkings[pi].CreatedAt):
			objs = append(objs, s.buildings[bi].Clone())
			bi++
		default:
			objs = append(objs, s.parkings[pi].Clone())
			pi++
		}
	}
	e.objects = objs
	e.activeID = s.activeID
	e.action = nil
	e.guides = nil
}
