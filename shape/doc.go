// Package shape owns the mutable set of drawn building and parking
// footprints and everything interactive about them: a transform state
// machine driven by pointer events, grid/angle/envelope/object
// snapping, parametric template shapes that auto-fit the buildable
// envelope, and a bounded undo/redo history.
//
// # Event Contract
//
// The engine is single-threaded and synchronous. A host adapter
// resolves hit-testing and feeds the strict gesture sequence
//
//	StartTransform -> ApplyTransform* -> EndTransform
//
// with exactly one transform active at a time. Starting pushes one
// history entry, so a whole drag is one undo step; applying with no
// active transform is a no-op; ending clears the transient state and
// any snap guides.
//
// # Containment and Versioning
//
// Every candidate geometry is checked against the current envelope
// before committing. A candidate that escapes the envelope is
// rejected silently: the object keeps its last valid polygon and
// version, but the gesture stays active, which is the expected
// behavior while dragging along a boundary. Accepted mutations install
// a new ring value (never in-place edits) and increment the object's
// version.
//
// # Templates
//
// [Engine.CreateFromTemplate] sizes a parametric shape from the
// envelope area (about 12% for buildings, 6% for parking), orients it
// along the envelope's longest edge, and retries up to five times at
// 85% scale before reporting [ErrCannotFit], an advisory rather
// than a failure.
package shape
