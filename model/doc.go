// Package model defines the intermediate representation shared by the
// site-planning packages: classified boundary segments, resolved
// setbacks, forbidden-zone bands, hatch lines, drawn objects, and the
// transient values exchanged with a host UI (handles, snap guides).
//
// The types here are plain data. Algorithms that produce them live in
// the setback and shape packages; geometric primitives live in geo.
//
// # Change Detection
//
// [DrawnObject.Version] is the one correctness-critical field: every
// accepted geometry mutation increments it, so consumers (labels,
// handles, dimension overlays) can detect change without comparing
// polygons structurally. Rings inside a DrawnObject must never be
// mutated in place; mutations always install a new ring value.
package model
