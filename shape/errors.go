package shape

import "errors"

// Advisory errors returned by the engine. None of them is fatal: the
// host surfaces them as hints and the engine state stays valid.
var (
	// ErrCannotFit means a template shape could not be placed inside
	// the envelope after all retry attempts; the user should draw the
	// footprint manually.
	ErrCannotFit = errors.New("shape: template does not fit the envelope")

	// ErrOutsideEnvelope means a manually added polygon escapes the
	// buildable envelope.
	ErrOutsideEnvelope = errors.New("shape: polygon outside the envelope")

	// ErrDegenerateRing means the supplied polygon has fewer than
	// three distinct vertices.
	ErrDegenerateRing = errors.New("shape: degenerate polygon")
)
