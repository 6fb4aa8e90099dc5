package lpstate

import "errors"

// Sentinel errors. A nil state or a dimension mismatch is a programming
// error from the engine's point of view (spec.md §7: "structural
// preconditions... must be reported as such"), not a recoverable Warning.
var (
	// ErrNilState indicates a nil *State was passed where one was required.
	ErrNilState = errors.New("lpstate: state is nil")

	// ErrDimensionMismatch indicates the parallel vectors/matrix passed to
	// NewState do not agree on row or column count.
	ErrDimensionMismatch = errors.New("lpstate: dimension mismatch")

	// ErrOutOfRange indicates a requested row or column index is outside
	// the state's current bounds.
	ErrOutOfRange = errors.New("lpstate: index out of range")
)
