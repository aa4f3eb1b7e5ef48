package matrix

import "errors"

// Sentinel errors for matrix package operations.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaN indicates a NaN value was passed to Set; +Inf/-Inf are allowed
	// (they represent "no edge" throughout the planner).
	ErrNaN = errors.New("matrix: NaN is not a valid entry")
)
