package sparse

import "errors"

// Sentinel errors for the sparse package. All are returned, never panicked,
// from public constructors; panics remain reserved for programmer errors in
// unexported helpers (an out-of-range index reached after validation has
// already run is a bug in this package, not caller input).
var (
	// ErrInvalidShape is returned when requested dimensions are negative,
	// and by NewFromDense for a literal with no rows or no columns.
	ErrInvalidShape = errors.New("sparse: rows and cols must be >= 0")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrRowLengthMismatch indicates a dense row literal whose length does
	// not match the matrix's column count.
	ErrRowLengthMismatch = errors.New("sparse: row length does not match column count")

	// ErrDimensionMismatch indicates two matrices or a matrix/vector pair
	// with incompatible shapes for the requested operation.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)
