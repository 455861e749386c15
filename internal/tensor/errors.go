package tensor

import "errors"

// Backend sentinel errors. Backends wrap these with fmt.Errorf("op: %w")
// so callers can match them with errors.Is.
var (
	ErrBadDims           = errors.New("tensor: invalid dims")
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")
	ErrNonSquare         = errors.New("tensor: matrix is not square")
	ErrInvalidOrder      = errors.New("tensor: invalid axis order")
	ErrOutOfRange        = errors.New("tensor: index out of range")
)
