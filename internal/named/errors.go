package named

import (
	"errors"
	"fmt"
)

// Engine errors. Every failure returned by this package wraps one of these,
// so callers match with errors.Is. Backend failures are wrapped as they come
// and still match the tensor package sentinels.
var (
	ErrValidation    = errors.New("named: invalid names or kind")
	ErrAmbiguousKind = errors.New("named: kind cannot be inferred")
	ErrTypeMismatch  = errors.New("named: operand type or kind mismatch")
	ErrUnknownName   = errors.New("named: unknown mode name")
	ErrCollision     = errors.New("named: mode name already in use")
	ErrStructure     = errors.New("named: unsupported structure")
)

// Validation refinements. Each one also matches ErrValidation.
var (
	ErrMissingNames  = fmt.Errorf("%w: names are compulsory", ErrValidation)
	ErrNameType      = fmt.Errorf("%w: names must be a string, a list of strings or two lists of strings", ErrValidation)
	ErrDuplicateName = fmt.Errorf("%w: duplicate name", ErrValidation)
	ErrNameCount     = fmt.Errorf("%w: number of names does not match dims", ErrValidation)
	ErrEmptyName     = fmt.Errorf("%w: empty name", ErrValidation)
	ErrInvalidKind   = fmt.Errorf("%w: kind must be operator or state", ErrValidation)
)
