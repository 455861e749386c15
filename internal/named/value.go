package named

import (
	"fmt"
	"strconv"
)

// Value is the result of a product: a *Tensor, or a Scalar once every mode
// has been contracted away.
type Value interface {
	fmt.Stringer
	value()
}

// Scalar is a fully contracted product. It carries no modes.
type Scalar complex128

// String formats the scalar as a complex number.
func (s Scalar) String() string {
	return strconv.FormatComplex(complex128(s), 'g', -1, 128)
}

func (Scalar) value() {}

// Prod multiplies operands left to right. Scalars produced along the way
// scale the following operand.
func Prod(ops ...*Tensor) (Value, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("prod: %w: no operands", ErrValidation)
	}
	var acc Value = ops[0]
	for i, op := range ops[1:] {
		var err error
		switch a := acc.(type) {
		case *Tensor:
			acc, err = a.Mul(op)
		case Scalar:
			acc = op.Scale(complex128(a))
		}
		if err != nil {
			return nil, fmt.Errorf("prod: operand %d: %w", i+1, err)
		}
	}
	return acc, nil
}
