package tensor

import (
	"fmt"
	"slices"
)

// Shape lists the mode dimensions along one side of a matrix, outermost
// mode first. A side without modes has size 1.
type Shape []int

// NumElements is the side length: the product of the mode dimensions.
func (s Shape) NumElements() int {
	size := 1
	for _, d := range s {
		size *= d
	}
	return size
}

// Validate rejects modes of dimension zero or less.
func (s Shape) Validate() error {
	if i := slices.IndexFunc(s, func(d int) bool { return d < 1 }); i >= 0 {
		return fmt.Errorf("mode %d has dimension %d", i, s[i])
	}
	return nil
}

// Equal compares mode by mode.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns an independent copy. The copy of an empty side is non-nil.
func (s Shape) Clone() Shape {
	return append(make(Shape, 0, len(s)), s...)
}

// ComputeStrides gives, for each mode, the step in the flattened side
// index that advances that mode by one.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}

// Permuted returns the modes reordered so that result[k] = s[order[k]].
func (s Shape) Permuted(order []int) Shape {
	out := make(Shape, len(order))
	for k, o := range order {
		out[k] = s[o]
	}
	return out
}

// Dims holds the dimension vectors of both matrix sides:
// Dims[0] is the row ("bra") side and Dims[1] the column ("ket") side.
type Dims [2]Shape

// Rows returns the row-side shape.
func (d Dims) Rows() Shape { return d[0] }

// Cols returns the column-side shape.
func (d Dims) Cols() Shape { return d[1] }

// Size returns the matrix size implied by the dimension vectors.
func (d Dims) Size() (rows, cols int) {
	return d[0].NumElements(), d[1].NumElements()
}

// Validate checks both sides.
func (d Dims) Validate() error {
	for side := range d {
		if err := d[side].Validate(); err != nil {
			return fmt.Errorf("side %d: %w", side, err)
		}
	}
	return nil
}

// Equal reports whether both sides are equal.
func (d Dims) Equal(other Dims) bool {
	return d[0].Equal(other[0]) && d[1].Equal(other[1])
}

// Uniform reports whether the row and column dimension vectors are identical.
func (d Dims) Uniform() bool {
	return d[0].Equal(d[1])
}

// Clone returns a deep copy.
func (d Dims) Clone() Dims {
	return Dims{d[0].Clone(), d[1].Clone()}
}

// String renders the dims as [[r...] [c...]].
func (d Dims) String() string {
	return fmt.Sprintf("[%v %v]", []int(d[0]), []int(d[1]))
}

// CheckPermutation validates that order is a permutation of [0, n).
func CheckPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: got %d entries for %d axes", ErrInvalidOrder, len(order), n)
	}
	seen := make([]bool, n)
	for _, o := range order {
		if o < 0 || o >= n {
			return fmt.Errorf("%w: axis %d out of range [0, %d)", ErrInvalidOrder, o, n)
		}
		if seen[o] {
			return fmt.Errorf("%w: duplicate axis %d", ErrInvalidOrder, o)
		}
		seen[o] = true
	}
	return nil
}
