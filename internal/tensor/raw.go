package tensor

import (
	"fmt"
	"strings"
)

// RawTensor is the low-level numeric object: a dense complex128 matrix in
// row-major order together with the per-axis dimension vectors of both sides.
//
// The row count is the product of Dims[0] and the column count the product of
// Dims[1]. Backends never mutate a RawTensor they receive; every primitive
// returns a fresh one.
type RawTensor struct {
	data []complex128
	dims Dims
	rows int
	cols int
}

// NewRaw creates a zero-filled RawTensor with the given dims.
func NewRaw(dims Dims) (*RawTensor, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDims, err)
	}
	rows, cols := dims.Size()
	return &RawTensor{
		data: make([]complex128, rows*cols),
		dims: dims.Clone(),
		rows: rows,
		cols: cols,
	}, nil
}

// FromSlice creates a RawTensor from row-major data.
// The slice is copied into the tensor's memory.
func FromSlice(dims Dims, data []complex128) (*RawTensor, error) {
	r, err := NewRaw(dims)
	if err != nil {
		return nil, err
	}
	if len(data) != len(r.data) {
		return nil, fmt.Errorf("%w: dims %v require %d elements, but got %d",
			ErrBadDims, dims, len(r.data), len(data))
	}
	copy(r.data, data)
	return r, nil
}

// MustFromSlice is FromSlice that panics on error. Intended for literals in
// tests and examples.
func MustFromSlice(dims Dims, data []complex128) *RawTensor {
	r, err := FromSlice(dims, data)
	if err != nil {
		panic(err)
	}
	return r
}

// Dims returns a copy of the dimension vectors.
func (r *RawTensor) Dims() Dims {
	return r.dims.Clone()
}

// Shape returns the matrix size (rows, cols).
func (r *RawTensor) Shape() (rows, cols int) {
	return r.rows, r.cols
}

// Rows returns the number of matrix rows.
func (r *RawTensor) Rows() int { return r.rows }

// Cols returns the number of matrix columns.
func (r *RawTensor) Cols() int { return r.cols }

// Data returns the row-major data slice.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (r *RawTensor) Data() []complex128 {
	return r.data
}

// At returns the element at row i, column j.
// Panics if indices are out of bounds.
func (r *RawTensor) At(i, j int) complex128 {
	r.checkIndex(i, j)
	return r.data[i*r.cols+j]
}

// Set sets the element at row i, column j.
// Panics if indices are out of bounds.
func (r *RawTensor) Set(i, j int, v complex128) {
	r.checkIndex(i, j)
	r.data[i*r.cols+j] = v
}

func (r *RawTensor) checkIndex(i, j int) {
	if i < 0 || i >= r.rows || j < 0 || j >= r.cols {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for %dx%d tensor", i, j, r.rows, r.cols))
	}
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		data: append([]complex128(nil), r.data...),
		dims: r.dims.Clone(),
		rows: r.rows,
		cols: r.cols,
	}
}

// Reshape returns a copy of r relabeled with new dimension vectors.
// The matrix size must not change: only axes of size 1 may appear or vanish,
// or axes may be regrouped.
func (r *RawTensor) Reshape(dims Dims) (*RawTensor, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w: %w", ErrBadDims, err)
	}
	rows, cols := dims.Size()
	if rows != r.rows || cols != r.cols {
		return nil, fmt.Errorf("reshape: %w: %v (%dx%d) -> %v (%dx%d)",
			ErrDimensionMismatch, r.dims, r.rows, r.cols, dims, rows, cols)
	}
	out := r.Clone()
	out.dims = dims.Clone()
	return out, nil
}

// Type returns the structural type of the tensor.
func (r *RawTensor) Type() Type {
	return TypeOf(r.rows, r.cols)
}

// IsScalar reports whether the tensor is 1x1.
func (r *RawTensor) IsScalar() bool {
	return r.rows == 1 && r.cols == 1
}

// IsSquare reports whether the matrix is square.
func (r *RawTensor) IsSquare() bool {
	return r.rows == r.cols
}

// String returns a human-readable representation of the tensor.
func (r *RawTensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "RawTensor[%s] %dx%d dims=%v\n", r.Type(), r.rows, r.cols, r.dims)
	for i := 0; i < r.rows; i++ {
		sb.WriteString(" [")
		for j := 0; j < r.cols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%.4g", r.data[i*r.cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
