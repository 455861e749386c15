// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/qmodes/internal/tensor"
)

// RawTensor is the low-level matrix representation.
//
// RawTensor provides:
//   - Axis structure via Dims(), flat size via Shape()
//   - Element access via At(), Set() and Data()
//   - Structural classification via Type(), IsScalar(), IsSquare()
//   - Deep copies via Clone() and dims-only reshapes via Reshape()
//
// Most users should use the named.Tensor type instead.
//
// Example:
//
//	raw, _ := tensor.FromSlice(tensor.Dims{{2}, {2}}, []complex128{0, 1, 1, 0})
//	x := raw.At(0, 1)     // 1
//	clone := raw.Clone()  // independent storage
type RawTensor = tensor.RawTensor

// Shape lists the per-axis sizes of one side of a matrix.
type Shape = tensor.Shape

// Dims is the axis structure of a matrix: Dims[0] for rows, Dims[1] for
// columns. An empty side has size 1.
type Dims = tensor.Dims

// Type is the structural type of a matrix (Operator, Ket or Bra).
type Type = tensor.Type

// Structural types.
const (
	Operator = tensor.Operator
	Ket      = tensor.Ket
	Bra      = tensor.Bra
)

// TypeOf classifies a rows x cols matrix.
func TypeOf(rows, cols int) Type {
	return tensor.TypeOf(rows, cols)
}

// NewRaw allocates a zero matrix with the given dims.
func NewRaw(dims Dims) (*RawTensor, error) {
	return tensor.NewRaw(dims)
}

// FromSlice builds a matrix from row-major data.
func FromSlice(dims Dims, data []complex128) (*RawTensor, error) {
	return tensor.FromSlice(dims, data)
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice(dims Dims, data []complex128) *RawTensor {
	return tensor.MustFromSlice(dims, data)
}

// CheckPermutation reports whether order is a permutation of [0, n).
func CheckPermutation(order []int, n int) error {
	return tensor.CheckPermutation(order, n)
}
