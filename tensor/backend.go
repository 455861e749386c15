// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/qmodes/internal/tensor"

// Backend defines the numeric primitives the named-mode engine relies on.
// A backend owns storage and every kernel: Kronecker products, matrix
// products, axis permutations, partial traces, exponentials and norms.
//
// Implementations:
//   - backend/cpu: pure Go on top of gonum
//
// Decorator backends for additional functionality:
//   - CountingBackend: records how often each axis primitive runs
//
// Example:
//
//	import (
//	    "github.com/born-ml/qmodes/backend/cpu"
//	    "github.com/born-ml/qmodes/named"
//	)
//
//	backend := cpu.New()
//	a, _ := named.NewWithBackend(backend, rawA, "a", named.Operator)
type Backend = tensor.Backend

// CountingBackend wraps a Backend and counts calls to its structural
// primitives (Kron, MatMul, Add, PermuteSquare, CoordinateRemap,
// PartialTrace, Expm).
type CountingBackend = tensor.CountingBackend

// NewCountingBackend wraps inner in a CountingBackend.
func NewCountingBackend(inner Backend) *CountingBackend {
	return tensor.NewCountingBackend(inner)
}

// Sentinel errors returned (wrapped) by backends.
var (
	ErrBadDims           = tensor.ErrBadDims
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
	ErrNonSquare         = tensor.ErrNonSquare
	ErrInvalidOrder      = tensor.ErrInvalidOrder
	ErrOutOfRange        = tensor.ErrOutOfRange
)
