// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package named

import (
	"github.com/born-ml/qmodes/internal/named"
	"github.com/born-ml/qmodes/tensor"
)

// Tensor is a matrix whose row and column axes carry mode names.
type Tensor = named.Tensor

// Kind is the semantic role of a Tensor.
type Kind = named.Kind

// Kinds. KindAuto asks the constructor to infer the kind.
const (
	KindAuto = named.KindAuto
	Operator = named.Operator
	State    = named.State
)

// OverlapPolicy decides the order of contracted names in Mul.
type OverlapPolicy = named.OverlapPolicy

// Overlap policies.
const (
	OverlapLeftFirst  = named.OverlapLeftFirst
	OverlapRightFirst = named.OverlapRightFirst
)

// Value is the result of Mul and Prod: a *Tensor or a Scalar.
type Value = named.Value

// Scalar is a fully contracted product.
type Scalar = named.Scalar

// Errors. Every failure wraps one of the first six, so callers match with
// errors.Is. The refinements also match ErrValidation.
var (
	ErrValidation    = named.ErrValidation
	ErrAmbiguousKind = named.ErrAmbiguousKind
	ErrTypeMismatch  = named.ErrTypeMismatch
	ErrUnknownName   = named.ErrUnknownName
	ErrCollision     = named.ErrCollision
	ErrStructure     = named.ErrStructure

	ErrMissingNames  = named.ErrMissingNames
	ErrNameType      = named.ErrNameType
	ErrDuplicateName = named.ErrDuplicateName
	ErrNameCount     = named.ErrNameCount
	ErrEmptyName     = named.ErrEmptyName
	ErrInvalidKind   = named.ErrInvalidKind
)

// New wraps obj with mode names using the default backend.
// obj is a *tensor.RawTensor or a *Tensor.
func New(obj any, names any, kind Kind) (*Tensor, error) {
	return named.New(obj, names, kind)
}

// NewWithBackend is New with an explicit backend.
func NewWithBackend(b tensor.Backend, obj any, names any, kind Kind) (*Tensor, error) {
	return named.NewWithBackend(b, obj, names, kind)
}

// Wrap names the row and column axes of raw explicitly.
func Wrap(b tensor.Backend, raw *tensor.RawTensor, rows, cols []string, kind Kind) (*Tensor, error) {
	return named.Wrap(b, raw, rows, cols, kind)
}

// SetDefaultBackend sets the backend used by New.
func SetDefaultBackend(b tensor.Backend) {
	named.SetDefaultBackend(b)
}

// DefaultBackend returns the backend used by New.
func DefaultBackend() tensor.Backend {
	return named.DefaultBackend()
}

// TensorProduct combines operands of one kind on disjoint modes.
func TensorProduct(ops ...*Tensor) (*Tensor, error) {
	return named.TensorProduct(ops...)
}

// Prod multiplies operands left to right.
func Prod(ops ...*Tensor) (Value, error) {
	return named.Prod(ops...)
}

// Ket2DM returns |psi><psi| for a state.
func Ket2DM(t *Tensor) (*Tensor, error) {
	return named.Ket2DM(t)
}

// Fidelity returns the Uhlmann fidelity of two states on the same modes.
func Fidelity(a, b *Tensor) (float64, error) {
	return named.Fidelity(a, b)
}

// TraceOutLossModes traces out every mode whose name contains "loss".
func TraceOutLossModes(t *Tensor) (*Tensor, error) {
	return named.TraceOutLossModes(t)
}

// TraceOutAllButSpins keeps only the Alice, Bob and Charlie spin modes.
func TraceOutAllButSpins(t *Tensor) (*Tensor, error) {
	return named.TraceOutAllButSpins(t)
}
