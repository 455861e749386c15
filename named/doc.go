// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package named provides tensors whose axes are addressed by mode name.
//
// # Overview
//
// A Tensor pairs a raw matrix with one ordered list of mode names per side
// and a Kind (Operator or State). Binary operations align operands by name,
// so operators on different modes combine without manual identity padding:
//
//	a, _ := named.New(sx, "a", named.Operator)
//	b, _ := named.New(sz, "b", named.Operator)
//	sum, _ := a.Add(b)  // sx ⊗ 1 + 1 ⊗ sz on modes [a b]
//
// # Multiplication
//
// Mul contracts the left operand's column names with the right operand's
// row names. Names absent from one operand are padded with fillers: the
// identity for operators, the vacuum |0> for states. A fully contracted
// result is returned as a Scalar.
//
//	v, _ := bra.Mul(ket)
//	if s, ok := v.(named.Scalar); ok {
//	    fmt.Println(complex128(s))
//	}
//
// # Backends
//
// New uses the package default backend, which is the CPU backend until
// SetDefaultBackend replaces it. NewWithBackend and Wrap bind an explicit
// backend.
package named
