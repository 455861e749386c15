// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the raw matrix layer beneath named tensors.
//
// # Overview
//
// A RawTensor is a dense complex128 matrix whose rows and columns are each
// a tensor product of axes. Dims records the per-axis sizes of both sides:
//
//	Dims{{2, 3}, {2, 3}}  // operator on a qubit and a qutrit (6x6)
//	Dims{{2}, {1}}        // qubit ket (2x1)
//	Dims{{}, {4}}         // one-sided bra (1x4)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/qmodes/backend/cpu"
//	    "github.com/born-ml/qmodes/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    sx := tensor.MustFromSlice(tensor.Dims{{2}, {2}}, []complex128{0, 1, 1, 0})
//	    id, _ := backend.Identity(2)
//	    both, _ := backend.Kron(sx, id)           // dims ([2 2],[2 2])
//	    swapped, _ := backend.PermuteSquare(both, []int{1, 0})
//	}
//
// # Backends
//
// Every numeric kernel lives behind the Backend interface. Backends never
// mutate their inputs and report failures by wrapping the sentinel errors
// of this package.
package tensor
