// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for named tensors.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - gonum BLAS for complex matrix products
//   - Native and coordinate-remap axis permutations
//   - Partial traces over arbitrary axis subsets
//   - Scaling-and-squaring matrix exponential
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/qmodes/backend/cpu"
//	    "github.com/born-ml/qmodes/named"
//	    "github.com/born-ml/qmodes/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    sx := tensor.MustFromSlice(tensor.Dims{{2}, {2}}, []complex128{0, 1, 1, 0})
//	    a, _ := named.NewWithBackend(backend, sx, "a", named.Operator)
//	    b, _ := named.NewWithBackend(backend, sx, "b", named.Operator)
//	    ab, _ := a.Mul(b) // sx on a, sx on b
//	}
//
// # Performance
//
// Kronecker products, remaps and partial traces fan out over rows using
// Config.Parallel. Use WithWorkers to bound the number of goroutines.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each operation allocates its
// result and never mutates its inputs.
package cpu
