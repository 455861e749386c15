// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/qmodes/internal/backend/cpu"
	"github.com/born-ml/qmodes/internal/parallel"
	"github.com/born-ml/qmodes/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of every tensor primitive
// on dense complex128 matrices, with gonum for BLAS and eigensolvers.
type Backend = internalcpu.CPUBackend

// Config controls numeric tolerances and kernel parallelism.
type Config = internalcpu.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/qmodes/backend/cpu"
//	    "github.com/born-ml/qmodes/named"
//	)
//
//	func main() {
//	    named.SetDefaultBackend(cpu.New())
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with cfg.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the default CPU configuration.
func DefaultConfig() Config {
	return internalcpu.DefaultConfig()
}

// WithWorkers returns cfg with kernel fan-out limited to n goroutines.
// n <= 1 disables parallel kernels.
func WithWorkers(cfg Config, n int) Config {
	if n <= 1 {
		cfg.Parallel = parallel.Sequential()
		return cfg
	}
	cfg.Parallel.Enabled = true
	cfg.Parallel.NumWorkers = n
	return cfg
}
