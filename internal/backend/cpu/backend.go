// Package cpu implements the Tensor Backend on the CPU, on top of gonum.
package cpu

import (
	"github.com/born-ml/qmodes/internal/parallel"
	"github.com/born-ml/qmodes/internal/tensor"
)

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// Config controls numeric tolerances and kernel parallelism.
type Config struct {
	Parallel  parallel.Config // Row fan-out for Kron, remap and trace kernels.
	Tolerance float64         // Absolute/relative tolerance for Equal and IsHermitian.
}

// DefaultConfig returns the default CPU configuration.
func DefaultConfig() Config {
	return Config{
		Parallel:  parallel.DefaultConfig(),
		Tolerance: 1e-12,
	}
}

// CPUBackend implements tensor operations on dense complex128 matrices.
type CPUBackend struct {
	cfg Config
}

// New creates a new CPU backend with the default configuration.
func New() *CPUBackend {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a CPU backend with cfg. A non-positive tolerance is
// replaced by the default.
func NewWithConfig(cfg Config) *CPUBackend {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultConfig().Tolerance
	}
	return &CPUBackend{cfg: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Config returns the backend configuration.
func (cpu *CPUBackend) Config() Config {
	return cpu.cfg
}
