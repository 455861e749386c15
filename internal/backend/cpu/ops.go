package cpu

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/qmodes/internal/tensor"
)

// cdense views r as a gonum complex matrix sharing r's storage.
func cdense(r *tensor.RawTensor) *mat.CDense {
	return mat.NewCDense(r.Rows(), r.Cols(), r.Data())
}

// Identity returns the dim x dim identity with dims ([dim],[dim]).
func (cpu *CPUBackend) Identity(dim int) (*tensor.RawTensor, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("identity: %w: dim %d", tensor.ErrBadDims, dim)
	}
	out, err := tensor.NewRaw(tensor.Dims{{dim}, {dim}})
	if err != nil {
		return nil, fmt.Errorf("identity: %w", err)
	}
	for i := 0; i < dim; i++ {
		out.Set(i, i, 1)
	}
	return out, nil
}

// Basis returns the basis ket |index> of a dim-level mode, dims ([dim],[1]).
func (cpu *CPUBackend) Basis(dim, index int) (*tensor.RawTensor, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("basis: %w: dim %d", tensor.ErrBadDims, dim)
	}
	if index < 0 || index >= dim {
		return nil, fmt.Errorf("basis: %w: index %d for dim %d", tensor.ErrOutOfRange, index, dim)
	}
	out, err := tensor.NewRaw(tensor.Dims{{dim}, {1}})
	if err != nil {
		return nil, fmt.Errorf("basis: %w", err)
	}
	out.Set(index, 0, 1)
	return out, nil
}

// Add performs element-wise addition. Dims must match exactly.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if !a.Dims().Equal(b.Dims()) {
		return nil, fmt.Errorf("add: %w: %v vs %v", tensor.ErrDimensionMismatch, a.Dims(), b.Dims())
	}
	out := a.Clone()
	dst := out.Data()
	for i, v := range b.Data() {
		dst[i] += v
	}
	return out, nil
}

// Scale multiplies every element by c.
func (cpu *CPUBackend) Scale(a *tensor.RawTensor, c complex128) *tensor.RawTensor {
	out := a.Clone()
	dst := out.Data()
	for i := range dst {
		dst[i] *= c
	}
	return out
}

// Neg negates every element.
func (cpu *CPUBackend) Neg(a *tensor.RawTensor) *tensor.RawTensor {
	return cpu.Scale(a, -1)
}

// Adjoint returns the conjugate transpose with swapped dims.
func (cpu *CPUBackend) Adjoint(a *tensor.RawTensor) *tensor.RawTensor {
	return transposeRaw(a, true)
}

// Transpose returns the transpose with swapped dims.
func (cpu *CPUBackend) Transpose(a *tensor.RawTensor) *tensor.RawTensor {
	return transposeRaw(a, false)
}

func transposeRaw(a *tensor.RawTensor, conj bool) *tensor.RawTensor {
	d := a.Dims()
	out, err := tensor.NewRaw(tensor.Dims{d[1], d[0]})
	if err != nil {
		// a's dims were already validated.
		panic(fmt.Sprintf("transpose: %v", err))
	}
	rows, cols := a.Shape()
	src, dst := a.Data(), out.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := src[i*cols+j]
			if conj {
				v = cmplx.Conj(v)
			}
			dst[j*rows+i] = v
		}
	}
	return out
}

// Equal reports whether a and b have the same dims and equal elements
// within the configured tolerance.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) bool {
	if !a.Dims().Equal(b.Dims()) {
		return false
	}
	return mat.CEqualApprox(cdense(a), cdense(b), cpu.cfg.Tolerance)
}

// IsHermitian reports whether a is square and equal to its adjoint within
// the configured tolerance.
func (cpu *CPUBackend) IsHermitian(a *tensor.RawTensor) bool {
	if !a.IsSquare() {
		return false
	}
	n := a.Rows()
	data := a.Data()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(data[i*n+j]-cmplx.Conj(data[j*n+i])) > cpu.cfg.Tolerance {
				return false
			}
		}
	}
	return true
}
