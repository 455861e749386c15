package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"

	"github.com/born-ml/qmodes/internal/tensor"
)

// MatMul performs matrix multiplication.
// (M, K) @ (K, N) -> (M, N); the result keeps a's row dims and b's column dims.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("matmul: %w: [%d,%d] @ [%d,%d]",
			tensor.ErrDimensionMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	result, err := tensor.NewRaw(tensor.Dims{a.Dims().Rows(), b.Dims().Cols()})
	if err != nil {
		return nil, fmt.Errorf("matmul: %w", err)
	}
	gemm(result, a, b)
	return result, nil
}

// gemm computes c = a @ b with the gonum complex BLAS.
func gemm(c, a, b *tensor.RawTensor) {
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, general(a), general(b), 0, general(c))
}

// general exposes r's storage as a cblas128 general matrix.
func general(r *tensor.RawTensor) cblas128.General {
	return cdense(r).RawCMatrix()
}

// Power raises a square matrix to a non-negative integer power by repeated
// squaring. a^0 is the identity carrying a's dims.
func (cpu *CPUBackend) Power(a *tensor.RawTensor, n int) (*tensor.RawTensor, error) {
	if !a.IsSquare() {
		return nil, fmt.Errorf("power: %w: %dx%d", tensor.ErrNonSquare, a.Rows(), a.Cols())
	}
	if n < 0 {
		return nil, fmt.Errorf("power: %w: negative exponent %d", tensor.ErrOutOfRange, n)
	}

	result, err := tensor.NewRaw(a.Dims())
	if err != nil {
		return nil, fmt.Errorf("power: %w", err)
	}
	for i := 0; i < a.Rows(); i++ {
		result.Set(i, i, 1)
	}

	base := a.Clone()
	scratch := a.Clone()
	for n > 0 {
		if n&1 == 1 {
			gemm(scratch, result, base)
			result, scratch = scratch, result
		}
		n >>= 1
		if n > 0 {
			gemm(scratch, base, base)
			base, scratch = scratch, base
		}
	}
	return result, nil
}
