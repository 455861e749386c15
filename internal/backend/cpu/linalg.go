package cpu

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/qmodes/internal/tensor"
)

// Hermitian matrices are handled through their real symmetric embedding
//
//	H = A + iB  ->  M = [[A, -B], [B, A]]
//
// which gonum's EigenSym can factorize. Every eigenvalue of H appears twice
// in M, and functions of M map back to functions of H blockwise.

// embed returns the real symmetric embedding of the Hermitian matrix h.
func embed(h *tensor.RawTensor) *mat.SymDense {
	n := h.Rows()
	m := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := h.At(i, j)
			if j >= i {
				m.SetSym(i, j, real(v))
				m.SetSym(n+i, n+j, real(v))
			}
			m.SetSym(n+i, j, imag(v))
		}
	}
	return m
}

// embedGeneral returns the real embedding of an arbitrary square complex
// matrix. Both off-diagonal blocks are filled independently.
func embedGeneral(a *tensor.RawTensor) *mat.Dense {
	n := a.Rows()
	m := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			m.Set(i, j, real(v))
			m.Set(i, n+j, -imag(v))
			m.Set(n+i, j, imag(v))
			m.Set(n+i, n+j, real(v))
		}
	}
	return m
}

// hermitianEigenvalues returns the eigenvalues of h, each listed twice.
func hermitianEigenvalues(h *tensor.RawTensor) ([]float64, error) {
	var es mat.EigenSym
	if ok := es.Factorize(embed(h), false); !ok {
		return nil, fmt.Errorf("eigen: factorization did not converge")
	}
	return es.Values(nil), nil
}

// hermitianSqrt returns the principal square root of the positive
// semi-definite Hermitian matrix h. Negative eigenvalues from rounding are
// clipped to zero.
func hermitianSqrt(h *tensor.RawTensor) (*tensor.RawTensor, error) {
	var es mat.EigenSym
	if ok := es.Factorize(embed(h), true); !ok {
		return nil, fmt.Errorf("sqrtm: factorization did not converge")
	}
	values := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	size := len(values)
	scaled := mat.NewDense(size, size, nil)
	scaled.Copy(&vecs)
	for k, v := range values {
		s := math.Sqrt(math.Max(v, 0))
		for i := 0; i < size; i++ {
			scaled.Set(i, k, scaled.At(i, k)*s)
		}
	}
	var root mat.Dense
	root.Mul(scaled, vecs.T())

	out, err := tensor.NewRaw(h.Dims())
	if err != nil {
		return nil, err
	}
	n := h.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, complex(root.At(i, j), root.At(n+i, j)))
		}
	}
	return out, nil
}

// projector returns |v><v| for a ket and v^dagger v for a bra.
func (cpu *CPUBackend) projector(v *tensor.RawTensor) (*tensor.RawTensor, error) {
	if v.Type() == tensor.Bra {
		return cpu.MatMul(cpu.Adjoint(v), v)
	}
	return cpu.MatMul(v, cpu.Adjoint(v))
}

// Norm returns the L2 norm of a ket or bra and the trace norm of an operator.
func (cpu *CPUBackend) Norm(a *tensor.RawTensor) (float64, error) {
	switch a.Type() {
	case tensor.Ket, tensor.Bra:
		var sum float64
		for _, v := range a.Data() {
			sum += real(v)*real(v) + imag(v)*imag(v)
		}
		return math.Sqrt(sum), nil
	default:
		gram, err := cpu.MatMul(cpu.Adjoint(a), a)
		if err != nil {
			return 0, fmt.Errorf("norm: %w", err)
		}
		values, err := hermitianEigenvalues(gram)
		if err != nil {
			return 0, fmt.Errorf("norm: %w", err)
		}
		return sumSqrtPositive(values) / 2, nil
	}
}

// Fidelity computes the Uhlmann fidelity Tr sqrt(sqrt(a) b sqrt(a)).
// Kets and bras are promoted to density matrices; for a pure first operand
// its projector serves as its own square root.
func (cpu *CPUBackend) Fidelity(a, b *tensor.RawTensor) (float64, error) {
	aPure := a.Type() != tensor.Operator
	bPure := b.Type() != tensor.Operator
	if !aPure && bPure {
		// Take the root of the mixed operand only.
		return cpu.Fidelity(b, a)
	}

	var sqrtA *tensor.RawTensor
	var err error
	if aPure {
		if sqrtA, err = cpu.projector(a); err != nil {
			return 0, fmt.Errorf("fidelity: %w", err)
		}
		if bPure {
			if b, err = cpu.projector(b); err != nil {
				return 0, fmt.Errorf("fidelity: %w", err)
			}
		}
	} else {
		if !a.IsSquare() {
			return 0, fmt.Errorf("fidelity: %w", tensor.ErrNonSquare)
		}
		if sqrtA, err = hermitianSqrt(a); err != nil {
			return 0, fmt.Errorf("fidelity: %w", err)
		}
	}

	if !sqrtA.Dims().Equal(b.Dims()) {
		return 0, fmt.Errorf("fidelity: %w: %v vs %v", tensor.ErrDimensionMismatch, sqrtA.Dims(), b.Dims())
	}

	inner, err := cpu.MatMul(sqrtA, b)
	if err != nil {
		return 0, fmt.Errorf("fidelity: %w", err)
	}
	if inner, err = cpu.MatMul(inner, sqrtA); err != nil {
		return 0, fmt.Errorf("fidelity: %w", err)
	}
	values, err := hermitianEigenvalues(hermitianPart(inner))
	if err != nil {
		return 0, fmt.Errorf("fidelity: %w", err)
	}
	return sumSqrtPositive(values) / 2, nil
}

// hermitianPart returns (m + m^dagger) / 2, removing rounding asymmetry.
func hermitianPart(m *tensor.RawTensor) *tensor.RawTensor {
	out := m.Clone()
	n := m.Rows()
	src, dst := m.Data(), out.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[i*n+j] = (src[i*n+j] + cmplx.Conj(src[j*n+i])) / 2
		}
	}
	return out
}

// sumSqrtPositive sums the square roots of the positive values.
func sumSqrtPositive(values []float64) float64 {
	roots := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			roots = append(roots, math.Sqrt(v))
		}
	}
	return floats.Sum(roots)
}
