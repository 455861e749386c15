package cpu

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/qmodes/internal/tensor"
)

// Expm computes the matrix exponential of a square matrix. The complex
// matrix A + iB is lifted to the real block matrix [[A, -B], [B, A]], whose
// exponential has the same block structure, so gonum's real Padé
// exponential gives exp(A + iB) from its left column of blocks.
func (cpu *CPUBackend) Expm(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	if !a.IsSquare() {
		return nil, fmt.Errorf("expm: %w: %dx%d", tensor.ErrNonSquare, a.Rows(), a.Cols())
	}
	for _, v := range a.Data() {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return nil, fmt.Errorf("expm: non-finite input")
		}
	}

	var e mat.Dense
	e.Exp(embedGeneral(a))

	out, err := tensor.NewRaw(a.Dims())
	if err != nil {
		return nil, fmt.Errorf("expm: %w", err)
	}
	n := a.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, complex(e.At(i, j), e.At(n+i, j)))
		}
	}
	return out, nil
}
