package cpu

import (
	"fmt"

	"github.com/born-ml/qmodes/internal/parallel"
	"github.com/born-ml/qmodes/internal/tensor"
)

// Kron computes the Kronecker (tensor) product of ops, left to right.
// Row dims and column dims are concatenated in operand order.
func (cpu *CPUBackend) Kron(ops ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("kron: %w: no operands", tensor.ErrBadDims)
	}
	result := ops[0].Clone()
	for _, op := range ops[1:] {
		next, err := kron2(result, op, cpu.cfg.Parallel)
		if err != nil {
			return nil, fmt.Errorf("kron: %w", err)
		}
		result = next
	}
	return result, nil
}

// kron2 computes a ⊗ b. Each (row of a, row of b) pair owns one output row.
func kron2(a, b *tensor.RawTensor, cfg parallel.Config) (*tensor.RawTensor, error) {
	ad, bd := a.Dims(), b.Dims()
	dims := tensor.Dims{
		append(ad.Rows().Clone(), bd.Rows()...),
		append(ad.Cols().Clone(), bd.Cols()...),
	}
	out, err := tensor.NewRaw(dims)
	if err != nil {
		return nil, err
	}

	ar, ac := a.Shape()
	br, bc := b.Shape()
	oc := ac * bc
	src, other, dst := a.Data(), b.Data(), out.Data()

	parallel.ForGrid(ar, br, func(i, k int) {
		row := dst[(i*br+k)*oc:]
		for j := 0; j < ac; j++ {
			v := src[i*ac+j]
			if v == 0 {
				continue
			}
			for l := 0; l < bc; l++ {
				row[j*bc+l] = v * other[k*bc+l]
			}
		}
	}, cfg)
	return out, nil
}
