package cpu

import (
	"fmt"
	"slices"

	"github.com/born-ml/qmodes/internal/parallel"
	"github.com/born-ml/qmodes/internal/tensor"
)

// PartialTrace traces out every axis not listed in keep. The kept axes are
// returned in ascending axis order regardless of the order of keep.
// The input must have uniform dims (same dimension vector on both sides).
func (cpu *CPUBackend) PartialTrace(a *tensor.RawTensor, keep []int) (*tensor.RawTensor, error) {
	d := a.Dims()
	if !d.Uniform() {
		return nil, fmt.Errorf("ptrace: %w: dims %v are not uniform", tensor.ErrNonSquare, d)
	}
	dims := d[0]
	n := len(dims)

	kept := slices.Clone(keep)
	slices.Sort(kept)
	for i, k := range kept {
		if k < 0 || k >= n {
			return nil, fmt.Errorf("ptrace: %w: axis %d for %d axes", tensor.ErrOutOfRange, k, n)
		}
		if i > 0 && kept[i-1] == k {
			return nil, fmt.Errorf("ptrace: %w: duplicate axis %d", tensor.ErrInvalidOrder, k)
		}
	}

	var traced []int
	for ax := 0; ax < n; ax++ {
		if !slices.Contains(kept, ax) {
			traced = append(traced, ax)
		}
	}

	strides := dims.ComputeStrides()
	keepOff := axisOffsets(dims, strides, kept)
	traceOff := axisOffsets(dims, strides, traced)

	keepDims := make(tensor.Shape, len(kept))
	for i, k := range kept {
		keepDims[i] = dims[k]
	}
	out, err := tensor.NewRaw(tensor.Dims{keepDims, keepDims.Clone()})
	if err != nil {
		return nil, fmt.Errorf("ptrace: %w", err)
	}

	size := a.Cols()
	m := len(keepOff)
	src, dst := a.Data(), out.Data()
	parallel.For(m, func(x1 int) {
		for x2 := 0; x2 < m; x2++ {
			var sum complex128
			for _, t := range traceOff {
				sum += src[(keepOff[x1]+t)*size+keepOff[x2]+t]
			}
			dst[x1*m+x2] = sum
		}
	}, cpu.cfg.Parallel)
	return out, nil
}

// axisOffsets enumerates, in row-major order over the selected axes, the flat
// offset each multi-index contributes within the full index space.
func axisOffsets(dims tensor.Shape, strides, axes []int) []int {
	offsets := []int{0}
	for _, ax := range axes {
		next := make([]int, 0, len(offsets)*dims[ax])
		for _, off := range offsets {
			for v := 0; v < dims[ax]; v++ {
				next = append(next, off+v*strides[ax])
			}
		}
		offsets = next
	}
	return offsets
}
