package cpu

import (
	"fmt"

	"github.com/born-ml/qmodes/internal/parallel"
	"github.com/born-ml/qmodes/internal/tensor"
)

// PermuteSquare reorders the axes of a uniform-dims matrix, applying the same
// order to rows and columns. This is the native permutation: the matrix is
// viewed as a tensor of shape dims[0] ++ dims[1] and its axes are transposed.
func (cpu *CPUBackend) PermuteSquare(a *tensor.RawTensor, order []int) (*tensor.RawTensor, error) {
	d := a.Dims()
	if !d.Uniform() {
		return nil, fmt.Errorf("permute: %w: dims %v are not uniform", tensor.ErrNonSquare, d)
	}
	n := len(d[0])
	if err := tensor.CheckPermutation(order, n); err != nil {
		return nil, fmt.Errorf("permute: %w", err)
	}

	shape := append(d[0].Clone(), d[1]...)
	axes := make([]int, 2*n)
	for k, o := range order {
		axes[k] = o
		axes[n+k] = n + o
	}

	out, err := tensor.NewRaw(tensor.Dims{d[0].Permuted(order), d[1].Permuted(order)})
	if err != nil {
		return nil, fmt.Errorf("permute: %w", err)
	}
	transposeComplex(out.Data(), a.Data(), shape, axes)
	return out, nil
}

// transposeComplex permutes the axes of a row-major tensor.
func transposeComplex(dst, src []complex128, shape tensor.Shape, axes []int) {
	ndim := len(shape)
	srcStrides := shape.ComputeStrides()
	dstStrides := shape.Permuted(axes).ComputeStrides()

	coords := make([]int, ndim)
	for i := range src {
		// Multi-dimensional coordinates in source.
		idx := i
		for dim := 0; dim < ndim; dim++ {
			coords[dim] = idx / srcStrides[dim]
			idx %= srcStrides[dim]
		}

		dstIdx := 0
		for dstDim, srcDim := range axes {
			dstIdx += coords[srcDim] * dstStrides[dstDim]
		}
		dst[dstIdx] = src[i]
	}
}

// CoordinateRemap reorders row axes by rowOrder and column axes by colOrder
// independently. It supports rectangular objects and row/column sides with
// different axis counts, which PermuteSquare cannot express.
//
// Only non-zero coordinates are moved: every (row, col) entry is sent to
// (rowMap[row], colMap[col]).
func (cpu *CPUBackend) CoordinateRemap(a *tensor.RawTensor, rowOrder, colOrder []int) (*tensor.RawTensor, error) {
	d := a.Dims()
	if err := tensor.CheckPermutation(rowOrder, len(d[0])); err != nil {
		return nil, fmt.Errorf("remap rows: %w", err)
	}
	if err := tensor.CheckPermutation(colOrder, len(d[1])); err != nil {
		return nil, fmt.Errorf("remap cols: %w", err)
	}

	out, err := tensor.NewRaw(tensor.Dims{d[0].Permuted(rowOrder), d[1].Permuted(colOrder)})
	if err != nil {
		return nil, fmt.Errorf("remap: %w", err)
	}

	rowMap := indexMap(d[0], rowOrder)
	colMap := indexMap(d[1], colOrder)
	rows, cols := a.Shape()
	src, dst := a.Data(), out.Data()

	// rowMap is a bijection, so each source row writes a distinct output row.
	parallel.For(rows, func(i int) {
		base := rowMap[i] * cols
		for j := 0; j < cols; j++ {
			if v := src[i*cols+j]; v != 0 {
				dst[base+colMap[j]] = v
			}
		}
	}, cpu.cfg.Parallel)
	return out, nil
}

// indexMap returns, for every flat index over dims, the flat index it takes
// once the axes are reordered so that new axis k is old axis order[k].
func indexMap(dims tensor.Shape, order []int) []int {
	size := dims.NumElements()
	strides := dims.ComputeStrides()
	newStrides := dims.Permuted(order).ComputeStrides()

	out := make([]int, size)
	digits := make([]int, len(dims))
	for idx := 0; idx < size; idx++ {
		rem := idx
		for ax := range dims {
			digits[ax] = rem / strides[ax]
			rem %= strides[ax]
		}
		mapped := 0
		for k, o := range order {
			mapped += digits[o] * newStrides[k]
		}
		out[idx] = mapped
	}
	return out
}
