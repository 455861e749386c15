package named

import (
	"fmt"
	"slices"

	"github.com/born-ml/qmodes/internal/tensor"
)

// Permute reorders modes by name. When row and column names are identical
// the order applies to both sides; otherwise it is used for each side, which
// then must hold exactly the same names.
func (t *Tensor) Permute(order ...string) (*Tensor, error) {
	return t.PermuteAxes(order, order)
}

// PermuteAxes reorders row modes to rows and column modes to cols. Each list
// must name every mode of its side exactly once.
func (t *Tensor) PermuteAxes(rows, cols []string) (*Tensor, error) {
	var idx [2][]int
	for side, order := range [2][]string{rows, cols} {
		positions, err := orderIndices(t.names[side], order)
		if err != nil {
			return nil, fmt.Errorf("permute side %d: %w", side, err)
		}
		idx[side] = positions
	}
	return t.PermuteIndex(idx[0], idx[1])
}

// orderIndices maps order, which must be a complete reordering of names, to
// the positions of its entries within names.
func orderIndices(names, order []string) ([]int, error) {
	positions := make([]int, 0, len(order))
	for k, name := range order {
		i := slices.Index(names, name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
		}
		if slices.Contains(order[:k], name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		positions = append(positions, i)
	}
	if len(order) != len(names) {
		return nil, fmt.Errorf("%w: order %v does not cover %v", ErrNameCount, order, names)
	}
	return positions, nil
}

// PermuteIndex reorders axes positionally: new row axis k is old row axis
// rows[k], and likewise for cols.
//
// Uniform objects permuted identically on both sides use the backend's native
// permutation. Anything else (rectangular objects, kets and bras, different
// orders per side) goes through a coordinate remap.
func (t *Tensor) PermuteIndex(rows, cols []int) (*Tensor, error) {
	dims := t.raw.Dims()
	if err := tensor.CheckPermutation(rows, len(dims[0])); err != nil {
		return nil, fmt.Errorf("permute rows: %w: %w", ErrValidation, err)
	}
	if err := tensor.CheckPermutation(cols, len(dims[1])); err != nil {
		return nil, fmt.Errorf("permute cols: %w: %w", ErrValidation, err)
	}

	names := [2][]string{pick(t.names[0], rows), pick(t.names[1], cols)}
	if isIdentity(rows) && isIdentity(cols) {
		out := t.shallow()
		out.names = names
		return out, nil
	}

	var raw *tensor.RawTensor
	var err error
	if dims.Uniform() && slices.Equal(rows, cols) {
		raw, err = t.backend.PermuteSquare(t.raw, rows)
	} else {
		raw, err = t.backend.CoordinateRemap(t.raw, rows, cols)
	}
	if err != nil {
		return nil, fmt.Errorf("permute: %w", err)
	}
	return t.derive(raw, names, t.kind)
}

func pick(names []string, order []int) []string {
	out := make([]string, len(order))
	for k, o := range order {
		out[k] = names[o]
	}
	return out
}

func isIdentity(order []int) bool {
	for k, o := range order {
		if k != o {
			return false
		}
	}
	return true
}
