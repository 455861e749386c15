package named

import (
	"fmt"
	"slices"

	"github.com/born-ml/qmodes/internal/tensor"
)

// fillerPlan describes the mode an operand lacks: which sides need the axis
// and the dimension to give it there (0 when the other operand does not
// know it).
type fillerPlan struct {
	name string
	need [2]bool
	dim  [2]int
}

// fillerPlans collects, for every missing name, the dimensions taken from
// other. For products the pair is transposed: an operand's missing column
// axis contracts with the other operand's row axis.
func fillerPlans(missing [2][]string, other *Tensor, transpose bool) []fillerPlan {
	order := dedup(missing[0], missing[1])
	plans := make([]fillerPlan, 0, len(order))
	for _, name := range order {
		r, c := other.dimOf(name)
		if transpose {
			r, c = c, r
		}
		s := fillerPlan{
			name: name,
			need: [2]bool{slices.Contains(missing[0], name), slices.Contains(missing[1], name)},
		}
		if s.need[0] {
			s.dim[0] = r
		}
		if s.need[1] {
			s.dim[1] = c
		}
		plans = append(plans, s)
	}
	return plans
}

// filler builds the padding object for one missing mode of an operand of
// the given kind.
//
// Operators get an identity on both sides. The two inferred dimensions must
// be known and equal.
//
// States get vacuum padding: |0><0| when both sides are needed, a bare ket
// |0> (no column axis) or bra <0| (no row axis) otherwise. An unknown
// dimension is taken as 1.
func filler(b tensor.Backend, s fillerPlan, kind Kind) (*tensor.RawTensor, [2][]string, error) {
	both := [2][]string{{s.name}, {s.name}}
	r, c := s.dim[0], s.dim[1]

	if kind == Operator {
		if !s.need[0] || !s.need[1] {
			return nil, both, fmt.Errorf("%w: operator lacks mode %q on one side only", ErrStructure, s.name)
		}
		if r != c || r == 0 {
			return nil, both, fmt.Errorf("%w: identity for mode %q needs a square shape, got %dx%d",
				ErrStructure, s.name, r, c)
		}
		id, err := b.Identity(r)
		return id, both, err
	}

	r, c = max(r, 1), max(c, 1)
	switch {
	case s.need[0] && s.need[1]:
		ket, err := b.Basis(r, 0)
		if err != nil {
			return nil, both, err
		}
		bra, err := b.Basis(c, 0)
		if err != nil {
			return nil, both, err
		}
		out, err := b.MatMul(ket, b.Adjoint(bra))
		return out, both, err
	case s.need[0]:
		ket, err := b.Basis(r, 0)
		if err != nil {
			return nil, both, err
		}
		out, err := ket.Reshape(tensor.Dims{{r}, {}})
		return out, [2][]string{{s.name}, {}}, err
	default:
		bra, err := b.Basis(c, 0)
		if err != nil {
			return nil, both, err
		}
		out, err := b.Adjoint(bra).Reshape(tensor.Dims{{}, {c}})
		return out, [2][]string{{}, {s.name}}, err
	}
}

// pad tensors t with one filler per plan, appending the filler modes after
// the existing ones.
func (t *Tensor) pad(plans []fillerPlan) (*Tensor, error) {
	if len(plans) == 0 {
		return t, nil
	}
	raws := []*tensor.RawTensor{t.raw}
	names := cloneNames(t.names)
	for _, s := range plans {
		raw, fn, err := filler(t.backend, s, t.kind)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
		names[0] = append(names[0], fn[0]...)
		names[1] = append(names[1], fn[1]...)
	}
	raw, err := t.backend.Kron(raws...)
	if err != nil {
		return nil, err
	}
	return t.derive(raw, names, t.kind)
}

// alignTo pads t with the modes of required it lacks, inferring their
// dimensions from other, and permutes it into required order.
func (t *Tensor) alignTo(required [2][]string, other *Tensor, transpose bool) (*Tensor, error) {
	plans := fillerPlans(missingNames(t.names, required), other, transpose)
	padded, err := t.pad(plans)
	if err != nil {
		return nil, err
	}
	return padded.PermuteAxes(required[0], required[1])
}

// Expand gives every mode an axis on both sides. A mode present only on
// the column side gets a basis ket of its dimension on the row side, and a
// mode present only on the row side a basis bra on the column side. Both
// sides are then ordered as the row names followed by the new ones.
func (t *Tensor) Expand() (*Tensor, error) {
	if slices.Equal(t.names[0], t.names[1]) {
		return t.Copy(), nil
	}
	required := dedup(t.names[0], t.names[1])

	raws := []*tensor.RawTensor{t.raw}
	names := cloneNames(t.names)
	for _, name := range required {
		r, c := t.dimOf(name)
		switch {
		case r == 0:
			ket, err := t.backend.Basis(c, 0)
			if err != nil {
				return nil, fmt.Errorf("expand: %w", err)
			}
			if ket, err = ket.Reshape(tensor.Dims{{c}, {}}); err != nil {
				return nil, fmt.Errorf("expand: %w", err)
			}
			raws = append(raws, ket)
			names[0] = append(names[0], name)
		case c == 0:
			ket, err := t.backend.Basis(r, 0)
			if err != nil {
				return nil, fmt.Errorf("expand: %w", err)
			}
			bra, err := t.backend.Adjoint(ket).Reshape(tensor.Dims{{}, {r}})
			if err != nil {
				return nil, fmt.Errorf("expand: %w", err)
			}
			raws = append(raws, bra)
			names[1] = append(names[1], name)
		}
	}

	raw, err := t.backend.Kron(raws...)
	if err != nil {
		return nil, fmt.Errorf("expand: %w", err)
	}
	padded, err := t.derive(raw, names, t.kind)
	if err != nil {
		return nil, fmt.Errorf("expand: %w", err)
	}
	return padded.PermuteAxes(required, required)
}
