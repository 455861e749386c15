package named

import (
	"fmt"
	"slices"

	"github.com/born-ml/qmodes/internal/tensor"
)

// TensorProduct returns the tensor product of ops. Row names and column
// names are concatenated in operand order. All operands must share a kind,
// and no mode may appear twice on the same side.
func TensorProduct(ops ...*Tensor) (*Tensor, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("tensor: %w: no operands", ErrValidation)
	}
	kind := ops[0].kind
	raws := make([]*tensor.RawTensor, len(ops))
	var names [2][]string
	for i, op := range ops {
		if op.kind != kind {
			return nil, fmt.Errorf("tensor: %w: mixed kinds %s and %s", ErrStructure, kind, op.kind)
		}
		for side := range names {
			for _, name := range op.names[side] {
				if slices.Contains(names[side], name) {
					return nil, fmt.Errorf("tensor: %w: %q on side %d", ErrCollision, name, side)
				}
				names[side] = append(names[side], name)
			}
		}
		raws[i] = op.raw
	}

	raw, err := ops[0].backend.Kron(raws...)
	if err != nil {
		return nil, fmt.Errorf("tensor: %w", err)
	}
	return ops[0].derive(raw, names, kind)
}

// Ptrace keeps the named modes and traces out the rest. With keep false the
// named modes are traced out instead. Surviving modes keep their original
// order. The tensor must carry the same modes in the same order with the
// same dims on both sides.
func (t *Tensor) Ptrace(names []string, keep bool) (*Tensor, error) {
	if err := t.checkTraceable(); err != nil {
		return nil, err
	}
	idx, err := indicesOf(t.names[0], names)
	if err != nil {
		return nil, fmt.Errorf("ptrace: %w", err)
	}
	return t.ptrace(idx, keep)
}

// PtraceIndex is Ptrace with positional mode indices.
func (t *Tensor) PtraceIndex(indices []int, keep bool) (*Tensor, error) {
	if err := t.checkTraceable(); err != nil {
		return nil, err
	}
	for _, i := range indices {
		if i < 0 || i >= len(t.names[0]) {
			return nil, fmt.Errorf("ptrace: %w: index %d for %d modes", ErrUnknownName, i, len(t.names[0]))
		}
	}
	return t.ptrace(indices, keep)
}

func (t *Tensor) checkTraceable() error {
	if !squareModes(t) {
		return fmt.Errorf("ptrace: %w: needs identical modes and dims on both sides, got %v x %v with dims %v",
			ErrStructure, t.names[0], t.names[1], t.raw.Dims())
	}
	return nil
}

func (t *Tensor) ptrace(sel []int, keep bool) (*Tensor, error) {
	for i, s := range sel {
		if slices.Contains(sel[:i], s) {
			return nil, fmt.Errorf("ptrace: %w: %q", ErrDuplicateName, t.names[0][s])
		}
	}

	var kept []int
	var modes []string
	for i, name := range t.names[0] {
		if slices.Contains(sel, i) == keep {
			kept = append(kept, i)
			modes = append(modes, name)
		}
	}

	raw, err := t.backend.PartialTrace(t.raw, kept)
	if err != nil {
		return nil, fmt.Errorf("ptrace: %w", err)
	}
	return t.derive(raw, [2][]string{modes, slices.Clone(modes)}, t.kind)
}

// Rename renames mode old to name on every side it appears on.
//
// Unlike every other operation, Rename modifies the receiver. It is a no-op
// when old == name. It fails without changing anything when name is already
// used or old is absent.
func (t *Tensor) Rename(old, name string) error {
	if old == name {
		return nil
	}
	if name == "" {
		return fmt.Errorf("rename: %w", ErrEmptyName)
	}
	if slices.Contains(t.names[0], name) || slices.Contains(t.names[1], name) {
		return fmt.Errorf("rename: %w: %q", ErrCollision, name)
	}
	if !slices.Contains(t.names[0], old) && !slices.Contains(t.names[1], old) {
		return fmt.Errorf("rename: %w: %q", ErrUnknownName, old)
	}
	for side := range t.names {
		if i := slices.Index(t.names[side], old); i >= 0 {
			t.names[side][i] = name
		}
	}
	return nil
}

// Renamed is Rename on a copy, leaving the receiver untouched.
func (t *Tensor) Renamed(old, name string) (*Tensor, error) {
	out := t.shallow()
	if err := out.Rename(old, name); err != nil {
		return nil, err
	}
	return out, nil
}
