package named

import (
	"fmt"
	"slices"

	"github.com/born-ml/qmodes/internal/tensor"
)

// addRequired returns the common name order for a sum: left names first,
// then the right operand's new names, per side.
func addRequired(left, right *Tensor) [2][]string {
	return [2][]string{
		dedup(left.names[0], right.names[0]),
		dedup(left.names[1], right.names[1]),
	}
}

// mulRequired returns the name order each operand of left * right is
// brought into.
//
// The overlap holds the modes that must exist on both sides of the
// contraction: right row modes and left column modes, except size-1 axes,
// which contract like scalars. Each operand then lists the overlap first and
// its own remaining modes after it.
func mulRequired(left, right *Tensor) (l, r [2][]string) {
	rightRows := contractible(right.names[0], right.raw.Dims()[0])
	leftCols := contractible(left.names[1], left.raw.Dims()[1])

	var overlap []string
	switch overlapPolicy(left.kind, right.kind) {
	case OverlapRightFirst:
		overlap = dedup(rightRows, leftCols)
	default:
		overlap = dedup(leftCols, rightRows)
	}

	for side := range l {
		l[side] = dedup(overlap, left.names[side])
		r[side] = dedup(overlap, right.names[side])
	}
	return l, r
}

// contractible returns the names whose axis is larger than 1.
func contractible(names []string, dims tensor.Shape) []string {
	var out []string
	for i, name := range names {
		if dims[i] != 1 {
			out = append(out, name)
		}
	}
	return out
}

// Add returns t + other with modes matched by name. Operands must share
// structural type and kind. Modes missing from one operand are padded, and
// the result lists t's modes first.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	if err := checkAddable(operandTag{t.Type(), t.kind}, operandTag{other.Type(), other.kind}); err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	required := addRequired(t, other)

	left, err := t.alignTo(required, other, false)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	right, err := other.alignTo(required, t, false)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	raw, err := t.backend.Add(left.raw, right.raw)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	return t.derive(raw, required, t.kind)
}

// Sub returns t - other.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.Add(other.Neg())
}

// Neg returns -t.
func (t *Tensor) Neg() *Tensor {
	out := t.shallow()
	out.raw = t.backend.Neg(t.raw)
	return out
}

// Mul returns the product t * other with modes matched by name.
//
// Each operand is padded with the modes of the other that take part in the
// contraction and permuted into a shared order. A 1x1 result is returned as
// a Scalar. Otherwise row names come from t and column names from other,
// and modes reduced to size 1 on both sides are dropped.
//
// The result kind is Operator for operator*operator and state*state, State
// otherwise.
func (t *Tensor) Mul(other *Tensor) (Value, error) {
	lreq, rreq := mulRequired(t, other)

	left, err := t.alignTo(lreq, other, true)
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}
	right, err := other.alignTo(rreq, t, true)
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}

	raw, err := t.backend.MatMul(left.raw, right.raw)
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}
	if raw.IsScalar() {
		return Scalar(raw.At(0, 0)), nil
	}

	names := [2][]string{slices.Clone(lreq[0]), slices.Clone(rreq[1])}
	dims := raw.Dims()
	dropped := false
	for _, name := range lreq[0] {
		lr, _ := left.dimOf(name)
		_, rc := right.dimOf(name)
		if lr != 1 || rc != 1 {
			continue
		}
		i, j := slices.Index(names[0], name), slices.Index(names[1], name)
		names[0] = slices.Delete(names[0], i, i+1)
		names[1] = slices.Delete(names[1], j, j+1)
		dims[0] = slices.Delete(dims[0], i, i+1)
		dims[1] = slices.Delete(dims[1], j, j+1)
		dropped = true
	}
	if dropped {
		if raw, err = raw.Reshape(dims); err != nil {
			return nil, fmt.Errorf("mul: %w", err)
		}
	}

	out, err := t.derive(raw, names, mulKind(t.kind, other.kind))
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}
	return out, nil
}

// Scale returns c * t.
func (t *Tensor) Scale(c complex128) *Tensor {
	out := t.shallow()
	out.raw = t.backend.Scale(t.raw, c)
	return out
}

// Div returns t / c.
func (t *Tensor) Div(c complex128) (*Tensor, error) {
	if c == 0 {
		return nil, fmt.Errorf("div: %w: division by zero", ErrValidation)
	}
	return t.Scale(1 / c), nil
}

// Pow returns t^n for a square t and n >= 0. Names and kind are kept.
func (t *Tensor) Pow(n int) (*Tensor, error) {
	if n < 0 {
		return nil, fmt.Errorf("pow: %w: negative exponent %d", ErrValidation, n)
	}
	raw, err := t.backend.Power(t.raw, n)
	if err != nil {
		return nil, fmt.Errorf("pow: %w", err)
	}
	return t.derive(raw, cloneNames(t.names), t.kind)
}

// Dag returns the adjoint. Row and column names swap.
func (t *Tensor) Dag() *Tensor {
	return &Tensor{
		raw:     t.backend.Adjoint(t.raw),
		names:   [2][]string{slices.Clone(t.names[1]), slices.Clone(t.names[0])},
		kind:    t.kind,
		backend: t.backend,
	}
}

// Trans returns the transpose. Row and column names swap.
func (t *Tensor) Trans() *Tensor {
	return &Tensor{
		raw:     t.backend.Transpose(t.raw),
		names:   [2][]string{slices.Clone(t.names[1]), slices.Clone(t.names[0])},
		kind:    t.kind,
		backend: t.backend,
	}
}

// outer returns |v><v| for a ket and v^dagger v for a bra, named by the
// vector's modes on both sides.
func (t *Tensor) outer(op string) (*tensor.RawTensor, [2][]string, error) {
	var raw *tensor.RawTensor
	var modes []string
	var err error
	switch t.Type() {
	case tensor.Ket:
		raw, err = t.backend.MatMul(t.raw, t.backend.Adjoint(t.raw))
		modes = t.names[0]
	case tensor.Bra:
		raw, err = t.backend.MatMul(t.backend.Adjoint(t.raw), t.raw)
		modes = t.names[1]
	default:
		return nil, [2][]string{}, fmt.Errorf("%s: %w: need a ket or bra, got %s", op, ErrStructure, t.Type())
	}
	if err != nil {
		return nil, [2][]string{}, fmt.Errorf("%s: %w", op, err)
	}
	return raw, [2][]string{slices.Clone(modes), slices.Clone(modes)}, nil
}

// Proj returns the projector onto a ket or bra. The result is an Operator.
func (t *Tensor) Proj() (*Tensor, error) {
	raw, names, err := t.outer("proj")
	if err != nil {
		return nil, err
	}
	return t.derive(raw, names, Operator)
}

// Unit returns t divided by its norm: the L2 norm for kets and bras, the
// trace norm for operators.
func (t *Tensor) Unit() (*Tensor, error) {
	norm, err := t.backend.Norm(t.raw)
	if err != nil {
		return nil, fmt.Errorf("unit: %w", err)
	}
	if norm == 0 {
		return nil, fmt.Errorf("unit: %w: zero norm", ErrStructure)
	}
	return t.Scale(complex(1/norm, 0)), nil
}

// Expm returns the matrix exponential. Objects whose sides differ are
// expanded first; the result must have the same modes and dims on both
// sides.
func (t *Tensor) Expm() (*Tensor, error) {
	x := t
	if !squareModes(x) {
		var err error
		if x, err = t.Expand(); err != nil {
			return nil, fmt.Errorf("expm: %w", err)
		}
		if !squareModes(x) {
			return nil, fmt.Errorf("expm: %w: modes %v x %v with dims %v are not square",
				ErrStructure, x.names[0], x.names[1], x.raw.Dims())
		}
	}
	raw, err := t.backend.Expm(x.raw)
	if err != nil {
		return nil, fmt.Errorf("expm: %w", err)
	}
	return t.derive(raw, cloneNames(x.names), x.kind)
}

// squareModes reports whether both sides carry the same modes in the same
// order with the same dims.
func squareModes(t *Tensor) bool {
	return slices.Equal(t.names[0], t.names[1]) && t.raw.Dims().Uniform()
}
