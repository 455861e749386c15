package named

import (
	"fmt"

	"github.com/born-ml/qmodes/internal/tensor"
)

// Kind is the semantic role of a Tensor, independent of its structural type.
type Kind int

// Kinds. KindAuto asks the constructor to infer the kind.
const (
	KindAuto Kind = iota
	Operator
	State
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case Operator:
		return "oper"
	case State:
		return "state"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) valid() bool {
	return k == Operator || k == State
}

// OverlapPolicy decides which operand's names lead the contracted overlap
// of a product.
type OverlapPolicy int

// Overlap orderings.
const (
	OverlapLeftFirst OverlapPolicy = iota
	OverlapRightFirst
)

// String returns the policy name.
func (p OverlapPolicy) String() string {
	if p == OverlapRightFirst {
		return "right-first"
	}
	return "left-first"
}

// overlapPolicy returns the overlap ordering for left * right. An operator
// acting on a state keeps the state's mode order.
func overlapPolicy(left, right Kind) OverlapPolicy {
	if left == Operator && right == State {
		return OverlapRightFirst
	}
	return OverlapLeftFirst
}

// mulKinds maps (left, right) kinds to the kind of their product.
var mulKinds = map[[2]Kind]Kind{
	{Operator, Operator}: Operator,
	{State, State}:       Operator,
	{Operator, State}:    State,
	{State, Operator}:    State,
}

func mulKind(left, right Kind) Kind {
	return mulKinds[[2]Kind{left, right}]
}

// operandTag is the (structural type, kind) pair used for add dispatch.
type operandTag struct {
	typ  tensor.Type
	kind Kind
}

// addable lists the operand tags addition is defined for. Both operands
// must also carry the same tag.
var addable = map[operandTag]bool{
	{tensor.Ket, State}:         true,
	{tensor.Bra, State}:         true,
	{tensor.Operator, State}:    true,
	{tensor.Ket, Operator}:      true,
	{tensor.Bra, Operator}:      true,
	{tensor.Operator, Operator}: true,
}

func checkAddable(left, right operandTag) error {
	if !addable[left] || !addable[right] {
		return fmt.Errorf("%w: cannot add %s/%s and %s/%s",
			ErrTypeMismatch, left.typ, left.kind, right.typ, right.kind)
	}
	if left.typ != right.typ {
		return fmt.Errorf("%w: cannot add %s and %s", ErrTypeMismatch, left.typ, right.typ)
	}
	if left.kind != right.kind {
		return fmt.Errorf("%w: cannot add kinds %s and %s", ErrTypeMismatch, left.kind, right.kind)
	}
	return nil
}
