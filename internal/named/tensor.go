package named

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/born-ml/qmodes/internal/backend/cpu"
	"github.com/born-ml/qmodes/internal/tensor"
)

var (
	defaultMu      sync.RWMutex
	defaultBackend tensor.Backend = cpu.New()
)

// SetDefaultBackend sets the backend used by New.
func SetDefaultBackend(b tensor.Backend) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultBackend = b
}

// DefaultBackend returns the backend used by New.
func DefaultBackend() tensor.Backend {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultBackend
}

// Tensor is a backend matrix whose row and column axes carry mode names.
//
// names[0] labels dims[0] (rows) and names[1] labels dims[1] (columns).
// Names are unique per side and non-empty. The raw data is never modified
// after construction.
type Tensor struct {
	raw     *tensor.RawTensor
	names   [2][]string
	kind    Kind
	backend tensor.Backend
}

// New wraps obj with mode names using the default backend.
//
// obj is a *tensor.RawTensor or a *Tensor. For a *Tensor, nil names keep its
// names and KindAuto keeps its kind. names is a string, a []string, a
// [2][]string or a [][]string of length 2. With KindAuto the kind is
// inferred: kets and bras are states, other objects operators, except a
// Hermitian operator with the same names and dims on both sides, which
// fails with ErrAmbiguousKind.
func New(obj any, names any, kind Kind) (*Tensor, error) {
	if t, ok := obj.(*Tensor); ok {
		return NewWithBackend(t.backend, obj, names, kind)
	}
	return NewWithBackend(DefaultBackend(), obj, names, kind)
}

// NewWithBackend is New with an explicit backend.
func NewWithBackend(b tensor.Backend, obj any, names any, kind Kind) (*Tensor, error) {
	var raw *tensor.RawTensor
	switch o := obj.(type) {
	case *tensor.RawTensor:
		raw = o
	case *Tensor:
		raw = o.raw
		if names == nil {
			names = cloneNames(o.names)
		}
		if kind == KindAuto {
			kind = o.kind
		}
	default:
		return nil, fmt.Errorf("%w: cannot name %T", ErrValidation, obj)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: nil tensor", ErrValidation)
	}

	n, err := normalizeNames(names, raw.Dims())
	if err != nil {
		return nil, err
	}
	return build(b, raw, n, kind)
}

// Wrap is the typed constructor: rows and cols name the row and column axes.
func Wrap(b tensor.Backend, raw *tensor.RawTensor, rows, cols []string, kind Kind) (*Tensor, error) {
	return NewWithBackend(b, raw, [2][]string{rows, cols}, kind)
}

// build resolves kind for already normalized names.
func build(b tensor.Backend, raw *tensor.RawTensor, names [2][]string, kind Kind) (*Tensor, error) {
	switch {
	case kind == KindAuto:
		inferred, err := inferKind(b, raw, names)
		if err != nil {
			return nil, err
		}
		kind = inferred
	case !kind.valid():
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	return &Tensor{raw: raw, names: names, kind: kind, backend: b}, nil
}

func inferKind(b tensor.Backend, raw *tensor.RawTensor, names [2][]string) (Kind, error) {
	switch raw.Type() {
	case tensor.Ket, tensor.Bra:
		return State, nil
	}
	dims := raw.Dims()
	rows, cols := slices.Clone([]int(dims[0])), slices.Clone([]int(dims[1]))
	sort.Ints(rows)
	sort.Ints(cols)
	if sameSet(names[0], names[1]) && slices.Equal(rows, cols) && b.IsHermitian(raw) {
		return KindAuto, fmt.Errorf("%w: Hermitian operator on %v, pass Operator or State", ErrAmbiguousKind, names[0])
	}
	return Operator, nil
}

// derive wraps an engine result. Names are checked against the result dims
// so that every operation preserves the naming invariants.
func (t *Tensor) derive(raw *tensor.RawTensor, names [2][]string, kind Kind) (*Tensor, error) {
	if err := validateNames(names, raw.Dims()); err != nil {
		return nil, err
	}
	return &Tensor{raw: raw, names: names, kind: kind, backend: t.backend}, nil
}

// Names returns a copy of the row and column names.
func (t *Tensor) Names() [2][]string { return cloneNames(t.names) }

// Dims returns the row and column dimension vectors.
func (t *Tensor) Dims() tensor.Dims { return t.raw.Dims() }

// Kind returns the semantic kind.
func (t *Tensor) Kind() Kind { return t.kind }

// Type returns the structural type (ket, bra or operator).
func (t *Tensor) Type() tensor.Type { return t.raw.Type() }

// Raw returns the underlying matrix. It must not be modified.
func (t *Tensor) Raw() *tensor.RawTensor { return t.raw }

// Backend returns the backend the tensor computes with.
func (t *Tensor) Backend() tensor.Backend { return t.backend }

// Copy returns a deep copy.
func (t *Tensor) Copy() *Tensor {
	return &Tensor{raw: t.raw.Clone(), names: cloneNames(t.names), kind: t.kind, backend: t.backend}
}

// shallow shares the immutable raw data but owns its names.
func (t *Tensor) shallow() *Tensor {
	return &Tensor{raw: t.raw, names: cloneNames(t.names), kind: t.kind, backend: t.backend}
}

// DimOf returns the dimension of mode name on the row and column side.
// A side the mode is absent from reports 0.
func (t *Tensor) DimOf(name string) (rowDim, colDim int, err error) {
	rowDim, colDim = t.dimOf(name)
	if rowDim == 0 && colDim == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return rowDim, colDim, nil
}

func (t *Tensor) dimOf(name string) (rowDim, colDim int) {
	dims := t.raw.Dims()
	if i := slices.Index(t.names[0], name); i >= 0 {
		rowDim = dims[0][i]
	}
	if i := slices.Index(t.names[1], name); i >= 0 {
		colDim = dims[1][i]
	}
	return rowDim, colDim
}

// Equal reports whether the matrices are equal within the backend tolerance
// and both name lists match in order. Kinds are not compared.
func (t *Tensor) Equal(other *Tensor) bool {
	if other == nil {
		return false
	}
	return slices.Equal(t.names[0], other.names[0]) &&
		slices.Equal(t.names[1], other.names[1]) &&
		t.backend.Equal(t.raw, other.raw)
}

// String returns a human-readable representation.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor(kind=%s, type=%s, dims=%v, names=[%v %v])\n",
		t.kind, t.Type(), t.raw.Dims(), t.names[0], t.names[1])
	sb.WriteString(t.raw.String())
	return sb.String()
}

func (t *Tensor) value() {}
