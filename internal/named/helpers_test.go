package named

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/qmodes/internal/backend/cpu"
	"github.com/born-ml/qmodes/internal/tensor"
)

var testBackend = cpu.New()

var (
	pauliX = []complex128{0, 1, 1, 0}
	pauliY = []complex128{0, -1i, 1i, 0}
	pauliZ = []complex128{1, 0, 0, -1}
	invSq2 = complex(1/math.Sqrt2, 0)
)

func newRaw(t *testing.T, dims tensor.Dims, data ...complex128) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.FromSlice(dims, data)
	require.NoError(t, err)
	return r
}

func wrap(t *testing.T, raw *tensor.RawTensor, rows, cols []string, kind Kind) *Tensor {
	t.Helper()
	x, err := Wrap(testBackend, raw, rows, cols, kind)
	require.NoError(t, err)
	return x
}

// op2 is a single-mode 2x2 operator.
func op2(t *testing.T, name string, data []complex128) *Tensor {
	t.Helper()
	return wrap(t, newRaw(t, tensor.Dims{{2}, {2}}, data...), []string{name}, []string{name}, Operator)
}

// ket returns a single-mode ket with the given amplitudes.
func ket(t *testing.T, name string, amps ...complex128) *Tensor {
	t.Helper()
	return wrap(t, newRaw(t, tensor.Dims{{len(amps)}, {1}}, amps...), []string{name}, []string{name}, State)
}

// bra returns a single-mode bra with the given (already conjugated) entries.
func bra(t *testing.T, name string, amps ...complex128) *Tensor {
	t.Helper()
	return wrap(t, newRaw(t, tensor.Dims{{1}, {len(amps)}}, amps...), []string{name}, []string{name}, State)
}

// eye returns the identity operator on the named modes, each of size dim.
func eye(t *testing.T, dim int, names ...string) *Tensor {
	t.Helper()
	ops := make([]*Tensor, len(names))
	for i, name := range names {
		id, err := testBackend.Identity(dim)
		require.NoError(t, err)
		ops[i] = wrap(t, id, []string{name}, []string{name}, Operator)
	}
	out, err := TensorProduct(ops...)
	require.NoError(t, err)
	return out
}

func mustProduct(t *testing.T, ops ...*Tensor) *Tensor {
	t.Helper()
	out, err := TensorProduct(ops...)
	require.NoError(t, err)
	return out
}

func mustMul(t *testing.T, a, b *Tensor) *Tensor {
	t.Helper()
	v, err := a.Mul(b)
	require.NoError(t, err)
	out, ok := v.(*Tensor)
	require.True(t, ok, "expected a tensor, got %v", v)
	return out
}

// requireInvariants checks unique, non-empty names matching the dims.
func requireInvariants(t *testing.T, x *Tensor) {
	t.Helper()
	names, dims := x.Names(), x.Dims()
	for side := range names {
		require.Len(t, names[side], len(dims[side]), "side %d", side)
		for i, name := range names[side] {
			require.NotEmpty(t, name)
			require.False(t, slices.Contains(names[side][:i], name), "duplicate %q on side %d", name, side)
		}
	}
}

// requireNames compares names side by side, treating nil and empty alike.
func requireNames(t *testing.T, rows, cols []string, x *Tensor) {
	t.Helper()
	names := x.Names()
	require.True(t, slices.Equal(rows, names[0]), "rows: want %v, got %v", rows, names[0])
	require.True(t, slices.Equal(cols, names[1]), "cols: want %v, got %v", cols, names[1])
}

// requireSameTensor checks names, dims and values.
func requireSameTensor(t *testing.T, want, got *Tensor) {
	t.Helper()
	names := want.Names()
	requireNames(t, names[0], names[1], got)
	require.True(t, want.Dims().Equal(got.Dims()), "dims: want %v, got %v", want.Dims(), got.Dims())
	require.True(t, want.Equal(got), "want\n%v\ngot\n%v", want, got)
}
