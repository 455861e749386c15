package named

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/qmodes/internal/tensor"
)

func TestNew_NameShapes(t *testing.T) {
	op := newRaw(t, tensor.Dims{{2}, {2}}, 0, 1, 0, 0)
	op2x3 := newRaw(t, tensor.Dims{{2, 3}, {2, 3}}, make([]complex128, 36)...)

	tests := []struct {
		name  string
		raw   *tensor.RawTensor
		names any
		rows  []string
		cols  []string
	}{
		{"String", op, "A", []string{"A"}, []string{"A"}},
		{"Flat", op2x3, []string{"A", "B"}, []string{"A", "B"}, []string{"A", "B"}},
		{"Pair", op2x3, [2][]string{{"A", "B"}, {"C", "D"}}, []string{"A", "B"}, []string{"C", "D"}},
		{"Nested", op2x3, [][]string{{"B", "A"}, {"A", "B"}}, []string{"B", "A"}, []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := NewWithBackend(testBackend, tt.raw, tt.names, Operator)
			require.NoError(t, err)
			requireNames(t, tt.rows, tt.cols, x)
			assert.Equal(t, Operator, x.Kind())
		})
	}
}

func TestNew_NameErrors(t *testing.T) {
	op := newRaw(t, tensor.Dims{{2}, {2}}, 1, 0, 0, 1)
	op2x3 := newRaw(t, tensor.Dims{{2, 3}, {2, 3}}, make([]complex128, 36)...)

	tests := []struct {
		name  string
		raw   *tensor.RawTensor
		names any
		want  error
	}{
		{"Missing", op, nil, ErrMissingNames},
		{"NotAString", op, 42, ErrNameType},
		{"ThreeLists", op, [][]string{{"A"}, {"A"}, {"A"}}, ErrNameType},
		{"StringForTwoAxes", op2x3, "A", ErrNameCount},
		{"TooFewNames", op2x3, []string{"A"}, ErrNameCount},
		{"DuplicateRow", op2x3, [2][]string{{"A", "A"}, {"A", "B"}}, ErrDuplicateName},
		{"DuplicateFlat", op2x3, []string{"A", "A"}, ErrDuplicateName},
		{"EmptyName", op, []string{""}, ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithBackend(testBackend, tt.raw, tt.names, Operator)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	t.Run("InvalidKind", func(t *testing.T) {
		_, err := NewWithBackend(testBackend, op, "A", Kind(9))
		assert.ErrorIs(t, err, ErrInvalidKind)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("UnsupportedObject", func(t *testing.T) {
		_, err := New([]complex128{1}, "A", Operator)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestNew_KindInference(t *testing.T) {
	t.Run("KetIsState", func(t *testing.T) {
		x, err := New(newRaw(t, tensor.Dims{{2}, {1}}, 1, 0), "A", KindAuto)
		require.NoError(t, err)
		assert.Equal(t, State, x.Kind())
		assert.Equal(t, tensor.Ket, x.Type())
	})

	t.Run("BraIsState", func(t *testing.T) {
		x, err := New(newRaw(t, tensor.Dims{{1}, {2}}, 1, 0), "A", KindAuto)
		require.NoError(t, err)
		assert.Equal(t, State, x.Kind())
		assert.Equal(t, tensor.Bra, x.Type())
	})

	t.Run("NonHermitianIsOperator", func(t *testing.T) {
		x, err := New(newRaw(t, tensor.Dims{{2}, {2}}, 0, 1, 0, 0), "A", KindAuto)
		require.NoError(t, err)
		assert.Equal(t, Operator, x.Kind())
	})

	t.Run("HermitianWithDifferentNamesIsOperator", func(t *testing.T) {
		x, err := New(newRaw(t, tensor.Dims{{2}, {2}}, pauliX...), [2][]string{{"A"}, {"B"}}, KindAuto)
		require.NoError(t, err)
		assert.Equal(t, Operator, x.Kind())
	})

	t.Run("HermitianSameNamesIsAmbiguous", func(t *testing.T) {
		_, err := New(newRaw(t, tensor.Dims{{2}, {2}}, pauliX...), "A", KindAuto)
		assert.ErrorIs(t, err, ErrAmbiguousKind)
	})

	t.Run("HermitianPermutedNamesIsAmbiguous", func(t *testing.T) {
		id, err := testBackend.Identity(6)
		require.NoError(t, err)
		id, err = id.Reshape(tensor.Dims{{2, 3}, {3, 2}})
		require.NoError(t, err)
		_, err = New(id, [2][]string{{"A", "B"}, {"B", "A"}}, KindAuto)
		assert.ErrorIs(t, err, ErrAmbiguousKind)
	})

	t.Run("ExplicitKindSkipsInference", func(t *testing.T) {
		x, err := New(newRaw(t, tensor.Dims{{2}, {2}}, pauliX...), "A", State)
		require.NoError(t, err)
		assert.Equal(t, State, x.Kind())
	})
}

func TestNew_FromTensor(t *testing.T) {
	x := op2(t, "A", pauliZ)

	same, err := New(x, nil, KindAuto)
	require.NoError(t, err)
	requireSameTensor(t, x, same)
	assert.Equal(t, Operator, same.Kind())
	assert.Same(t, x.Backend(), same.Backend())

	renamed, err := New(x, "B", State)
	require.NoError(t, err)
	requireNames(t, []string{"B"}, []string{"B"}, renamed)
	assert.Equal(t, State, renamed.Kind())
	requireNames(t, []string{"A"}, []string{"A"}, x)
}

func TestDefaultBackend(t *testing.T) {
	orig := DefaultBackend()
	t.Cleanup(func() { SetDefaultBackend(orig) })

	counting := tensor.NewCountingBackend(testBackend)
	SetDefaultBackend(counting)
	x, err := New(newRaw(t, tensor.Dims{{2}, {2}}, pauliZ...), "A", Operator)
	require.NoError(t, err)
	assert.Equal(t, "CPU+counting", x.Backend().Name())
}

func TestTensor_Accessors(t *testing.T) {
	x := mustProduct(t, op2(t, "A", pauliX), eye(t, 3, "B"))

	names := x.Names()
	names[0][0] = "mutated"
	requireNames(t, []string{"A", "B"}, []string{"A", "B"}, x)

	assert.True(t, x.Dims().Equal(tensor.Dims{{2, 3}, {2, 3}}))
	assert.Equal(t, tensor.Operator, x.Type())
	assert.Equal(t, 6, x.Raw().Rows())

	r, c, err := x.DimOf("B")
	require.NoError(t, err)
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)

	_, _, err = x.DimOf("Z")
	assert.ErrorIs(t, err, ErrUnknownName)

	oneSided := wrap(t, newRaw(t, tensor.Dims{{2}, {3}}, make([]complex128, 6)...), []string{"A"}, []string{"B"}, Operator)
	r, c, err = oneSided.DimOf("B")
	require.NoError(t, err)
	assert.Equal(t, 0, r)
	assert.Equal(t, 3, c)
}

func TestTensor_Copy(t *testing.T) {
	x := op2(t, "A", pauliX)
	c := x.Copy()
	requireSameTensor(t, x, c)

	require.NoError(t, c.Rename("A", "B"))
	requireNames(t, []string{"A"}, []string{"A"}, x)
	c.Raw().Set(0, 0, 7)
	assert.Equal(t, complex128(0), x.Raw().At(0, 0))
}

func TestTensor_Equal(t *testing.T) {
	x := mustProduct(t, op2(t, "A", pauliX), op2(t, "B", pauliZ))

	asState, err := New(x, nil, State)
	require.NoError(t, err)
	assert.True(t, x.Equal(asState), "kind is not compared")

	swapped, err := x.Permute("B", "A")
	require.NoError(t, err)
	assert.False(t, x.Equal(swapped), "permuted objects compare unequal")

	back, err := swapped.Permute("A", "B")
	require.NoError(t, err)
	assert.True(t, x.Equal(back))

	other := mustProduct(t, op2(t, "A", pauliX), op2(t, "C", pauliZ))
	assert.False(t, x.Equal(other))
	assert.False(t, x.Equal(nil))
}

func TestTensor_String(t *testing.T) {
	s := ket(t, "A", 1, 0).String()
	assert.True(t, strings.Contains(s, "kind=state"), s)
	assert.True(t, strings.Contains(s, "[A]"), s)
}
