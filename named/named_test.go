// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package named_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/qmodes/backend/cpu"
	"github.com/born-ml/qmodes/named"
	"github.com/born-ml/qmodes/tensor"
)

func TestPublicAPI_SpinFlip(t *testing.T) {
	backend := cpu.New()
	sx := tensor.MustFromSlice(tensor.Dims{{2}, {2}}, []complex128{0, 1, 1, 0})
	zero := tensor.MustFromSlice(tensor.Dims{{2}, {1}}, []complex128{1, 0})
	one := tensor.MustFromSlice(tensor.Dims{{2}, {1}}, []complex128{0, 1})

	flip, err := named.NewWithBackend(backend, sx, "alice", named.Operator)
	require.NoError(t, err)
	up, err := named.Wrap(backend, zero, []string{"alice"}, []string{"alice"}, named.KindAuto)
	require.NoError(t, err)
	assert.Equal(t, named.State, up.Kind())

	v, err := flip.Mul(up)
	require.NoError(t, err)
	down, ok := v.(*named.Tensor)
	require.True(t, ok, "operator on ket must stay a tensor, got %T", v)
	assert.Equal(t, named.State, down.Kind())
	assert.True(t, backend.Equal(one, down.Raw()))

	overlap, err := named.Prod(down.Dag(), down)
	require.NoError(t, err)
	s, ok := overlap.(named.Scalar)
	require.True(t, ok)
	assert.InDelta(t, 1, real(complex128(s)), 1e-12)
}

func TestPublicAPI_Errors(t *testing.T) {
	backend := cpu.New()
	sx := tensor.MustFromSlice(tensor.Dims{{2}, {2}}, []complex128{0, 1, 1, 0})

	_, err := named.NewWithBackend(backend, sx, "a", named.KindAuto)
	assert.ErrorIs(t, err, named.ErrAmbiguousKind)

	_, err = named.NewWithBackend(backend, sx, nil, named.Operator)
	assert.ErrorIs(t, err, named.ErrValidation)

	a, err := named.NewWithBackend(backend, sx, "a", named.Operator)
	require.NoError(t, err)
	_, err = a.Ptrace([]string{"b"}, true)
	assert.ErrorIs(t, err, named.ErrUnknownName)
}

func TestPublicAPI_DefaultBackend(t *testing.T) {
	prev := named.DefaultBackend()
	t.Cleanup(func() { named.SetDefaultBackend(prev) })

	counting := tensor.NewCountingBackend(cpu.NewWithConfig(cpu.WithWorkers(cpu.DefaultConfig(), 1)))
	named.SetDefaultBackend(counting)

	id := tensor.MustFromSlice(tensor.Dims{{2}, {2}}, []complex128{1, 0, 0, 1})
	a, err := named.New(id, "a", named.Operator)
	require.NoError(t, err)
	b, err := named.New(id, "b", named.Operator)
	require.NoError(t, err)

	ab, err := named.TensorProduct(a, b)
	require.NoError(t, err)
	assert.Same(t, counting, ab.Backend())
	assert.Equal(t, 1, counting.Calls("Kron"))
}
