package tensor_test

import (
	"testing"

	"github.com/born-ml/grad/internal/tensor"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	a := mustNew(t, tensor.Shape{2, 2}, 1)
	b := mustNew(t, tensor.Shape{2, 2}, 5)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equal(mustNew(t, tensor.Shape{2, 2}, 6)))

	// Operands are untouched.
	assert.True(t, a.Equal(mustNew(t, tensor.Shape{2, 2}, 1)))
}

func TestAdd_NoBroadcast(t *testing.T) {
	a := mustNew(t, tensor.Shape{1, 2}, 1)
	b := mustNew(t, tensor.Shape{2, 2}, 2)

	_, err := a.Add(b)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = a.Sub(b)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestSub(t *testing.T) {
	e := mustNew(t, tensor.Shape{1}, 15)
	a := mustNew(t, tensor.Shape{1}, 5)

	diff, err := e.Sub(a)
	require.NoError(t, err)
	assert.True(t, diff.Equal(mustNew(t, tensor.Shape{1}, 10)))
}

func TestInPlace(t *testing.T) {
	a := mustNew(t, tensor.Shape{2, 2}, 1)
	b := mustNew(t, tensor.Shape{2, 2}, 5)

	require.NoError(t, a.AddInPlace(b))
	assert.True(t, a.Equal(mustNew(t, tensor.Shape{2, 2}, 6)))

	require.NoError(t, a.SubInPlace(b))
	assert.True(t, a.Equal(mustNew(t, tensor.Shape{2, 2}, 1)))

	bad := mustNew(t, tensor.Shape{1, 2}, 1)
	require.ErrorIs(t, bad.AddInPlace(b), tensor.ErrShapeMismatch)
	require.ErrorIs(t, bad.SubInPlace(b), tensor.ErrShapeMismatch)
	assert.True(t, bad.Equal(mustNew(t, tensor.Shape{1, 2}, 1)), "failed in-place op must not mutate")
}

func TestScale(t *testing.T) {
	a := mustFromSlice(t, []float64{1, -2, 3}, tensor.Shape{3})
	assert.Equal(t, []float64{2, -4, 6}, a.Scale(2).Data())
}

func TestMul_SameShape(t *testing.T) {
	a := mustNew(t, tensor.Shape{1, 2}, 1)
	b := mustNew(t, tensor.Shape{1, 2}, 2)

	got, err := a.Mul(b)
	require.NoError(t, err)
	assert.True(t, got.Equal(mustNew(t, tensor.Shape{1, 2}, 2)))
}

func TestMul_Broadcast(t *testing.T) {
	row := mustFromSlice(t, []float64{1, 2}, tensor.Shape{1, 2})
	col := mustFromSlice(t, []float64{10, 100}, tensor.Shape{2, 1})

	got, err := row.Mul(col)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, got.Shape())
	if diff := cmp.Diff([]float64{10, 20, 100, 200}, got.Data()); diff != "" {
		t.Errorf("Mul() mismatch (-want +got):\n%s", diff)
	}
}

func TestMul_BroadcastRank(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	v := mustFromSlice(t, []float64{1, 0, -1}, tensor.Shape{3})

	got, err := a.Mul(v)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, got.Shape())
	assert.Equal(t, []float64{1, 0, -3, 4, 0, -6}, got.Data())

	got, err = v.Mul(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, -3, 4, 0, -6}, got.Data())
}

func TestMul_Incompatible(t *testing.T) {
	a := mustNew(t, tensor.Shape{2, 3, 3}, 1)
	b := mustNew(t, tensor.Shape{3, 2, 3}, 2)

	_, err := a.Mul(b)
	require.ErrorIs(t, err, tensor.ErrBroadcast)
}

func TestDiv(t *testing.T) {
	e := mustNew(t, tensor.Shape{1, 2}, 2)
	a := mustNew(t, tensor.Shape{1, 2}, 1)

	got, err := e.Div(a)
	require.NoError(t, err)
	assert.True(t, got.Equal(mustNew(t, tensor.Shape{1, 2}, 2)))

	_, err = mustNew(t, tensor.Shape{2, 3, 3}, 1).Div(mustNew(t, tensor.Shape{3, 2, 3}, 2))
	require.ErrorIs(t, err, tensor.ErrBroadcast)
}

func TestDiv_Broadcast(t *testing.T) {
	a := mustFromSlice(t, []float64{2, 4, 6, 8}, tensor.Shape{2, 2})
	d := mustFromSlice(t, []float64{2, 4}, tensor.Shape{2, 1})

	got, err := a.Div(d)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1.5, 2}, got.Data())
}
