package tensor_test

import (
	"testing"

	"github.com/born-ml/grad/internal/random"
	"github.com/born-ml/grad/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFull(t *testing.T) {
	x, err := tensor.Full(tensor.Shape{2, 2}, 3.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, 3.5, 3.5, 3.5}, x.Data())
}

func TestRand(t *testing.T) {
	x, err := tensor.Rand(random.New(3), tensor.Shape{10, 10}, -2, 2)
	require.NoError(t, err)
	for _, v := range x.Data() {
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 2.0)
	}

	y, err := tensor.Rand(random.New(3), tensor.Shape{10, 10}, -2, 2)
	require.NoError(t, err)
	assert.True(t, x.Equal(y))
}

func TestRandn(t *testing.T) {
	x, err := tensor.Randn(random.New(7), tensor.Shape{100, 100})
	require.NoError(t, err)

	var sum float64
	for _, v := range x.Data() {
		sum += v
	}
	assert.InDelta(t, 0, sum/float64(x.Size()), 0.05)
}

func TestArange(t *testing.T) {
	x, err := tensor.Arange(2, 6)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4}, x.Shape())
	assert.Equal(t, []float64{2, 3, 4, 5}, x.Data())

	_, err = tensor.Arange(3, 3)
	assert.ErrorIs(t, err, tensor.ErrRange)
}

func TestEye(t *testing.T) {
	x, err := tensor.Eye(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, x.Data())

	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, tensor.Shape{3, 3})
	got, err := a.MatMul(x)
	require.NoError(t, err)
	assert.True(t, got.Equal(a))
}

func TestCat(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := mustFromSlice(t, []float64{5, 6}, tensor.Shape{2, 1})

	got, err := tensor.Cat([]*tensor.Tensor{a, b}, -1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, got.Shape())
	assert.Equal(t, []float64{1, 2, 5, 3, 4, 6}, got.Data())

	rows, err := tensor.Cat([]*tensor.Tensor{a, a}, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 2}, rows.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 1, 2, 3, 4}, rows.Data())

	_, err = tensor.Cat([]*tensor.Tensor{a, b}, 0)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.Cat(nil, 0)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestSqueezeUnsqueeze(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	u, err := a.Unsqueeze(1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 1, 3}, u.Shape())

	last, err := a.Unsqueeze(-1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3, 1}, last.Shape())

	s, err := u.Squeeze(-2)
	require.NoError(t, err)
	assert.True(t, s.Equal(a))

	_, err = a.Squeeze(0)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = a.Unsqueeze(4)
	assert.ErrorIs(t, err, tensor.ErrRange)
}
