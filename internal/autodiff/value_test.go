package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValue(t *testing.T) {
	v := autodiff.NewValue(1.5)

	assert.Equal(t, 1.5, v.Data)
	assert.Equal(t, 0.0, v.Grad)
	assert.Equal(t, autodiff.OpLeaf, v.Op())
	assert.True(t, v.IsLeaf())
	assert.False(t, v.IsParameter())
	assert.Empty(t, v.Operands())
}

func TestNewParameter(t *testing.T) {
	p := autodiff.NewParameter(0.3)
	assert.True(t, p.IsParameter())
	assert.True(t, p.IsLeaf())
}

func TestValues(t *testing.T) {
	vs := autodiff.Values(1, 2, 3)
	require.Len(t, vs, 3)
	for i, v := range vs {
		assert.Equal(t, float64(i+1), v.Data)
		assert.True(t, v.IsLeaf())
	}
}

func TestOperandArity(t *testing.T) {
	a := autodiff.NewValue(0.5)
	b := autodiff.NewValue(2)

	results := []*autodiff.Value{
		a.Add(b), a.Sub(b), a.Mul(b), a.Div(b),
		a.Pow(2), a.Exp(), a.Tanh(), a.ReLU(),
	}
	for _, r := range results {
		assert.Len(t, r.Operands(), r.Op().Arity(), "op %s", r.Op())
	}
}

func TestOperandsCopy(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(2)
	c := a.Add(b)

	ops := c.Operands()
	ops[0] = b

	assert.Same(t, a, c.Operands()[0])
}

func TestForwardValues(t *testing.T) {
	x := autodiff.NewValue(0.7)
	y := autodiff.NewValue(-1.3)

	assert.InDelta(t, 0.7-1.3, x.Add(y).Data, 1e-15)
	assert.InDelta(t, 0.7+1.3, x.Sub(y).Data, 1e-15)
	assert.InDelta(t, 0.7*-1.3, x.Mul(y).Data, 1e-15)
	assert.InDelta(t, 0.7/-1.3, x.Div(y).Data, 1e-15)
	assert.InDelta(t, math.Exp(0.7), x.Exp().Data, 1e-15)
	assert.InDelta(t, math.Tanh(-1.3), y.Tanh().Data, 1e-15)
	assert.Equal(t, 0.7, x.ReLU().Data)
	assert.Equal(t, 0.0, y.ReLU().Data)
	assert.InDelta(t, -0.7, x.Neg().Data, 1e-15)
	assert.InDelta(t, 3.7, x.AddScalar(3).Data, 1e-15)
	assert.InDelta(t, 2.1, x.MulScalar(3).Data, 1e-15)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, autodiff.Sum().Data)

	a := autodiff.NewValue(4)
	assert.Same(t, a, autodiff.Sum(a))

	s := autodiff.Sum(autodiff.Values(1, 2, 3, 4)...)
	assert.Equal(t, 10.0, s.Data)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "+", autodiff.OpAdd.String())
	assert.Equal(t, "tanh", autodiff.OpTanh.String())
	assert.Equal(t, "leaf", autodiff.OpLeaf.String())
	assert.Equal(t, "Op(42)", autodiff.Op(42).String())
}

func TestValueString(t *testing.T) {
	v := autodiff.NewValue(2)
	assert.Equal(t, "Value(data=2, grad=0, op=leaf)", v.String())

	w := autodiff.NewValue(3).WithLabel("w")
	assert.Equal(t, "w", w.Label())
	assert.Equal(t, "Value(w, data=3, grad=0, op=leaf)", w.String())
}
