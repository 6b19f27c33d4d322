package autodiff_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackward_SelfAdd(t *testing.T) {
	x := autodiff.NewValue(3)
	y := x.Add(x)

	y.Backward()

	assert.Equal(t, 1.0, y.Grad)
	assert.Equal(t, 2.0, x.Grad)
}

func TestBackward_ProductRule(t *testing.T) {
	for _, tc := range []struct{ x, w float64 }{{2, 3}, {-1.5, 4}, {0, 7}} {
		x := autodiff.NewValue(tc.x)
		w := autodiff.NewValue(tc.w)
		y := x.Mul(w)

		y.Backward()

		assert.Equal(t, tc.w, x.Grad)
		assert.Equal(t, tc.x, w.Grad)
	}
}

func TestBackward_ChainThroughReLU(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(3)
	c := a.Mul(b)
	d := c.ReLU()

	d.Backward()

	assert.Equal(t, 3.0, a.Grad)
	assert.Equal(t, 2.0, b.Grad)
	assert.Equal(t, 1.0, c.Grad)
	assert.Equal(t, 1.0, d.Grad)
}

func TestBackward_ReLUBlocksNegative(t *testing.T) {
	a := autodiff.NewValue(-2)
	b := autodiff.NewValue(3)
	d := a.Mul(b).ReLU()

	d.Backward()

	assert.Equal(t, 0.0, d.Data)
	assert.Equal(t, 0.0, a.Grad)
	assert.Equal(t, 0.0, b.Grad)
}

func TestBackward_Pow(t *testing.T) {
	x := autodiff.NewValue(2)
	y := x.Pow(4)

	assert.Equal(t, 16.0, y.Data)

	y.Backward()
	assert.Equal(t, 32.0, x.Grad)
}

func TestBackward_MulAdd(t *testing.T) {
	val := autodiff.NewValue(10)
	val2 := autodiff.NewValue(2)
	res := val.Mul(val2).Add(val2)

	res.Backward()

	assert.Equal(t, 22.0, res.Data)
	assert.Equal(t, 2.0, val.Grad)
	assert.Equal(t, 11.0, val2.Grad)
}

func TestBackward_Div(t *testing.T) {
	a := autodiff.NewValue(3)
	b := autodiff.NewValue(4)
	y := a.Div(b)

	y.Backward()

	assert.InDelta(t, 0.25, a.Grad, 1e-15)
	assert.InDelta(t, -3.0/16, b.Grad, 1e-15)
}

func TestBackward_Diamond(t *testing.T) {
	// a feeds two branches that meet again in d.
	a := autodiff.NewValue(3)
	b := a.MulScalar(2)
	c := a.Pow(2)
	d := b.Add(c)

	d.Backward()

	// d = 2a + a², so dd/da = 2 + 2a.
	assert.Equal(t, 8.0, a.Grad)
	assert.Equal(t, 1.0, b.Grad)
	assert.Equal(t, 1.0, c.Grad)
}

func TestBackward_ParameterLeaves(t *testing.T) {
	w := autodiff.NewParameter(0.5)
	x := autodiff.NewValue(2)
	y := w.Mul(x).Tanh()

	y.Backward()

	assert.NotZero(t, w.Grad)
	assert.NotZero(t, x.Grad)
}

func TestBackward_Accumulates(t *testing.T) {
	x := autodiff.NewValue(2)
	w := autodiff.NewValue(5)
	y := x.Mul(w)

	y.Backward()
	y.Backward()

	assert.Equal(t, 10.0, x.Grad)
	assert.Equal(t, 4.0, w.Grad)
}

func TestBackward_LongChain(t *testing.T) {
	leaves := make([]*autodiff.Value, 100000)
	for i := range leaves {
		leaves[i] = autodiff.NewValue(1)
	}
	s := autodiff.Sum(leaves...)

	s.Backward()

	assert.Equal(t, float64(len(leaves)), s.Data)
	for _, l := range []*autodiff.Value{leaves[0], leaves[len(leaves)/2], leaves[len(leaves)-1]} {
		assert.Equal(t, 1.0, l.Grad)
	}
}

func TestBackward_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	a := autodiff.NewValue(2).WithLabel("a")
	y := a.Tanh()
	y.Backward(autodiff.WithLogger(logger))

	out := buf.String()
	assert.Contains(t, out, "backward: 2 nodes reachable")
	assert.Contains(t, out, "op=tanh")
}

func TestTopoSort(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(2)
	c := a.Mul(b)
	d := c.Add(a)
	e := d.Tanh()

	order := autodiff.TopoSort(e)
	require.Len(t, order, 5)
	assert.Same(t, e, order[len(order)-1])

	pos := make(map[*autodiff.Value]int, len(order))
	for i, v := range order {
		_, dup := pos[v]
		require.False(t, dup, "node %s appears twice", v)
		pos[v] = i
	}
	for _, v := range order {
		for _, operand := range v.Operands() {
			assert.Less(t, pos[operand], pos[v], "operand %s after result %s", operand, v)
		}
	}
}

func TestTopoSort_Leaf(t *testing.T) {
	a := autodiff.NewValue(1)
	order := autodiff.TopoSort(a)
	require.Len(t, order, 1)
	assert.Same(t, a, order[0])
}
