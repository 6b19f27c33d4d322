package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Add returns the elementwise sum t + other.
//
// Addition does not broadcast: both shapes must be identical, otherwise ErrShapeMismatch.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	if err := t.requireSameShape(other, "add"); err != nil {
		return nil, err
	}
	out := t.Clone()
	floats.Add(out.data, other.data)
	return out, nil
}

// Sub returns the elementwise difference t - other.
//
// Subtraction does not broadcast: both shapes must be identical, otherwise ErrShapeMismatch.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	if err := t.requireSameShape(other, "sub"); err != nil {
		return nil, err
	}
	out := t.Clone()
	floats.Sub(out.data, other.data)
	return out, nil
}

// AddInPlace adds other into t elementwise.
func (t *Tensor) AddInPlace(other *Tensor) error {
	if err := t.requireSameShape(other, "add in place"); err != nil {
		return err
	}
	floats.Add(t.data, other.data)
	return nil
}

// SubInPlace subtracts other from t elementwise.
func (t *Tensor) SubInPlace(other *Tensor) error {
	if err := t.requireSameShape(other, "sub in place"); err != nil {
		return err
	}
	floats.Sub(t.data, other.data)
	return nil
}

// Scale returns a new tensor with every element multiplied by k.
func (t *Tensor) Scale(k float64) *Tensor {
	out := t.Clone()
	floats.Scale(k, out.data)
	return out
}

// Mul returns the elementwise product with NumPy-style broadcasting.
//
// Returns ErrBroadcast if the shapes are not compatible.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.broadcastBinary(other, "mul", func(a, b float64) float64 { return a * b })
}

// Div returns the elementwise quotient with NumPy-style broadcasting.
//
// Returns ErrBroadcast if the shapes are not compatible.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	return t.broadcastBinary(other, "div", func(a, b float64) float64 { return a / b })
}

func (t *Tensor) requireSameShape(other *Tensor, op string) error {
	if !t.shape.Equal(other.shape) {
		return fmt.Errorf("%s: %v vs %v: %w", op, t.shape, other.shape, ErrShapeMismatch)
	}
	return nil
}

// broadcastBinary applies f elementwise over the broadcast shape of t and other.
func (t *Tensor) broadcastBinary(other *Tensor, op string, f func(a, b float64) float64) (*Tensor, error) {
	outShape, needsBroadcast, err := BroadcastShapes(t.shape, other.shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := newUnchecked(outShape)

	if !needsBroadcast {
		for i := range out.data {
			out.data[i] = f(t.data[i], other.data[i])
		}
		return out, nil
	}

	aStrides := broadcastStrides(t.shape, outShape)
	bStrides := broadcastStrides(other.shape, outShape)
	idx := make([]int, len(outShape))
	for i := range out.data {
		aOff, bOff := 0, 0
		for d, v := range idx {
			aOff += v * aStrides[d]
			bOff += v * bStrides[d]
		}
		out.data[i] = f(t.data[aOff], other.data[bOff])
		incrementIndex(idx, outShape)
	}

	return out, nil
}
