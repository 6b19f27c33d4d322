package autodiff

import "math"

// Every operation below computes the forward value eagerly and attaches a
// backward rule that adds (local derivative × out.Grad) into each operand's
// Grad. Rules accumulate and never overwrite, so an operand shared by several
// results receives the sum of their contributions.

// Add returns v + other.
//
// d(a+b)/da = 1, d(a+b)/db = 1.
func (v *Value) Add(other *Value) *Value {
	out := newResult(v.Data+other.Data, OpAdd, v, other)
	out.backward = func() {
		v.Grad += out.Grad
		other.Grad += out.Grad
	}
	return out
}

// Sub returns v - other.
//
// d(a-b)/da = 1, d(a-b)/db = -1.
func (v *Value) Sub(other *Value) *Value {
	out := newResult(v.Data-other.Data, OpSub, v, other)
	out.backward = func() {
		v.Grad += out.Grad
		other.Grad -= out.Grad
	}
	return out
}

// Mul returns v * other.
//
// d(a*b)/da = b, d(a*b)/db = a.
func (v *Value) Mul(other *Value) *Value {
	out := newResult(v.Data*other.Data, OpMul, v, other)
	out.backward = func() {
		v.Grad += other.Data * out.Grad
		other.Grad += v.Data * out.Grad
	}
	return out
}

// Div returns v / other. Division by a zero-valued node yields ±Inf or NaN
// following IEEE 754.
//
// d(a/b)/da = 1/b, d(a/b)/db = -a/b².
func (v *Value) Div(other *Value) *Value {
	out := newResult(v.Data/other.Data, OpDiv, v, other)
	out.backward = func() {
		v.Grad += out.Grad / other.Data
		other.Grad -= v.Data / (other.Data * other.Data) * out.Grad
	}
	return out
}

// Pow returns v raised to the constant exponent k.
//
// d(a^k)/da = k·a^(k-1).
func (v *Value) Pow(k float64) *Value {
	out := newResult(math.Pow(v.Data, k), OpPow, v)
	out.backward = func() {
		v.Grad += k * math.Pow(v.Data, k-1) * out.Grad
	}
	return out
}

// Exp returns e^v.
//
// d(e^a)/da = e^a, which is out.Data.
func (v *Value) Exp() *Value {
	out := newResult(math.Exp(v.Data), OpExp, v)
	out.backward = func() {
		v.Grad += out.Data * out.Grad
	}
	return out
}

// Tanh returns tanh(v).
//
// d(tanh(a))/da = 1 - tanh²(a).
func (v *Value) Tanh() *Value {
	out := newResult(math.Tanh(v.Data), OpTanh, v)
	out.backward = func() {
		v.Grad += (1 - out.Data*out.Data) * out.Grad
	}
	return out
}

// ReLU returns max(0, v).
//
// d(relu(a))/da = 1 if a > 0, else 0.
func (v *Value) ReLU() *Value {
	out := newResult(math.Max(0, v.Data), OpReLU, v)
	out.backward = func() {
		if v.Data > 0 {
			v.Grad += out.Grad
		}
	}
	return out
}

// Neg returns -v as v * (-1).
func (v *Value) Neg() *Value {
	return v.Mul(NewValue(-1))
}

// AddScalar returns v + k, with k wrapped in a leaf.
func (v *Value) AddScalar(k float64) *Value {
	return v.Add(NewValue(k))
}

// MulScalar returns v * k, with k wrapped in a leaf.
func (v *Value) MulScalar(k float64) *Value {
	return v.Mul(NewValue(k))
}

// Sum chains Add over values left to right. It returns a zero leaf for no
// arguments and the single argument unchanged for one.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		return NewValue(0)
	}
	acc := values[0]
	for _, v := range values[1:] {
		acc = acc.Add(v)
	}
	return acc
}
