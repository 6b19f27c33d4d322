// Package autodiff implements reverse-mode automatic differentiation over
// scalar computation graphs.
//
// A graph is built by applying operations to Values. Every operation allocates
// a new Value that records its operands and a backward rule; calling Backward
// on a root Value propagates gradients to everything reachable from it.
//
// Example:
//
//	a := autodiff.NewValue(2)
//	b := autodiff.NewValue(3)
//	d := a.Mul(b).ReLU()
//	d.Backward()
//	// a.Grad == 3, b.Grad == 2
//
// Gradients accumulate. Callers reset them between passes, usually through
// nn.Module.ZeroGrad.
package autodiff

import "fmt"

// Op identifies the operation that produced a Value.
type Op int

// Operation tags.
const (
	OpLeaf Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpExp
	OpTanh
	OpReLU
)

var opNames = [...]string{
	OpLeaf: "leaf",
	OpAdd:  "+",
	OpSub:  "-",
	OpMul:  "*",
	OpDiv:  "/",
	OpPow:  "pow",
	OpExp:  "exp",
	OpTanh: "tanh",
	OpReLU: "relu",
}

// String returns the operator symbol or name.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Arity returns the number of operands the operation takes.
func (o Op) Arity() int {
	switch o {
	case OpLeaf:
		return 0
	case OpAdd, OpSub, OpMul, OpDiv:
		return 2
	default:
		return 1
	}
}

// Value is a node in a scalar computation graph.
//
// Data holds the forward value and Grad the accumulated derivative of the
// last Backward root with respect to this node. Both are exported so training
// code can read gradients and update parameters in place.
//
// A Value's operands are fixed at construction, so the operand relation is
// acyclic by construction.
type Value struct {
	Data float64
	Grad float64

	op       Op
	prev     []*Value
	backward func()
	label    string
	param    bool
}

// NewValue creates a leaf holding data.
func NewValue(data float64) *Value {
	return &Value{Data: data, op: OpLeaf}
}

// NewParameter creates a leaf marked as a trainable parameter.
// The flag only classifies the leaf; gradients flow to it like any other node.
func NewParameter(data float64) *Value {
	return &Value{Data: data, op: OpLeaf, param: true}
}

// Values wraps each element of data in a leaf.
func Values(data ...float64) []*Value {
	out := make([]*Value, len(data))
	for i, d := range data {
		out[i] = NewValue(d)
	}
	return out
}

// newResult allocates an operation output. The caller attaches the backward rule.
func newResult(data float64, op Op, operands ...*Value) *Value {
	return &Value{Data: data, op: op, prev: operands}
}

// WithLabel sets a debugging label and returns v.
func (v *Value) WithLabel(label string) *Value {
	v.label = label
	return v
}

// Label returns the debugging label, if any.
func (v *Value) Label() string { return v.label }

// Op returns the operation that produced v.
func (v *Value) Op() Op { return v.op }

// IsParameter reports whether v was created by NewParameter.
func (v *Value) IsParameter() bool { return v.param }

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool { return v.op == OpLeaf }

// Operands returns a copy of v's operand list.
func (v *Value) Operands() []*Value {
	out := make([]*Value, len(v.prev))
	copy(out, v.prev)
	return out
}

// String returns a debugging representation.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(%s, data=%g, grad=%g, op=%s)", v.label, v.Data, v.Grad, v.op)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%s)", v.Data, v.Grad, v.op)
}
