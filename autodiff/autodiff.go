// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the public API for scalar reverse-mode
// automatic differentiation.
//
// Build a graph by applying operations to Values, then call Backward on the
// result:
//
//	x := autodiff.NewValue(2)
//	y := x.Pow(4) // y.Data == 16
//	y.Backward()  // x.Grad == 32
//
// Supported operations: Add, Sub, Mul, Div, Pow (constant exponent), Exp,
// Tanh, ReLU, plus Neg, AddScalar, MulScalar and Sum.
package autodiff

import (
	"io"
	"log"

	"github.com/born-ml/grad/internal/autodiff"
)

// Value is a node in a scalar computation graph.
type Value = autodiff.Value

// Op identifies the operation that produced a Value.
type Op = autodiff.Op

// Option configures a Backward pass.
type Option = autodiff.Option

// Operation tags.
const (
	OpLeaf = autodiff.OpLeaf
	OpAdd  = autodiff.OpAdd
	OpSub  = autodiff.OpSub
	OpMul  = autodiff.OpMul
	OpDiv  = autodiff.OpDiv
	OpPow  = autodiff.OpPow
	OpExp  = autodiff.OpExp
	OpTanh = autodiff.OpTanh
	OpReLU = autodiff.OpReLU
)

// NewValue creates a leaf holding data.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// NewParameter creates a leaf marked as a trainable parameter.
func NewParameter(data float64) *Value {
	return autodiff.NewParameter(data)
}

// Values wraps each element of data in a leaf.
func Values(data ...float64) []*Value {
	return autodiff.Values(data...)
}

// Sum chains Add over values.
func Sum(values ...*Value) *Value {
	return autodiff.Sum(values...)
}

// TopoSort returns the nodes reachable from root, operands first.
func TopoSort(root *Value) []*Value {
	return autodiff.TopoSort(root)
}

// WriteGraph writes an indented tree of the graph rooted at root.
func WriteGraph(w io.Writer, root *Value) error {
	return autodiff.WriteGraph(w, root)
}

// WithLogger traces a Backward pass to logger.
func WithLogger(logger *log.Logger) Option {
	return autodiff.WithLogger(logger)
}
