// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense arrays.
//
// The package exposes two independent containers:
//   - Tensor: float64, dynamic rank, row-major, with NumPy-style broadcasting
//     for Mul and Div, strict shapes for Add and Sub, reductions, transpose
//     and matrix multiply
//   - Matrix[T]: rows × cols with a fixed number of components per entry,
//     generic over float32 and float64, with determinant, Kronecker and
//     Hadamard products and an elementwise partial order
//
// Every derived array is a fresh copy; nothing aliases its source.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{1, 2})
//	b, _ := tensor.FromSlice([]float64{1, 1}, tensor.Shape{2, 1})
//	c, _ := b.MatMul(a) // shape [2, 2], data {1, 2, 1, 2}
//
// Errors wrap one of the sentinel values below and are matched with errors.Is.
package tensor
