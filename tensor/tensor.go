// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/grad/internal/random"
	"github.com/born-ml/grad/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense float64 array.
type Tensor = tensor.Tensor

// MatMulConfig controls how MatMul dispatches its work.
type MatMulConfig = tensor.MatMulConfig

// Float is the element constraint of Matrix.
type Float = tensor.Float

// Matrix is a rows × cols matrix with Elems components per entry.
type Matrix[T Float] = tensor.Matrix[T]

// Source is a seeded random source for RandomMatrix and NormalMatrix.
type Source = random.Source

// Errors.
var (
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrBroadcast       = tensor.ErrBroadcast
	ErrRank            = tensor.ErrRank
	ErrRange           = tensor.ErrRange
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
)

// New creates a tensor of the given shape with every element set to fill.
func New(shape Shape, fill float64) (*Tensor, error) {
	return tensor.New(shape, fill)
}

// FromSlice creates a tensor with a copy of data laid out under shape.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// Rand creates a tensor with values drawn uniformly from [low, high).
func Rand(src *Source, shape Shape, low, high float64) (*Tensor, error) {
	return tensor.Rand(src, shape, low, high)
}

// Randn creates a tensor with values from a standard normal distribution.
func Randn(src *Source, shape Shape) (*Tensor, error) {
	return tensor.Randn(src, shape)
}

// Arange creates a 1D tensor with values start, start+1, ... below end.
func Arange(start, end float64) (*Tensor, error) {
	return tensor.Arange(start, end)
}

// Eye creates an n × n identity matrix.
func Eye(n int) (*Tensor, error) {
	return tensor.Eye(n)
}

// Cat concatenates tensors along dim.
func Cat(tensors []*Tensor, dim int) (*Tensor, error) {
	return tensor.Cat(tensors, dim)
}

// BroadcastShapes returns the broadcast result of a and b and whether either
// operand needs broadcasting.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// DefaultMatMulConfig returns the configuration used by Tensor.MatMul.
func DefaultMatMulConfig() MatMulConfig {
	return tensor.DefaultMatMulConfig()
}

// NewSource returns a random source seeded with seed.
func NewSource(seed int64) *Source {
	return random.New(seed)
}

// NewMatrix creates a matrix with every component set to fill.
func NewMatrix[T Float](fill T, rows, cols, elems int) (*Matrix[T], error) {
	return tensor.NewMatrix(fill, rows, cols, elems)
}

// MatrixFromRows creates a single-component matrix from row literals.
func MatrixFromRows[T Float](rows [][]T) (*Matrix[T], error) {
	return tensor.MatrixFromRows(rows)
}

// RandomMatrix creates a matrix with components drawn uniformly from [low, high).
func RandomMatrix[T Float](src *Source, rows, cols, elems int, low, high float64) (*Matrix[T], error) {
	return tensor.RandomMatrix[T](src, rows, cols, elems, low, high)
}

// NormalMatrix creates a single-component matrix with entries drawn from N(mu, sigma²).
func NormalMatrix[T Float](src *Source, rows, cols int, mu, sigma float64) (*Matrix[T], error) {
	return tensor.NormalMatrix[T](src, rows, cols, mu, sigma)
}
