// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/grad/internal/autodiff"
	"github.com/born-ml/grad/internal/nn"
	"github.com/born-ml/grad/internal/random"
)

// Module is the interface shared by Neuron, Layer and MLP.
type Module = nn.Module

// Neuron computes tanh(Σ wᵢ·xᵢ + b).
type Neuron = nn.Neuron

// Layer is a set of neurons that all read the same inputs.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// InitRange is the interval parameters are drawn from.
type InitRange = nn.InitRange

// Option configures module construction.
type Option = nn.Option

// Source is a seeded random source.
type Source = random.Source

// ErrDimensionMismatch is returned when an input does not match a module's arity.
var ErrDimensionMismatch = nn.ErrDimensionMismatch

// NewSource returns a random source seeded with seed.
func NewSource(seed int64) *Source {
	return random.New(seed)
}

// NewNeuron creates a neuron seeded with seed.
func NewNeuron(numInputs int, seed int64, opts ...Option) *Neuron {
	return nn.NewNeuron(numInputs, seed, opts...)
}

// NewNeuronFrom creates a neuron drawing from src.
func NewNeuronFrom(numInputs int, src *Source, opts ...Option) *Neuron {
	return nn.NewNeuronFrom(numInputs, src, opts...)
}

// NewLayer creates a layer whose neurons are all seeded with seed.
func NewLayer(numInputs, numOutputs int, seed int64, opts ...Option) *Layer {
	return nn.NewLayer(numInputs, numOutputs, seed, opts...)
}

// NewLayerFrom creates a layer drawing every neuron from src.
func NewLayerFrom(numInputs, numOutputs int, src *Source, opts ...Option) *Layer {
	return nn.NewLayerFrom(numInputs, numOutputs, src, opts...)
}

// NewMLP creates an MLP whose layers are built with NewLayer(…, seed).
func NewMLP(numInputs int, sizes []int, seed int64, opts ...Option) *MLP {
	return nn.NewMLP(numInputs, sizes, seed, opts...)
}

// NewMLPFrom creates an MLP drawing every parameter from src.
func NewMLPFrom(numInputs int, sizes []int, src *Source, opts ...Option) *MLP {
	return nn.NewMLPFrom(numInputs, sizes, src, opts...)
}

// DefaultInitRange returns [-1, 1).
func DefaultInitRange() InitRange {
	return nn.DefaultInitRange()
}

// XavierRange returns the Xavier (Glorot) uniform interval for a layer.
func XavierRange(fanIn, fanOut int) InitRange {
	return nn.XavierRange(fanIn, fanOut)
}

// WithInitRange draws parameters from r.
func WithInitRange(r InitRange) Option {
	return nn.WithInitRange(r)
}

// WithXavier draws each layer's parameters from its Xavier range.
func WithXavier() Option {
	return nn.WithXavier()
}

// ZeroGrad resets the gradients of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// NumParameters returns the number of parameters of m.
func NumParameters(m Module) int {
	return nn.NumParameters(m)
}

// SumSquaredError builds Σ (predᵢ - targetᵢ)².
func SumSquaredError(pred, target []*autodiff.Value) (*autodiff.Value, error) {
	return nn.SumSquaredError(pred, target)
}

// MSE builds mean((predᵢ - targetᵢ)²).
func MSE(pred, target []*autodiff.Value) (*autodiff.Value, error) {
	return nn.MSE(pred, target)
}
