// Package nn composes autodiff Values into trainable networks.
//
// This package provides:
//   - Module interface: parameter collection and gradient reset
//   - Neuron: tanh(w·x + b) over a fixed number of inputs
//   - Layer: independent neurons sharing the same inputs
//   - MLP: layers chained input to output
//   - MSE: squared-error loss over predictions and targets
//
// Every forward pass builds a fresh graph that references the module's
// parameter Values, so calling Backward on a loss writes gradients straight
// into the parameters.
package nn

import (
	"errors"

	"github.com/born-ml/grad/internal/autodiff"
)

// ErrDimensionMismatch is returned when an input sequence does not match the
// arity a module was built for.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Module is the interface shared by Neuron, Layer and MLP.
type Module interface {
	// Parameters returns the trainable leaves in construction order.
	// Repeated calls return the same Values in the same order.
	Parameters() []*autodiff.Value

	// ZeroGrad sets the Grad of every parameter to zero.
	ZeroGrad()
}

// ZeroGrad resets the gradients of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.Grad = 0
	}
}

// NumParameters returns len(m.Parameters()).
func NumParameters(m Module) int {
	return len(m.Parameters())
}
