package nn

import (
	"fmt"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/born-ml/grad/internal/random"
)

// Neuron computes tanh(Σ wᵢ·xᵢ + b) over a fixed number of inputs.
//
// Example:
//
//	n := nn.NewNeuron(3, 42)
//	out, err := n.Forward(autodiff.Values(1, 2, 3))
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
}

// NewNeuron creates a neuron with numInputs weights drawn from a source
// seeded with seed.
//
// Parameters:
//   - numInputs: Number of inputs the neuron accepts
//   - seed: Seed for a fresh random.Source
//   - opts: Initialization options; parameters default to U[-1, 1)
//
// Returns a new Neuron.
func NewNeuron(numInputs int, seed int64, opts ...Option) *Neuron {
	return NewNeuronFrom(numInputs, random.New(seed), opts...)
}

// NewNeuronFrom creates a neuron drawing its weights and then its bias from src.
func NewNeuronFrom(numInputs int, src *random.Source, opts ...Option) *Neuron {
	return newNeuron(numInputs, src, buildOptions(opts).rangeFor(numInputs, 1))
}

func newNeuron(numInputs int, src *random.Source, r InitRange) *Neuron {
	if numInputs <= 0 {
		panic(fmt.Sprintf("nn: neuron needs at least one input, got %d", numInputs))
	}
	weights := make([]*autodiff.Value, numInputs)
	for i := range weights {
		weights[i] = newParameter(src, r)
	}
	return &Neuron{weights: weights, bias: newParameter(src, r)}
}

// NumInputs returns the number of inputs the neuron accepts.
func (n *Neuron) NumInputs() int { return len(n.weights) }

// Weights returns the weight parameters.
func (n *Neuron) Weights() []*autodiff.Value {
	out := make([]*autodiff.Value, len(n.weights))
	copy(out, n.weights)
	return out
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *autodiff.Value { return n.bias }

// Forward builds the graph for tanh(Σ wᵢ·xᵢ + b).
//
// Returns ErrDimensionMismatch if len(inputs) differs from the number of weights.
func (n *Neuron) Forward(inputs []*autodiff.Value) (*autodiff.Value, error) {
	if len(inputs) != len(n.weights) {
		return nil, fmt.Errorf("neuron: %d inputs for %d weights: %w", len(inputs), len(n.weights), ErrDimensionMismatch)
	}

	terms := make([]*autodiff.Value, 0, len(inputs)+1)
	for i, x := range inputs {
		terms = append(terms, n.weights[i].Mul(x))
	}
	terms = append(terms, n.bias)

	return autodiff.Sum(terms...).Tanh(), nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad resets the gradients of the weights and the bias.
func (n *Neuron) ZeroGrad() { ZeroGrad(n) }

// String returns "Neuron(numInputs)".
func (n *Neuron) String() string {
	return fmt.Sprintf("Neuron(%d)", len(n.weights))
}
