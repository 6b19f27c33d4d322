package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/born-ml/grad/internal/random"
)

// Layer is a set of neurons that all read the same inputs.
// Output i of Forward is the output of neuron i.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates numOutputs neurons of numInputs inputs each.
//
// Every neuron is built from its own source seeded with seed, so all neurons
// of the layer start with identical parameters. Use NewLayerFrom to draw the
// neurons from one shared sequence instead.
func NewLayer(numInputs, numOutputs int, seed int64, opts ...Option) *Layer {
	r := buildOptions(opts).rangeFor(numInputs, numOutputs)
	neurons := make([]*Neuron, numOutputs)
	for i := range neurons {
		neurons[i] = newNeuron(numInputs, random.New(seed), r)
	}
	return newLayer(neurons)
}

// NewLayerFrom creates numOutputs neurons drawing their parameters from src in order.
func NewLayerFrom(numInputs, numOutputs int, src *random.Source, opts ...Option) *Layer {
	r := buildOptions(opts).rangeFor(numInputs, numOutputs)
	neurons := make([]*Neuron, numOutputs)
	for i := range neurons {
		neurons[i] = newNeuron(numInputs, src, r)
	}
	return newLayer(neurons)
}

func newLayer(neurons []*Neuron) *Layer {
	if len(neurons) == 0 {
		panic("nn: layer needs at least one neuron")
	}
	return &Layer{neurons: neurons}
}

// NumInputs returns the input arity shared by every neuron.
func (l *Layer) NumInputs() int { return l.neurons[0].NumInputs() }

// NumOutputs returns the number of neurons.
func (l *Layer) NumOutputs() int { return len(l.neurons) }

// Neurons returns the layer's neurons in construction order.
func (l *Layer) Neurons() []*Neuron {
	out := make([]*Neuron, len(l.neurons))
	copy(out, l.neurons)
	return out
}

// Forward evaluates every neuron on inputs.
//
// Returns ErrDimensionMismatch if len(inputs) differs from NumInputs.
func (l *Layer) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	outs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Forward(inputs)
		if err != nil {
			return nil, fmt.Errorf("layer neuron %d: %w", i, err)
		}
		outs[i] = out
	}
	return outs, nil
}

// Parameters returns the parameters of every neuron, neurons in construction order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of every neuron.
func (l *Layer) ZeroGrad() { ZeroGrad(l) }

func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return "Layer[" + strings.Join(parts, ", ") + "]"
}
