package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/born-ml/grad/internal/random"
)

// MLP is a multi-layer perceptron: layers of sizes
// [numInputs] + sizes chained so that each layer reads the previous one's outputs.
//
// Example:
//
//	mlp := nn.NewMLP(3, []int{4, 4, 1}, 42)
//	outs, err := mlp.ForwardOne(autodiff.Values(2, 3, -1))
//	// outs has length 1
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP whose layers are built with NewLayer(…, seed).
//
// Parameters:
//   - numInputs: Width of the input
//   - sizes: Output width of each layer, first to last
//   - seed: Seed passed to every layer
//   - opts: Initialization options
//
// Returns a new MLP.
func NewMLP(numInputs int, sizes []int, seed int64, opts ...Option) *MLP {
	return newMLP(numInputs, sizes, func(in, out int) *Layer {
		return NewLayer(in, out, seed, opts...)
	})
}

// NewMLPFrom creates an MLP whose layers all draw from src, first layer first.
func NewMLPFrom(numInputs int, sizes []int, src *random.Source, opts ...Option) *MLP {
	return newMLP(numInputs, sizes, func(in, out int) *Layer {
		return NewLayerFrom(in, out, src, opts...)
	})
}

func newMLP(numInputs int, sizes []int, build func(in, out int) *Layer) *MLP {
	if len(sizes) == 0 {
		panic("nn: mlp needs at least one layer")
	}
	layers := make([]*Layer, len(sizes))
	in := numInputs
	for i, out := range sizes {
		layers[i] = build(in, out)
		in = out
	}
	return &MLP{layers: layers}
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	out := make([]*Layer, len(m.layers))
	copy(out, m.layers)
	return out
}

// NumInputs returns the input width of the first layer.
func (m *MLP) NumInputs() int { return m.layers[0].NumInputs() }

// NumOutputs returns the output width of the last layer.
func (m *MLP) NumOutputs() int { return m.layers[len(m.layers)-1].NumOutputs() }

// ForwardOne threads a single sample through every layer.
func (m *MLP) ForwardOne(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	x := inputs
	for i, l := range m.layers {
		out, err := l.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("mlp layer %d: %w", i, err)
		}
		x = out
	}
	return x, nil
}

// Forward evaluates each sample of batch independently. Output i holds the
// final layer's outputs for batch[i].
//
// Returns ErrDimensionMismatch, wrapped with the sample index, if any sample
// has the wrong width.
func (m *MLP) Forward(batch [][]*autodiff.Value) ([][]*autodiff.Value, error) {
	outs := make([][]*autodiff.Value, len(batch))
	for i, sample := range batch {
		out, err := m.ForwardOne(sample)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		outs[i] = out
	}
	return outs, nil
}

// Parameters returns the parameters of every layer, first layer first.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of every layer.
func (m *MLP) ZeroGrad() { ZeroGrad(m) }

func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return "MLP[" + strings.Join(parts, ", ") + "]"
}
