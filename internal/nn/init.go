package nn

import (
	"math"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/born-ml/grad/internal/random"
)

// InitRange is the half-open interval [Low, High) that weights and biases
// are drawn from.
type InitRange struct {
	Low  float64
	High float64
}

// DefaultInitRange returns [-1, 1).
func DefaultInitRange() InitRange {
	return InitRange{Low: -1, High: 1}
}

// XavierRange returns the Xavier (Glorot) uniform interval
// [-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
//
// It keeps activation variance roughly constant across layers and is a
// better fit than the default range for wide layers.
func XavierRange(fanIn, fanOut int) InitRange {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return InitRange{Low: -bound, High: bound}
}

// Option configures module construction.
type Option func(*options)

type options struct {
	init   InitRange
	xavier bool
}

func buildOptions(opts []Option) options {
	o := options{init: DefaultInitRange()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithInitRange draws parameters from r instead of [-1, 1).
func WithInitRange(r InitRange) Option {
	return func(o *options) {
		o.init = r
		o.xavier = false
	}
}

// WithXavier draws each layer's parameters from XavierRange(numInputs, numOutputs).
// A lone Neuron counts as a layer with one output.
func WithXavier() Option {
	return func(o *options) {
		o.xavier = true
	}
}

func (o options) rangeFor(fanIn, fanOut int) InitRange {
	if o.xavier {
		return XavierRange(fanIn, fanOut)
	}
	return o.init
}

// newParameter draws one parameter leaf from src within r.
func newParameter(src *random.Source, r InitRange) *autodiff.Value {
	return autodiff.NewParameter(src.Uniform(r.Low, r.High))
}
