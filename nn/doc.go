// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network modules built from autodiff Values.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(w·x + b)
//   - Layer: neurons that share their inputs
//   - MLP: layers chained input to output
//   - SumSquaredError and MSE losses
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/grad/autodiff"
//	    "github.com/born-ml/grad/nn"
//	    "github.com/born-ml/grad/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLPFrom(3, []int{4, 4, 1}, nn.NewSource(42))
//	    opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	    for range 100 {
//	        out, _ := model.ForwardOne(autodiff.Values(2, 3, -1))
//	        loss, _ := nn.SumSquaredError(out, autodiff.Values(1))
//
//	        opt.ZeroGrad()
//	        loss.Backward()
//	        opt.Step()
//	    }
//	}
//
// # Initialization
//
// Parameters are drawn uniformly from [-1, 1) unless WithInitRange or
// WithXavier is passed. NewNeuron, NewLayer and NewMLP take a seed and build
// a fresh source for every neuron, so all neurons in a layer start equal.
// The From variants draw every parameter from one shared source.
package nn
