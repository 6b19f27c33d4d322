// Package optim implements gradient-descent optimizers over autodiff parameters.
//
// This package provides:
//   - Optimizer interface: Step, ZeroGrad and learning-rate access
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's Grad, written by autodiff Backward, and
// update its Data in place.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    loss := computeLoss(model, data)
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the interface shared by SGD and Adam.
type Optimizer interface {
	// Step applies one update to every parameter from its current Grad.
	Step()

	// ZeroGrad sets the Grad of every parameter to zero.
	//
	// Call it before each backward pass; autodiff accumulates gradients.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64

	// SetLR replaces the learning rate, for scheduling.
	SetLR(lr float64)
}
