package nn

import (
	"fmt"

	"github.com/born-ml/grad/internal/autodiff"
)

// SumSquaredError builds Σ (predᵢ - targetᵢ)².
//
// Returns ErrDimensionMismatch if the lengths differ. Empty inputs give a
// zero leaf.
func SumSquaredError(pred, target []*autodiff.Value) (*autodiff.Value, error) {
	if len(pred) != len(target) {
		return nil, fmt.Errorf("loss: %d predictions for %d targets: %w", len(pred), len(target), ErrDimensionMismatch)
	}
	terms := make([]*autodiff.Value, len(pred))
	for i := range pred {
		terms[i] = pred[i].Sub(target[i]).Pow(2)
	}
	return autodiff.Sum(terms...), nil
}

// MSE builds mean((predᵢ - targetᵢ)²).
//
// Returns ErrDimensionMismatch if the lengths differ or are zero.
func MSE(pred, target []*autodiff.Value) (*autodiff.Value, error) {
	if len(pred) == 0 {
		return nil, fmt.Errorf("loss: mean of zero terms: %w", ErrDimensionMismatch)
	}
	sse, err := SumSquaredError(pred, target)
	if err != nil {
		return nil, err
	}
	return sse.MulScalar(1 / float64(len(pred))), nil
}
