package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Reductions are indexed by the target axis: element a of the result accumulates
// every element whose index along axis equals a, across all other axes.
// For a [5, 10] tensor of ones, Sum(0) is [5] filled with 10 and Sum(-1) is [10]
// filled with 5. With keepDims the result keeps the input rank and every
// non-target axis has size 1.

// Sum accumulates all elements sharing an index along axis. Negative axes count from the end.
func (t *Tensor) Sum(axis int, keepDims bool) (*Tensor, error) {
	return t.reduce(axis, keepDims, "sum", floats.Sum, func(acc, v float64) float64 { return acc + v })
}

// Mean is Sum divided by the number of elements folded into each result entry.
func (t *Tensor) Mean(axis int, keepDims bool) (*Tensor, error) {
	out, err := t.Sum(axis, keepDims)
	if err != nil {
		return nil, err
	}
	floats.Scale(float64(len(out.data))/float64(len(t.data)), out.data)
	return out, nil
}

// Max returns the largest element for each index along axis.
func (t *Tensor) Max(axis int, keepDims bool) (*Tensor, error) {
	return t.reduce(axis, keepDims, "max", floats.Max, func(acc, v float64) float64 { return max(acc, v) })
}

// Min returns the smallest element for each index along axis.
func (t *Tensor) Min(axis int, keepDims bool) (*Tensor, error) {
	return t.reduce(axis, keepDims, "min", floats.Min, func(acc, v float64) float64 { return min(acc, v) })
}

// reduce folds contiguous groups: with the tensor viewed as [outer, axisSize, inner],
// each run data[(o*axisSize+a)*inner : +inner] is collapsed by group and merged
// into result[a] by merge.
func (t *Tensor) reduce(
	axis int,
	keepDims bool,
	op string,
	group func([]float64) float64,
	merge func(acc, v float64) float64,
) (*Tensor, error) {
	if len(t.shape) == 0 {
		return nil, fmt.Errorf("%s: scalar tensor has no axes: %w", op, ErrRank)
	}
	ax, err := normalizeAxis(axis, len(t.shape))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	axisSize := t.shape[ax]
	inner := t.strides[ax]
	outer := len(t.data) / (axisSize * inner)

	outShape := Shape{axisSize}
	if keepDims {
		outShape = make(Shape, len(t.shape))
		for i := range outShape {
			outShape[i] = 1
		}
		outShape[ax] = axisSize
	}
	out := newUnchecked(outShape)

	for o := 0; o < outer; o++ {
		for a := 0; a < axisSize; a++ {
			start := (o*axisSize + a) * inner
			v := group(t.data[start : start+inner])
			if o == 0 {
				out.data[a] = v
				continue
			}
			out.data[a] = merge(out.data[a], v)
		}
	}

	return out, nil
}

// Transpose returns a new tensor whose axis i is axis axes[i] of t.
// With no arguments the axes are reversed.
//
// Returns ErrRank if len(axes) differs from the rank, and ErrRange if axes is
// not a permutation of 0..rank-1.
func (t *Tensor) Transpose(axes ...int) (*Tensor, error) {
	rank := len(t.shape)
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		return nil, fmt.Errorf("transpose: %d axes for rank %d tensor: %w", len(axes), rank, ErrRank)
	}

	seen := make([]bool, rank)
	newShape := make(Shape, rank)
	for i, ax := range axes {
		if ax < 0 || ax >= rank || seen[ax] {
			return nil, fmt.Errorf("transpose: %v is not a permutation of [0, %d): %w", axes, rank, ErrRange)
		}
		seen[ax] = true
		newShape[i] = t.shape[ax]
	}

	out := newUnchecked(newShape)

	// Walk the destination in order; srcStrides[i] steps the source along destination axis i.
	srcStrides := make([]int, rank)
	for i, ax := range axes {
		srcStrides[i] = t.strides[ax]
	}
	idx := make([]int, rank)
	for i := range out.data {
		off := 0
		for d, v := range idx {
			off += v * srcStrides[d]
		}
		out.data[i] = t.data[off]
		incrementIndex(idx, newShape)
	}

	return out, nil
}
