package tensor

import "fmt"

// Cat concatenates tensors along dim into a new tensor.
//
// All tensors must have the same rank and the same shape except along dim
// (ErrShapeMismatch). Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	// a: [2, 3], b: [2, 5]
//	c, _ := tensor.Cat([]*Tensor{a, b}, 1) // Shape: [2, 8]
func Cat(tensors []*Tensor, dim int) (*Tensor, error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("cat: at least one tensor required: %w", ErrShapeMismatch)
	}
	first := tensors[0]
	if len(first.shape) == 0 {
		return nil, fmt.Errorf("cat: scalar tensors have no axes: %w", ErrRank)
	}
	ax, err := normalizeAxis(dim, len(first.shape))
	if err != nil {
		return nil, fmt.Errorf("cat: %w", err)
	}

	outShape := first.shape.Clone()
	outShape[ax] = 0
	for i, t := range tensors {
		if len(t.shape) != len(first.shape) {
			return nil, fmt.Errorf("cat: tensor %d has rank %d, want %d: %w", i, len(t.shape), len(first.shape), ErrShapeMismatch)
		}
		for d := range t.shape {
			if d != ax && t.shape[d] != first.shape[d] {
				return nil, fmt.Errorf("cat: tensor %d shape %v incompatible with %v on axis %d: %w",
					i, t.shape, first.shape, d, ErrShapeMismatch)
			}
		}
		outShape[ax] += t.shape[ax]
	}

	// Each tensor contributes a contiguous run of shape[ax]*inner elements per outer index.
	out := newUnchecked(outShape)
	inner := first.strides[ax]
	outer := len(first.data) / (first.shape[ax] * inner)
	pos := 0
	for o := 0; o < outer; o++ {
		for _, t := range tensors {
			run := t.shape[ax] * inner
			pos += copy(out.data[pos:], t.data[o*run:(o+1)*run])
		}
	}
	return out, nil
}

// Unsqueeze returns a copy of t with a dimension of size 1 inserted at dim.
// dim ranges over [-rank-1, rank].
//
// Example:
//
//	// x: [2, 3]
//	y, _ := x.Unsqueeze(1)  // Shape: [2, 1, 3]
//	z, _ := x.Unsqueeze(-1) // Shape: [2, 3, 1]
func (t *Tensor) Unsqueeze(dim int) (*Tensor, error) {
	ax, err := normalizeAxis(dim, len(t.shape)+1)
	if err != nil {
		return nil, fmt.Errorf("unsqueeze: %w", err)
	}
	shape := make(Shape, 0, len(t.shape)+1)
	shape = append(shape, t.shape[:ax]...)
	shape = append(shape, 1)
	shape = append(shape, t.shape[ax:]...)

	out := t.Clone()
	out.shape = shape
	out.strides = shape.ComputeStrides()
	return out, nil
}

// Squeeze returns a copy of t with the size-1 dimension at dim removed.
//
// Returns ErrShapeMismatch if that dimension is not 1.
func (t *Tensor) Squeeze(dim int) (*Tensor, error) {
	ax, err := normalizeAxis(dim, len(t.shape))
	if err != nil {
		return nil, fmt.Errorf("squeeze: %w", err)
	}
	if t.shape[ax] != 1 {
		return nil, fmt.Errorf("squeeze: axis %d has size %d: %w", dim, t.shape[ax], ErrShapeMismatch)
	}
	shape := make(Shape, 0, len(t.shape)-1)
	shape = append(shape, t.shape[:ax]...)
	shape = append(shape, t.shape[ax+1:]...)

	out := t.Clone()
	out.shape = shape
	out.strides = shape.ComputeStrides()
	return out, nil
}
