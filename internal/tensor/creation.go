package tensor

import (
	"fmt"
	"math"

	"github.com/born-ml/grad/internal/random"
)

// Full creates a tensor filled with a specific value. It is New under the
// name the other constructors follow.
//
// Example:
//
//	t, _ := tensor.Full(Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) (*Tensor, error) {
	return New(shape, value)
}

// Rand creates a tensor with values drawn uniformly from [low, high).
func Rand(src *random.Source, shape Shape, low, high float64) (*Tensor, error) {
	t, err := New(shape, 0)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = src.Uniform(low, high)
	}
	return t, nil
}

// Randn creates a tensor with values from a standard normal distribution.
func Randn(src *random.Source, shape Shape) (*Tensor, error) {
	t, err := New(shape, 0)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = src.Normal(0, 1)
	}
	return t, nil
}

// Arange creates a 1D tensor with values start, start+1, ... below end.
//
// Returns ErrRange if end <= start.
//
// Example:
//
//	t, _ := tensor.Arange(0, 10) // [0, 1, 2, ..., 9]
func Arange(start, end float64) (*Tensor, error) {
	n := int(math.Ceil(end - start))
	if n <= 0 {
		return nil, fmt.Errorf("arange: end %g must be greater than start %g: %w", end, start, ErrRange)
	}
	t := newUnchecked(Shape{n})
	for i := range t.data {
		t.data[i] = start + float64(i)
	}
	return t, nil
}

// Eye creates an n × n identity matrix.
func Eye(n int) (*Tensor, error) {
	t, err := New(Shape{n, n}, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t, nil
}
