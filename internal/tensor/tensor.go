package tensor

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Tensor is a dense N-dimensional array of float64 values stored in row-major order.
//
// A Tensor exclusively owns its storage. Every derived tensor (slice, transpose,
// reduction, matmul, elementwise result) is freshly allocated; only Reshape and the
// in-place operations reuse the receiver's storage.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{1, 2})
//	b, _ := tensor.FromSlice([]float64{1, 1}, tensor.Shape{2, 1})
//	c, _ := b.MatMul(a) // shape [2, 2], data [1 2 1 2]
type Tensor struct {
	shape   Shape
	strides []int
	data    []float64
}

// New creates a tensor of the given shape with every element set to fill.
func New(shape Shape, fill float64) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("new tensor: %w", err)
	}

	data := make([]float64, shape.NumElements())
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}

	return &Tensor{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		data:    data,
	}, nil
}

// FromSlice creates a tensor with a copy of data laid out under shape.
//
// Returns ErrShapeMismatch if len(data) differs from the number of elements of shape.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("from slice: %d values for shape %v (%d elements): %w",
			len(data), shape, shape.NumElements(), ErrShapeMismatch)
	}

	buf := make([]float64, len(data))
	copy(buf, data)

	return &Tensor{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		data:    buf,
	}, nil
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape) (*Tensor, error) {
	return New(shape, 0)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return New(shape, 1)
}

// newUnchecked allocates a zeroed tensor for a shape that is already known to be valid.
func newUnchecked(shape Shape) *Tensor {
	return &Tensor{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		data:    make([]float64, shape.NumElements()),
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Strides returns a copy of the tensor's row-major strides.
func (t *Tensor) Strides() []int {
	strides := make([]int, len(t.strides))
	copy(strides, t.strides)
	return strides
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Size returns the total number of elements.
func (t *Tensor) Size() int {
	return len(t.data)
}

// Data returns a copy of the flat row-major data.
func (t *Tensor) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		shape:   t.shape.Clone(),
		strides: t.Strides(),
		data:    t.Data(),
	}
}

// Reshape reinterprets the tensor's data under newShape without moving it.
//
// Returns ErrShapeMismatch if newShape holds a different number of elements.
func (t *Tensor) Reshape(newShape Shape) error {
	if err := newShape.Validate(); err != nil {
		return fmt.Errorf("reshape: %w", err)
	}
	if newShape.NumElements() != len(t.data) {
		return fmt.Errorf("reshape %v (%d elements) to %v (%d elements): %w",
			t.shape, len(t.data), newShape, newShape.NumElements(), ErrShapeMismatch)
	}

	t.shape = newShape.Clone()
	t.strides = newShape.ComputeStrides()
	return nil
}

// offset converts a multi-dimensional index into a flat offset.
func (t *Tensor) offset(indices []int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("%d indices for rank %d tensor: %w", len(indices), len(t.shape), ErrRank)
	}

	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("index %v for shape %v (axis %d): %w", indices, t.shape, i, ErrIndexOutOfRange)
		}
		off += idx * t.strides[i]
	}
	return off, nil
}

// At returns the element at the given indices.
func (t *Tensor) At(indices ...int) (float64, error) {
	off, err := t.offset(indices)
	if err != nil {
		return 0, fmt.Errorf("at: %w", err)
	}
	return t.data[off], nil
}

// Set writes value at the given indices.
func (t *Tensor) Set(value float64, indices ...int) error {
	off, err := t.offset(indices)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	t.data[off] = value
	return nil
}

// Slice copies the half-open region [start[i], end[i]) of every axis into a new tensor.
//
// Returns ErrShapeMismatch if start or end do not have one entry per axis, and
// ErrRange if any end[i] <= start[i] or end[i] > shape[i].
func (t *Tensor) Slice(start, end []int) (*Tensor, error) {
	rank := len(t.shape)
	if len(start) != rank || len(end) != rank {
		return nil, fmt.Errorf("slice: start %v and end %v for rank %d tensor: %w", start, end, rank, ErrShapeMismatch)
	}

	newShape := make(Shape, rank)
	for i := range t.shape {
		if start[i] < 0 || end[i] <= start[i] || end[i] > t.shape[i] {
			return nil, fmt.Errorf("slice: [%d, %d) on axis %d of size %d: %w", start[i], end[i], i, t.shape[i], ErrRange)
		}
		newShape[i] = end[i] - start[i]
	}

	out := newUnchecked(newShape)
	if rank == 0 {
		out.data[0] = t.data[0]
		return out, nil
	}

	// Copy one contiguous run along the last axis at a time.
	last := rank - 1
	run := newShape[last]
	idx := make([]int, rank)
	for dst := 0; dst < len(out.data); dst += run {
		src := start[last]
		for i := 0; i < last; i++ {
			src += (start[i] + idx[i]) * t.strides[i]
		}
		copy(out.data[dst:dst+run], t.data[src:src+run])
		incrementIndex(idx[:last], newShape[:last])
	}

	return out, nil
}

// incrementIndex advances a row-major multi-index; it returns false after the last position.
func incrementIndex(idx []int, shape Shape) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < shape[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}

// Equal reports whether both tensors have the same shape and identical elements.
func (t *Tensor) Equal(other *Tensor) bool {
	return t.shape.Equal(other.shape) && floats.Equal(t.data, other.data)
}

// AllClose reports whether both tensors have the same shape and every pair of
// elements differs by at most tol (absolute or relative).
func (t *Tensor) AllClose(other *Tensor, tol float64) bool {
	return t.shape.Equal(other.shape) && floats.EqualApprox(t.data, other.data, tol)
}

// String returns a human-readable representation for debugging.
func (t *Tensor) String() string {
	var sb strings.Builder
	sb.WriteString("Tensor([")
	row := len(t.data)
	if len(t.shape) > 0 {
		row = t.shape[len(t.shape)-1]
	}
	for i, v := range t.data {
		if i > 0 {
			if i%row == 0 {
				sb.WriteString("; ")
			} else {
				sb.WriteByte(' ')
			}
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	fmt.Fprintf(&sb, "], shape=%v)", []int(t.shape))
	return sb.String()
}
