package tensor

import "fmt"

// Transpose returns the cols × rows matrix with entry (c, r) = m(r, c).
// Entry components keep their order.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := newMatrix[T](m.cols, m.rows, m.elems)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			for e := 0; e < m.elems; e++ {
				out.data[out.index(c, r, e)] = m.data[m.index(r, c, e)]
			}
		}
	}
	return out
}

// Determinant computes the determinant of a square single-component matrix.
// 2×2 and 3×3 use closed forms; larger matrices use cofactor expansion along the first row.
//
// Returns ErrRank for multi-component matrices and ErrShapeMismatch for non-square ones.
func (m *Matrix[T]) Determinant() (T, error) {
	if m.elems != 1 {
		return 0, fmt.Errorf("determinant: %d components per entry: %w", m.elems, ErrRank)
	}
	if m.rows != m.cols {
		return 0, fmt.Errorf("determinant: %dx%d matrix is not square: %w", m.rows, m.cols, ErrShapeMismatch)
	}
	return m.det(), nil
}

func (m *Matrix[T]) det() T {
	d := m.data
	switch m.rows {
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[1]*d[2]
	case 3:
		return d[0]*d[4]*d[8] + d[1]*d[5]*d[6] + d[2]*d[3]*d[7] -
			d[2]*d[4]*d[6] - d[1]*d[3]*d[8] - d[0]*d[5]*d[7]
	}

	n := m.rows
	sub := newMatrix[T](n-1, n-1, 1)
	var total T
	sign := T(1)
	for c := 0; c < n; c++ {
		k := 0
		for i := 1; i < n; i++ {
			for j := 0; j < n; j++ {
				if j == c {
					continue
				}
				sub.data[k] = d[i*n+j]
				k++
			}
		}
		total += sign * d[c] * sub.det()
		sign = -sign
	}
	return total
}

// HConcat returns [m | other]: the columns of other appended to those of m.
func (m *Matrix[T]) HConcat(other *Matrix[T]) (*Matrix[T], error) {
	if m.rows != other.rows || m.elems != other.elems {
		return nil, fmt.Errorf("hconcat: %dx%dx%d with %dx%dx%d: %w",
			m.rows, m.cols, m.elems, other.rows, other.cols, other.elems, ErrShapeMismatch)
	}
	out := newMatrix[T](m.rows, m.cols+other.cols, m.elems)
	left := m.cols * m.elems
	right := other.cols * other.elems
	for r := 0; r < m.rows; r++ {
		base := r * (left + right)
		copy(out.data[base:base+left], m.data[r*left:(r+1)*left])
		copy(out.data[base+left:base+left+right], other.data[r*right:(r+1)*right])
	}
	return out, nil
}

// Kronecker returns the Kronecker product m ⊗ other, applied per component.
func (m *Matrix[T]) Kronecker(other *Matrix[T]) (*Matrix[T], error) {
	if m.elems != other.elems {
		return nil, fmt.Errorf("kronecker: %d vs %d components: %w", m.elems, other.elems, ErrShapeMismatch)
	}
	out := newMatrix[T](m.rows*other.rows, m.cols*other.cols, m.elems)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			for p := 0; p < other.rows; p++ {
				for q := 0; q < other.cols; q++ {
					for e := 0; e < m.elems; e++ {
						out.data[out.index(i*other.rows+p, j*other.cols+q, e)] =
							m.data[m.index(i, j, e)] * other.data[other.index(p, q, e)]
					}
				}
			}
		}
	}
	return out, nil
}

// Hadamard returns the elementwise product of two equally shaped matrices.
func (m *Matrix[T]) Hadamard(other *Matrix[T]) (*Matrix[T], error) {
	if err := m.requireSameShape(other, "hadamard"); err != nil {
		return nil, err
	}
	out := m.Clone()
	for i, v := range other.data {
		out.data[i] *= v
	}
	return out, nil
}

// Row returns row r as a 1 × cols matrix.
func (m *Matrix[T]) Row(r int) (*Matrix[T], error) {
	if r < 0 || r >= m.rows {
		return nil, fmt.Errorf("row: row %d of %d: %w", r, m.rows, ErrIndexOutOfRange)
	}
	return m.Slice(r, r, 0, m.cols-1)
}

// Col returns column c as a rows × 1 matrix.
func (m *Matrix[T]) Col(c int) (*Matrix[T], error) {
	if c < 0 || c >= m.cols {
		return nil, fmt.Errorf("col: column %d of %d: %w", c, m.cols, ErrIndexOutOfRange)
	}
	return m.Slice(0, m.rows-1, c, c)
}

// RowsByIndex gathers the listed rows, in order, into a len(indices) × cols matrix.
// Indices may repeat.
func (m *Matrix[T]) RowsByIndex(indices []int) (*Matrix[T], error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("rows by index: no indices: %w", ErrShapeMismatch)
	}
	out := newMatrix[T](len(indices), m.cols, m.elems)
	width := m.cols * m.elems
	for i, r := range indices {
		if r < 0 || r >= m.rows {
			return nil, fmt.Errorf("rows by index: row %d of %d: %w", r, m.rows, ErrIndexOutOfRange)
		}
		copy(out.data[i*width:(i+1)*width], m.data[r*width:(r+1)*width])
	}
	return out, nil
}

// Components extracts component e of every entry as a single-component matrix.
func (m *Matrix[T]) Components(e int) (*Matrix[T], error) {
	if e < 0 || e >= m.elems {
		return nil, fmt.Errorf("components: component %d of %d: %w", e, m.elems, ErrIndexOutOfRange)
	}
	out := newMatrix[T](m.rows, m.cols, 1)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data[r*m.cols+c] = m.data[m.index(r, c, e)]
		}
	}
	return out, nil
}

// SetSlice overwrites the block whose top-left entry is (r0, c0) with src.
// The block must fit inside m.
func (m *Matrix[T]) SetSlice(r0, c0 int, src *Matrix[T]) error {
	if src.elems != m.elems {
		return fmt.Errorf("set slice: %d vs %d components: %w", src.elems, m.elems, ErrShapeMismatch)
	}
	if r0 < 0 || c0 < 0 || r0+src.rows > m.rows || c0+src.cols > m.cols {
		return fmt.Errorf("set slice: %dx%d block at (%d, %d) of %dx%d matrix: %w",
			src.rows, src.cols, r0, c0, m.rows, m.cols, ErrRange)
	}
	width := src.cols * m.elems
	for i := 0; i < src.rows; i++ {
		dst := m.index(r0+i, c0, 0)
		copy(m.data[dst:dst+width], src.data[i*width:(i+1)*width])
	}
	return nil
}

// Slice copies rows r0..r1 and columns c0..c1, both bounds inclusive.
func (m *Matrix[T]) Slice(r0, r1, c0, c1 int) (*Matrix[T], error) {
	if r0 < 0 || r1 < r0 || r1 >= m.rows || c0 < 0 || c1 < c0 || c1 >= m.cols {
		return nil, fmt.Errorf("slice: rows [%d, %d] cols [%d, %d] of %dx%d matrix: %w",
			r0, r1, c0, c1, m.rows, m.cols, ErrRange)
	}
	out := newMatrix[T](r1-r0+1, c1-c0+1, m.elems)
	width := out.cols * m.elems
	for i := 0; i < out.rows; i++ {
		src := m.index(r0+i, c0, 0)
		copy(out.data[i*width:(i+1)*width], m.data[src:src+width])
	}
	return out, nil
}

// vectorLen returns the length of a row or column vector and whether it is laid out as a column.
func (m *Matrix[T]) vectorLen() (n int, column bool) {
	if m.rows > m.cols {
		return m.rows, true
	}
	return m.cols, false
}

// vectorAt returns component e of element i of a row or column vector.
func (m *Matrix[T]) vectorAt(i, e int) T {
	if _, column := m.vectorLen(); column {
		return m.data[m.index(i, 0, e)]
	}
	return m.data[m.index(0, i, e)]
}

// SetRow overwrites row r with a row or column vector of length cols.
func (m *Matrix[T]) SetRow(r int, v *Matrix[T]) error {
	n, _ := v.vectorLen()
	if !v.IsVector() || n != m.cols || v.elems != m.elems {
		return fmt.Errorf("set row: vector %dx%dx%d for %d columns: %w", v.rows, v.cols, v.elems, m.cols, ErrShapeMismatch)
	}
	if r < 0 || r >= m.rows {
		return fmt.Errorf("set row: row %d of %d: %w", r, m.rows, ErrIndexOutOfRange)
	}
	for c := 0; c < m.cols; c++ {
		for e := 0; e < m.elems; e++ {
			m.data[m.index(r, c, e)] = v.vectorAt(c, e)
		}
	}
	return nil
}

// SetCol overwrites column c with a row or column vector of length rows.
func (m *Matrix[T]) SetCol(c int, v *Matrix[T]) error {
	n, _ := v.vectorLen()
	if !v.IsVector() || n != m.rows || v.elems != m.elems {
		return fmt.Errorf("set col: vector %dx%dx%d for %d rows: %w", v.rows, v.cols, v.elems, m.rows, ErrShapeMismatch)
	}
	if c < 0 || c >= m.cols {
		return fmt.Errorf("set col: column %d of %d: %w", c, m.cols, ErrIndexOutOfRange)
	}
	for r := 0; r < m.rows; r++ {
		for e := 0; e < m.elems; e++ {
			m.data[m.index(r, c, e)] = v.vectorAt(r, e)
		}
	}
	return nil
}

// Add returns m + other. When other is a row (column) vector and m is not a
// vector, other is added to every row (column) of m.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return m.combine(other, "add", func(a, b T) T { return a + b })
}

// Sub returns m - other, with the same vector broadcasting as Add.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return m.combine(other, "sub", func(a, b T) T { return a - b })
}

// Div returns the elementwise quotient m / other, with the same vector broadcasting as Add.
// Division by zero follows IEEE 754.
func (m *Matrix[T]) Div(other *Matrix[T]) (*Matrix[T], error) {
	return m.combine(other, "div", func(a, b T) T { return a / b })
}

// AddInPlace adds other into m, with the same vector broadcasting as Add.
func (m *Matrix[T]) AddInPlace(other *Matrix[T]) error {
	out, err := m.Add(other)
	if err != nil {
		return err
	}
	m.data = out.data
	return nil
}

// SubInPlace subtracts other from m, with the same vector broadcasting as Add.
func (m *Matrix[T]) SubInPlace(other *Matrix[T]) error {
	out, err := m.Sub(other)
	if err != nil {
		return err
	}
	m.data = out.data
	return nil
}

func (m *Matrix[T]) combine(other *Matrix[T], op string, f func(a, b T) T) (*Matrix[T], error) {
	if other.IsVector() && !m.IsVector() {
		n, column := other.vectorLen()
		if other.elems != m.elems || (column && n != m.rows) || (!column && n != m.cols) {
			return nil, fmt.Errorf("%s: vector %dx%dx%d against %dx%dx%d matrix: %w",
				op, other.rows, other.cols, other.elems, m.rows, m.cols, m.elems, ErrShapeMismatch)
		}
		out := newMatrix[T](m.rows, m.cols, m.elems)
		for r := 0; r < m.rows; r++ {
			for c := 0; c < m.cols; c++ {
				i := c
				if column {
					i = r
				}
				for e := 0; e < m.elems; e++ {
					out.data[out.index(r, c, e)] = f(m.data[m.index(r, c, e)], other.vectorAt(i, e))
				}
			}
		}
		return out, nil
	}

	if err := m.requireSameShape(other, op); err != nil {
		return nil, err
	}
	out := newMatrix[T](m.rows, m.cols, m.elems)
	for i := range out.data {
		out.data[i] = f(m.data[i], other.data[i])
	}
	return out, nil
}

// Scale returns k * m.
func (m *Matrix[T]) Scale(k T) *Matrix[T] {
	return m.Apply(func(v T) T { return v * k })
}

// ScaleInPlace multiplies every component of m by k.
func (m *Matrix[T]) ScaleInPlace(k T) {
	for i := range m.data {
		m.data[i] *= k
	}
}

// DivScalar returns m / k.
func (m *Matrix[T]) DivScalar(k T) *Matrix[T] {
	return m.Apply(func(v T) T { return v / k })
}

// ScalarDiv returns the matrix with entries k / m(r, c, e).
func (m *Matrix[T]) ScalarDiv(k T) *Matrix[T] {
	return m.Apply(func(v T) T { return k / v })
}

// Apply returns a matrix with f applied to every component.
func (m *Matrix[T]) Apply(f func(T) T) *Matrix[T] {
	out := newMatrix[T](m.rows, m.cols, m.elems)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// Mul returns the matrix product m @ other, computed independently per component.
//
// When the inner dimensions disagree and other is a row (column) vector while m is
// not a vector, every row (column) of m is multiplied elementwise by other instead.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if m.cols != other.rows && other.IsVector() && !m.IsVector() {
		return m.combine(other, "mul", func(a, b T) T { return a * b })
	}
	if m.cols != other.rows || m.elems != other.elems {
		return nil, fmt.Errorf("mul: %dx%dx%d @ %dx%dx%d: %w",
			m.rows, m.cols, m.elems, other.rows, other.cols, other.elems, ErrShapeMismatch)
	}
	out := newMatrix[T](m.rows, other.cols, m.elems)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			for j := 0; j < other.cols; j++ {
				for e := 0; e < m.elems; e++ {
					out.data[out.index(i, j, e)] += m.data[m.index(i, k, e)] * other.data[other.index(k, j, e)]
				}
			}
		}
	}
	return out, nil
}

// SumElements returns the sum of every stored component.
func (m *Matrix[T]) SumElements() T {
	var s T
	for _, v := range m.data {
		s += v
	}
	return s
}

// Sum reduces a single-component matrix along an axis, indexed by that axis:
// Sum(0) is a rows × 1 matrix of row sums and Sum(1) a 1 × cols matrix of column sums.
func (m *Matrix[T]) Sum(axis int) (*Matrix[T], error) {
	if m.elems != 1 {
		return nil, fmt.Errorf("sum: %d components per entry: %w", m.elems, ErrRank)
	}
	switch axis {
	case 0:
		out := newMatrix[T](m.rows, 1, 1)
		for r := 0; r < m.rows; r++ {
			for c := 0; c < m.cols; c++ {
				out.data[r] += m.data[r*m.cols+c]
			}
		}
		return out, nil
	case 1:
		out := newMatrix[T](1, m.cols, 1)
		for r := 0; r < m.rows; r++ {
			for c := 0; c < m.cols; c++ {
				out.data[c] += m.data[r*m.cols+c]
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("sum: axis %d of a matrix: %w", axis, ErrRange)
	}
}
