package tensor

import (
	"fmt"
	"strings"

	"github.com/born-ml/grad/internal/random"
)

// Float is the constraint for Matrix element types.
type Float interface {
	~float32 | ~float64
}

// Matrix is a dense rows × cols matrix whose entries are vectors of Elems
// components (Elems == 1 for an ordinary matrix).
//
// Component e of entry (r, c) is stored at e + c*Elems + r*Cols*Elems.
type Matrix[T Float] struct {
	rows, cols, elems int
	data              []T
}

// NewMatrix creates a rows × cols matrix with elems components per entry, all set to fill.
func NewMatrix[T Float](fill T, rows, cols, elems int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 || elems <= 0 {
		return nil, fmt.Errorf("new matrix: dimensions %dx%dx%d must be > 0: %w", rows, cols, elems, ErrShapeMismatch)
	}
	m := newMatrix[T](rows, cols, elems)
	if fill != 0 {
		for i := range m.data {
			m.data[i] = fill
		}
	}
	return m, nil
}

// MatrixFromRows creates a matrix with one component per entry from row literals.
func MatrixFromRows[T Float](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix from rows: empty input: %w", ErrShapeMismatch)
	}
	cols := len(rows[0])
	m := newMatrix[T](len(rows), cols, 1)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix from rows: row %d has %d columns, want %d: %w", i, len(row), cols, ErrShapeMismatch)
		}
		copy(m.data[i*cols:], row)
	}
	return m, nil
}

// RandomMatrix creates a matrix with components drawn uniformly from [low, high).
func RandomMatrix[T Float](src *random.Source, rows, cols, elems int, low, high float64) (*Matrix[T], error) {
	m, err := NewMatrix[T](0, rows, cols, elems)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = T(src.Uniform(low, high))
	}
	return m, nil
}

// NormalMatrix creates a single-component matrix with entries drawn from N(mu, sigma²).
func NormalMatrix[T Float](src *random.Source, rows, cols int, mu, sigma float64) (*Matrix[T], error) {
	m, err := NewMatrix[T](0, rows, cols, 1)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = T(src.Normal(mu, sigma))
	}
	return m, nil
}

func newMatrix[T Float](rows, cols, elems int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, elems: elems, data: make([]T, rows*cols*elems)}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Elems returns the number of components per entry.
func (m *Matrix[T]) Elems() int { return m.elems }

// Len returns the total number of stored components.
func (m *Matrix[T]) Len() int { return len(m.data) }

// IsVector reports whether the matrix has a single row or a single column.
func (m *Matrix[T]) IsVector() bool { return m.rows == 1 || m.cols == 1 }

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := newMatrix[T](m.rows, m.cols, m.elems)
	copy(out.data, m.data)
	return out
}

func (m *Matrix[T]) index(r, c, e int) int {
	return e + c*m.elems + r*m.cols*m.elems
}

func (m *Matrix[T]) checkIndex(r, c, e int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols || e < 0 || e >= m.elems {
		return fmt.Errorf("(%d, %d, %d) in %dx%dx%d matrix: %w", r, c, e, m.rows, m.cols, m.elems, ErrIndexOutOfRange)
	}
	return nil
}

// At returns component e of entry (r, c).
func (m *Matrix[T]) At(r, c, e int) (T, error) {
	if err := m.checkIndex(r, c, e); err != nil {
		return 0, fmt.Errorf("at: %w", err)
	}
	return m.data[m.index(r, c, e)], nil
}

// Set writes component e of entry (r, c).
func (m *Matrix[T]) Set(r, c, e int, v T) error {
	if err := m.checkIndex(r, c, e); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	m.data[m.index(r, c, e)] = v
	return nil
}

func (m *Matrix[T]) sameShape(other *Matrix[T]) bool {
	return m.rows == other.rows && m.cols == other.cols && m.elems == other.elems
}

func (m *Matrix[T]) requireSameShape(other *Matrix[T], op string) error {
	if !m.sameShape(other) {
		return fmt.Errorf("%s: %dx%dx%d vs %dx%dx%d: %w",
			op, m.rows, m.cols, m.elems, other.rows, other.cols, other.elems, ErrShapeMismatch)
	}
	return nil
}

// Equal reports whether every component equals its counterpart.
func (m *Matrix[T]) Equal(other *Matrix[T]) (bool, error) {
	if err := m.requireSameShape(other, "equal"); err != nil {
		return false, err
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false, nil
		}
	}
	return true, nil
}

// Less reports whether no component of m exceeds the corresponding component of other.
//
// This is a non-strict elementwise partial order, not a lexicographic one:
// equal matrices are Less (and Greater) than each other, and two matrices may be
// neither.
func (m *Matrix[T]) Less(other *Matrix[T]) (bool, error) {
	if err := m.requireSameShape(other, "less"); err != nil {
		return false, err
	}
	for i, v := range m.data {
		if v > other.data[i] {
			return false, nil
		}
	}
	return true, nil
}

// Greater reports whether no component of m is below the corresponding component of other.
// See Less for the ordering semantics.
func (m *Matrix[T]) Greater(other *Matrix[T]) (bool, error) {
	if err := m.requireSameShape(other, "greater"); err != nil {
		return false, err
	}
	for i, v := range m.data {
		if v < other.data[i] {
			return false, nil
		}
	}
	return true, nil
}

// String renders the matrix row by row.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for r := 0; r < m.rows; r++ {
		sb.WriteByte('\t')
		for c := 0; c < m.cols; c++ {
			if m.elems > 1 {
				sb.WriteString("( ")
			}
			for e := 0; e < m.elems; e++ {
				fmt.Fprintf(&sb, "%v", m.data[m.index(r, c, e)])
				if e < m.elems-1 {
					sb.WriteString(", ")
				}
			}
			if m.elems > 1 {
				sb.WriteString(" )")
			}
			if c < m.cols-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("]")
	return sb.String()
}
