// SPDX-License-Identifier: MIT
// Dense is the row-major matrix used for features, activations, weights and
// gradients. Storage is a single flat slice for cache-friendly kernels.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c Dense holding a copy of data (row-major).
// Returns ErrDataLength if len(data) != rows*cols.
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf("NewDenseFrom", ErrDataLength)
	}
	copy(m.data, data)

	return m, nil
}

// NewDenseRows builds a Dense from equal-length rows.
// Handy for fixtures: NewDenseRows([][]float64{{0, 0}, {1, 1}}).
func NewDenseRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, matrixErrorf("NewDenseRows", ErrDataLength)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Raw exposes the row-major backing slice. Writes are visible to the matrix;
// kernels in other packages use it for tight loops.
func (m *Dense) Raw() []float64 { return m.data }

// Row returns row i as a slice view into the backing storage.
// The caller must ensure 0 ≤ i < Rows().
func (m *Dense) Row(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Zero sets every element to 0 in place.
func (m *Dense) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
