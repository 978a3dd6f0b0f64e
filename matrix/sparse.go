// SPDX-License-Identifier: MIT
// Package: matrix
//
// CSR is a compressed-sparse-row matrix used for the normalized adjacency Â.
//
// Contract:
//   - Built from COO triplets (row, col, value); duplicates are summed in
//     input order, so construction is deterministic.
//   - Columns inside each row are sorted ascending.
//   - Immutable after construction.

package matrix

import "sort"

// CSR stores a rows×cols sparse matrix in compressed sparse row form.
type CSR struct {
	rows, cols int
	indptr     []int     // len rows+1; row i spans indices[indptr[i]:indptr[i+1]]
	indices    []int     // column of each stored value
	data       []float64 // stored values
}

// NewCSR builds a CSR from COO triplets.
// Stage 1 (Validate): shape > 0, equal slice lengths, indices in range.
// Stage 2 (Prepare): stable sort of entries by (row, col).
// Stage 3 (Execute): merge duplicates and fill indptr.
// Complexity: O(nnz log nnz) time, O(nnz) memory.
func NewCSR(rows, cols int, rowIdx, colIdx []int, vals []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewCSR", ErrInvalidDimensions)
	}
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(vals) {
		return nil, matrixErrorf("NewCSR", ErrDataLength)
	}
	for k := range rowIdx {
		if rowIdx[k] < 0 || rowIdx[k] >= rows || colIdx[k] < 0 || colIdx[k] >= cols {
			return nil, matrixErrorf("NewCSR", ErrOutOfRange)
		}
	}

	order := make([]int, len(rowIdx))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if rowIdx[ka] != rowIdx[kb] {
			return rowIdx[ka] < rowIdx[kb]
		}
		return colIdx[ka] < colIdx[kb]
	})

	m := &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, len(order)),
		data:    make([]float64, 0, len(order)),
	}
	prevRow, prevCol := -1, -1
	for _, k := range order {
		r, c := rowIdx[k], colIdx[k]
		if r == prevRow && c == prevCol {
			m.data[len(m.data)-1] += vals[k]
			continue
		}
		m.indices = append(m.indices, c)
		m.data = append(m.data, vals[k])
		m.indptr[r+1]++
		prevRow, prevCol = r, c
	}
	for i := 0; i < rows; i++ {
		m.indptr[i+1] += m.indptr[i]
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// At returns the value at (row, col); absent entries are 0.
// Complexity: O(log nnz(row)).
func (m *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, matrixErrorf("CSR.At", ErrOutOfRange)
	}
	lo, hi := m.indptr[row], m.indptr[row+1]
	cols := m.indices[lo:hi]
	k := sort.SearchInts(cols, col)
	if k < len(cols) && cols[k] == col {
		return m.data[lo+k], nil
	}

	return 0, nil
}

// Transpose returns mᵀ as a new CSR.
// Complexity: O(nnz + rows + cols).
func (m *CSR) Transpose() *CSR {
	t := &CSR{
		rows:    m.cols,
		cols:    m.rows,
		indptr:  make([]int, m.cols+1),
		indices: make([]int, len(m.indices)),
		data:    make([]float64, len(m.data)),
	}
	for _, c := range m.indices {
		t.indptr[c+1]++
	}
	for i := 0; i < t.rows; i++ {
		t.indptr[i+1] += t.indptr[i]
	}
	next := make([]int, t.rows)
	copy(next, t.indptr[:t.rows])
	// Visiting source rows in ascending order keeps target columns sorted.
	for r := 0; r < m.rows; r++ {
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			c := m.indices[k]
			pos := next[c]
			t.indices[pos] = r
			t.data[pos] = m.data[k]
			next[c]++
		}
	}

	return t
}

// SpMM returns m·b for a dense right operand.
// Complexity: O(nnz * b.Cols()).
func (m *CSR) SpMM(b *Dense) (*Dense, error) {
	if b == nil {
		return nil, matrixErrorf("SpMM", ErrNilMatrix)
	}
	if m.cols != b.r {
		return nil, matrixErrorf("SpMM", ErrDimensionMismatch)
	}
	out, err := NewDense(m.rows, b.c)
	if err != nil {
		return nil, matrixErrorf("SpMM", err)
	}

	c := b.c
	if err = forRowBlocks(m.rows, len(m.data)*c, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			dst := out.data[i*c : (i+1)*c]
			for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
				v := m.data[k]
				src := b.data[m.indices[k]*c : (m.indices[k]+1)*c]
				for j := range dst {
					dst[j] += v * src[j]
				}
			}
		}

		return nil
	}); err != nil {
		return nil, matrixErrorf("SpMM", err)
	}

	return out, nil
}

// ToDense expands m into a Dense matrix. Intended for tests and small graphs.
// Complexity: O(rows*cols + nnz).
func (m *CSR) ToDense() *Dense {
	out := &Dense{r: m.rows, c: m.cols, data: make([]float64, m.rows*m.cols)}
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			out.data[i*m.cols+m.indices[k]] = m.data[k]
		}
	}

	return out
}
