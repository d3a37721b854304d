// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/numds/vector"
)

// Row returns row as a new Vector of length Cols().
// MAIN DESCRIPTION:
//   - Materialize m[row, 0..ncol) into an independently owned Vector.
//
// Implementation:
//   - Stage 1: bounds-check row (soft: report, return nil).
//   - Stage 2: allocate the vector with the matrix's vector options.
//   - Stage 3: copy element by element through the column-major offset.
//
// Behavior highlights:
//   - The result never aliases the matrix buffer; the caller owns it.
//
// Errors:
//   - ErrOutOfRange, ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Matrix) Row(row int) (*vector.Vector, error) {
	if err := m.live(ctxRow, row, 0); err != nil {
		return nil, err
	}
	if err := m.checkRow(ctxRow, msgRowOp, row, 0); err != nil {
		return nil, err
	}

	v := vector.New(m.ncol, m.opts.vecOpts...)
	for j := 0; j < m.ncol; j++ {
		_ = v.Set(j, m.data[m.offset(row, j)]) // j < ncol == v.Size()
	}

	return v, nil
}

// Col returns col as a new Vector of length Rows(). Symmetric with Row.
// Complexity: O(r).
func (m *Matrix) Col(col int) (*vector.Vector, error) {
	if err := m.live(ctxCol, 0, col); err != nil {
		return nil, err
	}
	if err := m.checkCol(ctxCol, msgColOp, 0, col); err != nil {
		return nil, err
	}

	v := vector.New(m.nrow, m.opts.vecOpts...)
	base := m.nrow * col // a column is contiguous in column-major storage
	for i := 0; i < m.nrow; i++ {
		_ = v.Set(i, m.data[base+i])
	}

	return v, nil
}
