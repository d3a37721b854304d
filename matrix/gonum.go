// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense copies m into a row-major gonum *mat.Dense.
// gonum has no empty matrices, so a 0×k or k×0 shape yields ErrBadShape.
// Complexity: O(r*c).
func (m *Matrix) Dense() (*mat.Dense, error) {
	if err := m.live("Dense", 0, 0); err != nil {
		return nil, err
	}
	if m.nrow == 0 || m.ncol == 0 {
		return nil, fmt.Errorf("Matrix.Dense %dx%d: %w", m.nrow, m.ncol, ErrBadShape)
	}

	d := mat.NewDense(m.nrow, m.ncol, nil)
	for j := 0; j < m.ncol; j++ {
		for i := 0; i < m.nrow; i++ {
			d.Set(i, j, m.data[m.offset(i, j)])
		}
	}

	return d, nil
}

// FromGonum copies any gonum mat.Matrix into a new column-major Matrix.
// A nil a yields nil.
// Complexity: O(r*c).
func FromGonum(a mat.Matrix, opts ...Option) *Matrix {
	if a == nil {
		return nil
	}
	r, c := a.Dims()
	m := New(r, c, opts...)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			m.data[m.offset(i, j)] = a.At(i, j)
		}
	}

	return m
}
