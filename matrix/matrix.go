// SPDX-License-Identifier: MIT

// Package matrix - column-major storage & soft-failing accessors.
//
// Purpose:
//   - Own a zero-initialized float64 buffer laid out column by column with the
//     fixed index formula row + nrow*col.
//   - Keep every bounds violation soft: report it, return a sentinel, and
//     leave the matrix fully usable.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; Get/Set: O(1); Row: O(c); Col: O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numds/internal/diag"
)

// ---------- error context tags ----------

const (
	ctxGet = "Get"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// ---------- diagnostic messages ----------

const (
	msgRowData  = "Row out of size, invalid data"
	msgColData  = "Column out of size, invalid data"
	msgRowOp    = "Row out of size, invalid operation"
	msgColOp    = "Column out of size, invalid operation"
	msgReleased = "Use after release"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a fixed-shape, mutable, column-major matrix of float64 values.
//   - nrow, ncol are fixed at construction (zero allowed).
//   - data holds nrow*ncol elements; (row, col) lives at row + nrow*col.
//
// A Matrix never shares its buffer with a Vector it produces and is not safe
// for concurrent use without external locking.
type Matrix struct {
	nrow, ncol int       // shape
	data       []float64 // column-major storage, len == nrow*ncol
	released   bool      // set once by Release
	opts       options   // resolved configuration
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// matrixErrorf wraps err with the method name and coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates an nrow×ncol zero matrix in column-major layout.
// MAIN DESCRIPTION:
//   - Public constructor; 0×k and k×0 shapes are legal.
//
// Behavior highlights:
//   - Panics on a negative dimension, like make: that is a programmer error.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(nrow, ncol int, opts ...Option) *Matrix {
	if nrow < 0 || ncol < 0 {
		panic(panicNegativeShape)
	}

	return &Matrix{
		nrow: nrow,
		ncol: ncol,
		data: make([]float64, nrow*ncol),
		opts: gatherOptions(opts...),
	}
}

// FromColumns builds an nrow×ncol matrix from a column-major slice (copied).
// Errors: ErrBadShape when len(data) != nrow*ncol or a dimension is negative.
// Complexity: O(r*c).
func FromColumns(nrow, ncol int, data []float64, opts ...Option) (*Matrix, error) {
	if nrow < 0 || ncol < 0 || len(data) != nrow*ncol {
		return nil, fmt.Errorf("Matrix.FromColumns(%d,%d) len=%d: %w", nrow, ncol, len(data), ErrBadShape)
	}
	m := New(nrow, ncol, opts...)
	copy(m.data, data)

	return m, nil
}

// FromRows builds a matrix from row slices, e.g. [][]float64{{1, 2}, {3, 4}}.
// All rows must have the same length.
// Errors: ErrBadShape on ragged input.
// Complexity: O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	nrow := len(rows)
	ncol := 0
	if nrow > 0 {
		ncol = len(rows[0])
	}
	m := New(nrow, ncol, opts...)
	for i, r := range rows {
		if len(r) != ncol {
			return nil, fmt.Errorf("Matrix.FromRows: row %d has %d values, want %d: %w", i, len(r), ncol, ErrBadShape)
		}
		for j, x := range r {
			m.data[m.offset(i, j)] = x
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.nrow
}

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.ncol
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// offset is the column-major address of (row, col). No bounds check.
func (m *Matrix) offset(row, col int) int { return row + m.nrow*col }

// checkRow reports and returns ErrOutOfRange when row is outside [0,nrow).
func (m *Matrix) checkRow(method, msg string, row, col int) error {
	if row < 0 || row >= m.nrow {
		m.opts.log.Report(msg, diag.KeyOp, method, diag.KeyRow, row, diag.KeyRows, m.nrow)
		return matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// checkCol reports and returns ErrOutOfRange when col is outside [0,ncol).
func (m *Matrix) checkCol(method, msg string, row, col int) error {
	if col < 0 || col >= m.ncol {
		m.opts.log.Report(msg, diag.KeyOp, method, diag.KeyCol, col, diag.KeyCols, m.ncol)
		return matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// live rejects nil and released receivers.
func (m *Matrix) live(method string, row, col int) error {
	if m == nil {
		return matrixErrorf(method, row, col, ErrNilMatrix)
	}
	if m.released {
		m.opts.log.Report(msgReleased, diag.KeyOp, method)
		return matrixErrorf(method, row, col, ErrReleased)
	}

	return nil
}

// Get returns the element at (row, col).
// MAIN DESCRIPTION:
//   - Bounds-checked read; the row is checked before the column.
//
// Behavior highlights:
//   - Out of range is soft: the condition is reported, 0 is returned as a
//     sentinel together with ErrOutOfRange, and the matrix stays usable.
//
// Errors:
//   - ErrOutOfRange, ErrNilMatrix, ErrReleased (wrapped with coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) Get(row, col int) (float64, error) {
	if err := m.live(ctxGet, row, col); err != nil {
		return 0, err
	}
	if err := m.checkRow(ctxGet, msgRowData, row, col); err != nil {
		return 0, err
	}
	if err := m.checkCol(ctxGet, msgColData, row, col); err != nil {
		return 0, err
	}

	return m.data[m.offset(row, col)], nil
}

// Set stores value at (row, col). Out of range reports, returns
// ErrOutOfRange and writes nothing.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, value float64) error {
	if err := m.live(ctxSet, row, col); err != nil {
		return err
	}
	if err := m.checkRow(ctxSet, msgRowOp, row, col); err != nil {
		return err
	}
	if err := m.checkCol(ctxSet, msgColOp, row, col); err != nil {
		return err
	}
	m.data[m.offset(row, col)] = value

	return nil
}

// Release drops the buffer. Release on a nil matrix, or a second Release,
// is a no-op.
func (m *Matrix) Release() {
	if m == nil || m.released {
		return
	}
	m.data = nil
	m.nrow, m.ncol = 0, 0
	m.released = true
}

// Released reports whether Release has been called.
func (m *Matrix) Released() bool { return m != nil && m.released }

// Data returns a copy of the column-major buffer.
// Complexity: O(r*c).
func (m *Matrix) Data() []float64 {
	if m == nil {
		return nil
	}
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders one line per row, e.g. "[1, 2]\n[3, 4]\n".
// Intended for debugging; not for hot paths.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	if m.released {
		return "<released>"
	}

	var b strings.Builder
	for i := 0; i < m.nrow; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.ncol; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", m.data[m.offset(i, j)])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
