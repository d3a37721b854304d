// SPDX-License-Identifier: MIT

// Package matrix provides a dense, fixed-shape float64 Matrix stored in
// column-major order.
//
// What & Why:
//
//	Element (row, col) lives at offset row + nrow*col of a single owned
//	buffer. Row and Col materialize a row or a column as a brand-new
//	vector.Vector that never aliases the matrix storage, so the vector package
//	supplies all arithmetic on the extracted data.
//
// Errors:
//
//	Every bounds violation is soft. Get reports "Row out of size, invalid data"
//	(or the Column variant) to the diagnostic channel and returns 0 with
//	ErrOutOfRange; Set reports and writes nothing; Row/Col report and return
//	nil. The matrix stays fully usable afterwards. This differs on purpose from
//	vector.Vector, whose Get/Set release the vector on an index violation.
//
// Complexity:
//
//	Rows/Cols/Get/Set run in O(1); Row is O(ncol); Col is O(nrow).
package matrix
