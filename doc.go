// Package numds is a small numeric toolkit: a dense float64 Vector and a
// dense, column-major float64 Matrix.
//
// What's inside:
//
//	vector/ — fixed-length Vector: elementwise Add/Sub/Mul/Div/Pow, scalar
//	          broadcasting in both directions, Dot, Magnitude, exact Equal
//	matrix/ — fixed-shape column-major Matrix with soft bounds checks and
//	          Row/Col extraction into independent Vectors
//	format/ — Utoa, the integer-to-decimal helper used in diagnostics
//
// Why this shape:
//
//   - Explicit ownership – every operation returns a fresh result; Release ends
//     an instance's life
//   - Two error tiers – a Vector index violation consumes the vector; every
//     other failure is soft and leaves its inputs valid
//   - Interop – both types convert to and from gonum/mat
//   - Opt-in data-parallel loops that never change results
//
// Not included: sparse storage, decompositions, matrix-matrix products and
// serialization formats.
//
//	go get github.com/katalvlaran/numds
package numds
