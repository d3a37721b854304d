// SPDX-License-Identifier: MIT

// Package vector provides a dense, fixed-length float64 Vector.
//
// What & Why:
//
//	Vector is a small owned buffer with elementwise arithmetic (Add, Sub, Mul,
//	Div, Pow), scalar broadcasting in both directions (ScalarSubFirst computes
//	s - v[i], ScalarSubSecond computes v[i] - s, and so on), Dot, Magnitude and
//	exact Equal. Every transformation returns a new vector and never mutates
//	its operands, so expressions compose: Add(Mul(a, b), c).
//
// Ownership:
//
//	Each Vector owns its buffer. Release ends its life; the garbage collector
//	reclaims the memory, and any later access is reported as use after release.
//
// Errors come in two tiers:
//
//   - Get/Set with an index outside [0, Size()) report "Index out of range" to
//     the diagnostic channel and RELEASE the vector. The *IndexError returned
//     matches ErrConsumed: the vector must not be used again.
//   - Everything else is soft: binary ops on different sizes return
//     (nil, ErrSizeMismatch) without allocating, Dot returns (0,
//     ErrSizeMismatch) after a diagnostic, and the operands stay valid.
//
// Concurrency:
//
//	A Vector is not safe for concurrent use. WithParallel opts a vector (and
//	every result derived from it) into a data-parallel loop for elementwise
//	and scalar operations. Results are identical to sequential execution.
//
// Complexity:
//
//	Size/Get/Set/Release run in O(1); everything else is O(n).
package vector
