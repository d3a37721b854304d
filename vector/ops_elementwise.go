// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Elementwise binary operations (Add, Sub, Mul, Div, Pow) over two
//     same-length vectors.
//   - Scalar broadcast operations in both directions: "scalar op vector"
//     (…First) and "vector op scalar" (…Second).
//
// Design:
//   - Every operation allocates and returns a fresh result; operands are only
//     read. Chains like Add(Mul(a, b), c) are therefore safe, and the caller
//     owns every intermediate.
//   - Two private kernels (zip, broadcast) hold the only loops; the public
//     functions are thin wrappers choosing the scalar function.
//   - A size mismatch is detected before allocation and nothing is allocated.
//
// Determinism & Performance:
//   - Each index is computed independently and written once, so the opt-in
//     parallel path (WithParallel) produces bit-identical results.
//   - O(n) time and O(n) space for the result.

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numds/internal/diag"
	"github.com/katalvlaran/numds/internal/parallel"
)

// ---------- operation tags ----------

const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
	opPow = "Pow"
	opDot = "Dot"

	opScalarAdd       = "ScalarAdd"
	opScalarAddFirst  = "ScalarAddFirst"
	opScalarSubFirst  = "ScalarSubFirst"
	opScalarSubSecond = "ScalarSubSecond"
	opScalarMul       = "ScalarMul"
	opScalarMulFirst  = "ScalarMulFirst"
	opScalarDivFirst  = "ScalarDivFirst"
	opScalarDivSecond = "ScalarDivSecond"
	opScalarPowFirst  = "ScalarPowFirst"
	opScalarPowSecond = "ScalarPowSecond"
)

// opErrorf wraps a sentinel with the public operation name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("vector.%s: %w", op, err)
}

// binaryOperands validates the operands of a two-vector operation.
// Order: nil → released → size. A released operand is reported.
func binaryOperands(op string, v1, v2 *Vector) error {
	if v1 == nil || v2 == nil {
		return ErrNilVector
	}
	if v1.released || v2.released {
		dead := v1
		if !dead.released {
			dead = v2
		}
		dead.opts.log.Report(msgUseAfterRelease, diag.KeyOp, op)
		return ErrReleased
	}
	if v1.size != v2.size {
		return ErrSizeMismatch
	}

	return nil
}

// zip computes out[i] = f(v1[i], v2[i]) into a new vector configured like v1.
// Returns (nil, err) without allocating when the operands are incompatible.
func zip(op string, v1, v2 *Vector, f func(a, b float64) float64) (*Vector, error) {
	if err := binaryOperands(op, v1, v2); err != nil {
		return nil, opErrorf(op, err)
	}

	out := v1.derive(v1.size)
	a, b, dst := v1.data, v2.data, out.data
	parallel.For(len(dst), v1.opts.loopWorkers(len(dst)), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = f(a[i], b[i])
		}
	})

	return out, nil
}

// broadcast computes out[i] = f(v[i]) into a new vector configured like v.
// A nil v yields nil; a released v is reported and also yields nil.
func broadcast(op string, v *Vector, f func(x float64) float64) *Vector {
	if v == nil {
		return nil
	}
	if v.released {
		v.opts.log.Report(msgUseAfterRelease, diag.KeyOp, op)
		return nil
	}

	out := v.derive(v.size)
	src, dst := v.data, out.data
	parallel.For(len(dst), v.opts.loopWorkers(len(dst)), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = f(src[i])
		}
	})

	return out
}

// ---------- binary elementwise ----------

// Add returns v1[i] + v2[i].
// Errors: ErrSizeMismatch (no allocation), ErrNilVector, ErrReleased.
// Complexity: O(n).
func Add(v1, v2 *Vector) (*Vector, error) {
	return zip(opAdd, v1, v2, func(a, b float64) float64 { return a + b })
}

// Sub returns v1[i] - v2[i].
// Errors: as Add.
func Sub(v1, v2 *Vector) (*Vector, error) {
	return zip(opSub, v1, v2, func(a, b float64) float64 { return a - b })
}

// Mul returns the Hadamard product v1[i] * v2[i].
// Errors: as Add.
func Mul(v1, v2 *Vector) (*Vector, error) {
	return zip(opMul, v1, v2, func(a, b float64) float64 { return a * b })
}

// Div returns v1[i] / v2[i] with IEEE-754 semantics: x/0 is ±Inf, 0/0 is NaN.
// Division by zero is never an error.
func Div(v1, v2 *Vector) (*Vector, error) {
	return zip(opDiv, v1, v2, func(a, b float64) float64 { return a / b })
}

// Pow returns v1[i] ** v2[i] (math.Pow special cases apply).
func Pow(v1, v2 *Vector) (*Vector, error) {
	return zip(opPow, v1, v2, math.Pow)
}

// ---------- scalar broadcast ----------

// ScalarAdd returns v[i] + s. Addition commutes, so this serves both
// directions; ScalarAddFirst and ScalarAddSecond are provided for symmetry.
func ScalarAdd(v *Vector, s float64) *Vector {
	return broadcast(opScalarAdd, v, func(x float64) float64 { return x + s })
}

// ScalarAddFirst returns s + v[i].
func ScalarAddFirst(s float64, v *Vector) *Vector {
	return broadcast(opScalarAddFirst, v, func(x float64) float64 { return s + x })
}

// ScalarAddSecond returns v[i] + s.
func ScalarAddSecond(v *Vector, s float64) *Vector { return ScalarAdd(v, s) }

// ScalarSubFirst returns s - v[i] (scalar is the left operand).
//
// Example: ScalarSubFirst(10, [1 2 3]) = [9 8 7].
func ScalarSubFirst(s float64, v *Vector) *Vector {
	return broadcast(opScalarSubFirst, v, func(x float64) float64 { return s - x })
}

// ScalarSubSecond returns v[i] - s (scalar is the right operand).
//
// Example: ScalarSubSecond([1 2 3], 10) = [-9 -8 -7].
func ScalarSubSecond(v *Vector, s float64) *Vector {
	return broadcast(opScalarSubSecond, v, func(x float64) float64 { return x - s })
}

// ScalarMul returns v[i] * s.
func ScalarMul(v *Vector, s float64) *Vector {
	return broadcast(opScalarMul, v, func(x float64) float64 { return x * s })
}

// ScalarMulFirst returns s * v[i].
func ScalarMulFirst(s float64, v *Vector) *Vector {
	return broadcast(opScalarMulFirst, v, func(x float64) float64 { return s * x })
}

// ScalarMulSecond returns v[i] * s.
func ScalarMulSecond(v *Vector, s float64) *Vector { return ScalarMul(v, s) }

// ScalarDivFirst returns s / v[i].
func ScalarDivFirst(s float64, v *Vector) *Vector {
	return broadcast(opScalarDivFirst, v, func(x float64) float64 { return s / x })
}

// ScalarDivSecond returns v[i] / s.
func ScalarDivSecond(v *Vector, s float64) *Vector {
	return broadcast(opScalarDivSecond, v, func(x float64) float64 { return x / s })
}

// ScalarPowFirst returns s ** v[i].
func ScalarPowFirst(s float64, v *Vector) *Vector {
	return broadcast(opScalarPowFirst, v, func(x float64) float64 { return math.Pow(s, x) })
}

// ScalarPowSecond returns v[i] ** s.
func ScalarPowSecond(v *Vector, s float64) *Vector {
	return broadcast(opScalarPowSecond, v, func(x float64) float64 { return math.Pow(x, s) })
}
