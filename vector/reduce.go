// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"math"

	"github.com/katalvlaran/numds/internal/diag"
)

// Magnitude returns the Euclidean norm sqrt(Σ v[i]²).
// The sum is accumulated sequentially in index order; an empty, nil or
// released vector has magnitude 0.
// Complexity: O(n).
func (v *Vector) Magnitude() float64 {
	if v == nil {
		return 0
	}

	var sum float64
	for _, x := range v.data {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Equal reports structural equality: same size and every element == (no
// tolerance, so NaN never equals NaN). Sizes are compared first.
// A nil or released operand is never equal to anything.
// Complexity: O(n).
func Equal(v1, v2 *Vector) bool {
	if v1 == nil || v2 == nil || v1.released || v2.released {
		return false
	}
	if v1.size != v2.size {
		return false
	}
	for i, x := range v1.data {
		if x != v2.data[i] {
			return false
		}
	}

	return true
}

// Dot returns Σ v1[i]*v2[i].
// MAIN DESCRIPTION:
//   - Inner product of two same-length vectors.
//
// Behavior highlights:
//   - A size mismatch is a soft failure: it is reported to the diagnostic
//     channel and 0 is returned together with ErrSizeMismatch. Neither
//     operand is released or modified.
//   - Products are accumulated left to right in index order, so rounding
//     matches a plain loop.
//
// Errors:
//   - ErrSizeMismatch, ErrNilVector, ErrReleased (wrapped with "vector.Dot").
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(v1, v2 *Vector) (float64, error) {
	if err := binaryOperands(opDot, v1, v2); err != nil {
		if errors.Is(err, ErrSizeMismatch) {
			v1.opts.log.Report(msgDotMismatch, diag.KeyOp, opDot, diag.KeySize, v1.size, "other", v2.size)
		}
		return 0, opErrorf(opDot, err)
	}

	var sum float64
	for i, x := range v1.data {
		sum += x * v2.data[i]
	}

	return sum, nil
}
