// SPDX-License-Identifier: MIT

package vector

import (
	"gonum.org/v1/gonum/mat"
)

// VecDense copies v into a gonum column vector for use with gonum/mat.
// gonum cannot represent zero-length vectors, so an empty v yields ErrEmpty.
// Complexity: O(n).
func (v *Vector) VecDense() (*mat.VecDense, error) {
	switch {
	case v == nil:
		return nil, ErrNilVector
	case v.released:
		return nil, ErrReleased
	case v.size == 0:
		return nil, ErrEmpty
	}

	return mat.NewVecDense(v.size, v.Data()), nil
}

// FromVecDense copies any gonum mat.Vector into a new Vector.
// Complexity: O(n).
func FromVecDense(src mat.Vector, opts ...Option) *Vector {
	n := src.Len()
	v := New(n, opts...)
	for i := 0; i < n; i++ {
		v.data[i] = src.AtVec(i)
	}

	return v
}
