// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numds/vector"
)

// ExampleAdd shows a chained expression and who owns the intermediates.
func ExampleAdd() {
	a := vector.FromSlice([]float64{1, 2, 3})
	b := vector.FromSlice([]float64{4, 5, 6})

	prod, _ := vector.Mul(a, b)
	defer prod.Release()

	sum, _ := vector.Add(prod, a)
	fmt.Println(sum)

	_, err := vector.Add(a, vector.New(2))
	fmt.Println(errors.Is(err, vector.ErrSizeMismatch))

	// Output:
	// [5, 12, 21]
	// true
}

// ExampleScalarSubFirst contrasts the two scalar directions.
func ExampleScalarSubFirst() {
	v := vector.FromSlice([]float64{1, 2, 3})

	fmt.Println(vector.ScalarSubFirst(10, v))
	fmt.Println(vector.ScalarSubSecond(v, 10))

	// Output:
	// [9, 8, 7]
	// [-9, -8, -7]
}

// ExampleDot computes an inner product and a norm.
func ExampleDot() {
	a := vector.FromSlice([]float64{1, 2, 3})
	b := vector.FromSlice([]float64{4, 5, 6})

	d, _ := vector.Dot(a, b)
	fmt.Println(d)
	fmt.Println(vector.FromSlice([]float64{3, 4}).Magnitude())

	// Output:
	// 32
	// 5
}
