// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numds/matrix"
)

func TestDense_RoundTrip(t *testing.T) {
	m := NewFilled(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	d, err := m.Dense()
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.Equal(t, 6.0, d.At(1, 2))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, d.RawMatrix().Data, "gonum is row-major")

	back := matrix.FromGonum(d)
	assert.Equal(t, m.Data(), back.Data())
}

func TestFromGonum_Transpose(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m := matrix.FromGonum(src.T())
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 6.0, MustGet(t, m, 2, 1))
}

func TestFromGonum_Nil(t *testing.T) {
	assert.NotPanics(t, func() { assert.Nil(t, matrix.FromGonum(nil)) })
}

func TestDense_Errors(t *testing.T) {
	_, err := matrix.New(0, 3).Dense()
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m := matrix.New(1, 1)
	m.Release()
	_, err = m.Dense()
	assert.ErrorIs(t, err, matrix.ErrReleased)
}
