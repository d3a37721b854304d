// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numds/matrix"
)

// captureLogger returns a logger writing text records into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)

	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

// MustGet reads m[i,j] and fails the test on error.
func MustGet(t testing.TB, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.Get(i, j)
	require.NoError(t, err, "Get(%d,%d)", i, j)

	return v
}

// NewFilled builds a matrix from row-major values, the way tests read them.
func NewFilled(t testing.TB, rows, cols int, rowMajor []float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	require.Len(t, rowMajor, rows*cols)
	m := matrix.New(rows, cols, opts...)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, rowMajor[i*cols+j]))
		}
	}

	return m
}
