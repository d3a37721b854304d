// SPDX-License-Identifier: MIT

package vector_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numds/vector"
)

// captureLogger returns a logger writing text records into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)

	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

// mustGet reads v[i] and fails the test on error.
func mustGet(t testing.TB, v *vector.Vector, i int) float64 {
	t.Helper()
	x, err := v.Get(i)
	require.NoError(t, err, "Get(%d)", i)

	return x
}

// randVector returns a deterministic pseudo-random vector of length n.
func randVector(n int, seed int64, opts ...vector.Option) *vector.Vector {
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64()*200 - 100
	}

	return vector.FromSlice(xs, opts...)
}
