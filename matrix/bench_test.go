// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numds/matrix"
	"github.com/katalvlaran/numds/vector"
)

var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkV *vector.Vector
	sinkF float64
)

func benchMatrix(n int, seed int64) *matrix.Matrix {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()
	}
	m, _ := matrix.FromColumns(n, n, data)

	return m
}

func BenchmarkRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchMatrix(n, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.Row(i % n)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkCol(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchMatrix(n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.Col(i % n)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	m := benchMatrix(256, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, err := m.Get(i%256, (i/256)%256)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = x
	}
}
