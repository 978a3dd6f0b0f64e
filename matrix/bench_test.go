// SPDX-License-Identifier: MIT
// Benchmarks for the product kernels, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gcnreg/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256}

// sinkM defeats dead-code elimination.
var sinkM *matrix.Dense

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 1337)
			B := RandDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSpMM(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(7))
			var rows, cols []int
			var vals []float64
			for i := 0; i < n; i++ {
				for k := 0; k < 8; k++ {
					rows = append(rows, i)
					cols = append(cols, rng.Intn(n))
					vals = append(vals, rng.Float64())
				}
			}
			S, err := matrix.NewCSR(n, n, rows, cols, vals)
			if err != nil {
				b.Fatal(err)
			}
			X := RandDense(b, n, 64, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := S.SpMM(X)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
