package tsp_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/littletsp/builder"
	"github.com/katalvlaran/littletsp/tsp"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{8, 12, 16} {
		m := randomCosts(b, uint64(n), n, 100, 0)
		b.Run(fmt.Sprintf("little/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := tsp.Solve(b.Context(), m, tsp.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("heldkarp/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := tsp.HeldKarp(b.Context(), m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Symmetric metric instances are the classic hard case for reduction
// bounds: both directions of each edge look equally good.
func BenchmarkSolve_Euclidean(b *testing.B) {
	for _, n := range []int{10, 14} {
		m, _, err := builder.Euclidean(n, builder.WithSeed(int64(n)))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := tsp.Solve(b.Context(), m, tsp.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSolve_Planted(b *testing.B) {
	m, _, err := builder.Planted(18, builder.WithSeed(18), builder.WithUniformWeight(0, 100))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(b.Context(), m, tsp.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
