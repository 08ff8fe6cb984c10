package gaussjordan_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linsolve/gaussjordan"
)

var sinkX []float64

// BenchmarkSolve measures the O(n³) elimination on random dense systems.
func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{10, 50, 200} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, rhs := randomSystem(42, n, 100)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := gaussjordan.Solve(a, rhs)
				if err != nil {
					b.Fatalf("Solve failed: %v", err)
				}
				sinkX = x
			}
		})
	}
}
