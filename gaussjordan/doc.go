// Package gaussjordan solves dense square linear systems A·x = b by
// Gauss–Jordan elimination with partial pivoting.
//
// 🚀 What is Gauss–Jordan elimination?
//
//	The augmented matrix [A | b] is reduced column by column until the
//	coefficient block is the identity. Unlike plain Gaussian elimination,
//	every pivot column is cleared both below AND above the pivot, so the
//	last column of the reduced matrix IS the solution: no back-substitution.
//
// ✨ Key features:
//   - partial pivoting: the largest |a[row][col]| among the remaining rows is
//     chosen as pivot (first row wins on ties) to limit round-off growth
//   - explicit tolerance (DefaultTolerance = 1e-12): a pivot below it means
//     the system has no unique solution (ErrSingularSystem)
//   - closed error taxonomy: every failure is an *Error whose Kind is either
//     KindDimensionMismatch or KindSingularSystem, with structured context
//   - caller data is never mutated; each call owns its working copy
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsolve/gaussjordan"
//
//	x, err := gaussjordan.Solve(
//	    [][]float64{{2, 1}, {1, 3}},
//	    []float64{3, 5},
//	)
//	if errors.Is(err, gaussjordan.ErrSingularSystem) {
//	    // no unique solution
//	}
//
// A *Solver built with New is immutable and safe for concurrent use.
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) (the n×(n+1) augmented matrix)
package gaussjordan
