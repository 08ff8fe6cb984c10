// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage used by the linsolve solvers.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional mutable float64 arrays
//     with bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation backed by one flat slice
//     (offset = i*cols + j), with row-level helpers (RawRow, SwapRows,
//     ToRows) that elimination kernels use on their private working copies.
//   - A unified sentinel error set (errors.go), a numeric policy expressed as
//     functional options (options.go) and shared validators (validators.go).
//   - MatVec, the matrix-vector product used for residual checks.
//
// Ingestion from caller-owned data always copies: NewDenseFromRows never
// aliases the [][]float64 it was given, so algorithms may mutate a Dense
// freely without leaking changes back to the caller.
//
// See example_test.go for usage patterns.
package matrix
