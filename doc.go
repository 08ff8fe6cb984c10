// Package linsolve is a small toolkit for solving dense square linear
// systems A·x = b exactly once, directly, with no iteration.
//
// 🚀 What is linsolve?
//
//	A Go library plus a command and an HTTP service that bring together:
//		• Dense storage: row-major matrices with checked accessors
//		• Gauss–Jordan elimination with partial pivoting
//		• Structured failures: dimension mismatch or singular system
//		• Documents: systems in JSON, YAML or TOML; solutions with residuals
//
// ✨ Why choose linsolve?
//
//   - Predictable – explicit pivot tolerance (1e-12), no hidden heuristics
//   - Honest errors – every failure says which operand or column was at fault
//   - Safe – caller slices are never modified; solvers are concurrency-safe
//
// Under the hood, everything is organized under a few packages:
//
//	matrix/       Dense storage, row kernels, validators, MatVec
//	gaussjordan/  Solve, SolveMatrix, Inverse, Residual
//	internal/     config, logging, codec, metrics, HTTP server
//	cmd/linsolve/ the command line entry point
//
// Quick ASCII example:
//
//	    [ 2  1 | 3 ]        [ 1  0 | 0.8 ]
//	    [ 1  3 | 5 ]   →    [ 0  1 | 1.4 ]
//
//	reduces the augmented matrix until the right column is x.
//
//	go install github.com/katalvlaran/linsolve/cmd/linsolve@latest
package linsolve
