package gaussjordan

import "go.uber.org/zap"

// DefaultTolerance is the pivot threshold: a selected pivot whose absolute
// value is below it makes the system singular (no unique solution).
const DefaultTolerance = 1e-12

// Options configures a Solver.
//
// Fields:
//   - Tolerance:   pivot threshold, finite and > 0 (default DefaultTolerance).
//   - CheckFinite: reject NaN/±Inf in A or b before elimination (default true).
//     When false, a NaN pivot is reported as a singular system.
//   - Logger:      receives Debug-level pivot traces; nil means no logging.
//
// Example:
//
//	opts := gaussjordan.DefaultOptions()
//	opts.Tolerance = 1e-10
//	s, err := gaussjordan.New(opts)
type Options struct {
	Tolerance   float64
	CheckFinite bool
	Logger      *zap.Logger
}

// DefaultOptions returns the options used by the package-level Solve functions.
func DefaultOptions() Options {
	return Options{
		Tolerance:   DefaultTolerance,
		CheckFinite: true,
	}
}
