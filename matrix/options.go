// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy applied when
// caller data is ingested into a Dense. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation.
// When enabled, NaN and ±Inf are rejected by NewDenseFromRows and by Set on
// the resulting matrix. This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation.
//
// Notes:
//   - Affects newly created matrices only; existing matrices keep their policy.
//   - Use when a downstream kernel has its own policy for non-finite input
//     (e.g. a solver that reports a NaN pivot as singular).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ValidateNaNInf reports whether the resolved options reject NaN/±Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewMatrixOptions resolves opts on top of the package defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped so callers can build option lists conditionally.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
