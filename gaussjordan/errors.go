package gaussjordan

import (
	"errors"
	"fmt"
)

// Kind classifies solver failures. The set is closed.
type Kind uint8

const (
	// KindDimensionMismatch: A is not square, ranks are wrong, or len(b) != rows(A).
	KindDimensionMismatch Kind = iota + 1
	// KindSingularSystem: a pivot fell below the tolerance during elimination.
	KindSingularSystem
)

// String returns the snake_case name used in logs and wire payloads.
func (k Kind) String() string {
	switch k {
	case KindDimensionMismatch:
		return "dimension_mismatch"
	case KindSingularSystem:
		return "singular_system"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Sentinels matched by errors.Is against any *Error of the same Kind.
var (
	ErrDimensionMismatch = errors.New("gaussjordan: dimension mismatch")
	ErrSingularSystem    = errors.New("gaussjordan: singular system")
)

// ErrInvalidTolerance is returned by New for a non-finite or non-positive tolerance.
var ErrInvalidTolerance = errors.New("gaussjordan: tolerance must be finite and > 0")

// Dimension labels used in Error.Dim.
const (
	DimRows   = "rows"
	DimCols   = "cols"
	DimLength = "length"
	DimRank   = "rank"
)

// Error is the structured failure of a solve call.
//
// For KindDimensionMismatch, Operand names the offending input ("A", "A[2]",
// "b"), Dim says what was measured (rows, cols, length, rank) and
// Expected/Actual carry the two sizes.
// For KindSingularSystem, Column is the elimination column whose best pivot
// |Pivot| was below Tolerance.
type Error struct {
	Kind Kind
	Op   string

	Operand  string
	Dim      string
	Expected int
	Actual   int

	Column    int
	Pivot     float64
	Tolerance float64
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDimensionMismatch:
		return fmt.Sprintf("gaussjordan: %s: dimension mismatch: %s %s = %d, want %d",
			e.Op, e.Operand, e.Dim, e.Actual, e.Expected)
	case KindSingularSystem:
		return fmt.Sprintf("gaussjordan: %s: singular system: |pivot| = %g < %g at column %d",
			e.Op, e.Pivot, e.Tolerance, e.Column)
	default:
		return fmt.Sprintf("gaussjordan: %s: %s", e.Op, e.Kind)
	}
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrDimensionMismatch:
		return e.Kind == KindDimensionMismatch
	case ErrSingularSystem:
		return e.Kind == KindSingularSystem
	}

	return false
}

// DimensionError builds a KindDimensionMismatch error.
func DimensionError(op, operand, dim string, expected, actual int) *Error {
	return &Error{
		Kind:     KindDimensionMismatch,
		Op:       op,
		Operand:  operand,
		Dim:      dim,
		Expected: expected,
		Actual:   actual,
	}
}

// RankError reports an operand with the wrong number of array dimensions
// (A must be 2-D, b must be 1-D). It is a dimension mismatch.
func RankError(op, operand string, expected, actual int) *Error {
	return DimensionError(op, operand, DimRank, expected, actual)
}

func singularError(op string, col int, pivot, tol float64) *Error {
	return &Error{
		Kind:      KindSingularSystem,
		Op:        op,
		Column:    col,
		Pivot:     pivot,
		Tolerance: tol,
	}
}

// KindOf returns the Kind of err, or 0 if err is not (and does not wrap) an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
