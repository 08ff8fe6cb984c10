// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
)

// 1) TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	if o.ValidateNaNInf() != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidateNaNInf(), matrix.DefaultValidateNaNInf)
	}
}

// 2) TestNewMatrixOptions_LastWins ensures later setters override earlier ones and nil setters are skipped.
func TestNewMatrixOptions_LastWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	if !o.ValidateNaNInf() {
		t.Fatalf("last-writer-wins failed: validateNaNInf=%v, want true", o.ValidateNaNInf())
	}
	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	if o.ValidateNaNInf() {
		t.Fatalf("last-writer-wins failed: validateNaNInf=%v, want false", o.ValidateNaNInf())
	}
}

// 3) TestNaNInfPolicy_AppliesToSet checks that the policy chosen at construction governs Set.
func TestNaNInfPolicy_AppliesToSet(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if err = strict.Set(0, 0, math.Inf(1)); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("strict Set(+Inf): got %v, want ErrNaNInf", err)
	}

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if err = loose.Set(0, 0, math.NaN()); err != nil {
		t.Fatalf("loose Set(NaN): unexpected error %v", err)
	}
	v, _ := loose.At(0, 0)
	if !math.IsNaN(v) {
		t.Fatalf("loose At: got %v, want NaN", v)
	}
}
