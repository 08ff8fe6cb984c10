package gaussjordan

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

const opInverse = "Inverse"

// Inverse returns a⁻¹ with the default options. See (*Solver).Inverse.
func Inverse(a matrix.Matrix) (*matrix.Dense, error) {
	return defaultSolver.Inverse(a)
}

// Inverse computes a⁻¹ by running the same elimination on [a | I].
//
// Blueprint:
//
//	Stage 1 (Validate): a non-nil, square, finite (when CheckFinite).
//	Stage 2 (Prepare):  build the n×2n augmented copy [a | I].
//	Stage 3 (Execute):  eliminate; the left block becomes I.
//	Stage 4 (Finalize): the right block is a⁻¹.
//
// Errors mirror SolveMatrix: KindDimensionMismatch for a rectangular a,
// KindSingularSystem when a has no inverse. a is not modified.
//
// Complexity: O(n³) time, O(n²) memory.
func (s *Solver) Inverse(a matrix.Matrix) (*matrix.Dense, error) {
	// Stage 1: Validate
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("gaussjordan: %s: %w", opInverse, err)
	}
	n := a.Rows()
	if matrix.ValidateSquare(a) != nil {
		return nil, DimensionError(opInverse, "A", DimCols, n, a.Cols())
	}
	if n == 0 {
		return nil, DimensionError(opInverse, "A", DimRows, 1, 0)
	}
	if s.checkFinite {
		if err := matrix.ValidateFinite(a); err != nil {
			return nil, fmt.Errorf("gaussjordan: %s: %w", opInverse, err)
		}
	}

	// Stage 2: Prepare [a | I]
	aug, err := matrix.NewDense(n, 2*n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("gaussjordan: %s: %w", opInverse, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("gaussjordan: %s: %w", opInverse, err)
			}
			if err = aug.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("gaussjordan: %s: %w", opInverse, err)
			}
		}
		if err = aug.Set(i, n+i, 1); err != nil {
			return nil, fmt.Errorf("gaussjordan: %s: %w", opInverse, err)
		}
	}

	// Stage 3: Execute
	if err = s.eliminate(opInverse, aug); err != nil {
		return nil, err
	}

	// Stage 4: Finalize
	inv, err := matrix.NewDense(n, n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("gaussjordan: %s: %w", opInverse, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = aug.At(i, n+j); err != nil {
				return nil, fmt.Errorf("gaussjordan: %s: %w", opInverse, err)
			}
			if err = inv.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("gaussjordan: %s: %w", opInverse, err)
			}
		}
	}

	return inv, nil
}
