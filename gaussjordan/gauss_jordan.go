package gaussjordan

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/linsolve/matrix"
)

// Operation tags used in errors and logs.
const (
	opSolve       = "Solve"
	opSolveMatrix = "SolveMatrix"
)

// Solver runs Gauss–Jordan elimination with a fixed configuration.
// It holds no per-call state and is safe for concurrent use.
type Solver struct {
	tol         float64
	checkFinite bool
	log         *zap.Logger
}

// New validates opts and returns a Solver.
// Errors: ErrInvalidTolerance.
func New(opts Options) (*Solver, error) {
	if math.IsNaN(opts.Tolerance) || math.IsInf(opts.Tolerance, 0) || opts.Tolerance <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidTolerance, opts.Tolerance)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Solver{
		tol:         opts.Tolerance,
		checkFinite: opts.CheckFinite,
		log:         log.Named("gaussjordan"),
	}, nil
}

// Tolerance returns the pivot threshold of s.
func (s *Solver) Tolerance() float64 { return s.tol }

var defaultSolver = &Solver{
	tol:         DefaultTolerance,
	checkFinite: true,
	log:         zap.NewNop(),
}

// Solve solves a·x = b with the default options. See (*Solver).Solve.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	return defaultSolver.Solve(a, b)
}

// SolveMatrix solves a·x = b with the default options. See (*Solver).SolveMatrix.
func SolveMatrix(a matrix.Matrix, b []float64) ([]float64, error) {
	return defaultSolver.SolveMatrix(a, b)
}

// Solve solves a·x = b for raw, possibly rectangular input.
//
// Implementation:
//   - Stage 1: shape checks in order: a has rows, every row has len(a)
//     entries (square), len(b) == len(a). Violations are KindDimensionMismatch.
//   - Stage 2: copy a into a private Dense (finite check when enabled).
//   - Stage 3: eliminate on the augmented n×(n+1) copy and read the last column.
//
// Neither a nor b is modified.
//
// Errors:
//   - *Error of KindDimensionMismatch or KindSingularSystem.
//   - matrix.ErrNaNInf (wrapped) when CheckFinite is on and an entry is not finite.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (s *Solver) Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, DimensionError(opSolve, "A", DimRows, 1, 0)
	}
	for i, row := range a {
		if len(row) != n {
			return nil, DimensionError(opSolve, fmt.Sprintf("A[%d]", i), DimLength, n, len(row))
		}
	}
	if len(b) != n {
		return nil, DimensionError(opSolve, "b", DimLength, n, len(b))
	}

	am, err := matrix.NewDenseFromRows(a, s.policy())
	if err != nil {
		return nil, fmt.Errorf("gaussjordan: %s: %w", opSolve, err)
	}

	return s.solve(opSolve, am, b)
}

// SolveMatrix solves a·x = b for a Matrix operand.
//
// a must still be square; a rectangular Matrix is KindDimensionMismatch
// (Dim = cols) and an empty one is KindDimensionMismatch (Dim = rows).
// A nil a is matrix.ErrNilMatrix. Neither a nor b is modified.
func (s *Solver) SolveMatrix(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("gaussjordan: %s: %w", opSolveMatrix, err)
	}
	n := a.Rows()
	if matrix.ValidateSquare(a) != nil {
		return nil, DimensionError(opSolveMatrix, "A", DimCols, n, a.Cols())
	}
	if n == 0 {
		return nil, DimensionError(opSolveMatrix, "A", DimRows, 1, 0)
	}
	if len(b) != n {
		return nil, DimensionError(opSolveMatrix, "b", DimLength, n, len(b))
	}
	if s.checkFinite {
		if err := matrix.ValidateFinite(a); err != nil {
			return nil, fmt.Errorf("gaussjordan: %s: %w", opSolveMatrix, err)
		}
	}

	return s.solve(opSolveMatrix, a, b)
}

func (s *Solver) policy() matrix.Option {
	if s.checkFinite {
		return matrix.WithValidateNaNInf()
	}

	return matrix.WithNoValidateNaNInf()
}

// solve checks b, builds the augmented copy and runs the elimination.
// a is square n×n and len(b) == n.
func (s *Solver) solve(op string, a matrix.Matrix, b []float64) ([]float64, error) {
	if s.checkFinite {
		if err := matrix.ValidateFiniteVec(b); err != nil {
			return nil, fmt.Errorf("gaussjordan: %s: b: %w", op, err)
		}
	}

	aug, err := augment(a, b)
	if err != nil {
		return nil, fmt.Errorf("gaussjordan: %s: %w", op, err)
	}
	if err = s.eliminate(op, aug); err != nil {
		return nil, err
	}

	x, err := aug.Col(len(b))
	if err != nil {
		return nil, fmt.Errorf("gaussjordan: %s: %w", op, err)
	}

	return x, nil
}

// augment copies a and b into a fresh n×(n+1) Dense [a | b].
// The copy never validates values; the caller already applied its policy.
func augment(a matrix.Matrix, b []float64) (*matrix.Dense, error) {
	n := len(b)
	aug, err := matrix.NewDense(n, n+1, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, err
			}
			if err = aug.Set(i, j, v); err != nil {
				return nil, err
			}
		}
		if err = aug.Set(i, n, b[i]); err != nil {
			return nil, err
		}
	}

	return aug, nil
}

// eliminate reduces aug (n×(n+m), m ≥ 1) to reduced row-echelon form in place.
//
// For each column col:
//  1. pick sel ∈ [col, n) maximizing |aug[sel][col]| (strict >, first wins);
//  2. fail with KindSingularSystem if that magnitude is below tol (checked
//     before any division; a NaN magnitude also fails);
//  3. swap rows col and sel;
//  4. divide row col by the pivot from column col to the end;
//  5. subtract aug[r][col] × row col from every other row r, same span.
//
// Afterwards the left n×n block is the identity and the right block holds
// the solution column(s).
func (s *Solver) eliminate(op string, aug *matrix.Dense) error {
	n := aug.Rows()
	trace := s.log.Core().Enabled(zapcore.DebugLevel)

	var (
		col, row, sel int
		best, v, piv  float64
		err           error
	)
	for col = 0; col < n; col++ {
		// 1. Partial pivoting.
		sel = col
		if best, err = aug.At(col, col); err != nil {
			return fmt.Errorf("gaussjordan: %s: %w", op, err)
		}
		best = math.Abs(best)
		for row = col + 1; row < n; row++ {
			if v, err = aug.At(row, col); err != nil {
				return fmt.Errorf("gaussjordan: %s: %w", op, err)
			}
			if math.Abs(v) > best {
				best, sel = math.Abs(v), row
			}
		}

		// 2. Singularity check. !(best >= tol) also catches NaN.
		if !(best >= s.tol) {
			if trace {
				s.log.Debug("singular pivot",
					zap.String("op", op), zap.Int("col", col), zap.Float64("pivot", best))
			}

			return singularError(op, col, best, s.tol)
		}

		// 3. Row swap.
		if err = aug.SwapRows(col, sel); err != nil {
			return fmt.Errorf("gaussjordan: %s: %w", op, err)
		}

		// 4. Normalize the pivot row.
		if piv, err = aug.At(col, col); err != nil {
			return fmt.Errorf("gaussjordan: %s: %w", op, err)
		}
		if trace {
			s.log.Debug("pivot",
				zap.String("op", op), zap.Int("col", col), zap.Int("row", sel), zap.Float64("value", piv))
		}
		if err = aug.DivideRow(col, col, piv); err != nil {
			return fmt.Errorf("gaussjordan: %s: %w", op, err)
		}

		// 5. Jordan step: clear the column above and below the pivot.
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			if v, err = aug.At(row, col); err != nil {
				return fmt.Errorf("gaussjordan: %s: %w", op, err)
			}
			if err = aug.AddScaledRow(row, col, col, -v); err != nil {
				return fmt.Errorf("gaussjordan: %s: %w", op, err)
			}
		}
	}

	return nil
}
