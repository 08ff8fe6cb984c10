package gaussjordan

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/matrix"
)

const opResidual = "Residual"

// Residual returns max|a·x − b|, the infinity norm of the residual vector.
//
// It is the acceptance check for a computed solution: a well-posed system
// solved by this package has Residual well below 1e-9.
//
// Errors:
//   - matrix.ErrNilMatrix, or KindDimensionMismatch when len(x) != cols(a)
//     or len(b) != rows(a).
func Residual(a matrix.Matrix, x, b []float64) (float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("gaussjordan: %s: %w", opResidual, err)
	}
	if len(x) != a.Cols() {
		return 0, DimensionError(opResidual, "x", DimLength, a.Cols(), len(x))
	}
	if len(b) != a.Rows() {
		return 0, DimensionError(opResidual, "b", DimLength, a.Rows(), len(b))
	}

	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, fmt.Errorf("gaussjordan: %s: %w", opResidual, err)
	}
	floats.Sub(ax, b)

	return floats.Norm(ax, math.Inf(1)), nil
}
