package gaussjordan_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/gaussjordan"
	"github.com/katalvlaran/linsolve/matrix"
)

func TestInverse_Known(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})
	require.NoError(t, err)

	inv, err := gaussjordan.Inverse(a)
	require.NoError(t, err)

	want := [][]float64{{0.6, -0.7}, {-0.2, 0.4}}
	for i, row := range inv.ToRows() {
		assert.InDeltaSlice(t, want[i], row, 1e-12)
	}

	// a is untouched
	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestInverse_AgainstGonum(t *testing.T) {
	const n = 30
	rows, _ := randomSystem(11, n, 10)
	a, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	inv, err := gaussjordan.Inverse(hide{a})
	require.NoError(t, err)

	data := make([]float64, 0, n*n)
	for _, r := range rows {
		data = append(data, r...)
	}
	var want mat.Dense
	require.NoError(t, want.Inverse(mat.NewDense(n, n, data)))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			got, err := inv.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want.At(i, j), got, 1e-8, "(%d,%d)", i, j)
		}
	}
}

func TestInverse_Errors(t *testing.T) {
	singular, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)
	_, err = gaussjordan.Inverse(singular)
	require.ErrorIs(t, err, gaussjordan.ErrSingularSystem)
	var ge *gaussjordan.Error
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "Inverse", ge.Op)
	assert.Equal(t, 1, ge.Column)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = gaussjordan.Inverse(rect)
	assert.ErrorIs(t, err, gaussjordan.ErrDimensionMismatch)

	_, err = gaussjordan.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse_Empty(t *testing.T) {
	_, err := gaussjordan.Inverse(emptyMatrix{})
	require.ErrorIs(t, err, gaussjordan.ErrDimensionMismatch)
	assert.Equal(t, gaussjordan.KindDimensionMismatch, gaussjordan.KindOf(err))
}
