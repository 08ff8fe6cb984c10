package gaussjordan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/gaussjordan"
	"github.com/katalvlaran/linsolve/matrix"
)

func TestResidual(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	r, err := gaussjordan.Residual(a, []float64{1, 1}, []float64{3, 7})
	require.NoError(t, err)
	assert.Zero(t, r)

	r, err = gaussjordan.Residual(a, []float64{1, 1}, []float64{3.5, 6})
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	_, err = gaussjordan.Residual(a, []float64{1}, []float64{3, 7})
	require.ErrorIs(t, err, gaussjordan.ErrDimensionMismatch)

	_, err = gaussjordan.Residual(a, []float64{1, 1}, []float64{3})
	require.ErrorIs(t, err, gaussjordan.ErrDimensionMismatch)

	_, err = gaussjordan.Residual(nil, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
