// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 4},
		{6, 6},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j), "element [%d,%d]", i, j)
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.Equal(t, want, MustAt(t, id, i, j))
		}
	}

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	t.Run("copies input", func(t *testing.T) {
		src := [][]float64{{1, 2}, {3, 4}}
		m := MustFromRows(t, src)
		require.NoError(t, m.Set(0, 0, 42))
		assert.Equal(t, 1.0, src[0][0], "source must not alias the Dense buffer")

		src[1][1] = -7
		assert.Equal(t, 4.0, MustAt(t, m, 1, 1))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows(nil)
		require.ErrorIs(t, err, matrix.ErrBadShape)
		_, err = matrix.NewDenseFromRows([][]float64{{}})
		require.ErrorIs(t, err, matrix.ErrBadShape)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})

	t.Run("non-finite", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
		require.ErrorIs(t, err, matrix.ErrNaNInf)

		m, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
		require.NoError(t, err)
		assert.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))
	})
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m := MustDense(t, 2, 3)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestDense_Clone_Independent(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 9.0, MustAt(t, cp, 0, 0))
}

func TestDense_RowKernels(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	require.NoError(t, m.SwapRows(0, 2))
	assert.Equal(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}, m.ToRows())

	require.NoError(t, m.SwapRows(1, 1))
	assert.Equal(t, []float64{4, 5, 6}, mustRow(t, m, 1))

	// Columns left of `from` stay untouched.
	require.NoError(t, m.DivideRow(1, 1, 2))
	assert.Equal(t, []float64{4, 2.5, 3}, mustRow(t, m, 1))
	require.ErrorIs(t, m.DivideRow(1, 0, 0), matrix.ErrSingular)

	require.NoError(t, m.AddScaledRow(2, 0, 0, -1))
	assert.Equal(t, []float64{-6, -6, -6}, mustRow(t, m, 2))

	require.NoError(t, m.AddScaledRow(2, 0, 0, 0))
	assert.Equal(t, []float64{-6, -6, -6}, mustRow(t, m, 2))

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 3, -6}, col)

	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.DivideRow(0, 4, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddScaledRow(-1, 0, 0, 1), matrix.ErrOutOfRange)
	_, err = m.RawRow(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_String(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

func mustRow(t testing.TB, m *matrix.Dense, i int) []float64 {
	t.Helper()
	row, err := m.RawRow(i)
	require.NoError(t, err)

	return row
}
