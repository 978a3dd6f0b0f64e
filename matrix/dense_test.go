// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gcnreg/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %dx%d", tc.r, tc.c)
	}
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7))
	require.Equal(t, 7.0, MustAt(t, m, 1, 2))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestNewDenseFrom_CopiesAndChecksLength(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	src[0] = 100
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewDenseFrom(2, 2, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDataLength)
}

func TestNewDenseRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDataLength)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestDense_Zero(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	m.Zero()
	require.Equal(t, []float64{0, 0, 0, 0}, m.Raw())
}

func TestDense_String(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2.5}, {0, -1}})
	require.Equal(t, "[1, 2.5]\n[0, -1]\n", m.String())
}
