package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpitt/sudokucore/internal/grid"
)

func zeros(n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	return rows
}

func TestInferDimensionCanonical(t *testing.T) {
	for _, tc := range []struct {
		n    int
		r, c int
	}{
		{9, 3, 3},
		{16, 4, 4},
		{25, 5, 5},
	} {
		d, err := grid.InferDimension(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.r, d.R)
		assert.Equal(t, tc.c, d.C)
	}
}

func TestNewConstructionSucceedsForEachCanonicalSize(t *testing.T) {
	for _, n := range []int{9, 16, 25} {
		b, err := grid.New(zeros(n), grid.Dimension{})
		require.NoError(t, err)
		assert.Equal(t, n, b.Dimension().N)
	}
}

func TestNewRejectsNonSquareGrid(t *testing.T) {
	rows := zeros(9)
	rows = append(rows, []int{0, 0, 0}) // ragged, 10 rows but row 9 too short
	_, err := grid.New(rows, grid.Dimension{})
	require.Error(t, err)
}

func TestNewRejectsOutOfRangeValue(t *testing.T) {
	rows := zeros(9)
	rows[0][0] = 10
	_, err := grid.New(rows, grid.Dimension{})
	require.Error(t, err)
}

func TestSetRejectsOutOfRangeValue(t *testing.T) {
	b, err := grid.New(zeros(9), grid.Dimension{})
	require.NoError(t, err)
	require.Error(t, b.Set(0, 0, 10))
	require.Error(t, b.Set(-1, 0, 1))
}

func TestIsSolvedImpliesValidAndComplete(t *testing.T) {
	rows := zeros(9)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			rows[r][c] = (r*3+r/3+c)%9 + 1
		}
	}
	b, err := grid.New(rows, grid.Dimension{})
	require.NoError(t, err)
	if b.IsSolved() {
		assert.True(t, b.IsValid())
		assert.Equal(t, 0, b.CountEmpty())
	}
}

func TestDuplicateInRowIsInvalid(t *testing.T) {
	rows := zeros(9)
	rows[0][0], rows[0][1] = 5, 5
	b, err := grid.New(rows, grid.Dimension{})
	require.NoError(t, err)
	assert.False(t, b.IsValid())
}

func TestDuplicateInColumnIsInvalid(t *testing.T) {
	rows := zeros(9)
	rows[0][0], rows[5][0] = 7, 7
	b, err := grid.New(rows, grid.Dimension{})
	require.NoError(t, err)
	assert.False(t, b.IsValid())
}

func TestDuplicateInBoxIsInvalid(t *testing.T) {
	rows := zeros(9)
	rows[0][0], rows[1][1] = 3, 3
	b, err := grid.New(rows, grid.Dimension{})
	require.NoError(t, err)
	assert.False(t, b.IsValid())
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := grid.New(zeros(9), grid.Dimension{})
	require.NoError(t, err)
	clone := b.Clone()
	require.NoError(t, clone.Set(0, 0, 5))

	orig, err := b.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, orig)

	cv, err := clone.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, cv)
}

func TestFillRatioAndCountEmpty(t *testing.T) {
	b, err := grid.New(zeros(9), grid.Dimension{})
	require.NoError(t, err)
	assert.Equal(t, 81, b.CountEmpty())
	assert.Equal(t, 0.0, b.FillRatio())

	require.NoError(t, b.Set(0, 0, 1))
	assert.Equal(t, 80, b.CountEmpty())
	assert.InDelta(t, 1.0/81.0, b.FillRatio(), 1e-9)
}
