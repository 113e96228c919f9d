package backtrack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpitt/sudokucore/internal/grid"
	"github.com/kpitt/sudokucore/internal/solver"
	_ "github.com/kpitt/sudokucore/internal/solver/backtrack"
)

// escargot is the classic "AI Escargot"-style 9x9 puzzle: 23 givens and a
// unique solution.
var escargot = [][]int{
	{1, 0, 0, 0, 0, 7, 0, 9, 0},
	{0, 3, 0, 0, 2, 0, 0, 0, 8},
	{0, 0, 9, 6, 0, 0, 5, 0, 0},
	{0, 0, 5, 3, 0, 0, 9, 0, 0},
	{0, 1, 0, 0, 8, 0, 0, 0, 2},
	{6, 0, 0, 0, 0, 4, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 1, 0},
	{0, 4, 0, 0, 0, 0, 0, 0, 7},
	{0, 0, 7, 0, 0, 0, 3, 0, 0},
}

func newBacktrack(t *testing.T) solver.Solver {
	t.Helper()
	s, err := solver.New(solver.Backtracking)
	require.NoError(t, err)
	return s
}

func TestSolveEscargot(t *testing.T) {
	s := newBacktrack(t)
	b, err := grid.New(escargot, grid.Dimension{})
	require.NoError(t, err)

	result := s.Solve(b)
	require.True(t, result.Solved)

	solved, err := grid.New(result.Solution, b.Dimension())
	require.NoError(t, err)
	assert.True(t, solved.IsSolved())

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if escargot[r][c] != 0 {
				assert.Equal(t, escargot[r][c], result.Solution[r][c])
			}
		}
	}

	assert.True(t, s.HasUniqueSolution(b))
	assert.Len(t, s.FindAllSolutions(b, 0), 1)
}

func TestSolveEmptyBoardIsNotUnique(t *testing.T) {
	s := newBacktrack(t)
	b := grid.Empty(grid.Dimension{N: 9, R: 3, C: 3})

	result := s.Solve(b)
	require.True(t, result.Solved)
	solved, err := grid.New(result.Solution, b.Dimension())
	require.NoError(t, err)
	assert.True(t, solved.IsSolved())

	assert.False(t, s.HasUniqueSolution(b))
	assert.Len(t, s.FindAllSolutions(b, 5), 5)
}

func TestSolveContradictoryInput(t *testing.T) {
	s := newBacktrack(t)
	rows := make([][]int, 9)
	for i := range rows {
		rows[i] = make([]int, 9)
	}
	rows[0][0], rows[0][1] = 5, 5

	b, err := grid.New(rows, grid.Dimension{})
	require.NoError(t, err)
	assert.False(t, b.IsValid())

	result := s.Solve(b)
	assert.False(t, result.Solved)
	assert.NotEmpty(t, result.ErrorMessage)
	assert.Empty(t, s.FindAllSolutions(b, 10))
}

func TestFindAllSolutionsRespectsMax(t *testing.T) {
	s := newBacktrack(t)
	b := grid.Empty(grid.Dimension{N: 9, R: 3, C: 3})

	for max := 1; max <= 4; max++ {
		got := s.FindAllSolutions(b, max)
		assert.LessOrEqual(t, len(got), max)
	}
}

func TestHasUniqueSolutionMatchesFindAllSolutions(t *testing.T) {
	s := newBacktrack(t)
	b, err := grid.New(escargot, grid.Dimension{})
	require.NoError(t, err)

	unique := s.HasUniqueSolution(b)
	all := s.FindAllSolutions(b, 2)
	assert.Equal(t, len(all) == 1, unique)
}

func TestIdempotentSolve(t *testing.T) {
	s := newBacktrack(t)
	b, err := grid.New(escargot, grid.Dimension{})
	require.NoError(t, err)

	first := s.Solve(b)
	second := s.Solve(b)
	require.True(t, first.Solved)
	require.True(t, second.Solved)
	assert.Equal(t, first.Solution, second.Solution)
	assert.Equal(t, first.Iterations, second.Iterations)
	assert.Equal(t, first.Backtracks, second.Backtracks)
}

func TestSolve16x16(t *testing.T) {
	dim := grid.Dimension{N: 16, R: 4, C: 4}
	b := grid.Empty(dim)
	require.NoError(t, b.Set(0, 0, 1))
	require.NoError(t, b.Set(0, 1, 2))

	s := newBacktrack(t)
	result := s.Solve(b)
	require.True(t, result.Solved)

	solved, err := grid.New(result.Solution, dim)
	require.NoError(t, err)
	assert.True(t, solved.IsSolved())
	assert.Equal(t, 1, result.Solution[0][0])
	assert.Equal(t, 2, result.Solution[0][1])
}
