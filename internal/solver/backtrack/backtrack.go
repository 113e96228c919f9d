// Package backtrack implements a bitmask minimum-remaining-values
// backtracking Solver backend. Each row, column, and box tracks the digits
// already placed in it as a single machine word; choosing the empty cell
// with the fewest live candidates before branching keeps the search tree
// small without any auxiliary elimination pass.
package backtrack

import (
	"time"

	"github.com/kpitt/sudokucore/internal/grid"
	"github.com/kpitt/sudokucore/internal/solver"
)

func init() {
	solver.Register(solver.Backtracking, func() solver.Solver { return &Solver{} })
}

// Solver is the bitmask backtracking backend. A Solver value carries no
// state between calls to Solve/FindAllSolutions; all decision state lives on
// the stack of a single search invocation (see search).
type Solver struct{}

// Name implements solver.Solver.
func (*Solver) Name() string { return "Backtracking" }

// search is the ephemeral per-invocation state: the three mask families, the
// working grid, and the counters.
type search struct {
	n    int
	cell [][]int

	rowMask, colMask, boxMask []uint32

	iterations uint64
	backtracks uint64

	// results and limit are only used by the all-solutions walk.
	results []*grid.Board
	limit   int // 0 means unbounded
}

// full is the bitmask with the low n bits set, representing "every digit
// already used."
func full(n int) uint32 {
	if n == 32 {
		return ^uint32(0)
	}
	return (uint32(1) << uint(n)) - 1
}

// newSearch builds row/col/box masks from the board's givens. It reports
// ErrContradictoryInput-equivalent failure via the bool return when two
// givens already collide.
func newSearch(b *grid.Board) (*search, bool) {
	dim := b.Dimension()
	n := dim.N
	s := &search{
		n:       n,
		cell:    b.Grid(),
		rowMask: make([]uint32, n),
		colMask: make([]uint32, n),
		boxMask: make([]uint32, n),
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := s.cell[r][c]
			if v == 0 {
				continue
			}
			bit := uint32(1) << uint(v-1)
			box := dim.Box(r, c)
			if s.rowMask[r]&bit != 0 || s.colMask[c]&bit != 0 || s.boxMask[box]&bit != 0 {
				return s, false
			}
			s.rowMask[r] |= bit
			s.colMask[c] |= bit
			s.boxMask[box] |= bit
		}
	}
	return s, true
}

func (s *search) candidates(r, c, box int) uint32 {
	used := s.rowMask[r] | s.colMask[c] | s.boxMask[box]
	return ^used & full(s.n)
}

// selectCell applies the MRV heuristic: among empty cells, pick the one with
// the fewest candidate bits, ties broken by row-major scan order. Returns
// ok=false if the board is already complete.
func (s *search) selectCell(dim grid.Dimension) (row, col, box int, cand uint32, ok bool) {
	best := -1
	for r := 0; r < s.n; r++ {
		for c := 0; c < s.n; c++ {
			if s.cell[r][c] != 0 {
				continue
			}
			b := dim.Box(r, c)
			cd := s.candidates(r, c, b)
			count := popcount(cd)
			if best == -1 || count < best {
				row, col, box, cand, ok = r, c, b, cd, true
				best = count
				if best == 0 {
					return
				}
			}
		}
	}
	return
}

func popcount(x uint32) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}
	return count
}

// place/unplace mutate the grid and masks in lockstep.
func (s *search) place(r, c, box, v int) {
	s.cell[r][c] = v
	bit := uint32(1) << uint(v-1)
	s.rowMask[r] |= bit
	s.colMask[c] |= bit
	s.boxMask[box] |= bit
}

func (s *search) unplace(r, c, box, v int) {
	s.cell[r][c] = 0
	bit := uint32(1) << uint(v-1)
	s.rowMask[r] &^= bit
	s.colMask[c] &^= bit
	s.boxMask[box] &^= bit
}

func (s *search) snapshot() [][]int {
	out := make([][]int, s.n)
	for r := range out {
		out[r] = append([]int(nil), s.cell[r]...)
	}
	return out
}

// solveOne performs the DFS for a single solution. Returns true once the
// grid is complete.
func (s *search) solveOne(dim grid.Dimension) bool {
	s.iterations++
	row, col, box, cand, ok := s.selectCell(dim)
	if !ok {
		return true // no empty cell left: complete
	}
	if cand == 0 {
		s.backtracks++
		return false
	}
	for v := 1; v <= s.n; v++ {
		bit := uint32(1) << uint(v-1)
		if cand&bit == 0 {
			continue
		}
		s.place(row, col, box, v)
		if s.solveOne(dim) {
			return true
		}
		s.unplace(row, col, box, v)
	}
	s.backtracks++
	return false
}

// solveAll performs the DFS collecting up to s.limit solutions (0 =
// unbounded) into s.results.
func (s *search) solveAll(dim grid.Dimension) {
	if s.limit > 0 && len(s.results) >= s.limit {
		return
	}
	s.iterations++
	row, col, box, cand, ok := s.selectCell(dim)
	if !ok {
		b, _ := grid.New(s.snapshot(), dim)
		s.results = append(s.results, b)
		return
	}
	if cand == 0 {
		s.backtracks++
		return
	}
	for v := 1; v <= s.n; v++ {
		bit := uint32(1) << uint(v-1)
		if cand&bit == 0 {
			continue
		}
		s.place(row, col, box, v)
		s.solveAll(dim)
		s.unplace(row, col, box, v)
		if s.limit > 0 && len(s.results) >= s.limit {
			return
		}
	}
	s.backtracks++
}

// Solve implements solver.Solver.
func (sv *Solver) Solve(b *grid.Board) solver.SolveResult {
	start := time.Now()
	dim := b.Dimension()
	s, ok := newSearch(b)
	if !ok {
		return solver.SolveResult{
			Solved:       false,
			Algorithm:    sv.Name(),
			TimeMS:       elapsedMS(start),
			ErrorMessage: "contradictory givens in input board",
		}
	}
	solved := s.solveOne(dim)
	result := solver.SolveResult{
		Solved:     solved,
		Algorithm:  sv.Name(),
		TimeMS:     elapsedMS(start),
		Iterations: s.iterations,
		Backtracks: s.backtracks,
	}
	if solved {
		result.Solution = s.snapshot()
	} else {
		result.ErrorMessage = "no solution exists for this board"
	}
	return result
}

// FindAllSolutions implements solver.Solver.
func (sv *Solver) FindAllSolutions(b *grid.Board, max int) []*grid.Board {
	dim := b.Dimension()
	s, ok := newSearch(b)
	if !ok {
		return nil
	}
	s.limit = max
	s.results = make([]*grid.Board, 0, maxCap(max))
	s.solveAll(dim)
	return s.results
}

// HasUniqueSolution implements solver.Solver.
func (sv *Solver) HasUniqueSolution(b *grid.Board) bool {
	return solver.UniqueFromAll(sv, b)
}

func maxCap(max int) int {
	if max <= 0 || max > 64 {
		return 8
	}
	return max
}

func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / 1e6
}
