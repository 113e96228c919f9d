// Package dlx implements the Dancing Links / Algorithm X Solver backend: the
// exact-cover formulation of Sudoku over a toroidal doubly-linked matrix.
// Every (row, column, value) placement becomes a matrix row satisfying four
// constraint columns (one cell, one row-digit, one column-digit, one
// box-digit); solving a puzzle is selecting a set of matrix rows that
// covers every column exactly once.
//
// Nodes live in a single arena and are addressed by index rather than by
// pointer, so the whole matrix for one solve is one contiguous allocation
// that is simply dropped when the call returns.
package dlx

import (
	"time"

	"github.com/kpitt/sudokucore/internal/grid"
	"github.com/kpitt/sudokucore/internal/solver"
)

func init() {
	solver.Register(solver.DancingLinks, func() solver.Solver { return &Solver{} })
}

// Solver is the Dancing Links backend. It carries no state between calls:
// each Solve/FindAllSolutions builds and releases its own matrix.
type Solver struct{}

// Name implements solver.Solver.
func (*Solver) Name() string { return "DancingLinks" }

// nodeID indexes into a matrix's node arena. id 0 is reserved as the root
// sentinel's node.
type nodeID int32

// node is one element of the toroidal doubly-linked matrix: either an
// interior 1-entry or (when col is its own id) a column header.
type node struct {
	left, right, up, down nodeID
	col                   nodeID // header nodeID this node belongs to (self, for headers)
	rowID                 int32  // candidate row this node belongs to; -1 for headers and root

	// Header-only fields.
	size int32
	name string
}

// candidate records the (row, col, value) triple a matrix row represents.
type candidate struct {
	row, col, val int
}

// matrix is the ephemeral exact-cover matrix for one solve invocation. It is
// built fresh per call and discarded on return; nothing about it is shared
// across calls.
type matrix struct {
	n, r, c int

	arena []node // arena[0] is the root sentinel
	cols  []nodeID
	rows  [][]nodeID // rows[rowIdx] = the 4 node ids making up that row
	cand  []candidate

	iterations uint64
	backtracks uint64

	partial []int32 // stack of selected row indices during search
	results [][][]int
	limit   int
}

const rootID nodeID = 0

func newMatrix(dim grid.Dimension) *matrix {
	n := dim.N
	m := &matrix{n: n, r: dim.R, c: dim.C}
	m.arena = make([]node, 1, 4*n*n+4*n*n*n+64)
	m.arena[rootID] = node{left: rootID, right: rootID, col: rootID, rowID: -1}

	numCols := 4 * n * n
	m.cols = make([]nodeID, numCols)
	for i := 0; i < numCols; i++ {
		id := m.alloc()
		m.arena[id] = node{up: id, down: id, col: id, rowID: -1, name: columnName(n, i)}
		m.cols[i] = id
		m.linkHeaderRight(id)
	}
	return m
}

func (m *matrix) alloc() nodeID {
	m.arena = append(m.arena, node{})
	return nodeID(len(m.arena) - 1)
}

func (m *matrix) at(id nodeID) *node { return &m.arena[id] }

func (m *matrix) linkHeaderRight(id nodeID) {
	root := m.at(rootID)
	last := root.left
	m.at(id).left = last
	m.at(id).right = rootID
	m.at(last).right = id
	root.left = id
}

// columnName labels a column by its constraint family: cell columns first,
// then row-digit, then column-digit, then box-digit.
func columnName(n, index int) string {
	nn := n * n
	switch {
	case index < nn:
		r, c := index/n, index%n
		return cellName(r, c)
	case index < 2*nn:
		idx := index - nn
		return rowDigitName(idx/n, idx%n+1)
	case index < 3*nn:
		idx := index - 2*nn
		return colDigitName(idx/n, idx%n+1)
	default:
		idx := index - 3*nn
		return boxDigitName(idx/n, idx%n+1)
	}
}

func cellName(r, c int) string      { return itoa(r, "R") + itoa(c, "C") }
func rowDigitName(r, v int) string  { return itoa(r, "R") + "#" + digit(v) }
func colDigitName(c, v int) string  { return itoa(c, "C") + "#" + digit(v) }
func boxDigitName(b, v int) string  { return itoa(b, "B") + "#" + digit(v) }
func itoa(n int, prefix string) string { return prefix + digit(n) }
func digit(n int) string {
	// small helper avoiding an fmt import in the hot construction path
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// build populates the matrix rows for the given board: one row per
// candidate placement (r, c, v) consistent with the board's givens, then
// covers the row of every given. It returns false if a given's row is
// missing or coverRow fails; it does not itself detect givens that conflict
// with each other, which Solve and FindAllSolutions reject beforehand with
// Board.IsValid.
func (m *matrix) build(b *grid.Board) bool {
	n := m.n
	g := b.Grid()
	dim := b.Dimension()

	m.rows = make([][]nodeID, 0, n*n*n)
	m.cand = make([]candidate, 0, n*n*n)

	rowForCandidate := make(map[[3]int]int, n*n*n)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			given := g[r][c]
			for v := 1; v <= n; v++ {
				if given != 0 && given != v {
					continue
				}
				idx := m.addRow(r, c, v, dim)
				rowForCandidate[[3]int{r, c, v}] = idx
			}
		}
	}

	m.partial = make([]int32, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			idx, ok := rowForCandidate[[3]int{r, c, v}]
			if !ok {
				return false
			}
			if !m.coverRow(idx) {
				return false
			}
			m.partial = append(m.partial, int32(idx))
		}
	}
	return true
}

// addRow creates the four nodes for candidate (r, c, v) and links them into
// their columns and into a horizontal 4-cycle.
func (m *matrix) addRow(r, c, v int, dim grid.Dimension) int {
	n := m.n
	nn := n * n
	box := dim.Box(r, c)

	colIdx := [4]int{
		r*n + c,
		nn + r*n + (v - 1),
		2*nn + c*n + (v - 1),
		3*nn + box*n + (v - 1),
	}

	var ids [4]nodeID
	for i, ci := range colIdx {
		id := m.alloc()
		header := m.cols[ci]
		hn := m.at(header)
		last := hn.up
		m.at(id).col = header
		m.at(id).up = last
		m.at(id).down = header
		m.at(last).down = id
		hn.up = id
		hn.size++
		ids[i] = id
	}
	for i := 0; i < 4; i++ {
		m.at(ids[i]).left = ids[(i+3)%4]
		m.at(ids[i]).right = ids[(i+1)%4]
		m.at(ids[i]).rowID = int32(len(m.rows))
	}

	rowIdx := len(m.rows)
	m.rows = append(m.rows, ids[:])
	m.cand = append(m.cand, candidate{row: r, col: c, val: v})
	return rowIdx
}

// cover unlinks a column header and every row intersecting it.
func (m *matrix) cover(colID nodeID) {
	col := m.at(colID)
	m.at(col.right).left = col.left
	m.at(col.left).right = col.right

	for i := col.down; i != colID; i = m.at(i).down {
		for j := m.at(i).right; j != i; j = m.at(j).right {
			jn := m.at(j)
			m.at(jn.down).up = jn.up
			m.at(jn.up).down = jn.down
			m.at(jn.col).size--
		}
	}
}

// uncover is the exact inverse of cover, applied in reverse order.
func (m *matrix) uncover(colID nodeID) {
	col := m.at(colID)
	for i := col.up; i != colID; i = m.at(i).up {
		for j := m.at(i).left; j != i; j = m.at(j).left {
			jn := m.at(j)
			m.at(jn.col).size++
			m.at(jn.down).up = j
			m.at(jn.up).down = j
		}
	}
	m.at(col.right).left = colID
	m.at(col.left).right = colID
}

// coverRow covers the four columns of a pre-search given-clue row. It
// returns false only if one of those columns has a negative size.
func (m *matrix) coverRow(rowIdx int) bool {
	for _, id := range m.rows[rowIdx] {
		col := m.at(id).col
		if m.at(col).size < 0 {
			return false
		}
		m.cover(col)
	}
	return true
}

// chooseColumn implements the S-heuristic: the live column with the minimum
// size, ties broken by first-encountered order from root.right.
func (m *matrix) chooseColumn() nodeID {
	root := m.at(rootID)
	best := nodeID(-1)
	bestSize := int32(1 << 30)
	for id := root.right; id != rootID; id = m.at(id).right {
		size := m.at(id).size
		if size < bestSize {
			best = id
			bestSize = size
		}
	}
	return best
}

// search is Algorithm X. stopAfterFirst halts and returns true as soon as
// one solution is recorded; otherwise it records every solution (up to
// m.limit, 0 = unbounded), returning true once m.limit solutions have been
// recorded and false once the search space is exhausted.
func (m *matrix) search(stopAfterFirst bool) bool {
	m.iterations++
	if m.limit > 0 && len(m.results) >= m.limit {
		return true
	}
	if m.at(rootID).right == rootID {
		m.recordSolution()
		return stopAfterFirst || (m.limit > 0 && len(m.results) >= m.limit)
	}

	col := m.chooseColumn()
	if m.at(col).size == 0 {
		return false
	}
	m.cover(col)

	colNode := m.at(col)
	for rowNode := colNode.down; rowNode != col; rowNode = m.at(rowNode).down {
		m.partial = append(m.partial, m.at(rowNode).rowID)
		for j := m.at(rowNode).right; j != rowNode; j = m.at(j).right {
			m.cover(m.at(j).col)
		}

		done := m.search(stopAfterFirst)

		for j := m.at(rowNode).left; j != rowNode; j = m.at(j).left {
			m.uncover(m.at(j).col)
		}
		m.partial = m.partial[:len(m.partial)-1]

		if done {
			return true
		}
		m.backtracks++
	}

	m.uncover(col)
	return false
}

// recordSolution reconstructs a grid from the current partial solution
// stack and appends it to m.results.
func (m *matrix) recordSolution() {
	g := make([][]int, m.n)
	for i := range g {
		g[i] = make([]int, m.n)
	}
	for _, rowID := range m.partial {
		cd := m.cand[rowID]
		g[cd.row][cd.col] = cd.val
	}
	m.results = append(m.results, g)
}

// Solve implements solver.Solver.
func (sv *Solver) Solve(b *grid.Board) solver.SolveResult {
	start := time.Now()
	if !b.IsValid() {
		return solver.SolveResult{
			Solved:       false,
			Algorithm:    sv.Name(),
			TimeMS:       elapsedMS(start),
			ErrorMessage: "contradictory givens in input board",
		}
	}
	m := newMatrix(b.Dimension())
	if !m.build(b) {
		return solver.SolveResult{
			Solved:       false,
			Algorithm:    sv.Name(),
			TimeMS:       elapsedMS(start),
			ErrorMessage: "contradictory givens in input board",
		}
	}

	m.limit = 1
	m.search(true)

	res := solver.SolveResult{
		Algorithm:  sv.Name(),
		TimeMS:     elapsedMS(start),
		Iterations: m.iterations,
		Backtracks: m.backtracks,
	}
	if len(m.results) == 1 {
		res.Solved = true
		res.Solution = m.results[0]
	} else {
		res.ErrorMessage = "no solution exists for this board"
	}
	return res
}

// FindAllSolutions implements solver.Solver.
func (sv *Solver) FindAllSolutions(b *grid.Board, max int) []*grid.Board {
	if !b.IsValid() {
		return nil
	}
	m := newMatrix(b.Dimension())
	if !m.build(b) {
		return nil
	}
	m.limit = max
	m.search(false)

	dim := b.Dimension()
	out := make([]*grid.Board, 0, len(m.results))
	for _, g := range m.results {
		if bd, err := grid.New(g, dim); err == nil {
			out = append(out, bd)
		}
	}
	return out
}

// HasUniqueSolution implements solver.Solver.
func (sv *Solver) HasUniqueSolution(b *grid.Board) bool {
	return solver.UniqueFromAll(sv, b)
}

func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / 1e6
}
