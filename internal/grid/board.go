package grid

import (
	"github.com/kpitt/sudokucore/internal/set"
	"github.com/kpitt/sudokucore/internal/xerrors"
)

// Board is the immutable-after-construction problem instance: a dimension
// descriptor plus a dense N×N grid of integers in [0, N], where 0 denotes an
// empty cell. Board owns no solving state; solvers work on private copies or
// on their own ephemeral decision structures (see internal/solver/backtrack
// and internal/solver/dlx).
type Board struct {
	dim  Dimension
	cell [][]int

	// Metadata is opaque to the core: a loader may attach a name or
	// difficulty label here, but no core package reads it.
	Metadata map[string]string
}

// New constructs a Board from a dense grid. If dim is the zero Dimension,
// the dimension is inferred from len(rows) via InferDimension. New fails
// with xerrors.ErrInvalidDimension if the grid is not square or is
// inconsistent with dim, and with xerrors.ErrOutOfRange if any cell value
// falls outside [0, N].
func New(rows [][]int, dim Dimension) (*Board, error) {
	n := len(rows)
	if dim == (Dimension{}) {
		inferred, err := InferDimension(n)
		if err != nil {
			return nil, err
		}
		dim = inferred
	}
	if dim.N != n {
		return nil, xerrors.Wrap(xerrors.ErrInvalidDimension,
			"grid has %d rows, dimension declares N=%d", n, dim.N)
	}
	cell := make([][]int, n)
	for r, row := range rows {
		if len(row) != n {
			return nil, xerrors.Wrap(xerrors.ErrInvalidDimension,
				"row %d has %d columns, want %d (grid must be square)", r, len(row), n)
		}
		cell[r] = make([]int, n)
		for c, v := range row {
			if v < 0 || v > n {
				return nil, xerrors.Wrap(xerrors.ErrOutOfRange,
					"cell (%d,%d) = %d outside [0,%d]", r, c, v, n)
			}
			cell[r][c] = v
		}
	}
	return &Board{dim: dim, cell: cell, Metadata: map[string]string{}}, nil
}

// Empty constructs an all-zero Board of the given dimension.
func Empty(dim Dimension) *Board {
	cell := make([][]int, dim.N)
	for r := range cell {
		cell[r] = make([]int, dim.N)
	}
	return &Board{dim: dim, cell: cell, Metadata: map[string]string{}}
}

// Dimension returns the board's (N, R, C) descriptor.
func (b *Board) Dimension() Dimension { return b.dim }

// Get returns the value at (row, col), range-checked.
func (b *Board) Get(row, col int) (int, error) {
	if !b.inRange(row, col) {
		return 0, xerrors.Wrap(xerrors.ErrOutOfRange, "cell (%d,%d) out of bounds for %s", row, col, b.dim)
	}
	return b.cell[row][col], nil
}

// Set assigns val to (row, col). It fails with ErrOutOfRange if row/col are
// out of bounds or val is not in [0, N].
func (b *Board) Set(row, col, val int) error {
	if !b.inRange(row, col) {
		return xerrors.Wrap(xerrors.ErrOutOfRange, "cell (%d,%d) out of bounds for %s", row, col, b.dim)
	}
	if val < 0 || val > b.dim.N {
		return xerrors.Wrap(xerrors.ErrOutOfRange, "value %d outside [0,%d]", val, b.dim.N)
	}
	b.cell[row][col] = val
	return nil
}

func (b *Board) inRange(row, col int) bool {
	return row >= 0 && row < b.dim.N && col >= 0 && col < b.dim.N
}

// Grid returns a defensive copy of the board's row-major N×N grid.
func (b *Board) Grid() [][]int {
	out := make([][]int, b.dim.N)
	for r, row := range b.cell {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the board, suitable for handing to a
// separate benchmark worker goroutine.
func (b *Board) Clone() *Board {
	meta := make(map[string]string, len(b.Metadata))
	for k, v := range b.Metadata {
		meta[k] = v
	}
	return &Board{dim: b.dim, cell: b.Grid(), Metadata: meta}
}

// IsValid reports whether no row, column, or box contains the same nonzero
// value twice.
func (b *Board) IsValid() bool {
	n, dim := b.dim.N, b.dim
	for i := range n {
		if hasDuplicate(n, func(j int) int { return b.cell[i][j] }) {
			return false
		}
		if hasDuplicate(n, func(j int) int { return b.cell[j][i] }) {
			return false
		}
	}
	for box := range n {
		// box = (boxRow)*R + boxCol, boxRow in [0,C), boxCol in [0,R);
		// see Dimension.Box for the forward mapping this inverts.
		baseRow, baseCol := (box/dim.R)*dim.R, (box%dim.R)*dim.C
		if hasDuplicate(n, func(k int) int {
			return b.cell[baseRow+k/dim.C][baseCol+k%dim.C]
		}) {
			return false
		}
	}
	return true
}

// hasDuplicate reports whether the same nonzero value appears twice among
// at(0)..at(n-1). Validity checks are not on the solver hot path, so the
// map-backed set's overhead is acceptable here.
func hasDuplicate(n int, at func(int) int) bool {
	seen := set.NewSet[int]()
	for i := range n {
		v := at(i)
		if v == 0 {
			continue
		}
		if seen.Contains(v) {
			return true
		}
		seen.Add(v)
	}
	return false
}

// IsComplete reports whether no cell equals 0.
func (b *Board) IsComplete() bool {
	return b.CountEmpty() == 0
}

// IsSolved reports IsValid() && IsComplete().
func (b *Board) IsSolved() bool {
	return b.IsValid() && b.IsComplete()
}

// CountEmpty returns the number of cells still equal to 0.
func (b *Board) CountEmpty() int {
	count := 0
	for _, row := range b.cell {
		for _, v := range row {
			if v == 0 {
				count++
			}
		}
	}
	return count
}

// FillRatio returns the fraction of cells that are filled, in [0, 1].
func (b *Board) FillRatio() float64 {
	total := b.dim.N * b.dim.N
	if total == 0 {
		return 0
	}
	return float64(total-b.CountEmpty()) / float64(total)
}
