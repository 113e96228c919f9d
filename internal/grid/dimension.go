// Package grid implements the Board abstraction: an N×N Sudoku instance with
// R×C boxes, its construction and validity invariants, and nothing about how
// to solve it.
package grid

import (
	"fmt"
	"math"

	"github.com/kpitt/sudokucore/internal/xerrors"
)

// Dimension describes a board's size as the triple (N, R, C), with the
// invariant N = R*C. It is immutable after construction.
type Dimension struct {
	N, R, C int
}

// canonical holds the standard box-shape decomposition for the common board
// sizes. Any other square N falls back to the nearest integer factorization
// of sqrt(N).
var canonical = map[int]Dimension{
	9:  {N: 9, R: 3, C: 3},
	16: {N: 16, R: 4, C: 4},
	25: {N: 25, R: 5, C: 5},
}

// InferDimension chooses an (R, C) decomposition for N. It prefers the
// canonical table, and otherwise picks the factorization of N whose R is
// closest to sqrt(N) (ties favor the larger R).
func InferDimension(n int) (Dimension, error) {
	if n < 1 {
		return Dimension{}, xerrors.Wrap(xerrors.ErrInvalidDimension, "dimension must be >= 1, got %d", n)
	}
	if d, ok := canonical[n]; ok {
		return d, nil
	}
	root := int(math.Sqrt(float64(n)))
	for r := root; r >= 1; r-- {
		if n%r == 0 {
			return Dimension{N: n, R: r, C: n / r}, nil
		}
	}
	// n == 1 always satisfies r == 1 above, so this is unreachable.
	return Dimension{}, xerrors.Wrap(xerrors.ErrInvalidDimension, "cannot factor N=%d into integer R*C", n)
}

// NewDimension validates an explicit (N, R, C) triple.
func NewDimension(n, r, c int) (Dimension, error) {
	if n < 1 || r < 1 || c < 1 || r*c != n {
		return Dimension{}, xerrors.Wrap(xerrors.ErrInvalidDimension,
			"inconsistent dimension N=%d R=%d C=%d (require N = R*C)", n, r, c)
	}
	return Dimension{N: n, R: r, C: c}, nil
}

// Box returns the index of the box containing cell (row, col), numbered
// left-to-right, top-to-bottom, with box 0 at the top-left.
func (d Dimension) Box(row, col int) int {
	return (row/d.R)*d.R + col/d.C
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d (box %dx%d)", d.N, d.N, d.R, d.C)
}
