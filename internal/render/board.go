// Package render draws a Board to the terminal with box-drawing borders and
// color. It is a presentation concern only: no grid, solver, or bench
// package imports it, and it never mutates what it is given.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/kpitt/sudokucore/internal/grid"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	solvedColor = color.New(color.Bold, color.FgHiWhite)
	emptyColor  = color.New(color.FgHiBlack)
)

// Board prints a colorized box-drawing grid for b, marking the cells listed
// in givens in the given-value color and all other filled cells in the
// solved-value color.
func Board(b *grid.Board, givens map[[2]int]bool) {
	dim := b.Dimension()
	cells := b.Grid()
	width := cellWidth(dim.N)

	top, mid, bot := borders(dim, width)
	color.HiWhite(top)
	for r := 0; r < dim.N; r++ {
		if r != 0 {
			if r%dim.R == 0 {
				color.HiWhite(mid)
			}
		}
		printRow(cells[r], dim, width, r, givens)
	}
	color.HiWhite(bot)
}

func printRow(row []int, dim grid.Dimension, width, r int, givens map[[2]int]bool) {
	var b strings.Builder
	b.WriteString("|")
	for c, v := range row {
		cell := fmt.Sprintf(" %s ", pad(v, width))
		if givens[[2]int{r, c}] {
			b.WriteString(givenColor.Sprint(cell))
		} else if v != 0 {
			b.WriteString(solvedColor.Sprint(cell))
		} else {
			b.WriteString(emptyColor.Sprint(cell))
		}
		if (c+1)%dim.C == 0 {
			b.WriteString("|")
		}
	}
	fmt.Println(b.String())
}

func pad(v, width int) string {
	if v == 0 {
		return strings.Repeat(".", width)
	}
	s := strconv.Itoa(v)
	return strings.Repeat(" ", width-len(s)) + s
}

func cellWidth(n int) int {
	return len(strconv.Itoa(n))
}

func borders(dim grid.Dimension, width int) (top, mid, bot string) {
	cellSpan := width + 2
	segment := strings.Repeat("-", dim.C*cellSpan)
	line := "+" + strings.Repeat(segment+"+", dim.R)
	return line, line, line
}
