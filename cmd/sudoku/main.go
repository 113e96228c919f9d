// Command sudoku is the CLI front end: it wires the loader, the solver
// factory, and the renderer together. None of this wiring is part of the
// core library.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/kpitt/sudokucore/internal/grid"
	"github.com/kpitt/sudokucore/internal/loader"
	"github.com/kpitt/sudokucore/internal/render"
	"github.com/kpitt/sudokucore/internal/solver"

	_ "github.com/kpitt/sudokucore/internal/solver/backtrack"
	_ "github.com/kpitt/sudokucore/internal/solver/dlx"
)

func main() {
	algFlag := flag.String("algorithm", "dancing-links", "solver backend: backtracking | dancing-links")
	allFlag := flag.Int("all", 0, "enumerate up to N solutions instead of finding one (0 disables)")
	flag.Parse()

	if isStdinTTY() {
		fmt.Println("Enter the initial board as N lines of N space-separated integers (0 for empty).")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	b, err := loader.ReadBoard(os.Stdin, grid.Dimension{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	givens := givenSet(b)

	alg := solver.Algorithm(*algFlag)
	s, err := solver.New(alg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *allFlag > 0 {
		solutions := s.FindAllSolutions(b, *allFlag)
		fmt.Printf("found %d solution(s) (algorithm=%s)\n", len(solutions), s.Name())
		for i, sol := range solutions {
			fmt.Printf("\nSolution %d:\n", i+1)
			render.Board(sol, givens)
		}
		return
	}

	result := s.Solve(b)
	if !result.Solved {
		fmt.Fprintf(os.Stderr, "not solved: %s\n", result.ErrorMessage)
		os.Exit(1)
	}

	solved, err := grid.New(result.Solution, b.Dimension())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("solved with %s in %.3fms (iterations=%d backtracks=%d)\n",
		result.Algorithm, result.TimeMS, result.Iterations, result.Backtracks)
	render.Board(solved, givens)
}

func givenSet(b *grid.Board) map[[2]int]bool {
	dim := b.Dimension()
	g := b.Grid()
	out := make(map[[2]int]bool)
	for r := 0; r < dim.N; r++ {
		for c := 0; c < dim.N; c++ {
			if g[r][c] != 0 {
				out[[2]int{r, c}] = true
			}
		}
	}
	return out
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
