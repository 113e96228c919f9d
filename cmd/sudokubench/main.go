// Command sudokubench is the benchmark CLI front end: it drives
// internal/bench to compare both solver backends over single- and
// multi-worker runs and prints the resulting comparison table.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpitt/sudokucore/internal/bench"
	"github.com/kpitt/sudokucore/internal/grid"
	"github.com/kpitt/sudokucore/internal/loader"
	"github.com/kpitt/sudokucore/internal/render"
	"github.com/kpitt/sudokucore/internal/solver"

	_ "github.com/kpitt/sudokucore/internal/solver/backtrack"
	_ "github.com/kpitt/sudokucore/internal/solver/dlx"
)

func main() {
	runs := flag.Int("runs", 20, "timed runs per worker")
	warmup := flag.Int("warmup", 3, "discarded warmup runs per worker")
	workers := flag.Int("workers", 4, "worker count for the multi-worker mode")
	verbose := flag.Bool("verbose", false, "log harness progress")
	flag.Parse()

	b, err := loader.ReadBoard(os.Stdin, grid.Dimension{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := bench.Config{Runs: *runs, Warmup: *warmup, Workers: *workers, Verbose: *verbose}
	entries, err := bench.RunCompare([]solver.Algorithm{solver.Backtracking, solver.DancingLinks}, b, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	render.CompareTable(entries)
}
