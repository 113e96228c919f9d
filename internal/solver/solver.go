// Package solver defines the polymorphic Solver contract and the factory
// that selects between the Backtracking and DancingLinks backends. Concrete
// implementations live in the backtrack and dlx subpackages; callers only
// ever see the Solver interface, never a concrete type.
package solver

import (
	"github.com/kpitt/sudokucore/internal/grid"
	"github.com/kpitt/sudokucore/internal/xerrors"
)

// Algorithm selects a concrete solver backend.
type Algorithm string

const (
	Backtracking Algorithm = "backtracking"
	DancingLinks Algorithm = "dancing-links"
)

// SolveResult is produced once per Solve call and never mutated after
// return.
type SolveResult struct {
	Solved       bool
	Solution     [][]int
	Algorithm    string
	TimeMS       float64
	Iterations   uint64
	Backtracks   uint64
	ErrorMessage string
}

// Solver is the contract every backend implements. All operations are pure
// with respect to the caller's Board: nothing mutates the Board passed in.
type Solver interface {
	// Solve finds one solution. On malformed or contradictory input it
	// returns a SolveResult with Solved=false and a diagnostic message.
	Solve(b *grid.Board) SolveResult

	// FindAllSolutions enumerates solutions in the solver's natural,
	// deterministic order. max == 0 means unbounded; otherwise the sequence
	// stops once max solutions have been collected. The returned slice is
	// finite and fully realized.
	FindAllSolutions(b *grid.Board, max int) []*grid.Board

	// HasUniqueSolution reports whether exactly one solution exists.
	HasUniqueSolution(b *grid.Board) bool

	// Name is a human identifier for the backend.
	Name() string
}

// Factory constructs a new Solver instance for the given algorithm. A fresh
// instance carries no state from any prior solve.
type Factory func() Solver

var registry = map[Algorithm]Factory{}

// Register associates an Algorithm name with a constructor. Called from the
// backtrack and dlx subpackages' init functions so this package never
// imports its own implementations directly, avoiding an import cycle while
// keeping the factory boundary in one place.
func Register(alg Algorithm, f Factory) {
	registry[alg] = f
}

// New returns a fresh Solver for the requested algorithm.
func New(alg Algorithm) (Solver, error) {
	f, ok := registry[alg]
	if !ok {
		return nil, xerrors.Wrap(xerrors.ErrUnknownAlgorithm, "solver: unknown algorithm %q", alg)
	}
	return f(), nil
}

// UniqueFromAll implements HasUniqueSolution in terms of FindAllSolutions:
// a puzzle has a unique solution exactly when searching for up to two
// solutions turns up only one. Both backends call this rather than
// duplicating the rule.
func UniqueFromAll(s Solver, b *grid.Board) bool {
	return len(s.FindAllSolutions(b, 2)) == 1
}
