// Package xerrors defines the typed error values the solver core returns to
// its caller. Every error that Board construction, Board.Get/Set, or the
// solver factory returns is one of these sentinel kinds, checked with
// errors.Is rather than string matching. Solve reports its own failures in
// SolveResult.ErrorMessage instead of as an error value.
package xerrors

import (
	"errors"
	"fmt"
)

// Sentinel kinds, checked with errors.Is at the call site.
var (
	// ErrInvalidDimension means the grid shape is inconsistent with its
	// declared dimension, or N cannot be decomposed into integer R*C.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrOutOfRange means a cell value fell outside [0, N].
	ErrOutOfRange = errors.New("value out of range")

	// ErrContradictoryInput means the given clues already violate a row,
	// column, or box constraint before any search began.
	ErrContradictoryInput = errors.New("contradictory input")

	// ErrResourceExhausted means arena or working-set allocation failed.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrLimitReached is informational: find_all_solutions stopped at max.
	// It is never returned as a failure; callers may ignore it.
	ErrLimitReached = errors.New("solution limit reached")

	// ErrUnknownAlgorithm means a caller requested a backend that never
	// registered itself with the solver factory.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Wrap attaches a kind sentinel to a descriptive message so that both
// errors.Is(err, kind) and the formatted message survive.
func Wrap(kind error, format string, args ...any) error {
	return &wrapped{kind: kind, msg: fmt.Sprintf(format, args...)}
}

type wrapped struct {
	kind error
	msg  string
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.kind }
