// Package loader reads a starting Board from plain text. It is the minimal
// mechanism for delivering a grid to the solver core, not part of the core
// itself.
package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/kpitt/sudokucore/internal/grid"
	"github.com/kpitt/sudokucore/internal/xerrors"
)

// ReadBoard reads N lines of N whitespace/comma-separated integer tokens
// from r and constructs a Board. A token of "0" or any non-numeric
// placeholder (e.g. ".", "_") is treated as an empty cell. dim may be the
// zero Dimension to infer N from the number of lines read.
func ReadBoard(r io.Reader, dim grid.Dimension) (*grid.Board, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, parseRow(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Wrap(xerrors.ErrInvalidDimension, "reading board: %v", err)
	}
	if len(rows) == 0 {
		return nil, xerrors.Wrap(xerrors.ErrInvalidDimension, "no input rows")
	}
	return grid.New(rows, dim)
}

func parseRow(line string) []int {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	// A line with no separators but multiple single-digit characters (the
	// classic one-char-per-cell 9-wide format) is split per-character instead.
	if len(fields) == 1 && len(fields[0]) > 1 {
		return parseDense(fields[0])
	}
	row := make([]int, len(fields))
	for i, f := range fields {
		row[i] = parseToken(f)
	}
	return row
}

func parseDense(s string) []int {
	row := make([]int, len(s))
	for i, ch := range s {
		if ch >= '1' && ch <= '9' {
			row[i] = int(ch - '0')
		} else {
			row[i] = 0
		}
	}
	return row
}

func parseToken(f string) int {
	v, err := strconv.Atoi(f)
	if err != nil {
		return 0 // non-numeric placeholder ("." , "_", ...) means empty
	}
	return v
}
