// Package schematic scans an engine schematic: a rectangular grid of
// digits, symbols and empty cells. Numbers that touch a symbol are part
// numbers; a gear ('*') touching exactly two numbers has a gear ratio.
package schematic

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jkrauss/aoc"
	"tailscale.com/util/deephash"
)

var (
	// ErrEmptyInput is returned by Parse when there is no grid to build.
	ErrEmptyInput = errors.New("schematic: empty input")

	// ErrMalformedRow matches any *RowError.
	ErrMalformedRow = errors.New("schematic: malformed row")
)

// RowError reports a row whose length differs from the grid width.
type RowError struct {
	Row  int // zero-based index among non-blank rows
	Got  int
	Want int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("schematic: row %d has %d cells; want %d", e.Row, e.Got, e.Want)
}

func (e *RowError) Is(target error) bool {
	return target == ErrMalformedRow
}

type Kind uint8

const (
	Empty Kind = iota
	Symbol
	Gear
	Digit
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Symbol:
		return "symbol"
	case Gear:
		return "gear"
	case Digit:
		return "digit"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell is one grid position. Digit is only meaningful when Kind is Digit.
type Cell struct {
	Kind  Kind
	Digit int
}

// IsSymbol reports whether c counts as a symbol for adjacency. Gears are
// symbols too.
func (c Cell) IsSymbol() bool {
	return c.Kind == Symbol || c.Kind == Gear
}

func (c Cell) IsGear() bool  { return c.Kind == Gear }
func (c Cell) IsDigit() bool { return c.Kind == Digit }

func (c Cell) String() string {
	switch c.Kind {
	case Empty:
		return "."
	case Gear:
		return "*"
	case Digit:
		return string(rune('0' + c.Digit))
	}
	return "#"
}

// CellOf maps an input rune to its cell.
func CellOf(r rune) Cell {
	switch {
	case r == '.':
		return Cell{Kind: Empty}
	case r == '*':
		return Cell{Kind: Gear}
	case aoc.IsDigit(r):
		return Cell{Kind: Digit, Digit: aoc.Digit(r)}
	}
	return Cell{Kind: Symbol}
}

// Schematic is an immutable grid of cells.
type Schematic struct {
	width, height int
	cells         aoc.Grid[Cell]
}

// Parse builds a Schematic from text with one row per non-blank line.
// Lines are trimmed of surrounding whitespace. The width is taken from
// the last row and every other row must match it.
func Parse(text string) (*Schematic, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	width := utf8.RuneCountInString(rows[len(rows)-1])
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, &RowError{Row: i, Got: n, Want: width}
		}
	}
	return &Schematic{
		width:  width,
		height: len(rows),
		cells:  aoc.ParseGrid(rows, CellOf),
	}, nil
}

func (s *Schematic) Width() int  { return s.width }
func (s *Schematic) Height() int { return s.height }

func (s *Schematic) At(p aoc.Pt) Cell { return s.cells.At(p) }

// AtOk returns the cell at p, or false if p is off the grid.
func (s *Schematic) AtOk(p aoc.Pt) (Cell, bool) { return s.cells.AtOk(p) }

// Hash returns a hash of the cell contents.
func (s *Schematic) Hash() deephash.Sum { return s.cells.Hash() }

func (s *Schematic) String() string {
	var sb strings.Builder
	for _, row := range s.cells {
		for _, c := range row {
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
