package schematic

import (
	"github.com/jkrauss/aoc"
	"tailscale.com/util/set"
)

// Span identifies a number by its row and inclusive column range.
type Span struct {
	Row, Start, End int
}

// Number is a maximal horizontal run of digits.
type Number struct {
	Span
	Value int // wraps for runs longer than 18 digits
}

// GearMatch is a gear cell and the distinct numbers adjacent to it.
type GearMatch struct {
	Pt      aoc.Pt
	Numbers []Number
}

// Ratio returns the product of the gear's numbers if it touches exactly
// two of them.
func (g GearMatch) Ratio() (int, bool) {
	if len(g.Numbers) != 2 {
		return 0, false
	}
	return aoc.Product(g.Numbers[0].Value, g.Numbers[1].Value), true
}

// Numbers returns every number in the grid, row by row, left to right.
func (s *Schematic) Numbers() []Number {
	var out []Number
	for y, row := range s.cells {
		for x := 0; x < len(row); x++ {
			if !row[x].IsDigit() {
				continue
			}
			n, _ := s.NumberAt(aoc.Pt{X: x, Y: y})
			out = append(out, n)
			x = n.End
		}
	}
	return out
}

// NumberAt returns the number containing the digit at p. It reports false
// if p is off the grid or not a digit.
func (s *Schematic) NumberAt(p aoc.Pt) (Number, bool) {
	if c, ok := s.AtOk(p); !ok || !c.IsDigit() {
		return Number{}, false
	}
	row := s.cells[p.Y]
	start, end := p.X, p.X
	for start > 0 && row[start-1].IsDigit() {
		start--
	}
	for end < s.width-1 && row[end+1].IsDigit() {
		end++
	}
	n := Number{Span: Span{Row: p.Y, Start: start, End: end}}
	for x := start; x <= end; x++ {
		n.Value = n.Value*10 + row[x].Digit
	}
	return n, true
}

// IsPart reports whether any cell around n is a symbol.
func (s *Schematic) IsPart(n Number) bool {
	found := false
	for x := n.Start; x <= n.End && !found; x++ {
		aoc.Pt{X: x, Y: n.Row}.ForNeighbors(func(p aoc.Pt) bool {
			if c, ok := s.AtOk(p); ok && c.IsSymbol() {
				found = true
			}
			return !found
		})
	}
	return found
}

// PartNumbers returns the values of all numbers adjacent to a symbol.
func (s *Schematic) PartNumbers() []int {
	var out []int
	for _, n := range s.Numbers() {
		if s.IsPart(n) {
			out = append(out, n.Value)
		}
	}
	return out
}

func (s *Schematic) PartNumberSum() int {
	return aoc.Sum(s.PartNumbers()...)
}

// Gears returns every gear cell in row-major order along with the
// distinct numbers touching it. A number touching the gear through
// several of its digits is listed once.
func (s *Schematic) Gears() []GearMatch {
	var out []GearMatch
	s.cells.ForEach(func(p aoc.Pt, c Cell) {
		if !c.IsGear() {
			return
		}
		g := GearMatch{Pt: p}
		seen := make(set.Set[Span])
		p.ForNeighbors(func(np aoc.Pt) bool {
			n, ok := s.NumberAt(np)
			if !ok || seen.Contains(n.Span) {
				return true
			}
			seen.Add(n.Span)
			g.Numbers = append(g.Numbers, n)
			return true
		})
		out = append(out, g)
	})
	return out
}

// GearRatios returns the ratio of every gear touching exactly two numbers.
func (s *Schematic) GearRatios() []int {
	var out []int
	for _, g := range s.Gears() {
		if r, ok := g.Ratio(); ok {
			out = append(out, r)
		}
	}
	return out
}

func (s *Schematic) GearRatioSum() int {
	return aoc.Sum(s.GearRatios()...)
}
