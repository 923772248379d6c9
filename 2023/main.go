package main

import (
	_ "embed"
	"errors"

	"github.com/jkrauss/aoc"
	"github.com/jkrauss/aoc/schematic"
	"golang.org/x/exp/maps"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += calibration(line, false)
	})
	return sum
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += calibration(line, true)
	})
	return sum
}

func (s solver) games() []game {
	var out []game
	s.ForLines(func(line string) {
		g, err := parseGame(line)
		if errors.Is(err, errNotGame) {
			return
		}
		out = append(out, aoc.MustGet(g, err))
	})
	return out
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	sum := 0
	for _, g := range s.games() {
		if g.minBag().fits(bagLimit) {
			sum += g.ID
		}
	}
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	for _, g := range s.games() {
		sum += g.minBag().power()
	}
	return sum
}

func (s solver) engine() *schematic.Schematic {
	sc := aoc.MustGet(schematic.Parse(string(s.Input())))
	s.Debugf("schematic %dx%d hash=%v", sc.Width(), sc.Height(), sc.Hash())
	return sc
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	return s.engine().PartNumberSum()
}

// want=467835
func (s solver) D3p2() any {
	return s.engine().GearRatioSum()
}

func (s solver) cards() []card {
	var out []card
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		out = append(out, aoc.MustGet(parseCard(line)))
	})
	return out
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() any {
	sum := 0
	for _, c := range s.cards() {
		sum += c.points()
	}
	return sum
}

// want=30
func (s solver) D4p2() any {
	return aoc.Sum(maps.Values(copies(s.cards()))...)
}
