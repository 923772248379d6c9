package main

import (
	"strings"

	"github.com/jkrauss/aoc"
)

var digitWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// calibration returns the two digit value formed by the first and last
// digit in line, or 0 if there is none. With words set, spelled out
// digits count too; they may overlap ("eightwo" is 8 then 2).
func calibration(line string, words bool) int {
	first, last := -1, -1
	for i := range line {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0
	}
	return first*10 + last
}

func digitAt(s string, i int, words bool) (int, bool) {
	if r := rune(s[i]); aoc.IsDigit(r) {
		return aoc.Digit(r), true
	}
	if !words {
		return 0, false
	}
	for j, w := range digitWords {
		if strings.HasPrefix(s[i:], w) {
			return j + 1, true
		}
	}
	return 0, false
}
