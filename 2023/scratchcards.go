package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jkrauss/aoc"
	"golang.org/x/exp/maps"
	"tailscale.com/util/set"
)

var errInvalidCard = errors.New("invalid card")

type card struct {
	ID      int
	Winning set.Set[int]
	Have    []int
}

// parseCard parses "Card 1: 41 48 83 | 83 86 6".
func parseCard(line string) (card, error) {
	rest, ok := strings.CutPrefix(line, "Card ")
	if !ok {
		return card{}, fmt.Errorf("%w: %q", errInvalidCard, line)
	}
	id, nums, ok := strings.Cut(rest, ":")
	if !ok {
		return card{}, fmt.Errorf("%w: missing ':' in %q", errInvalidCard, line)
	}
	winning, have, ok := strings.Cut(nums, "|")
	if !ok {
		return card{}, fmt.Errorf("%w: missing '|' in %q", errInvalidCard, line)
	}
	c := card{Winning: make(set.Set[int])}
	var err error
	if c.ID, err = strconv.Atoi(strings.TrimSpace(id)); err != nil {
		return card{}, fmt.Errorf("card id: %w", err)
	}
	w, err := aoc.Fields(winning)
	if err != nil {
		return card{}, fmt.Errorf("card %d: %w", c.ID, err)
	}
	for _, v := range w {
		c.Winning.Add(v)
	}
	if c.Have, err = aoc.Fields(have); err != nil {
		return card{}, fmt.Errorf("card %d: %w", c.ID, err)
	}
	return c, nil
}

func (c card) matches() int {
	n := 0
	for _, v := range c.Have {
		if c.Winning.Contains(v) {
			n++
		}
	}
	return n
}

// points is 1 for the first match, doubled for each one after.
func (c card) points() int {
	m := c.matches()
	if m == 0 {
		return 0
	}
	return aoc.Pow2(m - 1)
}

// copies returns how many of each card is held once every card has won
// copies of the cards that follow it. Cards past the last ID are never
// won.
func copies(cards []card) map[int]int {
	byID := make(map[int]card, len(cards))
	counts := make(map[int]int, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
		counts[c.ID] = 1
	}
	ids := maps.Keys(byID)
	slices.Sort(ids)
	for _, id := range ids {
		m := byID[id].matches()
		for j := 1; j <= m; j++ {
			if _, ok := counts[id+j]; ok {
				counts[id+j] += counts[id]
			}
		}
	}
	return counts
}
