package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errNotGame = errors.New("not a game line")

type cubes struct {
	Red, Green, Blue int
}

var bagLimit = cubes{Red: 12, Green: 13, Blue: 14}

func (c cubes) fits(limit cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

func (c cubes) power() int {
	return c.Red * c.Green * c.Blue
}

type game struct {
	ID   int
	Sets []cubes
}

// minBag returns the fewest cubes of each colour the game could have
// been played with.
func (g game) minBag() cubes {
	var m cubes
	for _, s := range g.Sets {
		m.Red = max(m.Red, s.Red)
		m.Green = max(m.Green, s.Green)
		m.Blue = max(m.Blue, s.Blue)
	}
	return m
}

// parseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func parseGame(line string) (game, error) {
	rest, ok := strings.CutPrefix(line, "Game ")
	if !ok {
		return game{}, errNotGame
	}
	id, sets, ok := strings.Cut(rest, ":")
	if !ok {
		return game{}, fmt.Errorf("game %q: missing ':'", line)
	}
	g := game{}
	var err error
	if g.ID, err = strconv.Atoi(strings.TrimSpace(id)); err != nil {
		return game{}, fmt.Errorf("game id: %w", err)
	}
	for _, set := range strings.Split(sets, ";") {
		var c cubes
		for _, item := range strings.Split(set, ",") {
			f := strings.Fields(item)
			if len(f) != 2 {
				return game{}, fmt.Errorf("game %d: bad cube count %q", g.ID, item)
			}
			n, err := strconv.Atoi(f[0])
			if err != nil {
				return game{}, fmt.Errorf("game %d: %w", g.ID, err)
			}
			switch f[1] {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return game{}, fmt.Errorf("game %d: unknown color %q", g.ID, f[1])
			}
		}
		g.Sets = append(g.Sets, c)
	}
	return g, nil
}
