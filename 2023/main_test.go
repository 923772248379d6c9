package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibration(t *testing.T) {
	tests := []struct {
		line  string
		words bool
		want  int
	}{
		{"1abc2", false, 12},
		{"pqr3stu8vwx", false, 38},
		{"a1b2c3d4e5f", false, 15},
		{"treb7uchet", false, 77},
		{"nodigits", false, 0},
		{"two1nine", false, 11},
		{"two1nine", true, 29},
		{"eightwothree", true, 83},
		{"abcone2threexyz", true, 13},
		{"xtwone3four", true, 24},
		{"4nineeightseven2", true, 42},
		{"zoneight234", true, 14},
		{"7pqrstsixteen", true, 76},
		{"eightwo", true, 82},
		{"oneight", true, 18},
		{"", true, 0},
	}
	for _, tt := range tests {
		if got := calibration(tt.line, tt.words); got != tt.want {
			t.Errorf("calibration(%q, %v) = %d, want %d", tt.line, tt.words, got, tt.want)
		}
	}
}

func TestParseGame(t *testing.T) {
	tests := []struct {
		line string
		bag  cubes
		fits bool
	}{
		{"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green", cubes{4, 2, 6}, true},
		{"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue", cubes{1, 3, 4}, true},
		{"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red", cubes{20, 13, 6}, false},
		{"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red", cubes{14, 3, 15}, false},
		{"Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green", cubes{6, 3, 2}, true},
	}
	for i, tt := range tests {
		g, err := parseGame(tt.line)
		require.NoError(t, err)
		assert.Equal(t, i+1, g.ID)
		assert.Equal(t, tt.bag, g.minBag(), tt.line)
		assert.Equal(t, tt.fits, g.minBag().fits(bagLimit), tt.line)
	}

	g, err := parseGame("Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green")
	require.NoError(t, err)
	assert.Equal(t, 36, g.minBag().power())
}

func TestParseGameErrors(t *testing.T) {
	_, err := parseGame("")
	assert.ErrorIs(t, err, errNotGame)

	for _, line := range []string{
		"Game 1 3 blue",
		"Game x: 3 blue",
		"Game 1: 3 purple",
		"Game 1: blue",
		"Game 1: three blue",
	} {
		_, err := parseGame(line)
		assert.Error(t, err, line)
		assert.NotErrorIs(t, err, errNotGame, line)
	}
}

const cardsSample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11`

func parseCards(t *testing.T, text string) []card {
	t.Helper()
	var out []card
	for _, line := range strings.Split(text, "\n") {
		c, err := parseCard(line)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestCardPoints(t *testing.T) {
	cards := parseCards(t, cardsSample)
	want := map[int]int{1: 8, 2: 2, 3: 2, 4: 1, 5: 0, 6: 0}
	for _, c := range cards {
		assert.Equal(t, want[c.ID], c.points(), "card %d", c.ID)
	}
	assert.Equal(t, 4, cards[0].matches())
}

func TestCopies(t *testing.T) {
	got := copies(parseCards(t, cardsSample))
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 4, 4: 8, 5: 14, 6: 1}, got)
}

func TestParseCardErrors(t *testing.T) {
	for _, line := range []string{
		"Game 1: 1 | 2",
		"Card 1 1 2 | 3",
		"Card 1: 1 2 3",
		"Card x: 1 | 2",
		"Card 1: a | 2",
		"Card 1: 1 | b",
	} {
		_, err := parseCard(line)
		assert.Error(t, err, line)
	}
	_, err := parseCard("Game 1: 1 | 2")
	assert.ErrorIs(t, err, errInvalidCard)
}
