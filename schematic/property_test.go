package schematic

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Dots are repeated so generated grids are mostly empty.
const alphabet = ".....*#$0123456789"

const maxSide = 8

func gridText(w, h int, cells []int) string {
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.WriteByte(alphabet[cells[y*w+x]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type run struct {
	row, start, end, value int
}

// runs finds digit runs with plain string scanning, independent of the
// grid code under test.
func runs(rows []string) []run {
	var out []run
	for y, row := range rows {
		for x := 0; x < len(row); {
			if row[x] < '0' || row[x] > '9' {
				x++
				continue
			}
			r := run{row: y, start: x}
			for x < len(row) && row[x] >= '0' && row[x] <= '9' {
				r.value = r.value*10 + int(row[x]-'0')
				x++
			}
			r.end = x - 1
			out = append(out, r)
		}
	}
	return out
}

func isSym(b byte) bool {
	return b != '.' && (b < '0' || b > '9')
}

// oracle computes both sums by checking the bounding box of each number
// and interval overlap for gears.
func oracle(text string) (parts, ratios int) {
	rows := strings.Fields(text)
	all := runs(rows)
	for _, r := range all {
	box:
		for y := r.row - 1; y <= r.row+1; y++ {
			for x := r.start - 1; x <= r.end+1; x++ {
				if y < 0 || y >= len(rows) || x < 0 || x >= len(rows[y]) {
					continue
				}
				if isSym(rows[y][x]) {
					parts += r.value
					break box
				}
			}
		}
	}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] != '*' {
				continue
			}
			var adj []int
			for _, r := range all {
				if r.row >= y-1 && r.row <= y+1 && r.start <= x+1 && r.end >= x-1 {
					adj = append(adj, r.value)
				}
			}
			if len(adj) == 2 {
				ratios += adj[0] * adj[1]
			}
		}
	}
	return parts, ratios
}

func TestScanProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2023)
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	grids := []gopter.Gen{
		gen.IntRange(1, maxSide),
		gen.IntRange(1, maxSide),
		gen.SliceOfN(maxSide*maxSide, gen.IntRange(0, len(alphabet)-1)),
	}
	valid := func(w, h int, cells []int) bool {
		return w >= 1 && h >= 1 && w <= maxSide && h <= maxSide && len(cells) >= w*h
	}

	properties.Property("part number sum matches brute force", prop.ForAll(
		func(w, h int, cells []int) bool {
			if !valid(w, h, cells) {
				return true
			}
			text := gridText(w, h, cells)
			s, err := Parse(text)
			if err != nil {
				return false
			}
			want, _ := oracle(text)
			return s.PartNumberSum() == want
		},
		grids...,
	))

	properties.Property("gear ratio sum matches brute force", prop.ForAll(
		func(w, h int, cells []int) bool {
			if !valid(w, h, cells) {
				return true
			}
			text := gridText(w, h, cells)
			s, err := Parse(text)
			if err != nil {
				return false
			}
			_, want := oracle(text)
			return s.GearRatioSum() == want
		},
		grids...,
	))

	properties.Property("gears list distinct spans", prop.ForAll(
		func(w, h int, cells []int) bool {
			if !valid(w, h, cells) {
				return true
			}
			s, err := Parse(gridText(w, h, cells))
			if err != nil {
				return false
			}
			for _, g := range s.Gears() {
				seen := map[Span]bool{}
				for _, n := range g.Numbers {
					if seen[n.Span] {
						return false
					}
					seen[n.Span] = true
				}
			}
			return true
		},
		grids...,
	))

	properties.Property("scans are repeatable", prop.ForAll(
		func(w, h int, cells []int) bool {
			if !valid(w, h, cells) {
				return true
			}
			s, err := Parse(gridText(w, h, cells))
			if err != nil {
				return false
			}
			h0 := s.Hash()
			p1, g1 := s.PartNumberSum(), s.GearRatioSum()
			p2, g2 := s.PartNumberSum(), s.GearRatioSum()
			return p1 == p2 && g1 == g2 && s.Hash() == h0
		},
		grids...,
	))

	properties.TestingRun(t)
}
