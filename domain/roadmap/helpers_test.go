package roadmap

import (
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

// hands builds keyed outcomes from a compact notation:
// B banker, P player, T tie, 6 lucky 6, 7 dragon 7, 8 panda 8, s small tiger, g big tiger.
func hands(t *testing.T, seq string) []baccarat.Outcome {
	t.Helper()
	codes := map[rune]baccarat.Result{
		'B': baccarat.Banker,
		'P': baccarat.Player,
		'T': baccarat.Tie,
		'6': baccarat.Lucky6,
		'7': baccarat.DragonSeven,
		'8': baccarat.PandaEight,
		's': baccarat.SmallTiger,
		'g': baccarat.BigTiger,
	}
	var out []baccarat.Outcome
	for _, r := range seq {
		if r == ' ' {
			continue
		}
		code, ok := codes[r]
		if !ok {
			t.Fatalf("unknown hand %q in %q", r, seq)
		}
		out = append(out, baccarat.Outcome{Key: "k" + strconv.Itoa(len(out)), Result: code})
	}
	return out
}

// streaks builds alternating banker/player streaks of the given lengths.
func streaks(t *testing.T, runs ...int) []baccarat.Outcome {
	t.Helper()
	seq := ""
	for i, n := range runs {
		side := "B"
		if i%2 == 1 {
			side = "P"
		}
		for j := 0; j < n; j++ {
			seq += side
		}
	}
	return hands(t, seq)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func colorString(colors []baccarat.RoadColor) string {
	s := ""
	for _, c := range colors {
		switch c {
		case baccarat.Red:
			s += "R"
		case baccarat.Blue:
			s += "B"
		default:
			s += "?"
		}
	}
	return s
}

func pos(col, row int) Point {
	return Point{Col: col, Row: row}
}

func derivedSlots(cells []DerivedCell) []Point {
	out := make([]Point, len(cells))
	for i, c := range cells {
		out[i] = Point{c.Col, c.Row}
	}
	return out
}
