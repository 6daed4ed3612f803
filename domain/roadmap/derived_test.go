package roadmap

import (
	"slices"
	"testing"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

func TestBuildDerivedColors(t *testing.T) {
	tests := []struct {
		name      string
		seq       string
		bigEye    string
		small     string
		cockroach string
	}{
		{"empty", "", "", "", ""},
		{"single column", "BBBB", "", "", ""},
		{"three columns", "BBBPPB", "RB", "", ""},
		{"chop", "BPBP", "RR", "R", ""},
		{"ties are ignored", "BTBBTPPTB", "RB", "", ""},
		{"second column opens the big eye", "BBPBB", "BB", "R", ""},
		{"mixed shoe", "BBPPPBPBBBBPP", "RBBBRBRRBR", "BBBRRBB", "BRRBBB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := BuildBigRoadRaw(hands(t, tt.seq))
			if got := colorString(BuildDerivedColors(raw, BigEyeGap)); got != tt.bigEye {
				t.Errorf("big eye = %q, want %q", got, tt.bigEye)
			}
			if got := colorString(BuildDerivedColors(raw, SmallGap)); got != tt.small {
				t.Errorf("small = %q, want %q", got, tt.small)
			}
			if got := colorString(BuildDerivedColors(raw, CockroachGap)); got != tt.cockroach {
				t.Errorf("cockroach = %q, want %q", got, tt.cockroach)
			}
		})
	}
}

func TestColorRuns(t *testing.T) {
	r, b := baccarat.Red, baccarat.Blue
	got := ColorRuns([]baccarat.RoadColor{r, b, b, b, r, b, r, r, b, r})
	if !slices.Equal(got, []int{1, 3, 1, 1, 2, 1, 1}) {
		t.Errorf("unexpected runs %v", got)
	}
	if len(ColorRuns(nil)) != 0 {
		t.Error("no colours must give no runs")
	}
}

func TestBuildDerivedRoadLayout(t *testing.T) {
	raw := BuildBigRoadRaw(hands(t, "BBPPPBPBBBBPP"))
	road, err := BuildDerivedRoad(raw, BigEyeGap, DerivedRoadRows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Point{
		pos(0, 0),
		pos(1, 0), pos(1, 1), pos(1, 2),
		pos(2, 0),
		pos(3, 0),
		pos(4, 0), pos(4, 1),
		pos(5, 0),
		pos(6, 0),
	}
	if got := derivedSlots(road.Cells); !slices.Equal(got, want) {
		t.Fatalf("slots %v, want %v", got, want)
	}
	if road.Cells[1].Color != baccarat.Blue || road.Cells[0].Color != baccarat.Red {
		t.Errorf("unexpected colours %+v", road.Cells[:2])
	}
	if road.Last != pos(6, 0) {
		t.Errorf("last slot %v, want (6,0)", road.Last)
	}
}

func TestBuildDerivedRoadTurns(t *testing.T) {
	// a player streak of 9 beside a banker streak of 10 keeps the big eye red for 8 cells
	raw := BuildBigRoadRaw(streaks(t, 10, 9))
	colors := BuildDerivedColors(raw, BigEyeGap)
	if got := colorString(colors); got != "RRRRRRRR" {
		t.Fatalf("unexpected colours %q", got)
	}
	road, err := BuildDerivedRoad(raw, BigEyeGap, DerivedRoadRows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if road.Last != pos(2, 5) {
		t.Errorf("8th cell at %v, want (2,5)", road.Last)
	}
	if !slices.Equal(road.BendPoints, []int{5}) {
		t.Errorf("bend points %v", road.BendPoints)
	}
}

func TestBuildDerivedColorsInvalidGap(t *testing.T) {
	raw := BuildBigRoadRaw(hands(t, "BPBPBP"))
	if got := BuildDerivedColors(raw, 0); len(got) != 0 {
		t.Errorf("gap 0 must yield nothing, got %v", got)
	}
}
