package roadmap

import (
	"errors"
	"slices"
	"testing"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

func TestPredictions(t *testing.T) {
	calc := NewCalculator(WithLogger(quietLogger()))
	outcomes := hands(t, "BBBPPB")
	before := slices.Clone(outcomes)

	preds, err := calc.Predictions(outcomes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(outcomes, before) {
		t.Fatal("prediction modified its input")
	}

	tests := []struct {
		name      string
		got       Prediction
		bigRoad   Point
		bigEye    PredictedCell
		small     PredictedCell
		cockroach PredictedCell
	}{
		{
			name:      "banker",
			got:       preds.Banker,
			bigRoad:   pos(2, 1),
			bigEye:    PredictedCell{Position: calc.layout.Place(RoadBigEye, 2, 0), Color: baccarat.Red, Ready: true},
			small:     PredictedCell{Position: calc.layout.Place(RoadSmall, 0, 0), Color: baccarat.Red, Ready: true},
			cockroach: PredictedCell{Color: baccarat.Red},
		},
		{
			name:      "player",
			got:       preds.Player,
			bigRoad:   pos(3, 0),
			bigEye:    PredictedCell{Position: calc.layout.Place(RoadBigEye, 1, 1), Color: baccarat.Blue, Ready: true},
			small:     PredictedCell{Position: calc.layout.Place(RoadSmall, 0, 0), Color: baccarat.Blue, Ready: true},
			cockroach: PredictedCell{Color: baccarat.Red},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.BeadPlate.Col != 1 || tt.got.BeadPlate.Row != 0 {
				t.Errorf("bead at (%d,%d), want (1,0)", tt.got.BeadPlate.Col, tt.got.BeadPlate.Row)
			}
			if (Point{tt.got.BigRoad.Col, tt.got.BigRoad.Row}) != tt.bigRoad {
				t.Errorf("big road at %+v, want %v", tt.got.BigRoad, tt.bigRoad)
			}
			if tt.got.BigEye != tt.bigEye {
				t.Errorf("big eye %+v, want %+v", tt.got.BigEye, tt.bigEye)
			}
			if tt.got.Small != tt.small {
				t.Errorf("small %+v, want %+v", tt.got.Small, tt.small)
			}
			if tt.got.Cockroach != tt.cockroach {
				t.Errorf("cockroach %+v, want %+v", tt.got.Cockroach, tt.cockroach)
			}
		})
	}
}

func TestPredictEmptyShoe(t *testing.T) {
	p, err := NewCalculator(WithLogger(quietLogger())).Predict(nil, baccarat.SidePlayer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.BigRoad.Col != 0 || p.BigRoad.Row != 0 {
		t.Errorf("first hand must open the big road, got %+v", p.BigRoad)
	}
	for _, cell := range []PredictedCell{p.BigEye, p.Small, p.Cockroach} {
		if cell.Ready || cell.Color != baccarat.Red {
			t.Errorf("derived roads cannot start on one hand, got %+v", cell)
		}
	}
}

func TestPredictRejectsTie(t *testing.T) {
	_, err := NewCalculator(WithLogger(quietLogger())).Predict(hands(t, "BP"), baccarat.SideTie)
	if !errors.Is(err, baccarat.ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}
}

func TestPredictMatchesRecompute(t *testing.T) {
	calc := NewCalculator(WithLogger(quietLogger()))
	outcomes := hands(t, "BBPPPBPBBBBPPT")

	p, err := calc.Predict(outcomes, baccarat.SideBanker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next := append(slices.Clone(outcomes), baccarat.Outcome{Key: "k14", Result: baccarat.Banker})
	raw := BuildBigRoadRaw(next)
	for _, d := range DerivedRoads {
		colors := BuildDerivedColors(raw, d.Gap)
		var got PredictedCell
		switch d.Road {
		case RoadBigEye:
			got = p.BigEye
		case RoadSmall:
			got = p.Small
		case RoadCockroach:
			got = p.Cockroach
		}
		if got.Color != colors[len(colors)-1] {
			t.Errorf("%s predicted %v, recompute gives %v", d.Road, got.Color, colors[len(colors)-1])
		}
	}
}
