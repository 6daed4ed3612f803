package roadmap

import (
	"fmt"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

// PredictedCell is where a hypothetical next hand would land on a derived
// road and the colour it would get. Ready is false while the road has not
// started yet; Color then defaults to Red.
type PredictedCell struct {
	Position
	Color baccarat.RoadColor `json:"color"`
	Ready bool               `json:"ready"`
}

// Prediction answers "what if the next hand is won by Side".
type Prediction struct {
	Side      baccarat.Side `json:"side"`
	BeadPlate Position      `json:"bead_plate"`
	BigRoad   Position      `json:"big_road"`
	BigEye    PredictedCell `json:"big_eye_road"`
	Small     PredictedCell `json:"small_road"`
	Cockroach PredictedCell `json:"cockroach_road"`
}

// Predictions holds both hypotheses.
type Predictions struct {
	Banker Prediction `json:"banker"`
	Player Prediction `json:"player"`
}

// Predict appends one hand won by side, without pairs, to a copy of the
// outcomes and recomputes the roads. The caller's slice is never modified.
func (c *Calculator) Predict(outcomes []baccarat.Outcome, side baccarat.Side) (Prediction, error) {
	if side != baccarat.SideBanker && side != baccarat.SidePlayer {
		return Prediction{}, fmt.Errorf("%w: cannot predict side %v", baccarat.ErrInvalidOutcome, side)
	}
	if err := Validate(outcomes); err != nil {
		return Prediction{}, err
	}

	sim := make([]baccarat.Outcome, len(outcomes), len(outcomes)+1)
	copy(sim, outcomes)
	sim = append(sim, baccarat.Outcome{Key: NextKey(outcomes), Result: side.Result(), Pair: baccarat.NoPair})

	n := len(sim) - 1
	p := Prediction{
		Side:      side,
		BeadPlate: c.layout.Place(RoadBeadPlate, n/BeadPlateRows, n%BeadPlateRows),
	}

	raw := BuildBigRoadRaw(sim)
	last := len(raw.Columns) - 1
	c.attempt(RoadBig, func() error {
		points, _, err := Bend(raw.Runs(), BigRoadRows)
		if err != nil {
			return err
		}
		slot := points[last][len(raw.Columns[last])-1]
		p.BigRoad = c.layout.Place(RoadBig, slot.Col, slot.Row)
		return nil
	})

	for _, d := range DerivedRoads {
		cell := PredictedCell{Color: baccarat.Red}
		colors := BuildDerivedColors(raw, d.Gap)
		if len(colors) > 0 {
			cell.Color = colors[len(colors)-1]
			cell.Ready = true
			c.attempt(d.Road, func() error {
				road, err := layoutColors(colors, DerivedRoadRows)
				if err != nil {
					return err
				}
				cell.Position = c.layout.Place(d.Road, road.Last.Col, road.Last.Row)
				return nil
			})
		}
		switch d.Road {
		case RoadBigEye:
			p.BigEye = cell
		case RoadSmall:
			p.Small = cell
		case RoadCockroach:
			p.Cockroach = cell
		}
	}
	return p, nil
}

// Predictions runs Predict for a banker and for a player win.
func (c *Calculator) Predictions(outcomes []baccarat.Outcome) (Predictions, error) {
	banker, err := c.Predict(outcomes, baccarat.SideBanker)
	if err != nil {
		return Predictions{}, err
	}
	player, err := c.Predict(outcomes, baccarat.SidePlayer)
	if err != nil {
		return Predictions{}, err
	}
	return Predictions{Banker: banker, Player: player}, nil
}
