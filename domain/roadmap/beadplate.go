package roadmap

import "github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"

// BuildBeadPlate places every outcome, ties included, top to bottom and then
// into the next column. Outcomes must already be validated.
func BuildBeadPlate(outcomes []baccarat.Outcome) []BeadCell {
	cells := make([]BeadCell, 0, len(outcomes))
	for i, o := range outcomes {
		cells = append(cells, BeadCell{
			Position: Position{Col: i / BeadPlateRows, Row: i % BeadPlateRows},
			Result:   o.Result,
			Side:     o.Side(),
			Pair:     o.Pair,
		})
	}
	return cells
}
