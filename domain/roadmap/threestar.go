package roadmap

import (
	"fmt"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

// BuildThreeStar classifies every big road cell, in deal order, through the
// sprite colour table and fills a board ThreeStarRows rows high.
func BuildThreeStar(raw RawBigRoad) ([]ThreeStarCell, error) {
	cells := make([]ThreeStarCell, 0, raw.Count())
	for i, src := range raw.Cells() {
		sprite, err := baccarat.Sprite(src.Result, src.Pair)
		if err != nil {
			return nil, err
		}
		color, ok := baccarat.SpriteColor(sprite)
		if !ok {
			return nil, fmt.Errorf("three-star: sprite %d has no colour", sprite)
		}
		cells = append(cells, ThreeStarCell{
			Position: Position{Col: i / ThreeStarRows, Row: i % ThreeStarRows},
			Color:    color,
			TieCount: src.TieCount,
		})
	}
	return cells, nil
}
