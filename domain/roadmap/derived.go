package roadmap

import (
	"fmt"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

// DerivedRoads lists the big eye, small and cockroach roads with their gaps.
var DerivedRoads = []struct {
	Road Road
	Gap  int
}{
	{RoadBigEye, BigEyeGap},
	{RoadSmall, SmallGap},
	{RoadCockroach, CockroachGap},
}

// BuildDerivedColors reads the raw big road with the given gap and returns
// one colour per classified cell, in reading order.
//
// Reading starts at (gap, 1), or at (gap+1, 0) when that cell is missing.
// A cell opening a column is red when the two columns before it, gap apart,
// have the same length. Any other cell is compared with column col-gap: it is
// blue only when that column ends exactly one row above it.
func BuildDerivedColors(raw RawBigRoad, gap int) []baccarat.RoadColor {
	var colors []baccarat.RoadColor
	if gap < 1 {
		return colors
	}
	for col := gap; col < len(raw.Columns); col++ {
		for row := range raw.Columns[col] {
			if col == gap && row == 0 {
				continue
			}
			colors = append(colors, derivedColor(raw, col, row, gap))
		}
	}
	return colors
}

func derivedColor(raw RawBigRoad, col, row, gap int) baccarat.RoadColor {
	if row == 0 {
		near, far := col-1, col-1-gap
		if near < 0 || far < 0 {
			return baccarat.Red
		}
		if raw.Len(near) == raw.Len(far) {
			return baccarat.Red
		}
		return baccarat.Blue
	}
	ref := col - gap
	if ref < 0 {
		return baccarat.Red
	}
	if raw.Has(ref, row) {
		return baccarat.Red
	}
	if !raw.Has(ref, row-1) {
		return baccarat.Red
	}
	return baccarat.Blue
}

// ColorRuns splits a colour sequence into streak lengths.
func ColorRuns(colors []baccarat.RoadColor) []int {
	var runs []int
	for i, c := range colors {
		if i == 0 || c != colors[i-1] {
			runs = append(runs, 0)
		}
		runs[len(runs)-1]++
	}
	return runs
}

// DerivedRoad is a derived road after turning.
type DerivedRoad struct {
	Cells      []DerivedCell
	BendPoints []int
	// Last is the slot of the most recent colour, valid when Cells is not empty.
	Last Point
}

// BuildDerivedRoad computes the derived road with the given gap from the raw
// big road, lays its colours out in streak columns and bends them onto a
// board maxRow rows high.
func BuildDerivedRoad(raw RawBigRoad, gap, maxRow int) (DerivedRoad, error) {
	colors := BuildDerivedColors(raw, gap)
	return layoutColors(colors, maxRow)
}

func layoutColors(colors []baccarat.RoadColor, maxRow int) (DerivedRoad, error) {
	runs := ColorRuns(colors)
	points, bends, err := Bend(runs, maxRow)
	if err != nil {
		return DerivedRoad{}, fmt.Errorf("derived road: %w", err)
	}
	road := DerivedRoad{Cells: make([]DerivedCell, 0, len(colors)), BendPoints: bends}
	i := 0
	for c, n := range runs {
		for j := 0; j < n; j++ {
			p := points[c][j]
			road.Cells = append(road.Cells, DerivedCell{
				Position: Position{Col: p.Col, Row: p.Row},
				Color:    colors[i],
			})
			road.Last = p
			i++
		}
	}
	sortByGrid(road.Cells, func(c DerivedCell) Position { return c.Position })
	return road, nil
}
