package roadmap

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrBendOutOfBounds is returned when earlier tails leave a column no row to turn on.
	ErrBendOutOfBounds = errors.New("bend point out of bounds")
	// ErrCellCollision is returned when a cell would land on an occupied slot.
	ErrCellCollision = errors.New("cell collision")
)

// Point is a grid slot.
type Point struct {
	Col int
	Row int
}

// Bend lays out columns of the given run lengths on a board maxRow rows high.
//
// Columns are placed left to right. A column grows down to its bend point,
// which starts at maxRow-1 and drops to j-1 when slot (col, j), j <= bend
// point, already holds the tail of an earlier column. From the bend point on
// the streak continues to the right: cell j lands on (col + j - bend, bend).
// Earlier columns are only read.
//
// It returns the final slot of every cell (points[col][j]) and the bend point
// of every column.
func Bend(runs []int, maxRow int) ([][]Point, []int, error) {
	if maxRow < 1 {
		return nil, nil, fmt.Errorf("%w: max row %d", ErrBendOutOfBounds, maxRow)
	}
	occupied := make(map[Point]bool)
	points := make([][]Point, len(runs))
	bends := make([]int, len(runs))

	for col, n := range runs {
		bend := maxRow - 1
		points[col] = make([]Point, 0, n)
		for j := 0; j < n; j++ {
			if j <= bend && occupied[Point{col, j}] {
				bend = j - 1
			}
			if bend < 0 {
				return nil, nil, fmt.Errorf("%w: column %d has no free row", ErrBendOutOfBounds, col)
			}
			p := Point{Col: col, Row: j}
			if j >= bend {
				p = Point{Col: col + j - bend, Row: bend}
			}
			if occupied[p] {
				return nil, nil, fmt.Errorf("%w: column %d cell %d at (%d,%d)", ErrCellCollision, col, j, p.Col, p.Row)
			}
			occupied[p] = true
			points[col] = append(points[col], p)
		}
		bends[col] = bend
	}
	return points, bends, nil
}

// BigRoad is the big road after turning.
type BigRoad struct {
	Cells []BigRoadCell
	// BendPoints holds the row each column turned on.
	BendPoints []int
	// Points maps raw cell (col, j) to its final slot.
	Points [][]Point
}

// ApplyTurning bends the raw big road onto a board maxRow rows high. Cells
// are returned ordered by column, then row.
func ApplyTurning(raw RawBigRoad, maxRow int) (BigRoad, error) {
	points, bends, err := Bend(raw.Runs(), maxRow)
	if err != nil {
		return BigRoad{}, err
	}
	cells := make([]BigRoadCell, 0, raw.Count())
	for c, column := range raw.Columns {
		for j, cell := range column {
			cell.Position = Position{Col: points[c][j].Col, Row: points[c][j].Row}
			cells = append(cells, cell)
		}
	}
	sortByGrid(cells, func(c BigRoadCell) Position { return c.Position })
	return BigRoad{Cells: cells, BendPoints: bends, Points: points}, nil
}

func sortByGrid[T any](cells []T, pos func(T) Position) {
	slices.SortStableFunc(cells, func(a, b T) int {
		pa, pb := pos(a), pos(b)
		if c := cmp.Compare(pa.Col, pb.Col); c != 0 {
			return c
		}
		return cmp.Compare(pa.Row, pb.Row)
	})
}
