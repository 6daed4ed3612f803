package roadmap

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

// Column is one unbroken streak of the big road, top cell first.
type Column []BigRoadCell

// RawBigRoad is the big road before turning: one column per streak, rows
// growing without limit. Derived and three-star roads read this grid.
type RawBigRoad struct {
	Columns []Column
	// DroppedTies counts ties dealt before the first banker or player win.
	DroppedTies int
}

// BuildBigRoadRaw run-length encodes the outcomes into streak columns.
// A tie adds one to the tie count of the latest cell and never opens a cell
// of its own; ties before the first win have nowhere to go and are dropped.
// Outcomes must already be validated.
func BuildBigRoadRaw(outcomes []baccarat.Outcome) RawBigRoad {
	var raw RawBigRoad
	var last baccarat.Side
	for _, o := range outcomes {
		side := o.Side()
		if side == baccarat.SideTie {
			if len(raw.Columns) == 0 {
				raw.DroppedTies++
				continue
			}
			col := raw.Columns[len(raw.Columns)-1]
			col[len(col)-1].TieCount++
			continue
		}
		if side != last {
			raw.Columns = append(raw.Columns, nil)
		}
		c := len(raw.Columns) - 1
		raw.Columns[c] = append(raw.Columns[c], BigRoadCell{
			Position: Position{Col: c, Row: len(raw.Columns[c])},
			Side:     side,
			Result:   o.Result,
			Pair:     o.Pair,
		})
		last = side
	}
	return raw
}

// Len returns the number of cells in column col, zero when it does not exist.
func (r RawBigRoad) Len(col int) int {
	if col < 0 || col >= len(r.Columns) {
		return 0
	}
	return len(r.Columns[col])
}

// Has reports whether the raw grid holds a cell at (col, row).
func (r RawBigRoad) Has(col, row int) bool {
	return row >= 0 && row < r.Len(col)
}

// Runs returns the length of every column.
func (r RawBigRoad) Runs() []int {
	runs := make([]int, len(r.Columns))
	for i, c := range r.Columns {
		runs[i] = len(c)
	}
	return runs
}

// Cells returns every cell in deal order.
func (r RawBigRoad) Cells() []BigRoadCell {
	var cells []BigRoadCell
	for _, c := range r.Columns {
		cells = append(cells, c...)
	}
	return cells
}

// Count returns the number of cells.
func (r RawBigRoad) Count() int {
	n := 0
	for _, c := range r.Columns {
		n += len(c)
	}
	return n
}

// String renders the grid one column per group, e.g. "BBB|PP(1)|B".
func (r RawBigRoad) String() string {
	var sb strings.Builder
	for i, c := range r.Columns {
		if i > 0 {
			sb.WriteByte('|')
		}
		for _, cell := range c {
			sb.WriteString(cell.Side.String())
			if cell.TieCount > 0 {
				fmt.Fprintf(&sb, "(%d)", cell.TieCount)
			}
		}
	}
	return sb.String()
}
