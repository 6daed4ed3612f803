package roadmap

import "github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"

// Row caps of the boards.
const (
	BeadPlateRows   = 6
	BigRoadRows     = 6
	DerivedRoadRows = 6
	ThreeStarRows   = 3
)

// Gaps of the derived roads.
const (
	BigEyeGap    = 1
	SmallGap     = 2
	CockroachGap = 3
)

// Road names one of the six boards.
type Road string

const (
	RoadBeadPlate Road = "bead_plate"
	RoadBig       Road = "big_road"
	RoadBigEye    Road = "big_eye_road"
	RoadSmall     Road = "small_road"
	RoadCockroach Road = "cockroach_road"
	RoadThreeStar Road = "three_star"
)

// Position is a cell's grid coordinate plus its pixel offset on the board.
type Position struct {
	Col  int `json:"col"`
	Row  int `json:"row"`
	Left int `json:"left"`
	Top  int `json:"top"`
}

// BeadCell is one hand on the bead plate.
type BeadCell struct {
	Position
	Result baccarat.Result `json:"result_original"`
	Side   baccarat.Side   `json:"result"`
	Pair   baccarat.Pair   `json:"ext"`
}

// BigRoadCell is one banker or player win on the big road. TieCount is the
// number of ties dealt right after it, zero when there were none.
type BigRoadCell struct {
	Position
	Side     baccarat.Side   `json:"result"`
	Result   baccarat.Result `json:"result_original"`
	Pair     baccarat.Pair   `json:"ext"`
	TieCount int             `json:"tie_count,omitempty"`
}

// DerivedCell is a cell of the big eye, small or cockroach road.
type DerivedCell struct {
	Position
	Color baccarat.RoadColor `json:"color"`
}

// ThreeStarCell is a cell of the three-star road.
type ThreeStarCell struct {
	Position
	Color    baccarat.RoadColor `json:"color"`
	TieCount int                `json:"tie_count,omitempty"`
}

// CellLayout is the pixel geometry of one board.
type CellLayout struct {
	CellSize int `json:"cell_size" yaml:"cell_size"`
	Pad      int `json:"pad" yaml:"pad"`
}

// Layout holds the pixel geometry of every board.
type Layout map[Road]CellLayout

// DefaultLayout returns the stock board geometry: large cells for the bead
// plate, big road and three-star road, small ones for the derived roads.
func DefaultLayout() Layout {
	return Layout{
		RoadBeadPlate: {CellSize: 33, Pad: 5},
		RoadBig:       {CellSize: 22, Pad: 5},
		RoadBigEye:    {CellSize: 11, Pad: 2},
		RoadSmall:     {CellSize: 11, Pad: 2},
		RoadCockroach: {CellSize: 11, Pad: 2},
		RoadThreeStar: {CellSize: 22, Pad: 5},
	}
}

// Place returns the position of (col, row) on the given road.
func (l Layout) Place(road Road, col, row int) Position {
	g, ok := l[road]
	if !ok {
		g = DefaultLayout()[road]
	}
	return Position{
		Col:  col,
		Row:  row,
		Left: col*g.CellSize + g.Pad,
		Top:  row*g.CellSize + g.Pad,
	}
}

func (l Layout) placeBeads(cells []BeadCell) {
	for i := range cells {
		cells[i].Position = l.Place(RoadBeadPlate, cells[i].Col, cells[i].Row)
	}
}

func (l Layout) placeBigRoad(cells []BigRoadCell) {
	for i := range cells {
		cells[i].Position = l.Place(RoadBig, cells[i].Col, cells[i].Row)
	}
}

func (l Layout) placeDerived(road Road, cells []DerivedCell) {
	for i := range cells {
		cells[i].Position = l.Place(road, cells[i].Col, cells[i].Row)
	}
}

func (l Layout) placeThreeStar(cells []ThreeStarCell) {
	for i := range cells {
		cells[i].Position = l.Place(RoadThreeStar, cells[i].Col, cells[i].Row)
	}
}
