package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/baccarat-roadmap/deck"
	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
	"github.com/luca-patrignani/baccarat-roadmap/domain/roadmap"
)

const emptySlot = "·"

type gridCell struct {
	col, row int
	text     string
}

// grid lays cells out as rows of text. Every slot is one cell wide, so
// texts should have the same printable width.
func grid(cells []gridCell, rows int, width int) string {
	cols := 0
	for _, c := range cells {
		cols = max(cols, c.col+1)
	}
	if cols == 0 {
		return ""
	}
	slots := make([][]string, rows)
	for r := range slots {
		slots[r] = make([]string, cols)
		for c := range slots[r] {
			slots[r][c] = strings.Repeat(" ", width-1) + emptySlot
		}
	}
	for _, c := range cells {
		if c.row < 0 || c.row >= rows || c.col < 0 {
			continue
		}
		slots[c.row][c.col] = c.text
	}
	lines := make([]string, rows)
	for r := range slots {
		lines[r] = strings.Join(slots[r], " ")
	}
	return strings.Join(lines, "\n")
}

func sideText(s baccarat.Side) string {
	switch s {
	case baccarat.SideBanker:
		return pterm.LightRed("B")
	case baccarat.SidePlayer:
		return pterm.LightBlue("P")
	default:
		return pterm.LightGreen("T")
	}
}

func colorDot(c baccarat.RoadColor) string {
	if c == baccarat.Blue {
		return pterm.LightBlue("●")
	}
	return pterm.LightRed("●")
}

func pairMark(p baccarat.Pair) string {
	switch p {
	case baccarat.BankerPair:
		return pterm.LightRed("'")
	case baccarat.PlayerPair:
		return pterm.LightBlue(",")
	case baccarat.BothPairs:
		return pterm.LightMagenta(":")
	}
	return " "
}

func tieMark(n int) string {
	if n == 0 {
		return " "
	}
	if n > 9 {
		return pterm.LightGreen("+")
	}
	return pterm.LightGreen(fmt.Sprint(n))
}

func beadPlate(cells []roadmap.BeadCell) string {
	gc := make([]gridCell, len(cells))
	for i, c := range cells {
		gc[i] = gridCell{c.Col, c.Row, sideText(c.Side) + pairMark(c.Pair)}
	}
	return grid(gc, roadmap.BeadPlateRows, 2)
}

func bigRoad(cells []roadmap.BigRoadCell) string {
	gc := make([]gridCell, len(cells))
	for i, c := range cells {
		gc[i] = gridCell{c.Col, c.Row, sideText(c.Side) + tieMark(c.TieCount)}
	}
	return grid(gc, roadmap.BigRoadRows, 2)
}

func derivedRoad(cells []roadmap.DerivedCell) string {
	gc := make([]gridCell, len(cells))
	for i, c := range cells {
		gc[i] = gridCell{c.Col, c.Row, colorDot(c.Color)}
	}
	return grid(gc, roadmap.DerivedRoadRows, 1)
}

func threeStar(cells []roadmap.ThreeStarCell) string {
	gc := make([]gridCell, len(cells))
	for i, c := range cells {
		gc[i] = gridCell{c.Col, c.Row, colorDot(c.Color) + tieMark(c.TieCount)}
	}
	return grid(gc, roadmap.ThreeStarRows, 2)
}

func roadBox(title string, content string, degraded bool) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	if degraded {
		content = pterm.LightYellow("road unavailable for this shoe")
	}
	if content == "" {
		content = emptySlot
	}
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopLeft().Sprint(content)}
}

func statisticsTable(s roadmap.Statistics) string {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Hands", "Banker", "Player", "Tie", "B pair", "P pair", "Both"},
		{
			fmt.Sprint(s.Total), fmt.Sprint(s.Banker), fmt.Sprint(s.Player), fmt.Sprint(s.Tie),
			fmt.Sprint(s.BankerPair), fmt.Sprint(s.PlayerPair), fmt.Sprint(s.BothPairs),
		},
	}).Srender()
	if err != nil {
		return err.Error()
	}
	return table
}

func predictionLine(p roadmap.Prediction) string {
	cell := func(c roadmap.PredictedCell) string {
		if !c.Ready {
			return pterm.Gray("-")
		}
		return colorDot(c.Color)
	}
	return fmt.Sprintf("%s next   big eye %s   small %s   cockroach %s",
		sideText(p.Side), cell(p.BigEye), cell(p.Small), cell(p.Cockroach))
}

func predictionPanel(preds roadmap.Predictions) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	content := predictionLine(preds.Banker) + "\n" + predictionLine(preds.Player)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|ASK ROAD|")).WithTitleTopCenter().Sprint(content)}
}

func printReport(snap roadmap.Snapshot, preds roadmap.Predictions) {
	degraded := make(map[roadmap.Road]bool)
	for _, r := range snap.Degraded {
		degraded[r] = true
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{roadBox("Bead plate", beadPlate(snap.BeadPlate), false)},
		{roadBox("Big road", bigRoad(snap.BigRoad), degraded[roadmap.RoadBig])},
		{
			roadBox("Big eye", derivedRoad(snap.BigEyeRoad), degraded[roadmap.RoadBigEye]),
			roadBox("Small", derivedRoad(snap.SmallRoad), degraded[roadmap.RoadSmall]),
			roadBox("Cockroach", derivedRoad(snap.CockroachRoad), degraded[roadmap.RoadCockroach]),
		},
		{roadBox("Three star", threeStar(snap.ThreeStar), degraded[roadmap.RoadThreeStar]), predictionPanel(preds)},
	}).Render()

	pterm.Println(statisticsTable(snap.Statistics))
	if snap.Sequence.Malformed {
		pterm.Warning.Printfln("Feed keys out of order: duplicates %v, gaps %v", snap.Sequence.Duplicates, snap.Sequence.Gaps)
	}
}

func styledHand(h deck.Hand) string {
	cards := func(cs []deck.Card) string {
		s := make([]string, len(cs))
		for i, c := range cs {
			s[i] = c.Styled()
		}
		return strings.Join(s, " ")
	}
	return fmt.Sprintf("%s %s (%d)  %s %s (%d)",
		sideText(baccarat.SidePlayer), cards(h.Player), h.PlayerTotal(),
		sideText(baccarat.SideBanker), cards(h.Banker), h.BankerTotal())
}
