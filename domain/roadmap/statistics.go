package roadmap

import "github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"

// Statistics tallies the hands of a shoe.
type Statistics struct {
	Total      int `json:"total"`
	Banker     int `json:"banker"`
	Player     int `json:"player"`
	Tie        int `json:"tie"`
	BankerPair int `json:"banker_pair"`
	PlayerPair int `json:"player_pair"`
	BothPairs  int `json:"both_pairs"`
}

// ComputeStatistics counts wins per normalized side and pair occurrences.
// A hand with both pairs counts once for each pair and once in BothPairs.
// Outcomes must already be validated.
func ComputeStatistics(outcomes []baccarat.Outcome) Statistics {
	var s Statistics
	for _, o := range outcomes {
		s.Total++
		switch o.Side() {
		case baccarat.SideBanker:
			s.Banker++
		case baccarat.SidePlayer:
			s.Player++
		case baccarat.SideTie:
			s.Tie++
		}
		if o.Pair.HasBanker() {
			s.BankerPair++
		}
		if o.Pair.HasPlayer() {
			s.PlayerPair++
		}
		if o.Pair == baccarat.BothPairs {
			s.BothPairs++
		}
	}
	return s
}
