package ledger

import "github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"

// Block is one entry of the ledger. The genesis block carries no outcome.
type Block struct {
	Index     int              `json:"index"`
	Timestamp int64            `json:"timestamp"`
	PrevHash  string           `json:"prev_hash"`
	Hash      string           `json:"hash"`
	Outcome   baccarat.Outcome `json:"outcome"`
	Metadata  Metadata         `json:"metadata"`
}

type Metadata struct {
	ShoeID string            `json:"shoe_id"`
	Source string            `json:"source,omitempty"` // "dealer", "feed", "simulation"
	Extra  map[string]string `json:"extra,omitempty"`
}
