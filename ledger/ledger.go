package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
	"github.com/luca-patrignani/baccarat-roadmap/domain/roadmap"
)

// ErrDuplicateKey is returned when a hand reuses the key of an earlier hand.
var ErrDuplicateKey = errors.New("duplicate outcome key")

type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
	keys   map[string]bool
	shoeID string
}

// NewLedger creates a ledger for one shoe with its genesis block.
func NewLedger(shoeID string) *Ledger {
	l := &Ledger{
		blocks: make([]Block, 0, 80),
		keys:   make(map[string]bool),
		shoeID: shoeID,
	}
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Metadata:  Metadata{ShoeID: shoeID, Source: "genesis"},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)
	return l
}

func (l *Ledger) ShoeID() string {
	return l.shoeID
}

// Append validates the outcome and records it in a new block. An outcome
// without a key gets the next "k<n>" key. The extra parameter can optionally
// contain additional metadata.
func (l *Ledger) Append(o baccarat.Outcome, source string, extra ...map[string]string) (Block, error) {
	if err := o.Validate(); err != nil {
		return Block{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if o.Key == "" {
		o.Key = roadmap.NextKey(l.outcomesLocked())
	}
	if l.keys[o.Key] {
		return Block{}, fmt.Errorf("%w: %q", ErrDuplicateKey, o.Key)
	}

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := l.blocks[len(l.blocks)-1]
	block := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Outcome:   o,
		Metadata:  Metadata{ShoeID: l.shoeID, Source: source, Extra: extraMsg},
	}
	block.Hash = calculateHash(block)

	if err := validateBlock(block, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, block)
	l.keys[o.Key] = true
	return block, nil
}

// Outcomes returns a copy of the recorded hands in deal order.
func (l *Ledger) Outcomes() []baccarat.Outcome {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.outcomesLocked()
}

func (l *Ledger) outcomesLocked() []baccarat.Outcome {
	out := make([]baccarat.Outcome, 0, len(l.blocks)-1)
	for _, b := range l.blocks[1:] {
		out = append(out, b.Outcome)
	}
	return out
}

// Len returns the number of recorded hands, genesis excluded.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks) - 1
}

// GetLatest returns the most recently added block.
func (l *Ledger) GetLatest() (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return Block{}, fmt.Errorf("ledger is empty")
	}
	return l.blocks[len(l.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain; index 0 is genesis.
func (l *Ledger) GetByIndex(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Blocks returns a copy of the whole chain.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Block(nil), l.blocks...)
}

// Verify validates the integrity of the whole chain: the genesis block, then
// each block's index continuity, previous hash linkage and own hash.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	genesis := l.blocks[0]
	if genesis.PrevHash != "0" || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateBlock verifies a block against the previous one.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	if err := current.Outcome.Validate(); err != nil {
		return err
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block from its index,
// timestamp, previous hash, JSON-encoded outcome and shoe id.
func calculateHash(block Block) string {
	outcomeBytes, _ := json.Marshal(block.Outcome)
	data := fmt.Sprintf("%d%d%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(outcomeBytes),
		block.Metadata.ShoeID,
		block.Metadata.Source,
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
