package application

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/luca-patrignani/baccarat-roadmap/deck"
	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
	"github.com/luca-patrignani/baccarat-roadmap/domain/roadmap"
	"github.com/luca-patrignani/baccarat-roadmap/ledger"
)

// Table ties a shoe ledger to a road calculator: every recorded hand goes
// into the ledger and the roads are recomputed from a copy of it.
type Table struct {
	ID     string
	calc   *roadmap.Calculator
	logger *slog.Logger

	mu     sync.RWMutex
	ledger *ledger.Ledger
	shoes  int
}

type settings struct {
	calc   *roadmap.Calculator
	logger *slog.Logger
}

type option func(settings) settings

func WithCalculator(calc *roadmap.Calculator) option {
	return func(s settings) settings {
		s.calc = calc
		return s
	}
}

func WithLogger(logger *slog.Logger) option {
	return func(s settings) settings {
		s.logger = logger
		return s
	}
}

// NewTable opens a table with its first shoe.
func NewTable(id string, opts ...option) *Table {
	s := settings{}
	for _, opt := range opts {
		s = opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.calc == nil {
		s.calc = roadmap.NewCalculator(roadmap.WithLogger(s.logger))
	}
	t := &Table{ID: id, calc: s.calc, logger: s.logger.With("table", id)}
	t.NewShoe()
	return t
}

// NewShoe closes the current shoe and starts an empty ledger.
func (t *Table) NewShoe() *ledger.Ledger {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shoes++
	t.ledger = ledger.NewLedger(fmt.Sprintf("%s-%d", t.ID, t.shoes))
	t.logger.Info("new shoe", "shoe", t.ledger.ShoeID())
	return t.ledger
}

// Ledger returns the ledger of the current shoe.
func (t *Table) Ledger() *ledger.Ledger {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ledger
}

// Record appends one hand to the current shoe and returns the new roads.
func (t *Table) Record(o baccarat.Outcome, source string) (roadmap.Snapshot, error) {
	l := t.Ledger()
	block, err := l.Append(o, source)
	if err != nil {
		return roadmap.Snapshot{}, fmt.Errorf("failed to record hand: %w", err)
	}
	t.logger.Debug("hand recorded", "shoe", l.ShoeID(), "key", block.Outcome.Key, "result", block.Outcome.Result, "pair", block.Outcome.Pair)
	return t.calc.Calculate(l.Outcomes())
}

// Load records a batch of hands, stopping at the first one rejected.
func (t *Table) Load(outcomes []baccarat.Outcome, source string) error {
	l := t.Ledger()
	for i, o := range outcomes {
		if _, err := l.Append(o, source); err != nil {
			return fmt.Errorf("hand %d: %w", i, err)
		}
	}
	t.logger.Info("hands loaded", "shoe", l.ShoeID(), "count", len(outcomes), "source", source)
	return nil
}

// Deal plays the next coup from the shoe and records it.
func (t *Table) Deal(shoe *deck.Shoe) (deck.Hand, roadmap.Snapshot, error) {
	h, err := shoe.Deal()
	if err != nil {
		return deck.Hand{}, roadmap.Snapshot{}, err
	}
	snap, err := t.Record(h.Outcome("", shoe.Variant), "simulation")
	if err != nil {
		return h, roadmap.Snapshot{}, err
	}
	return h, snap, nil
}

// Simulate deals from the shoe until the cut card or until hands coups have
// been played. onHand, when not nil, sees every hand with the roads after it.
func (t *Table) Simulate(shoe *deck.Shoe, hands int, onHand func(deck.Hand, roadmap.Snapshot)) error {
	for i := 0; i < hands && !shoe.CutReached(); i++ {
		h, snap, err := t.Deal(shoe)
		if errors.Is(err, deck.ErrShoeExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
		if onHand != nil {
			onHand(h, snap)
		}
	}
	return nil
}

// Snapshot computes the roads of the current shoe.
func (t *Table) Snapshot() (roadmap.Snapshot, error) {
	return t.calc.Calculate(t.Ledger().Outcomes())
}

// Predictions computes the ask-road answers for the current shoe.
func (t *Table) Predictions() (roadmap.Predictions, error) {
	return t.calc.Predictions(t.Ledger().Outcomes())
}
