// Package deck simulates a baccarat shoe: several shuffled decks dealt by the
// standard tableau until the cut card comes out.
package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

// ErrShoeExhausted is returned when too few cards remain for another hand.
var ErrShoeExhausted = errors.New("shoe exhausted")

const (
	DefaultDecks   = 8
	DefaultCutCard = 14
	// maxCardsPerHand is the most a coup can use: two cards each plus two thirds.
	maxCardsPerHand = 6
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Shoe is a stack of shuffled decks. It is not safe for concurrent use.
type Shoe struct {
	Decks int
	// CutCard is the number of cards left behind the cut card.
	CutCard int
	Variant Variant
	cards   []Card
	next    int
	stream  cipher.Stream
}

type option func(Shoe) Shoe

func WithDecks(decks int) option {
	return func(s Shoe) Shoe {
		s.Decks = decks
		return s
	}
}

func WithCutCard(cut int) option {
	return func(s Shoe) Shoe {
		s.CutCard = cut
		return s
	}
}

func WithVariant(v Variant) option {
	return func(s Shoe) Shoe {
		s.Variant = v
		return s
	}
}

// WithRandomStream replaces the suite's random stream used for shuffling.
func WithRandomStream(stream cipher.Stream) option {
	return func(s Shoe) Shoe {
		s.stream = stream
		return s
	}
}

// NewShoe builds and shuffles a shoe. Defaults: eight decks, 14 cards
// behind the cut card, classic variant.
func NewShoe(opts ...option) (*Shoe, error) {
	s := Shoe{
		Decks:   DefaultDecks,
		CutCard: DefaultCutCard,
		Variant: Classic,
	}
	for _, opt := range opts {
		s = opt(s)
	}
	if s.Decks < 1 {
		return nil, fmt.Errorf("shoe needs at least one deck, got %d", s.Decks)
	}
	size := s.Decks * CardsPerDeck
	if s.CutCard < 0 || s.CutCard > size-maxCardsPerHand {
		return nil, fmt.Errorf("cut card %d outside 0..%d", s.CutCard, size-maxCardsPerHand)
	}
	if _, err := ParseVariant(string(s.Variant)); err != nil {
		return nil, err
	}
	if s.stream == nil {
		s.stream = suite.RandomStream()
	}

	s.cards = make([]Card, 0, size)
	for d := 0; d < s.Decks; d++ {
		for raw := 1; raw <= CardsPerDeck; raw++ {
			c, err := IntToCard(raw)
			if err != nil {
				return nil, err
			}
			s.cards = append(s.cards, c)
		}
	}
	s.Shuffle()
	return &s, nil
}

// Shuffle puts every card back and reorders the shoe with a Fisher-Yates
// pass driven by the shoe's random stream.
func (s *Shoe) Shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), s.stream).Int64())
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	s.next = 0
}

// Len is the size of the shoe.
func (s *Shoe) Len() int {
	return len(s.cards)
}

// Remaining is the number of cards not dealt yet.
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// CutReached reports whether the cut card has come out. The hand in
// progress is finished; no new hand should start.
func (s *Shoe) CutReached() bool {
	return s.Remaining() <= s.CutCard
}

// Deal plays the next coup.
func (s *Shoe) Deal() (Hand, error) {
	if s.Remaining() < maxCardsPerHand {
		return Hand{}, ErrShoeExhausted
	}
	h, used, err := Play(s.cards[s.next:])
	if err != nil {
		return Hand{}, err
	}
	s.next += used
	return h, nil
}

// Simulate deals up to n hands, stopping early at the cut card or when the
// shoe runs dry, and returns their outcomes keyed k0, k1, ...
func (s *Shoe) Simulate(n int) ([]baccarat.Outcome, error) {
	outcomes := make([]baccarat.Outcome, 0, max(n, 0))
	for i := 0; i < n && !s.CutReached(); i++ {
		h, err := s.Deal()
		if errors.Is(err, ErrShoeExhausted) {
			break
		}
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, h.Outcome(fmt.Sprintf("k%d", i), s.Variant))
	}
	return outcomes, nil
}
