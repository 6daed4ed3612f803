package deck

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣
	Diamond = 1 // ♦
	Heart   = 2 // ♥
	Spade   = 3 // ♠
)

// Card rank constants for the ace and face cards
const (
	Ace   = 1
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
)

// CardsPerDeck is the size of one French deck.
const CardsPerDeck = 52

// Card is a playing card with suit and rank.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > Spade || rank == 0 || rank > King {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// IntToCard converts a card number (1-52) to a Card: 1-13 clubs, 14-26
// diamonds, 27-39 hearts, 40-52 spades, ace through king within each suit.
func IntToCard(raw int) (Card, error) {
	if raw < 1 || raw > CardsPerDeck {
		return Card{}, fmt.Errorf("card number %d out of range", raw)
	}
	return NewCard(uint8((raw-1)/13), uint8((raw-1)%13+1))
}

func (c Card) Suit() uint8 {
	return c.suit
}

func (c Card) Rank() uint8 {
	return c.rank
}

// Points is the baccarat value of the card: ace 1, two to nine face value,
// tens and face cards 0.
func (c Card) Points() int {
	if c.rank >= Ten {
		return 0
	}
	return int(c.rank)
}

func (c Card) String() string {
	return c.rankString() + c.suitString()
}

// Styled renders the card with a red or black suit for the terminal.
func (c Card) Styled() string {
	switch c.suit {
	case Diamond, Heart:
		return c.rankString() + pterm.LightRed(c.suitString())
	default:
		return c.rankString() + pterm.Gray(c.suitString())
	}
}

func (c Card) suitString() string {
	switch c.suit {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	}
	return "?"
}

func (c Card) rankString() string {
	switch c.rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return fmt.Sprintf("%d", c.rank)
}
