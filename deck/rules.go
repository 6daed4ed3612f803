package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

// ErrNotEnoughCards is returned by Play when the cards run out mid-hand.
var ErrNotEnoughCards = errors.New("not enough cards for a hand")

// Variant is the side-bet flavour of the table. It decides which special
// result codes a win is reported with.
type Variant string

const (
	// Classic reports plain banker, player and tie results.
	Classic Variant = "classic"
	// Lucky6 reports a banker win on 6 as Lucky6.
	Lucky6 Variant = "lucky6"
	// EZ reports a three-card banker 7 as Dragon 7 and a three-card player 8 as Panda 8.
	EZ Variant = "ez"
	// Tiger reports a banker win on 6 as Small Tiger (two cards) or Big Tiger (three cards).
	Tiger Variant = "tiger"
)

// Variants lists every supported variant.
var Variants = []Variant{Classic, Lucky6, EZ, Tiger}

// ParseVariant matches a variant name, ignoring case. The empty string is Classic.
func ParseVariant(name string) (Variant, error) {
	if name == "" {
		return Classic, nil
	}
	for _, v := range Variants {
		if strings.EqualFold(name, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q", name)
}

// Hand is one played coup.
type Hand struct {
	Player []Card
	Banker []Card
}

func total(cards []Card) int {
	t := 0
	for _, c := range cards {
		t += c.Points()
	}
	return t % 10
}

func (h Hand) PlayerTotal() int {
	return total(h.Player)
}

func (h Hand) BankerTotal() int {
	return total(h.Banker)
}

// Natural reports whether either side was dealt 8 or 9 on two cards.
func (h Hand) Natural() bool {
	return total(h.Player[:2]) >= 8 || total(h.Banker[:2]) >= 8
}

// Play deals a coup from cards in order: player, banker, player, banker,
// then the third cards the tableau calls for. It returns the hand and the
// number of cards used.
func Play(cards []Card) (Hand, int, error) {
	used := 0
	draw := func() (Card, error) {
		if used >= len(cards) {
			return Card{}, ErrNotEnoughCards
		}
		used++
		return cards[used-1], nil
	}

	var h Hand
	for i := 0; i < 2; i++ {
		p, err := draw()
		if err != nil {
			return Hand{}, used, err
		}
		b, err := draw()
		if err != nil {
			return Hand{}, used, err
		}
		h.Player = append(h.Player, p)
		h.Banker = append(h.Banker, b)
	}
	if h.Natural() {
		return h, used, nil
	}

	var playerThird *Card
	if h.PlayerTotal() <= 5 {
		c, err := draw()
		if err != nil {
			return Hand{}, used, err
		}
		h.Player = append(h.Player, c)
		playerThird = &c
	}
	if bankerDraws(h.BankerTotal(), playerThird) {
		c, err := draw()
		if err != nil {
			return Hand{}, used, err
		}
		h.Banker = append(h.Banker, c)
	}
	return h, used, nil
}

// bankerDraws applies the banker tableau. A nil third card means the player stood.
func bankerDraws(banker int, playerThird *Card) bool {
	if playerThird == nil {
		return banker <= 5
	}
	p := playerThird.Points()
	switch banker {
	case 0, 1, 2:
		return true
	case 3:
		return p != 8
	case 4:
		return p >= 2 && p <= 7
	case 5:
		return p >= 4 && p <= 7
	case 6:
		return p == 6 || p == 7
	}
	return false
}

// Pair reports the pairs made by the first two cards of each side.
func (h Hand) Pair() baccarat.Pair {
	banker := h.Banker[0].Rank() == h.Banker[1].Rank()
	player := h.Player[0].Rank() == h.Player[1].Rank()
	switch {
	case banker && player:
		return baccarat.BothPairs
	case banker:
		return baccarat.BankerPair
	case player:
		return baccarat.PlayerPair
	}
	return baccarat.NoPair
}

// Result returns the result code of the hand under the given variant.
func (h Hand) Result(v Variant) baccarat.Result {
	p, b := h.PlayerTotal(), h.BankerTotal()
	switch {
	case p == b:
		return baccarat.Tie
	case b > p:
		switch {
		case v == Lucky6 && b == 6:
			return baccarat.Lucky6
		case v == Tiger && b == 6 && len(h.Banker) == 2:
			return baccarat.SmallTiger
		case v == Tiger && b == 6:
			return baccarat.BigTiger
		case v == EZ && b == 7 && len(h.Banker) == 3:
			return baccarat.DragonSeven
		}
		return baccarat.Banker
	default:
		if v == EZ && p == 8 && len(h.Player) == 3 {
			return baccarat.PandaEight
		}
		return baccarat.Player
	}
}

// Outcome converts the hand into a road-map outcome.
func (h Hand) Outcome(key string, v Variant) baccarat.Outcome {
	return baccarat.Outcome{Key: key, Result: h.Result(v), Pair: h.Pair()}
}

func (h Hand) String() string {
	cards := func(cs []Card) string {
		s := make([]string, len(cs))
		for i, c := range cs {
			s[i] = c.String()
		}
		return strings.Join(s, " ")
	}
	return fmt.Sprintf("P[%s]=%d B[%s]=%d", cards(h.Player), h.PlayerTotal(), cards(h.Banker), h.BankerTotal())
}
