package baccarat

import (
	"errors"
	"fmt"
)

// ErrInvalidOutcome is returned for result or pair codes outside the feed's vocabulary.
var ErrInvalidOutcome = errors.New("invalid outcome")

// Result is the raw result code sent by the history feed.
type Result uint8

// Result codes (5 is unused by the feed)
const (
	Banker      Result = 1
	Player      Result = 2
	Tie         Result = 3
	Lucky6      Result = 4
	SmallTiger  Result = 6
	DragonSeven Result = 7
	PandaEight  Result = 8
	BigTiger    Result = 9
)

// Pair is the side-bet indicator dealt with the hand.
type Pair uint8

const (
	NoPair     Pair = 0
	BankerPair Pair = 1
	PlayerPair Pair = 2
	BothPairs  Pair = 3
)

// Side is the result folded to the three sides used for road placement.
// The values match the legacy normalized result codes.
type Side uint8

const (
	SideBanker Side = 1
	SidePlayer Side = 2
	SideTie    Side = 3
)

// RoadColor is the colour of a derived or three-star road cell.
type RoadColor uint8

const (
	Red  RoadColor = 1
	Blue RoadColor = 2
)

// Outcome is one dealt hand. Key is the feed's ordering key ("k0", "k1", ...)
// and may be empty for outcomes built in memory.
type Outcome struct {
	Key    string `json:"key,omitempty" yaml:"key,omitempty"`
	Result Result `json:"result" yaml:"result"`
	Pair   Pair   `json:"ext" yaml:"ext"`
}

// NewOutcome creates a validated Outcome from the feed's integer codes.
//
// Parameters:
//   - key: ordering key of the hand in the feed
//   - result: 1,2,3,4,6,7,8,9 (banker, player, tie, lucky 6, small tiger, dragon 7, panda 8, big tiger)
//   - ext: 0-3 (no pair, banker pair, player pair, both)
//
// Returns an error wrapping ErrInvalidOutcome when either code is unknown.
func NewOutcome(key string, result, ext int) (Outcome, error) {
	if result < 0 || result > 255 || ext < 0 || ext > 255 {
		return Outcome{}, fmt.Errorf("%w: result %d, ext %d", ErrInvalidOutcome, result, ext)
	}
	o := Outcome{Key: key, Result: Result(result), Pair: Pair(ext)}
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}
	return o, nil
}

// Validate reports whether both codes of the outcome are known.
func (o Outcome) Validate() error {
	if !o.Result.Valid() {
		return fmt.Errorf("%w: unknown result code %d", ErrInvalidOutcome, o.Result)
	}
	if !o.Pair.Valid() {
		return fmt.Errorf("%w: unknown pair code %d", ErrInvalidOutcome, o.Pair)
	}
	return nil
}

// Side returns the normalized side of the outcome. It panics on an invalid
// result, so callers must Validate first.
func (o Outcome) Side() Side {
	s, err := NormalizeSide(o.Result)
	if err != nil {
		panic(err)
	}
	return s
}

// NormalizeSide maps a result code to the side it counts for on the roads.
// Lucky 6, the tigers and dragon 7 are banker wins, panda 8 is a player win.
func NormalizeSide(r Result) (Side, error) {
	switch r {
	case Banker, Lucky6, SmallTiger, DragonSeven, BigTiger:
		return SideBanker, nil
	case Player, PandaEight:
		return SidePlayer, nil
	case Tie:
		return SideTie, nil
	default:
		return 0, fmt.Errorf("%w: unknown result code %d", ErrInvalidOutcome, r)
	}
}

func (r Result) Valid() bool {
	switch r {
	case Banker, Player, Tie, Lucky6, SmallTiger, DragonSeven, PandaEight, BigTiger:
		return true
	}
	return false
}

func (r Result) String() string {
	switch r {
	case Banker:
		return "banker"
	case Player:
		return "player"
	case Tie:
		return "tie"
	case Lucky6:
		return "lucky6"
	case SmallTiger:
		return "small_tiger"
	case DragonSeven:
		return "dragon7"
	case PandaEight:
		return "panda8"
	case BigTiger:
		return "big_tiger"
	default:
		return fmt.Sprintf("result(%d)", uint8(r))
	}
}

func (p Pair) Valid() bool {
	return p <= BothPairs
}

// HasBanker reports whether the banker's first two cards were a pair.
func (p Pair) HasBanker() bool {
	return p == BankerPair || p == BothPairs
}

// HasPlayer reports whether the player's first two cards were a pair.
func (p Pair) HasPlayer() bool {
	return p == PlayerPair || p == BothPairs
}

func (p Pair) String() string {
	switch p {
	case NoPair:
		return "none"
	case BankerPair:
		return "banker_pair"
	case PlayerPair:
		return "player_pair"
	case BothPairs:
		return "both_pairs"
	default:
		return fmt.Sprintf("pair(%d)", uint8(p))
	}
}

// Result returns the plain banker/player/tie code for the side.
func (s Side) Result() Result {
	switch s {
	case SideBanker:
		return Banker
	case SidePlayer:
		return Player
	default:
		return Tie
	}
}

func (s Side) String() string {
	switch s {
	case SideBanker:
		return "B"
	case SidePlayer:
		return "P"
	case SideTie:
		return "T"
	default:
		return "?"
	}
}

func (c RoadColor) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}
