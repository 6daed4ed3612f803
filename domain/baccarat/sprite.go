package baccarat

import "fmt"

// Sprite codes 1-32 are the legacy board image numbers: a base per result
// plus the pair code. Every numeric classification of results lives here.
const (
	spriteBanker      = 1
	spritePlayer      = 5
	spriteTie         = 9
	spriteLucky6      = 13
	spriteDragonSeven = 17
	spritePandaEight  = 21
	spriteSmallTiger  = 25
	spriteBigTiger    = 29

	MaxSprite = 32
)

type spriteBase struct {
	result Result
	base   int
	color  RoadColor // zero for ties
}

var spriteTable = []spriteBase{
	{Banker, spriteBanker, Red},
	{Player, spritePlayer, Blue},
	{Tie, spriteTie, 0},
	{Lucky6, spriteLucky6, Red},
	{DragonSeven, spriteDragonSeven, Red},
	{PandaEight, spritePandaEight, Blue},
	{SmallTiger, spriteSmallTiger, Red},
	{BigTiger, spriteBigTiger, Red},
}

// Sprite returns the legacy image number of a result with its pair flag.
func Sprite(r Result, p Pair) (int, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: unknown pair code %d", ErrInvalidOutcome, p)
	}
	for _, s := range spriteTable {
		if s.result == r {
			return s.base + int(p), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown result code %d", ErrInvalidOutcome, r)
}

// ParseSprite is the inverse of Sprite.
func ParseSprite(code int) (Result, Pair, error) {
	if code < 1 || code > MaxSprite {
		return 0, 0, fmt.Errorf("%w: sprite %d out of range", ErrInvalidOutcome, code)
	}
	base := code - (code-1)%4
	for _, s := range spriteTable {
		if s.base == base {
			return s.result, Pair((code - 1) % 4), nil
		}
	}
	return 0, 0, fmt.Errorf("%w: sprite %d", ErrInvalidOutcome, code)
}

// SpriteColor classifies a sprite as banker-leaning (Red) or player-leaning (Blue).
// Tie sprites have no colour and report false.
func SpriteColor(code int) (RoadColor, bool) {
	r, _, err := ParseSprite(code)
	if err != nil {
		return 0, false
	}
	for _, s := range spriteTable {
		if s.result == r && s.color != 0 {
			return s.color, true
		}
	}
	return 0, false
}

// Sprite returns the legacy image number of the outcome.
func (o Outcome) Sprite() (int, error) {
	return Sprite(o.Result, o.Pair)
}
