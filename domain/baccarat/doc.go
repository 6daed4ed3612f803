// Package baccarat defines the hand outcomes fed to the scoreboards.
//
// # Codes
//
// The history feed sends a result code and a pair code per hand. Result codes
// 4, 6, 7, 8 and 9 are table variants (lucky 6, small tiger, dragon 7, panda 8,
// big tiger) that fold to a plain banker or player win for road placement;
// NormalizeSide performs that folding and rejects unknown codes with
// ErrInvalidOutcome instead of guessing.
//
// # Sprites
//
// Older boards address results by image number (1-32). Sprite, ParseSprite and
// SpriteColor keep that numbering in a single table so the rest of the code
// never handles magic numbers.
package baccarat
