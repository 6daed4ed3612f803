package baccarat

import (
	"errors"
	"testing"
)

func TestNormalizeSide(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected Side
	}{
		{"banker", Banker, SideBanker},
		{"player", Player, SidePlayer},
		{"tie", Tie, SideTie},
		{"lucky 6 counts for banker", Lucky6, SideBanker},
		{"small tiger counts for banker", SmallTiger, SideBanker},
		{"dragon 7 counts for banker", DragonSeven, SideBanker},
		{"big tiger counts for banker", BigTiger, SideBanker},
		{"panda 8 counts for player", PandaEight, SidePlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, err := NormalizeSide(tt.result)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if side != tt.expected {
				t.Errorf("NormalizeSide(%v) = %v, want %v", tt.result, side, tt.expected)
			}
		})
	}
}

func TestNormalizeSideUnknownCode(t *testing.T) {
	for _, code := range []Result{0, 5, 10, 255} {
		_, err := NormalizeSide(code)
		if !errors.Is(err, ErrInvalidOutcome) {
			t.Errorf("NormalizeSide(%d): expected ErrInvalidOutcome, got %v", code, err)
		}
	}
}

func TestNewOutcome(t *testing.T) {
	o, err := NewOutcome("k3", 8, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Key != "k3" || o.Result != PandaEight || o.Pair != PlayerPair {
		t.Fatalf("unexpected outcome %+v", o)
	}
	if o.Side() != SidePlayer {
		t.Errorf("expected player side, got %v", o.Side())
	}
}

func TestNewOutcomeRejectsUnknownCodes(t *testing.T) {
	tests := []struct {
		name   string
		result int
		ext    int
	}{
		{"result 5 is unused", 5, 0},
		{"result 0", 0, 0},
		{"negative result", -1, 0},
		{"ext 4", 1, 4},
		{"negative ext", 1, -1},
		{"huge result", 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOutcome("k0", tt.result, tt.ext)
			if !errors.Is(err, ErrInvalidOutcome) {
				t.Fatalf("expected ErrInvalidOutcome, got %v", err)
			}
		})
	}
}

func TestPairFlags(t *testing.T) {
	if !BothPairs.HasBanker() || !BothPairs.HasPlayer() {
		t.Error("both pairs must report banker and player pair")
	}
	if !BankerPair.HasBanker() || BankerPair.HasPlayer() {
		t.Error("banker pair must report banker pair only")
	}
	if PlayerPair.HasBanker() || !PlayerPair.HasPlayer() {
		t.Error("player pair must report player pair only")
	}
	if NoPair.HasBanker() || NoPair.HasPlayer() {
		t.Error("no pair must report nothing")
	}
}

func TestSideResult(t *testing.T) {
	if SideBanker.Result() != Banker || SidePlayer.Result() != Player || SideTie.Result() != Tie {
		t.Fatal("side to result mapping is broken")
	}
}
