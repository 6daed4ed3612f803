package feed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

func TestDecodeMappingKeepsOrder(t *testing.T) {
	data := []byte(`{"k0":{"result":1,"ext":0},"k2":{"result":3,"ext":2},"k1":{"result":8,"ext":3}}`)
	outcomes, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []baccarat.Outcome{
		{Key: "k0", Result: baccarat.Banker, Pair: baccarat.NoPair},
		{Key: "k2", Result: baccarat.Tie, Pair: baccarat.PlayerPair},
		{Key: "k1", Result: baccarat.PandaEight, Pair: baccarat.BothPairs},
	}
	if len(outcomes) != len(expected) {
		t.Fatalf("expected %d outcomes, got %d", len(expected), len(outcomes))
	}
	for i := range expected {
		if outcomes[i] != expected[i] {
			t.Errorf("outcome %d = %+v, want %+v", i, outcomes[i], expected[i])
		}
	}
}

func TestDecodeYAMLMapping(t *testing.T) {
	data := []byte("k0: {result: 2, ext: 0}\nk1:\n  result: 2\n  ext: 1\n")
	outcomes, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 2 || outcomes[1].Pair != baccarat.BankerPair {
		t.Errorf("unexpected outcomes %+v", outcomes)
	}
}

func TestDecodeList(t *testing.T) {
	data := []byte(`[{"key":"a","result":1},{"result":2,"ext":1},{"result":9}]`)
	outcomes, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keys := []string{"a", "k1", "k2"}
	for i, o := range outcomes {
		if o.Key != keys[i] {
			t.Errorf("outcome %d key %q, want %q", i, o.Key, keys[i])
		}
	}
	if outcomes[2].Result != baccarat.BigTiger {
		t.Errorf("expected big tiger, got %v", outcomes[2].Result)
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, input := range []string{"", "{}", "[]", "null"} {
		outcomes, err := Decode([]byte(input))
		if err != nil {
			t.Errorf("Decode(%q): unexpected error: %v", input, err)
		}
		if outcomes == nil || len(outcomes) != 0 {
			t.Errorf("Decode(%q) = %v, want empty", input, outcomes)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		target  error
		mention string
	}{
		{"bad result", `{"k0":{"result":1},"k1":{"result":5}}`, baccarat.ErrInvalidOutcome, `"k1"`},
		{"bad ext", `[{"result":1,"ext":7}]`, baccarat.ErrInvalidOutcome, "item 0"},
		{"scalar value", `{"k0": 3}`, ErrMalformedFeed, `"k0"`},
		{"scalar document", `42`, ErrMalformedFeed, "expected a mapping"},
		{"broken syntax", `{"k0": {`, ErrMalformedFeed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			if !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error %q does not mention %s", err, tt.mention)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	outcomes := []baccarat.Outcome{
		{Key: "k0", Result: baccarat.Lucky6, Pair: baccarat.PlayerPair},
		{Result: baccarat.Player},
		{Key: "k2", Result: baccarat.Tie, Pair: baccarat.BothPairs},
	}
	data, err := Encode(outcomes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error decoding %s: %v", data, err)
	}
	if len(decoded) != 3 || decoded[1].Key != "k1" || decoded[2] != outcomes[2] {
		t.Errorf("unexpected outcomes %+v from %s", decoded, data)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoe.json")
	if err := os.WriteFile(path, []byte(`{"k0":{"result":2,"ext":0}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	outcomes, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 1 || outcomes[0].Result != baccarat.Player {
		t.Errorf("unexpected outcomes %+v", outcomes)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := Read(strings.NewReader(`[{"result":3}]`)); err != nil {
		t.Errorf("Read: unexpected error: %v", err)
	}
}
