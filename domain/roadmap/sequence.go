package roadmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

// SequenceReport describes ordering problems in the input keys. Input order
// is always kept; the report only flags what looked wrong.
type SequenceReport struct {
	Malformed  bool     `json:"malformed"`
	Duplicates []string `json:"duplicates,omitempty"`
	Gaps       []string `json:"gaps,omitempty"`
}

// CheckSequence looks for duplicate keys and for numbered keys ("k7", "7")
// that do not follow each other. Outcomes without a key are skipped.
func CheckSequence(outcomes []baccarat.Outcome) SequenceReport {
	var report SequenceReport
	seen := make(map[string]bool, len(outcomes))
	prev, havePrev := 0, false
	for _, o := range outcomes {
		if o.Key == "" {
			continue
		}
		if seen[o.Key] {
			report.Duplicates = append(report.Duplicates, o.Key)
		}
		seen[o.Key] = true

		n, ok := keyIndex(o.Key)
		if !ok {
			continue
		}
		if havePrev && n != prev+1 {
			report.Gaps = append(report.Gaps, fmt.Sprintf("%d->%d", prev, n))
		}
		prev, havePrev = n, true
	}
	report.Malformed = len(report.Duplicates) > 0 || len(report.Gaps) > 0
	return report
}

// keyIndex extracts the number from keys like "k12" or "12".
func keyIndex(key string) (int, bool) {
	digits := strings.TrimLeft(key, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_-")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextKey returns the key that follows the outcomes, "k<len>" unless the
// last key is numbered, in which case its number is incremented.
func NextKey(outcomes []baccarat.Outcome) string {
	if len(outcomes) == 0 {
		return "k0"
	}
	last := outcomes[len(outcomes)-1].Key
	if n, ok := keyIndex(last); ok {
		prefix := strings.TrimSuffix(last, strconv.Itoa(n))
		if prefix+strconv.Itoa(n) == last {
			return prefix + strconv.Itoa(n+1)
		}
	}
	return "k" + strconv.Itoa(len(outcomes))
}
