package nlp

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/DrNour/adaptive-translation-platform/internal/pkg/metrics"
)

const maxCollocationFlags = 3

// CollocationTable holds reference-corpus frequencies for adjacent word
// pairs, keyed "first second". Pairs below the threshold are considered
// unusual combinations worth flagging.
type CollocationTable struct {
	freq      map[string]int
	threshold int
}

// LoadCollocationTable reads a JSON file of {"pair": count}. A missing
// or unreadable file yields an empty table, which flags nothing.
func LoadCollocationTable(path string, threshold int) *CollocationTable {
	table := &CollocationTable{freq: map[string]int{}, threshold: threshold}
	if threshold <= 0 {
		table.threshold = 2
	}
	if path == "" {
		return table
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return table
	}
	var freq map[string]int
	if err := json.Unmarshal(data, &freq); err != nil {
		return table
	}
	for pair, count := range freq {
		table.freq[strings.ToLower(strings.TrimSpace(pair))] = count
	}
	return table
}

// NewCollocationTable builds a table from explicit frequencies, used by
// tests and the seeder.
func NewCollocationTable(freq map[string]int, threshold int) *CollocationTable {
	table := &CollocationTable{freq: map[string]int{}, threshold: threshold}
	if threshold <= 0 {
		table.threshold = 2
	}
	for pair, count := range freq {
		table.freq[strings.ToLower(strings.TrimSpace(pair))] = count
	}
	return table
}

func (t *CollocationTable) Empty() bool {
	return t == nil || len(t.freq) == 0
}

// RarestPairs returns the adjacent word pairs of text whose corpus
// frequency falls below the threshold, rarest first, capped at three.
func (t *CollocationTable) RarestPairs(text string) []string {
	if t.Empty() {
		return nil
	}

	tokens := metrics.Tokenize(text)
	type flagged struct {
		pair  string
		count int
	}
	var flags []flagged
	seen := make(map[string]bool)
	for i := 1; i < len(tokens); i++ {
		pair := tokens[i-1] + " " + tokens[i]
		if seen[pair] {
			continue
		}
		seen[pair] = true
		if count := t.freq[pair]; count < t.threshold {
			flags = append(flags, flagged{pair: pair, count: count})
		}
	}

	sort.SliceStable(flags, func(i, j int) bool { return flags[i].count < flags[j].count })
	if len(flags) > maxCollocationFlags {
		flags = flags[:maxCollocationFlags]
	}

	pairs := make([]string, len(flags))
	for i, f := range flags {
		pairs[i] = f.pair
	}
	return pairs
}
