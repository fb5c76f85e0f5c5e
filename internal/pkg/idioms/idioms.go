package idioms

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
)

// Entry describes how a source-language idiom should surface in the
// target language. Literal is the word-for-word rendering students are
// tempted to produce; it may be empty when no common literal form
// exists.
type Entry struct {
	Expected string `json:"expected"`
	Literal  string `json:"literal,omitempty"`
	Category string `json:"category,omitempty"`
}

// Dictionary maps a lowercase source idiom to its target renderings.
// Loaded once at startup and treated as read-only configuration.
type Dictionary map[string]Entry

// Load reads the idiom dictionary from a JSON file. A missing file is
// not an error: classification degrades to an empty dictionary.
func Load(path string) (Dictionary, error) {
	if path == "" {
		return Dictionary{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Dictionary{}, nil
		}
		return nil, err
	}

	var raw map[string]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	dict := make(Dictionary, len(raw))
	for source, entry := range raw {
		dict[strings.ToLower(strings.TrimSpace(source))] = entry
	}
	return dict, nil
}

// Occurring returns the idioms whose source form appears in sourceText,
// in deterministic order.
func (d Dictionary) Occurring(sourceText string) []string {
	if len(d) == 0 {
		return nil
	}
	lower := strings.ToLower(sourceText)
	var found []string
	for source := range d {
		if strings.Contains(lower, source) {
			found = append(found, source)
		}
	}
	sort.Strings(found)
	return found
}
