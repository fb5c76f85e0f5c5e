package metrics

import (
	"strings"
	"unicode"
)

// Tokenize lowercases the text and splits it into word tokens. Anything
// that is not a letter or digit acts as a separator, which keeps the
// tokenizer language-agnostic (Latin and Arabic script alike).
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// normalizeChars lowercases and collapses whitespace runs to a single
// space for character n-gram comparison.
func normalizeChars(text string) []rune {
	return []rune(strings.Join(strings.Fields(strings.ToLower(text)), " "))
}
