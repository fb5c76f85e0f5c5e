package metrics

import "math"

const (
	maxNGramOrder = 4
	charNGramSize = 3
)

// NGramScore computes a BLEU-style lexical score (0-100) for a candidate
// translation against a reference. Clipped n-gram precisions up to order
// 4 are combined with an equally weighted geometric mean and a brevity
// penalty. The order is capped at the shorter segment length so that a
// segment compared with itself always scores 100. Any zero denominator
// yields 0 rather than an error.
func NGramScore(reference, candidate string) float64 {
	refTokens := Tokenize(reference)
	candTokens := Tokenize(candidate)
	if len(refTokens) == 0 || len(candTokens) == 0 {
		return 0
	}

	maxOrder := maxNGramOrder
	if len(candTokens) < maxOrder {
		maxOrder = len(candTokens)
	}
	if len(refTokens) < maxOrder {
		maxOrder = len(refTokens)
	}

	logSum := 0.0
	for n := 1; n <= maxOrder; n++ {
		p := clippedPrecision(refTokens, candTokens, n)
		if p == 0 {
			return 0
		}
		logSum += math.Log(p)
	}
	score := math.Exp(logSum / float64(maxOrder))

	// Brevity penalty for candidates shorter than the reference.
	if len(candTokens) < len(refTokens) {
		score *= math.Exp(1 - float64(len(refTokens))/float64(len(candTokens)))
	}
	return score * 100
}

func clippedPrecision(refTokens, candTokens []string, n int) float64 {
	refCounts := countNGrams(refTokens, n)
	candCounts := countNGrams(candTokens, n)
	if len(candCounts) == 0 {
		return 0
	}

	matched := 0
	total := 0
	for gram, count := range candCounts {
		total += count
		if refCount, ok := refCounts[gram]; ok {
			if count < refCount {
				matched += count
			} else {
				matched += refCount
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

func countNGrams(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		gram := tokens[i]
		for j := 1; j < n; j++ {
			gram += "\x00" + tokens[i+j]
		}
		counts[gram]++
	}
	return counts
}

// CharNGramScore computes a chrF-style score (0-100): the F1 of clipped
// character trigram precision and recall, with whitespace collapsed.
// Empty reference or candidate scores 0.
func CharNGramScore(reference, candidate string) float64 {
	refRunes := normalizeChars(reference)
	candRunes := normalizeChars(candidate)
	if len(refRunes) == 0 || len(candRunes) == 0 {
		return 0
	}

	refCounts := countCharNGrams(refRunes, charNGramSize)
	candCounts := countCharNGrams(candRunes, charNGramSize)
	if len(refCounts) == 0 || len(candCounts) == 0 {
		// Segments shorter than the n-gram size: fall back to exact match.
		if string(refRunes) == string(candRunes) {
			return 100
		}
		return 0
	}

	matched := 0
	candTotal := 0
	refTotal := 0
	for gram, count := range candCounts {
		candTotal += count
		if refCount, ok := refCounts[gram]; ok {
			if count < refCount {
				matched += count
			} else {
				matched += refCount
			}
		}
	}
	for _, count := range refCounts {
		refTotal += count
	}
	if matched == 0 {
		return 0
	}

	precision := float64(matched) / float64(candTotal)
	recall := float64(matched) / float64(refTotal)
	return 2 * precision * recall / (precision + recall) * 100
}

func countCharNGrams(runes []rune, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(runes); i++ {
		counts[string(runes[i:i+n])]++
	}
	return counts
}
