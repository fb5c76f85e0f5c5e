package metrics

// EditsEffort quantifies how much a post-edit changed a machine draft.
// The edit count is the token-level Levenshtein distance between the two
// texts; the effort percent relates it to the draft length and saturates
// at 100.
func EditsEffort(mtText, postEdit string) (int, float64) {
	mtTokens := Tokenize(mtText)
	editTokens := Tokenize(postEdit)

	edits := levenshtein(mtTokens, editTokens)

	denom := len(mtTokens)
	if denom < 1 {
		denom = 1
	}
	effort := 100 * float64(edits) / float64(denom)
	if effort > 100 {
		effort = 100
	}
	return edits, effort
}

func levenshtein(a, b []string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
