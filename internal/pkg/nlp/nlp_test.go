package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDFScorerIdentity(t *testing.T) {
	scorer := NewTFIDFScorer()
	for _, s := range []string{
		"The cat sat on the mat",
		"short",
		"معنى الجملة محفوظ تماما",
	} {
		score, err := scorer.Score(context.Background(), s, s)
		require.NoError(t, err)
		assert.InDelta(t, 100, score, 1e-9, "identity for %q", s)
	}
}

func TestTFIDFScorerDisjointVocabulary(t *testing.T) {
	scorer := NewTFIDFScorer()
	score, err := scorer.Score(context.Background(), "alpha beta gamma", "red green blue")
	require.NoError(t, err)
	assert.Less(t, score, 1.0)
}

func TestTFIDFScorerDeterministic(t *testing.T) {
	scorer := NewTFIDFScorer()
	a := "the meaning is mostly preserved here"
	b := "the meaning is partly preserved there"
	first, err := scorer.Score(context.Background(), a, b)
	require.NoError(t, err)
	second, err := scorer.Score(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 100.0)
}

func TestTFIDFScorerEmptyInputs(t *testing.T) {
	scorer := NewTFIDFScorer()
	score, err := scorer.Score(context.Background(), "", "anything")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestHeuristicGrammarChecker(t *testing.T) {
	checker := NewHeuristicGrammarChecker()

	issues, err := checker.Check(context.Background(), "the the cat sat!!  on the mat", "en")
	require.NoError(t, err)
	require.NotEmpty(t, issues)

	messages := make([]string, len(issues))
	for i, issue := range issues {
		messages[i] = issue.Message
		assert.LessOrEqual(t, len(issue.Replacements), 3)
	}
	assert.Contains(t, messages[0], "repeated word")

	clean, err := checker.Check(context.Background(), "the cat sat on the mat", "en")
	require.NoError(t, err)
	assert.Empty(t, clean)
}

func TestParseGrammarMatchesStripsFences(t *testing.T) {
	raw := "```json\n{\"matches\":[{\"message\":\"wrong tense\",\"replacements\":[\"sat\",\"sits\",\"sitting\",\"extra\"]}]}\n```"
	issues, err := parseGrammarMatches(raw)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "wrong tense", issues[0].Message)
	assert.Len(t, issues[0].Replacements, 3)
}

func TestCollocationTableFlagsRarePairs(t *testing.T) {
	table := NewCollocationTable(map[string]int{
		"strong tea":    120,
		"make decision": 80,
		"tea now":       40,
	}, 2)

	pairs := table.RarestPairs("powerful tea now")
	require.NotEmpty(t, pairs)
	assert.Equal(t, "powerful tea", pairs[0])
	assert.NotContains(t, pairs, "tea now")
	assert.LessOrEqual(t, len(pairs), 3)
}

func TestCollocationTableEmptyFlagsNothing(t *testing.T) {
	table := LoadCollocationTable("", 2)
	assert.True(t, table.Empty())
	assert.Nil(t, table.RarestPairs("any text at all"))
}
