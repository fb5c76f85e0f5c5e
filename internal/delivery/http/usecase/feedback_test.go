package usecase

import (
	"testing"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeFeedbackCleanReport(t *testing.T) {
	feedback := SynthesizeFeedback(entity.MetricSet{}, entity.IssueReport{})

	require.Len(t, feedback, 1)
	assert.Contains(t, feedback[0], "No major issues")
}

func TestSynthesizeFeedbackFollowsPriority(t *testing.T) {
	report := entity.IssueReport{
		SemanticFlag: true,
		IdiomIssues: map[string]entity.IdiomStatus{
			"break the ice": entity.IdiomStatusMissing,
		},
		GrammarIssues: []entity.GrammarIssue{{Message: `repeated word "the"`}},
		Priority:      []entity.IssueKind{entity.IssueSemantic, entity.IssueIdiom, entity.IssueGrammar},
	}

	feedback := SynthesizeFeedback(entity.MetricSet{SemanticScore: 40}, report)

	require.Len(t, feedback, 3)
	assert.Contains(t, feedback[0], "meaning")
	assert.Contains(t, feedback[1], "break the ice")
	assert.Contains(t, feedback[2], "Grammar")
}

func TestProfileHints(t *testing.T) {
	assert.Nil(t, ProfileHints(nil))
	assert.Nil(t, ProfileHints(&entity.LearnerProfileView{}))

	hints := ProfileHints(&entity.LearnerProfileView{
		LearnerID:       "amira",
		AvgLexical:      30,
		AvgEditCount:    25,
		SubmissionCount: 2,
	})
	require.Len(t, hints, 3)
	assert.Contains(t, hints[0], "word choices")
	assert.Contains(t, hints[1], "editing heavily")
	assert.Contains(t, hints[2], "Keep going")
}

func TestExtractGlossary(t *testing.T) {
	glossary := extractGlossary("The committee discussed the committee report about renewable energy and renewable resources.")

	require.NotEmpty(t, glossary)
	assert.Equal(t, "committee", glossary[0])
	assert.Equal(t, "renewable", glossary[1])
	assert.LessOrEqual(t, len(glossary), 5)
	assert.NotContains(t, glossary, "the")
}
