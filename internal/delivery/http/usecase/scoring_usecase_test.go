package usecase

import (
	"context"
	"testing"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/idioms"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoringHarness struct {
	submissions *fakeSubmissionRepo
	practice    *fakePracticeRepo
	usecase     ScoringUsecase
}

func newScoringHarness(dict idioms.Dictionary) *scoringHarness {
	submissions := &fakeSubmissionRepo{}
	practiceRepo := &fakePracticeRepo{}
	seedBank(practiceRepo)
	profiles := NewLearnerProfileUsecase(LearnerProfileConfig{
		Repository: newFakeProfileRepo(),
		Log:        testLogger(),
	})
	practice := NewPracticeUsecase(PracticeConfig{
		Repository:  practiceRepo,
		Submissions: submissions,
		Profiles:    newFakeProfileRepo(),
		Log:         testLogger(),
	})
	semantic := nlp.NewTFIDFScorer()

	return &scoringHarness{
		submissions: submissions,
		practice:    practiceRepo,
		usecase: NewScoringUsecase(ScoringConfig{
			Repository: submissions,
			Profiles:   profiles,
			Practice:   practice,
			Classifier: NewClassifier(nlp.NewHeuristicGrammarChecker(), dict, nil, 65, testLogger()),
			Semantic:   semantic,
			Log:        testLogger(),
		}),
	}
}

func TestScorePerfectPostEdit(t *testing.T) {
	h := newScoringHarness(idioms.Dictionary{})

	score, err := h.usecase.Score(context.Background(), entity.SubmitSubmissionRequest{
		LearnerID:          "amira",
		SourceText:         "The cat sat on the mat.",
		MachineTranslation: "جلس القط على الحصيرة.",
		PostEditText:       "جلس القط على الحصيرة.",
		ReferenceText:      "جلس القط على الحصيرة.",
		TargetLang:         "ar",
	})
	require.NoError(t, err)

	assert.InDelta(t, 100, score.Metrics.LexicalScore, 1e-9)
	assert.InDelta(t, 100, score.Metrics.CharNgramScore, 1e-9)
	assert.InDelta(t, 100, score.Metrics.SemanticScore, 1e-9)
	assert.Zero(t, score.Metrics.EditCount)
	assert.Zero(t, score.Metrics.EffortPercent)
	assert.Empty(t, score.Report.Priority)
	assert.Empty(t, score.Assignments)
	assert.Equal(t, 5, score.DifficultyTier)
	require.NotEmpty(t, score.Feedback)
	assert.Contains(t, score.Feedback[0], "No major issues")
}

func TestScoreFlagsAndAssignsPractice(t *testing.T) {
	h := newScoringHarness(idioms.Dictionary{})

	score, err := h.usecase.Score(context.Background(), entity.SubmitSubmissionRequest{
		LearnerID:          "amira",
		SourceText:         "The committee reached a decision yesterday.",
		MachineTranslation: "وصلت اللجنة إلى قرار أمس.",
		PostEditText:       "شيء شيء مختلف تماما هنا.",
		ReferenceText:      "توصلت اللجنة إلى قرار أمس.",
		TargetLang:         "ar",
	})
	require.NoError(t, err)

	assert.True(t, score.Report.SemanticFlag)
	require.NotEmpty(t, score.Report.Priority)
	assert.Equal(t, entity.IssueSemantic, score.Report.Priority[0])
	assert.NotEmpty(t, score.Assignments)
	assert.Equal(t, "semantic", score.Assignments[0].Category)
	assert.NotEmpty(t, score.Feedback)
	assert.Equal(t, 1, score.DifficultyTier)
}

func TestScoreRejectsMissingFields(t *testing.T) {
	h := newScoringHarness(idioms.Dictionary{})
	ctx := context.Background()

	_, err := h.usecase.Score(ctx, entity.SubmitSubmissionRequest{
		SourceText:         "text",
		MachineTranslation: "نص",
	})
	assert.ErrorIs(t, err, entity.ErrMissingLearnerID)

	_, err = h.usecase.Score(ctx, entity.SubmitSubmissionRequest{
		LearnerID:          "amira",
		MachineTranslation: "نص",
	})
	assert.ErrorIs(t, err, entity.ErrMissingSourceText)

	_, err = h.usecase.Score(ctx, entity.SubmitSubmissionRequest{
		LearnerID:  "amira",
		SourceText: "text",
	})
	assert.ErrorIs(t, err, entity.ErrMissingMachineText)
}

func TestScoreWithoutReferenceZeroesLexical(t *testing.T) {
	h := newScoringHarness(idioms.Dictionary{})

	score, err := h.usecase.Score(context.Background(), entity.SubmitSubmissionRequest{
		LearnerID:          "amira",
		SourceText:         "Good morning.",
		MachineTranslation: "صباح الخير.",
		PostEditText:       "صباح الخير.",
	})
	require.NoError(t, err)

	assert.Zero(t, score.Metrics.LexicalScore)
	assert.Zero(t, score.Metrics.CharNgramScore)
	assert.Zero(t, score.Metrics.EditCount)
}

func TestScoreIdiomLiteralCarryOver(t *testing.T) {
	dict := idioms.Dictionary{"break the ice": {Expected: "كسر الجليد"}}
	h := newScoringHarness(dict)

	score, err := h.usecase.Score(context.Background(), entity.SubmitSubmissionRequest{
		LearnerID:          "amira",
		SourceText:         "He tried to break the ice.",
		MachineTranslation: "حاول break the ice.",
		PostEditText:       "حاول break the ice.",
		ReferenceText:      "حاول كسر الجليد.",
		TargetLang:         "ar",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.IdiomStatusLiteral, score.Report.IdiomIssues["break the ice"])
	assert.Contains(t, score.Report.Priority, entity.IssueIdiom)
}

func TestScorePersistsAndHistoryReturnsNewestFirst(t *testing.T) {
	h := newScoringHarness(idioms.Dictionary{})
	ctx := context.Background()

	for _, task := range []string{"t1", "t2"} {
		_, err := h.usecase.Score(ctx, entity.SubmitSubmissionRequest{
			LearnerID:          "amira",
			TaskID:             task,
			SourceText:         "Good morning.",
			MachineTranslation: "صباح الخير.",
			PostEditText:       "صباح الخير.",
			ReferenceText:      "صباح الخير.",
		})
		require.NoError(t, err)
	}

	history, err := h.usecase.History(ctx, "amira")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "t2", history[0].TaskID)
	assert.Equal(t, "t1", history[1].TaskID)
	assert.InDelta(t, 100, history[0].Metrics.LexicalScore, 1e-9)
	assert.NotEmpty(t, history[0].SubmittedAt)
}
