package usecase

import (
	"context"
	"testing"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileUsecase() LearnerProfileUsecase {
	return NewLearnerProfileUsecase(LearnerProfileConfig{
		Repository: newFakeProfileRepo(),
		Log:        testLogger(),
	})
}

func TestProfileRecordRunningMean(t *testing.T) {
	u := newProfileUsecase()
	ctx := context.Background()

	_, err := u.Record(ctx, "amira", entity.MetricSet{LexicalScore: 90, SemanticScore: 90, EditCount: 10, EffortPercent: 20})
	require.NoError(t, err)
	_, err = u.Record(ctx, "amira", entity.MetricSet{LexicalScore: 85, SemanticScore: 85, EditCount: 20, EffortPercent: 40})
	require.NoError(t, err)
	profile, err := u.Record(ctx, "amira", entity.MetricSet{LexicalScore: 95, SemanticScore: 95, EditCount: 30, EffortPercent: 60})
	require.NoError(t, err)

	assert.InDelta(t, 90, profile.AvgLexical, 1e-9)
	assert.InDelta(t, 90, profile.AvgSemantic, 1e-9)
	assert.InDelta(t, 20, profile.AvgEditCount, 1e-9)
	assert.InDelta(t, 40, profile.AvgEffort, 1e-9)
	assert.Equal(t, int64(3), profile.SubmissionCount)
	assert.Equal(t, 5, profile.DifficultyTier)
}

func TestProfileRecordOrderInsensitive(t *testing.T) {
	sets := []entity.MetricSet{
		{LexicalScore: 10, SemanticScore: 30, EditCount: 5, EffortPercent: 10},
		{LexicalScore: 70, SemanticScore: 90, EditCount: 25, EffortPercent: 50},
		{LexicalScore: 40, SemanticScore: 60, EditCount: 15, EffortPercent: 30},
	}
	ctx := context.Background()

	forward := newProfileUsecase()
	for _, set := range sets {
		_, err := forward.Record(ctx, "x", set)
		require.NoError(t, err)
	}
	backward := newProfileUsecase()
	for i := len(sets) - 1; i >= 0; i-- {
		_, err := backward.Record(ctx, "x", sets[i])
		require.NoError(t, err)
	}

	a, err := forward.Get(ctx, "x")
	require.NoError(t, err)
	b, err := backward.Get(ctx, "x")
	require.NoError(t, err)

	assert.InDelta(t, a.AvgLexical, b.AvgLexical, 1e-9)
	assert.InDelta(t, a.AvgSemantic, b.AvgSemantic, 1e-9)
	assert.InDelta(t, a.AvgEditCount, b.AvgEditCount, 1e-9)
	assert.InDelta(t, a.AvgEffort, b.AvgEffort, 1e-9)
}

func TestProfileGetUnknownLearner(t *testing.T) {
	u := newProfileUsecase()

	profile, err := u.Get(context.Background(), "nobody")
	require.NoError(t, err)

	assert.Equal(t, "nobody", profile.LearnerID)
	assert.Zero(t, profile.SubmissionCount)
	assert.Zero(t, profile.AvgSemantic)
	assert.Equal(t, 1, profile.DifficultyTier)
}

func TestSelectDifficultyTiers(t *testing.T) {
	tests := []struct {
		avg  float64
		tier int
	}{
		{0, 1}, {19.9, 1}, {20, 2}, {39.9, 2}, {40, 3}, {59.9, 3}, {60, 4}, {79.9, 4}, {80, 5}, {100, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, SelectDifficulty(tt.avg), "avg %.1f", tt.avg)
	}
}
