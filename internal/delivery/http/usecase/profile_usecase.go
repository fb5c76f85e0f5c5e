package usecase

import (
	"context"
	"errors"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/repository"
	internalEntity "github.com/DrNour/adaptive-translation-platform/internal/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LearnerProfileUsecase interface {
	// Record folds one scored metric set into the learner's running
	// averages and returns the updated profile.
	Record(ctx context.Context, learnerID string, metrics entity.MetricSet) (*entity.LearnerProfileView, error)
	// Get returns the learner's profile, or the zero sentinel when the
	// learner has no scored submissions yet.
	Get(ctx context.Context, learnerID string) (*entity.LearnerProfileView, error)
}

type LearnerProfileConfig struct {
	DB         *gorm.DB
	Repository repository.LearnerProfileRepository
	Log        *logrus.Logger
}

type learnerProfileUsecase struct {
	cfg   LearnerProfileConfig
	locks *learnerLocks
}

func NewLearnerProfileUsecase(cfg LearnerProfileConfig) LearnerProfileUsecase {
	return &learnerProfileUsecase{
		cfg:   cfg,
		locks: newLearnerLocks(),
	}
}

func (u *learnerProfileUsecase) Record(ctx context.Context, learnerID string, metrics entity.MetricSet) (*entity.LearnerProfileView, error) {
	unlock := u.locks.Lock(learnerID)
	defer unlock()

	profile, err := u.cfg.Repository.FindByLearnerID(nil, learnerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &internalEntity.LearnerProfile{LearnerID: learnerID}
	}

	// Streaming mean: avg' = avg + (x - avg) / (n + 1). Order of
	// submissions does not change the final averages.
	n := float64(profile.SubmissionCount)
	profile.AvgLexical += (metrics.LexicalScore - profile.AvgLexical) / (n + 1)
	profile.AvgSemantic += (metrics.SemanticScore - profile.AvgSemantic) / (n + 1)
	profile.AvgEditCount += (float64(metrics.EditCount) - profile.AvgEditCount) / (n + 1)
	profile.AvgEffort += (metrics.EffortPercent - profile.AvgEffort) / (n + 1)
	profile.SubmissionCount++

	if err := u.cfg.Repository.Upsert(nil, profile); err != nil {
		return nil, err
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"learner_id":       learnerID,
		"submission_count": profile.SubmissionCount,
		"avg_semantic":     profile.AvgSemantic,
	}).Debug("learner profile updated")

	view := mapper.ConvertToProfileView(profile, SelectDifficulty(profile.AvgSemantic))
	return &view, nil
}

func (u *learnerProfileUsecase) Get(ctx context.Context, learnerID string) (*entity.LearnerProfileView, error) {
	profile, err := u.cfg.Repository.FindByLearnerID(nil, learnerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Unknown learner: zero sentinel, lowest tier.
		profile = &internalEntity.LearnerProfile{LearnerID: learnerID}
	}

	view := mapper.ConvertToProfileView(profile, SelectDifficulty(profile.AvgSemantic))
	return &view, nil
}

// SelectDifficulty maps a learner's average semantic score to one of
// five practice difficulty tiers. New learners start at tier 1.
func SelectDifficulty(avgSemantic float64) int {
	switch {
	case avgSemantic >= 80:
		return 5
	case avgSemantic >= 60:
		return 4
	case avgSemantic >= 40:
		return 3
	case avgSemantic >= 20:
		return 2
	default:
		return 1
	}
}
