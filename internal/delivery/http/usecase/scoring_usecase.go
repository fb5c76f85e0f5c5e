package usecase

import (
	"context"
	"strings"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/repository"
	internalEntity "github.com/DrNour/adaptive-translation-platform/internal/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/mapper"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/metrics"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/nlp"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type ScoringUsecase interface {
	// Score runs the full pipeline for one submission: metrics, issue
	// classification, persistence, profile update, practice assignment
	// and feedback.
	Score(ctx context.Context, req entity.SubmitSubmissionRequest) (*entity.SubmissionScore, error)
	History(ctx context.Context, learnerID string) ([]entity.SubmissionLog, error)
}

type ScoringConfig struct {
	DB         *gorm.DB
	Repository repository.SubmissionRepository
	Profiles   LearnerProfileUsecase
	Practice   PracticeUsecase
	Classifier *Classifier
	Semantic   nlp.SemanticScorer
	Config     *viper.Viper
	Log        *logrus.Logger
}

type scoringUsecase struct {
	cfg ScoringConfig
}

func NewScoringUsecase(cfg ScoringConfig) ScoringUsecase {
	return &scoringUsecase{cfg: cfg}
}

func (u *scoringUsecase) Score(ctx context.Context, req entity.SubmitSubmissionRequest) (*entity.SubmissionScore, error) {
	if strings.TrimSpace(req.LearnerID) == "" {
		return nil, entity.ErrMissingLearnerID
	}
	if strings.TrimSpace(req.SourceText) == "" {
		return nil, entity.ErrMissingSourceText
	}
	if strings.TrimSpace(req.MachineTranslation) == "" {
		return nil, entity.ErrMissingMachineText
	}
	if req.TargetLang == "" {
		req.TargetLang = "ar"
	}

	candidate := req.PostEditText
	// Semantic adequacy is judged against the reference when one exists,
	// otherwise against the source text itself.
	semanticTarget := req.ReferenceText
	if semanticTarget == "" {
		semanticTarget = req.SourceText
	}

	var metricSet entity.MetricSet
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		metricSet.LexicalScore = metrics.NGramScore(req.ReferenceText, candidate)
		metricSet.CharNgramScore = metrics.CharNGramScore(req.ReferenceText, candidate)
		return nil
	})
	group.Go(func() error {
		metricSet.EditCount, metricSet.EffortPercent = metrics.EditsEffort(req.MachineTranslation, candidate)
		return nil
	})
	group.Go(func() error {
		score, err := u.cfg.Semantic.Score(groupCtx, candidate, semanticTarget)
		if err != nil {
			return err
		}
		metricSet.SemanticScore = score
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	report := u.cfg.Classifier.Classify(ctx, req.SourceText, candidate, req.TargetLang, metricSet.SemanticScore)

	submission := &internalEntity.Submission{
		LearnerID:          req.LearnerID,
		TaskID:             req.TaskID,
		SourceText:         req.SourceText,
		MachineTranslation: req.MachineTranslation,
		PostEditText:       req.PostEditText,
		ReferenceText:      req.ReferenceText,
		TargetLang:         req.TargetLang,
	}
	if err := mapper.ApplyMetrics(submission, metricSet, report); err != nil {
		return nil, err
	}
	if err := u.cfg.Repository.Create(nil, submission); err != nil {
		return nil, err
	}

	profile, err := u.cfg.Profiles.Record(ctx, req.LearnerID, metricSet)
	if err != nil {
		return nil, err
	}

	maxItems := intSetting(u.cfg.Config, "practice.max_items", defaultMaxPracticeItems)
	assignments, err := u.cfg.Practice.Assign(ctx, req.LearnerID, report.Priority, maxItems)
	if err != nil {
		// Score results still stand when the practice bank misbehaves.
		u.cfg.Log.WithError(err).Warn("practice assignment failed")
		assignments = []entity.AssignmentView{}
	}

	feedback := append(SynthesizeFeedback(metricSet, report), ProfileHints(profile)...)

	u.cfg.Log.WithFields(logrus.Fields{
		"learner_id":     req.LearnerID,
		"submission_id":  submission.ID,
		"semantic_score": metricSet.SemanticScore,
		"flags":          len(report.Priority),
	}).Info("submission scored")

	return &entity.SubmissionScore{
		SubmissionID:   submission.ID,
		LearnerID:      req.LearnerID,
		Metrics:        metricSet,
		Report:         report,
		DifficultyTier: profile.DifficultyTier,
		Assignments:    assignments,
		Feedback:       feedback,
	}, nil
}

func (u *scoringUsecase) History(ctx context.Context, learnerID string) ([]entity.SubmissionLog, error) {
	submissions, err := u.cfg.Repository.FindByLearnerID(nil, learnerID)
	if err != nil {
		return nil, err
	}
	return lo.Map(submissions, func(s internalEntity.Submission, _ int) entity.SubmissionLog {
		return mapper.ConvertToSubmissionLog(&s)
	}), nil
}
