package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/repository"
	internalEntity "github.com/DrNour/adaptive-translation-platform/internal/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/llm"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/mapper"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/metrics"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/nlp"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type PracticeUsecase interface {
	// Assign queues practice items for the flagged issue categories,
	// highest priority first. Re-running with the same inputs is a no-op
	// for items already assigned to the learner.
	Assign(ctx context.Context, learnerID string, priority []entity.IssueKind, maxItems int) ([]entity.AssignmentView, error)
	// AssignFromProfile derives the issue categories from the learner's
	// latest scored submission, falling back to profile averages.
	AssignFromProfile(ctx context.Context, learnerID string, maxItems int) ([]entity.AssignmentView, error)
	Queue(ctx context.Context, learnerID string) ([]entity.AssignmentView, error)
	Complete(ctx context.Context, assignmentID uint, answerText string) (*entity.AssignmentView, error)
	CreateItem(ctx context.Context, req entity.CreatePracticeItemRequest) (*entity.PracticeItemView, error)
	ListBank(ctx context.Context, category string) ([]entity.PracticeItemView, error)
}

type PracticeConfig struct {
	DB          *gorm.DB
	Repository  repository.PracticeRepository
	Submissions repository.SubmissionRepository
	Profiles    repository.LearnerProfileRepository
	Semantic    nlp.SemanticScorer
	LLM         *llm.Client
	Config      *viper.Viper
	Log         *logrus.Logger
}

type practiceUsecase struct {
	cfg   PracticeConfig
	locks *learnerLocks
}

func NewPracticeUsecase(cfg PracticeConfig) PracticeUsecase {
	return &practiceUsecase{
		cfg:   cfg,
		locks: newLearnerLocks(),
	}
}

func (u *practiceUsecase) Assign(ctx context.Context, learnerID string, priority []entity.IssueKind, maxItems int) ([]entity.AssignmentView, error) {
	if maxItems <= 0 {
		maxItems = intSetting(u.cfg.Config, "practice.max_items", defaultMaxPracticeItems)
	}

	unlock := u.locks.Lock(learnerID)
	defer unlock()

	existing, err := u.cfg.Repository.FindAssignmentsByLearnerID(nil, learnerID)
	if err != nil {
		return nil, err
	}
	taken := lo.SliceToMap(existing, func(a internalEntity.PracticeAssignment) (string, bool) {
		return a.PracticeItemID, true
	})

	created := []entity.AssignmentView{}
	for _, kind := range lo.Uniq(priority) {
		if len(created) >= maxItems {
			break
		}

		category := string(kind)
		items, err := u.cfg.Repository.ListItems(nil, category)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			if item := u.generateItem(ctx, category); item != nil {
				items = append(items, *item)
			}
		}

		for i := range items {
			if len(created) >= maxItems {
				break
			}
			item := &items[i]
			if taken[item.ItemID] {
				continue
			}

			assignment := &internalEntity.PracticeAssignment{
				LearnerID:      learnerID,
				PracticeItemID: item.ItemID,
				Status:         internalEntity.AssignmentStatusRecommended,
			}
			if err := u.cfg.Repository.CreateAssignment(nil, assignment); err != nil {
				return nil, err
			}
			if err := u.cfg.Repository.IncrementUsageCount(nil, item.ItemID); err != nil {
				u.cfg.Log.WithError(err).Warn("failed to bump practice item usage")
			}

			taken[item.ItemID] = true
			created = append(created, mapper.ConvertToAssignmentView(assignment, item))
		}
	}

	if len(created) > 0 {
		u.cfg.Log.WithFields(logrus.Fields{
			"learner_id": learnerID,
			"assigned":   len(created),
		}).Info("practice items assigned")
	}
	return created, nil
}

func (u *practiceUsecase) AssignFromProfile(ctx context.Context, learnerID string, maxItems int) ([]entity.AssignmentView, error) {
	priority, err := u.derivePriority(learnerID)
	if err != nil {
		return nil, err
	}
	return u.Assign(ctx, learnerID, priority, maxItems)
}

// derivePriority prefers the issue report of the latest scored
// submission; a learner without one falls back to thresholds over the
// profile averages.
func (u *practiceUsecase) derivePriority(learnerID string) ([]entity.IssueKind, error) {
	submissions, err := u.cfg.Submissions.FindByLearnerID(nil, learnerID)
	if err != nil {
		return nil, err
	}
	for i := range submissions {
		if !submissions[i].Scored || submissions[i].IssueReport == "" {
			continue
		}
		var report entity.IssueReport
		if err := json.Unmarshal([]byte(submissions[i].IssueReport), &report); err != nil {
			continue
		}
		return report.Priority, nil
	}

	profile, err := u.cfg.Profiles.FindByLearnerID(nil, learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	priority := []entity.IssueKind{}
	if profile.AvgSemantic < floatSetting(u.cfg.Config, "scoring.semantic_threshold", defaultSemanticThreshold) {
		priority = append(priority, entity.IssueSemantic)
	}
	if profile.AvgLexical < floatSetting(u.cfg.Config, "scoring.lexical_threshold", defaultLexicalThreshold) {
		priority = append(priority, entity.IssueGrammar)
	}
	return priority, nil
}

func (u *practiceUsecase) Queue(ctx context.Context, learnerID string) ([]entity.AssignmentView, error) {
	assignments, err := u.cfg.Repository.FindAssignmentsByLearnerID(nil, learnerID)
	if err != nil {
		return nil, err
	}

	views := make([]entity.AssignmentView, 0, len(assignments))
	for i := range assignments {
		item, err := u.cfg.Repository.FindItemByItemID(nil, assignments[i].PracticeItemID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		views = append(views, mapper.ConvertToAssignmentView(&assignments[i], item))
	}
	return views, nil
}

func (u *practiceUsecase) Complete(ctx context.Context, assignmentID uint, answerText string) (*entity.AssignmentView, error) {
	assignment, err := u.cfg.Repository.FindAssignmentByID(nil, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrAssignmentNotFound
		}
		return nil, err
	}

	item, err := u.cfg.Repository.FindItemByItemID(nil, assignment.PracticeItemID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Completing twice is a no-op; the first completion wins.
	if assignment.Status == internalEntity.AssignmentStatusCompleted {
		u.cfg.Log.WithField("assignment_id", assignmentID).Warn("assignment already completed")
		view := mapper.ConvertToAssignmentView(assignment, item)
		return &view, nil
	}

	now := time.Now()
	assignment.Status = internalEntity.AssignmentStatusCompleted
	assignment.CompletedAt = &now
	assignment.AnswerText = answerText

	if answerText != "" && item != nil && item.ReferenceAnswer != "" {
		metricSet := u.scoreAnswer(ctx, item.ReferenceAnswer, answerText)
		if raw, err := json.Marshal(metricSet); err == nil {
			assignment.MetricSet = string(raw)
		}
	}

	if err := u.cfg.Repository.SaveAssignment(nil, assignment); err != nil {
		return nil, err
	}

	view := mapper.ConvertToAssignmentView(assignment, item)
	return &view, nil
}

func (u *practiceUsecase) scoreAnswer(ctx context.Context, reference, answer string) entity.MetricSet {
	edits, effort := metrics.EditsEffort(reference, answer)
	set := entity.MetricSet{
		LexicalScore:   metrics.NGramScore(reference, answer),
		CharNgramScore: metrics.CharNGramScore(reference, answer),
		EditCount:      edits,
		EffortPercent:  effort,
	}
	if u.cfg.Semantic != nil {
		if score, err := u.cfg.Semantic.Score(ctx, answer, reference); err == nil {
			set.SemanticScore = score
		}
	}
	return set
}

func (u *practiceUsecase) CreateItem(ctx context.Context, req entity.CreatePracticeItemRequest) (*entity.PracticeItemView, error) {
	if strings.TrimSpace(req.Category) == "" {
		return nil, entity.ErrMissingCategory
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, entity.ErrMissingPrompt
	}

	item := &internalEntity.PracticeItem{
		ItemID:          fmt.Sprintf("p-%s", uuid.NewString()),
		Category:        strings.ToLower(strings.TrimSpace(req.Category)),
		Prompt:          req.Prompt,
		ReferenceAnswer: req.ReferenceAnswer,
		CreatedBy:       "instructor",
	}
	if err := u.cfg.Repository.CreateItem(nil, item); err != nil {
		return nil, err
	}

	view := mapper.ConvertToPracticeItemView(item)
	return &view, nil
}

func (u *practiceUsecase) ListBank(ctx context.Context, category string) ([]entity.PracticeItemView, error) {
	items, err := u.cfg.Repository.ListItems(nil, category)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(item internalEntity.PracticeItem, _ int) entity.PracticeItemView {
		return mapper.ConvertToPracticeItemView(&item)
	}), nil
}

// generateItem asks the language model for a fresh exercise when a
// flagged category has no bank items. Returns nil when the backend is
// not configured or fails; assignment then simply skips the category.
func (u *practiceUsecase) generateItem(ctx context.Context, category string) *internalEntity.PracticeItem {
	if u.cfg.LLM == nil || !u.cfg.LLM.Configured() {
		return nil
	}

	prompt := fmt.Sprintf(`You are generating one short translation practice exercise for a learner who struggles with %s issues.
Respond with JSON only, using exactly these keys:
{"prompt": "<an English sentence to translate into Arabic, exercising %s>", "reference_answer": "<a good Arabic translation>"}`, category, category)

	raw, err := u.cfg.LLM.GenerateJSON(ctx, prompt)
	if err != nil {
		u.cfg.Log.WithError(err).WithField("category", category).Warn("practice item generation failed")
		return nil
	}

	var generated struct {
		Prompt          string `json:"prompt"`
		ReferenceAnswer string `json:"reference_answer"`
	}
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(raw), "```json"), "```"))
	if err := json.Unmarshal([]byte(cleaned), &generated); err != nil || generated.Prompt == "" {
		u.cfg.Log.WithField("category", category).Warn("practice item generation returned unusable JSON")
		return nil
	}

	item := &internalEntity.PracticeItem{
		ItemID:          fmt.Sprintf("p-%s", uuid.NewString()),
		Category:        category,
		Prompt:          generated.Prompt,
		ReferenceAnswer: generated.ReferenceAnswer,
		CreatedBy:       "engine",
	}
	if err := u.cfg.Repository.CreateItem(nil, item); err != nil {
		u.cfg.Log.WithError(err).Warn("failed to store generated practice item")
		return nil
	}
	return item
}
