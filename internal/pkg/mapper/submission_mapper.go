package mapper

import (
	"encoding/json"
	"time"

	httpEntity "github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	dbEntity "github.com/DrNour/adaptive-translation-platform/internal/entity"
)

// ApplyMetrics - attach a computed metric set and issue report to a
// submission row before persisting it.
func ApplyMetrics(submission *dbEntity.Submission, metrics httpEntity.MetricSet, report httpEntity.IssueReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}

	submission.Scored = true
	submission.LexicalScore = metrics.LexicalScore
	submission.CharNgramScore = metrics.CharNgramScore
	submission.SemanticScore = metrics.SemanticScore
	submission.EditCount = metrics.EditCount
	submission.EffortPercent = metrics.EffortPercent
	submission.IssueReport = string(raw)
	return nil
}

// ConvertToSubmissionLog - convert a scored submission row to its
// history view. A row with an unreadable report JSON gets an empty
// report rather than failing the whole history.
func ConvertToSubmissionLog(submission *dbEntity.Submission) httpEntity.SubmissionLog {
	var report httpEntity.IssueReport
	if submission.IssueReport != "" {
		_ = json.Unmarshal([]byte(submission.IssueReport), &report)
	}

	return httpEntity.SubmissionLog{
		ID:                 submission.ID,
		TaskID:             submission.TaskID,
		SourceText:         submission.SourceText,
		MachineTranslation: submission.MachineTranslation,
		PostEditText:       submission.PostEditText,
		Metrics: httpEntity.MetricSet{
			LexicalScore:   submission.LexicalScore,
			CharNgramScore: submission.CharNgramScore,
			SemanticScore:  submission.SemanticScore,
			EditCount:      submission.EditCount,
			EffortPercent:  submission.EffortPercent,
		},
		Report:      report,
		SubmittedAt: submission.CreatedAt.Format(time.RFC3339),
	}
}

// ConvertToProfileView - convert a profile row plus its difficulty tier
// to the client view.
func ConvertToProfileView(profile *dbEntity.LearnerProfile, tier int) httpEntity.LearnerProfileView {
	return httpEntity.LearnerProfileView{
		LearnerID:       profile.LearnerID,
		AvgLexical:      profile.AvgLexical,
		AvgSemantic:     profile.AvgSemantic,
		AvgEditCount:    profile.AvgEditCount,
		AvgEffort:       profile.AvgEffort,
		SubmissionCount: profile.SubmissionCount,
		DifficultyTier:  tier,
	}
}

// ConvertToPracticeItemView - convert a bank row to the client view.
func ConvertToPracticeItemView(item *dbEntity.PracticeItem) httpEntity.PracticeItemView {
	return httpEntity.PracticeItemView{
		ItemID:          item.ItemID,
		Category:        item.Category,
		Prompt:          item.Prompt,
		ReferenceAnswer: item.ReferenceAnswer,
		CreatedBy:       item.CreatedBy,
	}
}

// ConvertToAssignmentView - convert an assignment row and its bank item
// to the client view.
func ConvertToAssignmentView(assignment *dbEntity.PracticeAssignment, item *dbEntity.PracticeItem) httpEntity.AssignmentView {
	view := httpEntity.AssignmentView{
		AssignmentID: assignment.ID,
		ItemID:       assignment.PracticeItemID,
		Status:       assignment.Status,
		AssignedAt:   assignment.AssignedAt.Format(time.RFC3339),
	}
	if item != nil {
		view.Category = item.Category
		view.Prompt = item.Prompt
	}
	if assignment.CompletedAt != nil {
		view.CompletedAt = assignment.CompletedAt.Format(time.RFC3339)
	}
	if assignment.MetricSet != "" {
		var metrics httpEntity.MetricSet
		if err := json.Unmarshal([]byte(assignment.MetricSet), &metrics); err == nil {
			view.Metrics = &metrics
		}
	}
	return view
}
