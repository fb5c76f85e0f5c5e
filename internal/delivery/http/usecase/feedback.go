package usecase

import (
	"fmt"
	"sort"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
)

// SynthesizeFeedback renders one learner-facing message per flagged
// concern, in the report's priority order. A clean report yields a
// single positive message.
func SynthesizeFeedback(metrics entity.MetricSet, report entity.IssueReport) []string {
	if len(report.Priority) == 0 {
		return []string{"No major issues detected. Well done!"}
	}

	feedback := make([]string, 0, len(report.Priority))
	for _, kind := range report.Priority {
		switch kind {
		case entity.IssueSemantic:
			feedback = append(feedback, fmt.Sprintf(
				"The meaning of your translation drifts from the source (semantic score %.0f). Re-read the source sentence and check that every idea survives.",
				metrics.SemanticScore))
		case entity.IssueIdiom:
			idiomKeys := make([]string, 0, len(report.IdiomIssues))
			for idiom := range report.IdiomIssues {
				idiomKeys = append(idiomKeys, idiom)
			}
			sort.Strings(idiomKeys)
			for _, idiom := range idiomKeys {
				switch report.IdiomIssues[idiom] {
				case entity.IdiomStatusLiteral:
					feedback = append(feedback, fmt.Sprintf(
						"%q was translated word for word. Use the idiomatic equivalent instead.", idiom))
				case entity.IdiomStatusMissing:
					feedback = append(feedback, fmt.Sprintf(
						"The idiom %q was dropped from your translation. Find its idiomatic equivalent in the target language.", idiom))
				}
			}
		case entity.IssueGrammar:
			for _, issue := range report.GrammarIssues {
				feedback = append(feedback, fmt.Sprintf("Grammar: %s", issue.Message))
			}
		case entity.IssueCollocation:
			for _, pair := range report.CollocationFlags {
				feedback = append(feedback, fmt.Sprintf(
					"The word pair %q is unusual in the target language. Consider a more natural combination.", pair))
			}
		}
	}
	return feedback
}

// ProfileHints adds longer-horizon study advice from the learner's
// running averages, plus a short motivational line.
func ProfileHints(profile *entity.LearnerProfileView) []string {
	if profile == nil || profile.SubmissionCount == 0 {
		return nil
	}

	hints := []string{}
	if profile.AvgLexical < 50 {
		hints = append(hints, "Across your recent work, check your word choices and sentence structure.")
	}
	if profile.AvgEditCount > 20 {
		hints = append(hints, "You are editing heavily. Try to plan the sentence before typing to reduce rework.")
	}

	switch {
	case profile.SubmissionCount < 5:
		hints = append(hints, "Keep going! Every translation counts.")
	case profile.SubmissionCount < 20:
		hints = append(hints, "Nice momentum. Your profile is starting to reflect your real strengths.")
	default:
		hints = append(hints, "Impressive consistency. Push for harder texts to keep growing.")
	}
	return hints
}
