package usecase

import (
	"context"
	"strings"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/idioms"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/nlp"
	"github.com/sirupsen/logrus"
)

// Classifier turns raw metric and checker outputs into a prioritized
// issue report for one submission.
type Classifier struct {
	Grammar           nlp.GrammarChecker
	Idioms            idioms.Dictionary
	Collocations      *nlp.CollocationTable
	SemanticThreshold float64
	Log               *logrus.Logger
}

func NewClassifier(grammar nlp.GrammarChecker, dict idioms.Dictionary, collocations *nlp.CollocationTable, semanticThreshold float64, log *logrus.Logger) *Classifier {
	return &Classifier{
		Grammar:           grammar,
		Idioms:            dict,
		Collocations:      collocations,
		SemanticThreshold: semanticThreshold,
		Log:               log,
	}
}

// Classify inspects the candidate translation against the source text and the
// already computed semantic score. Checker failures degrade to an empty
// finding for that concern rather than failing the report.
func (c *Classifier) Classify(ctx context.Context, sourceText, candidate, targetLang string, semanticScore float64) entity.IssueReport {
	report := entity.IssueReport{
		SemanticFlag:     semanticScore < c.SemanticThreshold,
		IdiomIssues:      map[string]entity.IdiomStatus{},
		GrammarIssues:    []entity.GrammarIssue{},
		CollocationFlags: []string{},
		Priority:         []entity.IssueKind{},
	}

	for _, idiom := range c.Idioms.Occurring(sourceText) {
		report.IdiomIssues[idiom] = c.idiomStatus(idiom, candidate)
	}

	if c.Grammar != nil {
		issues, err := c.Grammar.Check(ctx, candidate, targetLang)
		if err != nil && c.Log != nil {
			c.Log.WithError(err).Warn("grammar check degraded")
		}
		for _, issue := range issues {
			report.GrammarIssues = append(report.GrammarIssues, entity.GrammarIssue{
				Message:      issue.Message,
				Replacements: issue.Replacements,
			})
		}
	}

	if c.Collocations != nil && !c.Collocations.Empty() {
		report.CollocationFlags = c.Collocations.RarestPairs(candidate)
	}

	if report.SemanticFlag {
		report.Priority = append(report.Priority, entity.IssueSemantic)
	}
	if c.idiomFlagged(report.IdiomIssues) {
		report.Priority = append(report.Priority, entity.IssueIdiom)
	}
	if len(report.GrammarIssues) > 0 {
		report.Priority = append(report.Priority, entity.IssueGrammar)
	}
	if len(report.CollocationFlags) > 0 {
		report.Priority = append(report.Priority, entity.IssueCollocation)
	}

	return report
}

func (c *Classifier) idiomStatus(idiom, candidate string) entity.IdiomStatus {
	lowered := strings.ToLower(candidate)
	entry := c.Idioms[idiom]

	if entry.Expected != "" && strings.Contains(lowered, strings.ToLower(entry.Expected)) {
		return entity.IdiomStatusIdiomatic
	}
	if entry.Literal != "" && strings.Contains(lowered, strings.ToLower(entry.Literal)) {
		return entity.IdiomStatusLiteral
	}
	// An untranslated copy of the source idiom in the candidate counts as
	// a literal carry-over.
	if strings.Contains(lowered, idiom) {
		return entity.IdiomStatusLiteral
	}
	return entity.IdiomStatusMissing
}

func (c *Classifier) idiomFlagged(statuses map[string]entity.IdiomStatus) bool {
	for _, status := range statuses {
		if status != entity.IdiomStatusIdiomatic {
			return true
		}
	}
	return false
}
