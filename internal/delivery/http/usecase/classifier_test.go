package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/idioms"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/nlp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testClassifier(dict idioms.Dictionary, collocations *nlp.CollocationTable) *Classifier {
	return NewClassifier(nlp.NewHeuristicGrammarChecker(), dict, collocations, 65, testLogger())
}

func TestClassifyCleanSubmission(t *testing.T) {
	c := testClassifier(idioms.Dictionary{}, nil)

	report := c.Classify(context.Background(), "The cat sat on the mat.", "جلس القط على الحصيرة.", "ar", 100)

	assert.False(t, report.SemanticFlag)
	assert.Empty(t, report.IdiomIssues)
	assert.Empty(t, report.GrammarIssues)
	assert.Empty(t, report.CollocationFlags)
	assert.Empty(t, report.Priority)
}

func TestClassifyPriorityOrder(t *testing.T) {
	c := testClassifier(idioms.Dictionary{}, nil)

	// Low semantic score plus a doubled word: both flags, semantic first.
	report := c.Classify(context.Background(), "A completely different sentence.", "جلس جلس القط", "ar", 20)

	assert.Equal(t, []entity.IssueKind{entity.IssueSemantic, entity.IssueGrammar}, report.Priority)
}

func TestClassifyIdiomStatuses(t *testing.T) {
	dict := idioms.Dictionary{
		"break the ice": {Expected: "كسر الجليد", Literal: "كسر الثلج"},
	}
	c := testClassifier(dict, nil)
	source := "It is hard to break the ice with strangers."

	tests := []struct {
		name      string
		candidate string
		want      entity.IdiomStatus
	}{
		{"idiomatic rendering", "من الصعب كسر الجليد مع الغرباء.", entity.IdiomStatusIdiomatic},
		{"literal rendering", "من الصعب كسر الثلج مع الغرباء.", entity.IdiomStatusLiteral},
		{"untranslated copy", "من الصعب break the ice مع الغرباء.", entity.IdiomStatusLiteral},
		{"dropped entirely", "من الصعب التحدث مع الغرباء.", entity.IdiomStatusMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := c.Classify(context.Background(), source, tt.candidate, "ar", 90)
			assert.Equal(t, tt.want, report.IdiomIssues["break the ice"])
		})
	}
}

func TestClassifyIdiomaticNotFlagged(t *testing.T) {
	dict := idioms.Dictionary{"break the ice": {Expected: "كسر الجليد"}}
	c := testClassifier(dict, nil)

	report := c.Classify(context.Background(), "Try to break the ice.", "حاول كسر الجليد.", "ar", 90)

	assert.Equal(t, entity.IdiomStatusIdiomatic, report.IdiomIssues["break the ice"])
	assert.NotContains(t, report.Priority, entity.IssueIdiom)
}

func TestClassifyCollocationFlags(t *testing.T) {
	table := nlp.NewCollocationTable(map[string]int{
		"strong coffee":   50,
		"powerful coffee": 1,
	}, 5)
	c := testClassifier(idioms.Dictionary{}, table)

	report := c.Classify(context.Background(), "source", "powerful coffee is great", "en", 90)

	assert.Contains(t, report.CollocationFlags, "powerful coffee")
	assert.Contains(t, report.Priority, entity.IssueCollocation)
}

func TestClassifyEmptyCollocationTableFlagsNothing(t *testing.T) {
	c := testClassifier(idioms.Dictionary{}, nlp.NewCollocationTable(nil, 5))

	report := c.Classify(context.Background(), "source", "powerful coffee is great", "en", 90)

	assert.Empty(t, report.CollocationFlags)
}
