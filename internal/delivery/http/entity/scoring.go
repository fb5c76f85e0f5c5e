package entity

// IssueKind tags a category of flagged problems in priority order.
type IssueKind string

const (
	IssueSemantic    IssueKind = "semantic"
	IssueIdiom       IssueKind = "idiom"
	IssueGrammar     IssueKind = "grammar"
	IssueCollocation IssueKind = "collocation"
)

// IdiomStatus describes how a source idiom surfaced in the candidate.
type IdiomStatus string

const (
	IdiomStatusIdiomatic IdiomStatus = "idiomatic"
	IdiomStatusMissing   IdiomStatus = "non_idiomatic_missing"
	IdiomStatusLiteral   IdiomStatus = "non_idiomatic_literal"
)

// MetricSet carries the deterministic quality metrics for one scored
// text, all on the scales fixed by the scoring contract.
type MetricSet struct {
	LexicalScore   float64 `json:"lexical_score"`
	CharNgramScore float64 `json:"char_ngram_score"`
	SemanticScore  float64 `json:"semantic_score"`
	EditCount      int     `json:"edit_count"`
	EffortPercent  float64 `json:"effort_percent"`
}

// GrammarIssue is one flagged fluency problem.
type GrammarIssue struct {
	Message      string   `json:"message"`
	Replacements []string `json:"replacements,omitempty"`
}

// IssueReport is the structured classification of one submission.
// Priority lists the flagged categories in pedagogical order:
// semantic > idiom > grammar > collocation.
type IssueReport struct {
	SemanticFlag     bool                   `json:"semantic_flag"`
	IdiomIssues      map[string]IdiomStatus `json:"idiom_issues"`
	GrammarIssues    []GrammarIssue         `json:"grammar_issues"`
	CollocationFlags []string               `json:"collocation_flags"`
	Priority         []IssueKind            `json:"priority"`
}

// SubmitSubmissionRequest - body of POST /submissions.
type SubmitSubmissionRequest struct {
	LearnerID          string `json:"learner_id" validate:"required"`
	TaskID             string `json:"task_id"`
	SourceText         string `json:"source_text" validate:"required"`
	MachineTranslation string `json:"machine_translation" validate:"required"`
	PostEditText       string `json:"post_edit_text"`
	ReferenceText      string `json:"reference_text"`
	TargetLang         string `json:"target_lang"`
}

// SubmissionScore - response of POST /submissions: the full pipeline
// output for one submission.
type SubmissionScore struct {
	SubmissionID   uint             `json:"submission_id"`
	LearnerID      string           `json:"learner_id"`
	Metrics        MetricSet        `json:"metrics"`
	Report         IssueReport      `json:"report"`
	DifficultyTier int              `json:"difficulty_tier"`
	Assignments    []AssignmentView `json:"assignments"`
	Feedback       []string         `json:"feedback"`
}

// SubmissionLog - one row of a learner's scored history.
type SubmissionLog struct {
	ID                 uint        `json:"id"`
	TaskID             string      `json:"task_id,omitempty"`
	SourceText         string      `json:"source_text"`
	MachineTranslation string      `json:"machine_translation"`
	PostEditText       string      `json:"post_edit_text"`
	Metrics            MetricSet   `json:"metrics"`
	Report             IssueReport `json:"report"`
	SubmittedAt        string      `json:"submitted_at"`
}

// LearnerProfileView - the running aggregate exposed to clients. A
// learner with no submissions gets the zero sentinel with tier 1.
type LearnerProfileView struct {
	LearnerID       string  `json:"learner_id"`
	AvgLexical      float64 `json:"avg_lexical"`
	AvgSemantic     float64 `json:"avg_semantic"`
	AvgEditCount    float64 `json:"avg_edit_count"`
	AvgEffort       float64 `json:"avg_effort"`
	SubmissionCount int64   `json:"submission_count"`
	DifficultyTier  int     `json:"difficulty_tier"`
}

// TranslateRequest - body of POST /translate.
type TranslateRequest struct {
	SourceText string `json:"source_text" validate:"required"`
	TargetLang string `json:"target_lang"`
}

// TranslateResponse - a machine draft plus glossary suggestions drawn
// from the most frequent content words of the source.
type TranslateResponse struct {
	MachineTranslation string   `json:"machine_translation"`
	Glossary           []string `json:"glossary"`
}
