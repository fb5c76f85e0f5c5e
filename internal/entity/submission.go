package entity

import (
	"time"

	"gorm.io/gorm"
)

// Submission - a learner's post-edited machine translation. The text
// fields are immutable once scored; the metric columns and the issue
// report JSON are attached by the scoring pipeline.
type Submission struct {
	ID                 uint   `gorm:"primarykey" json:"id"`
	LearnerID          string `gorm:"size:100;not null;index" json:"learner_id"`
	TaskID             string `gorm:"size:100;index" json:"task_id"`
	SourceText         string `gorm:"type:text;not null" json:"source_text"`
	MachineTranslation string `gorm:"type:text;not null" json:"machine_translation"`
	PostEditText       string `gorm:"type:text;not null" json:"post_edit_text"`
	ReferenceText      string `gorm:"type:text" json:"reference_text"`
	TargetLang         string `gorm:"size:10;default:ar" json:"target_lang"`

	Scored         bool    `gorm:"not null;default:false;index" json:"scored"`
	LexicalScore   float64 `json:"lexical_score"`
	CharNgramScore float64 `json:"char_ngram_score"`
	SemanticScore  float64 `json:"semantic_score"`
	EditCount      int     `json:"edit_count"`
	EffortPercent  float64 `json:"effort_percent"`
	IssueReport    string  `gorm:"type:text" json:"issue_report"` // JSON

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}
