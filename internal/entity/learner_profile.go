package entity

import (
	"time"

	"gorm.io/gorm"
)

// LearnerProfile - running means over all of a learner's scored
// submissions, recomputed incrementally on every scoring event.
type LearnerProfile struct {
	ID              uint    `gorm:"primarykey" json:"id"`
	LearnerID       string  `gorm:"uniqueIndex;size:100;not null" json:"learner_id"`
	AvgLexical      float64 `json:"avg_lexical"`
	AvgSemantic     float64 `json:"avg_semantic"`
	AvgEditCount    float64 `json:"avg_edit_count"`
	AvgEffort       float64 `json:"avg_effort"`
	SubmissionCount int64   `gorm:"not null;default:0" json:"submission_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LearnerProfile) TableName() string {
	return "learner_profiles"
}
