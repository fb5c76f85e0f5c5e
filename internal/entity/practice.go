package entity

import (
	"time"

	"gorm.io/gorm"
)

// Assignment lifecycle. recommended -> completed, no other transitions.
const (
	AssignmentStatusRecommended = "recommended"
	AssignmentStatusCompleted   = "completed"
)

// PracticeItem - a remediation exercise in the practice bank. Content is
// immutable once created; UsageCount tracks how often the engine has
// assigned it, which drives least-recently-assigned ordering.
type PracticeItem struct {
	ID              uint   `gorm:"primarykey" json:"id"`
	ItemID          string `gorm:"uniqueIndex;size:100;not null" json:"item_id"`
	Category        string `gorm:"size:50;not null;index" json:"category"` // semantic, idiom, grammar, collocation or instructor-defined
	Prompt          string `gorm:"type:text;not null" json:"prompt"`
	ReferenceAnswer string `gorm:"type:text" json:"reference_answer"`
	CreatedBy       string `gorm:"size:20;default:instructor" json:"created_by"` // instructor, engine
	UsageCount      int    `gorm:"default:0" json:"usage_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PracticeItem) TableName() string {
	return "practice_items"
}

// PracticeAssignment - a queued exercise for a learner. At most one row
// per (learner, item) pair; the status moves recommended -> completed
// exactly once and never regresses.
type PracticeAssignment struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	LearnerID      string     `gorm:"size:100;not null;index:idx_assignment_learner_item,unique" json:"learner_id"`
	PracticeItemID string     `gorm:"size:100;not null;index:idx_assignment_learner_item,unique" json:"practice_item_id"`
	Status         string     `gorm:"size:20;not null;default:recommended;index" json:"status"`
	AssignedAt     time.Time  `gorm:"autoCreateTime" json:"assigned_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	AnswerText     string     `gorm:"type:text" json:"answer_text"`
	MetricSet      string     `gorm:"type:text" json:"metric_set"` // JSON, present when the practice answer was scored

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PracticeAssignment) TableName() string {
	return "practice_assignments"
}
