package entity

// CreatePracticeItemRequest - body of POST /practice/items.
type CreatePracticeItemRequest struct {
	Category        string `json:"category" validate:"required"`
	Prompt          string `json:"prompt" validate:"required"`
	ReferenceAnswer string `json:"reference_answer"`
}

// PracticeItemView - one practice bank entry.
type PracticeItemView struct {
	ItemID          string `json:"item_id"`
	Category        string `json:"category"`
	Prompt          string `json:"prompt"`
	ReferenceAnswer string `json:"reference_answer,omitempty"`
	CreatedBy       string `json:"created_by"`
}

// AssignmentView - one queued or completed practice assignment.
type AssignmentView struct {
	AssignmentID uint       `json:"assignment_id"`
	ItemID       string     `json:"item_id"`
	Category     string     `json:"category"`
	Prompt       string     `json:"prompt"`
	Status       string     `json:"status"`
	AssignedAt   string     `json:"assigned_at"`
	CompletedAt  string     `json:"completed_at,omitempty"`
	Metrics      *MetricSet `json:"metrics,omitempty"`
}

// AssignPracticeRequest - body of POST /learners/:learner_id/practice/assign.
type AssignPracticeRequest struct {
	MaxItems int `json:"max_items"`
}

// CompleteAssignmentRequest - body of POST /practice/assignments/:assignment_id/complete.
type CompleteAssignmentRequest struct {
	AnswerText string `json:"answer_text"`
}
