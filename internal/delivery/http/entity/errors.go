package entity

import "errors"

// Input errors reject a submission before scoring; everything else in
// the pipeline degrades instead of failing.
var (
	ErrMissingLearnerID   = errors.New("learner_id is required")
	ErrMissingSourceText  = errors.New("source_text is required")
	ErrMissingMachineText = errors.New("machine_translation is required")
	ErrMissingCategory    = errors.New("category is required")
	ErrMissingPrompt      = errors.New("prompt is required")

	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAssignmentNotFound = errors.New("practice assignment not found")
	ErrItemNotFound       = errors.New("practice item not found")

	ErrTranslationBackend = errors.New("translation backend unavailable")
)
