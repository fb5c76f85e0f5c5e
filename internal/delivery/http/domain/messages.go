package domain

var (
	SUBMISSION_SCORE_SUCCESS   = "Submission scored"
	SUBMISSION_SCORE_FAILED    = "Failed to score submission"
	SUBMISSION_HISTORY_SUCCESS = "Submission history retrieved"
	SUBMISSION_HISTORY_FAILED  = "Failed to retrieve submission history"
	PROFILE_GET_SUCCESS        = "Learner profile retrieved"
	PROFILE_GET_FAILED         = "Failed to retrieve learner profile"
	PRACTICE_QUEUE_SUCCESS     = "Practice queue retrieved"
	PRACTICE_QUEUE_FAILED      = "Failed to retrieve practice queue"
	PRACTICE_ASSIGN_SUCCESS    = "Practice items assigned"
	PRACTICE_ASSIGN_FAILED     = "Failed to assign practice items"
	PRACTICE_COMPLETE_SUCCESS  = "Practice assignment completed"
	PRACTICE_COMPLETE_FAILED   = "Failed to complete practice assignment"
	PRACTICE_ITEM_SUCCESS      = "Practice item created"
	PRACTICE_ITEM_FAILED       = "Failed to create practice item"
	PRACTICE_BANK_SUCCESS      = "Practice bank retrieved"
	PRACTICE_BANK_FAILED       = "Failed to retrieve practice bank"
	TRANSLATE_SUCCESS          = "Draft translation generated"
	TRANSLATE_FAILED           = "Failed to generate draft translation"
)
