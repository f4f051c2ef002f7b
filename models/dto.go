package models

// QuestionView is what the transport layer renders for one question:
// the question number within the test, the total count, and the localized
// prompt/options. OptionIndex-based answers refer back to Options order.
type QuestionView struct {
	TestID  TestID   `json:"test_id"`
	Number  int      `json:"number"` // 1-based, for "Question N/Total" display
	Total   int      `json:"total"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// StartTestRequest starts (or restarts) a test for a user. UserID may be
// empty, in which case the server mints a guest identity.
type StartTestRequest struct {
	UserID string `json:"user_id"`
	TestID TestID `json:"test_id" binding:"required"`
}

// AnswerRequest submits the selected option index for the user's current
// question.
type AnswerRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	OptionIndex int    `json:"option_index"`
}

// CancelRequest abandons the user's test in progress, if any.
type CancelRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// SetLanguageRequest switches the active language for user-facing text.
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// MenuEntry is one selectable test in the main menu.
type MenuEntry struct {
	TestID TestID `json:"test_id"`
	Label  string `json:"label"`
}
