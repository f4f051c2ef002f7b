package models

import "time"

// TestResult is a completed, scored report archived for later retrieval.
// Unlike sessions, results are persisted (SQLite via GORM): the report a
// user received should survive a restart even though in-progress state
// does not.
type TestResult struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	TestID    TestID    `json:"test_id"`
	Score     int       `json:"score"` // raw sum for PHQ-9/GAD-7; 0 for tests without a single score
	Report    string    `json:"report"`
	CreatedAt time.Time `json:"created_at"`
}
