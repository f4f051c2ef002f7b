package models

import "time"

// Session is the transient record of one user's test in progress. It lives
// only in memory: a restart drops all sessions, by design.
//
// Invariants maintained by the session repository and test service:
// 0 <= CurrentIndex <= number of questions in the test, and
// len(Responses) == CurrentIndex.
type Session struct {
	UserID       string    `json:"user_id"`
	TestID       TestID    `json:"test_id"`
	CurrentIndex int       `json:"current_index"`
	Responses    []int     `json:"responses"`
	StartedAt    time.Time `json:"started_at"`
}
