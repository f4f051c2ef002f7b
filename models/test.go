package models

// TestID identifies one of the supported self-assessment tests.
// It is a closed enum: adding a test means registering a new question bank
// and scorer in the psy package, not adding branches at call sites.
type TestID string

const (
	TestMBTI       TestID = "mbti"
	TestBigFive    TestID = "big_five"
	TestDepression TestID = "depression" // PHQ-9
	TestAnxiety    TestID = "anxiety"    // GAD-7
)

// AllTestIDs lists the supported tests in menu order.
var AllTestIDs = []TestID{TestMBTI, TestBigFive, TestDepression, TestAnxiety}

// IsValid reports whether id names a registered test.
func (id TestID) IsValid() bool {
	switch id {
	case TestMBTI, TestBigFive, TestDepression, TestAnxiety:
		return true
	}
	return false
}

// Question is a single multiple-choice question: a prompt plus an ordered
// list of options. Questions are immutable once built and identical for
// every user; the transport renders one selectable control per option index.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}
