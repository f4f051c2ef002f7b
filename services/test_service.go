package services

import (
	"fmt"
	"log"
	"time"

	"github.com/chrinovic123/PsychoMetricBot/models"
	"github.com/chrinovic123/PsychoMetricBot/psy"
	"github.com/chrinovic123/PsychoMetricBot/repository"
)

// TestService drives the per-user test state machine: starting a test,
// sequencing its questions, collecting answers, and producing the scored
// report once the question bank is exhausted.
type TestService interface {
	// StartTest begins a fresh test for the user, unconditionally
	// discarding any test already in progress. It returns the first
	// question, or the final report directly for a test with no questions.
	StartTest(userID string, testID models.TestID) (*models.QuestionView, string, error)

	// CurrentQuestion returns the question the user's session is waiting
	// on. ok reports whether the user has a session at all; a nil view
	// with ok=true means the session is complete and awaiting scoring.
	CurrentQuestion(userID string) (view *models.QuestionView, ok bool)

	// SubmitAnswer records the selected option index and advances the
	// session. It returns the next question, or the final report when the
	// answer was the last one. A user with no session is silently ignored
	// (stale or duplicate transport callbacks are expected occasionally):
	// all three results are zero values and no state changes.
	SubmitAnswer(userID string, optionIndex int) (*models.QuestionView, string, error)

	// Cancel destroys the user's session, if any. Idempotent.
	Cancel(userID string)
}

type testService struct {
	sessions repository.SessionRepository
	results  repository.ResultRepository
	registry *psy.Registry
}

// NewTestService creates a TestService over the given session store,
// result archive and test registry.
func NewTestService(sessions repository.SessionRepository, results repository.ResultRepository, registry *psy.Registry) TestService {
	return &testService{
		sessions: sessions,
		results:  results,
		registry: registry,
	}
}

func (s *testService) StartTest(userID string, testID models.TestID) (*models.QuestionView, string, error) {
	def, ok := s.registry.Get(testID)
	if !ok {
		return nil, "", fmt.Errorf("unknown test ID '%s'", testID)
	}

	session := &models.Session{
		UserID:       userID,
		TestID:       testID,
		CurrentIndex: 0,
		Responses:    make([]int, 0, def.QuestionCount),
		StartedAt:    time.Now(),
	}
	// Put replaces any previous session wholesale, so no state from an
	// abandoned test can leak into the new one.
	s.sessions.Put(session)
	log.Printf("INFO: [TestService] UserID '%s' started test '%s' (%d questions).", userID, testID, def.QuestionCount)

	if def.QuestionCount == 0 {
		report, err := s.completeAndScore(session, def)
		return nil, report, err
	}
	return s.questionAt(def, 0), "", nil
}

func (s *testService) CurrentQuestion(userID string) (*models.QuestionView, bool) {
	session := s.sessions.Get(userID)
	if session == nil {
		return nil, false
	}
	def, ok := s.registry.Get(session.TestID)
	if !ok {
		log.Printf("ERROR: [TestService] Session for userID '%s' references unknown test '%s'.", userID, session.TestID)
		return nil, false
	}
	if session.CurrentIndex >= def.QuestionCount {
		return nil, true // complete, awaiting scoring
	}
	return s.questionAt(def, session.CurrentIndex), true
}

func (s *testService) SubmitAnswer(userID string, optionIndex int) (*models.QuestionView, string, error) {
	session := s.sessions.Get(userID)
	if session == nil {
		// A stale callback after completion or cancellation; not an error.
		log.Printf("INFO: [TestService] Ignoring answer from userID '%s' with no session in progress.", userID)
		return nil, "", nil
	}
	def, ok := s.registry.Get(session.TestID)
	if !ok {
		s.sessions.Delete(userID)
		return nil, "", fmt.Errorf("session for userID '%s' references unknown test '%s'", userID, session.TestID)
	}

	session.Responses = append(session.Responses, optionIndex)
	session.CurrentIndex++
	s.sessions.Put(session)

	if session.CurrentIndex >= def.QuestionCount {
		report, err := s.completeAndScore(session, def)
		return nil, report, err
	}
	return s.questionAt(def, session.CurrentIndex), "", nil
}

func (s *testService) Cancel(userID string) {
	s.sessions.Delete(userID)
}

// completeAndScore runs the test's scorer over the accumulated responses
// and destroys the session. The session is destroyed even when scoring
// fails: a session whose responses cannot be scored can never recover, and
// leaving it behind would lock the user out of starting over.
func (s *testService) completeAndScore(session *models.Session, def *psy.Definition) (string, error) {
	defer s.sessions.Delete(session.UserID)

	report, err := def.Score(session.Responses)
	if err != nil {
		log.Printf("ERROR: [TestService] Scoring test '%s' for userID '%s' failed: %v", session.TestID, session.UserID, err)
		return "", fmt.Errorf("failed to score test '%s' for userID '%s': %w", session.TestID, session.UserID, err)
	}
	log.Printf("INFO: [TestService] UserID '%s' completed test '%s'.", session.UserID, session.TestID)

	s.archiveResult(session, def, report)
	return report, nil
}

// archiveResult persists the finished report. Archiving is best-effort:
// a storage failure is logged but never withholds the report from the
// user.
func (s *testService) archiveResult(session *models.Session, def *psy.Definition, report string) {
	if s.results == nil {
		return
	}
	result := &models.TestResult{
		UserID: session.UserID,
		TestID: session.TestID,
		Report: report,
	}
	if def.SumScored {
		for _, r := range session.Responses {
			result.Score += r
		}
	}
	if _, err := s.results.SaveResult(result); err != nil {
		log.Printf("WARN: [TestService] Failed to archive result for userID '%s' (test %s): %v", session.UserID, session.TestID, err)
	}
}

func (s *testService) questionAt(def *psy.Definition, index int) *models.QuestionView {
	question := def.Questions()[index]
	return &models.QuestionView{
		TestID:  def.ID,
		Number:  index + 1,
		Total:   def.QuestionCount,
		Prompt:  question.Prompt,
		Options: question.Options,
	}
}
