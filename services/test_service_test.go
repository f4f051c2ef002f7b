package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chrinovic123/PsychoMetricBot/i18n"
	"github.com/chrinovic123/PsychoMetricBot/models"
	"github.com/chrinovic123/PsychoMetricBot/psy"
	"github.com/chrinovic123/PsychoMetricBot/repository"
)

// MockResultRepository is a mock type for the ResultRepository interface.
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) SaveResult(result *models.TestResult) (*models.TestResult, error) {
	args := m.Called(result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestResult), args.Error(1)
}

func (m *MockResultRepository) GetResultsByUserID(userID string) ([]models.TestResult, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TestResult), args.Error(1)
}

func newTestRegistry(t *testing.T) *psy.Registry {
	t.Helper()
	store := i18n.NewStore("../locales", "en")
	require.True(t, store.SetLanguage("fr"))
	return psy.NewRegistry(store)
}

func TestTestService_StartTest(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("returns the first question", func(t *testing.T) {
		service := NewTestService(repository.NewSessionRepository(), nil, registry)

		question, report, err := service.StartTest("user1", models.TestAnxiety)

		assert.NoError(t, err)
		assert.Empty(t, report)
		require.NotNil(t, question)
		assert.Equal(t, models.TestAnxiety, question.TestID)
		assert.Equal(t, 1, question.Number)
		assert.Equal(t, 7, question.Total)
		assert.Len(t, question.Options, 4)
	})

	t.Run("unknown test ID is an error", func(t *testing.T) {
		service := NewTestService(repository.NewSessionRepository(), nil, registry)

		question, report, err := service.StartTest("user1", models.TestID("astrology"))

		assert.Error(t, err)
		assert.Nil(t, question)
		assert.Empty(t, report)
	})

	t.Run("restart discards the previous session entirely", func(t *testing.T) {
		service := NewTestService(repository.NewSessionRepository(), nil, registry)

		_, _, err := service.StartTest("user1", models.TestAnxiety)
		require.NoError(t, err)
		_, _, err = service.SubmitAnswer("user1", 3)
		require.NoError(t, err)

		// Starting a different test mid-way must not leak the answered
		// question or response into the new session.
		question, _, err := service.StartTest("user1", models.TestMBTI)
		require.NoError(t, err)
		assert.Equal(t, models.TestMBTI, question.TestID)
		assert.Equal(t, 1, question.Number)
		assert.Equal(t, 4, question.Total)

		current, ok := service.CurrentQuestion("user1")
		require.True(t, ok)
		require.NotNil(t, current)
		assert.Equal(t, models.TestMBTI, current.TestID)
		assert.Equal(t, 1, current.Number)
	})
}

func TestTestService_SubmitAnswer(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("advances through the test and scores on exhaustion", func(t *testing.T) {
		mockResults := new(MockResultRepository)
		mockResults.On("SaveResult", mock.MatchedBy(func(r *models.TestResult) bool {
			return r.UserID == "user1" && r.TestID == models.TestAnxiety && r.Score == 21
		})).Return(&models.TestResult{ID: 1}, nil).Once()

		service := NewTestService(repository.NewSessionRepository(), mockResults, registry)

		_, _, err := service.StartTest("user1", models.TestAnxiety)
		require.NoError(t, err)

		var report string
		for i := 0; i < 7; i++ {
			var question *models.QuestionView
			question, report, err = service.SubmitAnswer("user1", 3)
			require.NoError(t, err)
			if i < 6 {
				require.NotNil(t, question)
				assert.Equal(t, i+2, question.Number)
				assert.Empty(t, report)
			} else {
				assert.Nil(t, question)
			}
		}

		assert.Contains(t, report, "21/21")
		assert.Contains(t, report, "Anxiété sévère.")

		// Session is destroyed after scoring.
		_, ok := service.CurrentQuestion("user1")
		assert.False(t, ok)

		mockResults.AssertExpectations(t)
	})

	t.Run("no session is silently ignored", func(t *testing.T) {
		service := NewTestService(repository.NewSessionRepository(), nil, registry)

		_, _, err := service.StartTest("other", models.TestMBTI)
		require.NoError(t, err)

		question, report, err := service.SubmitAnswer("nobody", 1)

		assert.NoError(t, err)
		assert.Nil(t, question)
		assert.Empty(t, report)

		// Unrelated users keep their state.
		current, ok := service.CurrentQuestion("other")
		require.True(t, ok)
		assert.Equal(t, models.TestMBTI, current.TestID)
		assert.Equal(t, 1, current.Number)
	})

	t.Run("archive failure still returns the report", func(t *testing.T) {
		mockResults := new(MockResultRepository)
		mockResults.On("SaveResult", mock.AnythingOfType("*models.TestResult")).
			Return(nil, errors.New("disk full")).Once()

		service := NewTestService(repository.NewSessionRepository(), mockResults, registry)

		_, _, err := service.StartTest("user1", models.TestMBTI)
		require.NoError(t, err)

		var report string
		for i := 0; i < 4; i++ {
			_, report, err = service.SubmitAnswer("user1", 0)
			require.NoError(t, err)
		}

		assert.Contains(t, report, "ESTJ")
		mockResults.AssertExpectations(t)
	})
}

func TestTestService_Cancel(t *testing.T) {
	registry := newTestRegistry(t)
	service := NewTestService(repository.NewSessionRepository(), nil, registry)

	_, _, err := service.StartTest("user1", models.TestDepression)
	require.NoError(t, err)

	service.Cancel("user1")
	_, ok := service.CurrentQuestion("user1")
	assert.False(t, ok)

	// Cancelling again is a no-op.
	service.Cancel("user1")

	// An answer after cancellation is a stale callback; it must not
	// resurrect the session or surface an error.
	question, report, err := service.SubmitAnswer("user1", 2)
	assert.NoError(t, err)
	assert.Nil(t, question)
	assert.Empty(t, report)
}
