package psy

import (
	"fmt"
	"strings"

	"github.com/chrinovic123/PsychoMetricBot/i18n"
	"github.com/chrinovic123/PsychoMetricBot/models"
)

// GAD-7: 7 questions, each scored 0-3, total 0-21.
const (
	anxietyQuestionCount = 7
	anxietyOptionCount   = 4
)

func newAnxietyDefinition(store *i18n.Store) *Definition {
	return &Definition{
		ID:            models.TestAnxiety,
		QuestionCount: anxietyQuestionCount,
		SumScored:     true,
		Questions: func() []models.Question {
			return questionsFromLocale(store, "anxiety", anxietyQuestionCount, anxietyOptionCount)
		},
		Score: func(responses []int) (string, error) {
			return scoreAnxiety(store, responses)
		},
	}
}

// scoreAnxiety computes the GAD-7 sum and maps it to a severity band:
// <5 none, 5-9 mild, 10-14 moderate, >=15 severe.
func scoreAnxiety(store *i18n.Store, responses []int) (string, error) {
	if len(responses) != anxietyQuestionCount {
		return "", fmt.Errorf("GAD-7 scorer expects %d responses, got %d", anxietyQuestionCount, len(responses))
	}
	score := sumResponses(responses)

	var band string
	switch {
	case score < 5:
		band = "none"
	case score <= 9:
		band = "mild"
	case score <= 14:
		band = "moderate"
	default:
		band = "severe"
	}

	var report strings.Builder
	report.WriteString(store.Resolve("anxiety.result.header", "", map[string]interface{}{"score": score}))
	report.WriteString(store.T("anxiety.result." + band))
	report.WriteString(store.T("anxiety.result.disclaimer"))
	return report.String(), nil
}
