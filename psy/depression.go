package psy

import (
	"fmt"
	"strings"

	"github.com/chrinovic123/PsychoMetricBot/i18n"
	"github.com/chrinovic123/PsychoMetricBot/models"
)

// PHQ-9: 9 questions, each scored 0-3, total 0-27.
const (
	depressionQuestionCount = 9
	depressionOptionCount   = 4
)

func newDepressionDefinition(store *i18n.Store) *Definition {
	return &Definition{
		ID:            models.TestDepression,
		QuestionCount: depressionQuestionCount,
		SumScored:     true,
		Questions: func() []models.Question {
			return questionsFromLocale(store, "depression", depressionQuestionCount, depressionOptionCount)
		},
		Score: func(responses []int) (string, error) {
			return scoreDepression(store, responses)
		},
	}
}

// scoreDepression computes the PHQ-9 sum and maps it to a severity band:
// <5 none, 5-9 mild, 10-14 moderate, 15-19 moderately severe, >=20 severe.
func scoreDepression(store *i18n.Store, responses []int) (string, error) {
	if len(responses) != depressionQuestionCount {
		return "", fmt.Errorf("PHQ-9 scorer expects %d responses, got %d", depressionQuestionCount, len(responses))
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
	case score <= 19:
		band = "moderately_severe"
	default:
		band = "severe"
	}

	var report strings.Builder
	report.WriteString(store.Resolve("depression.result.header", "", map[string]interface{}{"score": score}))
	report.WriteString(store.T("depression.result." + band))
	report.WriteString(store.T("depression.result.disclaimer"))
	return report.String(), nil
}
