package psy

import (
	"fmt"
	"strings"

	"github.com/chrinovic123/PsychoMetricBot/i18n"
	"github.com/chrinovic123/PsychoMetricBot/models"
)

// Big Five (OCEAN): Likert-scale questions over five traits.
const (
	bigFiveQuestionCount = 5
	bigFiveOptionCount   = 5
	bigFiveTraitCount    = 5
	bigFiveTraitMax      = 20
)

func newBigFiveDefinition(store *i18n.Store) *Definition {
	return &Definition{
		ID:            models.TestBigFive,
		QuestionCount: bigFiveQuestionCount,
		Questions: func() []models.Question {
			return questionsFromLocale(store, "big_five", bigFiveQuestionCount, bigFiveOptionCount)
		},
		Score: func(responses []int) (string, error) {
			return scoreBigFive(store, responses)
		},
	}
}

// scoreBigFive produces the fixed-shape OCEAN report.
//
// The question-to-trait mapping has not been defined, so every trait
// deliberately reports 0/20; inventing tallies here would misrepresent
// unvalidated output as a score. The report shape (header, five trait
// lines, interpretation, disclaimer) is final and must not change when
// real tallies arrive.
func scoreBigFive(store *i18n.Store, responses []int) (string, error) {
	if len(responses) != bigFiveQuestionCount {
		return "", fmt.Errorf("Big Five scorer expects %d responses, got %d", bigFiveQuestionCount, len(responses))
	}

	var report strings.Builder
	report.WriteString(store.T("big_five.result.header"))
	for i := 0; i < bigFiveTraitCount; i++ {
		report.WriteString(store.Resolve("big_five.result.trait_line", "", map[string]interface{}{
			"trait": store.T(fmt.Sprintf("big_five.traits.%d", i)),
			"score": 0,
			"max":   bigFiveTraitMax,
		}))
	}
	report.WriteString(store.T("big_five.result.interpretation"))
	report.WriteString(store.T("big_five.result.disclaimer"))
	return report.String(), nil
}
