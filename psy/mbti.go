package psy

import (
	"fmt"
	"strings"

	"github.com/chrinovic123/PsychoMetricBot/i18n"
	"github.com/chrinovic123/PsychoMetricBot/models"
)

// MBTI: two-option questions cycling through the four dimensions
// (E/I, S/N, T/F, J/P) by question index modulo 4.
const (
	mbtiQuestionCount = 4
	mbtiOptionCount   = 2
)

// mbtiDimensions lists the letter pair per dimension; the first letter is
// chosen when the stride's tally stays below half its length.
var mbtiDimensions = [4][2]string{
	{"E", "I"},
	{"S", "N"},
	{"T", "F"},
	{"J", "P"},
}

// mbtiDescribedTypes is the closed set of type codes with a description in
// the locale resources. The other 12 codes intentionally fall back to the
// fixed "no description" text; that is the expected behavior, not a gap.
var mbtiDescribedTypes = map[string]bool{
	"INTJ": true,
	"INTP": true,
	"ENTJ": true,
	"ENTP": true,
}

func newMBTIDefinition(store *i18n.Store) *Definition {
	return &Definition{
		ID:            models.TestMBTI,
		QuestionCount: mbtiQuestionCount,
		Questions: func() []models.Question {
			return questionsFromLocale(store, "mbti", mbtiQuestionCount, mbtiOptionCount)
		},
		Score: func(responses []int) (string, error) {
			return scoreMBTI(store, responses)
		},
	}
}

// scoreMBTI derives a four-letter type code from the responses. For each
// dimension d, the responses at indices d, d+4, d+8, ... are tallied and
// compared against half the stride length: a tally strictly below half
// picks the dimension's first letter, otherwise the second.
func scoreMBTI(store *i18n.Store, responses []int) (string, error) {
	if len(responses) != mbtiQuestionCount {
		return "", fmt.Errorf("MBTI scorer expects %d responses, got %d", mbtiQuestionCount, len(responses))
	}

	var code strings.Builder
	for dim := 0; dim < 4; dim++ {
		tally, count := 0, 0
		for i := dim; i < len(responses); i += 4 {
			tally += responses[i]
			count++
		}
		if float64(tally) < float64(count)/2 {
			code.WriteString(mbtiDimensions[dim][0])
		} else {
			code.WriteString(mbtiDimensions[dim][1])
		}
	}
	typeCode := code.String()

	var description string
	if mbtiDescribedTypes[typeCode] {
		description = store.T("mbti.descriptions." + typeCode)
	} else {
		description = store.T("mbti.result.no_description")
	}

	var report strings.Builder
	report.WriteString(store.Resolve("mbti.result.header", "", map[string]interface{}{"type": typeCode}))
	report.WriteString(description)
	report.WriteString(store.T("mbti.result.footer"))
	return report.String(), nil
}
