package psy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrinovic123/PsychoMetricBot/i18n"
	"github.com/chrinovic123/PsychoMetricBot/models"
)

// frenchRegistry builds a registry over the repo's real locale resources
// with French active, matching the texts the original reports used.
func frenchRegistry(t *testing.T) *Registry {
	t.Helper()
	store := i18n.NewStore("../locales", "en")
	require.True(t, store.Load("en"))
	require.True(t, store.SetLanguage("fr"))
	return NewRegistry(store)
}

func repeated(value, count int) []int {
	responses := make([]int, count)
	for i := range responses {
		responses[i] = value
	}
	return responses
}

func TestQuestionBanks(t *testing.T) {
	registry := frenchRegistry(t)

	tests := []struct {
		id          models.TestID
		questions   int
		options     int
		firstPrompt string
	}{
		{models.TestAnxiety, 7, 4, "Sentiment de nervosité, d'anxiété ou de tension"},
		{models.TestDepression, 9, 4, "Peu d'intérêt ou de plaisir à faire les choses"},
		{models.TestMBTI, 4, 2, "En général, vous préférez:"},
		{models.TestBigFive, 5, 5, "Je suis quelqu'un qui parle facilement aux autres."},
	}

	for _, tc := range tests {
		t.Run(string(tc.id), func(t *testing.T) {
			def, ok := registry.Get(tc.id)
			require.True(t, ok)
			assert.Equal(t, tc.questions, def.QuestionCount)

			questions := def.Questions()
			require.Len(t, questions, tc.questions)
			assert.Equal(t, tc.firstPrompt, questions[0].Prompt)
			for _, q := range questions {
				assert.Len(t, q.Options, tc.options)
				assert.NotContains(t, q.Prompt, "Missing translation")
			}
		})
	}
}

func TestAnxietyScorer(t *testing.T) {
	registry := frenchRegistry(t)
	def, _ := registry.Get(models.TestAnxiety)

	t.Run("maximum score is severe", func(t *testing.T) {
		report, err := def.Score(repeated(3, 7))
		assert.NoError(t, err)
		assert.Contains(t, report, "21/21")
		assert.Contains(t, report, "Anxiété sévère.")
		assert.Contains(t, report, "GAD-7")
	})

	t.Run("zero score is not significant", func(t *testing.T) {
		report, err := def.Score(repeated(0, 7))
		assert.NoError(t, err)
		assert.Contains(t, report, "0/21")
		assert.Contains(t, report, "Pas d'anxiété significative.")
	})

	t.Run("band boundaries", func(t *testing.T) {
		cases := []struct {
			responses []int
			band      string
		}{
			{[]int{1, 1, 1, 1, 0, 0, 0}, "Pas d'anxiété significative."}, // 4
			{[]int{1, 1, 1, 1, 1, 0, 0}, "Anxiété légère."},              // 5
			{[]int{3, 3, 3, 0, 0, 0, 0}, "Anxiété légère."},              // 9
			{[]int{3, 3, 3, 1, 0, 0, 0}, "Anxiété modérée."},             // 10
			{[]int{2, 2, 2, 2, 2, 2, 2}, "Anxiété modérée."},             // 14
			{[]int{3, 3, 3, 3, 3, 0, 0}, "Anxiété sévère."},              // 15
		}
		for _, tc := range cases {
			report, err := def.Score(tc.responses)
			assert.NoError(t, err)
			assert.Contains(t, report, tc.band)
		}
	})

	t.Run("mismatched response count is an error", func(t *testing.T) {
		_, err := def.Score(repeated(1, 3))
		assert.Error(t, err)
	})
}

func TestDepressionScorer(t *testing.T) {
	registry := frenchRegistry(t)
	def, _ := registry.Get(models.TestDepression)

	t.Run("sum of five is mild, boundary inclusive", func(t *testing.T) {
		report, err := def.Score([]int{1, 1, 1, 1, 1, 0, 0, 0, 0})
		assert.NoError(t, err)
		assert.Contains(t, report, "5/27")
		assert.Contains(t, report, "Symptômes dépressifs légers.")
	})

	t.Run("sum of twenty is severe", func(t *testing.T) {
		report, err := def.Score([]int{3, 3, 3, 3, 3, 3, 2, 0, 0})
		assert.NoError(t, err)
		assert.Contains(t, report, "20/27")
		assert.Contains(t, report, "Symptômes dépressifs sévères.")
		assert.NotContains(t, report, "modérément")
	})

	t.Run("sum of nineteen is moderately severe", func(t *testing.T) {
		report, err := def.Score([]int{3, 3, 3, 3, 3, 3, 1, 0, 0})
		assert.NoError(t, err)
		assert.Contains(t, report, "Symptômes dépressifs modérément sévères.")
	})

	t.Run("zero score is not significant", func(t *testing.T) {
		report, err := def.Score(repeated(0, 9))
		assert.NoError(t, err)
		assert.Contains(t, report, "0/27")
		assert.Contains(t, report, "Pas de dépression significative.")
	})

	t.Run("mismatched response count is an error", func(t *testing.T) {
		_, err := def.Score(repeated(0, 8))
		assert.Error(t, err)
	})
}

func TestMBTIScorer(t *testing.T) {
	registry := frenchRegistry(t)
	def, _ := registry.Get(models.TestMBTI)

	t.Run("all first options pick the low branch of each dimension", func(t *testing.T) {
		report, err := def.Score([]int{0, 0, 0, 0})
		assert.NoError(t, err)
		assert.Contains(t, report, "ESTJ")
		assert.Contains(t, report, "Description non disponible pour ce type.")
	})

	t.Run("described type gets its description", func(t *testing.T) {
		// I (1), N (1), T (0), J (0)
		report, err := def.Score([]int{1, 1, 0, 0})
		assert.NoError(t, err)
		assert.Contains(t, report, "INTJ")
		assert.Contains(t, report, "L'Architecte")
	})

	t.Run("undescribed type falls back to the fixed text", func(t *testing.T) {
		report, err := def.Score([]int{1, 1, 1, 1})
		assert.NoError(t, err)
		assert.Contains(t, report, "INFP")
		assert.Contains(t, report, "Description non disponible pour ce type.")
	})

	t.Run("mismatched response count is an error", func(t *testing.T) {
		_, err := def.Score([]int{0, 0})
		assert.Error(t, err)
	})
}

func TestBigFiveScorer(t *testing.T) {
	registry := frenchRegistry(t)
	def, _ := registry.Get(models.TestBigFive)

	t.Run("report shape with zeroed traits", func(t *testing.T) {
		report, err := def.Score(repeated(4, 5))
		assert.NoError(t, err)
		for _, trait := range []string{"Extraversion", "Agréabilité", "Conscience", "Névrosisme", "Ouverture"} {
			assert.Contains(t, report, trait+": 0/20")
		}
		assert.Contains(t, report, "Interprétation:")
		assert.Contains(t, report, "ne constituent pas un diagnostic")
	})

	t.Run("report shape is identical regardless of responses", func(t *testing.T) {
		first, err := def.Score(repeated(0, 5))
		assert.NoError(t, err)
		second, err := def.Score(repeated(4, 5))
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("mismatched response count is an error", func(t *testing.T) {
		_, err := def.Score(repeated(2, 4))
		assert.Error(t, err)
	})
}

func TestEnglishReportsFollowActiveLanguage(t *testing.T) {
	store := i18n.NewStore("../locales", "en")
	require.True(t, store.SetLanguage("en"))
	registry := NewRegistry(store)

	def, _ := registry.Get(models.TestAnxiety)
	report, err := def.Score(repeated(3, 7))
	assert.NoError(t, err)
	assert.Contains(t, report, "Severe anxiety.")
	assert.False(t, strings.Contains(report, "Anxiété"))
}
