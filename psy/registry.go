// Package psy holds the question banks and scorers for the supported
// psychological self-assessment tests. Question prompts, options and
// result texts all come from the localization store, so banks carry only
// structure (counts and locale keys), never language-specific text.
package psy

import (
	"fmt"

	"github.com/chrinovic123/PsychoMetricBot/i18n"
	"github.com/chrinovic123/PsychoMetricBot/models"
)

// Definition couples one test's question bank with its scorer.
type Definition struct {
	ID            models.TestID
	QuestionCount int

	// Questions returns the ordered question bank, localized for the
	// active language. It never fails: an incomplete translation degrades
	// to fallback text, not an error.
	Questions func() []models.Question

	// Score turns the ordered response sequence into the final report
	// text. It returns an error when the response count does not match the
	// question count; producing a wrong clinical-style score would be
	// worse than failing loudly.
	Score func(responses []int) (string, error)

	// SumScored marks tests whose raw score is the plain sum of responses
	// (PHQ-9, GAD-7). Used when archiving results.
	SumScored bool
}

// Registry is the closed table of registered tests. Adding a test is a
// data registration here, not new branching at call sites.
type Registry struct {
	defs map[models.TestID]*Definition
}

// NewRegistry builds the registry of all supported tests against the
// given localization store.
func NewRegistry(store *i18n.Store) *Registry {
	r := &Registry{defs: make(map[models.TestID]*Definition)}
	for _, def := range []*Definition{
		newMBTIDefinition(store),
		newBigFiveDefinition(store),
		newDepressionDefinition(store),
		newAnxietyDefinition(store),
	} {
		r.defs[def.ID] = def
	}
	return r
}

// Get returns the definition registered for id.
func (r *Registry) Get(id models.TestID) (*Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// questionsFromLocale builds a question bank from the locale tree under
// prefix: prompts live at "<prefix>.questions.<i>.question" and options at
// "<prefix>.questions.<i>.options.<j>".
func questionsFromLocale(store *i18n.Store, prefix string, questionCount, optionCount int) []models.Question {
	questions := make([]models.Question, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		options := make([]string, 0, optionCount)
		for j := 0; j < optionCount; j++ {
			options = append(options, store.T(fmt.Sprintf("%s.questions.%d.options.%d", prefix, i, j)))
		}
		questions = append(questions, models.Question{
			Prompt:  store.T(fmt.Sprintf("%s.questions.%d.question", prefix, i)),
			Options: options,
		})
	}
	return questions
}

// sumResponses totals the option indices for sum-scored tests.
func sumResponses(responses []int) int {
	total := 0
	for _, r := range responses {
		total += r
	}
	return total
}
