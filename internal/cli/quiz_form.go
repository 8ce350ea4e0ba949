package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/togetherforward/forward/internal/domain"
)

// likertField builds one 1-5 select for a quiz question.
func likertField(q domain.Question, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(q.Prompt).
		Options(
			huh.NewOption("1 — strongly disagree", "1"),
			huh.NewOption("2 — disagree", "2"),
			huh.NewOption("3 — neutral", "3"),
			huh.NewOption("4 — agree", "4"),
			huh.NewOption("5 — strongly agree", "5"),
		).
		Value(value)
}

// runQuizForm walks the full question set, one group per dimension, and
// returns question-id -> answer value.
func runQuizForm() (map[string]int, error) {
	values := make(map[string]*string, len(domain.QuizQuestions))

	groups := make([]*huh.Group, 0, 5)
	var fields []huh.Field
	var currentDim domain.Dimension

	for _, q := range domain.QuizQuestions {
		if q.Dimension != currentDim && len(fields) > 0 {
			groups = append(groups, huh.NewGroup(fields...))
			fields = nil
		}
		currentDim = q.Dimension

		v := new(string)
		values[q.ID] = v
		fields = append(fields, likertField(q, v))
	}
	if len(fields) > 0 {
		groups = append(groups, huh.NewGroup(fields...))
	}

	form := huh.NewForm(groups...).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, err
	}

	answers := make(map[string]int, len(values))
	for id, v := range values {
		answers[id] = likertValue(*v)
	}
	return answers, nil
}
