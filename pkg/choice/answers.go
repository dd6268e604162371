package choice

import (
	"strings"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/templates"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// AnswersStyle resolves choices from pre-supplied answers, keyed by
// variable name. An answer matches a choice's value, or failing that its
// display text ignoring case.
type AnswersStyle struct {
	answers map[string]string
}

// NewAnswersStyle creates a non-interactive style
func NewAnswersStyle(answers map[string]string) *AnswersStyle {
	return &AnswersStyle{answers: answers}
}

// GetChoice looks the variable up in the answers
func (s *AnswersStyle) GetChoice(variable templates.TemplateVariable, choices []templates.Choice) (templates.Choice, error) {
	answer, ok := s.answers[variable.Name]
	if !ok {
		return templates.Choice{}, errors.Newf(errors.ErrChoiceAnswer,
			"No answer was supplied for choice '%s'.", variable.Name).
			WithRemediation("Add '%s' with one of %s to the answers file.", variable.Name, strings.Join(choiceValues(choices), ", ")).
			WithDetail("variable", variable.Name)
	}

	for _, c := range choices {
		if c.Value == answer {
			return c, nil
		}
	}
	for _, c := range choices {
		if strings.EqualFold(c.Display, answer) {
			return c, nil
		}
	}

	err := errors.Newf(errors.ErrChoiceAnswer,
		"Answer '%s' is not a valid choice for '%s'.", answer, variable.Name).
		WithDetail("variable", variable.Name).
		WithDetail("answer", answer)
	if closest := closestValue(answer, choices); closest != "" {
		return templates.Choice{}, err.WithRemediation("Did you mean '%s'? Valid choices are: %s.", closest, strings.Join(choiceValues(choices), ", "))
	}
	return templates.Choice{}, err.WithRemediation("Valid choices are: %s.", strings.Join(choiceValues(choices), ", "))
}

func choiceValues(choices []templates.Choice) []string {
	values := make([]string, len(choices))
	for i, c := range choices {
		values[i] = c.Value
	}
	return values
}

// closestValue finds the choice value that best fuzzy-matches answer
func closestValue(answer string, choices []templates.Choice) string {
	ranks := fuzzy.RankFindFold(answer, choiceValues(choices))
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
