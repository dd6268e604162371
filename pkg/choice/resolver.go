package choice

import (
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/arthur-debert/zat/pkg/templates"
)

// Resolve asks style for one choice per choice variable. It returns the
// selected choices keyed by variable name and the remaining value
// variables in declaration order. The first style error aborts.
func Resolve(vars []templates.TemplateVariable, s Style) (SelectedChoices, []templates.TemplateVariable, error) {
	logger := logging.GetLogger("choice.resolver")

	selected := make(SelectedChoices)
	values := make([]templates.TemplateVariable, 0, len(vars))

	for _, v := range vars {
		if v.Kind() != templates.ChoiceVariable {
			values = append(values, v)
			continue
		}

		c, err := s.GetChoice(v, v.Choices)
		if err != nil {
			return nil, nil, err
		}
		selected[v.Name] = c

		logger.Debug().
			Str("variable", v.Name).
			Str("value", c.Value).
			Msg("Choice selected")
	}

	return selected, values, nil
}
