// Package scope decides which value variables take part in a run based on
// the choices the user selected. Everything here is pure: no I/O and no
// mutation of its inputs.
package scope

import (
	"github.com/arthur-debert/zat/pkg/choice"
	"github.com/arthur-debert/zat/pkg/templates"
)

// IsScopeIncluded evaluates a single scope against the selected choices.
// With no selected choices every scope is considered satisfied.
func IsScopeIncluded(choices choice.SelectedChoices, s templates.Scope) bool {
	if len(choices) == 0 {
		return true
	}

	switch sc := s.(type) {
	case templates.IncludeChoiceValue:
		c, ok := choices.Get(sc.Choice)
		return ok && c.Value == sc.Value
	case templates.IncludeChoice:
		_, ok := choices.Get(sc.Choice)
		return ok
	case templates.ExcludeChoiceValue:
		c, ok := choices.Get(sc.Choice)
		return !ok || c.Value != sc.NotValue
	case templates.ExcludeChoice:
		_, ok := choices.Get(sc.NotChoice)
		return !ok
	default:
		return false
	}
}

// ShouldInclude decides whether a variable with the given scopes is active.
//
//   - no scopes: always included
//   - no choices but scopes: included only if some scope is an exclusion,
//     since nothing that the variable requires was selected
//   - choices and scopes: included if any scope is satisfied
func ShouldInclude(choices choice.SelectedChoices, scopes []templates.Scope) bool {
	if len(scopes) == 0 {
		return true
	}

	if len(choices) == 0 {
		for _, s := range scopes {
			if s.Excludes() {
				return true
			}
		}
		return false
	}

	for _, s := range scopes {
		if IsScopeIncluded(choices, s) {
			return true
		}
	}
	return false
}

// Filter returns the variables that are in scope, keeping their order
func Filter(choices choice.SelectedChoices, vars []templates.TemplateVariable) []templates.TemplateVariable {
	out := make([]templates.TemplateVariable, 0, len(vars))
	for _, v := range vars {
		if ShouldInclude(choices, v.Scopes) {
			out = append(out, v)
		}
	}
	return out
}
