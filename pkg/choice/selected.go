package choice

import (
	"sort"

	"github.com/arthur-debert/zat/pkg/templates"
)

// SelectedChoices maps a choice variable name to the choice the user made
type SelectedChoices map[string]templates.Choice

// Get returns the choice made for variable name
func (s SelectedChoices) Get(name string) (templates.Choice, bool) {
	c, ok := s[name]
	return c, ok
}

// Values returns a variable name to choice value map, the context used to
// render conditional templates.
func (s SelectedChoices) Values() map[string]string {
	out := make(map[string]string, len(s))
	for name, c := range s {
		out[name] = c.Value
	}
	return out
}

// Names returns the selected choice variable names in sorted order
func (s SelectedChoices) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
