package choice

import (
	"fmt"
	"os"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/templates"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// SelectionStyle shows an arrow-key menu with type-to-filter
type SelectionStyle struct {
	maxHeight int
}

// NewSelectionStyle creates the interactive selection menu
func NewSelectionStyle() *SelectionStyle {
	return &SelectionStyle{maxHeight: 10}
}

// GetChoice shows the menu and returns the highlighted choice
func (s *SelectionStyle) GetChoice(variable templates.TemplateVariable, choices []templates.Choice) (templates.Choice, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return templates.Choice{}, errors.New(errors.ErrChoiceInput, "The selection menu needs an interactive terminal.").
			WithRemediation("Use --choice-menu-style numbered or supply an answers file with --answers.")
	}

	labels := SelectionLabels(choices)
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(labels).
		WithMaxHeight(s.maxHeight).
		WithFilter(true).
		Show(variable.Prompt)
	if err != nil {
		return templates.Choice{}, couldNotReadInput(err)
	}

	i, ok := index[selected]
	if !ok {
		return templates.Choice{}, errors.Newf(errors.ErrChoiceInput, "Unknown selection %q.", selected)
	}
	return choices[i], nil
}

// SelectionLabels renders the menu entries. The position is part of the
// label so choices with identical display text stay distinguishable.
func SelectionLabels(choices []templates.Choice) []string {
	labels := make([]string, len(choices))
	for i, c := range choices {
		if c.Description == "" {
			labels[i] = fmt.Sprintf("%d. %s", i+1, c.Display)
			continue
		}
		labels[i] = fmt.Sprintf("%d. %s - %s", i+1, c.Display, c.Description)
	}
	return labels
}
