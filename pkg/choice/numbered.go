package choice

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/arthur-debert/zat/pkg/style"
	"github.com/arthur-debert/zat/pkg/templates"
)

// NumberedStyle prints a numbered menu and reads a 1-based index. Malformed
// or out of range input is reported and the menu is shown again; failing
// to read input at all ends the prompt.
type NumberedStyle struct {
	in  *bufio.Reader
	out io.Writer
}

// NewNumberedStyle creates a numbered menu reading from in and writing to out
func NewNumberedStyle(in io.Reader, out io.Writer) *NumberedStyle {
	return &NumberedStyle{in: bufio.NewReader(in), out: out}
}

// GetChoice shows the menu until a valid index is entered
func (s *NumberedStyle) GetChoice(variable templates.TemplateVariable, choices []templates.Choice) (templates.Choice, error) {
	logger := logging.GetLogger("choice.numbered")

	for {
		selected, err := s.ReadChoice(variable, choices)
		if err == nil {
			return selected, nil
		}
		if errors.IsErrorCode(err, errors.ErrChoiceInput) {
			return templates.Choice{}, err
		}

		logger.Debug().Err(err).Str("variable", variable.Name).Msg("Invalid choice, asking again")
		zerr, _ := errors.AsZatError(err)
		fmt.Fprintln(s.out, style.ErrorStyle.Render(zerr.Message))
		fmt.Fprintf(s.out, "press %s to continue\n", style.Underline("ENTER"))
		if _, readErr := s.in.ReadString('\n'); readErr != nil {
			return templates.Choice{}, couldNotReadInput(readErr)
		}
		fmt.Fprintln(s.out)
	}
}

// ReadChoice shows the menu once and parses a single line of input
func (s *NumberedStyle) ReadChoice(variable templates.TemplateVariable, choices []templates.Choice) (templates.Choice, error) {
	fmt.Fprintln(s.out, style.PromptStyle.Render(variable.Prompt))
	for i, c := range choices {
		fmt.Fprintf(s.out, "  %d %s %s\n", i+1, c.Display, c.Description)
	}

	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return templates.Choice{}, couldNotReadInput(err)
	}

	input := strings.TrimSpace(line)
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return templates.Choice{}, errors.Newf(errors.ErrChoiceNotANumber,
			"Selection has to be a number: %s is not a number.", input).
			WithDetail("input", input)
	}

	if n < 1 || n > len(choices) {
		return templates.Choice{}, errors.Newf(errors.ErrChoiceOutOfBounds,
			"Selected index: %d is out of bounds. It should be between 1 - %d", n, len(choices)).
			WithDetail("index", n)
	}

	return choices[n-1], nil
}

func couldNotReadInput(err error) error {
	return errors.Wrap(err, errors.ErrChoiceInput, "Could not read choice input.").
		WithRemediation("Run zat from an interactive terminal or supply an answers file with --answers.")
}
