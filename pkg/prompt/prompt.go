// Package prompt collects the values of value variables and asks the
// user to review them before anything is written.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/zat/pkg/answers"
	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/arthur-debert/zat/pkg/style"
	"github.com/arthur-debert/zat/pkg/templates"
	"github.com/arthur-debert/zat/pkg/tokens"
)

// ValueSource supplies the value of one variable. ok is false when the
// variable is left without a value.
type ValueSource interface {
	Value(v templates.TemplateVariable) (value string, ok bool, err error)
}

// Console asks for values on a terminal
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole reads answers from in and writes prompts to out. Passing the
// same *bufio.Reader used by the choice menus keeps buffered input.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Value prompts for v. An empty answer accepts the suggestion, which is
// the plugin result if the plugin ran and the default value otherwise;
// with no suggestion the variable gets no value.
func (c *Console) Value(v templates.TemplateVariable) (string, bool, error) {
	suggestion, hasSuggestion := v.Suggestion()

	fmt.Fprintln(c.out)
	line := style.PromptStyle.Render(v.Prompt)
	if hasSuggestion {
		source := "default value"
		if _, ran := v.PluginResult(); ran {
			source = "plugin result value"
		}
		line += fmt.Sprintf(". Press %s to accept the %s of: %s.",
			style.Underline("enter"), source, style.SuggestionStyle.Render(suggestion))
	}
	fmt.Fprintln(c.out, line)
	if v.Description != "" {
		fmt.Fprintln(c.out, style.DescriptionStyle.Render(v.Description))
	}

	input, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", false, errors.Wrapf(err, errors.ErrPromptInput, "Could not read a value for '%s'.", v.Name).
			WithRemediation("Run zat in an interactive terminal or supply the values with --answers.").
			WithDetail("variable", v.Name)
	}

	input = strings.TrimRight(input, "\r\n")
	if input != "" {
		return input, true, nil
	}
	if hasSuggestion {
		return suggestion, true, nil
	}
	return "", false, nil
}

// Answers takes values from an answers file, falling back to the
// variable's suggestion
type Answers struct {
	answers answers.Answers
}

// NewAnswers creates a non-interactive value source
func NewAnswers(a answers.Answers) *Answers {
	return &Answers{answers: a}
}

// Value looks v up in the answers
func (a *Answers) Value(v templates.TemplateVariable) (string, bool, error) {
	if value, ok := a.answers.Get(v.Name); ok {
		return value, true, nil
	}
	if suggestion, ok := v.Suggestion(); ok {
		return suggestion, true, nil
	}
	logger := logging.GetLogger("prompt")
	logger.Warn().Str("variable", v.Name).Msg("No answer supplied, leaving variable without a value")
	return "", false, nil
}

// Collect asks src for every variable in order. The returned mappings
// list the valued variables in declaration order for review.
func Collect(src ValueSource, vars []templates.TemplateVariable) (tokens.UserValues, []style.Mapping, error) {
	values := tokens.UserValues{}
	var mappings []style.Mapping

	for _, v := range vars {
		value, ok, err := src.Value(v)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			continue
		}
		values[v.Name] = value
		mappings = append(mappings, style.Mapping{Key: v.Name, Value: value})
	}
	return values, mappings, nil
}
