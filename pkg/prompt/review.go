package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/style"
)

// Reviewer shows the collected mappings and asks for confirmation
type Reviewer interface {
	Review(mappings []style.Mapping) (bool, error)
}

// ConsoleReviewer confirms on a terminal
type ConsoleReviewer struct {
	in       *bufio.Reader
	out      io.Writer
	renderer style.Renderer
}

// NewConsoleReviewer creates a reviewer rendering with r
func NewConsoleReviewer(in io.Reader, out io.Writer, r style.Renderer) *ConsoleReviewer {
	return &ConsoleReviewer{in: bufio.NewReader(in), out: out, renderer: r}
}

// Review prints the mappings and accepts only an answer of "y"
func (r *ConsoleReviewer) Review(mappings []style.Mapping) (bool, error) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, style.InfoStyle.Render("Please confirm the variable mappings below are correct."))
	fmt.Fprintln(r.out, r.renderer.RenderMappings(mappings))
	fmt.Fprintf(r.out, "%s%s%s\n",
		style.WarningStyle.Render("Press "),
		style.Bold("y"),
		style.WarningStyle.Render(" if correct, and any other key if not."))

	line, err := r.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, errors.Wrap(err, errors.ErrPromptInput, "Could not read the review answer.").
			WithRemediation("Run zat in an interactive terminal, or use --answers to skip the review.")
	}
	return strings.TrimRight(line, "\r\n") == "y", nil
}

// AcceptAll approves every review, for non-interactive runs
type AcceptAll struct{}

// Review always confirms
func (AcceptAll) Review([]style.Mapping) (bool, error) {
	return true, nil
}
