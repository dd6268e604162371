package style

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/pterm/pterm"
)

// Mapping is one variable shown for review
type Mapping struct {
	Key   string
	Value string
}

// Summary describes what a run wrote into the target directory
type Summary struct {
	Target      string
	Directories []string
	Files       []string
}

// Renderer defines the interface for rendering the CLI output
type Renderer interface {
	RenderMappings(mappings []Mapping) string
	RenderSummary(s Summary) string
	RenderError(err error) string
	RenderWarning(message string) string
}

// NewRenderer returns a plain renderer when plain is set and a terminal
// renderer otherwise
func NewRenderer(plain bool) Renderer {
	if plain {
		return NewPlainRenderer()
	}
	return NewTerminalRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderMappings renders the key -> value review list
func (r *TerminalRenderer) RenderMappings(mappings []Mapping) string {
	if len(mappings) == 0 {
		return MutedStyle.Render("No variables to review")
	}

	var result strings.Builder
	for _, m := range mappings {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			KeyStyle.Render(m.Key),
			MutedStyle.Render("->"),
			ValueStyle.Render(m.Value)))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderSummary renders the entries written under the target directory
func (r *TerminalRenderer) RenderSummary(s Summary) string {
	entries := summaryEntries(s)
	if len(entries) == 0 {
		return MutedStyle.Render("Nothing was written")
	}

	var result strings.Builder
	result.WriteString(SubtitleStyle.Render(PathStyle.Render(s.Target)) + "\n")
	for _, e := range entries {
		result.WriteString(RenderEntryStatus(e) + "\n")
	}
	result.WriteString(fmt.Sprintf("%s %d files and %d directories created",
		SuccessIndicator, len(s.Files), countBelowRoot(s)))
	return result.String()
}

// RenderError renders an error, showing the cause and fix of zat errors
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	zerr, ok := errors.AsZatError(err)
	if !ok {
		return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, ErrorStyle.Render(err.Error()))
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s", ErrorIndicator, ErrorStyle.Render(zerr.Message)))
	if zerr.Exception != "" {
		result.WriteString("\n" + Indent(MutedStyle.Render("Cause: "+zerr.Exception), 1))
	}
	if zerr.Remediation != "" {
		result.WriteString("\n" + Indent(InfoStyle.Render("Fix: "+zerr.Remediation), 1))
	}
	return result.String()
}

// RenderWarning renders a warning line
func (r *TerminalRenderer) RenderWarning(message string) string {
	return fmt.Sprintf("%s %s", WarningIndicator, WarningStyle.Render(message))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderMappings renders the review list
func (r *PlainRenderer) RenderMappings(mappings []Mapping) string {
	if len(mappings) == 0 {
		return "No variables to review"
	}

	var result strings.Builder
	for _, m := range mappings {
		result.WriteString(fmt.Sprintf("%s -> %s\n", m.Key, m.Value))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderSummary renders the written entries as plain lines
func (r *PlainRenderer) RenderSummary(s Summary) string {
	entries := summaryEntries(s)
	if len(entries) == 0 {
		return "Nothing was written"
	}

	var result strings.Builder
	result.WriteString(s.Target + "\n")
	for _, e := range entries {
		result.WriteString(fmt.Sprintf("  %s: %s\n", e.Kind, e.Path))
	}
	result.WriteString(fmt.Sprintf("%d files and %d directories created", len(s.Files), countBelowRoot(s)))
	return result.String()
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	if zerr, ok := errors.AsZatError(err); ok {
		return "Error: " + zerr.Format()
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

// RenderWarning renders a plain warning
func (r *PlainRenderer) RenderWarning(message string) string {
	return "Warning: " + message
}

// summaryEntries lists directories then files relative to the target,
// leaving out the target itself
func summaryEntries(s Summary) []EntryStatus {
	var entries []EntryStatus
	for _, d := range s.Directories {
		if rel := relativeTo(s.Target, d); rel != "" {
			entries = append(entries, EntryStatus{Kind: "dir", Path: rel, Status: StatusCreated})
		}
	}
	for _, f := range s.Files {
		entries = append(entries, EntryStatus{Kind: "file", Path: relativeTo(s.Target, f), Status: StatusCreated})
	}
	return entries
}

func countBelowRoot(s Summary) int {
	n := 0
	for _, d := range s.Directories {
		if relativeTo(s.Target, d) != "" {
			n++
		}
	}
	return n
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if rel == "." {
		return ""
	}
	return rel
}
