package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders text carrying [tag]...[/tag] markup
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   make(map[string]lipgloss.Style),
		patterns: make(map[string]*regexp.Regexp),
	}
	for tag, s := range map[string]lipgloss.Style{
		"title":     TitleStyle,
		"subtitle":  SubtitleStyle,
		"success":   SuccessStyle,
		"error":     ErrorStyle,
		"warning":   WarningStyle,
		"info":      InfoStyle,
		"code":      CodeStyle,
		"path":      PathStyle,
		"muted":     MutedStyle,
		"prompt":    PromptStyle,
		"key":       KeyStyle,
		"value":     ValueStyle,
		"bold":      lipgloss.NewStyle().Bold(true),
		"italic":    lipgloss.NewStyle().Italic(true),
		"underline": lipgloss.NewStyle().Underline(true),
	} {
		p.AddStyle(tag, s)
	}
	return p
}

// Render processes markup text and returns styled output. Nested tags
// are handled by repeating until nothing changes.
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		previous := result
		for tag, pattern := range p.patterns {
			s := p.styles[tag]
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				sub := pattern.FindStringSubmatch(match)
				if len(sub) != 2 {
					return match
				}
				return s.Render(sub[1])
			})
		}
		if result == previous {
			return result
		}
	}
}

// AddStyle registers or replaces the style of tag
func (p *MarkupParser) AddStyle(tag string, s lipgloss.Style) {
	quoted := regexp.QuoteMeta(tag)
	p.styles[tag] = s
	p.patterns[tag] = regexp.MustCompile(`(?s)\[` + quoted + `\](.*?)\[/` + quoted + `\]`)
}

// RenderTemplate substitutes {{name}} placeholders, then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return p.Render(result)
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// RenderTemplate is a convenience function using the default parser
func RenderTemplate(template string, vars map[string]string) string {
	return defaultParser.RenderTemplate(template, vars)
}
