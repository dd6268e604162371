package bootstrap

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// GuideStyle picks the glamour style for the guide: "notty" when output
// is not a terminal, otherwise dark or light after the background.
func GuideStyle(out *os.File) string {
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return "notty"
	}
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// RenderGuide renders markdown for the terminal, falling back to the
// markdown itself if rendering fails.
func RenderGuide(markdown, styleName string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithStandardStyle(styleName)}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
