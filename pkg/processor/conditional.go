package processor

import (
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/flosch/pongo2/v6"
)

func init() {
	// Rendered output is source code, not HTML.
	pongo2.SetAutoescape(false)
}

var conditionalMarkers = []string{"{% if", "{%if", "{%- if", "{%-if"}

// HasConditional reports whether content uses conditional blocks
func HasConditional(content string) bool {
	for _, m := range conditionalMarkers {
		if strings.Contains(content, m) {
			return true
		}
	}
	return false
}

// RenderConditional evaluates the conditional blocks of a template file,
// exposing each choice variable as its selected value. Token
// substitution happens afterwards on the rendered text.
func RenderConditional(path, content string, choices map[string]string) (string, error) {
	tpl, err := pongo2.FromString(content)
	if err != nil {
		return "", renderError(path, content, err)
	}

	ctx := pongo2.Context{}
	for name, value := range choices {
		ctx[name] = value
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", renderError(path, content, err)
	}
	return out, nil
}

func renderError(path, content string, err error) error {
	zerr := errors.Wrapf(err, errors.ErrTemplateRender, "Could not render the conditional blocks of template file '%s'.", path).
		WithRemediation("Check the '{%% if %%}' blocks of '%s'. Conditions can only refer to choice variables.", path).
		WithDetail("path", path)

	var perr *pongo2.Error
	if stderrors.As(err, &perr) && perr.Line > 0 {
		zerr = zerr.WithDetail("line", perr.Line)
		lines := strings.Split(content, "\n")
		if perr.Line <= len(lines) {
			zerr = zerr.WithException(err.Error() + "\n" + strings.TrimSpace(lines[perr.Line-1]))
		}
	}
	return zerr
}
