// Package filters applies the case transformations variables declare in
// their filters.
package filters

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/zat/pkg/templates"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Apply converts value to the given case. Unknown filter types leave the
// value unchanged.
func Apply(filter templates.FilterType, value string) string {
	if filter == templates.FilterNoop {
		return value
	}

	words := Words(value)
	// Casers keep state between calls, so each conversion gets its own.
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)
	title := cases.Title(language.Und)

	switch filter {
	case templates.FilterCamel:
		out := make([]string, len(words))
		for i, w := range words {
			if i == 0 {
				out[i] = lower.String(w)
				continue
			}
			out[i] = title.String(w)
		}
		return strings.Join(out, "")
	case templates.FilterPascal:
		return join(words, title, "")
	case templates.FilterCobol:
		return join(words, upper, "-")
	case templates.FilterFlat:
		return join(words, lower, "")
	case templates.FilterKebab:
		return join(words, lower, "-")
	case templates.FilterLower:
		return join(words, lower, " ")
	case templates.FilterSnake:
		return join(words, lower, "_")
	case templates.FilterTitle:
		return join(words, title, " ")
	case templates.FilterUpper:
		return join(words, upper, " ")
	default:
		return value
	}
}

func join(words []string, c cases.Caser, sep string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = c.String(w)
	}
	return strings.Join(out, sep)
}

// Words splits s into words. Spaces, underscores and hyphens separate
// words, as do a lower case letter followed by an upper case one, the end
// of an acronym ("XMLHttp" is "XML", "Http") and any change between
// letters and digits.
func Words(s string) []string {
	runes := []rune(s)
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	for i, r := range runes {
		if isDelimiter(r) {
			flush()
			continue
		}

		if len(current) > 0 {
			prev := current[len(current)-1]
			var next rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if isBoundary(prev, r, next) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return words
}

func isDelimiter(r rune) bool {
	return r == ' ' || r == '_' || r == '-'
}

func isBoundary(prev, cur, next rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur) && unicode.IsLower(next):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	}
	return false
}
