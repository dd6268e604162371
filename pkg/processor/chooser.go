package processor

import (
	"regexp"

	"github.com/arthur-debert/zat/pkg/errors"
)

// FileChooser decides which source entries are processed. It sees both
// the full walked path and the path relative to the template files
// directory.
type FileChooser interface {
	IsIncluded(path, relativePath string) bool
}

// RegexFileChooser excludes every entry whose full path, or path relative
// to the template files directory, matches any of its patterns.
type RegexFileChooser struct {
	patterns []*regexp.Regexp
}

// NewRegexFileChooser compiles the ignore patterns in order
func NewRegexFileChooser(patterns []string) (*RegexFileChooser, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIgnorePattern, "The ignore pattern '%s' is not a valid regular expression.", p).
				WithRemediation("Fix or remove the ignore pattern '%s'. Ignores use Go regular expression syntax.", p).
				WithDetail("pattern", p)
		}
		compiled = append(compiled, re)
	}
	return &RegexFileChooser{patterns: compiled}, nil
}

// IsIncluded reports whether no pattern matches path or relativePath
func (c *RegexFileChooser) IsIncluded(path, relativePath string) bool {
	for _, re := range c.patterns {
		if re.MatchString(path) || re.MatchString(relativePath) {
			return false
		}
	}
	return true
}
