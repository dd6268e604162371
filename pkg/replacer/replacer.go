// Package replacer substitutes tokens in file names and template content.
package replacer

import (
	"sort"
	"strings"

	"github.com/arthur-debert/zat/pkg/tokens"
)

// Replacer performs leftmost-longest, single pass replacement of a fixed
// set of patterns. Replaced text is never scanned again.
type Replacer struct {
	r        *strings.Replacer
	patterns int
}

// New builds a replacer over every token of the table
func New(table tokens.TokenTable) *Replacer {
	return FromPairs(table.Pairs())
}

// FromPairs builds a replacer from key/value pairs. Empty keys are
// ignored.
func FromPairs(pairs []tokens.Pair) *Replacer {
	ordered := make([]tokens.Pair, 0, len(pairs))
	for _, p := range pairs {
		if p.Key != "" {
			ordered = append(ordered, p)
		}
	}

	// strings.Replacer prefers earlier arguments when several patterns
	// match at the same position, so longer keys go first.
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Key) > len(ordered[j].Key)
	})

	oldnew := make([]string, 0, len(ordered)*2)
	for _, p := range ordered {
		oldnew = append(oldnew, p.Key, p.Value)
	}

	return &Replacer{r: strings.NewReplacer(oldnew...), patterns: len(ordered)}
}

// Replace returns s with every match replaced
func (r *Replacer) Replace(s string) string {
	if r.patterns == 0 {
		return s
	}
	return r.r.Replace(s)
}

// Patterns returns how many patterns the replacer matches
func (r *Replacer) Patterns() int {
	return r.patterns
}
