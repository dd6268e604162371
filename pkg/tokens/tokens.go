// Package tokens expands user values and variable filters into the flat
// key/value list used for substitution, and wraps the keys into tokens.
package tokens

import (
	"github.com/arthur-debert/zat/pkg/filters"
	"github.com/arthur-debert/zat/pkg/templates"
)

// UserValues maps a variable name to the value supplied for it
type UserValues map[string]string

// Pair is one key/value entry. Keys and values always travel together so
// the substitution matcher and its replacements stay aligned.
type Pair struct {
	Key   string
	Value string
}

// ExpandedVariables is an ordered key/value list with unique keys.
// Setting an existing key replaces its value and keeps its position.
type ExpandedVariables struct {
	pairs []Pair
	index map[string]int
}

// Set writes key, last write wins
func (e *ExpandedVariables) Set(key, value string) {
	if e.index == nil {
		e.index = make(map[string]int)
	}
	if i, ok := e.index[key]; ok {
		e.pairs[i].Value = value
		return
	}
	e.index[key] = len(e.pairs)
	e.pairs = append(e.pairs, Pair{Key: key, Value: value})
}

// Get returns the value stored under key
func (e ExpandedVariables) Get(key string) (string, bool) {
	i, ok := e.index[key]
	if !ok {
		return "", false
	}
	return e.pairs[i].Value, true
}

// Pairs returns a copy of the entries in insertion order
func (e ExpandedVariables) Pairs() []Pair {
	return append([]Pair(nil), e.pairs...)
}

// Len returns the number of keys
func (e ExpandedVariables) Len() int {
	return len(e.pairs)
}

// FilterKey returns the key a filter writes to for variable name
func FilterKey(name string, f templates.VariableFilter) string {
	if f.IsDefault() {
		return name
	}
	return name + "__" + f.Name
}

// Expand emits, for every variable that has a user value, the raw
// name/value pair followed by one pair per filter in declaration order.
// A "__default__" filter therefore overwrites the raw value. Variables
// without a user value are skipped.
func Expand(vars []templates.TemplateVariable, values UserValues) ExpandedVariables {
	var out ExpandedVariables
	for _, v := range vars {
		value, ok := values[v.Name]
		if !ok {
			continue
		}
		out.Set(v.Name, value)
		for _, f := range v.Filters {
			out.Set(FilterKey(v.Name, f), filters.Apply(f.Filter, value))
		}
	}
	return out
}

// TokenTable holds the delimiter-wrapped keys and their replacement
// values. It is built once per run and only read afterwards.
type TokenTable struct {
	pairs []Pair
}

// NewTokenTable builds a table from already wrapped pairs
func NewTokenTable(pairs []Pair) TokenTable {
	return TokenTable{pairs: append([]Pair(nil), pairs...)}
}

// Tokenize wraps every expanded key with the token delimiter
func Tokenize(expanded ExpandedVariables) TokenTable {
	pairs := make([]Pair, 0, expanded.Len())
	for _, p := range expanded.pairs {
		pairs = append(pairs, Pair{Key: Wrap(p.Key), Value: p.Value})
	}
	return TokenTable{pairs: pairs}
}

// Wrap turns a key into its token form
func Wrap(key string) string {
	return templates.TokenDelimiter + key + templates.TokenDelimiter
}

// Pairs returns a copy of the tokens in order
func (t TokenTable) Pairs() []Pair {
	return append([]Pair(nil), t.pairs...)
}

// Len returns the number of tokens
func (t TokenTable) Len() int {
	return len(t.pairs)
}
