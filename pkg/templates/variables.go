// Package templates holds the variable catalog of a template repository:
// the variables a user is asked for, their filters, choices, scopes and
// plugin bindings, plus decoding of the repository's variable file.
package templates

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TokenDelimiter wraps every variable key to form the token searched for
// in file names and template content.
const TokenDelimiter = "$"

// DefaultFilterName is the reserved filter name whose output replaces the
// variable's own key instead of adding a derived one.
const DefaultFilterName = "__default__"

// FilterType names a case transformation
type FilterType string

const (
	FilterCamel  FilterType = "Camel"
	FilterCobol  FilterType = "Cobol"
	FilterFlat   FilterType = "Flat"
	FilterKebab  FilterType = "Kebab"
	FilterLower  FilterType = "Lower"
	FilterNoop   FilterType = "Noop"
	FilterPascal FilterType = "Pascal"
	FilterSnake  FilterType = "Snake"
	FilterTitle  FilterType = "Title"
	FilterUpper  FilterType = "Upper"
)

// AllFilterTypes lists every supported filter in declaration order
var AllFilterTypes = []FilterType{
	FilterCamel, FilterCobol, FilterFlat, FilterKebab, FilterLower,
	FilterNoop, FilterPascal, FilterSnake, FilterTitle, FilterUpper,
}

// IsValid reports whether the filter type is one zat knows how to apply
func (f FilterType) IsValid() bool {
	for _, known := range AllFilterTypes {
		if f == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects unknown filter names
func (f *FilterType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("filter type should be a string: %w", err)
	}
	ft := FilterType(s)
	if !ft.IsValid() {
		return fmt.Errorf("unknown filter type %q, expected one of %v", s, AllFilterTypes)
	}
	*f = ft
	return nil
}

// VariableFilter derives an extra token from a variable's value
type VariableFilter struct {
	Name   string     `json:"name"`
	Filter FilterType `json:"filter"`
}

// IsDefault reports whether the filter overwrites the variable's own key
func (vf VariableFilter) IsDefault() bool {
	return vf.Name == DefaultFilterName
}

// Choice is one option of a choice variable
type Choice struct {
	Display     string `json:"display"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// VariableKind tells value variables from choice variables
type VariableKind int

const (
	// ValueVariable is prompted for a free-form value
	ValueVariable VariableKind = iota
	// ChoiceVariable is resolved by selecting one of its choices
	ChoiceVariable
)

func (k VariableKind) String() string {
	if k == ChoiceVariable {
		return "choice"
	}
	return "value"
}

// TemplateVariable is one entry of the variable file
type TemplateVariable struct {
	Name         string
	Description  string
	Prompt       string
	Filters      []VariableFilter
	DefaultValue *string
	Plugin       *Plugin
	Choices      []Choice
	Scopes       []Scope
}

// Kind returns ChoiceVariable when the variable declares choices
func (v TemplateVariable) Kind() VariableKind {
	if len(v.Choices) > 0 {
		return ChoiceVariable
	}
	return ValueVariable
}

// Default returns the declared default value, if any
func (v TemplateVariable) Default() (string, bool) {
	if v.DefaultValue == nil {
		return "", false
	}
	return *v.DefaultValue, true
}

// PluginResult returns the result of the variable's plugin if it ran
func (v TemplateVariable) PluginResult() (string, bool) {
	if v.Plugin == nil {
		return "", false
	}
	return v.Plugin.Status.Result()
}

// Suggestion is the value offered when the user enters nothing: a plugin
// result wins over the declared default.
func (v TemplateVariable) Suggestion() (string, bool) {
	if result, ok := v.PluginResult(); ok {
		return result, true
	}
	if def, ok := v.Default(); ok && def != "" {
		return def, true
	}
	return "", false
}

type variableJSON struct {
	Name         string           `json:"variable_name"`
	Description  string           `json:"description"`
	Prompt       string           `json:"prompt"`
	Filters      []VariableFilter `json:"filters"`
	DefaultValue *string          `json:"default_value"`
	Plugin       *Plugin          `json:"plugin"`
	Choices      []Choice         `json:"choice"`
	Scopes       []scopeJSON      `json:"scope"`
}

// UnmarshalJSON decodes one variable file entry
func (v *TemplateVariable) UnmarshalJSON(data []byte) error {
	var raw variableJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Name == "" {
		return fmt.Errorf("missing field 'variable_name'")
	}
	if strings.Contains(raw.Name, TokenDelimiter) {
		return fmt.Errorf("variable name %q can't contain the token delimiter '%s'", raw.Name, TokenDelimiter)
	}
	for _, f := range raw.Filters {
		if strings.Contains(f.Name, TokenDelimiter) {
			return fmt.Errorf("filter name %q of variable %q can't contain the token delimiter '%s'", f.Name, raw.Name, TokenDelimiter)
		}
	}

	*v = TemplateVariable{
		Name:         raw.Name,
		Description:  raw.Description,
		Prompt:       raw.Prompt,
		Filters:      raw.Filters,
		DefaultValue: raw.DefaultValue,
		Plugin:       raw.Plugin,
		Choices:      raw.Choices,
	}
	for _, s := range raw.Scopes {
		v.Scopes = append(v.Scopes, s.scope)
	}
	return nil
}
