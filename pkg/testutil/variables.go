package testutil

// Variable mirrors one variable file entry for building fixtures
type Variable struct {
	Name         string    `json:"variable_name"`
	Description  string    `json:"description"`
	Prompt       string    `json:"prompt"`
	Filters      []Filter  `json:"filters,omitempty"`
	DefaultValue *string   `json:"default_value,omitempty"`
	Plugin       *Plugin   `json:"plugin,omitempty"`
	Choices      []Choice  `json:"choice,omitempty"`
	Scopes       []ScopeJS `json:"scope,omitempty"`
}

// Filter is a variable file filter entry
type Filter struct {
	Name   string `json:"name"`
	Filter string `json:"filter"`
}

// Plugin is a variable file plugin entry
type Plugin struct {
	ID   string   `json:"id"`
	Args []string `json:"args,omitempty"`
}

// Choice is a variable file choice entry
type Choice struct {
	Display     string `json:"display"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// ScopeJS is a variable file scope entry; set the fields of one shape
type ScopeJS struct {
	Choice    string `json:"choice,omitempty"`
	Value     string `json:"value,omitempty"`
	NotValue  string `json:"not_value,omitempty"`
	NotChoice string `json:"not_choice,omitempty"`
}

// ValueVar returns a plain value variable
func ValueVar(name, prompt string, filters ...Filter) Variable {
	return Variable{Name: name, Description: prompt, Prompt: prompt, Filters: filters}
}

// ChoiceVar returns a choice variable
func ChoiceVar(name, prompt string, choices ...Choice) Variable {
	return Variable{Name: name, Description: prompt, Prompt: prompt, Choices: choices}
}

// WithDefault sets the default value
func (v Variable) WithDefault(value string) Variable {
	v.DefaultValue = &value
	return v
}

// WithScopes sets the scopes
func (v Variable) WithScopes(scopes ...ScopeJS) Variable {
	v.Scopes = scopes
	return v
}
