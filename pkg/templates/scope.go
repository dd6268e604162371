package templates

import (
	"encoding/json"
	"fmt"
)

// Scope restricts a value variable to runs where certain choices were (or
// were not) made. The set of scopes is closed: IncludeChoiceValue,
// IncludeChoice, ExcludeChoiceValue and ExcludeChoice.
type Scope interface {
	isScope()
	// Excludes reports whether the scope is one of the exclusion kinds
	Excludes() bool
}

// IncludeChoiceValue matches when choice Choice was made with value Value
type IncludeChoiceValue struct {
	Choice string
	Value  string
}

// IncludeChoice matches when choice Choice was made with any value
type IncludeChoice struct {
	Choice string
}

// ExcludeChoiceValue matches unless choice Choice was made with value NotValue
type ExcludeChoiceValue struct {
	Choice   string
	NotValue string
}

// ExcludeChoice matches unless choice NotChoice was made
type ExcludeChoice struct {
	NotChoice string
}

func (IncludeChoiceValue) isScope() {}
func (IncludeChoice) isScope()      {}
func (ExcludeChoiceValue) isScope() {}
func (ExcludeChoice) isScope()      {}

func (IncludeChoiceValue) Excludes() bool { return false }
func (IncludeChoice) Excludes() bool      { return false }
func (ExcludeChoiceValue) Excludes() bool { return true }
func (ExcludeChoice) Excludes() bool      { return true }

func (s IncludeChoiceValue) String() string {
	return fmt.Sprintf("choice %s = %s", s.Choice, s.Value)
}

func (s IncludeChoice) String() string {
	return fmt.Sprintf("choice %s", s.Choice)
}

func (s ExcludeChoiceValue) String() string {
	return fmt.Sprintf("choice %s != %s", s.Choice, s.NotValue)
}

func (s ExcludeChoice) String() string {
	return fmt.Sprintf("not choice %s", s.NotChoice)
}

// scopeJSON decodes the untagged scope shapes. The most specific shape
// wins: choice+value, then choice+not_value, then choice, then not_choice.
type scopeJSON struct {
	scope Scope
}

func (s *scopeJSON) UnmarshalJSON(data []byte) error {
	var raw struct {
		Choice    *string `json:"choice"`
		Value     *string `json:"value"`
		NotValue  *string `json:"not_value"`
		NotChoice *string `json:"not_choice"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("could not decode scope: %w", err)
	}

	switch {
	case raw.Choice != nil && raw.Value != nil:
		s.scope = IncludeChoiceValue{Choice: *raw.Choice, Value: *raw.Value}
	case raw.Choice != nil && raw.NotValue != nil:
		s.scope = ExcludeChoiceValue{Choice: *raw.Choice, NotValue: *raw.NotValue}
	case raw.Choice != nil:
		s.scope = IncludeChoice{Choice: *raw.Choice}
	case raw.NotChoice != nil:
		s.scope = ExcludeChoice{NotChoice: *raw.NotChoice}
	default:
		return fmt.Errorf("could not decode scope %s: expected one of 'choice', 'choice' with 'value', 'choice' with 'not_value' or 'not_choice'", string(data))
	}
	return nil
}

// ParseScope decodes a single scope object
func ParseScope(data []byte) (Scope, error) {
	var s scopeJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s.scope, nil
}
