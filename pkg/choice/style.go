// Package choice resolves choice variables: every variable that declares
// choices gets exactly one selected choice from a Style.
package choice

import (
	"github.com/arthur-debert/zat/pkg/templates"
)

// Style asks for one choice out of the variable's choices
type Style interface {
	GetChoice(variable templates.TemplateVariable, choices []templates.Choice) (templates.Choice, error)
}

// StyleName identifies a menu style in configuration and flags
type StyleName string

const (
	StyleNumbered  StyleName = "numbered"
	StyleSelection StyleName = "selection"
)

// StyleNames lists the menu styles selectable from the command line
var StyleNames = []StyleName{StyleNumbered, StyleSelection}

// IsValid reports whether name is a known menu style
func (n StyleName) IsValid() bool {
	return n == StyleNumbered || n == StyleSelection
}
