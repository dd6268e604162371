package templates

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	msgArgsEmpty   = "'args' field can't be empty. Remove the 'args' field if there are no arguments or supply one of: List of string or List (name, value, prefix)"
	msgArgsInvalid = "Could not decode 'args' field. It should be one of: List of string or List (name, value, prefix)"
)

// Plugin is an external program whose output suggests a variable's value
type Plugin struct {
	ID     string    `json:"id"`
	Args   Args      `json:"args,omitempty"`
	Status RunStatus `json:"-"`
}

// Args is the closed set of plugin argument shapes: ArgLine or NamedArgs.
// A nil Args means the plugin takes no arguments.
type Args interface {
	// CommandArgs renders the arguments passed to the plugin process
	CommandArgs() []string
}

// ArgLine is passed to the plugin verbatim
type ArgLine []string

// NamedArgs become "prefix+name value" pairs
type NamedArgs []PluginArg

// PluginArg is one named argument
type PluginArg struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Prefix string `json:"prefix"`
}

func (a ArgLine) CommandArgs() []string {
	return append([]string(nil), a...)
}

func (a NamedArgs) CommandArgs() []string {
	out := make([]string, 0, len(a)*2)
	for _, arg := range a {
		out = append(out, arg.Prefix+arg.Name, arg.Value)
	}
	return out
}

// CommandArgs returns the plugin's process arguments
func (p Plugin) CommandArgs() []string {
	if p.Args == nil {
		return nil
	}
	return p.Args.CommandArgs()
}

// CommandLine renders the plugin invocation for messages and logs
func (p Plugin) CommandLine() string {
	parts := append([]string{p.ID}, p.CommandArgs()...)
	return strings.Join(parts, " ")
}

// UnmarshalJSON decodes a plugin and its untagged args field
func (p *Plugin) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   string          `json:"id"`
		Args json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == "" {
		return errors.New("missing field 'id'")
	}

	*p = Plugin{ID: raw.ID}
	if len(raw.Args) == 0 || string(raw.Args) == "null" {
		return nil
	}

	args, err := decodeArgs(raw.Args)
	if err != nil {
		return err
	}
	p.Args = args
	return nil
}

func decodeArgs(data json.RawMessage) (Args, error) {
	var line []string
	if err := json.Unmarshal(data, &line); err == nil {
		if len(line) == 0 {
			return nil, errors.New(msgArgsEmpty)
		}
		return ArgLine(line), nil
	}

	var named []PluginArg
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&named); err == nil {
		if len(named) == 0 {
			return nil, errors.New(msgArgsEmpty)
		}
		return NamedArgs(named), nil
	}

	return nil, errors.New(msgArgsInvalid)
}

// RunStatus records whether a plugin has run and what it returned
type RunStatus struct {
	ran    bool
	result string
}

// NotRun is the status of a plugin before execution
func NotRun() RunStatus {
	return RunStatus{}
}

// Ran is the status of a plugin that returned result
func Ran(result string) RunStatus {
	return RunStatus{ran: true, result: result}
}

// Result returns the plugin result and whether the plugin ran
func (s RunStatus) Result() (string, bool) {
	return s.result, s.ran
}
