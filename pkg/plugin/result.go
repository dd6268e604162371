package plugin

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NoException is reported when a failing plugin gives no exception
const NoException = "<No Exception>"

// Result is the decoded output of a plugin run. Exactly one of Success
// and Failure is set.
type Result struct {
	Success *Success
	Failure *Failure
}

// Success carries the value a plugin produced
type Success struct {
	Result string `json:"result"`
}

// Failure is an error reported by the plugin itself
type Failure struct {
	PluginName string  `json:"plugin_name"`
	Error      string  `json:"error"`
	Exception  *string `json:"exception"`
	Fix        string  `json:"fix"`
}

// ExceptionText returns the exception or NoException
func (f Failure) ExceptionText() string {
	if f.Exception == nil {
		return NoException
	}
	return *f.Exception
}

// DecodeResult parses plugin stdout
func DecodeResult(data []byte) (Result, error) {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return Result{}, err
	}
	if len(tagged) != 1 {
		return Result{}, fmt.Errorf("expected exactly one of 'success' or 'error', got %d fields", len(tagged))
	}

	for tag, body := range tagged {
		switch strings.ToLower(tag) {
		case "success":
			var s Success
			if err := strictUnmarshal(body, &s); err != nil {
				return Result{}, fmt.Errorf("invalid success result: %w", err)
			}
			return Result{Success: &s}, nil
		case "error":
			var f Failure
			if err := strictUnmarshal(body, &f); err != nil {
				return Result{}, fmt.Errorf("invalid error result: %w", err)
			}
			return Result{Failure: &f}, nil
		default:
			return Result{}, fmt.Errorf("unknown variant '%s', expected 'success' or 'error'", tag)
		}
	}
	return Result{}, fmt.Errorf("empty plugin result")
}

func strictUnmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
