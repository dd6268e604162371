// Package answers loads pre-supplied answers for a non-interactive run.
//
// An answers file is a flat map from variable name to answer, in JSON,
// TOML or YAML, chosen by file extension. Choice variables take the
// value (or display text) of a choice; value variables take their value.
package answers

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/filesystem"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Format of an answers file
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Answers maps variable names to answers
type Answers map[string]string

// Get returns the answer for name
func (a Answers) Get(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// Names returns the answered variable names, sorted
func (a Answers) Names() []string {
	names := make([]string, 0, len(a))
	for n := range a {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FormatOf picks the format from the file extension
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Load reads and decodes the answers file at path
func Load(fs afero.Fs, path string) (Answers, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, errors.Newf(errors.ErrAnswersFile, "The answers file '%s' has an unsupported extension.", path).
			WithRemediation("Use a .json, .toml, .yaml or .yml answers file.").
			WithDetail("path", path)
	}

	if !filesystem.IsFile(fs, path) {
		return nil, errors.Newf(errors.ErrAnswersFile, "The answers file '%s' does not exist or is not a regular file.", path).
			WithRemediation("Check the path given to --answers.").
			WithDetail("path", path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrAnswersFile, "Could not read the answers file '%s'.", path).
			WithRemediation("Ensure the answers file '%s' exists and is readable.", path).
			WithDetail("path", path)
	}

	answers, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrAnswersFile, "Could not decode the answers file '%s'.", path).
			WithRemediation("The answers file should map variable names to values, e.g. project = \"my-app\".").
			WithDetail("path", path).
			WithDetail("format", string(format))
	}
	return answers, nil
}

// Decode parses answers in the given format. Scalar answers are
// converted to strings; nested values are rejected.
func Decode(data []byte, format Format) (Answers, error) {
	raw := map[string]interface{}{}

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unknown answers format '%s'", format)
	}
	if err != nil {
		return nil, err
	}

	out := make(Answers, len(raw))
	for name, value := range raw {
		s, err := scalar(value)
		if err != nil {
			return nil, fmt.Errorf("answer '%s': %w", name, err)
		}
		out[name] = s
	}
	return out, nil
}

func scalar(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(t), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("expected a string, number or boolean, got %T", v)
	}
}
