package prompt

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/zat/pkg/answers"
	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/style"
	"github.com/arthur-debert/zat/pkg/templates"
	"github.com/arthur-debert/zat/pkg/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func withPlugin(result string) *templates.Plugin {
	return &templates.Plugin{ID: "p", Status: templates.Ran(result)}
}

func TestConsole_Value(t *testing.T) {
	tests := []struct {
		name     string
		variable templates.TemplateVariable
		input    string
		want     string
		wantOK   bool
		wantOut  string
	}{
		{
			name:     "typed value",
			variable: templates.TemplateVariable{Name: "project", Prompt: "Project name"},
			input:    "Cool App\n",
			want:     "Cool App",
			wantOK:   true,
			wantOut:  "Project name",
		},
		{
			name:     "enter accepts default",
			variable: templates.TemplateVariable{Name: "license", Prompt: "License", DefaultValue: strPtr("MIT")},
			input:    "\n",
			want:     "MIT",
			wantOK:   true,
			wantOut:  "accept the default value of: MIT",
		},
		{
			name:     "plugin result beats default",
			variable: templates.TemplateVariable{Name: "author", Prompt: "Author", DefaultValue: strPtr("nobody"), Plugin: withPlugin("Jane")},
			input:    "\n",
			want:     "Jane",
			wantOK:   true,
			wantOut:  "accept the plugin result value of: Jane",
		},
		{
			name:     "typed value beats suggestion",
			variable: templates.TemplateVariable{Name: "license", Prompt: "License", DefaultValue: strPtr("MIT")},
			input:    "BSD\n",
			want:     "BSD",
			wantOK:   true,
		},
		{
			name:     "empty without suggestion",
			variable: templates.TemplateVariable{Name: "notes", Prompt: "Notes", DefaultValue: strPtr("")},
			input:    "\n",
			wantOK:   false,
		},
		{
			name:     "last line without newline",
			variable: templates.TemplateVariable{Name: "project", Prompt: "Project name"},
			input:    "tail",
			want:     "tail",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewConsole(strings.NewReader(tt.input), &out)

			got, ok, err := c.Value(tt.variable)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestConsole_ValueEOF(t *testing.T) {
	c := NewConsole(strings.NewReader(""), &bytes.Buffer{})
	_, _, err := c.Value(templates.TemplateVariable{Name: "project", Prompt: "Project"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPromptInput))
}

func TestAnswers_Value(t *testing.T) {
	src := NewAnswers(answers.Answers{"project": "Cool App"})

	v, ok, err := src.Value(templates.TemplateVariable{Name: "project"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Cool App", v)

	v, ok, err = src.Value(templates.TemplateVariable{Name: "license", DefaultValue: strPtr("MIT")})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "MIT", v)

	_, ok, err = src.Value(templates.TemplateVariable{Name: "notes"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollect(t *testing.T) {
	vars := []templates.TemplateVariable{
		{Name: "project", Prompt: "Project"},
		{Name: "notes", Prompt: "Notes"},
		{Name: "license", Prompt: "License", DefaultValue: strPtr("MIT")},
	}
	c := NewConsole(strings.NewReader("Cool App\n\n\n"), &bytes.Buffer{})

	values, mappings, err := Collect(c, vars)
	require.NoError(t, err)

	assert.Equal(t, tokens.UserValues{"project": "Cool App", "license": "MIT"}, values)
	assert.Equal(t, []style.Mapping{{Key: "project", Value: "Cool App"}, {Key: "license", Value: "MIT"}}, mappings)
}

func TestConsoleReviewer(t *testing.T) {
	mappings := []style.Mapping{{Key: "project", Value: "coolapp"}}

	for input, want := range map[string]bool{"y\n": true, "y": true, "n\n": false, "yes\n": false, "\n": false} {
		var out bytes.Buffer
		r := NewConsoleReviewer(strings.NewReader(input), &out, style.NewPlainRenderer())

		ok, err := r.Review(mappings)
		require.NoError(t, err, input)
		assert.Equal(t, want, ok, input)
		assert.Contains(t, out.String(), "Please confirm the variable mappings below are correct.")
		assert.Contains(t, out.String(), "project -> coolapp")
	}

	_, err := NewConsoleReviewer(strings.NewReader(""), &bytes.Buffer{}, style.NewPlainRenderer()).Review(mappings)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPromptInput))
}

func TestSharedReader(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("first\ny\n"))
	c := NewConsole(in, &bytes.Buffer{})
	r := NewConsoleReviewer(in, &bytes.Buffer{}, style.NewPlainRenderer())

	v, _, err := c.Value(templates.TemplateVariable{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	ok, err := r.Review(nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAcceptAll(t *testing.T) {
	ok, err := AcceptAll{}.Review([]style.Mapping{{Key: "a", Value: "b"}})
	require.NoError(t, err)
	assert.True(t, ok)
}
