// Test Type: Unit Test

package templates_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/zat/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlugin_Decode(t *testing.T) {
	t.Run("named args", func(t *testing.T) {
		input := `{
		  "id": "scala-deps",
		  "args": [
		    { "name": "o", "value": "org.scala-lang", "prefix": "-" },
		    { "name": "group", "value": "scala3-library", "prefix": "--" }
		  ]
		}`

		var p templates.Plugin
		require.NoError(t, json.Unmarshal([]byte(input), &p))

		assert.Equal(t, "scala-deps", p.ID)
		assert.Equal(t, templates.NamedArgs{
			{Name: "o", Value: "org.scala-lang", Prefix: "-"},
			{Name: "group", Value: "scala3-library", Prefix: "--"},
		}, p.Args)
		assert.Equal(t, []string{"-o", "org.scala-lang", "--group", "scala3-library"}, p.CommandArgs())
		assert.Equal(t, "scala-deps -o org.scala-lang --group scala3-library", p.CommandLine())

		_, ran := p.Status.Result()
		assert.False(t, ran)
	})

	t.Run("arg line", func(t *testing.T) {
		var p templates.Plugin
		require.NoError(t, json.Unmarshal([]byte(`{"id": "echo", "args": ["-n", "hello world"]}`), &p))

		assert.Equal(t, templates.ArgLine{"-n", "hello world"}, p.Args)
		assert.Equal(t, []string{"-n", "hello world"}, p.CommandArgs())
	})

	t.Run("no args", func(t *testing.T) {
		var p templates.Plugin
		require.NoError(t, json.Unmarshal([]byte(`{"id": "whoami"}`), &p))

		assert.Nil(t, p.Args)
		assert.Empty(t, p.CommandArgs())
		assert.Equal(t, "whoami", p.CommandLine())
	})
}

func TestPlugin_DecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty args list",
			input:   `{"id": "p", "args": []}`,
			wantErr: "'args' field can't be empty",
		},
		{
			name:    "args of wrong type",
			input:   `{"id": "p", "args": [1, 2]}`,
			wantErr: "Could not decode 'args' field",
		},
		{
			name:    "args object",
			input:   `{"id": "p", "args": {"name": "x"}}`,
			wantErr: "Could not decode 'args' field",
		},
		{
			name:    "missing id",
			input:   `{"args": ["x"]}`,
			wantErr: "missing field 'id'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p templates.Plugin
			err := json.Unmarshal([]byte(tt.input), &p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
