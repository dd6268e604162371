package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, tag := range []string{"success", "Success", "SUCCESS"} {
			res, err := DecodeResult([]byte(`{"` + tag + `": {"result": "coolapp"}}`))
			require.NoError(t, err, tag)
			require.NotNil(t, res.Success)
			assert.Nil(t, res.Failure)
			assert.Equal(t, "coolapp", res.Success.Result)
		}
	})

	t.Run("error with exception", func(t *testing.T) {
		res, err := DecodeResult([]byte(`{"Error": {"plugin_name": "git-user", "error": "no user", "exception": "exit 1", "fix": "set user.name"}}`))
		require.NoError(t, err)
		require.NotNil(t, res.Failure)
		assert.Equal(t, "git-user", res.Failure.PluginName)
		assert.Equal(t, "no user", res.Failure.Error)
		assert.Equal(t, "exit 1", res.Failure.ExceptionText())
		assert.Equal(t, "set user.name", res.Failure.Fix)
	})

	t.Run("error without exception", func(t *testing.T) {
		res, err := DecodeResult([]byte(`{"error": {"plugin_name": "p", "error": "e", "fix": "f"}}`))
		require.NoError(t, err)
		assert.Equal(t, NoException, res.Failure.ExceptionText())
	})

	invalid := map[string]string{
		"not json":       `hello`,
		"unknown tag":    `{"ok": {"result": "x"}}`,
		"two tags":       `{"success": {"result": "x"}, "error": {"error": "y"}}`,
		"unknown field":  `{"success": {"value": "x"}}`,
		"wrong type":     `{"success": {"result": 1}}`,
		"empty object":   `{}`,
		"untagged value": `{"result": "x"}`,
	}
	for name, input := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeResult([]byte(input))
			assert.Error(t, err)
		})
	}
}
