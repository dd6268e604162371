// Test Type: Unit Test

package templates_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/templates"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableProvider_Load(t *testing.T) {
	repo := "/repo"
	path := filepath.Join(repo, templates.VariablesFileName)

	tests := []struct {
		name     string
		setup    func(fs afero.Fs)
		wantCode errors.ErrorCode
		wantLen  int
	}{
		{
			name:     "missing file",
			setup:    func(fs afero.Fs) { require.NoError(t, fs.MkdirAll(repo, 0755)) },
			wantCode: errors.ErrVariableFileNotFound,
		},
		{
			name: "invalid json",
			setup: func(fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, path, []byte("not json"), 0644))
			},
			wantCode: errors.ErrVariableFileDecode,
		},
		{
			name: "no variables",
			setup: func(fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, path, []byte("[]"), 0644))
			},
			wantCode: errors.ErrVariableFileEmpty,
		},
		{
			name: "valid file",
			setup: func(fs afero.Fs) {
				content := `[{"variable_name":"project","description":"d","prompt":"p"}]`
				require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
			},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			tt.setup(fs)

			provider := templates.NewVariableProviderWithFS(fs, "")
			vars, err := provider.Load(repo)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
				return
			}

			require.NoError(t, err)
			assert.Len(t, vars, tt.wantLen)
		})
	}
}
