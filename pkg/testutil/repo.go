package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/zat/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TestRepo is a template repository under construction
type TestRepo struct {
	FS   afero.Fs
	Root string // Repository directory
}

// NewMemoryRepo creates an empty repository with a template directory at
// root on a fresh in-memory filesystem
func NewMemoryRepo(t *testing.T, root string) *TestRepo {
	t.Helper()
	return NewRepo(t, filesystem.NewMemory(), root)
}

// NewRepo creates an empty repository at root on fs
func NewRepo(t *testing.T, fs afero.Fs, root string) *TestRepo {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Join(root, "template"), 0755))
	return &TestRepo{FS: fs, Root: root}
}

// TemplateDir returns the template files directory
func (r *TestRepo) TemplateDir() string {
	return filepath.Join(r.Root, "template")
}

// WithVariables writes the variable file from raw JSON
func (r *TestRepo) WithVariables(t *testing.T, variablesJSON string) *TestRepo {
	t.Helper()
	r.write(t, filepath.Join(r.Root, ".variables.zat-prompt"), variablesJSON, 0644)
	return r
}

// WithVariableList encodes vars as the variable file
func (r *TestRepo) WithVariableList(t *testing.T, vars ...Variable) *TestRepo {
	t.Helper()
	data, err := json.MarshalIndent(vars, "", "  ")
	require.NoError(t, err)
	return r.WithVariables(t, string(data))
}

// WithFile adds a file below the template directory
func (r *TestRepo) WithFile(t *testing.T, relPath, content string) *TestRepo {
	t.Helper()
	r.write(t, filepath.Join(r.TemplateDir(), relPath), content, 0644)
	return r
}

// WithDir adds an empty directory below the template directory
func (r *TestRepo) WithDir(t *testing.T, relPath string) *TestRepo {
	t.Helper()
	require.NoError(t, r.FS.MkdirAll(filepath.Join(r.TemplateDir(), relPath), 0755))
	return r
}

// WithShellHook adds an executable shell hook to the repository
func (r *TestRepo) WithShellHook(t *testing.T, script string) *TestRepo {
	t.Helper()
	r.write(t, filepath.Join(r.Root, "shell-hook.zat-exec"), script, 0755)
	return r
}

func (r *TestRepo) write(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, r.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(r.FS, path, []byte(content), perm))
}
