package hook

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHook(t *testing.T, body string, mode os.FileMode) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell hooks need a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), mode))
	return path
}

func quiet(h *ShellHook) (*ShellHook, *bytes.Buffer) {
	var out bytes.Buffer
	h.Stdout = &out
	h.Stderr = &out
	return h, &out
}

func TestFind(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/repo", 0755))

	h, err := Find(fs, "/repo", "")
	require.NoError(t, err)
	assert.False(t, h.Exists())

	require.NoError(t, afero.WriteFile(fs, "/repo/"+FileName, []byte("#!/bin/sh"), 0755))
	h, err = Find(fs, "/repo", "")
	require.NoError(t, err)
	assert.True(t, h.Exists())
	assert.Equal(t, "/repo/"+FileName, h.Path)

	h, err = Find(fs, "/repo", "other-hook")
	require.NoError(t, err)
	assert.False(t, h.Exists())
}

func TestRun_NoHook(t *testing.T) {
	assert.NoError(t, New("").Run(context.Background(), t.TempDir()))
}

func TestRun_ReceivesTargetDir(t *testing.T) {
	target := t.TempDir()
	h, out := quiet(New(writeHook(t, `echo "hooked $1"; touch "$1/marker"`, 0755)))

	require.NoError(t, h.Run(context.Background(), target))

	assert.Equal(t, "hooked "+target+"\n", out.String())
	_, err := os.Stat(filepath.Join(target, "marker"))
	assert.NoError(t, err)
}

func TestRun_NotExecutable(t *testing.T) {
	h, _ := quiet(New(writeHook(t, `exit 0`, 0644)))

	err := h.Run(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookRun))
	zerr, _ := errors.AsZatError(err)
	assert.Contains(t, zerr.Message, "failed with an error.")
}

func TestRun_NonZeroExit(t *testing.T) {
	target := t.TempDir()
	path := writeHook(t, `exit 4`, 0755)
	h, _ := quiet(New(path))

	err := h.Run(context.Background(), target)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookFailed))
	assert.Equal(t, 4, errors.GetErrorDetails(err)["exit_code"])
	zerr, _ := errors.AsZatError(err)
	assert.Contains(t, zerr.Message, "failed with status code 4")
	assert.Contains(t, zerr.Remediation, target)
}

func TestRun_Killed(t *testing.T) {
	h, _ := quiet(New(writeHook(t, `kill -9 $$`, 0755)))

	err := h.Run(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookKilled))
}
