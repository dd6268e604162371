package config

import (
	"testing"
	"time"

	"github.com/arthur-debert/zat/pkg/choice"
	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	return &Config{
		MenuStyle:     "numbered",
		Review:        true,
		PluginTimeout: time.Minute,
		Files: Files{
			Variables:   ".variables.zat-prompt",
			TemplateDir: "template",
			ShellHook:   "shell-hook.zat-exec",
		},
	}
}

func repoFS(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/repo/template", 0755))
	return fs
}

func TestNewUserConfig(t *testing.T) {
	fs := repoFS(t)

	uc, err := NewUserConfig(fs, defaults(), Args{
		RepositoryDir: "/repo",
		TargetDir:     "/out/app",
		Ignores:       []string{`\.bak$`},
	})
	require.NoError(t, err)

	assert.Equal(t, "/repo", uc.RepositoryDir)
	assert.Equal(t, "/repo/template", uc.TemplateFilesDir)
	assert.Equal(t, "/out/app", uc.TargetDir)
	assert.Equal(t, choice.StyleNumbered, uc.MenuStyle)
	assert.True(t, uc.Review)
	assert.False(t, uc.ShellHook.Exists())
	assert.Equal(t, `\.bak$`, uc.Ignores[len(uc.Ignores)-1])
	assert.Contains(t, uc.Ignores, `(^|/)\.git(/|$)`)
	assert.Contains(t, uc.Lines(), "Shell hook file: No shell hook found")
}

func TestNewUserConfig_Overrides(t *testing.T) {
	fs := repoFS(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/shell-hook.zat-exec", []byte("#!/bin/sh"), 0755))

	uc, err := NewUserConfig(fs, defaults(), Args{
		RepositoryDir: "/repo",
		TargetDir:     "/out/app",
		MenuStyle:     "selection",
		AnswersFile:   "/answers.toml",
	})
	require.NoError(t, err)

	assert.Equal(t, choice.StyleSelection, uc.MenuStyle)
	assert.Equal(t, "/answers.toml", uc.AnswersFile)
	assert.False(t, uc.Review, "answers files skip the review")
	assert.True(t, uc.ShellHook.Exists())
	assert.Equal(t, "/repo/shell-hook.zat-exec", uc.ShellHook.Path)
}

func TestNewUserConfig_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fs afero.Fs)
		args  Args
		code  errors.ErrorCode
	}{
		{
			name: "missing repository",
			args: Args{RepositoryDir: "/nope", TargetDir: "/out"},
			code: errors.ErrTemplateDirMissing,
		},
		{
			name:  "missing template files",
			setup: func(fs afero.Fs) { _ = fs.MkdirAll("/bare", 0755) },
			args:  Args{RepositoryDir: "/bare", TargetDir: "/out"},
			code:  errors.ErrTemplateFilesDirMissing,
		},
		{
			name:  "target exists",
			setup: func(fs afero.Fs) { _ = fs.MkdirAll("/out", 0755) },
			args:  Args{RepositoryDir: "/repo", TargetDir: "/out"},
			code:  errors.ErrTargetDirExists,
		},
		{
			name: "unknown menu style",
			args: Args{RepositoryDir: "/repo", TargetDir: "/out", MenuStyle: "wheel"},
			code: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := repoFS(t)
			if tt.setup != nil {
				tt.setup(fs)
			}
			_, err := NewUserConfig(fs, defaults(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestNewUserConfig_TargetMessage(t *testing.T) {
	fs := repoFS(t)
	require.NoError(t, fs.MkdirAll("/out", 0755))

	_, err := NewUserConfig(fs, defaults(), Args{RepositoryDir: "/repo", TargetDir: "/out"})
	zerr, ok := errors.AsZatError(err)
	require.True(t, ok)
	assert.Equal(t, "The target directory '/out' should not exist. It will be created when Zat processes the template files.", zerr.Message)
}
