package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/arthur-debert/zat/pkg/choice"
	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/filesystem"
	"github.com/arthur-debert/zat/pkg/hook"
	"github.com/spf13/afero"
)

// Args are the per-run inputs taken from the command line
type Args struct {
	RepositoryDir string
	TargetDir     string
	// Ignores are appended after the configured ignores
	Ignores []string
	// MenuStyle overrides the configured menu style when set
	MenuStyle string
	// AnswersFile answers every question up front and turns review off
	AnswersFile string
}

// UserConfig is the validated configuration of one run
type UserConfig struct {
	RepositoryDir    string
	TemplateFilesDir string
	TargetDir        string
	VariablesFile    string
	Ignores          []string
	MenuStyle        choice.StyleName
	ShellHook        *hook.ShellHook
	AnswersFile      string
	Review           bool
	PluginTimeout    time.Duration
}

// NewUserConfig resolves the run directories and checks that the
// repository and its template files exist and that the target does not.
func NewUserConfig(fs afero.Fs, cfg *Config, args Args) (*UserConfig, error) {
	repoDir, err := filepath.Abs(args.RepositoryDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "Could not resolve the repository directory '%s'.", args.RepositoryDir)
	}
	targetDir, err := filepath.Abs(args.TargetDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "Could not resolve the target directory '%s'.", args.TargetDir)
	}
	templateFilesDir := filepath.Join(repoDir, cfg.Files.TemplateDir)

	if !filesystem.IsDir(fs, repoDir) {
		return nil, errors.Newf(errors.ErrTemplateDirMissing,
			"The Zat repository directory '%s' does not exist. It should exist so Zat can read the template configuration.", repoDir).
			WithRemediation("Please create the Zat repository directory '%s' with the Zat folder structure. See `zat --help` for more.", repoDir).
			WithDetail("path", repoDir)
	}

	if !filesystem.IsDir(fs, templateFilesDir) {
		return nil, errors.Newf(errors.ErrTemplateFilesDirMissing,
			"The Zat template files directory '%s' does not exist. It should exist so Zat can read the template files.", templateFilesDir).
			WithRemediation("Please create the Zat template files directory '%s' with the necessary template files. See `zat --help` for more details.", templateFilesDir).
			WithDetail("path", templateFilesDir)
	}

	exists, err := filesystem.Exists(fs, targetDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "Could not check the target directory '%s'.", targetDir).
			WithDetail("path", targetDir)
	}
	if exists {
		return nil, errors.Newf(errors.ErrTargetDirExists,
			"The target directory '%s' should not exist. It will be created when Zat processes the template files.", targetDir).
			WithRemediation("Please supply an empty directory for the target.").
			WithDetail("path", targetDir)
	}

	menuStyle := choice.StyleName(cfg.MenuStyle)
	if args.MenuStyle != "" {
		menuStyle = choice.StyleName(args.MenuStyle)
	}
	if !menuStyle.IsValid() {
		return nil, errors.Newf(errors.ErrInvalidInput, "Unknown menu style '%s'.", menuStyle).
			WithRemediation("Use one of: %s.", styleList())
	}

	shellHook, err := hook.Find(fs, repoDir, cfg.Files.ShellHook)
	if err != nil {
		return nil, err
	}

	answersFile := args.AnswersFile
	if answersFile != "" {
		if answersFile, err = filepath.Abs(answersFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "Could not resolve the answers file '%s'.", args.AnswersFile)
		}
	}

	return &UserConfig{
		RepositoryDir:    repoDir,
		TemplateFilesDir: templateFilesDir,
		TargetDir:        targetDir,
		VariablesFile:    cfg.Files.Variables,
		Ignores:          append(cfg.AllIgnores(), args.Ignores...),
		MenuStyle:        menuStyle,
		ShellHook:        shellHook,
		AnswersFile:      answersFile,
		Review:           cfg.Review && answersFile == "",
		PluginTimeout:    cfg.PluginTimeout,
	}, nil
}

// Lines describes the run configuration for verbose output
func (u *UserConfig) Lines() []string {
	hookStatus := "No shell hook found"
	if u.ShellHook != nil && u.ShellHook.Exists() {
		hookStatus = "Shell hook found"
	}
	answers := "interactive"
	if u.AnswersFile != "" {
		answers = u.AnswersFile
	}
	return []string{
		fmt.Sprintf("Repository directory: %s", u.RepositoryDir),
		fmt.Sprintf("Template files directory: %s", u.TemplateFilesDir),
		fmt.Sprintf("Target directory: %s", u.TargetDir),
		fmt.Sprintf("Ignored files and folders: %v", u.Ignores),
		fmt.Sprintf("Shell hook file: %s", hookStatus),
		fmt.Sprintf("Menu style: %s", u.MenuStyle),
		fmt.Sprintf("Answers: %s", answers),
	}
}
