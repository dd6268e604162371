// Package hook runs the optional shell hook of a template repository
// once processing has finished.
package hook

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/filesystem"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// FileName is the shell hook looked up in the repository directory
const FileName = "shell-hook.zat-exec"

// ShellHook is an executable run with the target directory as its only
// argument. An empty Path means the repository has no hook.
type ShellHook struct {
	Path   string
	Stdout io.Writer
	Stderr io.Writer
	logger zerolog.Logger
}

// Find returns the hook of repositoryDir, with an empty Path when the
// repository has none. fileName overrides FileName when set.
func Find(fs afero.Fs, repositoryDir, fileName string) (*ShellHook, error) {
	if fileName == "" {
		fileName = FileName
	}
	path := filepath.Join(repositoryDir, fileName)

	h := New("")
	exists, err := filesystem.Exists(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrHookRun, "Could not check for the shell hook '%s'.", path).
			WithDetail("path", path)
	}
	if exists {
		h.Path = path
	}
	return h, nil
}

// New creates a hook for path writing to the process' stdout and stderr
func New(path string) *ShellHook {
	return &ShellHook{
		Path:   path,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logging.GetLogger("hook"),
	}
}

// Exists reports whether there is a hook to run
func (h *ShellHook) Exists() bool {
	return h.Path != ""
}

// Run executes the hook against targetDir. It does nothing when the
// repository has no hook.
func (h *ShellHook) Run(ctx context.Context, targetDir string) error {
	if !h.Exists() {
		h.logger.Debug().Msg("No shell hook found")
		return nil
	}

	h.logger.Info().Str("hook", h.Path).Str("target", targetDir).Msg("Executing shell hook")
	logging.LogCommand(h.logger, h.Path, []string{targetDir})

	cmd := exec.CommandContext(ctx, h.Path, targetDir)
	cmd.Stdout = h.Stdout
	cmd.Stderr = h.Stderr

	err := cmd.Run()
	if err == nil {
		h.logger.Info().Str("hook", h.Path).Msg("Shell hook exited successfully")
		return nil
	}

	var exitErr *exec.ExitError
	if !stderrors.As(err, &exitErr) {
		return errors.Wrapf(err, errors.ErrHookRun, "Shell hook '%s' failed with an error.", h.Path).
			WithRemediation("Please ensure the shell hook file '%s' exists and is executable.", h.Path).
			WithDetail("path", h.Path)
	}

	// A process ended by a signal has no exit code.
	code := exitErr.ExitCode()
	if code < 0 {
		return errors.Wrapf(err, errors.ErrHookKilled,
			"Shell hook '%s' was shutdown. Some other process killed the shell hook process.", h.Path).
			WithRemediation("Try running the shell hook file '%s' manually on the output.", h.Path).
			WithDetail("path", h.Path)
	}

	return errors.Wrapf(err, errors.ErrHookFailed,
		"Shell hook '%s %s' failed with status code %d. The shell hook failed with a non-zero error code signifying an error.", h.Path, targetDir, code).
		WithRemediation("Please check the logs above for why the shell hook failed. Try running the shell hook file '%s' with argument '%s' manually to iterate on the error.", h.Path, targetDir).
		WithDetail("path", h.Path).
		WithDetail("exit_code", code)
}
