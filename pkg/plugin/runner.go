package plugin

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/arthur-debert/zat/pkg/templates"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single plugin run
const DefaultTimeout = time.Minute

const msgRunManually = "Try running the plugin manually to fix the above error."

// Runner executes one plugin
type Runner interface {
	Run(ctx context.Context, p templates.Plugin) (Result, error)
}

// ExecRunner runs plugins as child processes
type ExecRunner struct {
	timeout time.Duration
	dir     string
	logger  zerolog.Logger
}

// NewExecRunner creates a runner. A zero timeout uses DefaultTimeout.
// Plugins run inside dir, or the current directory when dir is empty.
func NewExecRunner(timeout time.Duration, dir string) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExecRunner{
		timeout: timeout,
		dir:     dir,
		logger:  logging.GetLogger("plugin"),
	}
}

// Run starts the plugin, waits for it and decodes its output. A result
// reported by the plugin as an error is returned as a Result, not as an
// error; RunPlugins turns it into one.
func (r *ExecRunner) Run(ctx context.Context, p templates.Plugin) (Result, error) {
	program := p.CommandLine()
	r.logger.Info().Str("plugin", p.ID).Msg("Running plugin")
	logging.LogCommand(r.logger, p.ID, p.CommandArgs())

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.ID, p.CommandArgs()...)
	cmd.Dir = r.dir
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if stderr.Len() > 0 {
		r.logger.Debug().Str("plugin", p.ID).Str("stderr", stderr.String()).Msg("Plugin stderr")
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(runErr, &exitErr) {
			return Result{}, couldNotRun(program, runErr)
		}
		if ctx.Err() != nil {
			return Result{}, couldNotRun(program, ctx.Err())
		}
		// Plugins may exit non-zero after printing an error result.
		if res, err := DecodeResult(stdout.Bytes()); err == nil && res.Failure != nil {
			return res, nil
		}
		return Result{}, invalidExitCode(program, exitErr.ExitCode(), stderr.String())
	}

	if !utf8.Valid(stdout.Bytes()) {
		return Result{}, errors.Newf(errors.ErrPluginOutput, "The plugin '%s' returned invalid UTF8 characters.", program).
			WithRemediation(msgRunManually).
			WithDetail("plugin", program)
	}
	if !utf8.Valid(stderr.Bytes()) {
		return Result{}, errors.Newf(errors.ErrPluginOutput, "The plugin '%s' returned invalid UTF8 characters to stderr.", program).
			WithRemediation(msgRunManually).
			WithDetail("plugin", program)
	}

	res, err := DecodeResult(stdout.Bytes())
	if err != nil {
		return Result{}, couldNotDecode(program, stdout.String(), stderr.String(), err)
	}
	return res, nil
}

// RunPlugins runs the plugin of every variable that has one, in order,
// and records the result on the variable. It stops at the first failure.
func RunPlugins(ctx context.Context, r Runner, vars []templates.TemplateVariable) error {
	logger := logging.GetLogger("plugin")
	for i := range vars {
		p := vars[i].Plugin
		if p == nil {
			continue
		}

		res, err := r.Run(ctx, *p)
		if err != nil {
			return err
		}
		if res.Failure != nil {
			return pluginFailure(p.CommandLine(), *res.Failure)
		}
		if res.Success == nil {
			return errors.Newf(errors.ErrPluginDecode, "The plugin '%s' returned neither a result nor an error.", p.CommandLine()).
				WithRemediation(msgRunManually)
		}

		p.Status = templates.Ran(res.Success.Result)
		logger.Debug().
			Str("variable", vars[i].Name).
			Str("plugin", p.ID).
			Str("result", res.Success.Result).
			Msg("Plugin completed")
	}
	return nil
}

func couldNotRun(program string, err error) error {
	return errors.Wrapf(err, errors.ErrPluginRun, "Plugin '%s' could not be run. Does it exist and is it executable?", program).
		WithRemediation(msgRunManually).
		WithDetail("plugin", program)
}

func invalidExitCode(program string, code int, stderr string) error {
	zerr := errors.Newf(errors.ErrPluginFailure,
		"Plugin '%s' failed with status code %d. The plugin failed with a non-zero error code signifying an error.", program, code).
		WithRemediation(msgRunManually).
		WithDetail("plugin", program).
		WithDetail("exit_code", code)
	if s := strings.TrimSpace(stderr); s != "" {
		zerr = zerr.WithException(s)
	}
	return zerr
}

func couldNotDecode(program, stdout, stderr string, err error) error {
	stderrMsg := ""
	if stderr != "" {
		stderrMsg = " The plugin returned the following error: " + stderr
	}
	return errors.Wrapf(err, errors.ErrPluginDecode,
		"Could not decode result from plugin '%s'. The plugin returned: '%s'.%s", program, stdout, stderrMsg).
		WithRemediation(msgRunManually).
		WithDetail("plugin", program)
}

func pluginFailure(program string, f Failure) error {
	name := f.PluginName
	if name == "" {
		name = program
	}
	return errors.Newf(errors.ErrPluginFailure, "Plugin '%s' returned an error: %s", name, f.Error).
		WithException(f.ExceptionText()).
		WithRemediation("%s", f.Fix).
		WithDetail("plugin", program)
}
