// Package workflow runs a complete zat generation: it loads the
// variables of a template repository, gathers choices and values, and
// renders the template files into the target directory.
package workflow

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/arthur-debert/zat/pkg/answers"
	"github.com/arthur-debert/zat/pkg/choice"
	"github.com/arthur-debert/zat/pkg/config"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/arthur-debert/zat/pkg/plugin"
	"github.com/arthur-debert/zat/pkg/processor"
	"github.com/arthur-debert/zat/pkg/prompt"
	"github.com/arthur-debert/zat/pkg/scope"
	"github.com/arthur-debert/zat/pkg/style"
	"github.com/arthur-debert/zat/pkg/templates"
	"github.com/arthur-debert/zat/pkg/tokens"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options wires the collaborators of a run. Zero values pick the
// interactive defaults.
type Options struct {
	FileSystem afero.Fs
	In         io.Reader
	Out        io.Writer
	Renderer   style.Renderer
	// PluginRunner defaults to running plugins as child processes
	PluginRunner plugin.Runner
	// ChoiceStyle replaces the menu selected by the configuration
	ChoiceStyle choice.Style
	// SkipHook leaves the shell hook alone even if the repository has one
	SkipHook bool
}

// Outcome reports what a run decided and wrote
type Outcome struct {
	// Accepted is false when the user rejected the review; nothing was
	// written in that case.
	Accepted bool
	Choices  choice.SelectedChoices
	Values   tokens.UserValues
	Tokens   tokens.TokenTable
	Result   *processor.Result
}

// Workflow runs generations for one configuration
type Workflow struct {
	fs       afero.Fs
	in       *bufio.Reader
	out      io.Writer
	renderer style.Renderer
	runner   plugin.Runner
	style    choice.Style
	skipHook bool
	logger   zerolog.Logger
}

// New creates a workflow, filling in defaults for missing options
func New(opts Options) *Workflow {
	if opts.FileSystem == nil {
		opts.FileSystem = afero.NewOsFs()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Renderer == nil {
		opts.Renderer = style.NewTerminalRenderer()
	}
	return &Workflow{
		fs:       opts.FileSystem,
		in:       bufio.NewReader(opts.In),
		out:      opts.Out,
		renderer: opts.Renderer,
		runner:   opts.PluginRunner,
		style:    opts.ChoiceStyle,
		skipHook: opts.SkipHook,
		logger:   logging.GetLogger("workflow"),
	}
}

// Run generates uc.TargetDir from uc.RepositoryDir. On a processing
// failure the returned Outcome still lists what was written.
func (w *Workflow) Run(ctx context.Context, uc *config.UserConfig) (*Outcome, error) {
	done := logging.LogOperationStart(w.logger, "generate")
	defer done()

	for _, line := range uc.Lines() {
		w.logger.Debug().Msg(line)
	}

	vars, err := templates.NewVariableProviderWithFS(w.fs, uc.VariablesFile).Load(uc.RepositoryDir)
	if err != nil {
		return nil, err
	}
	w.logger.Debug().Int("variables", len(vars)).Msg("Loaded template variables")

	runner := w.runner
	if runner == nil {
		runner = plugin.NewExecRunner(uc.PluginTimeout, uc.RepositoryDir)
	}
	if err := plugin.RunPlugins(ctx, runner, vars); err != nil {
		return nil, err
	}

	choiceStyle, values, reviewer, err := w.interaction(uc)
	if err != nil {
		return nil, err
	}

	selected, valueVars, err := choice.Resolve(vars, choiceStyle)
	if err != nil {
		return nil, err
	}

	active := scope.Filter(selected, valueVars)
	w.logger.Debug().
		Int("choices", len(selected)).
		Int("active", len(active)).
		Int("inactive", len(valueVars)-len(active)).
		Msg("Scopes applied")

	userValues, mappings, err := prompt.Collect(values, active)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{Choices: selected, Values: userValues}

	accepted, err := reviewer.Review(mappings)
	if err != nil {
		return nil, err
	}
	if !accepted {
		w.logger.Warn().Msg("User rejected the variable mappings")
		return outcome, nil
	}
	outcome.Accepted = true

	expanded := tokens.Expand(active, userValues)
	outcome.Tokens = tokens.Tokenize(expanded)
	for _, p := range outcome.Tokens.Pairs() {
		w.logger.Debug().Str("token", p.Key).Str("value", p.Value).Msg("Token")
	}

	result, err := processor.New(w.fs).Process(processor.Options{
		TemplateFilesDir: uc.TemplateFilesDir,
		TargetDir:        uc.TargetDir,
		Ignores:          uc.Ignores,
		Choices:          selected.Values(),
	}, outcome.Tokens)
	outcome.Result = result
	if err != nil {
		return outcome, err
	}

	if !w.skipHook && uc.ShellHook != nil {
		if err := uc.ShellHook.Run(ctx, uc.TargetDir); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}

// interaction picks how choices, values and the review are obtained
func (w *Workflow) interaction(uc *config.UserConfig) (choice.Style, prompt.ValueSource, prompt.Reviewer, error) {
	if uc.AnswersFile != "" {
		a, err := answers.Load(w.fs, uc.AnswersFile)
		if err != nil {
			return nil, nil, nil, err
		}
		w.logger.Debug().Strs("answers", a.Names()).Msg("Using answers file")

		s := w.style
		if s == nil {
			s = choice.NewAnswersStyle(a)
		}
		return s, prompt.NewAnswers(a), prompt.AcceptAll{}, nil
	}

	s := w.style
	if s == nil {
		switch uc.MenuStyle {
		case choice.StyleSelection:
			s = choice.NewSelectionStyle()
		default:
			s = choice.NewNumberedStyle(w.in, w.out)
		}
	}

	var reviewer prompt.Reviewer = prompt.AcceptAll{}
	if uc.Review {
		reviewer = prompt.NewConsoleReviewer(w.in, w.out, w.renderer)
	}
	return s, prompt.NewConsole(w.in, w.out), reviewer, nil
}
