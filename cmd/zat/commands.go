package zat

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/zat/internal/version"
	"github.com/arthur-debert/zat/pkg/bootstrap"
	"github.com/arthur-debert/zat/pkg/config"
	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/filesystem"
	"github.com/arthur-debert/zat/pkg/logging"
	"github.com/arthur-debert/zat/pkg/remote"
	"github.com/arthur-debert/zat/pkg/style"
	"github.com/arthur-debert/zat/pkg/workflow"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command
type globalFlags struct {
	verbosity  int
	configFile string
	format     string
}

// outputFormat resolves --format against stdout
func (g *globalFlags) outputFormat() (style.Format, error) {
	f, err := style.ParseFormat(g.format)
	if err != nil {
		return style.FormatAuto, errors.Wrap(err, errors.ErrInvalidInput, "Invalid output format.").
			WithRemediation("Use one of: auto, term, text.")
	}
	return f.Resolve(os.Stdout), nil
}

// processFlags are shared by process and process-remote
type processFlags struct {
	targetDir     string
	ignores       []string
	menuStyle     string
	answers       string
	noReview      bool
	noHook        bool
	pluginTimeout time.Duration
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "zat",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newProcessCmd(g))
	rootCmd.AddCommand(newProcessRemoteCmd(g))
	rootCmd.AddCommand(newBootstrapCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func addProcessFlags(cmd *cobra.Command, pf *processFlags) {
	cmd.Flags().StringVarP(&pf.targetDir, "target-dir", "t", "", MsgFlagTargetDir)
	cmd.Flags().StringArrayVarP(&pf.ignores, "ignores", "i", nil, MsgFlagIgnores)
	cmd.Flags().StringVar(&pf.menuStyle, "choice-menu-style", "", MsgFlagMenuStyle)
	cmd.Flags().StringVarP(&pf.answers, "answers", "a", "", MsgFlagAnswers)
	cmd.Flags().BoolVar(&pf.noReview, "no-review", false, MsgFlagNoReview)
	cmd.Flags().BoolVar(&pf.noHook, "no-hook", false, MsgFlagNoHook)
	cmd.Flags().DurationVar(&pf.pluginTimeout, "plugin-timeout", 0, MsgFlagPluginTimeout)
	_ = cmd.MarkFlagRequired("target-dir")
	_ = cmd.RegisterFlagCompletionFunc("choice-menu-style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"numbered", "selection"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// overrides turns command line switches into config overrides
func (pf *processFlags) overrides() map[string]interface{} {
	o := map[string]interface{}{}
	if pf.noReview {
		o["review"] = false
	}
	if pf.pluginTimeout > 0 {
		o["plugin_timeout"] = pf.pluginTimeout.String()
	}
	return o
}

func newProcessCmd(g *globalFlags) *cobra.Command {
	pf := &processFlags{}
	var repositoryDir string

	cmd := &cobra.Command{
		Use:     "process",
		Short:   MsgProcessShort,
		Long:    MsgProcessLong,
		Example: MsgProcessExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, g, pf, repositoryDir)
		},
	}

	cmd.Flags().StringVarP(&repositoryDir, "repository-dir", "r", "", MsgFlagRepositoryDir)
	_ = cmd.MarkFlagRequired("repository-dir")
	_ = cmd.MarkFlagDirname("repository-dir")
	addProcessFlags(cmd, pf)
	return cmd
}

func newProcessRemoteCmd(g *globalFlags) *cobra.Command {
	pf := &processFlags{}
	var repositoryURL string

	cmd := &cobra.Command{
		Use:     "process-remote",
		Short:   MsgProcessRemoteShort,
		Long:    MsgProcessRemoteLong,
		Example: MsgProcessRemoteExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var progress io.Writer
			if g.verbosity > 0 {
				progress = cmd.ErrOrStderr()
			}

			checkout, err := remote.Clone(cmd.Context(), repositoryURL, remote.CloneOptions{Progress: progress})
			if err != nil {
				return err
			}
			defer checkout.Cleanup()

			return runProcess(cmd, g, pf, checkout.Dir)
		},
	}

	cmd.Flags().StringVarP(&repositoryURL, "repository-url", "u", "", MsgFlagRepositoryURL)
	_ = cmd.MarkFlagRequired("repository-url")
	addProcessFlags(cmd, pf)
	return cmd
}

// runProcess generates pf.targetDir from repositoryDir and reports what
// was written
func runProcess(cmd *cobra.Command, g *globalFlags, pf *processFlags, repositoryDir string) error {
	logger := logging.GetLogger("cmd.process")

	cfg, err := config.Load(config.LoadOptions{File: g.configFile, Overrides: pf.overrides()})
	if err != nil {
		return err
	}

	fs := filesystem.NewOS()
	uc, err := config.NewUserConfig(fs, cfg, config.Args{
		RepositoryDir: repositoryDir,
		TargetDir:     pf.targetDir,
		Ignores:       pf.ignores,
		MenuStyle:     pf.menuStyle,
		AnswersFile:   pf.answers,
	})
	if err != nil {
		return err
	}
	logger.Info().
		Str("repository", uc.RepositoryDir).
		Str("target", uc.TargetDir).
		Msg("Processing templates")

	format, err := g.outputFormat()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderer := style.RendererFor(format)

	outcome, err := workflow.New(workflow.Options{
		FileSystem: fs,
		In:         cmd.InOrStdin(),
		Out:        out,
		Renderer:   renderer,
		SkipHook:   pf.noHook,
	}).Run(cmd.Context(), uc)

	if outcome != nil && outcome.Result != nil {
		fmt.Fprintln(out, renderer.RenderSummary(style.Summary{
			Target:      uc.TargetDir,
			Directories: outcome.Result.Directories,
			Files:       outcome.Result.Files,
		}))
	}
	if err != nil {
		return err
	}

	if !outcome.Accepted {
		fmt.Fprintln(out, renderer.RenderWarning(MsgRejected))
	}
	return nil
}

func newBootstrapCmd(g *globalFlags) *cobra.Command {
	var repositoryDir string

	cmd := &cobra.Command{
		Use:     "bootstrap",
		Short:   MsgBootstrapShort,
		Long:    MsgBootstrapLong,
		Example: MsgBootstrapExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{File: g.configFile})
			if err != nil {
				return err
			}

			b := bootstrap.New(filesystem.NewOS(), cfg.Files)
			written, err := b.Create(repositoryDir)
			if err != nil {
				return err
			}

			guide, err := b.Guide(repositoryDir)
			if err != nil {
				return err
			}

			format, err := g.outputFormat()
			if err != nil {
				return err
			}
			guideStyle := "notty"
			if format == style.FormatTerminal {
				guideStyle = bootstrap.GuideStyle(os.Stdout)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgBootstrapCreate, repositoryDir, len(written))
			fmt.Fprint(out, bootstrap.RenderGuide(guide, guideStyle, 0))
			return nil
		},
	}

	cmd.Flags().StringVarP(&repositoryDir, "repository-dir", "r", "", MsgFlagBootstrapTarget)
	_ = cmd.MarkFlagRequired("repository-dir")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// RenderError formats err for stderr, styled when stderr is a terminal
func RenderError(err error) string {
	return style.RendererFor(style.DetectFormat(os.Stderr)).RenderError(err)
}
