package zat

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Generate projects from template repositories"
	MsgProcessShort       = "Generate a project from a local template repository"
	MsgProcessRemoteShort = "Generate a project from a remote git template repository"
	MsgBootstrapShort     = "Create a sample template repository"
	MsgVersionShort       = "Print version information"
	MsgCompletionShort    = "Generate shell completion script"

	// Status messages
	MsgRejected        = "Aborting as the variable mappings were rejected. Nothing was written."
	MsgBootstrapCreate = "Created sample repository '%s' with %d files.\n"
	MsgVersionFormat   = "zat version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig          = "Config file (default is $XDG_CONFIG_HOME/zat/config.toml)"
	MsgFlagFormat          = "Output format: auto, term or text"
	MsgFlagRepositoryDir   = "Template repository directory"
	MsgFlagRepositoryURL   = "Git URL of the template repository (http, https, ssh or file)"
	MsgFlagTargetDir       = "Directory to generate the project into; must not exist"
	MsgFlagIgnores         = "Regular expressions of template paths to skip (repeatable)"
	MsgFlagMenuStyle       = "Choice menu style: numbered or selection"
	MsgFlagAnswers         = "Answers file (.json, .toml or .yaml) used instead of prompting"
	MsgFlagNoReview        = "Do not ask to confirm the values before writing"
	MsgFlagNoHook          = "Do not run the repository's shell hook"
	MsgFlagPluginTimeout   = "Maximum time a plugin may run"
	MsgFlagBootstrapTarget = "Directory to create the sample repository in; must not exist"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/process-long.txt
	msgProcessLongRaw string
	MsgProcessLong    = strings.TrimSpace(msgProcessLongRaw)

	//go:embed msgs/process-example.txt
	msgProcessExampleRaw string
	MsgProcessExample    = strings.TrimRight(msgProcessExampleRaw, "\n")

	//go:embed msgs/process-remote-long.txt
	msgProcessRemoteLongRaw string
	MsgProcessRemoteLong    = strings.TrimSpace(msgProcessRemoteLongRaw)

	//go:embed msgs/process-remote-example.txt
	msgProcessRemoteExampleRaw string
	MsgProcessRemoteExample    = strings.TrimRight(msgProcessRemoteExampleRaw, "\n")

	//go:embed msgs/bootstrap-long.txt
	msgBootstrapLongRaw string
	MsgBootstrapLong    = strings.TrimSpace(msgBootstrapLongRaw)

	//go:embed msgs/bootstrap-example.txt
	msgBootstrapExampleRaw string
	MsgBootstrapExample    = strings.TrimRight(msgBootstrapExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
