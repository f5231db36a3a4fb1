package hu

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Generate shell scripts from plain language instructions"
	MsgContextShort       = "Work with context files"
	MsgContextEvalShort   = "Evaluate a context file and print the result"
	MsgContextListShort   = "List available context files"
	MsgExecShort          = "Run a script file through the configured shell"
	MsgConfigShort        = "Inspect the configuration"
	MsgConfigShowShort    = "Print the effective configuration"
	MsgConfigDefaultShort = "Print the default configuration file"
	MsgConfigPathShort    = "Print the configuration locations"
	MsgVersionShort       = "Print version information"
	MsgCompletionShort    = "Generate shell completion script"

	// Status messages
	MsgGenerating       = "Generating script..."
	MsgGenerated        = "Script generated"
	MsgGenerateFailed   = "Script generation failed"
	MsgConfirmRun       = "Do you want to run this script?"
	MsgRunning          = "Running script..."
	MsgDeclined         = "Ok, see you later!"
	MsgNoContexts       = "No context files found in %s"
	MsgPromptHeader     = "=== Prompt ==="
	MsgForceAndDry      = "--force and --dry are both set, --dry will be ignored"
	MsgDefaultInstruct  = "print Hello World"
	MsgOSRequirement    = "the script is meant to be run on a %s machine"
	MsgVersionFormat    = "hu version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigDirFormat  = "config dir:  %s\n"
	MsgConfigFileFormat = "config file: %s\n"
	MsgTOMLFileFormat   = "toml config: %s\n"
	MsgEnvFileFormat    = "env file:    %s\n"
	MsgLogFileFormat    = "log file:    %s\n"

	// Error messages
	MsgErrInitPaths   = "failed to initialize paths"
	MsgErrContexts    = "failed to evaluate contexts"
	MsgErrReadScript  = "failed to read script %s"
	MsgErrRunScript   = "failed to run script"
	MsgErrUnknownMode = "unknown run mode %q"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagForce        = "Run the generated script without asking for confirmation"
	MsgFlagDry          = "Don't run the generated script, just print it"
	MsgFlagShell        = "The shell to use to run the generated script"
	MsgFlagContextShell = "The shell to use for evaluating context files"
	MsgFlagModel        = "The OpenAI model to use"
	MsgFlagContext      = "Context file to use, as name or name:args (repeatable)"
	MsgFlagFormat       = "Output format (yaml, toml)"
	MsgFlagOutput       = "Output style: auto, term or text (default auto)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/context-long.txt
	msgContextLongRaw string
	MsgContextLong    = strings.TrimSpace(msgContextLongRaw)

	//go:embed msgs/context-eval-example.txt
	msgContextEvalExampleRaw string
	MsgContextEvalExample    = strings.TrimRight(msgContextEvalExampleRaw, "\n")

	//go:embed msgs/exec-long.txt
	msgExecLongRaw string
	MsgExecLong    = strings.TrimSpace(msgExecLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
