package hu

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/npgrosser/houston/pkg/config"
	"github.com/npgrosser/houston/pkg/contexts"
	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/generator"
	"github.com/npgrosser/houston/pkg/logging"
	"github.com/npgrosser/houston/pkg/paths"
	"github.com/npgrosser/houston/pkg/runner"
	"github.com/npgrosser/houston/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	force    bool
	dry      bool
	model    string
	contexts []string
}

// runMode picks the run mode from the flags, falling back to the configured default
func (f *generateFlags) runMode(configured config.RunMode) (config.RunMode, bool) {
	switch {
	case f.force:
		return config.RunModeForce, f.dry
	case f.dry:
		return config.RunModeDry, false
	}
	return configured, false
}

func runGenerate(cmd *cobra.Command, d *deps, g *globalFlags, f *generateFlags, args []string) error {
	logger := logging.GetLogger("cmd.hu")
	out := cmd.OutOrStdout()
	format := d.outputFormat(out)
	printer := ui.NewPrinter(out, format)

	p, err := paths.New()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrInitPaths)
	}

	overrides := g.overrides()
	if f.model != "" {
		overrides["openAi.model"] = f.model
	}
	cfg, err := config.Load(p, overrides)
	if err != nil {
		return err
	}

	mode, conflict := f.runMode(cfg.DefaultRunMode)
	if conflict {
		logger.Warn().Msg(MsgForceAndDry)
		printer.Warning(MsgForceAndDry)
	}

	resolved, err := cfg.Resolve()
	if err != nil {
		return err
	}

	instruction := strings.TrimSpace(strings.Join(args, " "))
	if instruction == "" {
		instruction = MsgDefaultInstruct
	}

	store := contexts.NewStore(p)
	calls := make([]contexts.Call, 0, len(f.contexts))
	for _, c := range f.contexts {
		calls = append(calls, contexts.ParseCall(c))
	}
	calls = store.WithDefault(calls)

	logger.Debug().
		Str("mode", string(mode)).
		Str("shell", resolved.DefaultShell).
		Str("context_shell", resolved.DefaultContextShell).
		Str("model", resolved.OpenAI.Model).
		Int("contexts", len(calls)).
		Msg("Generating script")

	contextRunner := d.newRunner(runner.Options{
		Shell:  resolved.DefaultContextShell,
		Stderr: cmd.ErrOrStderr(),
	})
	evaluated, err := store.EvaluateAll(calls, contextRunner)
	if err != nil {
		return errors.Wrap(err, errors.ErrContextEval, MsgErrContexts)
	}

	spec := generator.ScriptSpecification{
		Lang:         resolved.DefaultShell,
		Instruction:  instruction,
		Requirements: append([]string{fmt.Sprintf(MsgOSRequirement, runtime.GOOS)}, evaluated...),
	}

	if g.verbosity > 0 {
		printer.Muted("Context calls: %v", calls)
		printer.Muted(MsgPromptHeader)
		printer.Muted("%s", generator.NewChatPrompt(spec))
	}

	script, err := generate(cmd, d, printer, resolved, spec)
	if err != nil {
		return err
	}

	renderer := ui.NewScriptRenderer(format)
	run := false
	switch mode {
	case config.RunModeAsk:
		_, _ = fmt.Fprint(out, renderer.Render(script, resolved.DefaultShell))
		run, err = ui.Confirm(cmd.InOrStdin(), out, MsgConfirmRun)
		if err != nil {
			return err
		}
	case config.RunModeForce:
		run = true
	case config.RunModeDry:
		_, _ = fmt.Fprint(out, renderer.Render(script, resolved.DefaultShell))
	default:
		return errors.Newf(errors.ErrConfigValid, MsgErrUnknownMode, mode)
	}

	if !run {
		if mode == config.RunModeAsk {
			printer.Info(MsgDeclined)
		}
		return nil
	}

	printer.Info(MsgRunning)
	scriptRunner := d.newRunner(runner.Options{
		Shell:  resolved.DefaultShell,
		Stdin:  cmd.InOrStdin(),
		Stdout: out,
		Stderr: cmd.ErrOrStderr(),
	})
	if err := scriptRunner.RunScript(script, nil, nil); err != nil {
		return errors.Wrap(err, errors.ErrScriptIO, MsgErrRunScript)
	}
	return nil
}

// generate calls the generator, showing a spinner on terminals
func generate(cmd *cobra.Command, d *deps, printer *ui.Printer, cfg *config.Config, spec generator.ScriptSpecification) (string, error) {
	gen := d.newGenerator(cfg.OpenAI)

	if printer.Format() != ui.FormatTerminal {
		printer.Info(MsgGenerating)
		return gen.Generate(cmd.Context(), spec)
	}

	spinner, err := pterm.DefaultSpinner.WithWriter(printer.Writer()).WithRemoveWhenDone(true).Start(MsgGenerating)
	if err != nil {
		return gen.Generate(cmd.Context(), spec)
	}

	script, err := gen.Generate(cmd.Context(), spec)
	if err != nil {
		spinner.Fail(MsgGenerateFailed)
		return "", err
	}
	_ = spinner.Stop()
	return script, nil
}
