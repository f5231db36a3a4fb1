package hu

import (
	"fmt"

	"github.com/npgrosser/houston/pkg/config"
	"github.com/npgrosser/houston/pkg/contexts"
	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/paths"
	"github.com/npgrosser/houston/pkg/runner"
	"github.com/npgrosser/houston/pkg/ui"
	"github.com/spf13/cobra"
)

func newContextCmd(d *deps, g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: MsgContextShort,
		Long:  MsgContextLong,
	}

	cmd.AddCommand(newContextEvalCmd(d, g))
	cmd.AddCommand(newContextListCmd(d))

	return cmd
}

func newContextEvalCmd(d *deps, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "eval <name[:args]>",
		Short:             MsgContextEvalShort,
		Example:           MsgContextEvalExample,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: contextNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrInitPaths)
			}
			cfg, err := config.Load(p, g.overrides())
			if err != nil {
				return err
			}

			r := d.newRunner(runner.Options{
				Shell:  cfg.ContextShell(),
				Stderr: cmd.ErrOrStderr(),
			})
			result, err := contexts.NewStore(p).EvaluateWith(contexts.ParseCall(args[0]), r)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newContextListCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgContextListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrInitPaths)
			}

			store := contexts.NewStore(p)
			names, err := store.List()
			if err != nil {
				return err
			}

			printer := ui.NewPrinter(cmd.OutOrStdout(), d.outputFormat(cmd.OutOrStdout()))
			if len(names) == 0 {
				printer.Muted(MsgNoContexts, store.Dir)
				return nil
			}
			for _, name := range names {
				printer.Plain(name)
			}
			return nil
		},
	}
}

// contextNamesCompletion provides shell completion for context names
func contextNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	p, err := paths.New()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := contexts.NewStore(p).List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
