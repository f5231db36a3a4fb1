package hu

import (
	"github.com/npgrosser/houston/internal/version"
	"github.com/npgrosser/houston/pkg/logging"
	"github.com/npgrosser/houston/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command
type globalFlags struct {
	verbosity    int
	shell        string
	contextShell string
	output       string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultDeps())
}

func newRootCmd(d *deps) *cobra.Command {
	initTemplateFormatting()

	g := &globalFlags{}
	gen := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:     "hu [flags] <instruction...>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			format, err := g.outputFormat(d.format)
			if err != nil {
				return err
			}
			d.format = format
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, d, g, gen, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&g.shell, "shell", "s", "", MsgFlagShell)
	rootCmd.PersistentFlags().StringVar(&g.contextShell, "context-shell", "", MsgFlagContextShell)
	rootCmd.PersistentFlags().StringVar(&g.output, "output", "", MsgFlagOutput)
	_ = rootCmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions([]string{"auto", "term", "text"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.Flags().BoolVarP(&gen.force, "force", "f", false, MsgFlagForce)
	rootCmd.Flags().BoolVarP(&gen.dry, "dry", "d", false, MsgFlagDry)
	rootCmd.Flags().StringVarP(&gen.model, "model", "m", "", MsgFlagModel)
	rootCmd.Flags().StringArrayVarP(&gen.contexts, "context", "c", nil, MsgFlagContext)
	_ = rootCmd.RegisterFlagCompletionFunc("context", contextNamesCompletion)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newContextCmd(d, g))
	rootCmd.AddCommand(newExecCmd(d, g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	installTopics(rootCmd, d)

	return rootCmd
}

// outputFormat returns the format named by --output, or fallback when unset
func (g *globalFlags) outputFormat(fallback ui.Format) (ui.Format, error) {
	if g.output == "" {
		return fallback, nil
	}
	return ui.ParseFormat(g.output)
}

// overrides maps the set config flags to configuration keys
func (g *globalFlags) overrides() map[string]interface{} {
	out := map[string]interface{}{}
	if g.shell != "" {
		out["defaultShell"] = g.shell
	}
	if g.contextShell != "" {
		out["defaultContextShell"] = g.contextShell
	}
	return out
}
