package hu

import (
	"fmt"

	"github.com/npgrosser/houston/pkg/config"
	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/paths"
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
	}

	cmd.AddCommand(newConfigShowCmd(g))
	cmd.AddCommand(newConfigDefaultCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigShowCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrInitPaths)
			}
			cfg, err := config.Load(p, g.overrides())
			if err != nil {
				return err
			}

			out, err := config.Marshal(cfg, format)
			if err != nil {
				return err
			}
			_, _ = cmd.OutOrStdout().Write(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newConfigDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: MsgConfigDefaultShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), config.DefaultFileContent())
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrInitPaths)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgConfigDirFormat, p.ConfigDir())
			_, _ = fmt.Fprintf(out, MsgConfigFileFormat, p.ConfigFilePath())
			_, _ = fmt.Fprintf(out, MsgTOMLFileFormat, p.TOMLConfigFilePath())
			_, _ = fmt.Fprintf(out, MsgEnvFileFormat, p.EnvFilePath())
			_, _ = fmt.Fprintf(out, MsgLogFileFormat, p.LogFilePath())
			return nil
		},
	}
}
