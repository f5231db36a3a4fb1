package hu

import (
	"fmt"
	"os"

	"github.com/npgrosser/houston/pkg/config"
	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/logging"
	"github.com/npgrosser/houston/pkg/paths"
	"github.com/npgrosser/houston/pkg/runner"
	"github.com/spf13/cobra"
)

func newExecCmd(d *deps, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <file> [args...]",
		Short: MsgExecShort,
		Long:  MsgExecLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.exec")

			script, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadScript, args[0])
			}
			logger.Debug().Str("file", args[0]).Int("bytes", len(script)).Msg("Read script file")

			p, err := paths.New()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrInitPaths)
			}
			cfg, err := config.Load(p, g.overrides())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := d.newRunner(runner.Options{
				Shell:  cfg.Shell(),
				Stdin:  cmd.InOrStdin(),
				Stderr: cmd.ErrOrStderr(),
			})
			err = r.RunScript(string(script), args[1:], func(line string) {
				_, _ = fmt.Fprintln(out, line)
			})
			if err != nil {
				return errors.Wrap(err, errors.ErrScriptIO, MsgErrRunScript)
			}
			return nil
		},
	}
}
