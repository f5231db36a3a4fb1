package runner

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/logging"
	"github.com/npgrosser/houston/pkg/tmpfile"
	"github.com/rs/zerolog"
)

// LineSink receives the lines a child process writes to stdout, without
// their line terminators, in emission order.
type LineSink func(line string)

// ScriptRunner runs scripts. Implementations are used by the template
// evaluator and can be replaced with fakes in tests.
type ScriptRunner interface {
	// RunScript runs script with args. When sink is nil the child's
	// stdout is inherited.
	RunScript(script string, args []string, sink LineSink) error

	// RunScriptAndCapture runs script with args and returns its stdout,
	// each line followed by "\n".
	RunScriptAndCapture(script string, args []string) (string, error)
}

// Options configures a ShellRunner
type Options struct {
	// Shell is the interpreter executable, e.g. "bash" or "powershell"
	Shell string
	// TempDir is where scripts are staged. Empty means the system temp dir.
	TempDir string
	// Stdin, Stdout and Stderr default to the process' own streams.
	// Stdout is only used when no LineSink is given.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Logger overrides the "runner" component logger when set
	Logger *zerolog.Logger
}

// ShellRunner runs scripts with a fixed interpreter
type ShellRunner struct {
	shell   string
	tempDir string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	logger  zerolog.Logger
}

// New creates a ShellRunner from opts
func New(opts Options) *ShellRunner {
	logger := logging.GetLogger("runner")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	r := &ShellRunner{
		shell:   opts.Shell,
		tempDir: opts.TempDir,
		stdin:   opts.Stdin,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		logger:  logger,
	}
	if r.shell == "" {
		r.shell = DefaultShell()
	}
	if r.stdin == nil {
		r.stdin = os.Stdin
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	return r
}

// NewShellRunner creates a ShellRunner for shell with default streams
func NewShellRunner(shell string) *ShellRunner {
	return New(Options{Shell: shell})
}

// Shell returns the interpreter this runner starts
func (r *ShellRunner) Shell() string {
	return r.shell
}

// DefaultShell returns the interpreter used when none is configured
func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "powershell"
	}
	return "bash"
}

// ScriptSuffix returns the file suffix a script for shell is staged with.
// PowerShell refuses to run files without a .ps1 extension; other
// interpreters get no suffix.
func ScriptSuffix(shell string) string {
	if strings.Contains(strings.ToLower(shell), "powershell") {
		return ".ps1"
	}
	return ""
}

// RunScript stages script into a temporary file and runs it
func (r *ShellRunner) RunScript(script string, args []string, sink LineSink) error {
	f, err := tmpfile.NewIn(r.tempDir, script, ScriptSuffix(r.shell))
	if err != nil {
		return errors.Wrap(err, errors.ErrScriptIO, "failed to stage script")
	}
	defer f.Close()

	cmdArgs := make([]string, 0, len(args)+1)
	cmdArgs = append(cmdArgs, f.Path())
	cmdArgs = append(cmdArgs, args...)

	cmd := exec.Command(r.shell, cmdArgs...)
	cmd.Stdin = r.stdin
	cmd.Stderr = r.stderr

	logging.LogCommand(r.logger, r.shell, cmdArgs)

	if sink == nil {
		cmd.Stdout = r.stdout
		if err := cmd.Start(); err != nil {
			return errors.Wrapf(err, errors.ErrScriptIO, "failed to start %s", r.shell)
		}
		return r.wait(cmd)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, errors.ErrScriptIO, "failed to open stdout pipe")
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, errors.ErrScriptIO, "failed to start %s", r.shell)
	}

	if err := readLines(stdout, sink); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return errors.Wrap(err, errors.ErrScriptIO, "failed to read stdout")
	}

	return r.wait(cmd)
}

// RunScriptAndCapture runs script and collects its stdout
func (r *ShellRunner) RunScriptAndCapture(script string, args []string) (string, error) {
	return Capture(r, script, args)
}

// Capture runs script on r with a sink that accumulates every line
// followed by "\n".
func Capture(r ScriptRunner, script string, args []string) (string, error) {
	var out strings.Builder
	err := r.RunScript(script, args, func(line string) {
		out.WriteString(line)
		out.WriteByte('\n')
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// wait waits for cmd to exit. A non-zero exit status is not an error.
func (r *ShellRunner) wait(cmd *exec.Cmd) error {
	err := cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		r.logger.Debug().
			Str("shell", r.shell).
			Int("exitCode", exitErr.ExitCode()).
			Msg("Script exited with non-zero status")
		return nil
	}

	return errors.Wrapf(err, errors.ErrScriptIO, "failed waiting for %s", r.shell)
}

// errInvalidUTF8 is returned for output lines that are not valid UTF-8
var errInvalidUTF8 = stderrors.New("stdout line is not valid UTF-8")

// readLines feeds every line of rd to sink. A final line without a
// terminator is delivered as well. Reading stops at the first line that
// is not valid UTF-8.
func readLines(rd io.Reader, sink LineSink) error {
	br := bufio.NewReader(rd)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if !utf8.ValidString(line) {
				return errInvalidUTF8
			}
			sink(trimLineEnding(line))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
