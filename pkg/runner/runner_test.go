package runner_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/runner"
	"github.com/npgrosser/houston/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, shell string) (*runner.ShellRunner, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	r := runner.New(runner.Options{
		Shell:   shell,
		TempDir: t.TempDir(),
		Stdin:   strings.NewReader(""),
		Stdout:  &stdout,
		Stderr:  &bytes.Buffer{},
	})
	return r, &stdout
}

func TestScriptSuffix(t *testing.T) {
	tests := []struct {
		shell    string
		expected string
	}{
		{"powershell", ".ps1"},
		{"PowerShell", ".ps1"},
		{"C:\\Windows\\System32\\WindowsPowerShell\\v1.0\\powershell.exe", ".ps1"},
		{"/usr/local/bin/POWERSHELL", ".ps1"},
		{"bash", ""},
		{"sh", ""},
		{"zsh", ""},
		{"pwsh", ""},
		{"python3", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			assert.Equal(t, tt.expected, runner.ScriptSuffix(tt.shell))
		})
	}
}

func TestDefaultShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		assert.Equal(t, "powershell", runner.DefaultShell())
	} else {
		assert.Equal(t, "bash", runner.DefaultShell())
	}
}

func TestNew_EmptyShellUsesDefault(t *testing.T) {
	r := runner.New(runner.Options{})
	assert.Equal(t, runner.DefaultShell(), r.Shell())
}

func TestRunScriptAndCapture_WithArgs(t *testing.T) {
	sh := testutil.RequireShell(t)
	r, _ := newTestRunner(t, sh)

	out, err := r.RunScriptAndCapture("echo $1 $2", []string{"hello", "world"})

	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestRunScriptAndCapture_AppendsNewlineToUnterminatedLine(t *testing.T) {
	sh := testutil.RequireShell(t)
	r, _ := newTestRunner(t, sh)

	out, err := r.RunScriptAndCapture("printf 'a\\nb'", nil)

	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestRunScriptAndCapture_NoOutput(t *testing.T) {
	sh := testutil.RequireShell(t)
	r, _ := newTestRunner(t, sh)

	out, err := r.RunScriptAndCapture("", nil)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunScript_SinkReceivesLinesInOrder(t *testing.T) {
	sh := testutil.RequireShell(t)
	r, _ := newTestRunner(t, sh)

	var lines []string
	err := r.RunScript("echo one\necho\nprintf 'three\\r\\n'\necho four", nil, func(line string) {
		lines = append(lines, line)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "", "three", "four"}, lines)
}

func TestRunScript_FirstArgumentIsStagedFile(t *testing.T) {
	sh := testutil.RequireShell(t)
	r, _ := newTestRunner(t, sh)

	out, err := r.RunScriptAndCapture(`echo "$0"; echo "$#"`, []string{"x", "y", "z"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(filepath.Base(lines[0]), "houston-"))
	assert.Equal(t, "3", lines[1])
}

func TestRunScript_DoesNotMutateArgs(t *testing.T) {
	sh := testutil.RequireShell(t)
	r, _ := newTestRunner(t, sh)

	args := make([]string, 2, 10)
	args[0], args[1] = "a", "b"

	_, err := r.RunScriptAndCapture("true", args)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, args)
	assert.Equal(t, "", args[:3][2], "spare capacity of args must not be written")
}

func TestRunScript_NonZeroExitIsNotAnError(t *testing.T) {
	sh := testutil.RequireShell(t)
	r, _ := newTestRunner(t, sh)

	out, err := r.RunScriptAndCapture("echo partial\nexit 3", nil)

	require.NoError(t, err)
	assert.Equal(t, "partial\n", out)
}

func TestRunScript_InvalidUTF8IsAnError(t *testing.T) {
	sh := testutil.RequireShell(t)
	r, _ := newTestRunner(t, sh)

	var lines []string
	err := r.RunScript(`printf 'ok\n\377\376bad\n'`, nil, func(line string) {
		lines = append(lines, line)
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptIO))
	assert.Equal(t, []string{"ok"}, lines)

	out, err := r.RunScriptAndCapture(`printf '\377'`, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptIO))
	assert.Empty(t, out)
}

func TestRunScript_MultiByteUTF8Passes(t *testing.T) {
	sh := testutil.RequireShell(t)
	r, _ := newTestRunner(t, sh)

	out, err := r.RunScriptAndCapture("echo 'grüße ✓'", nil)

	require.NoError(t, err)
	assert.Equal(t, "grüße ✓\n", out)
}

// captureLog routes the global logger into a buffer for the test
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	return &buf
}

func TestRunScript_LogsSpawnAndExitStatus(t *testing.T) {
	sh := testutil.RequireShell(t)
	buf := captureLog(t)
	r, _ := newTestRunner(t, sh)

	_, err := r.RunScriptAndCapture("exit 4", []string{"arg1"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"component":"runner"`)
	assert.Contains(t, out, "Spawning process")
	assert.Contains(t, out, `"arg1"`)
	assert.Contains(t, out, `"exitCode":4`)
}

func TestNew_LoggerOption(t *testing.T) {
	sh := testutil.RequireShell(t)
	global := captureLog(t)
	var own bytes.Buffer
	logger := zerolog.New(&own).With().Str("component", "custom").Logger()

	r := runner.New(runner.Options{Shell: sh, TempDir: t.TempDir(), Stderr: &bytes.Buffer{}, Logger: &logger})
	_, err := r.RunScriptAndCapture("echo hi", nil)
	require.NoError(t, err)

	assert.Contains(t, own.String(), "Spawning process")
	assert.NotContains(t, global.String(), "Spawning process")
}

func TestRunScript_InheritedStdoutWithoutSink(t *testing.T) {
	sh := testutil.RequireShell(t)
	r, stdout := newTestRunner(t, sh)

	err := r.RunScript("echo inherited", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "inherited\n", stdout.String())
}

func TestRunScript_SpawnFailure(t *testing.T) {
	r, _ := newTestRunner(t, "houston-no-such-interpreter")

	err := r.RunScript("echo hi", nil, func(string) {})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptIO))
}

func TestRunScript_StagingFailure(t *testing.T) {
	r := runner.New(runner.Options{
		Shell:   "sh",
		TempDir: filepath.Join(t.TempDir(), "missing"),
	})

	_, err := r.RunScriptAndCapture("echo hi", nil)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptIO))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileCreate))
}

func TestRunScript_StagedFileRemovedAfterRun(t *testing.T) {
	sh := testutil.RequireShell(t)
	dir := t.TempDir()
	r := runner.New(runner.Options{Shell: sh, TempDir: dir, Stderr: &bytes.Buffer{}})

	out, err := r.RunScriptAndCapture(`echo "$0"`, nil)
	require.NoError(t, err)

	staged := strings.TrimSpace(out)
	_, statErr := os.Stat(staged)
	assert.True(t, os.IsNotExist(statErr), "staged script %s should be removed", staged)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunScript_StagedFileRemovedAfterSpawnFailure(t *testing.T) {
	dir := t.TempDir()
	r := runner.New(runner.Options{Shell: "houston-no-such-interpreter", TempDir: dir})

	err := r.RunScript("echo hi", nil, nil)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunScript_PowerShellNamedInterpreterGetsPs1(t *testing.T) {
	testutil.RequireShell(t)
	binDir := t.TempDir()
	fake := filepath.Join(binDir, "Fake-PowerShell")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\necho \"$1\"\n"), 0755))

	r, _ := newTestRunner(t, fake)
	out, err := r.RunScriptAndCapture("Write-Host hi", nil)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), ".ps1"))
}

func TestCapture_UsesRunnerSink(t *testing.T) {
	fake := sinkRunner{lines: []string{"a", "b"}}

	out, err := runner.Capture(fake, "ignored", nil)

	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

type sinkRunner struct {
	lines []string
}

func (s sinkRunner) RunScript(script string, args []string, sink runner.LineSink) error {
	for _, l := range s.lines {
		sink(l)
	}
	return nil
}

func (s sinkRunner) RunScriptAndCapture(script string, args []string) (string, error) {
	return runner.Capture(s, script, args)
}
