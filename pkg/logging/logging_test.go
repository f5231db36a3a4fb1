package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreGlobals puts the global logger and level back after a test
func restoreGlobals(t *testing.T) {
	t.Helper()
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Level(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetup_WritesConsoleAndFile(t *testing.T) {
	restoreGlobals(t)
	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "nested", "houston.log")

	require.NoError(t, Setup(Options{Verbosity: 1, Console: &console, LogFile: logFile}))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logger := GetLogger("template")
	logger.Info().Str("command", "date").Msg("Evaluating marker")
	logger.Debug().Msg("hidden at info level")

	assert.Contains(t, console.String(), "Evaluating marker")
	assert.NotContains(t, console.String(), "hidden at info level")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"template"`)
	assert.Contains(t, string(data), `"command":"date"`)
}

func TestSetup_LogFileUnavailable(t *testing.T) {
	restoreGlobals(t)
	var console bytes.Buffer
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := Setup(Options{Console: &console, LogFile: filepath.Join(blocker, "houston.log")})
	assert.Error(t, err)

	log.Warn().Msg("still logging")
	assert.Contains(t, console.String(), "still logging")
}

func TestSetupLogger_UsesStateDir(t *testing.T) {
	restoreGlobals(t)
	stateDir := t.TempDir()
	t.Setenv("HOUSTON_STATE_DIR", stateDir)

	SetupLogger(2)

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	_, err := os.Stat(filepath.Join(stateDir, "houston.log"))
	assert.NoError(t, err)
}

func TestLogCommand(t *testing.T) {
	restoreGlobals(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer

	LogCommand(zerolog.New(&buf), "bash", []string{"/tmp/houston-123.sh", "arg1"})

	out := buf.String()
	assert.Contains(t, out, `"shell":"bash"`)
	assert.Contains(t, out, `"args":["/tmp/houston-123.sh","arg1"]`)
	assert.Contains(t, out, "Spawning process")
}

func TestLogOperationStart(t *testing.T) {
	restoreGlobals(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer

	done := LogOperationStart(zerolog.New(&buf), "evaluate")
	done()

	out := buf.String()
	assert.Contains(t, out, `"op":"evaluate"`)
	assert.Contains(t, out, "Started")
	assert.Contains(t, out, "Finished")
	assert.Contains(t, out, `"took"`)
}
