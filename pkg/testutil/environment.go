package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// Environment is an isolated houston config and state directory
type Environment struct {
	ConfigDir string
	StateDir  string

	t *testing.T
}

// NewEnvironment creates temp config and state directories and points the
// HOUSTON_* variables at them. Variables that would leak configuration
// from the host are cleared for the duration of the test.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
		t:         t,
	}
	for _, dir := range []string{env.ConfigDir, env.StateDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOUSTON_CONFIG_DIR", env.ConfigDir)
	t.Setenv("HOUSTON_STATE_DIR", env.StateDir)
	for _, name := range []string{
		"OPENAI_API_KEY",
		"HOUSTON_DEFAULT_SHELL",
		"HOUSTON_DEFAULT_CONTEXT_SHELL",
		"HOUSTON_DEFAULT_RUN_MODE",
		"HOUSTON_OPENAI_API_KEY",
		"HOUSTON_OPENAI_MODEL",
		"HOUSTON_OPENAI_MAX_TOKENS",
		"HOUSTON_OPENAI_BASE_URL",
	} {
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}

	return env
}

// WriteFile writes content to name inside the config directory
func (e *Environment) WriteFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.ConfigDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteContext writes a <name>.ctxt context file
func (e *Environment) WriteContext(name, content string) string {
	e.t.Helper()
	return e.WriteFile(name+".ctxt", content)
}

// WriteConfig writes config.yml
func (e *Environment) WriteConfig(content string) string {
	e.t.Helper()
	return e.WriteFile("config.yml", content)
}

// RequireShell skips the test unless a POSIX sh is available and returns
// its path.
func RequireShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	path, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not found on PATH")
	}
	return path
}
