package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/runner"
)

// EnvOpenAIAPIKey is read when no API key is configured
const EnvOpenAIAPIKey = "OPENAI_API_KEY"

// RunMode decides what happens with a generated script
type RunMode string

const (
	// RunModeAsk shows the script and asks before running it
	RunModeAsk RunMode = "ask"
	// RunModeForce runs the script without asking
	RunModeForce RunMode = "force"
	// RunModeDry only shows the script
	RunModeDry RunMode = "dry"
)

// ParseRunMode parses a run mode name, case-insensitively.
// The empty string parses as RunModeAsk.
func ParseRunMode(s string) (RunMode, error) {
	switch RunMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", RunModeAsk:
		return RunModeAsk, nil
	case RunModeForce:
		return RunModeForce, nil
	case RunModeDry:
		return RunModeDry, nil
	}
	return "", errors.Newf(errors.ErrConfigValid, "invalid run mode %q (expected ask, force or dry)", s).
		WithDetail("value", s)
}

// UnmarshalText lets the decoder validate run modes
func (m *RunMode) UnmarshalText(text []byte) error {
	parsed, err := ParseRunMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// APIKey is a secret that never prints in clear
type APIKey string

// String shows the first 6 characters followed by ****
func (k APIKey) String() string {
	if k == "" {
		return ""
	}
	if len(k) <= 6 {
		return "****"
	}
	return string(k[:6]) + "****"
}

// GoString keeps %#v from leaking the key
func (k APIKey) GoString() string {
	return fmt.Sprintf("config.APIKey(%q)", k.String())
}

// MarshalText renders the obfuscated key
func (k APIKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Reveal returns the key in clear
func (k APIKey) Reveal() string {
	return string(k)
}

// OpenAIConfig configures the script generator
type OpenAIConfig struct {
	APIKey    APIKey `koanf:"apiKey" yaml:"apiKey" toml:"apiKey"`
	Model     string `koanf:"model" yaml:"model" toml:"model"`
	MaxTokens int    `koanf:"maxTokens" yaml:"maxTokens" toml:"maxTokens"`
	BaseURL   string `koanf:"baseUrl" yaml:"baseUrl,omitempty" toml:"baseUrl,omitempty"`
}

// Config is the houston configuration
type Config struct {
	DefaultShell        string       `koanf:"defaultShell" yaml:"defaultShell" toml:"defaultShell"`
	DefaultContextShell string       `koanf:"defaultContextShell" yaml:"defaultContextShell" toml:"defaultContextShell"`
	DefaultRunMode      RunMode      `koanf:"defaultRunMode" yaml:"defaultRunMode" toml:"defaultRunMode"`
	OpenAI              OpenAIConfig `koanf:"openAi" yaml:"openAi" toml:"openAi"`
}

// Shell returns the shell for generated scripts
func (c *Config) Shell() string {
	if c.DefaultShell != "" {
		return c.DefaultShell
	}
	return runner.DefaultShell()
}

// ContextShell returns the shell for context commands
func (c *Config) ContextShell() string {
	if c.DefaultContextShell != "" {
		return c.DefaultContextShell
	}
	return runner.DefaultShell()
}

// Resolve returns a copy with every optional value filled in. It fails
// with ErrConfigValid when no API key is configured or available through
// OPENAI_API_KEY, or when a value is out of range.
func (c *Config) Resolve() (*Config, error) {
	resolved := *c
	resolved.DefaultShell = c.Shell()
	resolved.DefaultContextShell = c.ContextShell()

	if resolved.DefaultRunMode == "" {
		resolved.DefaultRunMode = RunModeAsk
	}

	if resolved.OpenAI.APIKey == "" {
		resolved.OpenAI.APIKey = APIKey(strings.TrimSpace(os.Getenv(EnvOpenAIAPIKey)))
	}
	if resolved.OpenAI.APIKey == "" {
		return nil, errors.Newf(errors.ErrConfigValid,
			"no OpenAI API key configured: set openAi.apiKey or %s", EnvOpenAIAPIKey)
	}

	if resolved.OpenAI.Model == "" {
		return nil, errors.New(errors.ErrConfigValid, "openAi.model must not be empty")
	}
	if resolved.OpenAI.MaxTokens <= 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "openAi.maxTokens must be positive, got %d", resolved.OpenAI.MaxTokens).
			WithDetail("maxTokens", resolved.OpenAI.MaxTokens)
	}

	return &resolved, nil
}
