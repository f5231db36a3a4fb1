package config

import (
	"bytes"
	"strings"

	"github.com/npgrosser/houston/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFileContent returns the default configuration with every value
// commented out, ready to be saved as config.yml
func DefaultFileContent() string {
	return commentOutConfigValues(string(defaultConfig))
}

// commentOutConfigValues comments out every non-blank, non-comment line
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

// Marshal renders cfg as "yaml" or "toml". API keys stay obfuscated.
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as yaml")
		}
		return buf.Bytes(), nil
	case "toml":
		out, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as toml")
		}
		return out, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unsupported format %q (expected yaml or toml)", format)
}
