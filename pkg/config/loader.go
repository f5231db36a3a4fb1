package config

import (
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/logging"
	"github.com/npgrosser/houston/pkg/paths"
)

// EnvPrefix is shared by every environment variable houston reads
const EnvPrefix = "HOUSTON_"

// envKeys maps environment variables to configuration keys
var envKeys = map[string]string{
	"HOUSTON_DEFAULT_SHELL":         "defaultShell",
	"HOUSTON_DEFAULT_CONTEXT_SHELL": "defaultContextShell",
	"HOUSTON_DEFAULT_RUN_MODE":      "defaultRunMode",
	"HOUSTON_OPENAI_API_KEY":        "openAi.apiKey",
	"HOUSTON_OPENAI_MODEL":          "openAi.model",
	"HOUSTON_OPENAI_MAX_TOKENS":     "openAi.maxTokens",
	"HOUSTON_OPENAI_BASE_URL":       "openAi.baseUrl",
}

// EnvKey returns the configuration key an environment variable sets
func EnvKey(name string) (string, bool) {
	key, ok := envKeys[name]
	return key, ok
}

// Load reads the configuration for the directories in p.
// overrides are applied last, keyed like the config file
// (for example "openAi.model").
func Load(p paths.Paths, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}

	// 2. User config files
	for _, cf := range []struct {
		path   string
		parser koanf.Parser
	}{
		{p.ConfigFilePath(), yaml.Parser()},
		{p.TOMLConfigFilePath(), toml.Parser()},
	} {
		if _, err := os.Stat(cf.path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config file %s", cf.path).
				WithDetail("path", cf.path)
		}
		if err := k.Load(file.Provider(cf.path), cf.parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config file %s", cf.path).
				WithDetail("path", cf.path)
		}
		logger.Debug().Str("path", cf.path).Msg("Loaded config file")
	}

	// 3. .env next to the config, without overriding the real environment
	if err := loadDotEnv(p.EnvFilePath()); err != nil {
		return nil, err
	}

	// 4. HOUSTON_* variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply config overrides")
		}
	}

	return unmarshal(k)
}

// LoadDefaults returns the embedded defaults only
func LoadDefaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path).WithDetail("path", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", path).WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loaded .env file")
	return nil
}
