package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/npgrosser/houston/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for houston
	EnvConfigDir = "HOUSTON_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for houston
	EnvStateDir = "HOUSTON_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the houston directories
const (
	// AppDirName is the directory name used below the XDG base directories
	AppDirName = "houston"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.yml"

	// TOMLConfigFileName is the optional TOML variant of the configuration file
	TOMLConfigFileName = "config.toml"

	// EnvFileName is the name of the dotenv file next to the configuration
	EnvFileName = ".env"

	// ContextExt is the extension of context files
	ContextExt = ".ctxt"

	// DefaultContextName is the context appended to every generation when present
	DefaultContextName = "default"

	// LogFileName is the name of the log file
	LogFileName = "houston.log"
)

// Paths provides the locations houston works with
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	TOMLConfigFilePath() string
	EnvFilePath() string
	ContextPath(name string) string
	DefaultContextPath() string
	LogFilePath() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New creates a Paths instance, honoring the HOUSTON_* overrides before
// falling back to the XDG base directories.
func New() (Paths, error) {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	var err error
	if p.configDir, err = filepath.Abs(p.configDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for config directory")
	}
	if p.stateDir, err = filepath.Abs(p.stateDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for state directory")
	}

	return p, nil
}

// ConfigDir returns the houston config directory
func (p *paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the houston state directory
func (p *paths) StateDir() string {
	return p.stateDir
}

// ConfigFilePath returns the path of config.yml
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// TOMLConfigFilePath returns the path of config.toml
func (p *paths) TOMLConfigFilePath() string {
	return filepath.Join(p.configDir, TOMLConfigFileName)
}

// EnvFilePath returns the path of the .env file
func (p *paths) EnvFilePath() string {
	return filepath.Join(p.configDir, EnvFileName)
}

// ContextPath returns the path of the context file called name
func (p *paths) ContextPath(name string) string {
	return filepath.Join(p.configDir, name+ContextExt)
}

// DefaultContextPath returns the path of the default context file
func (p *paths) DefaultContextPath() string {
	return p.ContextPath(DefaultContextName)
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// ~user is left alone
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// IsContextFile reports whether name carries the context extension
func IsContextFile(name string) bool {
	return strings.HasSuffix(name, ContextExt) && len(name) > len(ContextExt)
}
