// Package paths resolves the directories houston reads and writes.
//
// # Environment Variables
//
//   - HOUSTON_CONFIG_DIR: override the config directory (default: $XDG_CONFIG_HOME/houston)
//   - HOUSTON_STATE_DIR: override the state directory (default: $XDG_STATE_HOME/houston)
//
// # Layout
//
// The config directory holds the user configuration and the context files:
//
//	~/.config/houston/
//	├── config.yml (or config.toml)
//	├── .env
//	├── default.ctxt
//	└── git.ctxt
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    return err
//	}
//	p.ConfigFilePath()   // ~/.config/houston/config.yml
//	p.ContextPath("git") // ~/.config/houston/git.ctxt
package paths
