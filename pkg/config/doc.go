// Package config loads the houston configuration.
//
// Layers are merged from lowest to highest precedence:
//
//  1. embedded defaults (embedded/defaults.yml)
//  2. config.yml, then config.toml, in the config directory
//  3. the .env file in the config directory (never overrides the real environment)
//  4. HOUSTON_* environment variables
//  5. explicit overrides, usually command line flags
//
// Load returns the merged Config as written. Resolve fills in the system
// defaults and fails when something required for generation is missing.
package config
