// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.taskline/taskline.toml or OS-specific config directory)
// 3. Project config file (taskline.toml or .taskline.toml in the working directory)
// 4. Environment variables (TASKLINE_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.taskline/taskline.toml (preferred)
// - Windows: %APPDATA%\taskline\taskline.toml
// - macOS: ~/Library/Application Support/taskline/taskline.toml
// - Linux/BSD: $XDG_CONFIG_HOME/taskline/taskline.toml or ~/.config/taskline/taskline.toml
package config
