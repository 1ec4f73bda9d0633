// Package config loads treedrag configuration from TOML files and the
// environment.
//
// Configuration is layered: built-in defaults, then the global file
// (~/.config/treedrag/config.toml), then the project file (treedrag.toml),
// then environment overrides. A later layer only replaces keys it defines.
package config
