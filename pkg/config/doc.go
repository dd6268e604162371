// Package config loads the zat application configuration and builds the
// validated configuration of a single run.
//
// Application settings are layered, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file $XDG_CONFIG_HOME/zat/config.toml
//  3. ZAT_ environment variables
//  4. command line overrides
package config
