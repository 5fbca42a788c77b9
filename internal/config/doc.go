// Package config loads, normalizes, and validates sdhtool configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Cleaning behavior is selected through a
// named preset plus optional per-flag overrides; the CLI may override
// further on top of the loaded values.
package config
