// Package config loads, normalizes, and validates playlink configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs: the music root, the playlist output directory, the output format,
// and logging options.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical output formats, and clear validation errors.
package config
