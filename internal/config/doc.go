// Package config loads, normalizes, and validates the camkit TOML
// configuration. Defaults mirror the sample config embedded in the binary.
package config
