// Package logging builds the slog loggers used across camkit and provides
// shared attribute helpers so log fields stay consistent between components.
package logging
