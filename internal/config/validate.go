package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMerge(); err != nil {
		return err
	}
	if err := c.validateSync(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.CameraDir) == "" {
		return errors.New("paths.camera_dir must be set")
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateMerge() error {
	if c.Merge.TargetSeconds <= 0 {
		return fmt.Errorf("merge.target_seconds must be positive, got %v", c.Merge.TargetSeconds)
	}
	if len(c.Merge.Extensions) == 0 {
		return errors.New("merge.extensions must list at least one extension")
	}
	return nil
}

func (c *Config) validateSync() error {
	if !strings.HasPrefix(c.Sync.RemoteDir, "/") {
		return fmt.Errorf("sync.remote_dir must be an absolute device path, got %q", c.Sync.RemoteDir)
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.IntervalMinutes <= 0 {
		return fmt.Errorf("watch.interval_minutes must be positive, got %d", c.Watch.IntervalMinutes)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
