package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenConfigMissing(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected missing config, got exists=true for %s", path)
	}
	if cfg.Merge.TargetSeconds != defaultTargetSeconds {
		t.Fatalf("unexpected target: %v", cfg.Merge.TargetSeconds)
	}
	if cfg.Sync.RemoteDir != defaultRemoteDir {
		t.Fatalf("unexpected remote dir: %s", cfg.Sync.RemoteDir)
	}
	if cfg.Engine.FFmpegBinary != "ffmpeg" || cfg.Engine.FFprobeBinary != "ffprobe" {
		t.Fatalf("unexpected engine binaries: %+v", cfg.Engine)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[paths]
camera_dir = "` + dir + `/cam"
output_dir = "` + dir + `/out"
state_dir = "` + dir + `/state"

[merge]
target_seconds = 45
extensions = ["MP4", "mov"]

[sync]
remote_dir = "/sdcard/DCIM/Camera"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Merge.TargetSeconds != 45 {
		t.Fatalf("unexpected target: %v", cfg.Merge.TargetSeconds)
	}
	if len(cfg.Merge.Extensions) != 2 || cfg.Merge.Extensions[0] != ".mp4" || cfg.Merge.Extensions[1] != ".mov" {
		t.Fatalf("extensions not normalized: %v", cfg.Merge.Extensions)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero target", func(c *Config) { c.Merge.TargetSeconds = 0 }, "target_seconds"},
		{"relative remote", func(c *Config) { c.Sync.RemoteDir = "DCIM/Camera" }, "remote_dir"},
		{"bad interval", func(c *Config) { c.Watch.IntervalMinutes = -1 }, "interval_minutes"},
		{"bad format", func(c *Config) { c.Logging.Format = "yaml" }, "logging.format"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tc := range cases {
		cfg := Default()
		if err := cfg.normalize(); err != nil {
			t.Fatalf("%s: normalize: %v", tc.name, err)
		}
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation failure", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestExpandPathResolvesHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := ExpandPath("~/Pictures/Camera")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "Pictures", "Camera") {
		t.Fatalf("unexpected expansion: %s", got)
	}
}

func TestEnsureDirectoriesCreatesOutputAndState(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.OutputDir = filepath.Join(dir, "out")
	cfg.Paths.StateDir = filepath.Join(dir, "state")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, p := range []string{cfg.Paths.OutputDir, cfg.Paths.StateDir} {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory at %s (err=%v)", p, err)
		}
	}
}
