package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeTestConfig writes a minimal valid config rooted in a temp directory
// and returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	cameraDir := filepath.Join(base, "camera")
	if err := os.MkdirAll(cameraDir, 0o755); err != nil {
		t.Fatalf("mkdir camera dir: %v", err)
	}
	content := fmt.Sprintf(`[paths]
camera_dir = %q
output_dir = %q
state_dir = %q
`, cameraDir, filepath.Join(base, "daily"), filepath.Join(base, "state"))

	cfgPath := filepath.Join(base, "config.toml")
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
