package adb

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Output(ctx context.Context, binary string, args []string) ([]byte, error)
}

type commandExecutor struct{}

func (commandExecutor) Output(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return output, nil
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps adb CLI interactions with a connected Android device.
type Client struct {
	binary string
	exec   Executor
}

// New constructs an adb client. An empty binary falls back to "adb".
func New(binary string, opts ...Option) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "adb"
	}
	client := &Client{binary: binary, exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// DeviceReady verifies that a device is connected and in the "device" state.
func (c *Client) DeviceReady(ctx context.Context) error {
	output, err := c.exec.Output(ctx, c.binary, []string{"get-state"})
	if err != nil {
		return fmt.Errorf("adb get-state: %w", err)
	}
	state := strings.TrimSpace(string(output))
	if state != "device" {
		return fmt.Errorf("adb device not ready: state %q", state)
	}
	return nil
}

// RemoteDirExists verifies the given directory exists on the device.
func (c *Client) RemoteDirExists(ctx context.Context, dir string) error {
	script := fmt.Sprintf("[ -d %s ] && echo exists", shellQuote(dir))
	output, err := c.exec.Output(ctx, c.binary, []string{"shell", script})
	if err != nil || !strings.Contains(string(output), "exists") {
		return fmt.Errorf("remote directory %s not found on device", dir)
	}
	return nil
}

// ListFiles returns the sorted relative paths of every regular file under
// dir on the device, skipping names matching any exclude glob.
func (c *Client) ListFiles(ctx context.Context, dir string, excludeGlobs []string) ([]string, error) {
	var sb strings.Builder
	sb.WriteString("cd ")
	sb.WriteString(shellQuote(dir))
	sb.WriteString(" && find . -type f")
	for _, glob := range excludeGlobs {
		glob = strings.TrimSpace(glob)
		if glob == "" {
			continue
		}
		sb.WriteString(" -not -name ")
		sb.WriteString(shellQuote(glob))
	}
	sb.WriteString(" -printf '%P\\n'")

	output, err := c.exec.Output(ctx, c.binary, []string{"shell", sb.String()})
	if err != nil {
		return nil, fmt.Errorf("adb list %s: %w", dir, err)
	}

	var files []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	sort.Strings(files)
	return files, nil
}

// Pull copies one remote file to the given local path.
func (c *Client) Pull(ctx context.Context, remotePath, localPath string) error {
	if _, err := c.exec.Output(ctx, c.binary, []string{"pull", remotePath, localPath}); err != nil {
		return fmt.Errorf("adb pull %s: %w", remotePath, err)
	}
	return nil
}

// shellQuote wraps a value in single quotes for the device shell, escaping
// any embedded single quotes.
func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
