package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) error
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return err
		}
		return fmt.Errorf("%w: %s", err, lastLines(detail, 8))
	}
	return nil
}

// lastLines keeps the tail of a diagnostic; ffmpeg front-loads banners and
// the failure reason sits at the end.
func lastLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= n {
		return text
	}
	return strings.Join(lines[len(lines)-n:], "\n")
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

// Client wraps ffmpeg CLI interactions. Every capability builds a complete
// argument list and runs one synchronous invocation.
type Client struct {
	binary string
	exec   Executor
}

// New constructs an ffmpeg client. An empty binary falls back to "ffmpeg".
func New(binary string, opts ...Option) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	client := &Client{binary: binary, exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) run(ctx context.Context, args []string) error {
	return c.exec.Run(ctx, c.binary, args)
}

func baseArgs() []string {
	return []string{"-hide_banner", "-nostdin", "-y", "-loglevel", "error"}
}

// Concat joins the files listed in the concat-demuxer manifest into output
// by stream copy. Inputs must share codecs and parameters; ffmpeg rejects
// incompatible copy-concats and that error is surfaced verbatim.
func (c *Client) Concat(ctx context.Context, listPath, outputPath string) error {
	if strings.TrimSpace(listPath) == "" || strings.TrimSpace(outputPath) == "" {
		return errors.New("ffmpeg concat: list and output paths required")
	}
	args := append(baseArgs(), "-f", "concat", "-safe", "0", "-i", listPath, "-c", "copy", outputPath)
	if err := c.run(ctx, args); err != nil {
		return fmt.Errorf("ffmpeg concat: %w", err)
	}
	return nil
}

// Slice extracts [start, end) seconds from input into output by stream copy.
func (c *Client) Slice(ctx context.Context, inputPath, outputPath string, start, end float64) error {
	if end <= start {
		return fmt.Errorf("ffmpeg slice: end %v must be after start %v", end, start)
	}
	args := append(baseArgs(),
		"-i", inputPath,
		"-ss", formatFloat(start),
		"-to", formatFloat(end),
		"-c", "copy",
		outputPath,
	)
	if err := c.run(ctx, args); err != nil {
		return fmt.Errorf("ffmpeg slice: %w", err)
	}
	return nil
}

// Scale re-encodes input at the given resolution, copying the audio track.
func (c *Client) Scale(ctx context.Context, inputPath, outputPath string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ffmpeg scale: invalid resolution %dx%d", width, height)
	}
	args := append(baseArgs(),
		"-i", inputPath,
		"-vf", fmt.Sprintf("scale=%d:%d", width, height),
		"-c:a", "copy",
		outputPath,
	)
	if err := c.run(ctx, args); err != nil {
		return fmt.Errorf("ffmpeg scale: %w", err)
	}
	return nil
}

// Mute copies the video stream and drops all audio.
func (c *Client) Mute(ctx context.Context, inputPath, outputPath string) error {
	args := append(baseArgs(), "-i", inputPath, "-c", "copy", "-an", outputPath)
	if err := c.run(ctx, args); err != nil {
		return fmt.Errorf("ffmpeg mute: %w", err)
	}
	return nil
}
