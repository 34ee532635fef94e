package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// parseTimecode accepts "mm:ss", "mm:ss.ms", or plain seconds ("95.5") and
// returns the value in seconds.
func parseTimecode(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timecode")
	}

	parts := strings.Split(value, ":")
	switch len(parts) {
	case 1:
		seconds, err := strconv.ParseFloat(parts[0], 64)
		if err != nil || seconds < 0 {
			return 0, fmt.Errorf("invalid timecode %q", value)
		}
		return seconds, nil
	case 2:
		minutes, err := strconv.Atoi(parts[0])
		if err != nil || minutes < 0 {
			return 0, fmt.Errorf("invalid timecode %q", value)
		}
		seconds, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || seconds < 0 || seconds >= 60 {
			return 0, fmt.Errorf("invalid timecode %q", value)
		}
		return float64(minutes)*60 + seconds, nil
	default:
		return 0, fmt.Errorf("invalid timecode %q", value)
	}
}

// formatClock renders seconds as m:ss.s for table output.
func formatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(seconds) / 60
	remainder := seconds - float64(minutes*60)
	return fmt.Sprintf("%d:%04.1f", minutes, remainder)
}

// parseSize parses a WxH value such as "1280x720".
func parseSize(value string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(value)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", value)
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", value)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", value)
	}
	return width, height, nil
}

// derivedOutputPath returns input with a suffix inserted before the
// extension: clip.mp4 + "mute" -> clip-mute.mp4.
func derivedOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	if ext == "" {
		ext = ".mp4"
	}
	return stem + "-" + suffix + ext
}
