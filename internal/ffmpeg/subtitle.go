package ffmpeg

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// SubtitleStyle controls the force_style block passed to the subtitles filter.
type SubtitleStyle struct {
	FontName string
	FontSize int
	Position string
}

// positionStyles maps the position keywords the CLI accepts to libass
// alignment/margin overrides.
var positionStyles = map[string]map[string]string{
	"top-left":      {"Alignment": "4", "MarginV": "10"},
	"top-center":    {"Alignment": "6", "MarginV": "0"},
	"top-right":     {"Alignment": "7", "MarginV": "10"},
	"middle-left":   {"Alignment": "8", "MarginV": "0"},
	"middle-center": {"Alignment": "8", "MarginL": "100", "MarginV": "0"},
	"middle-right":  {"Alignment": "8", "MarginL": "200", "MarginV": "0"},
	"bottom-left":   {"Alignment": "1", "MarginV": "10"},
	"bottom-center": {"Alignment": "2", "MarginV": "10"},
	"bottom-right":  {"Alignment": "3", "MarginV": "10"},
	"top":           {"Alignment": "6", "MarginV": "0"},
	"bottom":        {"Alignment": "2", "MarginV": "10"},
	"center":        {"Alignment": "8", "MarginV": "50"},
}

// Positions lists the accepted subtitle position keywords.
func Positions() []string {
	keys := make([]string, 0, len(positionStyles))
	for key := range positionStyles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ForceStyle renders the style as a comma-joined force_style value with
// deterministic key order.
func (s SubtitleStyle) ForceStyle() (string, error) {
	position := strings.ToLower(strings.TrimSpace(s.Position))
	styles, ok := positionStyles[position]
	if !ok {
		return "", fmt.Errorf("unknown subtitle position %q", s.Position)
	}

	merged := make(map[string]string, len(styles)+2)
	for key, value := range styles {
		merged[key] = value
	}
	if s.FontSize > 0 {
		merged["Fontsize"] = fmt.Sprintf("%d", s.FontSize)
	}
	if strings.TrimSpace(s.FontName) != "" {
		merged["Fontname"] = s.FontName
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+merged[key])
	}
	return strings.Join(pairs, ","), nil
}

// BurnSubtitles renders an SRT file into the video stream, copying audio.
func (c *Client) BurnSubtitles(ctx context.Context, inputPath, subtitlePath, outputPath string, style SubtitleStyle) error {
	forceStyle, err := style.ForceStyle()
	if err != nil {
		return fmt.Errorf("ffmpeg subtitles: %w", err)
	}

	filter := fmt.Sprintf("subtitles=%s:force_style='%s'", escapeFilterPath(subtitlePath), forceStyle)
	args := append(baseArgs(), "-i", inputPath, "-vf", filter, "-c:a", "copy", outputPath)
	if err := c.run(ctx, args); err != nil {
		return fmt.Errorf("ffmpeg subtitles: %w", err)
	}
	return nil
}

// escapeFilterPath quotes characters the ffmpeg filter parser treats as
// delimiters inside a filter option value.
func escapeFilterPath(path string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
		`,`, `\,`,
		`[`, `\[`,
		`]`, `\]`,
	)
	return replacer.Replace(path)
}
