package merge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manifest is an ordered list of absolute clip paths destined for a single
// stream-copy concatenation. Order is playback order.
type Manifest struct {
	Items []string
}

// BuildManifest validates the ordered item list and resolves every entry to
// an absolute path. The caller supplies discovery order; it is preserved
// exactly.
func BuildManifest(items []string) (Manifest, error) {
	if len(items) == 0 {
		return Manifest{}, ErrNoMatchingFiles
	}

	resolved := make([]string, 0, len(items))
	for _, item := range items {
		abs, err := filepath.Abs(item)
		if err != nil {
			return Manifest{}, fmt.Errorf("resolve %s: %w", item, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Manifest{}, fmt.Errorf("%w: %s", ErrInputNotFound, abs)
			}
			return Manifest{}, fmt.Errorf("inspect %s: %w", abs, err)
		}
		if info.IsDir() {
			return Manifest{}, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, abs)
		}
		resolved = append(resolved, abs)
	}
	return Manifest{Items: resolved}, nil
}

// WriteFile renders the manifest in ffmpeg concat-demuxer syntax at path.
func (m Manifest) WriteFile(path string) error {
	var sb strings.Builder
	for _, item := range m.Items {
		sb.WriteString("file '")
		sb.WriteString(strings.ReplaceAll(item, "'", `'\''`))
		sb.WriteString("'\n")
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write concat manifest: %w", err)
	}
	return nil
}
