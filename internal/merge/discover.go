package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// datePattern matches the YYYYMMDD stamp camera filenames start with,
// optionally behind a VID_ prefix.
var datePattern = regexp.MustCompile(`^(?:VID_)?(\d{8})`)

// ExtractDate returns the YYYYMMDD stamp from a clip filename, or "" when
// the name carries none.
func ExtractDate(name string) string {
	match := datePattern.FindStringSubmatch(name)
	if match == nil {
		return ""
	}
	return match[1]
}

// DiscoverClips lists the clips in dir whose names start with prefix
// (optionally behind VID_) and carry one of the given extensions, sorted
// lexicographically by filename. An empty prefix matches everything. The
// returned paths feed BuildManifest unchanged; this is the only place that
// reads the directory.
func DiscoverClips(dir, prefix string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read camera directory: %w", err)
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		dot := strings.LastIndex(name, ".")
		if dot < 0 {
			continue
		}
		if _, ok := allowed[strings.ToLower(name[dot:])]; !ok {
			continue
		}
		if prefix != "" && !strings.HasPrefix(name, prefix) && !strings.HasPrefix(name, "VID_"+prefix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}
