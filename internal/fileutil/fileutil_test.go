package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCopyFilePreservesContents(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp4")
	dst := filepath.Join(dir, "dst.mp4")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected contents: %q", data)
	}
}

func TestMoveFileCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp4")
	dst := filepath.Join(dir, "nested", "deep", "dst.mp4")
	if err := os.WriteFile(src, []byte("clip"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	if err := MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source still present: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("destination missing: %v", err)
	}
}

func TestRemoveIfExistsIgnoresMissing(t *testing.T) {
	if err := RemoveIfExists(filepath.Join(t.TempDir(), "ghost.txt")); err != nil {
		t.Fatalf("RemoveIfExists: %v", err)
	}
}

func TestUniqueTempPathIsUniqueAndShaped(t *testing.T) {
	dir := t.TempDir()
	first := UniqueTempPath(dir, "camkit-concat", ".mp4")
	second := UniqueTempPath(dir, "camkit-concat", "mp4")
	if first == second {
		t.Fatal("expected unique paths")
	}
	for _, p := range []string{first, second} {
		if filepath.Dir(p) != dir {
			t.Fatalf("path %s not in %s", p, dir)
		}
		base := filepath.Base(p)
		if !strings.HasPrefix(base, "camkit-concat-") || !strings.HasSuffix(base, ".mp4") {
			t.Fatalf("unexpected shape: %s", base)
		}
	}
}
