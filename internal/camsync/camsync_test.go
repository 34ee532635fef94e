package camsync

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"camkit/internal/logging"
	"camkit/internal/testsupport"
)

type fakeDevice struct {
	readyErr  error
	dirErr    error
	listErr   error
	files     []string
	pullFails map[string]error

	pulled []string
}

func (f *fakeDevice) DeviceReady(context.Context) error { return f.readyErr }

func (f *fakeDevice) RemoteDirExists(context.Context, string) error { return f.dirErr }

func (f *fakeDevice) ListFiles(context.Context, string, []string) ([]string, error) {
	return f.files, f.listErr
}

func (f *fakeDevice) Pull(_ context.Context, remotePath, localPath string) error {
	if err, ok := f.pullFails[remotePath]; ok {
		return err
	}
	f.pulled = append(f.pulled, remotePath)
	return os.WriteFile(localPath, []byte("pulled"), 0o644)
}

func TestRunPullsOnlyMissing(t *testing.T) {
	localDir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(localDir, "VID_1.mp4"), 64)
	device := &fakeDevice{files: []string{"VID_1.mp4", "VID_2.mp4", "VID_3.mp4"}}
	syncer := NewSyncer(device, logging.NewNop())

	report, err := syncer.Run(context.Background(), Request{
		RemoteDir: "/sdcard/DCIM/Camera",
		LocalDir:  localDir,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Missing) != 2 || report.Missing[0] != "VID_2.mp4" || report.Missing[1] != "VID_3.mp4" {
		t.Fatalf("unexpected missing set: %v", report.Missing)
	}
	if len(report.Pulled) != 2 || len(report.Failed) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	for _, name := range []string{"VID_2.mp4", "VID_3.mp4"} {
		if _, err := os.Stat(filepath.Join(localDir, name)); err != nil {
			t.Fatalf("expected pulled file %s: %v", name, err)
		}
	}
}

func TestRunCreatesNestedDirectories(t *testing.T) {
	localDir := t.TempDir()
	device := &fakeDevice{files: []string{"2024/02/VID_1.mp4"}}
	syncer := NewSyncer(device, logging.NewNop())

	report, err := syncer.Run(context.Background(), Request{
		RemoteDir: "/sdcard/DCIM/Camera",
		LocalDir:  localDir,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Pulled) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if _, err := os.Stat(filepath.Join(localDir, "2024", "02", "VID_1.mp4")); err != nil {
		t.Fatalf("nested pull missing: %v", err)
	}
}

func TestRunDryRunPullsNothing(t *testing.T) {
	device := &fakeDevice{files: []string{"VID_1.mp4"}}
	syncer := NewSyncer(device, logging.NewNop())

	report, err := syncer.Run(context.Background(), Request{
		RemoteDir: "/sdcard/DCIM/Camera",
		LocalDir:  t.TempDir(),
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Missing) != 1 || len(report.Pulled) != 0 || len(device.pulled) != 0 {
		t.Fatalf("dry run must not pull: %+v", report)
	}
}

func TestRunMissingLocalDirTreatedAsEmpty(t *testing.T) {
	device := &fakeDevice{files: []string{"VID_1.mp4"}}
	syncer := NewSyncer(device, logging.NewNop())
	localDir := filepath.Join(t.TempDir(), "fresh")

	report, err := syncer.Run(context.Background(), Request{
		RemoteDir: "/sdcard/DCIM/Camera",
		LocalDir:  localDir,
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.LocalCount != 0 || len(report.Missing) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestRunRecordsPullFailures(t *testing.T) {
	device := &fakeDevice{
		files:     []string{"VID_1.mp4", "VID_2.mp4"},
		pullFails: map[string]error{"/sdcard/DCIM/Camera/VID_1.mp4": errors.New("io error")},
	}
	syncer := NewSyncer(device, logging.NewNop())

	report, err := syncer.Run(context.Background(), Request{
		RemoteDir: "/sdcard/DCIM/Camera",
		LocalDir:  t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Failed) != 1 || report.Failed[0] != "VID_1.mp4" {
		t.Fatalf("unexpected failures: %v", report.Failed)
	}
	if len(report.Pulled) != 1 || report.Pulled[0] != "VID_2.mp4" {
		t.Fatalf("unexpected pulls: %v", report.Pulled)
	}
}

func TestRunDeviceUnavailable(t *testing.T) {
	device := &fakeDevice{readyErr: errors.New("no devices")}
	syncer := NewSyncer(device, logging.NewNop())

	_, err := syncer.Run(context.Background(), Request{
		RemoteDir: "/sdcard/DCIM/Camera",
		LocalDir:  t.TempDir(),
	})
	if !errors.Is(err, ErrDeviceUnavailable) {
		t.Fatalf("expected ErrDeviceUnavailable, got %v", err)
	}
}

func TestMissingFilesSetDifference(t *testing.T) {
	got := missingFiles(
		[]string{"a.mp4", "b.mp4", "c.mp4"},
		[]string{"b.mp4", "d.mp4"},
	)
	if len(got) != 2 || got[0] != "a.mp4" || got[1] != "c.mp4" {
		t.Fatalf("unexpected difference: %v", got)
	}
}
