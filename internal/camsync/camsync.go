package camsync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	"camkit/internal/logging"
)

// ErrDeviceUnavailable reports that no usable device was found.
var ErrDeviceUnavailable = errors.New("device unavailable")

// Device is the subset of adb operations the syncer needs.
type Device interface {
	DeviceReady(ctx context.Context) error
	RemoteDirExists(ctx context.Context, dir string) error
	ListFiles(ctx context.Context, dir string, excludeGlobs []string) ([]string, error)
	Pull(ctx context.Context, remotePath, localPath string) error
}

// Request describes one sync run.
type Request struct {
	RemoteDir    string
	LocalDir     string
	ExcludeGlobs []string
	// DryRun computes the plan without pulling anything.
	DryRun bool
}

// Report summarizes a sync run.
type Report struct {
	RemoteCount int
	LocalCount  int
	Missing     []string
	Pulled      []string
	Failed      []string
}

// Syncer mirrors missing files from the device into a local directory.
type Syncer struct {
	device Device
	logger *slog.Logger
}

// NewSyncer constructs a syncer. A nil logger is replaced by a no-op one.
func NewSyncer(device Device, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Syncer{device: device, logger: logging.NewComponentLogger(logger, "camsync")}
}

// Run computes which remote files are absent locally and pulls them one by
// one. Individual pull failures are recorded and do not abort the run.
func (s *Syncer) Run(ctx context.Context, req Request) (Report, error) {
	var report Report

	if req.RemoteDir == "" || req.LocalDir == "" {
		return report, errors.New("remote and local directories are required")
	}

	if err := s.device.DeviceReady(ctx); err != nil {
		return report, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	if err := s.device.RemoteDirExists(ctx, req.RemoteDir); err != nil {
		return report, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	remote, err := s.device.ListFiles(ctx, req.RemoteDir, req.ExcludeGlobs)
	if err != nil {
		return report, fmt.Errorf("list remote files: %w", err)
	}
	local, err := listLocalFiles(req.LocalDir)
	if err != nil {
		return report, fmt.Errorf("list local files: %w", err)
	}

	report.RemoteCount = len(remote)
	report.LocalCount = len(local)
	report.Missing = missingFiles(remote, local)

	s.logger.Info("sync plan computed",
		logging.Int("remote_files", report.RemoteCount),
		logging.Int("local_files", report.LocalCount),
		logging.Int("missing", len(report.Missing)))

	if req.DryRun {
		return report, nil
	}

	for _, rel := range report.Missing {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		remotePath := path.Join(req.RemoteDir, rel)
		localPath := filepath.Join(req.LocalDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
			s.logger.Warn("create local directory failed",
				logging.String("path", localPath), logging.Error(err))
			report.Failed = append(report.Failed, rel)
			continue
		}
		if err := s.device.Pull(ctx, remotePath, localPath); err != nil {
			s.logger.Warn("pull failed",
				logging.String("file", rel), logging.Error(err))
			report.Failed = append(report.Failed, rel)
			continue
		}
		s.logger.Info("pulled", logging.String("file", rel))
		report.Pulled = append(report.Pulled, rel)
	}

	return report, nil
}

// listLocalFiles walks dir and returns slash-separated relative paths for
// every regular file. A missing directory yields an empty list so a first
// sync into a fresh directory works.
func listLocalFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var files []string
	err = filepath.WalkDir(dir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// missingFiles returns the sorted entries of remote that are absent from
// local. Both inputs are expected to be sorted relative paths.
func missingFiles(remote, local []string) []string {
	seen := make(map[string]struct{}, len(local))
	for _, file := range local {
		seen[file] = struct{}{}
	}
	var missing []string
	for _, file := range remote {
		if _, ok := seen[file]; !ok {
			missing = append(missing, file)
		}
	}
	sort.Strings(missing)
	return missing
}
