package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"camkit/internal/logging"
)

// ErrAlreadyRunning reports that another watcher holds the lock file.
var ErrAlreadyRunning = errors.New("another camkit watcher is already running")

// CycleFunc performs one sync-and-merge pass.
type CycleFunc func(ctx context.Context) error

// Watcher runs a cycle immediately and then on a fixed interval, holding a
// file lock so only one instance works a camera directory at a time.
type Watcher struct {
	lockPath string
	interval time.Duration
	cycle    CycleFunc
	logger   *slog.Logger
	lock     *flock.Flock
}

// New constructs a watcher. The lock file's directory is created on Run.
func New(lockPath string, interval time.Duration, cycle CycleFunc, logger *slog.Logger) (*Watcher, error) {
	if lockPath == "" {
		return nil, errors.New("lock path is required")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", interval)
	}
	if cycle == nil {
		return nil, errors.New("cycle function is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Watcher{
		lockPath: lockPath,
		interval: interval,
		cycle:    cycle,
		logger:   logging.NewComponentLogger(logger, "watch"),
		lock:     flock.New(lockPath),
	}, nil
}

// Run blocks until ctx is cancelled. A failed cycle is logged and the next
// tick runs anyway; only lock acquisition failures abort the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(w.lockPath), 0o755); err != nil {
		return fmt.Errorf("ensure lock directory: %w", err)
	}

	ok, err := w.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}
	defer func() {
		if unlockErr := w.lock.Unlock(); unlockErr != nil {
			w.logger.Warn("failed to release watch lock", logging.Error(unlockErr))
		}
	}()

	w.logger.Info("watcher started",
		logging.String("lock", w.lockPath),
		logging.Duration("interval", w.interval))

	w.runCycle(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.runCycle(ctx)
		}
	}
}

func (w *Watcher) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	started := time.Now()
	if err := w.cycle(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		w.logger.Warn("cycle failed", logging.Error(err))
		return
	}
	w.logger.Info("cycle complete", logging.Duration("elapsed", time.Since(started)))
}
