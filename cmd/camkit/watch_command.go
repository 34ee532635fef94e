package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"camkit/internal/camsync"
	"camkit/internal/logging"
	"camkit/internal/merge"
	"camkit/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Periodically sync the device and merge the day's clips",
		Long:  "Runs a sync-then-merge cycle immediately and on the configured interval until interrupted. A lock file prevents concurrent watchers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			cycle := func(cycleCtx context.Context) error {
				if cfg.Watch.SyncEnabled {
					if _, err := runSync(cycleCtx, ctx, false); err != nil {
						// Merging still makes sense with whatever clips are
						// already local.
						if errors.Is(err, camsync.ErrDeviceUnavailable) {
							logger.Warn("device unavailable, skipping sync", logging.Error(err))
						} else {
							return err
						}
					}
				}
				if cfg.Watch.MergeEnabled {
					date := time.Now().Format("20060102")
					if _, err := runMergeForDate(cycleCtx, ctx, date, 0, ""); err != nil {
						if errors.Is(err, merge.ErrNoMatchingFiles) {
							logger.Info("no clips to merge", logging.String("date", date))
							return nil
						}
						return err
					}
				}
				return nil
			}

			interval := time.Duration(cfg.Watch.IntervalMinutes) * time.Minute
			watcher, err := watch.New(cfg.LockPath(), interval, cycle, logger)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Watching every %s (ctrl-c to stop)\n", interval)
			if err := watcher.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
