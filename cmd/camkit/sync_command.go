package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"camkit/internal/camsync"
	"camkit/internal/journal"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull missing camera files from the connected device",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runSync(cmd.Context(), ctx, dryRun)
			if err != nil {
				return err
			}
			printSyncReport(cmd.OutOrStdout(), report, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "List missing files without pulling them")
	return cmd
}

// runSync mirrors the device camera directory. Shared with the watch cycle.
func runSync(runCtx context.Context, ctx *commandContext, dryRun bool) (camsync.Report, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return camsync.Report{}, err
	}
	syncer, err := ctx.syncer()
	if err != nil {
		return camsync.Report{}, err
	}

	report, err := syncer.Run(runCtx, camsync.Request{
		RemoteDir:    cfg.Sync.RemoteDir,
		LocalDir:     cfg.Paths.CameraDir,
		ExcludeGlobs: cfg.Sync.ExcludeGlobs,
		DryRun:       dryRun,
	})
	if err != nil {
		return report, err
	}

	if !dryRun {
		recordSyncRun(runCtx, ctx, cfg.Sync.RemoteDir, cfg.Paths.CameraDir, report)
	}
	return report, nil
}

func recordSyncRun(runCtx context.Context, ctx *commandContext, remoteDir, localDir string, report camsync.Report) {
	store, err := ctx.openJournal()
	if err != nil {
		logJournalFailure(ctx, err)
		return
	}
	defer store.Close()

	err = store.RecordSync(runCtx, journal.SyncRecord{
		RemoteDir:   remoteDir,
		LocalDir:    localDir,
		RemoteCount: report.RemoteCount,
		Pulled:      len(report.Pulled),
		Failed:      len(report.Failed),
	})
	if err != nil {
		logJournalFailure(ctx, err)
	}
}

func printSyncReport(out io.Writer, report camsync.Report, dryRun bool) {
	if len(report.Missing) == 0 {
		fmt.Fprintf(out, "Up to date: %d remote, %d local\n", report.RemoteCount, report.LocalCount)
		return
	}
	if dryRun {
		fmt.Fprintf(out, "%d file(s) missing locally:\n", len(report.Missing))
		for _, file := range report.Missing {
			fmt.Fprintf(out, "  %s\n", file)
		}
		return
	}
	fmt.Fprintf(out, "Pulled %d of %d missing file(s)\n", len(report.Pulled), len(report.Missing))
	for _, file := range report.Failed {
		fmt.Fprintf(out, "  failed: %s\n", file)
	}
}
