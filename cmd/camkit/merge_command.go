package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"camkit/internal/journal"
	"camkit/internal/logging"
	"camkit/internal/merge"
)

var dateArgPattern = regexp.MustCompile(`^\d{8}$`)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var targetFlag float64
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "merge [YYYYMMDD]",
		Short: "Merge one day's clips into a single video under the duration ceiling",
		Long:  "Concatenates the date's clips via stream copy. When the combined duration exceeds the target, the result is time-compressed with synchronized video and audio speed-up; otherwise the concat output is kept as-is.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format("20060102")
			if len(args) == 1 {
				date = args[0]
			}
			if !dateArgPattern.MatchString(date) {
				return fmt.Errorf("invalid date %q (expected YYYYMMDD)", date)
			}
			result, err := runMergeForDate(cmd.Context(), ctx, date, targetFlag, outputFlag)
			if err != nil {
				return err
			}
			printMergeResult(cmd.OutOrStdout(), date, result)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&targetFlag, "target", "t", 0, "Duration ceiling in seconds (default from config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default <output_dir>/<date>.mp4)")
	return cmd
}

// runMergeForDate discovers the date's clips and drives the merge pipeline.
// It is shared between the merge command and the watch cycle.
func runMergeForDate(runCtx context.Context, ctx *commandContext, date string, target float64, output string) (*merge.Result, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	pipeline, err := ctx.mergePipeline()
	if err != nil {
		return nil, err
	}

	items, err := merge.DiscoverClips(cfg.Paths.CameraDir, date, cfg.Merge.Extensions)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no clips for %s in %s", merge.ErrNoMatchingFiles, date, cfg.Paths.CameraDir)
	}

	if target <= 0 {
		target = cfg.Merge.TargetSeconds
	}
	if output == "" {
		output = filepath.Join(cfg.Paths.OutputDir, date+".mp4")
	}

	result, err := pipeline.Run(runCtx, merge.Request{
		Items:         items,
		OutputPath:    output,
		TargetSeconds: target,
		WorkDir:       cfg.Paths.StateDir,
	})
	if err != nil {
		return nil, err
	}

	recordMergeRun(runCtx, ctx, date, result)
	return result, nil
}

// recordMergeRun journals the run. History is advisory, so failures are
// logged rather than surfaced.
func recordMergeRun(runCtx context.Context, ctx *commandContext, date string, result *merge.Result) {
	store, err := ctx.openJournal()
	if err != nil {
		logJournalFailure(ctx, err)
		return
	}
	defer store.Close()

	err = store.RecordMerge(runCtx, journal.MergeRecord{
		Date:          date,
		OutputPath:    result.OutputPath,
		InputCount:    result.Inputs,
		TotalSeconds:  result.TotalSeconds,
		TargetSeconds: result.TargetSeconds,
		Shortened:     result.Shortened,
		VideoRate:     result.Plan.VideoRate,
		TempoChain:    result.Plan.AudioTempoChain,
	})
	if err != nil {
		logJournalFailure(ctx, err)
	}
}

func logJournalFailure(ctx *commandContext, err error) {
	if logger, logErr := ctx.ensureLogger(); logErr == nil {
		logger.Warn("failed to record history", logging.Error(err))
	}
}

func printMergeResult(out io.Writer, date string, result *merge.Result) {
	fmt.Fprintf(out, "Merged %d clips for %s into %s\n", result.Inputs, date, result.OutputPath)
	if result.Shortened {
		fmt.Fprintf(out, "Shortened %s to %s (video rate %.4f, %d audio stage(s))\n",
			formatClock(result.TotalSeconds), formatClock(result.TargetSeconds),
			result.Plan.VideoRate, len(result.Plan.AudioTempoChain))
		if !result.HasAudio {
			fmt.Fprintln(out, "Source had no audio; output is video-only")
		}
		return
	}
	fmt.Fprintf(out, "Total %s is within the %s target; kept without re-encoding\n",
		formatClock(result.TotalSeconds), formatClock(result.TargetSeconds))
}
