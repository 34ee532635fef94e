package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"camkit/internal/merge"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info [file...]",
		Short: "Show duration and resolution for clips",
		Long:  "Probes the given files, or every clip in the camera directory when no arguments are provided, and prints a per-file table with totals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			prober, err := ctx.ffprobeClient()
			if err != nil {
				return err
			}

			paths := args
			if len(paths) == 0 {
				paths, err = merge.DiscoverClips(cfg.Paths.CameraDir, "", cfg.Merge.Extensions)
				if err != nil {
					return err
				}
			}
			if len(paths) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No clips found")
				return nil
			}

			rows := make([][]string, 0, len(paths))
			var totalSeconds float64
			for _, path := range paths {
				info, err := prober.Probe(cmd.Context(), path)
				if err != nil {
					return err
				}
				totalSeconds += info.Duration
				rows = append(rows, []string{
					filepath.Base(path),
					formatClock(info.Duration),
					fmt.Sprintf("%dx%d", info.Width, info.Height),
					yesNo(info.HasAudio),
				})
			}
			rows = append(rows, []string{"total", formatClock(totalSeconds), "", ""})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Duration", "Resolution", "Audio"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}
