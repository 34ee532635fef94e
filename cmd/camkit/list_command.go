package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"camkit/internal/merge"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show per-day clip counts, or one day's clips with --date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			paths, err := merge.DiscoverClips(cfg.Paths.CameraDir, dateFlag, cfg.Merge.Extensions)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(paths) == 0 {
				fmt.Fprintln(out, "No clips found")
				return nil
			}

			if dateFlag != "" {
				for _, path := range paths {
					fmt.Fprintln(out, filepath.Base(path))
				}
				return nil
			}

			counts := make(map[string]int)
			for _, path := range paths {
				date := merge.ExtractDate(filepath.Base(path))
				if date == "" {
					date = "undated"
				}
				counts[date]++
			}
			dates := make([]string, 0, len(counts))
			for date := range counts {
				dates = append(dates, date)
			}
			sort.Strings(dates)

			rows := make([][]string, 0, len(dates))
			for _, date := range dates {
				rows = append(rows, []string{date, fmt.Sprintf("%d", counts[date])})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Date", "Clips"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))

			// The newest day is what the next merge will act on.
			newest := dates[len(dates)-1]
			if newest != "undated" {
				fmt.Fprintf(out, "Newest day: %s (%d clip(s))\n", newest, counts[newest])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "List clips for one YYYYMMDD date")
	return cmd
}
