package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent merge and sync runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openJournal()
			if err != nil {
				return err
			}
			defer store.Close()

			merges, err := store.RecentMerges(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			syncs, err := store.RecentSyncs(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(merges) == 0 && len(syncs) == 0 {
				fmt.Fprintln(out, "No history yet")
				return nil
			}

			if len(merges) > 0 {
				rows := make([][]string, 0, len(merges))
				for _, rec := range merges {
					shortened := "-"
					if rec.Shortened {
						shortened = fmt.Sprintf("rate %.4f, %d stage(s)", rec.VideoRate, len(rec.TempoChain))
					}
					rows = append(rows, []string{
						rec.CreatedAt.Local().Format(time.DateTime),
						rec.Date,
						fmt.Sprintf("%d", rec.InputCount),
						formatClock(rec.TotalSeconds),
						shortened,
					})
				}
				fmt.Fprintln(out, "Merges:")
				fmt.Fprintln(out, renderTable(
					[]string{"When", "Date", "Clips", "Total", "Shortened"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
				))
			}

			if len(syncs) > 0 {
				rows := make([][]string, 0, len(syncs))
				for _, rec := range syncs {
					rows = append(rows, []string{
						rec.CreatedAt.Local().Format(time.DateTime),
						strings.TrimSpace(rec.RemoteDir),
						fmt.Sprintf("%d", rec.RemoteCount),
						fmt.Sprintf("%d", rec.Pulled),
						fmt.Sprintf("%d", rec.Failed),
					})
				}
				fmt.Fprintln(out, "Syncs:")
				fmt.Fprintln(out, renderTable(
					[]string{"When", "Remote", "Remote files", "Pulled", "Failed"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "l", 20, "Maximum rows per table")
	return cmd
}
