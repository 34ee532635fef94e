package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSliceCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "slice <input> <start> <end>",
		Short: "Extract a time range via stream copy",
		Long:  "Copies the start-end range of the input without re-encoding. Times accept mm:ss.ms or plain seconds.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			start, err := parseTimecode(args[1])
			if err != nil {
				return err
			}
			end, err := parseTimecode(args[2])
			if err != nil {
				return err
			}
			if end <= start {
				return fmt.Errorf("end %s must be after start %s", args[2], args[1])
			}

			engine, err := ctx.ffmpegClient()
			if err != nil {
				return err
			}
			output := outputFlag
			if output == "" {
				output = derivedOutputPath(input, "slice")
			}
			if err := engine.Slice(cmd.Context(), input, output, start, end); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	return cmd
}
