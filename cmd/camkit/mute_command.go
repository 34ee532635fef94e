package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMuteCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "mute <input>",
		Short: "Strip the audio track via stream copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.ffmpegClient()
			if err != nil {
				return err
			}
			output := outputFlag
			if output == "" {
				output = derivedOutputPath(args[0], "mute")
			}
			if err := engine.Mute(cmd.Context(), args[0], output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	return cmd
}
