package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScaleCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var sizeFlag string

	cmd := &cobra.Command{
		Use:   "scale <input>",
		Short: "Downscale a clip to a fixed resolution, keeping audio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height, err := parseSize(sizeFlag)
			if err != nil {
				return err
			}
			engine, err := ctx.ffmpegClient()
			if err != nil {
				return err
			}
			output := outputFlag
			if output == "" {
				output = derivedOutputPath(args[0], fmt.Sprintf("%dx%d", width, height))
			}
			if err := engine.Scale(cmd.Context(), args[0], output, width, height); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	cmd.Flags().StringVarP(&sizeFlag, "size", "s", "1280x720", "Target resolution as WxH")
	return cmd
}
