package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"camkit/internal/ffmpeg"
)

func newSubtitleCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var positionFlag string
	var fontFlag string
	var fontSizeFlag int

	cmd := &cobra.Command{
		Use:   "subtitle <input> <srt>",
		Short: "Burn an SRT subtitle file into the video",
		Long:  "Renders the subtitle file into the video stream at the chosen position, copying audio. Positions: " + strings.Join(ffmpeg.Positions(), ", ") + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.ffmpegClient()
			if err != nil {
				return err
			}
			output := outputFlag
			if output == "" {
				output = derivedOutputPath(args[0], "sub")
			}
			style := ffmpeg.SubtitleStyle{
				FontName: fontFlag,
				FontSize: fontSizeFlag,
				Position: positionFlag,
			}
			if err := engine.BurnSubtitles(cmd.Context(), args[0], args[1], output, style); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	cmd.Flags().StringVarP(&positionFlag, "position", "p", "bottom-center", "Subtitle position")
	cmd.Flags().StringVar(&fontFlag, "font", "", "Font name override")
	cmd.Flags().IntVar(&fontSizeFlag, "font-size", 0, "Font size override")
	return cmd
}
