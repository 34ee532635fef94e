package ffmpeg

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// SpeedRequest describes a synchronized speed change. VideoRate multiplies
// presentation timestamps (target/total, below 1 speeds video up).
// AudioTempo is the ordered atempo stage chain; it is applied only when
// IncludeAudio is set, otherwise the output drops audio entirely rather
// than inheriting a stale track.
type SpeedRequest struct {
	VideoRate    float64
	AudioTempo   []float64
	IncludeAudio bool
}

// FilterComplex renders the request as an ffmpeg filter graph.
func (r SpeedRequest) FilterComplex() string {
	video := fmt.Sprintf("[0:v]setpts=%s*PTS[v]", formatFloat(r.VideoRate))
	if !r.IncludeAudio {
		return video
	}
	stages := make([]string, 0, len(r.AudioTempo))
	for _, tempo := range r.AudioTempo {
		stages = append(stages, "atempo="+formatFloat(tempo))
	}
	return video + ";[0:a]" + strings.Join(stages, ",") + "[a]"
}

func (r SpeedRequest) validate() error {
	if r.VideoRate <= 0 {
		return fmt.Errorf("video rate must be positive, got %v", r.VideoRate)
	}
	if r.IncludeAudio && len(r.AudioTempo) == 0 {
		return fmt.Errorf("audio requested with empty tempo chain")
	}
	for _, tempo := range r.AudioTempo {
		if tempo < 0.5 || tempo > 2.0 {
			return fmt.Errorf("atempo stage %v outside [0.5, 2.0]", tempo)
		}
	}
	return nil
}

// SpeedChange re-encodes input with the requested video timestamp rescale
// and, when audio is included, the chained pitch-preserving tempo stages.
func (c *Client) SpeedChange(ctx context.Context, inputPath, outputPath string, req SpeedRequest) error {
	if err := req.validate(); err != nil {
		return fmt.Errorf("ffmpeg speed change: %w", err)
	}

	args := append(baseArgs(), "-i", inputPath, "-filter_complex", req.FilterComplex())
	if req.IncludeAudio {
		args = append(args, "-map", "[v]", "-map", "[a]")
	} else {
		args = append(args, "-map", "[v]", "-an")
	}
	args = append(args, outputPath)

	if err := c.run(ctx, args); err != nil {
		return fmt.Errorf("ffmpeg speed change: %w", err)
	}
	return nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
