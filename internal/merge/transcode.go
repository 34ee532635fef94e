package merge

import "camkit/internal/ffmpeg"

// BuildTranscodeRequest shapes the engine request for a speed plan. Items
// without audio get a video-only request that strips any audio track from
// the output; items with audio carry the full ordered tempo chain.
func BuildTranscodeRequest(plan SpeedPlan, hasAudio bool) ffmpeg.SpeedRequest {
	req := ffmpeg.SpeedRequest{VideoRate: plan.VideoRate}
	if hasAudio {
		req.IncludeAudio = true
		req.AudioTempo = append([]float64(nil), plan.AudioTempoChain...)
	}
	return req
}
