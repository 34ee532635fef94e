package ffmpeg

import (
	"context"
	"strings"
	"testing"
)

func TestFilterComplexWithAudioChain(t *testing.T) {
	req := SpeedRequest{
		VideoRate:    0.9,
		AudioTempo:   []float64{2, 2, 1.25},
		IncludeAudio: true,
	}
	got := req.FilterComplex()
	want := "[0:v]setpts=0.9*PTS[v];[0:a]atempo=2,atempo=2,atempo=1.25[a]"
	if got != want {
		t.Fatalf("filter mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestFilterComplexVideoOnly(t *testing.T) {
	req := SpeedRequest{VideoRate: 0.5, AudioTempo: []float64{2}, IncludeAudio: false}
	got := req.FilterComplex()
	if got != "[0:v]setpts=0.5*PTS[v]" {
		t.Fatalf("unexpected filter: %s", got)
	}
}

func TestSpeedChangeMapsAudioWhenIncluded(t *testing.T) {
	exec := &fakeExecutor{}
	client := New("ffmpeg", WithExecutor(exec))

	req := SpeedRequest{VideoRate: 0.9, AudioTempo: []float64{1.1111111111111112}, IncludeAudio: true}
	if err := client.SpeedChange(context.Background(), "in.mp4", "out.mp4", req); err != nil {
		t.Fatalf("SpeedChange: %v", err)
	}
	joined := strings.Join(exec.args, " ")
	if !strings.Contains(joined, "-map [v] -map [a]") {
		t.Fatalf("expected audio map, got %v", exec.args)
	}
	if strings.Contains(joined, "-an") {
		t.Fatalf("unexpected -an with audio included: %v", exec.args)
	}
}

func TestSpeedChangeStripsAudioWhenExcluded(t *testing.T) {
	exec := &fakeExecutor{}
	client := New("ffmpeg", WithExecutor(exec))

	req := SpeedRequest{VideoRate: 0.9, IncludeAudio: false}
	if err := client.SpeedChange(context.Background(), "in.mp4", "out.mp4", req); err != nil {
		t.Fatalf("SpeedChange: %v", err)
	}
	joined := strings.Join(exec.args, " ")
	if !strings.Contains(joined, "-map [v] -an") {
		t.Fatalf("expected explicit audio strip, got %v", exec.args)
	}
	if strings.Contains(joined, "atempo") {
		t.Fatalf("audio filter must not appear: %v", exec.args)
	}
}

func TestSpeedChangeRejectsOutOfRangeStage(t *testing.T) {
	client := New("ffmpeg", WithExecutor(&fakeExecutor{}))
	req := SpeedRequest{VideoRate: 0.2, AudioTempo: []float64{5}, IncludeAudio: true}
	if err := client.SpeedChange(context.Background(), "in.mp4", "out.mp4", req); err == nil {
		t.Fatal("expected error for atempo stage outside [0.5, 2.0]")
	}
}

func TestSpeedChangeRejectsEmptyChainWithAudio(t *testing.T) {
	client := New("ffmpeg", WithExecutor(&fakeExecutor{}))
	req := SpeedRequest{VideoRate: 0.9, IncludeAudio: true}
	if err := client.SpeedChange(context.Background(), "in.mp4", "out.mp4", req); err == nil {
		t.Fatal("expected error for empty tempo chain")
	}
}
