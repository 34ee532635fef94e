package merge

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"camkit/internal/ffmpeg"
	"camkit/internal/ffprobe"
	"camkit/internal/logging"
)

type fakeEngine struct {
	concatErr    error
	transcodeErr error

	concatCalls    int
	speedCalls     int
	lastSpeedReq   ffmpeg.SpeedRequest
	concatPayload  []byte
	sawManifest    bool
	manifestOnDisk []byte
}

func (f *fakeEngine) Concat(_ context.Context, listPath, outputPath string) error {
	f.concatCalls++
	if data, err := os.ReadFile(listPath); err == nil {
		f.sawManifest = true
		f.manifestOnDisk = data
	}
	if f.concatErr != nil {
		return f.concatErr
	}
	payload := f.concatPayload
	if payload == nil {
		payload = []byte("concat-result")
	}
	return os.WriteFile(outputPath, payload, 0o644)
}

func (f *fakeEngine) SpeedChange(_ context.Context, _, outputPath string, req ffmpeg.SpeedRequest) error {
	f.speedCalls++
	f.lastSpeedReq = req
	if f.transcodeErr != nil {
		// Simulate a partially written output before the engine bailed.
		_ = os.WriteFile(outputPath, []byte("partial"), 0o644)
		return f.transcodeErr
	}
	return os.WriteFile(outputPath, []byte("shortened"), 0o644)
}

type fakeProber struct {
	info ffprobe.Info
	err  error
}

func (f *fakeProber) Probe(context.Context, string) (ffprobe.Info, error) {
	return f.info, f.err
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read work dir: %v", err)
	}
	if len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		t.Fatalf("intermediates left behind: %v", names)
	}
}

func newTestRequest(t *testing.T, target float64) (Request, string) {
	t.Helper()
	clipDir := t.TempDir()
	workDir := t.TempDir()
	items := []string{
		writeClip(t, clipDir, "VID_20240201_0001.mp4"),
		writeClip(t, clipDir, "VID_20240201_0002.mp4"),
	}
	return Request{
		Items:         items,
		OutputPath:    filepath.Join(clipDir, "20240201-merged.mp4"),
		TargetSeconds: target,
		WorkDir:       workDir,
	}, workDir
}

func TestPipelinePassThroughSkipsTranscode(t *testing.T) {
	engine := &fakeEngine{concatPayload: []byte("lossless-bytes")}
	prober := &fakeProber{info: ffprobe.Info{Duration: 120, HasAudio: true}}
	pipeline := NewPipeline(engine, prober, logging.NewNop())

	req, workDir := newTestRequest(t, 180)
	result, err := pipeline.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Shortened {
		t.Fatal("expected pass-through")
	}
	if engine.speedCalls != 0 {
		t.Fatalf("transcode invoked %d times on pass-through", engine.speedCalls)
	}
	data, err := os.ReadFile(req.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "lossless-bytes" {
		t.Fatalf("output not byte-identical to concat result: %q", data)
	}
	if !engine.sawManifest {
		t.Fatal("engine never saw the manifest file")
	}
	assertEmptyDir(t, workDir)
}

func TestPipelineShortensWhenOverTarget(t *testing.T) {
	engine := &fakeEngine{}
	prober := &fakeProber{info: ffprobe.Info{Duration: 200, HasAudio: true}}
	pipeline := NewPipeline(engine, prober, logging.NewNop())

	req, workDir := newTestRequest(t, 180)
	result, err := pipeline.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Shortened {
		t.Fatal("expected shortening")
	}
	if engine.speedCalls != 1 {
		t.Fatalf("expected one transcode, got %d", engine.speedCalls)
	}
	if math.Abs(engine.lastSpeedReq.VideoRate-0.9) > 1e-9 {
		t.Fatalf("unexpected video rate: %v", engine.lastSpeedReq.VideoRate)
	}
	if !engine.lastSpeedReq.IncludeAudio || len(engine.lastSpeedReq.AudioTempo) != 1 {
		t.Fatalf("unexpected audio request: %+v", engine.lastSpeedReq)
	}
	assertEmptyDir(t, workDir)
}

func TestPipelineNoAudioStripsAudioStage(t *testing.T) {
	engine := &fakeEngine{}
	prober := &fakeProber{info: ffprobe.Info{Duration: 900, HasAudio: false}}
	pipeline := NewPipeline(engine, prober, logging.NewNop())

	req, workDir := newTestRequest(t, 180)
	result, err := pipeline.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.HasAudio {
		t.Fatal("result should report no audio")
	}
	if engine.lastSpeedReq.IncludeAudio || len(engine.lastSpeedReq.AudioTempo) != 0 {
		t.Fatalf("audio stage must be absent: %+v", engine.lastSpeedReq)
	}
	assertEmptyDir(t, workDir)
}

func TestPipelineEmptyItems(t *testing.T) {
	pipeline := NewPipeline(&fakeEngine{}, &fakeProber{}, logging.NewNop())
	workDir := t.TempDir()

	_, err := pipeline.Run(context.Background(), Request{
		OutputPath:    filepath.Join(workDir, "out.mp4"),
		TargetSeconds: 180,
		WorkDir:       workDir,
	})
	if !errors.Is(err, ErrNoMatchingFiles) {
		t.Fatalf("expected ErrNoMatchingFiles, got %v", err)
	}
	assertEmptyDir(t, workDir)
}

func TestPipelineConcatFailureCleansUp(t *testing.T) {
	engine := &fakeEngine{concatErr: errors.New("codec mismatch")}
	pipeline := NewPipeline(engine, &fakeProber{}, logging.NewNop())

	req, workDir := newTestRequest(t, 180)
	_, err := pipeline.Run(context.Background(), req)
	if !errors.Is(err, ErrConcat) {
		t.Fatalf("expected ErrConcat, got %v", err)
	}
	if _, statErr := os.Stat(req.OutputPath); !os.IsNotExist(statErr) {
		t.Fatal("no output should exist after concat failure")
	}
	assertEmptyDir(t, workDir)
}

func TestPipelineProbeFailure(t *testing.T) {
	engine := &fakeEngine{}
	prober := &fakeProber{err: errors.New("container reports no duration")}
	pipeline := NewPipeline(engine, prober, logging.NewNop())

	req, workDir := newTestRequest(t, 180)
	_, err := pipeline.Run(context.Background(), req)
	if !errors.Is(err, ErrProbe) {
		t.Fatalf("expected ErrProbe, got %v", err)
	}
	assertEmptyDir(t, workDir)
}

func TestPipelineTranscodeFailureRemovesPartialOutput(t *testing.T) {
	engine := &fakeEngine{transcodeErr: errors.New("filter graph error")}
	prober := &fakeProber{info: ffprobe.Info{Duration: 500, HasAudio: true}}
	pipeline := NewPipeline(engine, prober, logging.NewNop())

	req, workDir := newTestRequest(t, 180)
	_, err := pipeline.Run(context.Background(), req)
	if !errors.Is(err, ErrTranscode) {
		t.Fatalf("expected ErrTranscode, got %v", err)
	}
	if _, statErr := os.Stat(req.OutputPath); !os.IsNotExist(statErr) {
		t.Fatal("partial output must be removed after transcode failure")
	}
	assertEmptyDir(t, workDir)
}

func TestBuildTranscodeRequestCopiesChain(t *testing.T) {
	plan := SpeedPlan{VideoRate: 0.36, AudioTempoChain: []float64{2, 1.39}}
	req := BuildTranscodeRequest(plan, true)
	req.AudioTempo[0] = 99
	if plan.AudioTempoChain[0] != 2 {
		t.Fatal("request must not alias the plan's chain")
	}
}
