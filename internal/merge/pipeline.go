package merge

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"camkit/internal/ffmpeg"
	"camkit/internal/ffprobe"
	"camkit/internal/fileutil"
	"camkit/internal/logging"
)

// Prober answers duration and stream questions about a single media item.
type Prober interface {
	Probe(ctx context.Context, path string) (ffprobe.Info, error)
}

// Engine is the slice of the media engine the pipeline drives.
type Engine interface {
	Concat(ctx context.Context, listPath, outputPath string) error
	SpeedChange(ctx context.Context, inputPath, outputPath string, req ffmpeg.SpeedRequest) error
}

// Request describes one merge run. Items is the caller-supplied discovery
// order; WorkDir hosts the intermediates (empty means the system temp dir).
type Request struct {
	Items         []string
	OutputPath    string
	TargetSeconds float64
	WorkDir       string
}

// Result reports what a completed run did.
type Result struct {
	OutputPath    string
	Inputs        int
	TotalSeconds  float64
	TargetSeconds float64
	Shortened     bool
	HasAudio      bool
	Plan          SpeedPlan
}

// Pipeline sequences concat, probe, and the optional speed change into a
// single output. Each Run is independent; the pipeline holds no state
// between invocations.
type Pipeline struct {
	engine Engine
	prober Prober
	logger *slog.Logger
}

// NewPipeline constructs a merge pipeline around the given engine and prober.
func NewPipeline(engine Engine, prober Prober, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		engine: engine,
		prober: prober,
		logger: logging.NewComponentLogger(logger, "merge"),
	}
}

// Run executes the pipeline: manifest → concat → probe → pass-through or
// speed change → finalize. Intermediates are removed on every exit path;
// on failure no output file is left behind.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.OutputPath) == "" {
		return nil, fmt.Errorf("output path required")
	}
	if req.TargetSeconds <= 0 {
		return nil, fmt.Errorf("target seconds must be positive, got %v", req.TargetSeconds)
	}

	manifest, err := BuildManifest(req.Items)
	if err != nil {
		return nil, err
	}

	listPath := fileutil.UniqueTempPath(req.WorkDir, "camkit-list", ".txt")
	concatPath := fileutil.UniqueTempPath(req.WorkDir, "camkit-concat", outputExt(req.OutputPath))
	defer p.cleanup(listPath, concatPath)

	if err := manifest.WriteFile(listPath); err != nil {
		return nil, err
	}

	p.logger.Info("concatenating clips",
		logging.Int("inputs", len(manifest.Items)),
		logging.String("output", req.OutputPath))
	if err := p.engine.Concat(ctx, listPath, concatPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConcat, err)
	}

	info, err := p.prober.Probe(ctx, concatPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProbe, err)
	}

	result := &Result{
		OutputPath:    req.OutputPath,
		Inputs:        len(manifest.Items),
		TotalSeconds:  info.Duration,
		TargetSeconds: req.TargetSeconds,
		HasAudio:      info.HasAudio,
	}

	if info.Duration <= req.TargetSeconds {
		// Pass-through: the concat result is already short enough, so it
		// becomes the output unchanged.
		p.logger.Info("within target, no shortening needed",
			logging.Float64("total_seconds", info.Duration),
			logging.Float64("target_seconds", req.TargetSeconds))
		if err := fileutil.MoveFile(concatPath, req.OutputPath); err != nil {
			return nil, fmt.Errorf("finalize output: %w", err)
		}
		return result, nil
	}

	plan, err := ComputeSpeedPlan(info.Duration, req.TargetSeconds)
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Shortened = true

	p.logger.Info("shortening to target",
		logging.Float64("total_seconds", info.Duration),
		logging.Float64("target_seconds", req.TargetSeconds),
		logging.Float64("video_rate", plan.VideoRate),
		logging.Int("tempo_stages", len(plan.AudioTempoChain)),
		logging.Bool("has_audio", info.HasAudio))

	transcodeReq := BuildTranscodeRequest(plan, info.HasAudio)
	if err := p.engine.SpeedChange(ctx, concatPath, req.OutputPath, transcodeReq); err != nil {
		if removeErr := fileutil.RemoveIfExists(req.OutputPath); removeErr != nil {
			p.logger.Warn("failed to remove partial output", logging.Error(removeErr))
		}
		return nil, fmt.Errorf("%w: %v", ErrTranscode, err)
	}
	return result, nil
}

func (p *Pipeline) cleanup(paths ...string) {
	for _, path := range paths {
		if err := fileutil.RemoveIfExists(path); err != nil {
			p.logger.Warn("failed to remove intermediate", logging.String("path", path), logging.Error(err))
		}
	}
}

func outputExt(path string) string {
	if ext := filepath.Ext(path); ext != "" {
		return ext
	}
	return ".mp4"
}
