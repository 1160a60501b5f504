package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/font"

	"subweave/internal/config"
	"subweave/internal/language"
	"subweave/internal/layout"
	"subweave/internal/media/ffmpeg"
	"subweave/internal/media/ffprobe"
	"subweave/internal/reconcile"
	"subweave/internal/render"
	"subweave/internal/segment"
	"subweave/internal/services"
	"subweave/internal/services/groq"
	"subweave/internal/textutil"
)

// OutputMode selects what the compositor receives.
type OutputMode int

const (
	// OutputSRT burns a generated subtitle description file into the video.
	OutputSRT OutputMode = iota
	// OutputOverlay composites positioned raster panels instead.
	OutputOverlay
)

// Transcriber produces a transcript for an extracted audio file.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, sourceLang string) (groq.Transcript, error)
}

// Translator produces translations, whole-text or segment-aligned.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
	TranslateSegments(ctx context.Context, entries []string, targetLanguage string) ([]string, error)
}

// Collaborators are the external handles a Runner needs. They are passed in
// explicitly so the engine stays side-effect free and testable; nothing here
// is a process-wide singleton.
type Collaborators struct {
	Transcriber Transcriber
	Translator  Translator
	// Metrics measures text for wrapping; FontresFace satisfies it.
	Metrics layout.Metrics
	// DrawFace rasterizes overlay panels. Only required for OutputOverlay.
	DrawFace font.Face
}

// Runner drives a clip through the full pipeline: probe, extract, transcribe,
// translate, reconcile, lay out, and composite.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	collab Collaborators
	target language.Info
	source language.Info

	// exec hooks, replaced in tests
	probe        func(ctx context.Context, binary, path string) (ffprobe.Result, error)
	extractAudio func(ctx context.Context, binary, source, dest string) error
	burnIn       func(ctx context.Context, binary, video, subtitlePath, dest string, style ffmpeg.BurnStyle, maxSeconds float64) error
	composite    func(ctx context.Context, binary, video string, overlays []render.Overlay, dest string, maxSeconds float64) error
}

// New builds a Runner from configuration and collaborator handles.
func New(cfg *config.Config, logger *slog.Logger, collab Collaborators) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("pipeline: nil config")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if collab.Transcriber == nil || collab.Translator == nil {
		return nil, errors.New("pipeline: transcriber and translator are required")
	}
	if collab.Metrics == nil {
		return nil, errors.New("pipeline: glyph metrics are required")
	}
	source, err := language.Parse(cfg.Languages.Source)
	if err != nil {
		return nil, err
	}
	target, err := language.Parse(cfg.Languages.Target)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:          cfg,
		logger:       logger,
		collab:       collab,
		source:       source,
		target:       target,
		probe:        ffprobe.Inspect,
		extractAudio: ffmpeg.ExtractAudio,
		burnIn:       ffmpeg.BurnIn,
		composite:    ffmpeg.CompositeOverlays,
	}, nil
}

// Prepared is the engine-side result before compositing: reconciled segments
// with original timings, plus the probe facts the renderer needs.
type Prepared struct {
	JobID        string
	Segments     []segment.Segment
	SourceText   string
	Duration     float64
	CanvasWidth  int
	CanvasHeight int
	// Degraded is set when the whole-text heuristic (or chunk repetition)
	// had to stand in for a segment-aligned translation.
	Degraded bool
}

// Result describes a finished render.
type Result struct {
	Prepared
	OutputPath string
	SRTPath    string
}

// Prepare runs every stage up to and including reconciliation.
func (r *Runner) Prepare(ctx context.Context, video string) (Prepared, error) {
	job := uuid.NewString()[:8]
	logger := r.logger.With("job", job)
	prepared := Prepared{JobID: job}

	probed, err := r.probe(ctx, r.cfg.Tools.FFprobe, video)
	if err != nil {
		return prepared, services.Wrap(services.ErrExternalTool, "probe", "inspect", "", err)
	}
	duration := probed.DurationSeconds()
	if duration <= 0 {
		return prepared, services.Wrap(services.ErrValidation, "probe", "duration", "container reports no duration", nil)
	}
	if max := r.cfg.Clip.MaxSeconds; max > 0 && duration > max {
		return prepared, services.Wrap(services.ErrValidation, "probe", "duration",
			fmt.Sprintf("clip is %.1fs, limit is %.0fs", duration, max), nil)
	}
	if !probed.HasAudio() {
		return prepared, services.Wrap(services.ErrValidation, "probe", "streams", "no audio stream", nil)
	}
	prepared.Duration = duration
	prepared.CanvasWidth, prepared.CanvasHeight = 1280, 720
	if w, h, ok := probed.VideoDimensions(); ok {
		prepared.CanvasWidth, prepared.CanvasHeight = w, h
	}
	logger.Info("clip probed", "stage", "probe", "seconds", duration,
		"canvas", fmt.Sprintf("%dx%d", prepared.CanvasWidth, prepared.CanvasHeight))

	if err := os.MkdirAll(r.cfg.Paths.WorkDir, 0o755); err != nil {
		return prepared, fmt.Errorf("ensure work dir: %w", err)
	}
	audioPath := filepath.Join(r.cfg.Paths.WorkDir, job+".ogg")
	if err := r.extractAudio(ctx, r.cfg.Tools.FFmpeg, video, audioPath); err != nil {
		return prepared, services.Wrap(services.ErrExternalTool, "extract", "audio", "", err)
	}
	defer os.Remove(audioPath)
	logger.Info("audio extracted", "stage", "extract", "path", audioPath)

	transcript, err := r.collab.Transcriber.Transcribe(ctx, audioPath, r.source.Code())
	if err != nil {
		return prepared, services.Wrap(services.ErrExternalTool, "transcribe", "request", "", err)
	}
	if strings.TrimSpace(transcript.Text) == "" {
		return prepared, reconcile.ErrEmptyTranscript
	}
	prepared.SourceText = transcript.Text
	logger.Info("transcript received", "stage", "transcribe",
		"segments", len(transcript.Segments), "excerpt", textutil.Truncate(transcript.Text, 80))

	segments, degraded, err := r.translate(ctx, logger, transcript, duration)
	if err != nil {
		return prepared, err
	}
	prepared.Segments = segments
	prepared.Degraded = degraded
	logger.Info("translation reconciled", "stage", "translate",
		"segments", len(segments), "degraded", degraded)
	return prepared, nil
}

// translate obtains a translation and reconciles it onto the transcript
// timing. Segment-aligned translation is the preferred contract; whole-text
// is the logged degraded mode, and chunk repetition inside Apply is flagged
// the same way.
func (r *Runner) translate(ctx context.Context, logger *slog.Logger, transcript groq.Transcript, duration float64) ([]segment.Segment, bool, error) {
	if len(transcript.Segments) == 0 {
		translated, err := r.collab.Translator.Translate(ctx, transcript.Text, r.target.Name)
		if err != nil {
			return nil, false, services.Wrap(services.ErrExternalTool, "translate", "whole-text", "", err)
		}
		logger.Warn("no segment timing from transcription, spanning whole clip", "stage", "translate")
		segments, err := reconcile.WholeClip(duration, translated)
		if err != nil {
			return nil, false, err
		}
		return segments, true, nil
	}

	if err := segment.Validate(transcript.Segments); err != nil {
		return nil, false, services.Wrap(services.ErrValidation, "translate", "segments", "", err)
	}

	entries := make([]string, len(transcript.Segments))
	for i, seg := range transcript.Segments {
		entries[i] = seg.Text
	}

	translated, err := r.collab.Translator.TranslateSegments(ctx, entries, r.target.Name)
	if err == nil {
		result, applyErr := reconcile.Apply(transcript.Segments, reconcile.Segmented(translated))
		if applyErr == nil {
			return result.Segments, result.Degraded, nil
		}
		var mismatch *reconcile.CountMismatchError
		if !errors.As(applyErr, &mismatch) {
			return nil, false, applyErr
		}
		logger.Warn("segment-aligned translation count mismatch",
			"stage", "translate", "expected", mismatch.Expected, "got", mismatch.Got)
	} else {
		logger.Warn("segment-aligned translation unavailable", "stage", "translate", "error", err)
	}

	// Degraded mode: one whole-text translation split across the original
	// timings by sentence heuristics.
	translatedText, err := r.collab.Translator.Translate(ctx, transcript.Text, r.target.Name)
	if err != nil {
		return nil, false, services.Wrap(services.ErrExternalTool, "translate", "whole-text", "", err)
	}
	result, err := reconcile.Apply(transcript.Segments, reconcile.FullText(translatedText))
	if err != nil {
		return nil, false, err
	}
	return result.Segments, true, nil
}

// Layout wraps and composes every prepared segment into subtitle blocks.
func (r *Runner) Layout(prepared Prepared) ([]render.Block, render.Options, error) {
	opts := render.Defaults()
	opts.CanvasWidth = prepared.CanvasWidth
	opts.CanvasHeight = prepared.CanvasHeight
	opts.HPad = r.cfg.Subtitles.HPadding
	opts.VPad = r.cfg.Subtitles.VPadding
	opts.StrokeWidth = r.cfg.Subtitles.StrokeWidth
	opts.BottomMargin = r.cfg.Subtitles.BottomMargin

	maxWidth := int(float64(prepared.CanvasWidth)*r.cfg.Subtitles.MaxWidthRatio) - 2*opts.HPad
	if maxWidth <= 0 {
		return nil, opts, fmt.Errorf("layout: canvas width %d leaves no room for text", prepared.CanvasWidth)
	}

	blocks := make([]render.Block, 0, len(prepared.Segments))
	for i, seg := range prepared.Segments {
		lines, err := layout.Wrap(seg.Text, r.collab.Metrics, maxWidth, opts.StrokeWidth)
		if err != nil {
			return nil, opts, fmt.Errorf("layout segment %d: %w", i, err)
		}
		for _, line := range lines {
			if line.Overflow {
				r.logger.Warn("word wider than panel, emitting oversized line",
					"stage", "layout", "segment", i, "width", line.Width, "max", maxWidth)
			}
		}
		blocks = append(blocks, render.Compose(seg, lines, opts))
	}
	return blocks, opts, nil
}
