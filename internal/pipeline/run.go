package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"subweave/internal/media/ffmpeg"
	"subweave/internal/render"
	"subweave/internal/services"
	"subweave/internal/textutil"
)

// RunOptions selects the output shape for one invocation.
type RunOptions struct {
	Mode OutputMode
	// KeepSRT leaves the intermediate subtitle file next to the output
	// video instead of deleting it. Only meaningful for OutputSRT.
	KeepSRT bool
}

// Run processes a video end to end and writes the subtitled result into the
// configured output directory.
func (r *Runner) Run(ctx context.Context, video string, opts RunOptions) (Result, error) {
	prepared, err := r.Prepare(ctx, video)
	if err != nil {
		return Result{Prepared: prepared}, err
	}
	result := Result{Prepared: prepared}
	logger := r.logger.With("job", prepared.JobID)

	blocks, renderOpts, err := r.Layout(prepared)
	if err != nil {
		return result, err
	}

	if err := os.MkdirAll(r.cfg.Paths.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("ensure output dir: %w", err)
	}
	result.OutputPath = r.outputPath(video)

	switch opts.Mode {
	case OutputOverlay:
		if r.collab.DrawFace == nil {
			return result, services.Wrap(services.ErrConfiguration, "render", "overlay", "no draw face resolved", nil)
		}
		overlays := make([]render.Overlay, 0, len(blocks))
		for i, block := range blocks {
			overlay, err := render.RasterizeOverlay(block, r.collab.DrawFace, renderOpts)
			if err != nil {
				return result, fmt.Errorf("rasterize block %d: %w", i, err)
			}
			overlays = append(overlays, overlay)
		}
		logger.Info("compositing raster overlays", "stage", "render", "overlays", len(overlays))
		if err := r.composite(ctx, r.cfg.Tools.FFmpeg, video, overlays, result.OutputPath, r.cfg.Clip.MaxSeconds); err != nil {
			return result, services.Wrap(services.ErrExternalTool, "render", "overlay", "", err)
		}

	case OutputSRT:
		srtPath := filepath.Join(r.cfg.Paths.WorkDir, prepared.JobID+".srt")
		if opts.KeepSRT {
			srtPath = strings.TrimSuffix(result.OutputPath, filepath.Ext(result.OutputPath)) + ".srt"
		}
		if err := r.writeSRT(srtPath, blocks); err != nil {
			return result, err
		}
		if opts.KeepSRT {
			result.SRTPath = srtPath
		} else {
			defer os.Remove(srtPath)
		}
		style := ffmpeg.DefaultBurnStyle(r.cfg.Subtitles.FontName)
		style.FontSize = int(r.cfg.Subtitles.FontSize)
		style.Outline = r.cfg.Subtitles.StrokeWidth
		style.MarginV = r.cfg.Subtitles.BottomMargin
		logger.Info("burning subtitles", "stage", "render", "srt", srtPath)
		if err := r.burnIn(ctx, r.cfg.Tools.FFmpeg, video, srtPath, result.OutputPath, style, r.cfg.Clip.MaxSeconds); err != nil {
			return result, services.Wrap(services.ErrExternalTool, "render", "burn-in", "", err)
		}

	default:
		return result, errors.New("unknown output mode")
	}

	logger.Info("render complete", "stage", "render", "output", result.OutputPath)
	return result, nil
}

func (r *Runner) writeSRT(path string, blocks []render.Block) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create srt: %w", err)
	}
	defer file.Close()
	if err := render.WriteSRT(file, render.BlockSegments(blocks)); err != nil {
		return err
	}
	return file.Close()
}

func (r *Runner) outputPath(video string) string {
	base := textutil.SanitizeFileName(filepath.Base(video))
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" {
		name = "clip"
	}
	if ext == "" {
		ext = ".mp4"
	}
	return filepath.Join(r.cfg.Paths.OutputDir, fmt.Sprintf("%s_%s%s", name, r.cfg.Languages.Target, ext))
}
