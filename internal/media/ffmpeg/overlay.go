package ffmpeg

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"subweave/internal/render"
)

// CompositeOverlays burns a sequence of positioned raster overlays into the
// video: each overlay is written as a PNG input and enabled only during its
// segment's time window, then the result is re-encoded. This is the raster
// alternative to SRT burn-in, fed from the same block data.
func CompositeOverlays(ctx context.Context, binary, video string, overlays []render.Overlay, dest string, maxSeconds float64) error {
	if len(overlays) == 0 {
		return fmt.Errorf("composite overlays: nothing to composite")
	}
	binary = resolveBinary(binary)

	workDir, err := os.MkdirTemp("", "subweave-overlay-*")
	if err != nil {
		return fmt.Errorf("composite overlays: temp dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	args := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", video}
	for i, overlay := range overlays {
		path := filepath.Join(workDir, fmt.Sprintf("overlay_%04d.png", i))
		if err := writePNG(path, overlay); err != nil {
			return err
		}
		args = append(args, "-i", path)
	}

	var filter strings.Builder
	prev := "[0:v]"
	for i, overlay := range overlays {
		out := fmt.Sprintf("[v%d]", i+1)
		if i == len(overlays)-1 {
			out = "[vout]"
		}
		fmt.Fprintf(&filter, "%s[%d:v]overlay=%d:%d:enable='between(t,%.3f,%.3f)'%s;",
			prev, i+1, overlay.X, overlay.Y, overlay.Start, overlay.End, out)
		prev = fmt.Sprintf("[v%d]", i+1)
	}

	args = append(args,
		"-filter_complex", strings.TrimSuffix(filter.String(), ";"),
		"-map", "[vout]",
		"-map", "0:a?",
		"-c:v", "libx264",
		"-c:a", "copy",
		"-pix_fmt", "yuv420p",
		"-preset", "ultrafast",
		"-crf", "23",
	)
	if maxSeconds > 0 {
		args = append(args, "-t", fmt.Sprintf("%.3f", maxSeconds))
	}
	args = append(args, dest)

	cmd := exec.CommandContext(ctx, binary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg overlay: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func writePNG(path string, overlay render.Overlay) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("composite overlays: create %s: %w", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, overlay.Image); err != nil {
		return fmt.Errorf("composite overlays: encode %s: %w", path, err)
	}
	return nil
}
