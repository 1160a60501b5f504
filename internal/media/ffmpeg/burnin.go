package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// BurnStyle carries the force_style parameters for the subtitles filter.
type BurnStyle struct {
	FontName  string
	FontSize  int
	Alignment int
	Outline   int
	Shadow    int
	MarginV   int
}

// DefaultBurnStyle matches the raster renderer's look: bottom-center
// placement, outline 2, fixed bottom margin.
func DefaultBurnStyle(fontName string) BurnStyle {
	return BurnStyle{
		FontName:  fontName,
		FontSize:  28,
		Alignment: 2,
		Outline:   2,
		Shadow:    1,
		MarginV:   40,
	}
}

func (s BurnStyle) forceStyle() string {
	parts := []string{
		fmt.Sprintf("FontSize=%d", s.FontSize),
		fmt.Sprintf("Alignment=%d", s.Alignment),
		fmt.Sprintf("Outline=%d", s.Outline),
		fmt.Sprintf("Shadow=%d", s.Shadow),
		fmt.Sprintf("MarginV=%d", s.MarginV),
	}
	if name := strings.TrimSpace(s.FontName); name != "" {
		parts = append([]string{"Fontname=" + name}, parts...)
	}
	return strings.Join(parts, ",")
}

// BurnIn re-encodes the video with the SRT file burned in through the
// subtitles filter. The audio stream is copied untouched. maxSeconds, when
// positive, hard-caps the output duration; the engine itself never enforces
// time limits, callers do.
func BurnIn(ctx context.Context, binary, video, subtitlePath, dest string, style BurnStyle, maxSeconds float64) error {
	binary = resolveBinary(binary)
	filter := fmt.Sprintf("subtitles='%s':force_style='%s'", escapeFilterPath(subtitlePath), style.forceStyle())
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", video,
		"-vf", filter,
		"-c:v", "libx264",
		"-c:a", "copy",
		"-pix_fmt", "yuv420p",
		"-preset", "ultrafast",
		"-crf", "23",
	}
	if maxSeconds > 0 {
		args = append(args, "-t", fmt.Sprintf("%.3f", maxSeconds))
	}
	args = append(args, dest)
	cmd := exec.CommandContext(ctx, binary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg burn-in: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// escapeFilterPath escapes the characters the subtitles filter treats
// specially inside a quoted filename.
func escapeFilterPath(path string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
	)
	return replacer.Replace(path)
}
