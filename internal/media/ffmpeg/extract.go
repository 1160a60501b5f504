package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExtractAudio pulls the audio stream out of a video file as mono Opus at
// 64kbps, the profile the transcription service accepts.
func ExtractAudio(ctx context.Context, binary, source, dest string) error {
	binary = resolveBinary(binary)
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-c:a", "libopus",
		"-b:a", "64k",
		dest,
	}
	cmd := exec.CommandContext(ctx, binary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func resolveBinary(binary string) string {
	if binary = strings.TrimSpace(binary); binary != "" {
		return binary
	}
	return "ffmpeg"
}
