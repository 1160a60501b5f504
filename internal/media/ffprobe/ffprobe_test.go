package ffprobe

import (
	"encoding/json"
	"testing"
)

const sampleOutput = `{
  "streams": [
    {"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1280, "height": 720, "duration": "12.480000"},
    {"index": 1, "codec_name": "aac", "codec_type": "audio", "channels": 2, "duration": "12.500000"}
  ],
  "format": {"filename": "clip.mp4", "duration": "12.512000", "format_name": "mov,mp4,m4a"}
}`

func parseSample(t *testing.T) Result {
	t.Helper()
	var result Result
	if err := json.Unmarshal([]byte(sampleOutput), &result); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	return result
}

func TestDurationSeconds(t *testing.T) {
	result := parseSample(t)
	if got := result.DurationSeconds(); got != 12.512 {
		t.Errorf("duration = %v, want 12.512", got)
	}

	result.Format.Duration = ""
	if got := result.DurationSeconds(); got != 12.5 {
		t.Errorf("stream fallback duration = %v, want 12.5", got)
	}
}

func TestVideoDimensions(t *testing.T) {
	result := parseSample(t)
	w, h, ok := result.VideoDimensions()
	if !ok || w != 1280 || h != 720 {
		t.Errorf("dimensions = %dx%d ok=%v", w, h, ok)
	}
}

func TestHasAudio(t *testing.T) {
	result := parseSample(t)
	if !result.HasAudio() {
		t.Error("expected audio stream")
	}
	result.Streams = result.Streams[:1]
	if result.HasAudio() {
		t.Error("video-only container reported audio")
	}
}
