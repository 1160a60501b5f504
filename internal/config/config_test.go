package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[groq]
api_key = "gsk_test"
`)
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved == "" {
		t.Errorf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Groq.TranscriptionModel != "whisper-large-v3" {
		t.Errorf("transcription model = %q", cfg.Groq.TranscriptionModel)
	}
	if cfg.Languages.Target != "he" {
		t.Errorf("target language = %q", cfg.Languages.Target)
	}
	if cfg.Clip.MaxSeconds != 300 {
		t.Errorf("clip max = %v", cfg.Clip.MaxSeconds)
	}
	if len(cfg.Subtitles.FontPaths) == 0 {
		t.Error("font paths empty after defaulting")
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Errorf("output dir not expanded: %q", cfg.Paths.OutputDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[groq]
api_key = "gsk_test"
translation_model = "llama-3.3-70b-versatile"

[languages]
target = "AR"

[subtitles]
stroke_width = 4

[logging]
format = "json"
level = "debug"
`)
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Groq.TranslationModel != "llama-3.3-70b-versatile" {
		t.Errorf("translation model = %q", cfg.Groq.TranslationModel)
	}
	if cfg.Languages.Target != "ar" {
		t.Errorf("target not lowercased: %q", cfg.Languages.Target)
	}
	if cfg.Subtitles.StrokeWidth != 4 {
		t.Errorf("stroke width = %d", cfg.Subtitles.StrokeWidth)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadRejectsMissingKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	path := writeConfig(t, "[groq]\napi_key = \"\"\n")
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "groq.api_key") {
		t.Errorf("expected api key error, got %v", err)
	}
}

func TestLoadFallsBackToEnvKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_env")
	cfg, _, _, err := Load(writeConfig(t, "[groq]\napi_key = \"\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Groq.APIKey != "gsk_env" {
		t.Errorf("api key = %q", cfg.Groq.APIKey)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad language": "[groq]\napi_key = \"k\"\n[languages]\ntarget = \"!!\"\n",
		"bad format":   "[groq]\napi_key = \"k\"\n[logging]\nformat = \"xml\"\n",
		"bad level":    "[groq]\napi_key = \"k\"\n[logging]\nlevel = \"verbose\"\n",
	}
	for name, content := range cases {
		if _, _, _, err := Load(writeConfig(t, content)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	missing := filepath.Join(t.TempDir(), "nope.toml")
	_, resolved, exists, err := Load(missing)
	if exists {
		t.Error("missing file reported as existing")
	}
	// Defaults alone fail validation: the API key is required.
	if err == nil {
		t.Error("expected validation error without api key")
	}
	_ = resolved
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := writeConfig(t, "anything")
	if err := WriteSample(path); err == nil {
		t.Error("expected refusal to overwrite")
	}

	fresh := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := WriteSample(fresh); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	data, err := os.ReadFile(fresh)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[groq]") {
		t.Error("sample missing groq section")
	}
}
