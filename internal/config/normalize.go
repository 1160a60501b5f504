package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGroq()
	c.normalizeLanguages()
	if err := c.normalizeSubtitles(); err != nil {
		return err
	}
	c.normalizeTools()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = defaultWorkDir
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeGroq() {
	c.Groq.APIKey = strings.TrimSpace(c.Groq.APIKey)
	if c.Groq.APIKey == "" {
		c.Groq.APIKey = strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	}
	c.Groq.BaseURL = strings.TrimRight(strings.TrimSpace(c.Groq.BaseURL), "/")
	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = defaultGroqBaseURL
	}
	if strings.TrimSpace(c.Groq.TranscriptionModel) == "" {
		c.Groq.TranscriptionModel = defaultTranscriptionModel
	}
	if strings.TrimSpace(c.Groq.TranslationModel) == "" {
		c.Groq.TranslationModel = defaultTranslationModel
	}
}

func (c *Config) normalizeLanguages() {
	c.Languages.Source = strings.ToLower(strings.TrimSpace(c.Languages.Source))
	c.Languages.Target = strings.ToLower(strings.TrimSpace(c.Languages.Target))
	if c.Languages.Source == "" {
		c.Languages.Source = defaultSourceLanguage
	}
	if c.Languages.Target == "" {
		c.Languages.Target = defaultTargetLanguage
	}
}

func (c *Config) normalizeSubtitles() error {
	paths := make([]string, 0, len(c.Subtitles.FontPaths))
	for _, path := range c.Subtitles.FontPaths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		expanded, err := expandPath(path)
		if err != nil {
			return fmt.Errorf("subtitles.font_paths: %w", err)
		}
		paths = append(paths, expanded)
	}
	if len(paths) == 0 {
		for _, path := range defaultFontPaths {
			expanded, err := expandPath(path)
			if err != nil {
				return fmt.Errorf("subtitles.font_paths: %w", err)
			}
			paths = append(paths, expanded)
		}
	}
	c.Subtitles.FontPaths = paths

	if c.Subtitles.FontSize <= 0 {
		c.Subtitles.FontSize = defaultFontSize
	}
	if c.Subtitles.MaxWidthRatio <= 0 || c.Subtitles.MaxWidthRatio > 1 {
		c.Subtitles.MaxWidthRatio = defaultMaxWidthRatio
	}
	if c.Subtitles.HPadding < 0 {
		c.Subtitles.HPadding = defaultHPadding
	}
	if c.Subtitles.VPadding < 0 {
		c.Subtitles.VPadding = defaultVPadding
	}
	if c.Subtitles.StrokeWidth < 0 {
		c.Subtitles.StrokeWidth = defaultStrokeWidth
	}
	if c.Subtitles.BottomMargin < 0 {
		c.Subtitles.BottomMargin = defaultBottomMargin
	}
	return nil
}

func (c *Config) normalizeTools() {
	if strings.TrimSpace(c.Tools.FFmpeg) == "" {
		c.Tools.FFmpeg = defaultFFmpegBinary
	}
	if strings.TrimSpace(c.Tools.FFprobe) == "" {
		c.Tools.FFprobe = defaultFFprobeBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
