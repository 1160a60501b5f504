package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"subweave/internal/config"
	"subweave/internal/fontres"
	"subweave/internal/language"
	"subweave/internal/logging"
	"subweave/internal/pipeline"
	"subweave/internal/services/groq"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// resolveFace walks the configured font fallback chain, verifying coverage
// against a probe string in the target script.
func (c *commandContext) resolveFace() (*fontres.Face, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	target, err := language.Parse(cfg.Languages.Target)
	if err != nil {
		return nil, err
	}
	return fontres.Resolve(cfg.Subtitles.FontPaths, fontres.Options{
		Size:  cfg.Subtitles.FontSize,
		Probe: target.Probe(),
	})
}

// buildRunner wires the full pipeline: config, logger, Groq client, and the
// resolved font face for measurement and rasterization.
func (c *commandContext) buildRunner() (*pipeline.Runner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	client, err := groq.NewClient(cfg.Groq.APIKey,
		groq.WithBaseURL(cfg.Groq.BaseURL),
		groq.WithTranscriptionModel(cfg.Groq.TranscriptionModel),
		groq.WithTranslationModel(cfg.Groq.TranslationModel),
	)
	if err != nil {
		return nil, err
	}
	face, err := c.resolveFace()
	if err != nil {
		return nil, err
	}
	drawFace, err := face.NewDrawerFace()
	if err != nil {
		return nil, err
	}
	return pipeline.New(cfg, logger, pipeline.Collaborators{
		Transcriber: client,
		Translator:  client,
		Metrics:     face,
		DrawFace:    drawFace,
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
