package config

import (
	"errors"
	"fmt"

	"subweave/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGroq(); err != nil {
		return err
	}
	if err := c.validateLanguages(); err != nil {
		return err
	}
	if err := c.validateSubtitles(); err != nil {
		return err
	}
	if err := c.validateClip(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateGroq() error {
	if c.Groq.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/subweave/config.toml"
		}
		return fmt.Errorf("groq.api_key is required. Edit %s (create with 'subweave config init') or export GROQ_API_KEY", defaultPath)
	}
	return nil
}

func (c *Config) validateLanguages() error {
	if _, err := language.Parse(c.Languages.Source); err != nil {
		return fmt.Errorf("languages.source: %w", err)
	}
	if _, err := language.Parse(c.Languages.Target); err != nil {
		return fmt.Errorf("languages.target: %w", err)
	}
	return nil
}

func (c *Config) validateSubtitles() error {
	if len(c.Subtitles.FontPaths) == 0 {
		return errors.New("subtitles.font_paths must list at least one candidate")
	}
	return nil
}

func (c *Config) validateClip() error {
	if c.Clip.MaxSeconds < 0 {
		return errors.New("clip.max_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
