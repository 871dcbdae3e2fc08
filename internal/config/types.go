package config

import (
	"github.com/modu-ai/sniglet/pkg/models"
)

// Config is the root configuration aggregate containing all sections.
type Config struct {
	Dataset models.DatasetConfig `yaml:"dataset"`
	System  models.SystemConfig  `yaml:"system"`
}

// FillerRune returns the configured filler as a rune. An empty or invalid
// filler falls back to DefaultFiller.
func (c *Config) FillerRune() rune {
	for _, r := range c.Dataset.Filler {
		return r
	}
	return []rune(DefaultFiller)[0]
}

// validLogLevels lists recognized log levels.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// validLogFormats lists recognized log formats.
var validLogFormats = []string{"text", "json"}
