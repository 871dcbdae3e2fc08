package config

import (
	"github.com/modu-ai/sniglet/internal/defs"
	"github.com/modu-ai/sniglet/pkg/models"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultConfigFile = defs.ConfigYAML

	DefaultLimit              = 0
	DefaultOutputDir          = defs.OutputDir
	DefaultMinWordLength      = 3
	DefaultTrainRatio         = 0.8
	DefaultFiller             = "*"
	DefaultShuffleMin         = 25
	DefaultShuffleMax         = 50
	DefaultLabelColumn        = "Valid"
	DefaultPredictLabelColumn = "prediction"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Dataset: NewDefaultDatasetConfig(),
		System:  NewDefaultSystemConfig(),
	}
}

// NewDefaultDatasetConfig returns a DatasetConfig with default values.
// A zero seed means the run is seeded randomly.
func NewDefaultDatasetConfig() models.DatasetConfig {
	return models.DatasetConfig{
		Limit:              DefaultLimit,
		OutputDir:          DefaultOutputDir,
		MinWordLength:      DefaultMinWordLength,
		TrainRatio:         DefaultTrainRatio,
		Filler:             DefaultFiller,
		ShuffleMin:         DefaultShuffleMin,
		ShuffleMax:         DefaultShuffleMax,
		LabelColumn:        DefaultLabelColumn,
		PredictLabelColumn: DefaultPredictLabelColumn,
	}
}

// NewDefaultSystemConfig returns a SystemConfig with default values.
func NewDefaultSystemConfig() models.SystemConfig {
	return models.SystemConfig{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}
