package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/modu-ai/sniglet/pkg/models"
)

// Validate checks the configuration for correctness and reports every
// problem at once.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateDatasetConfig(&cfg.Dataset)...)
	errs = append(errs, validateSystemConfig(&cfg.System)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateDatasetConfig validates dataset value ranges.
func validateDatasetConfig(d *models.DatasetConfig) []ValidationError {
	var errs []ValidationError

	if d.Limit < 0 {
		errs = append(errs, ValidationError{
			Field:   "dataset.limit",
			Message: "must be zero (use mean length) or positive",
			Value:   d.Limit,
			Wrapped: ErrInvalidConfig,
		})
	}

	if strings.TrimSpace(d.OutputDir) == "" {
		errs = append(errs, ValidationError{
			Field:   "dataset.output_dir",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	}

	if d.MinWordLength < 1 {
		errs = append(errs, ValidationError{
			Field:   "dataset.min_word_length",
			Message: "must be at least 1",
			Value:   d.MinWordLength,
			Wrapped: ErrInvalidConfig,
		})
	}

	if d.TrainRatio <= 0 || d.TrainRatio >= 1 {
		errs = append(errs, ValidationError{
			Field:   "dataset.train_ratio",
			Message: "must be between 0 and 1 (exclusive)",
			Value:   d.TrainRatio,
			Wrapped: ErrInvalidConfig,
		})
	}

	if utf8.RuneCountInString(d.Filler) != 1 {
		errs = append(errs, ValidationError{
			Field:   "dataset.filler",
			Message: "must be exactly one character",
			Value:   d.Filler,
			Wrapped: ErrInvalidConfig,
		})
	}

	if d.ShuffleMin < 1 {
		errs = append(errs, ValidationError{
			Field:   "dataset.shuffle_min",
			Message: "must be at least 1",
			Value:   d.ShuffleMin,
			Wrapped: ErrInvalidConfig,
		})
	}
	if d.ShuffleMax <= d.ShuffleMin {
		errs = append(errs, ValidationError{
			Field:   "dataset.shuffle_max",
			Message: fmt.Sprintf("must be greater than shuffle_min (%d)", d.ShuffleMin),
			Value:   d.ShuffleMax,
			Wrapped: ErrInvalidConfig,
		})
	}

	if d.LabelColumn == "" {
		errs = append(errs, ValidationError{
			Field:   "dataset.label_column",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	}
	if d.PredictLabelColumn == "" {
		errs = append(errs, ValidationError{
			Field:   "dataset.predict_label_column",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

// validateSystemConfig checks logging settings.
func validateSystemConfig(s *models.SystemConfig) []ValidationError {
	var errs []ValidationError

	if !slices.Contains(validLogLevels, s.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "system.log_level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   s.LogLevel,
			Wrapped: ErrInvalidConfig,
		})
	}
	if !slices.Contains(validLogFormats, s.LogFormat) {
		errs = append(errs, ValidationError{
			Field:   "system.log_format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogFormats, ", ")),
			Value:   s.LogFormat,
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}
