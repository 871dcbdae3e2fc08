package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes the accepted shape of the config document.
// Range rules that depend on several fields live in Validate.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "dataset": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "limit": {"type": "integer", "minimum": 0},
        "output_dir": {"type": "string", "minLength": 1},
        "min_word_length": {"type": "integer", "minimum": 1},
        "train_ratio": {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
        "filler": {"type": "string", "minLength": 1, "maxLength": 1},
        "shuffle_min": {"type": "integer", "minimum": 1},
        "shuffle_max": {"type": "integer", "minimum": 1},
        "label_column": {"type": "string", "minLength": 1},
        "predict_label_column": {"type": "string", "minLength": 1},
        "seed": {"type": "integer", "minimum": 0}
      }
    },
    "system": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "log_level": {"enum": ["debug", "info", "warn", "error"]},
        "log_format": {"enum": ["text", "json"]}
      }
    }
  }
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(configSchema))
})

// ValidateSchema checks a decoded config document against the config schema.
// Every violation is reported as a ValidationError wrapping ErrSchemaViolation.
func ValidateSchema(doc map[string]any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("evaluate config schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "(root)" {
			field = ""
		}
		// gojsonschema reports additionalProperties violations on the parent.
		if prop, ok := re.Details()["property"].(string); ok && re.Type() == "additional_property_not_allowed" {
			field = strings.TrimPrefix(field+"."+prop, ".")
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: re.Description(),
			Wrapped: ErrSchemaViolation,
		})
	}
	return &ValidationErrors{Errors: errs}
}
