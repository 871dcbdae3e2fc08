package models_test

import (
	"testing"

	"github.com/modu-ai/sniglet/pkg/models"
)

func TestLabelConstants(t *testing.T) {
	tests := []struct {
		name     string
		label    models.Label
		expected string
	}{
		{"LabelValid", models.LabelValid, "valid"},
		{"LabelInvalid", models.LabelInvalid, "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.label) != tt.expected {
				t.Errorf("got %q, want %q", tt.label, tt.expected)
			}
		})
	}
}

func TestLabelIsValid(t *testing.T) {
	tests := []struct {
		name  string
		label models.Label
		valid bool
	}{
		{"valid is valid", models.LabelValid, true},
		{"invalid is valid", models.LabelInvalid, true},
		{"empty is invalid", models.Label(""), false},
		{"Valid uppercase is invalid", models.Label("Valid"), false},
		{"unknown is invalid", models.Label("maybe"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.label.IsValid(); got != tt.valid {
				t.Errorf("Label(%q).IsValid() = %v, want %v", tt.label, got, tt.valid)
			}
		})
	}
}

func TestEntryLen(t *testing.T) {
	e := models.Entry{Text: "sniglet", Label: models.LabelValid}
	if e.Len() != 7 {
		t.Errorf("Entry.Len() = %d, want 7", e.Len())
	}
}
