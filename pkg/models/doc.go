// Package models provides shared data models and types for the sniglet
// dataset builder.
//
// # Labels
//
// Every entry in a dataset carries one of two labels:
//   - valid: an admissible dictionary word
//   - invalid: a random string with no linguistic structure
//
// Use [Label] and its constants:
//
//	l := models.LabelValid
//	if l.IsValid() {
//	    fmt.Println("label:", l)
//	}
//
// # Configuration Types
//
// The package provides the structured configuration sections:
//   - [DatasetConfig]: target length, split ratio, filler and output layout
//   - [SystemConfig]: logging settings
package models
