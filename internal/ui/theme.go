// Package ui renders terminal feedback for the dataset builder: a spinner
// while word lists are read, a progress bar while CSV files are written and
// a summary card once the run completes. Every component has a plain-text
// fallback for headless runs.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors holds the palette used by interactive components.
type Colors struct {
	Primary   string
	Secondary string
	Success   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
}

// Theme configures colours for every UI component.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme returns the default theme. NO_COLOR in the environment disables
// colour output.
func NewTheme() *Theme {
	return &Theme{
		Colors: Colors{
			Primary:   "#DA7756",
			Secondary: "#F4C095",
			Success:   lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"},
			Border:    lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"},
			Muted:     lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		},
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}
