// Package cli provides the Cobra command tree and dependency wiring for the
// sniglet CLI. This file defines the Dependencies struct (Composition Root)
// that wires the domain packages together.
package cli

import (
	"io"
	"log/slog"

	"github.com/modu-ai/sniglet/internal/config"
	"github.com/modu-ai/sniglet/internal/ui"
)

// Dependencies holds the services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config   *config.Loader
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Logger   *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies.
// The logger discards output until a command configures it from flags and
// the config file.
func InitDependencies() {
	deps = &Dependencies{
		Config:   config.NewLoader(),
		Theme:    ui.NewTheme(),
		Headless: ui.NewHeadlessManager(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
