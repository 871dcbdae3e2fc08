package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader reads configuration from a single YAML file.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu     sync.RWMutex
	loaded bool
	path   string
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path and returns a Config with
// defaults applied for missing fields. A missing file yields the defaults;
// Loaded reports false in that case.
// The document is checked against the config schema before it is decoded,
// and the decoded values are validated.
func (l *Loader) Load(path string) (*Config, error) {
	return l.load(path, true)
}

// LoadExplicit is Load for a path the user named. A missing file is an
// error wrapping os.ErrNotExist.
func (l *Loader) LoadExplicit(path string) (*Config, error) {
	return l.load(path, false)
}

func (l *Loader) load(path string, optional bool) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loaded = false
	l.path = filepath.Clean(path)
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, ErrInvalidYAML)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := ValidateSchema(doc); err != nil {
		return nil, fmt.Errorf("check %s: %w", l.path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", l.path, ErrInvalidYAML)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate %s: %w", l.path, err)
	}

	l.loaded = true
	return cfg, nil
}

// Loaded reports whether the last Load call read a file from disk.
func (l *Loader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Path returns the path used by the last Load call.
func (l *Loader) Path() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.path
}
