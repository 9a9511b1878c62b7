package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Load from environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 3: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	// Load base configuration
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	// Apply command line overrides
	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Backend overrides
	BaseURL        *string
	AuthToken      *string
	RequestTimeout *time.Duration

	// Session overrides
	SessionDir *string

	// Drafts overrides
	DraftsDir      *string
	DraftsFilename *string

	// Display overrides
	DateFormat    *string
	TableMaxWidth *int

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Backend overrides
	if overrides.BaseURL != nil {
		config.Backend.BaseURL = *overrides.BaseURL
	}
	if overrides.AuthToken != nil {
		config.Backend.AuthToken = *overrides.AuthToken
	}
	if overrides.RequestTimeout != nil {
		config.Backend.RequestTimeout = *overrides.RequestTimeout
	}

	// Session overrides
	if overrides.SessionDir != nil {
		config.Session.Dir = *overrides.SessionDir
	}

	// Drafts overrides
	if overrides.DraftsDir != nil {
		config.Drafts.Dir = *overrides.DraftsDir
	}
	if overrides.DraftsFilename != nil {
		config.Drafts.Filename = *overrides.DraftsFilename
	}

	// Display overrides
	if overrides.DateFormat != nil {
		config.Display.DateFormat = *overrides.DateFormat
	}
	if overrides.TableMaxWidth != nil {
		config.Display.TableMaxWidth = *overrides.TableMaxWidth
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
