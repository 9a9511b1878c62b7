package main

import (
	"os"
	"path/filepath"

	"task-entry/internal/config"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// ConfigFactory creates configuration instances based on environment
type ConfigFactory struct {
	env Environment
}

// NewConfigFactory creates a new config factory for the given environment
func NewConfigFactory(env Environment) *ConfigFactory {
	return &ConfigFactory{env: env}
}

// CreateConfig creates a configuration based on the current environment
func (cf *ConfigFactory) CreateConfig() (*config.Config, error) {
	switch cf.env {
	case Development:
		return cf.createDevelopmentConfig()
	case Testing:
		return cf.createTestingConfig()
	case Production:
		return cf.createProductionConfig()
	default:
		return cf.createProductionConfig()
	}
}

// createDevelopmentConfig keeps all state in the working directory
func (cf *ConfigFactory) createDevelopmentConfig() (*config.Config, error) {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	cfg.Drafts.Dir = "."
	cfg.Session.Dir = filepath.Join(".", ".te-session")
	return cfg, cfg.Validate()
}

// createTestingConfig keeps drafts in memory and the session in a temp dir
func (cf *ConfigFactory) createTestingConfig() (*config.Config, error) {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	cfg.Drafts.Dir = os.TempDir()
	cfg.Drafts.Filename = "te-test.db"
	cfg.Session.Dir = filepath.Join(os.TempDir(), "te-test-session")
	return cfg, cfg.Validate()
}

// createProductionConfig uses the default locations under the home directory
func (cf *ConfigFactory) createProductionConfig() (*config.Config, error) {
	loader := config.NewLoader()
	return loader.Load()
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	env := os.Getenv("TE_ENV")
	switch env {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}
