package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "https://emp-rating-backend.onrender.com", cfg.Backend.BaseURL)
	assert.NotEmpty(t, cfg.Backend.AuthToken)
	assert.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "drafts.db", cfg.Drafts.Filename)
	assert.Equal(t, 10*time.Second, cfg.Drafts.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Drafts.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)

	assert.NoError(t, cfg.Validate())
}

func TestConfig_GetDraftsPath(t *testing.T) {
	cfg := NewConfig()
	cfg.Drafts.Dir = "/tmp/te-test"
	cfg.Drafts.Filename = "drafts.db"

	assert.Equal(t, filepath.Join("/tmp/te-test", "drafts.db"), cfg.GetDraftsPath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TE_BACKEND_BASE_URL", "http://localhost:9090")
	t.Setenv("TE_BACKEND_AUTH_TOKEN", "test-token")
	t.Setenv("TE_BACKEND_REQUEST_TIMEOUT", "5s")
	t.Setenv("TE_SESSION_DIR", "/tmp/te-session")
	t.Setenv("TE_DRAFTS_FILENAME", "other.db")
	t.Setenv("TE_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "http://localhost:9090", cfg.Backend.BaseURL)
	assert.Equal(t, "test-token", cfg.Backend.AuthToken)
	assert.Equal(t, 5*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "/tmp/te-session", cfg.Session.Dir)
	assert.Equal(t, "other.db", cfg.Drafts.Filename)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_IgnoresBadValues(t *testing.T) {
	t.Setenv("TE_BACKEND_REQUEST_TIMEOUT", "not-a-duration")
	t.Setenv("TE_APP_VERBOSE", "not-a-bool")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty base URL",
			mutate:  func(c *Config) { c.Backend.BaseURL = "" },
			wantErr: "backend.base_url",
		},
		{
			name:    "empty auth token",
			mutate:  func(c *Config) { c.Backend.AuthToken = "" },
			wantErr: "backend.auth_token",
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *Config) { c.Backend.RequestTimeout = 0 },
			wantErr: "backend.request_timeout",
		},
		{
			name:    "empty session dir",
			mutate:  func(c *Config) { c.Session.Dir = "" },
			wantErr: "session.dir",
		},
		{
			name:    "empty drafts filename",
			mutate:  func(c *Config) { c.Drafts.Filename = "" },
			wantErr: "drafts.filename",
		},
		{
			name:    "narrow table",
			mutate:  func(c *Config) { c.Display.TableMaxWidth = 5 },
			wantErr: "display.table_max_width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	baseURL := "http://localhost:8081"
	verbose := true
	timeout := 2 * time.Second

	loader := NewLoader()
	cfg, err := loader.LoadWithOverrides(&ConfigOverrides{
		BaseURL:        &baseURL,
		Verbose:        &verbose,
		RequestTimeout: &timeout,
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8081", cfg.Backend.BaseURL)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, 2*time.Second, cfg.Backend.RequestTimeout)
}

func TestLoader_LoadWithOverrides_RevalidatesAfterOverride(t *testing.T) {
	empty := ""

	loader := NewLoader()
	_, err := loader.LoadWithOverrides(&ConfigOverrides{BaseURL: &empty})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend.base_url")
}
