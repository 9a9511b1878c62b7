package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task entry client
type Config struct {
	Backend     BackendConfig
	Session     SessionConfig
	Drafts      DraftsConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// BackendConfig holds settings for the remote rating backend
type BackendConfig struct {
	BaseURL        string        `env:"TE_BACKEND_BASE_URL"`
	AuthToken      string        `env:"TE_BACKEND_AUTH_TOKEN"`
	RequestTimeout time.Duration `env:"TE_BACKEND_REQUEST_TIMEOUT"`
	SignInURL      string        `env:"TE_BACKEND_SIGNIN_URL"`
}

// SessionConfig holds settings for the persisted session store
type SessionConfig struct {
	Dir string `env:"TE_SESSION_DIR"`
}

// DraftsConfig holds settings for the local draft database
type DraftsConfig struct {
	Dir            string        `env:"TE_DRAFTS_DIR"`
	Filename       string        `env:"TE_DRAFTS_FILENAME"`
	QueryTimeout   time.Duration `env:"TE_DRAFTS_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TE_DRAFTS_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TE_DRAFTS_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat    string `env:"TE_DISPLAY_DATE_FORMAT"`
	TableMaxWidth int    `env:"TE_DISPLAY_TABLE_MAX_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TE_APP_TIMEOUT"`
	Verbose bool          `env:"TE_APP_VERBOSE"`
}

// Default deployment target; the backend is a single fixed installation
// reachable with a shared token.
const (
	defaultBaseURL   = "https://emp-rating-backend.onrender.com"
	defaultAuthToken = "d44d4aeb-be2d-4dff-ba36-2526d7e19722"
	defaultSignInURL = "https://emp-rating-login.vercel.app/"
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".te")

	return &Config{
		Backend: BackendConfig{
			BaseURL:        defaultBaseURL,
			AuthToken:      defaultAuthToken,
			RequestTimeout: 30 * time.Second,
			SignInURL:      defaultSignInURL,
		},
		Session: SessionConfig{
			Dir: filepath.Join(defaultDir, "session"),
		},
		Drafts: DraftsConfig{
			Dir:            defaultDir,
			Filename:       "drafts.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			DateFormat:    "Mon, Jan 2",
			TableMaxWidth: 80,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDraftsPath returns the full path to the draft database file
func (c *Config) GetDraftsPath() string {
	return filepath.Join(c.Drafts.Dir, c.Drafts.Filename)
}

// GetQueryTimeout returns the draft database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Drafts.QueryTimeout
}

// GetWriteTimeout returns the draft database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Drafts.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Backend configuration
	if url := os.Getenv("TE_BACKEND_BASE_URL"); url != "" {
		c.Backend.BaseURL = url
	}
	if token := os.Getenv("TE_BACKEND_AUTH_TOKEN"); token != "" {
		c.Backend.AuthToken = token
	}
	if timeout := os.Getenv("TE_BACKEND_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Backend.RequestTimeout = d
		}
	}
	if url := os.Getenv("TE_BACKEND_SIGNIN_URL"); url != "" {
		c.Backend.SignInURL = url
	}

	// Session configuration
	if dir := os.Getenv("TE_SESSION_DIR"); dir != "" {
		c.Session.Dir = dir
	}

	// Drafts configuration
	if dir := os.Getenv("TE_DRAFTS_DIR"); dir != "" {
		c.Drafts.Dir = dir
	}
	if filename := os.Getenv("TE_DRAFTS_FILENAME"); filename != "" {
		c.Drafts.Filename = filename
	}
	if timeout := os.Getenv("TE_DRAFTS_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Drafts.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TE_DRAFTS_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Drafts.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TE_DRAFTS_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Drafts.DirPermissions = uint32(p)
		}
	}

	// Display configuration
	if format := os.Getenv("TE_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if width := os.Getenv("TE_DISPLAY_TABLE_MAX_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Display.TableMaxWidth = w
		}
	}

	// Application configuration
	if timeout := os.Getenv("TE_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TE_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate backend configuration
	if c.Backend.BaseURL == "" {
		return &ConfigError{Field: "backend.base_url", Message: "backend base URL cannot be empty"}
	}
	if c.Backend.AuthToken == "" {
		return &ConfigError{Field: "backend.auth_token", Message: "backend auth token cannot be empty"}
	}
	if c.Backend.RequestTimeout <= 0 {
		return &ConfigError{Field: "backend.request_timeout", Message: "request timeout must be positive"}
	}

	// Validate session configuration
	if c.Session.Dir == "" {
		return &ConfigError{Field: "session.dir", Message: "session directory cannot be empty"}
	}

	// Validate drafts configuration
	if c.Drafts.Dir == "" {
		return &ConfigError{Field: "drafts.dir", Message: "drafts directory cannot be empty"}
	}
	if c.Drafts.Filename == "" {
		return &ConfigError{Field: "drafts.filename", Message: "drafts filename cannot be empty"}
	}
	if c.Drafts.QueryTimeout <= 0 {
		return &ConfigError{Field: "drafts.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Drafts.WriteTimeout <= 0 {
		return &ConfigError{Field: "drafts.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.TableMaxWidth < 20 {
		return &ConfigError{Field: "display.table_max_width", Message: "table width must be at least 20"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
