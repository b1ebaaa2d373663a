package domain

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"
	// DefaultPerPage matches the GitHub API default page size.
	DefaultPerPage = 30
	// MaxPerPage is the largest page size GitHub accepts.
	MaxPerPage = 100
)

// Config represents the complete gitscout configuration
type Config struct {
	GitHub    GitHubConfig    `json:"github"`
	UI        UIConfig        `json:"ui"`
	Log       LogConfig       `json:"log"`
	Telemetry TelemetryConfig `json:"telemetry"`
}

// GitHubConfig holds API access settings
type GitHubConfig struct {
	Token          string `json:"token" env:"GITSCOUT_TOKEN"`
	BaseURL        string `json:"base_url" env:"GITSCOUT_BASE_URL"`
	UsersPerPage   int    `json:"users_per_page" env:"GITSCOUT_USERS_PER_PAGE"`
	ReposPerPage   int    `json:"repos_per_page" env:"GITSCOUT_REPOS_PER_PAGE"`
	TimeoutSeconds int    `json:"timeout_seconds" env:"GITSCOUT_TIMEOUT"` // 0 leaves the transport defaults
}

// UIConfig holds UI/theme settings
type UIConfig struct {
	Theme  string `json:"theme" env:"GITSCOUT_THEME"`   // Theme name (e.g., "midnight", "paper")
	Locale string `json:"locale" env:"GITSCOUT_LOCALE"` // BCP 47 tag, e.g. "en-US"
}

// LogConfig holds structured logging settings
type LogConfig struct {
	File  string `json:"file" env:"GITSCOUT_LOG_FILE"` // empty disables logging
	Level string `json:"level" env:"GITSCOUT_LOG_LEVEL"`
}

// TelemetryConfig holds tracing settings
type TelemetryConfig struct {
	OTLPEndpoint string `json:"otlp_endpoint" env:"GITSCOUT_OTEL_ENDPOINT"`
}

// NewDefaultConfig creates a new config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			BaseURL:        DefaultBaseURL,
			UsersPerPage:   DefaultPerPage,
			ReposPerPage:   DefaultPerPage,
			TimeoutSeconds: 30,
		},
		UI: UIConfig{
			Theme:  "midnight",
			Locale: "en-US",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.GitHub.BaseURL == "" {
		return fmt.Errorf("github.base_url cannot be empty")
	}
	u, err := url.Parse(c.GitHub.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("github.base_url must be an absolute URL: %q", c.GitHub.BaseURL)
	}

	if c.GitHub.UsersPerPage <= 0 || c.GitHub.UsersPerPage > MaxPerPage {
		return fmt.Errorf("github.users_per_page must be between 1 and %d", MaxPerPage)
	}
	if c.GitHub.ReposPerPage <= 0 || c.GitHub.ReposPerPage > MaxPerPage {
		return fmt.Errorf("github.repos_per_page must be between 1 and %d", MaxPerPage)
	}
	if c.GitHub.TimeoutSeconds < 0 {
		return fmt.Errorf("github.timeout_seconds cannot be negative")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}

	return nil
}

// Timeout returns the HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.GitHub.TimeoutSeconds) * time.Second
}

// HasToken reports whether requests will be authenticated.
func (c *Config) HasToken() bool {
	return c.GitHub.Token != ""
}
