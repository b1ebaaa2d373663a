package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewDefaultConfig_IsValid(t *testing.T) {
	cfg := NewDefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error = %v", err)
	}
	if cfg.GitHub.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %v, want %v", cfg.GitHub.BaseURL, DefaultBaseURL)
	}
	if cfg.GitHub.UsersPerPage != 30 {
		t.Errorf("UsersPerPage = %v, want 30", cfg.GitHub.UsersPerPage)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", cfg.Timeout())
	}
	if cfg.HasToken() {
		t.Error("HasToken() = true, want false")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{
			name:        "empty base url",
			mutate:      func(c *Config) { c.GitHub.BaseURL = "" },
			errContains: "base_url cannot be empty",
		},
		{
			name:        "relative base url",
			mutate:      func(c *Config) { c.GitHub.BaseURL = "api.github.com" },
			errContains: "absolute URL",
		},
		{
			name:        "zero users per page",
			mutate:      func(c *Config) { c.GitHub.UsersPerPage = 0 },
			errContains: "users_per_page",
		},
		{
			name:        "too many repos per page",
			mutate:      func(c *Config) { c.GitHub.ReposPerPage = 101 },
			errContains: "repos_per_page",
		},
		{
			name:        "negative timeout",
			mutate:      func(c *Config) { c.GitHub.TimeoutSeconds = -1 },
			errContains: "timeout_seconds",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.Log.Level = "verbose" },
			errContains: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.errContains)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestTheme_Validate(t *testing.T) {
	valid := Theme{
		Name: "test",
		Colors: ThemeColors{
			Primary: "#fff", Secondary: "#000000", Success: "#0f0", Warning: "#ff0",
			Error: "#f00", Muted: "#888", Border: "#333", Selected: "#fff",
			Text: "#eee", Stars: "#fc0", Language: "#0cf",
		},
		Backgrounds: ThemeBackgrounds{
			Header: "#111", SearchInput: "#222", SearchFocused: "#333", ErrorBanner: "#400",
		},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error = %v", err)
	}

	bad := valid
	bad.Colors.Stars = "gold"
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "Stars") {
		t.Errorf("Validate() error = %v, want error mentioning Stars", err)
	}

	unnamed := valid
	unnamed.Name = ""
	if err := unnamed.Validate(); err == nil {
		t.Error("Validate() expected error for empty name")
	}
}
