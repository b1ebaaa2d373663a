package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/yourusername/gitscout/internal/domain"
)

// Keys lists the settings stored in the config file, in file order.
var Keys = []string{
	"github.token",
	"github.base_url",
	"github.users_per_page",
	"github.repos_per_page",
	"github.timeout_seconds",
	"ui.theme",
	"ui.locale",
	"log.file",
	"log.level",
	"telemetry.otlp_endpoint",
}

// ErrUnknownKey is returned for keys not listed in Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Manager handles configuration persistence.
type Manager struct {
	configPath string
}

// NewManager creates a config manager for ~/.gitscout.conf.
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return NewManagerAt(filepath.Join(homeDir, ".gitscout.conf")), nil
}

// NewManagerAt creates a config manager for the file at path.
func NewManagerAt(path string) *Manager {
	return &Manager{configPath: path}
}

// Load loads the configuration from disk. A missing file yields the defaults.
func (m *Manager) Load() (*domain.Config, error) {
	data, err := os.ReadFile(m.configPath)
	if os.IsNotExist(err) {
		return domain.NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parseSimpleConfig(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.configPath, err)
	}
	return cfg, nil
}

// Resolve loads the file, applies environment overrides and validates the
// result. This is the configuration the application runs with.
func (m *Manager) Resolve() (*domain.Config, error) {
	cfg, err := m.Load()
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save saves the configuration to disk.
func (m *Manager) Save(cfg *domain.Config) error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# gitscout configuration\n")
	for _, key := range Keys {
		value, _ := Get(cfg, key)
		fmt.Fprintf(&b, "%s=%s\n", key, value)
	}

	// The file may hold a token.
	if err := os.WriteFile(m.configPath, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Set updates one key in the stored configuration.
func (m *Manager) Set(key, value string) error {
	cfg, err := m.Load()
	if err != nil {
		return err
	}
	if err := set(cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return m.Save(cfg)
}

// ConfigPath returns the path to the config file.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// fallbackEnv holds variables other tools already export.
type fallbackEnv struct {
	GitHubToken string `env:"GITHUB_TOKEN"`
}

// ApplyEnv overrides cfg with GITSCOUT_* environment variables. GITHUB_TOKEN
// is used when no token is configured anywhere else.
func ApplyEnv(cfg *domain.Config) error {
	if err := ParseEnv(cfg); err != nil {
		return err
	}
	if cfg.GitHub.Token == "" {
		var fallback fallbackEnv
		if err := ParseEnv(&fallback); err != nil {
			return err
		}
		cfg.GitHub.Token = fallback.GitHubToken
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func Get(cfg *domain.Config, key string) (string, error) {
	switch key {
	case "github.token":
		return cfg.GitHub.Token, nil
	case "github.base_url":
		return cfg.GitHub.BaseURL, nil
	case "github.users_per_page":
		return strconv.Itoa(cfg.GitHub.UsersPerPage), nil
	case "github.repos_per_page":
		return strconv.Itoa(cfg.GitHub.ReposPerPage), nil
	case "github.timeout_seconds":
		return strconv.Itoa(cfg.GitHub.TimeoutSeconds), nil
	case "ui.theme":
		return cfg.UI.Theme, nil
	case "ui.locale":
		return cfg.UI.Locale, nil
	case "log.file":
		return cfg.Log.File, nil
	case "log.level":
		return cfg.Log.Level, nil
	case "telemetry.otlp_endpoint":
		return cfg.Telemetry.OTLPEndpoint, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
}

func set(cfg *domain.Config, key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case "github.token":
		cfg.GitHub.Token = value
	case "github.base_url":
		cfg.GitHub.BaseURL = value
	case "github.users_per_page":
		return setInt(&cfg.GitHub.UsersPerPage, key, value)
	case "github.repos_per_page":
		return setInt(&cfg.GitHub.ReposPerPage, key, value)
	case "github.timeout_seconds":
		return setInt(&cfg.GitHub.TimeoutSeconds, key, value)
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.locale":
		cfg.UI.Locale = value
	case "log.file":
		cfg.Log.File = value
	case "log.level":
		cfg.Log.Level = strings.ToLower(value)
	case "telemetry.otlp_endpoint":
		cfg.Telemetry.OTLPEndpoint = value
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return nil
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s must be a number, got %q", key, value)
	}
	*dst = n
	return nil
}

// parseSimpleConfig parses a simple key=value config format. Comments and
// unknown keys are skipped so older files keep loading.
func parseSimpleConfig(content string) (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)

		if err := set(cfg, key, value); err != nil {
			if errors.Is(err, ErrUnknownKey) {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return cfg, nil
}
