package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gitscout/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GITSCOUT_TOKEN", "GITHUB_TOKEN", "GITSCOUT_BASE_URL", "GITSCOUT_USERS_PER_PAGE",
		"GITSCOUT_REPOS_PER_PAGE", "GITSCOUT_TIMEOUT", "GITSCOUT_THEME", "GITSCOUT_LOCALE",
		"GITSCOUT_LOG_FILE", "GITSCOUT_LOG_LEVEL", "GITSCOUT_OTEL_ENDPOINT",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManagerAt(filepath.Join(t.TempDir(), "gitscout.conf"))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	m := newTestManager(t)

	cfg, err := m.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	cfg := domain.NewDefaultConfig()
	cfg.GitHub.Token = "ghp_secret"
	cfg.GitHub.UsersPerPage = 50
	cfg.UI.Theme = "paper"
	cfg.Log.File = "/tmp/gitscout.log"

	require.NoError(t, m.Save(cfg))

	info, err := os.Stat(m.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_ParsesSimpleFormat(t *testing.T) {
	m := newTestManager(t)
	content := `# comment
github.users_per_page = 10
ui.locale=es
not a setting
legacy.key=ignored
log.level=DEBUG
`
	require.NoError(t, os.WriteFile(m.ConfigPath(), []byte(content), 0600))

	cfg, err := m.Load()

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.GitHub.UsersPerPage)
	assert.Equal(t, "es", cfg.UI.Locale)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, domain.DefaultBaseURL, cfg.GitHub.BaseURL)
}

func TestLoad_RejectsBadNumber(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, os.WriteFile(m.ConfigPath(), []byte("github.timeout_seconds=soon\n"), 0600))

	_, err := m.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestSet(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Set("ui.theme", "paper"))
	require.NoError(t, m.Set("github.repos_per_page", "5"))

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "paper", cfg.UI.Theme)
	assert.Equal(t, 5, cfg.GitHub.ReposPerPage)
}

func TestSet_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "github.password", "x"},
		{"not a number", "github.users_per_page", "many"},
		{"out of range", "github.users_per_page", "500"},
		{"relative base url", "github.base_url", "api.github.com"},
		{"bad log level", "log.level", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)

			require.Error(t, m.Set(tt.key, tt.value))

			_, err := os.Stat(m.ConfigPath())
			assert.True(t, os.IsNotExist(err), "failed Set must not write the file")
		})
	}
}

func TestSet_UnknownKeyIsSentinel(t *testing.T) {
	err := newTestManager(t).Set("nope", "1")
	assert.True(t, errors.Is(err, ErrUnknownKey))
}

func TestResolve_EnvOverrides(t *testing.T) {
	clearEnv(t)
	m := newTestManager(t)
	require.NoError(t, m.Set("ui.theme", "paper"))

	t.Setenv("GITSCOUT_THEME", "midnight")
	t.Setenv("GITSCOUT_USERS_PER_PAGE", "42")
	t.Setenv("GITSCOUT_OTEL_ENDPOINT", "localhost:4318")

	cfg, err := m.Resolve()

	require.NoError(t, err)
	assert.Equal(t, "midnight", cfg.UI.Theme)
	assert.Equal(t, 42, cfg.GitHub.UsersPerPage)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.OTLPEndpoint)
}

func TestResolve_TokenPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		fileToken  string
		envToken   string
		ghEnvToken string
		want       string
	}{
		{"none", "", "", "", ""},
		{"github token fallback", "", "", "gh_env", "gh_env"},
		{"file beats fallback", "file", "", "gh_env", "file"},
		{"gitscout env beats file", "file", "scout_env", "gh_env", "scout_env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			m := newTestManager(t)
			if tt.fileToken != "" {
				require.NoError(t, m.Set("github.token", tt.fileToken))
			}
			if tt.envToken != "" {
				t.Setenv("GITSCOUT_TOKEN", tt.envToken)
			}
			if tt.ghEnvToken != "" {
				t.Setenv("GITHUB_TOKEN", tt.ghEnvToken)
			}

			cfg, err := m.Resolve()

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.GitHub.Token)
		})
	}
}

func TestResolve_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITSCOUT_TIMEOUT", "forever")

	_, err := newTestManager(t).Resolve()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestGet_CoversEveryKey(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	for _, key := range Keys {
		_, err := Get(cfg, key)
		assert.NoError(t, err, key)
	}
}
