package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"API_KEY", "API_BASE_URL", "PORT", "GIN_MODE", "LOG_LEVEL", "FETCH_TIMEOUT", "ALLOWED_ORIGINS",
}

// clearEnv blanks every variable Load reads; viper ignores empty values.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func writeEnvFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.FetchTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadMissingEnvFileIsNotAnError(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "API_KEY=from-file\nAPI_BASE_URL=http://localhost:9999/\nFETCH_TIMEOUT=5s\nALLOWED_ORIGINS=\"https://a.example, https://b.example\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestEnvironmentOverridesEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "API_KEY=from-file\nPORT=9000\n")
	t.Setenv("API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unparsable timeout", "FETCH_TIMEOUT", "soon"},
		{"negative timeout", "FETCH_TIMEOUT", "-1s"},
		{"unknown gin mode", "GIN_MODE", "production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
