package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/scry-studycards/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configEnvVars lists every variable Load consults, so tests start clean.
var configEnvVars = []string{
	"STUDYCARDS_SERVER_PORT",
	"STUDYCARDS_SERVER_LOG_LEVEL",
	"STUDYCARDS_SERVER_MAX_UPLOAD_BYTES",
	"STUDYCARDS_SERVER_MAX_CONCURRENT",
	"STUDYCARDS_SERVER_REQUEST_TIMEOUT",
	"STUDYCARDS_SERVER_CORS_ORIGINS",
	"STUDYCARDS_LLM_GEMINI_API_KEY",
	"STUDYCARDS_LLM_PREFERRED_MODEL",
	"STUDYCARDS_LLM_MODELS",
	"STUDYCARDS_LLM_ATTEMPT_TIMEOUT",
	"STUDYCARDS_LLM_PROMPT_TEMPLATE_PATH",
	"STUDYCARDS_LLM_TEMPERATURE",
	"STUDYCARDS_LLM_BASE_URL",
	"STUDYCARDS_LLM_API_VERSION",
	"STUDYCARDS_EXTRACT_BACKEND",
	"STUDYCARDS_EXTRACT_MAX_PAGES",
	"STUDYCARDS_AUTH_JWT_SECRET",
	"STUDYCARDS_AUTH_TOKEN_LIFETIME",
	"GEMINI_API_KEY",
	"GEMINI_MODEL",
}

// setupEnv clears every config variable, then sets envVars for the test.
// Original values are restored when the test ends.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	testutils.SetupEnv(t, configEnvVars, envVars)
}

// TestLoadDefaults verifies that Load sets the expected default values when no
// environment variables or files are present.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, nil)

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, int64(4), cfg.Server.MaxConcurrent)
	assert.Equal(t, 3*time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)

	assert.Empty(t, cfg.LLM.GeminiAPIKey, "a missing key is not a load error")
	assert.Equal(t, []string{"gemini-2.5-flash", "gemini-1.5-pro", "gemini-pro"}, cfg.LLM.Models)
	assert.Equal(t, 60*time.Second, cfg.LLM.AttemptTimeout)
	assert.InDelta(t, 0.4, cfg.LLM.Temperature, 0.0001)

	assert.Equal(t, "pdf", cfg.Extract.Backend)
	assert.False(t, cfg.Auth.AuthEnabled())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenLifetime)
}

// TestLoadFromEnv verifies that Load correctly reads prefixed environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"STUDYCARDS_SERVER_PORT":         "9090",
		"STUDYCARDS_SERVER_LOG_LEVEL":    "debug",
		"STUDYCARDS_LLM_GEMINI_API_KEY":  "test-api-key",
		"STUDYCARDS_LLM_MODELS":          "gemini-2.0-flash, gemini-pro",
		"STUDYCARDS_LLM_ATTEMPT_TIMEOUT": "15s",
		"STUDYCARDS_EXTRACT_BACKEND":     "docconv",
		"STUDYCARDS_AUTH_JWT_SECRET":     "thisisasecretkeythatis32charslong!!",
	})

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-pro"}, cfg.LLM.Models)
	assert.Equal(t, 15*time.Second, cfg.LLM.AttemptTimeout)
	assert.Equal(t, "docconv", cfg.Extract.Backend)
	assert.True(t, cfg.Auth.AuthEnabled())
}

// TestLoadAliases verifies the unprefixed GEMINI_* variables.
func TestLoadAliases(t *testing.T) {
	t.Run("aliases apply", func(t *testing.T) {
		setupEnv(t, map[string]string{
			"GEMINI_API_KEY": "alias-key",
			"GEMINI_MODEL":   "gemini-1.5-pro",
		})

		cfg, err := LoadFrom(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "alias-key", cfg.LLM.GeminiAPIKey)
		assert.Equal(t, "gemini-1.5-pro", cfg.LLM.PreferredModel)
	})

	t.Run("prefixed name wins", func(t *testing.T) {
		setupEnv(t, map[string]string{
			"GEMINI_API_KEY":                "alias-key",
			"STUDYCARDS_LLM_GEMINI_API_KEY": "prefixed-key",
		})

		cfg, err := LoadFrom(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "prefixed-key", cfg.LLM.GeminiAPIKey)
	})
}

// TestLoadEnvFiles verifies that .env.local takes precedence over .env and
// that real environment variables take precedence over both.
func TestLoadEnvFiles(t *testing.T) {
	setupEnv(t, map[string]string{"STUDYCARDS_SERVER_PORT": "7070"})
	t.Cleanup(func() {
		for _, name := range configEnvVars {
			_ = os.Unsetenv(name)
		}
	})

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("GEMINI_API_KEY=from-dotenv\nGEMINI_MODEL=gemini-pro\nSTUDYCARDS_SERVER_PORT=6060\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"),
		[]byte("GEMINI_API_KEY=from-dotenv-local\n"), 0o600))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv-local", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-pro", cfg.LLM.PreferredModel)
	assert.Equal(t, 7070, cfg.Server.Port)
}

// TestLoadConfigFile verifies values from config.yaml and env precedence over them.
func TestLoadConfigFile(t *testing.T) {
	setupEnv(t, map[string]string{"STUDYCARDS_SERVER_LOG_LEVEL": "warn"})

	dir := t.TempDir()
	yaml := "server:\n  port: 8181\n  log_level: debug\nextract:\n  max_pages: 50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, 50, cfg.Extract.MaxPages)
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"invalid port", map[string]string{"STUDYCARDS_SERVER_PORT": "70000"}},
		{"invalid log level", map[string]string{"STUDYCARDS_SERVER_LOG_LEVEL": "verbose"}},
		{"short jwt secret", map[string]string{"STUDYCARDS_AUTH_JWT_SECRET": "short"}},
		{"unknown backend", map[string]string{"STUDYCARDS_EXTRACT_BACKEND": "ocr"}},
		{"temperature out of range", map[string]string{"STUDYCARDS_LLM_TEMPERATURE": "3.5"}},
		{"missing template file", map[string]string{"STUDYCARDS_LLM_PROMPT_TEMPLATE_PATH": "/nonexistent/prompt.tmpl"}},
		{"invalid base url", map[string]string{"STUDYCARDS_LLM_BASE_URL": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t, tt.env)

			cfg, err := LoadFrom(t.TempDir())
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
