package mepost

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "MEPOST_BASE_URL", "MEPOST_TIMEOUT", "MEPOST_DEBUG", "BASE_URL", "TIMEOUT", "DEBUG")
	t.Setenv("MEPOST_API_KEY", "env-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Zero(t, cfg.Timeout)
	assert.False(t, cfg.Debug)
	assert.Len(t, cfg.Options(), 1)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("MEPOST_API_KEY", "env-key")
	t.Setenv("MEPOST_BASE_URL", "https://staging.mepost.io/v1")
	t.Setenv("MEPOST_TIMEOUT", "15s")
	t.Setenv("MEPOST_DEBUG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.mepost.io/v1", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Len(t, cfg.Options(), 3)
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	unsetEnv(t, "MEPOST_API_KEY", "API_KEY")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	unsetEnv(t, "MEPOST_BASE_URL", "MEPOST_DEBUG")
	t.Setenv("MEPOST_API_KEY", "env-key")
	t.Setenv("MEPOST_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestNewFromEnv(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "env-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"data":[],"total":0}}`))
	}))
	defer server.Close()

	unsetEnv(t, "MEPOST_TIMEOUT", "MEPOST_DEBUG")
	t.Setenv("MEPOST_API_KEY", "env-key")
	t.Setenv("MEPOST_BASE_URL", server.URL)

	client, err := NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, server.URL, client.BaseURL())

	_, err = client.ListDomains(t.Context())
	require.NoError(t, err)
}

func TestNewFromEnv_OptionsOverrideEnvironment(t *testing.T) {
	unsetEnv(t, "MEPOST_TIMEOUT", "MEPOST_DEBUG")
	t.Setenv("MEPOST_API_KEY", "env-key")
	t.Setenv("MEPOST_BASE_URL", "https://from-env.example.com")

	client, err := NewFromEnv(WithBaseURL("https://from-code.example.com"))
	require.NoError(t, err)
	assert.Equal(t, "https://from-code.example.com", client.BaseURL())
}

func TestLoadConfig_MissingAPIKeyIsSentinel(t *testing.T) {
	unsetEnv(t, "MEPOST_API_KEY", "API_KEY")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestReadConfig_WithoutAPIKey(t *testing.T) {
	unsetEnv(t, "MEPOST_API_KEY", "API_KEY", "MEPOST_DEBUG", "DEBUG")
	t.Setenv("MEPOST_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("MEPOST_TIMEOUT", "5s")

	cfg, err := ReadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "http://localhost:9999/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	err = cfg.Validate()
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "MEPOST_API_KEY")

	cfg.APIKey = "supplied-later"
	assert.NoError(t, cfg.Validate())
}
