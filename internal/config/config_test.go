package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret-at-least-32-chars!"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, devBackendBaseURL, cfg.BackendBaseURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.False(t, cfg.DemoFallback)
	assert.False(t, cfg.SecureCookies)
}

func TestLoad_ProductionSelectsProdBackend(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("ENV", "production")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, prodBackendBaseURL, cfg.BackendBaseURL)
	assert.True(t, cfg.SecureCookies)
}

func TestLoad_ExplicitBackendURLWins(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("ENV", "production")
	t.Setenv("BACKEND_BASE_URL", "http://backend:8000/api")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://backend:8000/api", cfg.BackendBaseURL)
}

func TestLoad_RequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsShortSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_DemoFallbackFlag(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("DEMO_FALLBACK", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.DemoFallback)
}
