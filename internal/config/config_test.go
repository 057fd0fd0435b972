package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "Qubrius Labs", cfg.Site.Brand)
	assert.Equal(t, "/security", cfg.Site.SecurityPath)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 3600, cfg.Server.StaticMaxAge)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SITE_BRAND", "Test Labs")
	t.Setenv("SITE_CONTACT_EMAIL", "team@example.com")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("TZ_LOCATION", "Europe/Berlin")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "Test Labs", cfg.Site.Brand)
	assert.Equal(t, "team@example.com", cfg.Site.ContactEmail)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad max age", func(t *testing.T) {
		t.Setenv("STATIC_MAX_AGE", "forever")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Setenv("TZ_LOCATION", "Mars/Olympus")
		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TZ_LOCATION")
	})
}
