package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, "memory", cfg.StateDriver)
	assert.Equal(t, 2*time.Second, cfg.PaymentPollInterval)
	assert.Equal(t, 10, cfg.PaymentMaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.WalkPollInterval)
	assert.Equal(t, "es", cfg.DefaultLanguage)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BACKEND_URL", " https://api.example/ ")
	t.Setenv("STATE_DRIVER", "Redis")
	t.Setenv("PAYMENT_MAX_ATTEMPTS", "0")
	t.Setenv("WALK_POLL_INTERVAL", "5s")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ServerPort)
	assert.Equal(t, "https://api.example", cfg.BackendURL)
	assert.Equal(t, "redis", cfg.StateDriver)
	assert.Equal(t, 10, cfg.PaymentMaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.WalkPollInterval)
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paseos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PUBLIC_ORIGIN: https://paseoslugo.es/\nDEFAULT_LANGUAGE: gl\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://paseoslugo.es", cfg.PublicOrigin)
	assert.Equal(t, "gl", cfg.DefaultLanguage)
}

func TestLoadFile_MissingKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ":8080", cfg.ServerPort)
}
