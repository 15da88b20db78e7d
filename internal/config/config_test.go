package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every TASKBOARD_ env var that Load() reads.
var allConfigKeys = []string{
	"TASKBOARD_LISTEN_ADDR",
	"TASKBOARD_DB_PATH",
	"TASKBOARD_SECRET",
	"TASKBOARD_TOKEN_TTL",
	"TASKBOARD_ADMIN_EMAIL",
}

// isolateConfigEnv saves and unsets all TASKBOARD_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores original
// values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("TASKBOARD_SECRET", "s3cret")
	t.Setenv("TASKBOARD_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("TASKBOARD_DB_PATH", "/tmp/test.db")
	t.Setenv("TASKBOARD_TOKEN_TTL", "30m")
	t.Setenv("TASKBOARD_ADMIN_EMAIL", "boss@x.com")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "boss@x.com", cfg.AdminEmail)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("TASKBOARD_SECRET", "s3cret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "taskboard.db", cfg.DBPath)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "admin@blitz.com", cfg.AdminEmail)
}

func TestLoad_MissingSecret(t *testing.T) {
	isolateConfigEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TASKBOARD_SECRET")
}

func TestLoad_InvalidTokenTTL(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("TASKBOARD_SECRET", "s3cret")
	t.Setenv("TASKBOARD_TOKEN_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TASKBOARD_TOKEN_TTL")
}
