// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr string
	DBPath     string
	Secret     string
	TokenTTL   time.Duration
	AdminEmail string
}

// Load reads configuration from environment variables and returns a validated
// Config. TASKBOARD_SECRET is required; the process refuses to start without
// a signing secret. Optional variables with defaults:
// TASKBOARD_LISTEN_ADDR (127.0.0.1:8080), TASKBOARD_DB_PATH (taskboard.db),
// TASKBOARD_TOKEN_TTL (1h), TASKBOARD_ADMIN_EMAIL (admin@blitz.com).
func Load() (*Config, error) {
	secret := os.Getenv("TASKBOARD_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("TASKBOARD_SECRET is required")
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("TASKBOARD_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "taskboard.db"
	if v, ok := os.LookupEnv("TASKBOARD_DB_PATH"); ok {
		dbPath = v
	}

	tokenTTL := time.Hour
	if v, ok := os.LookupEnv("TASKBOARD_TOKEN_TTL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TASKBOARD_TOKEN_TTL has invalid duration %q: %w", v, err)
		}
		tokenTTL = parsed
	}

	adminEmail := "admin@blitz.com"
	if v, ok := os.LookupEnv("TASKBOARD_ADMIN_EMAIL"); ok {
		adminEmail = v
	}

	return &Config{
		ListenAddr: listenAddr,
		DBPath:     dbPath,
		Secret:     secret,
		TokenTTL:   tokenTTL,
		AdminEmail: adminEmail,
	}, nil
}
