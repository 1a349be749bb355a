package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TOKEN_TTL", "MIGRATIONS_DIR", "DATABASE_URL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, "db/migrations", cfg.MigrationsDir)
	require.NotEmpty(t, cfg.DatabaseURL)
	require.Empty(t, cfg.CORSOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_SECRET_KEY", "sekrit")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x?sslmode=disable")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()
	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, "sekrit", cfg.JWTSecret)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, "postgres://u:p@db:5432/x?sslmode=disable", cfg.DatabaseURL)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")

	cfg := Load()
	require.Equal(t, time.Hour, cfg.TokenTTL)
}
