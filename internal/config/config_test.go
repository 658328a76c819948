package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.EqualError(t, err, "DATABASE_URL is required")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/frequencia")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev-secret-change-in-production", cfg.JWTSecret)
	assert.Equal(t, 4, cfg.MaxPunchesPerDay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, "America/Sao_Paulo", cfg.Location().String())
	assert.False(t, cfg.EmailEnabled())
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/frequencia")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.EqualError(t, err, "JWT_SECRET is required in production")
}

func TestLoad_RejectsOddPunchCap(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/frequencia")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("MAX_PUNCHES_PER_DAY", "3")

	_, err := Load()
	assert.Error(t, err)
}
