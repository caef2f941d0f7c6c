package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Contains(t, cfg.MongoURI, "mongodb://")
	assert.Contains(t, cfg.RedisURI, "redis://")
	assert.NotEmpty(t, cfg.AuthServiceURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.AllowedHost, "host check is disabled outside production")
}

func TestAllowedOriginsFromEnv(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://www.lockin90.dev, https://lockin90.dev ,")

	cfg := Load()
	assert.Equal(t, []string{"https://www.lockin90.dev", "https://lockin90.dev"}, cfg.AllowedOrigins)
}

func TestProductionHostCheck(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("HOST", "https://api.lockin90.dev:443/some/path")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "api.lockin90.dev", cfg.AllowedHost)
}

func TestFrontendURLFallback(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://app.lockin90.dev")
	t.Setenv("FRONTEND_URL_2", "https://staging.lockin90.dev")

	cfg := Load()
	assert.Equal(t, []string{"https://app.lockin90.dev", "https://staging.lockin90.dev"}, cfg.AllowedOrigins)
}
