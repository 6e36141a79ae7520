package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "CMS_DB_URL", "ALLOWED_ORIGINS", "RATE_LIMIT_WINDOW", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_PORT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "postgres://postgres:@localhost:5432/modeva_cms_backend?sslmode=disable", cfg.CmsDBURL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://admin.modeva.com, https://ops.modeva.com,")
	t.Setenv("LIST_CACHE_TTL", "2m")
	t.Setenv("RATE_LIMIT_REQUESTS", "nope")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://admin.modeva.com", "https://ops.modeva.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Minute, cfg.ListCacheTTL)
	assert.Equal(t, 100, cfg.RateLimitRequests)
}
