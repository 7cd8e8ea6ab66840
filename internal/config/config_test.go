package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, SessionDriverMemory, cfg.Session.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "session_id", cfg.Session.CookieName)
	assert.Equal(t, CatalogSourceMemory, cfg.Catalog.Source)
	assert.Equal(t, EmailProviderLog, cfg.Email.Provider)
	assert.False(t, cfg.UsesRedis())
	assert.False(t, cfg.UsesDatabase())
	assert.False(t, cfg.AdminLoginEnabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SESSION_DRIVER", "redis")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://verve.shop, https://admin.verve.shop")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := FromEnv()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.UsesRedis())
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, []string{"https://verve.shop", "https://admin.verve.shop"}, cfg.Security.CORSAllowedOrigins)
	assert.Equal(t, 0, cfg.Redis.DB, "unparsable values fall back to the default")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"short jwt secret", func(c *Config) { c.JWT.Secret = "short" }, "JWT_SECRET"},
		{"unknown session driver", func(c *Config) { c.Session.Driver = "memcached" }, "SESSION_DRIVER"},
		{"redis without host", func(c *Config) {
			c.Session.Driver = SessionDriverRedis
			c.Redis.Host = ""
		}, "REDIS_HOST"},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }, "SESSION_TTL"},
		{"unknown catalog source", func(c *Config) { c.Catalog.Source = "mongo" }, "CATALOG_SOURCE"},
		{"smtp without host", func(c *Config) { c.Email.Provider = EmailProviderSMTP }, "SMTP_HOST"},
		{"bcrypt cost out of range", func(c *Config) { c.Security.BcryptCost = 2 }, "BCRYPT_COST"},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "APP_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromEnv()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDSNAndAddr(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=verve_db")
}
