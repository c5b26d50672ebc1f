package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProductionConfig() Config {
	return Config{
		Port:          "8080",
		JWTSecret:     strings.Repeat("s", 32),
		DBPassword:    "strong-db-password",
		DBSSLMode:     "require",
		Env:           "production",
		AdminUsername: "admin",
		AdminPassword: "strong-admin-password",
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid production config", func(t *testing.T) {
		cfg := validProductionConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("default jwt secret rejected in production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("short jwt secret rejected in production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("default db password rejected in production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("default admin password rejected in production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.AdminPassword = "admin"
		assert.Error(t, cfg.Validate())
	})

	t.Run("development tolerates defaults", func(t *testing.T) {
		cfg := Config{
			Port:          "8080",
			JWTSecret:     "dev-secret",
			Env:           "development",
			AdminPassword: "admin",
		}
		assert.NoError(t, cfg.Validate())
	})
}
