package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"RELAY_APP_NAME",
	"RELAY_APP_ENV",
	"RELAY_APP_PORT",
	"RELAY_AUTH_API_KEY",
	"RELAY_PLATFORMS_SUPPLIER_PORTAL_URL",
	"RELAY_PLATFORMS_SUPPLIER_PORTAL_API_KEY",
	"RELAY_PLATFORMS_MENU_PLATFORM_URL",
	"RELAY_PLATFORMS_MENU_PLATFORM_API_KEY",
	"RELAY_PLATFORMS_TIMEOUT",
	"RELAY_SYNC_LOG_ENABLED",
	"RELAY_SYNC_LOG_DRIVER",
	"RELAY_SYNC_LOG_DSN",
	"RELAY_TELEMETRY_SAMPLING_RATIO",
	"RELAY_SWAGGER_ENABLED",
	"RELAY_SWAGGER_REQUIRE_AUTH",
	"RELAY_SWAGGER_ALLOWED_IPS",
	"API_KEY",
	"NODE_ENV",
	"SUPPLIER_PORTAL_URL",
	"SUPPLIER_PORTAL_API_KEY",
	"MENU_PLATFORM_URL",
	"MENU_PLATFORM_API_KEY",
}

// clearConfigEnv unsets every variable Load looks at; t.Setenv restores them afterwards.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "supplier-relay", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "1.0.0", cfg.App.Version)
		assert.False(t, cfg.Auth.Configured())
		assert.Equal(t, DefaultSupplierPortalURL, cfg.Platforms.SupplierPortalURL)
		assert.Equal(t, DefaultMenuPlatformURL, cfg.Platforms.MenuPlatformURL)
		assert.Equal(t, 30*time.Second, cfg.Platforms.Timeout)
		assert.Equal(t, 45*time.Second, cfg.HTTP.WriteTimeout)
		assert.False(t, cfg.SyncLog.Enabled)
		assert.Equal(t, "sqlite", cfg.SyncLog.Driver)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, "supplier-relay", cfg.Telemetry.ServiceName)
		assert.False(t, cfg.Swagger.Enabled)
	})

	t.Run("loads values from environment variables with RELAY prefix", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("RELAY_APP_PORT", "9000")
		t.Setenv("RELAY_AUTH_API_KEY", "relay-key")
		t.Setenv("RELAY_PLATFORMS_SUPPLIER_PORTAL_URL", "http://portal.local/")
		t.Setenv("RELAY_PLATFORMS_MENU_PLATFORM_URL", "http://menu.local")
		t.Setenv("RELAY_PLATFORMS_TIMEOUT", "5s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "relay-key", cfg.Auth.APIKey)
		assert.Equal(t, "http://portal.local", cfg.Platforms.SupplierPortalURL)
		assert.Equal(t, "http://menu.local", cfg.Platforms.MenuPlatformURL)
		assert.Equal(t, 5*time.Second, cfg.Platforms.Timeout)
	})

	t.Run("accepts unprefixed deployment variables", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("API_KEY", "shared-key")
		t.Setenv("SUPPLIER_PORTAL_URL", "https://portal.example.com")
		t.Setenv("MENU_PLATFORM_API_KEY", "menu-key")
		t.Setenv("NODE_ENV", "staging")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "shared-key", cfg.Auth.APIKey)
		assert.Equal(t, "https://portal.example.com", cfg.Platforms.SupplierPortalURL)
		assert.Equal(t, "staging", cfg.App.Env)
		assert.Equal(t, "shared-key", cfg.Platforms.SupplierPortalAPIKey, "falls back to the shared key")
		assert.Equal(t, "menu-key", cfg.Platforms.MenuPlatformAPIKey)
	})

	t.Run("prefixed variable wins over unprefixed one", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("API_KEY", "plain")
		t.Setenv("RELAY_AUTH_API_KEY", "prefixed")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "prefixed", cfg.Auth.APIKey)
	})

	t.Run("production requires an API key", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("RELAY_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auth.api_key is required in production")
	})

	t.Run("production rejects plain http platform URLs", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("RELAY_APP_ENV", "production")
		t.Setenv("RELAY_AUTH_API_KEY", "a-long-enough-production-key")
		t.Setenv("RELAY_PLATFORMS_MENU_PLATFORM_URL", "http://menu.local")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must use https in production")
	})

	t.Run("production rejects unprotected swagger", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("RELAY_APP_ENV", "production")
		t.Setenv("RELAY_AUTH_API_KEY", "a-long-enough-production-key")
		t.Setenv("RELAY_SWAGGER_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "swagger endpoint must be disabled")
	})

	t.Run("production allows swagger behind the API key", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("RELAY_APP_ENV", "production")
		t.Setenv("RELAY_AUTH_API_KEY", "a-long-enough-production-key")
		t.Setenv("RELAY_SWAGGER_ENABLED", "true")
		t.Setenv("RELAY_SWAGGER_REQUIRE_AUTH", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Swagger.Enabled)
		assert.True(t, cfg.Swagger.RequireAuth)
	})

	t.Run("swagger allow list from env", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("RELAY_SWAGGER_ENABLED", "true")
		t.Setenv("RELAY_SWAGGER_ALLOWED_IPS", "10.0.0.0/8 127.0.0.1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.Swagger.AllowedIPs)
	})

	t.Run("rejects unknown sync log driver", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("RELAY_SYNC_LOG_ENABLED", "true")
		t.Setenv("RELAY_SYNC_LOG_DRIVER", "mysql")
		t.Setenv("RELAY_SYNC_LOG_DSN", "x")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sync_log.driver")
	})

	t.Run("rejects out of range sampling ratio", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("RELAY_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.sampling_ratio")
	})
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"https", "https://supplier.example.com", false},
		{"http with port", "http://localhost:3000", false},
		{"missing scheme", "supplier.example.com", true},
		{"ftp scheme", "ftp://supplier.example.com", true},
		{"missing host", "https://", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBaseURL("platforms.supplier_portal_url", tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
