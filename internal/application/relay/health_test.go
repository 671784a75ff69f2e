package relay

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthService_Report(t *testing.T) {
	settings := HealthSettings{
		Environment:       "development",
		Version:           "1.0.0",
		SupplierPortalURL: "https://portal.example.com",
		MenuPlatformURL:   "https://menu.example.com",
		APIKeyConfigured:  true,
	}

	t.Run("healthy when the API key is configured", func(t *testing.T) {
		svc := NewHealthService(settings, fixedClock)

		report, code := svc.Report(context.Background())
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, HealthStatusHealthy, report.Status)
		assert.Equal(t, "Integration API", report.Service)
		assert.Equal(t, "2025-01-15T10:30:00.000Z", report.Timestamp)
		assert.Nil(t, report.Configuration.MissingEnvVars)
		assert.Len(t, report.Endpoints, 7)
		assert.Nil(t, report.Dependencies)
	})

	t.Run("degraded without an API key", func(t *testing.T) {
		missing := settings
		missing.APIKeyConfigured = false
		svc := NewHealthService(missing, fixedClock)

		report, code := svc.Report(context.Background())
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, HealthStatusDegraded, report.Status)
		assert.Equal(t, []string{"API_KEY"}, report.Configuration.MissingEnvVars)
		assert.False(t, report.Configuration.APIKeyConfigured)
	})

	t.Run("failing dependency is reported but stays healthy", func(t *testing.T) {
		svc := NewHealthService(settings, fixedClock)
		svc.AddDependency("sync_log", pingFunc(func(context.Context) error { return errors.New("db down") }))
		svc.AddDependency("redis", pingFunc(func(context.Context) error { return errors.New("connection refused") }))

		report, code := svc.Report(context.Background())
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, HealthStatusHealthy, report.Status)
		assert.Nil(t, report.Configuration.MissingEnvVars)
		assert.Equal(t, map[string]string{"sync_log": "unavailable", "redis": "unavailable"}, report.Dependencies)
		assert.Contains(t, report.Endpoints, "GET /api/sync-logs")
	})

	t.Run("healthy dependency", func(t *testing.T) {
		svc := NewHealthService(settings, fixedClock)
		svc.AddDependency("sync_log", pingFunc(func(context.Context) error { return nil }))

		report, code := svc.Report(context.Background())
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", report.Dependencies["sync_log"])
	})

	t.Run("does not mutate the shared endpoint table", func(t *testing.T) {
		svc := NewHealthService(settings, fixedClock)
		svc.AddDependency("sync_log", pingFunc(func(context.Context) error { return nil }))
		svc.Report(context.Background())

		assert.Len(t, Endpoints, 7)
	})
}
