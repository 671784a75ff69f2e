package relay

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/supplierhub/relay/internal/domain/relay"
)

const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"

	healthServiceName  = "Integration API"
	healthCheckTimeout = 2 * time.Second
)

// Endpoints lists the public routes reported by the health check
var Endpoints = map[string]string{
	"POST /api/products/sync":              "Supplier → Menu Platform product sync",
	"PATCH /api/products/:id/availability": "Supplier → Menu Platform availability update",
	"POST /api/orders/webhook":             "Menu Platform → Supplier order creation",
	"POST /api/orders/backorder":           "Menu Platform → Supplier backorder notification",
	"GET /api/products/:id":                "Fetch product details",
	"GET /api/orders/:orderId":             "Fetch order details",
	"GET /api/health":                      "Health check",
}

// HealthSettings is the configuration echoed by the health check
type HealthSettings struct {
	Environment       string
	Version           string
	SupplierPortalURL string
	MenuPlatformURL   string
	APIKeyConfigured  bool
}

// Pinger is an optional local dependency checked by the health endpoint.
// Downstream platforms are never pinged.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthConfiguration is the config section of the health report
type HealthConfiguration struct {
	SupplierPortalURL string   `json:"supplierPortalUrl"`
	MenuPlatformURL   string   `json:"menuPlatformUrl"`
	APIKeyConfigured  bool     `json:"apiKeyConfigured"`
	MissingEnvVars    []string `json:"missingEnvVars"`
}

// HealthReport is the body of GET /api/health
type HealthReport struct {
	Service       string              `json:"service"`
	Status        string              `json:"status"`
	Version       string              `json:"version"`
	Environment   string              `json:"environment"`
	Timestamp     string              `json:"timestamp"`
	Configuration HealthConfiguration `json:"configuration"`
	Dependencies  map[string]string   `json:"dependencies,omitempty"`
	Endpoints     map[string]string   `json:"endpoints"`
}

// HealthService builds the health report from static configuration
type HealthService struct {
	settings HealthSettings
	pingers  map[string]Pinger
	now      func() time.Time
}

// NewHealthService creates a new HealthService
func NewHealthService(settings HealthSettings, now func() time.Time) *HealthService {
	if now == nil {
		now = time.Now
	}
	return &HealthService{
		settings: settings,
		pingers:  make(map[string]Pinger),
		now:      now,
	}
}

// AddDependency registers a local dependency whose failure degrades health
func (s *HealthService) AddDependency(name string, p Pinger) {
	if p != nil {
		s.pingers[name] = p
	}
}

// Report returns the health report and the HTTP status it maps to
func (s *HealthService) Report(ctx context.Context) (*HealthReport, int) {
	var missing []string
	if !s.settings.APIKeyConfigured {
		missing = append(missing, "API_KEY")
	}

	// Optional dependencies are reported but never change the status
	healthy := len(missing) == 0
	var deps map[string]string
	if len(s.pingers) > 0 {
		deps = make(map[string]string, len(s.pingers))
		names := make([]string, 0, len(s.pingers))
		for name := range s.pingers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
			err := s.pingers[name].Ping(pingCtx)
			cancel()
			if err != nil {
				deps[name] = "unavailable"
				continue
			}
			deps[name] = "ok"
		}
	}

	status, code := HealthStatusHealthy, http.StatusOK
	if !healthy {
		status, code = HealthStatusDegraded, http.StatusServiceUnavailable
	}

	endpoints := make(map[string]string, len(Endpoints))
	for k, v := range Endpoints {
		endpoints[k] = v
	}
	if _, ok := s.pingers["sync_log"]; ok {
		endpoints["GET /api/sync-logs"] = "Recent relay audit entries"
	}

	return &HealthReport{
		Service:     healthServiceName,
		Status:      status,
		Version:     s.settings.Version,
		Environment: s.settings.Environment,
		Timestamp:   relay.FormatTimestamp(s.now()),
		Configuration: HealthConfiguration{
			SupplierPortalURL: s.settings.SupplierPortalURL,
			MenuPlatformURL:   s.settings.MenuPlatformURL,
			APIKeyConfigured:  s.settings.APIKeyConfigured,
			MissingEnvVars:    missing,
		},
		Dependencies: deps,
		Endpoints:    endpoints,
	}, code
}
