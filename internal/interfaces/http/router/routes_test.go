package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	relayapp "github.com/supplierhub/relay/internal/application/relay"
	"github.com/supplierhub/relay/internal/domain/relay"
	"github.com/supplierhub/relay/internal/interfaces/http/handler"
	"github.com/supplierhub/relay/internal/interfaces/http/middleware"
)

const testAPIKey = "relay-secret"

// stubPlatforms answers every platform call with the same document
type stubPlatforms struct {
	doc json.RawMessage
}

func (s stubPlatforms) SubmitOrder(context.Context, *relay.OrderSubmission) (json.RawMessage, error) {
	return s.doc, nil
}

func (s stubPlatforms) NotifyBackorder(context.Context, *relay.BackorderNotice) (json.RawMessage, error) {
	return s.doc, nil
}

func (s stubPlatforms) GetProduct(context.Context, string, string) (json.RawMessage, error) {
	return s.doc, nil
}

func (s stubPlatforms) GetOrder(context.Context, string, string) (json.RawMessage, error) {
	return s.doc, nil
}

func (s stubPlatforms) SyncProducts(context.Context, *relay.CatalogSync) (json.RawMessage, error) {
	return s.doc, nil
}

func (s stubPlatforms) UpdateAvailability(context.Context, *relay.AvailabilityUpdate) (json.RawMessage, error) {
	return s.doc, nil
}

func newRelayEngine(t *testing.T) *gin.Engine {
	t.Helper()
	platforms := stubPlatforms{doc: json.RawMessage(`{"id":"X-1"}`)}
	health := relayapp.NewHealthService(relayapp.HealthSettings{APIKeyConfigured: true}, time.Now)

	engine := gin.New()
	r := NewRouter(engine)
	RegisterRelayRoutes(r, Handlers{
		Order:   handler.NewOrderHandler(relayapp.NewOrderService(platforms)),
		Product: handler.NewProductHandler(relayapp.NewProductService(platforms, platforms)),
		Health:  handler.NewHealthHandler(health),
		SyncLog: handler.NewSyncLogHandler(nil),
	}, middleware.APIKeyAuth(testAPIKey))
	r.Setup()
	return engine
}

func TestRegisterRelayRoutes(t *testing.T) {
	engine := newRelayEngine(t)

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		status  int
		message string
	}{
		{"product sync", http.MethodPost, "/api/products/sync", `{"supplierId":"S","products":[]}`, http.StatusOK, handler.MsgProductsSynced},
		{"availability", http.MethodPatch, "/api/products/P-1/availability", `{"supplierId":"S","stockQuantity":4}`, http.StatusOK, handler.MsgAvailabilityUpdated},
		{"product lookup", http.MethodGet, "/api/products/P-1?supplierId=S", "", http.StatusOK, handler.MsgProductDetailsLoaded},
		{"order lookup", http.MethodGet, "/api/orders/O-1?supplierId=S", "", http.StatusOK, handler.MsgOrderDetailsLoaded},
		{"webhook validation", http.MethodPost, "/api/orders/webhook", `{}`, http.StatusBadRequest, "orderId is required"},
		{"backorder validation", http.MethodPost, "/api/orders/backorder", `{}`, http.StatusBadRequest, "orderId is required"},
		{"sync logs disabled", http.MethodGet, "/api/sync-logs", "", http.StatusNotFound, handler.MsgSyncLogNotEnabled},
		{"static route wins over id", http.MethodGet, "/api/products/sync", "", http.StatusMethodNotAllowed, middleware.MsgMethodNotAllowed},
		{"wrong method", http.MethodDelete, "/api/orders/O-1", "", http.StatusMethodNotAllowed, middleware.MsgMethodNotAllowed},
		{"unknown route", http.MethodGet, "/api/invoices", "", http.StatusNotFound, MsgRouteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer "+testAPIKey)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
			resp := decodeResponse(t, w)
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestRegisterRelayRoutes_Auth(t *testing.T) {
	engine := newRelayEngine(t)

	t.Run("protected route needs a key", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/orders/O-1?supplierId=S")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, middleware.MsgMissingAuthHeader, decodeResponse(t, w).Message)
	})

	t.Run("health is public", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/health")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Integration API is healthy", decodeResponse(t, w).Message)
	})

	t.Run("preflight skips auth", func(t *testing.T) {
		w := serve(engine, http.MethodOptions, "/api/products/sync")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	})
}
