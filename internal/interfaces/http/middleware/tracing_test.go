package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTracedEngine(t *testing.T, status int) (*gin.Engine, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	engine := gin.New()
	engine.Use(RequestID(), TracingWithConfig(TracingConfig{
		ServiceName:    "supplier-relay-test",
		Enabled:        true,
		TracerProvider: tp,
	}), SpanEnricher())
	engine.GET("/api/orders/:orderId", func(c *gin.Context) {
		c.Status(status)
	})
	return engine, recorder
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracing(t *testing.T) {
	t.Run("records server span with request id", func(t *testing.T) {
		engine, recorder := newTracedEngine(t, http.StatusOK)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-1", nil)
		req.Header.Set("X-Request-ID", "req-42")
		serve(engine, req)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		v, ok := spanAttr(spans[0], "request_id")
		require.True(t, ok)
		assert.Equal(t, "req-42", v.AsString())
		assert.NotEqual(t, codes.Error, spans[0].Status().Code)
	})

	t.Run("marks server errors", func(t *testing.T) {
		engine, recorder := newTracedEngine(t, http.StatusBadGateway)

		serve(engine, httptest.NewRequest(http.MethodGet, "/api/orders/ORD-1", nil))

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
	})

	t.Run("disabled passes through", func(t *testing.T) {
		engine := newTestEngine(http.MethodGet, "/", TracingWithConfig(TracingConfig{Enabled: false}), SpanEnricher())
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
