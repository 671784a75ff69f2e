package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func findEntry(t *testing.T, recorded *observer.ObservedLogs, msg string) observer.LoggedEntry {
	t.Helper()
	entries := recorded.FilterMessage(msg).All()
	require.NotEmpty(t, entries, "expected a %q entry", msg)
	return entries[0]
}

func TestGinMiddleware(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "req-123")
		c.Next()
	})
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/api/health", func(c *gin.Context) {
		assert.Equal(t, "req-123", GetRequestID(c.Request.Context()))
		c.Status(http.StatusOK)
	})
	router.POST("/api/orders/webhook", func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
	})
	router.GET("/api/boom", func(c *gin.Context) {
		c.Status(http.StatusBadGateway)
	})

	cases := []struct {
		method string
		path   string
		level  zapcore.Level
	}{
		{http.MethodGet, "/api/health?x=1", zapcore.InfoLevel},
		{http.MethodPost, "/api/orders/webhook", zapcore.WarnLevel},
		{http.MethodGet, "/api/boom", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
	}

	entries := recorded.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 3)
	for i, tc := range cases {
		assert.Equal(t, tc.level, entries[i].Level, tc.path)
		assert.Equal(t, "req-123", entries[i].ContextMap()["request_id"])
	}
	assert.Equal(t, "x=1", entries[0].ContextMap()["query"])
}

func TestGetGinLogger(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetGinLogger(c))

	l := zap.NewExample()
	c.Set("logger", l)
	assert.Same(t, l, GetGinLogger(c))
}

func TestRecovery(t *testing.T) {
	t.Run("uses the panic handler", func(t *testing.T) {
		core, recorded := observer.New(zapcore.ErrorLevel)

		router := gin.New()
		router.Use(Recovery(zap.New(core), func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		}))
		router.GET("/panic", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"status":"error"}`, w.Body.String())
		entry := findEntry(t, recorded, "Panic recovered")
		assert.Equal(t, "boom", entry.ContextMap()["error"])
	})

	t.Run("bare 500 without handler", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery(zap.NewNop(), nil))
		router.GET("/panic", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
