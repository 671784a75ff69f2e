package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supplierhub/relay/internal/interfaces/http/dto"
	"github.com/supplierhub/relay/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "/api", r.prefix)
	assert.Empty(t, r.registrars)
}

func TestRouterWithPrefix(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithPrefix("/relay"))

	assert.Equal(t, "/relay", r.prefix)
}

func TestRouterRegister(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("test", "/test")
	r.Register(group)

	assert.Len(t, r.registrars, 1)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	w := serve(engine, http.MethodGet, "/api/test/ping")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterSetup_NoRoute(t *testing.T) {
	engine := gin.New()
	NewRouter(engine).Setup()

	w := serve(engine, http.MethodGet, "/api/unknown")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, MsgRouteNotFound, resp.Message)
}

func TestDomainGroup(t *testing.T) {
	ok := func(body string) gin.HandlerFunc {
		return func(c *gin.Context) { c.String(http.StatusOK, body) }
	}

	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("orders", "/orders")
		assert.Equal(t, "orders", g.Name())
		assert.Equal(t, "/orders", g.Prefix())
	})

	routeTests := []struct {
		name     string
		register func(g *DomainGroup)
		method   string
	}{
		{"registers GET route", func(g *DomainGroup) { g.GET("/items/:id", ok("got")) }, http.MethodGet},
		{"registers POST route", func(g *DomainGroup) { g.POST("/items/:id", ok("posted")) }, http.MethodPost},
		{"registers PATCH route", func(g *DomainGroup) { g.PATCH("/items/:id", ok("patched")) }, http.MethodPatch},
	}
	for _, tt := range routeTests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			g := NewDomainGroup("test", "/test")
			tt.register(g)
			g.RegisterRoutes(engine.Group("/api"))

			w := serve(engine, tt.method, "/api/test/items/123")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.method+", OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		})
	}

	t.Run("rejects other methods with 405", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.POST("/items", ok("created"))
		g.RegisterRoutes(engine.Group("/api"))

		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			w := serve(engine, method, "/api/test/items")

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
			assert.Equal(t, "POST, OPTIONS", w.Header().Get("Allow"))
			assert.Equal(t, middleware.MsgMethodNotAllowed, decodeResponse(t, w).Message)
		}
	})

	t.Run("answers preflight before group middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.Use(func(c *gin.Context) {
			c.AbortWithStatus(http.StatusUnauthorized)
		})
		g.POST("/items", ok("created"))
		g.RegisterRoutes(engine.Group("/api"))

		w := serve(engine, http.MethodOptions, "/api/test/items")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("applies middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.Use(func(c *gin.Context) {
			c.Header("X-Test-Middleware", "applied")
			c.Next()
		})
		g.GET("/items", ok("ok"))
		g.RegisterRoutes(engine.Group("/api"))

		w := serve(engine, http.MethodGet, "/api/test/items")

		assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
	})

	t.Run("custom CORS", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test").WithCORS(middleware.CORSConfig{
			AllowOrigin:  "https://dashboard.example.com",
			AllowHeaders: []string{"Authorization"},
		})
		g.Group("nested", "/nested").GET("", ok("nested"))
		g.RegisterRoutes(engine.Group("/api"))

		w := serve(engine, http.MethodGet, "/api/test/nested")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://dashboard.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Authorization", w.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("creates subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("system", "")
		g.GET("/health", ok("health"))
		g.Group("sync-logs", "/sync-logs").GET("", ok("logs"))
		g.RegisterRoutes(engine.Group("/api"))

		w1 := serve(engine, http.MethodGet, "/api/health")
		assert.Equal(t, http.StatusOK, w1.Code)
		assert.Equal(t, "health", w1.Body.String())

		w2 := serve(engine, http.MethodGet, "/api/sync-logs")
		assert.Equal(t, http.StatusOK, w2.Code)
		assert.Equal(t, "logs", w2.Body.String())
	})
}

func TestChainedMethodCalls(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	g := NewDomainGroup("test", "/test")
	g.GET("/a", func(c *gin.Context) { c.String(http.StatusOK, "a") }).
		POST("/b", func(c *gin.Context) { c.String(http.StatusOK, "b") }).
		PATCH("/c", func(c *gin.Context) { c.String(http.StatusOK, "c") })

	r.Register(g).Setup()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/test/a"},
		{http.MethodPost, "/api/test/b"},
		{http.MethodPatch, "/api/test/c"},
	}

	for _, tt := range tests {
		w := serve(engine, tt.method, tt.path)
		assert.Equal(t, http.StatusOK, w.Code, "Route %s %s should work", tt.method, tt.path)
	}
}
