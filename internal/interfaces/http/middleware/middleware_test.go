package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/supplierhub/relay/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEngine mounts handlers on a single route that answers "ok"
func newTestEngine(method, path string, handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	engine.Handle(method, path, handlers...)
	return engine
}

func serve(engine http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
