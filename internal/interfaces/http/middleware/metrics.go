package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supplierhub/relay/internal/infrastructure/telemetry"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route. A nil RelayMetrics
// records nothing.
func Metrics(m *telemetry.RelayMetrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Route template keeps cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.RecordRequest(c.Request.Context(), c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
