package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supplierhub/relay/internal/interfaces/http/dto"
)

// MsgMethodNotAllowed is returned for any method an endpoint does not serve
const MsgMethodNotAllowed = "Method not allowed"

// CORSConfig holds CORS middleware configuration
type CORSConfig struct {
	AllowOrigin  string
	AllowHeaders []string
}

// DefaultCORSConfig returns default CORS configuration.
// Relay endpoints are called server to server and from the dashboard, so any
// origin is accepted.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigin:  "*",
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}
}

// AllowMethodWithConfig guards an endpoint that serves exactly one method. It
// sets the CORS headers, answers preflight with an empty 200 and rejects every
// other method with 405.
func AllowMethodWithConfig(method string, cfg CORSConfig) gin.HandlerFunc {
	allowMethods := method + ", " + http.MethodOptions
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", allowHeaders)

		switch c.Request.Method {
		case method:
			c.Next()
		case http.MethodOptions:
			c.AbortWithStatus(http.StatusOK)
		default:
			h.Set("Allow", allowMethods)
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed,
				dto.NewErrorResponse(http.StatusMethodNotAllowed, MsgMethodNotAllowed))
		}
	}
}

// RequestID adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" || len(requestID) > MaxRequestIDLength {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// SecurityConfig holds configuration for security headers
type SecurityConfig struct {
	HSTSEnabled bool
	HSTSMaxAge  int // in seconds
}

// DefaultSecurityConfig returns secure default settings.
// HSTS only makes sense behind TLS and is off by default.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		HSTSEnabled: false,
		HSTSMaxAge:  31536000, // 1 year
	}
}

// SecureWithConfig adds security headers to responses with custom configuration
func SecureWithConfig(cfg SecurityConfig) gin.HandlerFunc {
	var hstsValue string
	if cfg.HSTSEnabled {
		hstsValue = fmt.Sprintf("max-age=%d; includeSubDomains", cfg.HSTSMaxAge)
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "no-referrer")
		// JSON API, nothing to render
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		if hstsValue != "" {
			h.Set("Strict-Transport-Security", hstsValue)
		}
		c.Next()
	}
}

// abortWithError writes the envelope for err and stops the chain
func abortWithError(c *gin.Context, err error) {
	status, resp := dto.FromError(err)
	c.AbortWithStatusJSON(status, resp)
}
