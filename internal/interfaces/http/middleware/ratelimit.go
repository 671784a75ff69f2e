package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/supplierhub/relay/internal/domain/relay"
	"github.com/supplierhub/relay/internal/infrastructure/logger"
	"github.com/supplierhub/relay/internal/infrastructure/ratelimit"
	"go.uber.org/zap"
)

// MsgTooManyRequests is returned when a client exceeds its request budget
const MsgTooManyRequests = "Too many requests. Please try again later."

// RateLimit returns a rate limiting middleware keyed by client IP
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return RateLimitByKey(limiter, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByKey returns a rate limiting middleware with custom key extractor.
// Limiter errors let the request through.
func RateLimitByKey(limiter ratelimit.Limiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFunc(c)

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.GetGinLogger(c).Warn("Rate limiter unavailable, allowing request",
				zap.String("key", key),
				zap.Error(err),
			)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			abortWithError(c, relay.NewRateLimitedError(MsgTooManyRequests))
			return
		}

		c.Next()
	}
}
