package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supplierhub/relay/internal/domain/relay"
)

const bearerPrefix = "Bearer "

// Caller-facing authentication messages
const (
	MsgMissingAuthHeader = "Missing or invalid Authorization header. Expected: Bearer <API_KEY>"
	MsgAPIKeyNotSet      = "Server configuration error: API key not configured"
	MsgInvalidAPIKey     = "Invalid API key"
)

// APIKeyAuth checks the bearer token against the shared API key.
// The header is checked before the key so an unconfigured server still
// reports malformed headers as 401.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	expected := []byte(apiKey)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortWithError(c, relay.NewUnauthorizedError(MsgMissingAuthHeader))
			return
		}

		if len(expected) == 0 {
			abortWithError(c, relay.NewMisconfiguredError(MsgAPIKeyNotSet))
			return
		}

		token := []byte(header[len(bearerPrefix):])
		if subtle.ConstantTimeCompare(token, expected) != 1 {
			abortWithError(c, relay.NewUnauthorizedError(MsgInvalidAPIKey))
			return
		}

		c.Next()
	}
}
