package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supplierhub/relay/internal/interfaces/http/dto"
)

// MsgBodyTooLarge is returned when a request body exceeds the configured limit
const MsgBodyTooLarge = "Request body exceeds maximum allowed size"

// BodyLimit returns a middleware that limits request body size
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(http.StatusRequestEntityTooLarge, MsgBodyTooLarge))
			return
		}

		// Chunked bodies are cut off while reading
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
