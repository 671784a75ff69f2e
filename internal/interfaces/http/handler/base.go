package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	relayapp "github.com/supplierhub/relay/internal/application/relay"
	"github.com/supplierhub/relay/internal/domain/relay"
	"github.com/supplierhub/relay/internal/infrastructure/logger"
	"github.com/supplierhub/relay/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// MsgInvalidJSON is returned when a request body cannot be decoded
const MsgInvalidJSON = "Invalid JSON body"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 envelope
func (h *BaseHandler) Success(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data, message))
}

// Error sends an error envelope with the given status
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(statusCode, message))
}

// HandleError converts a relay error into its envelope. Anything that is
// not a relay error is logged and reported as an internal error.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	if relay.IsKind(err, relay.KindInternal) || !isRelayError(err) {
		logger.GetGinLogger(c).Error("Unexpected relay failure", zap.Error(err))
	}

	status, resp := dto.FromError(err)
	c.JSON(status, resp)
}

// bindJSON decodes the request body into dst and writes the error envelope
// on failure. A field sent with the wrong JSON type is reported with that
// field's message. An empty body decodes as an empty object so field validation
// reports what is missing.
func (h *BaseHandler) bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		h.Error(c, http.StatusRequestEntityTooLarge, "Request body exceeds maximum allowed size")
		return false
	}

	_ = c.Error(err)
	if verr := relayapp.TypeMismatch(dst, err); verr != nil {
		h.HandleError(c, verr)
		return false
	}
	h.Error(c, http.StatusBadRequest, MsgInvalidJSON)
	return false
}

func isRelayError(err error) bool {
	var re *relay.Error
	return errors.As(err, &re)
}
