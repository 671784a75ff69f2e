package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	relayapp "github.com/supplierhub/relay/internal/application/relay"
	"github.com/supplierhub/relay/internal/domain/relay"
)

// Sync log endpoint messages
const (
	MsgSyncLogsLoaded      = "Sync logs retrieved successfully"
	MsgSyncLogNotEnabled   = "Sync log is not enabled"
	msgInvalidSyncLogLimit = "limit must be between 1 and 200"
)

// SyncLogHandler lists relay audit entries
type SyncLogHandler struct {
	BaseHandler
	syncLogService *relayapp.SyncLogService
}

// NewSyncLogHandler creates a new SyncLogHandler. A nil service means the
// audit trail is switched off.
func NewSyncLogHandler(syncLogService *relayapp.SyncLogService) *SyncLogHandler {
	return &SyncLogHandler{syncLogService: syncLogService}
}

// List returns the most recent entries, newest first
// @Summary      List sync logs
// @Tags         sync-logs
// @Produce      json
// @Param        supplierId query string false "Supplier ID"
// @Param        action query string false "Relay action" Enums(order_relay, backorder_notice, product_sync, availability_update)
// @Param        status query string false "Outcome" Enums(success, failed)
// @Param        limit query int false "Maximum entries" default(50) minimum(1) maximum(200)
// @Success      200 {object} dto.Response{data=[]relayapp.SyncLogResponse}
// @Failure      400 {object} dto.Response
// @Failure      401 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /sync-logs [get]
func (h *SyncLogHandler) List(c *gin.Context) {
	if h.syncLogService == nil {
		h.Error(c, http.StatusNotFound, MsgSyncLogNotEnabled)
		return
	}

	var query relayapp.ListSyncLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		// Only limit is non-string
		h.HandleError(c, relay.NewValidationError("limit", msgInvalidSyncLogLimit))
		return
	}

	entries, err := h.syncLogService.List(c.Request.Context(), &query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries, MsgSyncLogsLoaded)
}
