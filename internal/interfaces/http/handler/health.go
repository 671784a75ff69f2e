package handler

import (
	"github.com/gin-gonic/gin"
	relayapp "github.com/supplierhub/relay/internal/application/relay"
	"github.com/supplierhub/relay/internal/interfaces/http/dto"
)

// HealthHandler serves the unauthenticated health check
type HealthHandler struct {
	healthService *relayapp.HealthService
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(healthService *relayapp.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Check reports configuration health. It never calls the platforms.
// @Summary      Health check
// @Description  Reports missing configuration and the state of optional dependencies. No authentication.
// @Tags         health
// @Produce      json
// @Success      200 {object} dto.Response{data=relayapp.HealthReport}
// @Failure      503 {object} dto.Response{data=relayapp.HealthReport}
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	report, status := h.healthService.Report(c.Request.Context())
	c.JSON(status, dto.NewResponse(status, report, "Integration API is "+report.Status))
}
