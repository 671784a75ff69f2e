package router

import (
	"github.com/gin-gonic/gin"
	"github.com/supplierhub/relay/internal/interfaces/http/handler"
)

// Handlers are the relay endpoint handlers
type Handlers struct {
	Order   *handler.OrderHandler
	Product *handler.ProductHandler
	Health  *handler.HealthHandler
	SyncLog *handler.SyncLogHandler
}

// RegisterRelayRoutes wires every relay endpoint onto r. protected runs in
// front of every handler except the health check, typically rate limiting
// followed by API key auth.
func RegisterRelayRoutes(r *Router, h Handlers, protected ...gin.HandlerFunc) {
	productRoutes := NewDomainGroup("products", "/products").Use(protected...)
	productRoutes.POST("/sync", h.Product.Sync)
	productRoutes.PATCH("/:id/availability", h.Product.UpdateAvailability)
	productRoutes.GET("/:id", h.Product.GetByID)

	orderRoutes := NewDomainGroup("orders", "/orders").Use(protected...)
	orderRoutes.POST("/webhook", h.Order.Webhook)
	orderRoutes.POST("/backorder", h.Order.Backorder)
	orderRoutes.GET("/:orderId", h.Order.GetByID)

	systemRoutes := NewDomainGroup("system", "")
	systemRoutes.GET("/health", h.Health.Check)
	if h.SyncLog != nil {
		systemRoutes.Group("sync-logs", "/sync-logs").Use(protected...).GET("", h.SyncLog.List)
	}

	r.Register(productRoutes).Register(orderRoutes).Register(systemRoutes)
}
