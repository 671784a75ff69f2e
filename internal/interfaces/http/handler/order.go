package handler

import (
	"github.com/gin-gonic/gin"
	relayapp "github.com/supplierhub/relay/internal/application/relay"
)

// Order endpoint success messages
const (
	MsgOrderSent          = "Order sent to supplier successfully"
	MsgBackorderSent      = "Backorder notification sent to supplier successfully"
	MsgOrderDetailsLoaded = "Order details retrieved successfully"
)

// OrderHandler serves the Menu Platform → Supplier Portal order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *relayapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *relayapp.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Webhook relays a new order to the Supplier Portal
// @Summary      Relay a new order
// @Description  Validates an order from the Menu Platform, computes its totals and creates it in the Supplier Portal
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body relayapp.SubmitOrderCommand true "Order pushed by the Menu Platform"
// @Success      200 {object} dto.Response{data=relayapp.OrderRelayResult}
// @Failure      400 {object} dto.Response
// @Failure      401 {object} dto.Response
// @Failure      413 {object} dto.Response
// @Failure      429 {object} dto.Response
// @Failure      502 {object} dto.Response
// @Security     BearerAuth
// @Router       /orders/webhook [post]
func (h *OrderHandler) Webhook(c *gin.Context) {
	var cmd relayapp.SubmitOrderCommand
	if !h.bindJSON(c, &cmd) {
		return
	}

	result, err := h.orderService.SubmitOrder(c.Request.Context(), &cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result, MsgOrderSent)
}

// Backorder relays a backorder notice to the Supplier Portal
// @Summary      Relay a backorder notice
// @Description  Reports order lines the supplier cannot fill, with the shortfall per line
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body relayapp.NotifyBackorderCommand true "Backordered lines"
// @Success      200 {object} dto.Response{data=relayapp.BackorderResult}
// @Failure      400 {object} dto.Response
// @Failure      401 {object} dto.Response
// @Failure      429 {object} dto.Response
// @Failure      502 {object} dto.Response
// @Security     BearerAuth
// @Router       /orders/backorder [post]
func (h *OrderHandler) Backorder(c *gin.Context) {
	var cmd relayapp.NotifyBackorderCommand
	if !h.bindJSON(c, &cmd) {
		return
	}

	result, err := h.orderService.NotifyBackorder(c.Request.Context(), &cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result, MsgBackorderSent)
}

// GetByID fetches one order from the Supplier Portal
// @Summary      Get order by ID
// @Tags         orders
// @Produce      json
// @Param        orderId path string true "Order ID"
// @Param        supplierId query string true "Supplier ID"
// @Success      200 {object} dto.Response{data=relay.OrderDetails}
// @Failure      400 {object} dto.Response
// @Failure      401 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      502 {object} dto.Response
// @Security     BearerAuth
// @Router       /orders/{orderId} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	query := relayapp.GetOrderQuery{
		OrderID:    c.Param("orderId"),
		SupplierID: c.Query("supplierId"),
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), &query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order, MsgOrderDetailsLoaded)
}
