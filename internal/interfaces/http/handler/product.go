package handler

import (
	"github.com/gin-gonic/gin"
	relayapp "github.com/supplierhub/relay/internal/application/relay"
)

// Product endpoint success messages
const (
	MsgProductsSynced       = "Products synced successfully to Menu Platform"
	MsgAvailabilityUpdated  = "Product availability updated successfully"
	MsgProductDetailsLoaded = "Product details retrieved successfully"
)

// ProductHandler serves the catalog endpoints
type ProductHandler struct {
	BaseHandler
	productService *relayapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *relayapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// Sync pushes a supplier catalog to the Menu Platform
// @Summary      Sync supplier catalog
// @Description  Pushes the whole product list of a supplier to the Menu Platform in one call
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body relayapp.SyncProductsCommand true "Supplier catalog"
// @Success      200 {object} dto.Response{data=relayapp.ProductSyncResult}
// @Failure      400 {object} dto.Response
// @Failure      401 {object} dto.Response
// @Failure      413 {object} dto.Response
// @Failure      429 {object} dto.Response
// @Failure      502 {object} dto.Response
// @Security     BearerAuth
// @Router       /products/sync [post]
func (h *ProductHandler) Sync(c *gin.Context) {
	var cmd relayapp.SyncProductsCommand
	if !h.bindJSON(c, &cmd) {
		return
	}

	result, err := h.productService.SyncProducts(c.Request.Context(), &cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result, MsgProductsSynced)
}

// UpdateAvailability patches stock fields on the Menu Platform
// @Summary      Update product availability
// @Description  Sends only the fields present in the body. At least one of stockQuantity or isAvailable is required.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body relayapp.UpdateAvailabilityCommand true "Availability fields"
// @Success      200 {object} dto.Response{data=relayapp.AvailabilityResult}
// @Failure      400 {object} dto.Response
// @Failure      401 {object} dto.Response
// @Failure      429 {object} dto.Response
// @Failure      502 {object} dto.Response
// @Security     BearerAuth
// @Router       /products/{id}/availability [patch]
func (h *ProductHandler) UpdateAvailability(c *gin.Context) {
	var cmd relayapp.UpdateAvailabilityCommand
	if !h.bindJSON(c, &cmd) {
		return
	}
	cmd.ProductID = c.Param("id")

	result, err := h.productService.UpdateAvailability(c.Request.Context(), &cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result, MsgAvailabilityUpdated)
}

// GetByID fetches one product from the Supplier Portal
// @Summary      Get product by ID
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        supplierId query string true "Supplier ID"
// @Success      200 {object} dto.Response{data=relay.ProductDetails}
// @Failure      400 {object} dto.Response
// @Failure      401 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      502 {object} dto.Response
// @Security     BearerAuth
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	query := relayapp.GetProductQuery{
		ProductID:  c.Param("id"),
		SupplierID: c.Query("supplierId"),
	}

	product, err := h.productService.GetProduct(c.Request.Context(), &query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product, MsgProductDetailsLoaded)
}
