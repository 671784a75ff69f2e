package relay

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/supplierhub/relay/internal/domain/relay"
)

const orderStatusList = "draft, sent, confirmed, shipped, delivered, cancelled, invoiced, paid"

// SubmitOrderCommand is a new order pushed by the Menu Platform
type SubmitOrderCommand struct {
	OrderID               ID                 `json:"orderId" validate:"required,identifier" swaggertype:"string"`
	RestaurantID          ID                 `json:"restaurantId" validate:"required,identifier" swaggertype:"string"`
	SupplierID            ID                 `json:"supplierId" validate:"required,identifier" swaggertype:"string"`
	Items                 []OrderItemInput   `json:"items" validate:"required,min=1,dive"`
	DeliveryInfo          *DeliveryInfoInput `json:"deliveryInfo"`
	Status                string             `json:"status" validate:"omitempty,oneof=draft sent confirmed shipped delivered cancelled invoiced paid"`
	OrderDate             string             `json:"orderDate"`
	RequestedDeliveryDate string             `json:"requestedDeliveryDate"`
	Notes                 string             `json:"notes"`
}

// OrderItemInput is one ordered line
type OrderItemInput struct {
	ProductID   ID     `json:"productId" validate:"required,identifier" swaggertype:"string"`
	ProductName string `json:"productName" validate:"required"`
	SKU         string `json:"sku"`
	Quantity    Number `json:"quantity" validate:"required,gt=0" swaggertype:"number"`
	UnitPrice   Number `json:"unitPrice" validate:"present,gte=0" swaggertype:"number"`
	Unit        string `json:"unit" validate:"required"`
	Notes       string `json:"notes"`
}

// DeliveryInfoInput carries the optional delivery details of an order
type DeliveryInfoInput struct {
	Address      json.RawMessage `json:"address"`
	ShippingCost Number          `json:"shippingCost" validate:"omitempty,gte=0" swaggertype:"number"`
}

func (c *SubmitOrderCommand) typeMessage(path string) string {
	switch path {
	case "items":
		return "items array is required and cannot be empty"
	case "status":
		return "status must be one of: " + orderStatusList
	}
	return ""
}

func (c *SubmitOrderCommand) fieldMessage(fe validator.FieldError) string {
	if inList(fe, "items") {
		switch {
		case fe.Field() == "quantity" && fe.Tag() != "required":
			return "Item quantity must be a positive number"
		case fe.Field() == "unitPrice" && fe.Tag() != "present":
			return "Item unitPrice must be a non-negative number"
		}
		return "Order item missing required field: " + fe.Field()
	}
	switch fe.Field() {
	case "items":
		return "items array is required and cannot be empty"
	case "status":
		return "status must be one of: " + orderStatusList
	case "shippingCost":
		return "deliveryInfo.shippingCost must be a non-negative number"
	}
	return fe.Field() + " is required"
}

func (c *SubmitOrderCommand) toOrder() *relay.Order {
	items := make([]relay.OrderItem, 0, len(c.Items))
	for _, in := range c.Items {
		items = append(items, relay.OrderItem{
			ProductID:   in.ProductID.String(),
			ProductName: in.ProductName,
			SKU:         in.SKU,
			Quantity:    in.Quantity.Decimal(),
			UnitPrice:   in.UnitPrice.Decimal(),
			Unit:        in.Unit,
			Notes:       in.Notes,
		})
	}

	order := &relay.Order{
		OrderID:               c.OrderID.String(),
		RestaurantID:          c.RestaurantID.String(),
		SupplierID:            c.SupplierID.String(),
		Items:                 items,
		Status:                relay.OrderStatus(c.Status),
		OrderDate:             c.OrderDate,
		RequestedDeliveryDate: c.RequestedDeliveryDate,
		Notes:                 c.Notes,
	}
	if c.DeliveryInfo != nil {
		order.Shipping = c.DeliveryInfo.ShippingCost.Decimal()
		order.DeliveryAddress = c.DeliveryInfo.Address
	}
	return order
}

// NotifyBackorderCommand reports order lines the supplier cannot fill
type NotifyBackorderCommand struct {
	OrderID              ID                   `json:"orderId" validate:"required,identifier" swaggertype:"string"`
	RestaurantID         ID                   `json:"restaurantId" validate:"required,identifier" swaggertype:"string"`
	SupplierID           ID                   `json:"supplierId" validate:"required,identifier" swaggertype:"string"`
	BackorderedItems     []BackorderItemInput `json:"backorderedItems" validate:"required,min=1,dive"`
	Reason               string               `json:"reason"`
	EstimatedRestockDate string               `json:"estimatedRestockDate"`
}

// BackorderItemInput is one short line
type BackorderItemInput struct {
	ProductID         ID     `json:"productId" validate:"required,identifier" swaggertype:"string"`
	ProductName       string `json:"productName" validate:"required"`
	SKU               string `json:"sku"`
	RequestedQuantity Number `json:"requestedQuantity" validate:"present,gt=0" swaggertype:"number"`
	AvailableQuantity Number `json:"availableQuantity" validate:"present,gte=0" swaggertype:"number"`
	Unit              string `json:"unit"`
	UnitPrice         Number `json:"unitPrice" swaggertype:"number"`
	Notes             string `json:"notes"`
}

func (c *NotifyBackorderCommand) typeMessage(path string) string {
	if path == "backorderedItems" {
		return "backorderedItems array is required and cannot be empty"
	}
	return ""
}

func (c *NotifyBackorderCommand) fieldMessage(fe validator.FieldError) string {
	if inList(fe, "backorderedItems") {
		switch {
		case fe.Field() == "requestedQuantity" && fe.Tag() != "present":
			return "Item requestedQuantity must be a positive number"
		case fe.Field() == "availableQuantity" && fe.Tag() != "present":
			return "Item availableQuantity must be a non-negative number"
		}
		return "Backordered item missing required field: " + fe.Field()
	}
	if fe.Field() == "backorderedItems" {
		return "backorderedItems array is required and cannot be empty"
	}
	return fe.Field() + " is required"
}

func (c *NotifyBackorderCommand) toBackorder() *relay.Backorder {
	items := make([]relay.BackorderItem, 0, len(c.BackorderedItems))
	for _, in := range c.BackorderedItems {
		items = append(items, relay.BackorderItem{
			ProductID:         in.ProductID.String(),
			ProductName:       in.ProductName,
			SKU:               in.SKU,
			RequestedQuantity: in.RequestedQuantity.Decimal(),
			AvailableQuantity: in.AvailableQuantity.Decimal(),
			Unit:              in.Unit,
			UnitPrice:         in.UnitPrice.Decimal(),
			Notes:             in.Notes,
		})
	}
	return &relay.Backorder{
		OrderID:              c.OrderID.String(),
		RestaurantID:         c.RestaurantID.String(),
		SupplierID:           c.SupplierID.String(),
		Items:                items,
		Reason:               c.Reason,
		EstimatedRestockDate: c.EstimatedRestockDate,
	}
}

// SyncProductsCommand pushes a supplier catalog to the Menu Platform.
// An empty product list is allowed.
type SyncProductsCommand struct {
	SupplierID ID             `json:"supplierId" validate:"required,identifier" swaggertype:"string"`
	Products   []ProductInput `json:"products" validate:"required,dive"`
}

// ProductInput is one catalog product as sent by the supplier
type ProductInput struct {
	ID                   ID     `json:"id" validate:"required,identifier" swaggertype:"string"`
	Name                 string `json:"name" validate:"required"`
	Description          string `json:"description" validate:"required"`
	Price                Number `json:"price" validate:"required,gte=0" swaggertype:"number"`
	Currency             string `json:"currency" validate:"required"`
	Category             string `json:"category" validate:"required"`
	Unit                 string `json:"unit" validate:"required"`
	Stock                Number `json:"stock" swaggertype:"number"`
	ImageURL             string `json:"imageUrl"`
	IsAvailable          Flag   `json:"isAvailable" swaggertype:"boolean"`
	MinimumOrderQuantity Number `json:"minimumOrderQuantity" swaggertype:"number"`
	LeadTimeDays         Number `json:"leadTimeDays" swaggertype:"number"`
	Brand                string `json:"brand"`
	SKU                  string `json:"sku"`
}

func (c *SyncProductsCommand) typeMessage(path string) string {
	if path == "products" {
		return "products array is required"
	}
	return ""
}

func (c *SyncProductsCommand) fieldMessage(fe validator.FieldError) string {
	if inList(fe, "products") {
		if fe.Field() == "price" && fe.Tag() != "required" {
			return "Product price must be a non-negative number"
		}
		return "Product missing required field: " + fe.Field()
	}
	if fe.Field() == "products" {
		return "products array is required"
	}
	return fe.Field() + " is required"
}

func (c *SyncProductsCommand) toCatalog() []relay.CatalogProduct {
	products := make([]relay.CatalogProduct, 0, len(c.Products))
	for _, in := range c.Products {
		products = append(products, relay.CatalogProduct{
			ID:                   in.ID.String(),
			Name:                 in.Name,
			Description:          in.Description,
			Price:                in.Price.Decimal(),
			Currency:             in.Currency,
			Category:             in.Category,
			Stock:                in.Stock.IntOr(0),
			Unit:                 in.Unit,
			ImageURL:             in.ImageURL,
			IsAvailable:          !in.IsAvailable.IsExplicitFalse(),
			MinimumOrderQuantity: in.MinimumOrderQuantity.IntOr(relay.DefaultMinimumOrderQuantity),
			LeadTimeDays:         in.LeadTimeDays.IntOr(relay.DefaultLeadTimeDays),
			Brand:                in.Brand,
			SKU:                  in.SKU,
		})
	}
	return products
}

// UpdateAvailabilityCommand patches stock fields of one product.
// ProductID comes from the path, the rest from the body.
type UpdateAvailabilityCommand struct {
	ProductID     string `json:"-" uri:"id" validate:"required"`
	SupplierID    ID     `json:"supplierId" validate:"required,identifier" swaggertype:"string"`
	StockQuantity Number `json:"stockQuantity" validate:"omitempty,gte=0" swaggertype:"number"`
	IsAvailable   Flag   `json:"isAvailable" validate:"omitempty,strictbool" swaggertype:"boolean"`
}

func availabilityStructLevel(sl validator.StructLevel) {
	cmd := sl.Current().Interface().(UpdateAvailabilityCommand)
	if !cmd.StockQuantity.Present() && !cmd.IsAvailable.Present() {
		sl.ReportError(cmd.StockQuantity, "stockQuantity", "StockQuantity", "required_without", "isAvailable")
	}
}

func (c *UpdateAvailabilityCommand) fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "id":
		return "Product ID is required"
	case "supplierId":
		return "supplierId is required"
	case "stockQuantity":
		if fe.Tag() == "required_without" {
			return "At least one of stockQuantity or isAvailable must be provided"
		}
		return "stockQuantity must be a non-negative number"
	case "isAvailable":
		return "isAvailable must be a boolean"
	}
	return fe.Field() + " is invalid"
}

func (c *UpdateAvailabilityCommand) toFields() relay.AvailabilityFields {
	var fields relay.AvailabilityFields
	if c.StockQuantity.Valid() {
		stock := c.StockQuantity.Decimal().IntPart()
		fields.StockQuantity = &stock
	}
	if c.IsAvailable.Valid() {
		available := c.IsAvailable.Value()
		fields.IsAvailable = &available
	}
	return fields
}

// GetProductQuery looks up one Supplier Portal product
type GetProductQuery struct {
	ProductID  string `uri:"id" validate:"required"`
	SupplierID string `form:"supplierId" validate:"required"`
}

func (q *GetProductQuery) fieldMessage(fe validator.FieldError) string {
	if fe.Field() == "id" {
		return "Product ID is required"
	}
	return "supplierId query parameter is required"
}

// GetOrderQuery looks up one Supplier Portal order
type GetOrderQuery struct {
	OrderID    string `uri:"orderId" validate:"required"`
	SupplierID string `form:"supplierId" validate:"required"`
}

func (q *GetOrderQuery) fieldMessage(fe validator.FieldError) string {
	if fe.Field() == "orderId" {
		return "Order ID is required"
	}
	return "supplierId query parameter is required"
}

// ListSyncLogsQuery filters the sync log listing
type ListSyncLogsQuery struct {
	SupplierID string `form:"supplierId"`
	Action     string `form:"action" validate:"omitempty,oneof=order_relay backorder_notice product_sync availability_update"`
	Status     string `form:"status" validate:"omitempty,oneof=success failed"`
	Limit      int    `form:"limit" validate:"omitempty,min=1,max=200"`
}

func (q *ListSyncLogsQuery) fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "action":
		return "action must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "status":
		return "status must be one of: success, failed"
	}
	return "limit must be between 1 and 200"
}
