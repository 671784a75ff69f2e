package relay

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is applied to every order subtotal. There is no per-supplier
// or per-region tax configuration.
var DefaultTaxRate = decimal.NewFromFloat(0.08)

// OrderSourceMenuPlatform attributes relayed orders to the ordering platform
const OrderSourceMenuPlatform = "menu_platform"

// OrderStatus is the lifecycle state owned by the Supplier Portal.
// The relay only forwards it.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusSent      OrderStatus = "sent"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusInvoiced  OrderStatus = "invoiced"
	OrderStatusPaid      OrderStatus = "paid"
)

// IsValid returns true if the status is one of the known lifecycle states
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusSent, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusInvoiced, OrderStatusPaid:
		return true
	}
	return false
}

// PaymentStatus tracks settlement of an order
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// OrderItem is a single ordered product line
type OrderItem struct {
	ProductID   string
	ProductName string
	SKU         string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Unit        string
	Notes       string
}

// LineTotal returns quantity × unit price
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// OrderTotals holds the computed money fields of an order
type OrderTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// CalculateTotals sums the line totals and applies the fixed tax rate.
// Tax is rounded to cents; discount is always zero.
func CalculateTotals(items []OrderItem, shipping decimal.Decimal) OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	tax := subtotal.Mul(DefaultTaxRate).Round(2)
	discount := decimal.Zero

	return OrderTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal.Add(tax).Add(shipping).Sub(discount),
	}
}

// Order is a purchase order received from the Menu Platform
type Order struct {
	OrderID               string
	RestaurantID          string
	SupplierID            string
	Items                 []OrderItem
	Shipping              decimal.Decimal
	DeliveryAddress       json.RawMessage
	Status                OrderStatus
	OrderDate             string
	RequestedDeliveryDate string
	Notes                 string
}

// Totals computes the order money fields
func (o *Order) Totals() OrderTotals {
	return CalculateTotals(o.Items, o.Shipping)
}

// OrderSubmission is the body posted to the Supplier Portal order endpoint
type OrderSubmission struct {
	OrderID               string          `json:"orderId"`
	RestaurantID          string          `json:"restaurantId"`
	SupplierID            string          `json:"supplierId"`
	Items                 []OrderLine     `json:"items"`
	Subtotal              float64         `json:"subtotal"`
	Tax                   float64         `json:"tax"`
	Shipping              float64         `json:"shipping"`
	Discount              float64         `json:"discount"`
	Total                 float64         `json:"total"`
	Status                OrderStatus     `json:"status"`
	OrderDate             string          `json:"orderDate"`
	RequestedDeliveryDate *string         `json:"requestedDeliveryDate,omitempty"`
	Notes                 *string         `json:"notes,omitempty"`
	DeliveryAddress       json.RawMessage `json:"deliveryAddress"`
	PaymentStatus         PaymentStatus   `json:"paymentStatus"`
	CreatedBy             string          `json:"createdBy"`
}

// OrderLine is the forwarded form of an OrderItem
type OrderLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	SKU         *string `json:"sku"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Unit        string  `json:"unit"`
	Total       float64 `json:"total"`
	Notes       *string `json:"notes"`
}

// Submission builds the Supplier Portal payload. Empty status and order date
// default to "sent" and now.
func (o *Order) Submission(now time.Time) *OrderSubmission {
	totals := o.Totals()

	status := o.Status
	if status == "" {
		status = OrderStatusSent
	}
	orderDate := o.OrderDate
	if orderDate == "" {
		orderDate = FormatTimestamp(now)
	}

	lines := make([]OrderLine, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, OrderLine{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         nullable(item.SKU),
			Quantity:    item.Quantity.InexactFloat64(),
			UnitPrice:   item.UnitPrice.InexactFloat64(),
			Unit:        item.Unit,
			Total:       item.LineTotal().InexactFloat64(),
			Notes:       nullable(item.Notes),
		})
	}

	return &OrderSubmission{
		OrderID:               o.OrderID,
		RestaurantID:          o.RestaurantID,
		SupplierID:            o.SupplierID,
		Items:                 lines,
		Subtotal:              totals.Subtotal.InexactFloat64(),
		Tax:                   totals.Tax.InexactFloat64(),
		Shipping:              totals.Shipping.InexactFloat64(),
		Discount:              totals.Discount.InexactFloat64(),
		Total:                 totals.Total.InexactFloat64(),
		Status:                status,
		OrderDate:             orderDate,
		RequestedDeliveryDate: nullable(o.RequestedDeliveryDate),
		Notes:                 nullable(o.Notes),
		DeliveryAddress:       nullJSON(o.DeliveryAddress),
		PaymentStatus:         PaymentStatusPending,
		CreatedBy:             OrderSourceMenuPlatform,
	}
}
