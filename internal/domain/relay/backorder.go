package relay

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultBackorderReason is sent when the caller gives no reason
	DefaultBackorderReason = "Insufficient stock"
	// BackorderPriorityNormal is the only priority the relay emits
	BackorderPriorityNormal = "normal"
)

// BackorderItem is a line the supplier cannot fill completely
type BackorderItem struct {
	ProductID         string
	ProductName       string
	SKU               string
	RequestedQuantity decimal.Decimal
	AvailableQuantity decimal.Decimal
	Unit              string
	UnitPrice         decimal.Decimal
	Notes             string
}

// BackorderQuantity returns requested − available. Available quantities above
// the request are forwarded as-is and yield a negative value.
func (i BackorderItem) BackorderQuantity() decimal.Decimal {
	return i.RequestedQuantity.Sub(i.AvailableQuantity)
}

// Backorder reports the unfilled part of an order
type Backorder struct {
	OrderID              string
	RestaurantID         string
	SupplierID           string
	Items                []BackorderItem
	Reason               string
	EstimatedRestockDate string
}

// TotalBackorderQuantity sums the per-item backorder quantities
func (b *Backorder) TotalBackorderQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.BackorderQuantity())
	}
	return total
}

// BackorderNotice is the body posted to the Supplier Portal backorder endpoint
type BackorderNotice struct {
	OrderID              string          `json:"orderId"`
	RestaurantID         string          `json:"restaurantId"`
	SupplierID           string          `json:"supplierId"`
	BackorderedItems     []BackorderLine `json:"backorderedItems"`
	Reason               string          `json:"reason"`
	EstimatedRestockDate *string         `json:"estimatedRestockDate,omitempty"`
	NotificationDate     string          `json:"notificationDate"`
	Priority             string          `json:"priority"`
}

// BackorderLine is the forwarded form of a BackorderItem
type BackorderLine struct {
	ProductID         string  `json:"productId"`
	ProductName       string  `json:"productName"`
	SKU               *string `json:"sku"`
	RequestedQuantity float64 `json:"requestedQuantity"`
	AvailableQuantity float64 `json:"availableQuantity"`
	BackorderQuantity float64 `json:"backorderQuantity"`
	Unit              *string `json:"unit,omitempty"`
	UnitPrice         float64 `json:"unitPrice"`
	Notes             *string `json:"notes"`
}

// Notice builds the Supplier Portal payload
func (b *Backorder) Notice(now time.Time) *BackorderNotice {
	reason := b.Reason
	if reason == "" {
		reason = DefaultBackorderReason
	}

	lines := make([]BackorderLine, 0, len(b.Items))
	for _, item := range b.Items {
		lines = append(lines, BackorderLine{
			ProductID:         item.ProductID,
			ProductName:       item.ProductName,
			SKU:               nullable(item.SKU),
			RequestedQuantity: item.RequestedQuantity.InexactFloat64(),
			AvailableQuantity: item.AvailableQuantity.InexactFloat64(),
			BackorderQuantity: item.BackorderQuantity().InexactFloat64(),
			Unit:              nullable(item.Unit),
			UnitPrice:         item.UnitPrice.InexactFloat64(),
			Notes:             nullable(item.Notes),
		})
	}

	return &BackorderNotice{
		OrderID:              b.OrderID,
		RestaurantID:         b.RestaurantID,
		SupplierID:           b.SupplierID,
		BackorderedItems:     lines,
		Reason:               reason,
		EstimatedRestockDate: nullable(b.EstimatedRestockDate),
		NotificationDate:     FormatTimestamp(now),
		Priority:             BackorderPriorityNormal,
	}
}
