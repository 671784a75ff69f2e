package relay

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/supplierhub/relay/internal/domain/relay"
)

// OrderRelayResult summarises an order forwarded to the Supplier Portal
type OrderRelayResult struct {
	OrderID                string            `json:"orderId"`
	RestaurantID           string            `json:"restaurantId"`
	SupplierID             string            `json:"supplierId"`
	ItemsCount             int               `json:"itemsCount"`
	Total                  float64           `json:"total"`
	Status                 relay.OrderStatus `json:"status"`
	CreatedAt              string            `json:"createdAt"`
	SupplierPortalResponse json.RawMessage   `json:"supplierPortalResponse"`
}

// BackorderResult summarises a backorder notice sent to the Supplier Portal
type BackorderResult struct {
	OrderID                string          `json:"orderId"`
	RestaurantID           string          `json:"restaurantId"`
	SupplierID             string          `json:"supplierId"`
	BackorderedItemsCount  int             `json:"backorderedItemsCount"`
	TotalBackorderQuantity float64         `json:"totalBackorderQuantity"`
	NotificationSentAt     string          `json:"notificationSentAt"`
	SupplierPortalResponse json.RawMessage `json:"supplierPortalResponse"`
}

// ProductSyncResult summarises a catalog batch pushed to the Menu Platform
type ProductSyncResult struct {
	SupplierID           string          `json:"supplierId"`
	ProductsCount        int             `json:"productsCount"`
	SyncedAt             string          `json:"syncedAt"`
	MenuPlatformResponse json.RawMessage `json:"menuPlatformResponse"`
}

// AvailabilityResult summarises an availability patch
type AvailabilityResult struct {
	ProductID            string                   `json:"productId"`
	SupplierID           string                   `json:"supplierId"`
	Updates              relay.AvailabilityFields `json:"updates"`
	UpdatedAt            string                   `json:"updatedAt"`
	MenuPlatformResponse json.RawMessage          `json:"menuPlatformResponse"`
}

// SyncLogResponse represents a sync log entry in API responses
type SyncLogResponse struct {
	ID             uuid.UUID        `json:"id"`
	Action         relay.SyncAction `json:"action"`
	Platform       relay.Platform   `json:"platform"`
	SupplierID     string           `json:"supplierId"`
	RestaurantID   string           `json:"restaurantId,omitempty"`
	ReferenceID    string           `json:"referenceId,omitempty"`
	Status         relay.SyncStatus `json:"status"`
	ItemsProcessed int              `json:"itemsProcessed"`
	ItemsSucceeded int              `json:"itemsSucceeded"`
	ItemsFailed    int              `json:"itemsFailed"`
	Error          string           `json:"error,omitempty"`
	DurationMs     int64            `json:"durationMs"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ToSyncLogResponse converts a domain SyncLog to its response form
func ToSyncLogResponse(entry relay.SyncLog) SyncLogResponse {
	return SyncLogResponse{
		ID:             entry.ID,
		Action:         entry.Action,
		Platform:       entry.Platform,
		SupplierID:     entry.SupplierID,
		RestaurantID:   entry.RestaurantID,
		ReferenceID:    entry.ReferenceID,
		Status:         entry.Status,
		ItemsProcessed: entry.ItemsProcessed,
		ItemsSucceeded: entry.ItemsSucceeded,
		ItemsFailed:    entry.ItemsFailed,
		Error:          entry.Error,
		DurationMs:     entry.Duration.Milliseconds(),
		CreatedAt:      entry.CreatedAt,
	}
}
