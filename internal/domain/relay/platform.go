package relay

import (
	"context"
	"encoding/json"
)

// Platform identifies a downstream system of record
type Platform string

const (
	PlatformSupplierPortal Platform = "supplier_portal"
	PlatformMenuPlatform   Platform = "menu_platform"
)

// DisplayName is the name used in caller-facing messages
func (p Platform) DisplayName() string {
	switch p {
	case PlatformSupplierPortal:
		return "Supplier Portal"
	case PlatformMenuPlatform:
		return "Menu Platform"
	}
	return string(p)
}

// SupplierPortal owns purchase orders and the supplier catalog.
// Each method performs exactly one outbound call and returns the raw
// response document. Failures wrap one of the ErrPlatform* sentinels.
type SupplierPortal interface {
	SubmitOrder(ctx context.Context, order *OrderSubmission) (json.RawMessage, error)
	NotifyBackorder(ctx context.Context, notice *BackorderNotice) (json.RawMessage, error)
	GetProduct(ctx context.Context, productID, supplierID string) (json.RawMessage, error)
	GetOrder(ctx context.Context, orderID, supplierID string) (json.RawMessage, error)
}

// MenuPlatform consumes the supplier catalog
type MenuPlatform interface {
	SyncProducts(ctx context.Context, batch *CatalogSync) (json.RawMessage, error)
	UpdateAvailability(ctx context.Context, update *AvailabilityUpdate) (json.RawMessage, error)
}
