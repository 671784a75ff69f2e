package relay

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catalog defaults applied when a supplier omits optional numeric fields
const (
	DefaultMinimumOrderQuantity = 1
	DefaultLeadTimeDays         = 0
)

// CatalogProduct is a supplier product pushed to the Menu Platform
type CatalogProduct struct {
	ID                   string
	Name                 string
	Description          string
	Price                decimal.Decimal
	Currency             string
	Category             string
	Stock                int64
	Unit                 string
	ImageURL             string
	IsAvailable          bool
	MinimumOrderQuantity int64
	LeadTimeDays         int64
	Brand                string
	SKU                  string
}

// CatalogEntry is the forwarded form of a CatalogProduct
type CatalogEntry struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Price                float64 `json:"price"`
	Currency             string  `json:"currency"`
	Category             string  `json:"category"`
	Stock                int64   `json:"stock"`
	Unit                 string  `json:"unit"`
	ImageURL             *string `json:"imageUrl"`
	IsAvailable          bool    `json:"isAvailable"`
	MinimumOrderQuantity int64   `json:"minimumOrderQuantity"`
	LeadTimeDays         int64   `json:"leadTimeDays"`
	Brand                *string `json:"brand"`
	SKU                  *string `json:"sku"`
}

// Entry converts the product into its Menu Platform representation
func (p CatalogProduct) Entry() CatalogEntry {
	return CatalogEntry{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Price:                p.Price.InexactFloat64(),
		Currency:             p.Currency,
		Category:             p.Category,
		Stock:                p.Stock,
		Unit:                 p.Unit,
		ImageURL:             nullable(p.ImageURL),
		IsAvailable:          p.IsAvailable,
		MinimumOrderQuantity: p.MinimumOrderQuantity,
		LeadTimeDays:         p.LeadTimeDays,
		Brand:                nullable(p.Brand),
		SKU:                  nullable(p.SKU),
	}
}

// CatalogSync is the body posted to the Menu Platform product sync endpoint.
// The whole batch goes out in a single call.
type CatalogSync struct {
	SupplierID string         `json:"supplierId"`
	Products   []CatalogEntry `json:"products"`
}

// NewCatalogSync builds the sync batch for a supplier
func NewCatalogSync(supplierID string, products []CatalogProduct) *CatalogSync {
	entries := make([]CatalogEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, p.Entry())
	}
	return &CatalogSync{SupplierID: supplierID, Products: entries}
}

// AvailabilityFields are the stock fields a supplier may patch. Nil fields
// are left untouched downstream and omitted from the payload.
type AvailabilityFields struct {
	StockQuantity *int64 `json:"stockQuantity,omitempty"`
	IsAvailable   *bool  `json:"isAvailable,omitempty"`
}

// Empty reports whether no field is set
func (f AvailabilityFields) Empty() bool {
	return f.StockQuantity == nil && f.IsAvailable == nil
}

// AvailabilityUpdate is the body sent to the Menu Platform availability endpoint
type AvailabilityUpdate struct {
	ProductID  string `json:"-"`
	SupplierID string `json:"supplierId"`
	AvailabilityFields
	UpdatedAt string `json:"updatedAt"`
}

// NewAvailabilityUpdate stamps a patch with the current time
func NewAvailabilityUpdate(productID, supplierID string, fields AvailabilityFields, now time.Time) *AvailabilityUpdate {
	return &AvailabilityUpdate{
		ProductID:          productID,
		SupplierID:         supplierID,
		AvailabilityFields: fields,
		UpdatedAt:          FormatTimestamp(now),
	}
}
