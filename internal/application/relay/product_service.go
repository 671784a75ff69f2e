package relay

import (
	"context"
	"errors"

	"github.com/supplierhub/relay/internal/domain/relay"
)

// ProductService pushes supplier catalog changes to the Menu Platform and
// serves product lookups from the Supplier Portal.
type ProductService struct {
	base
	menu   relay.MenuPlatform
	portal relay.SupplierPortal
}

// NewProductService creates a new ProductService
func NewProductService(menu relay.MenuPlatform, portal relay.SupplierPortal, opts ...Option) *ProductService {
	return &ProductService{
		base:   newBase(opts),
		menu:   menu,
		portal: portal,
	}
}

// SyncProducts forwards the whole catalog batch in a single call
func (s *ProductService) SyncProducts(ctx context.Context, cmd *SyncProductsCommand) (*ProductSyncResult, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	started := s.now()
	batch := relay.NewCatalogSync(cmd.SupplierID.String(), cmd.toCatalog())

	resp, err := s.menu.SyncProducts(ctx, batch)
	s.record(ctx, forwardRecord{
		action:     relay.SyncActionProductSync,
		platform:   relay.PlatformMenuPlatform,
		supplierID: cmd.SupplierID.String(),
		items:      len(cmd.Products),
	}, started, err)
	if err != nil {
		return nil, gatewayError(relay.PlatformMenuPlatform, "Failed to sync products to Menu Platform", err)
	}

	return &ProductSyncResult{
		SupplierID:           cmd.SupplierID.String(),
		ProductsCount:        len(cmd.Products),
		SyncedAt:             relay.FormatTimestamp(s.now()),
		MenuPlatformResponse: resp,
	}, nil
}

// UpdateAvailability forwards only the provided stock fields
func (s *ProductService) UpdateAvailability(ctx context.Context, cmd *UpdateAvailabilityCommand) (*AvailabilityResult, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	started := s.now()
	update := relay.NewAvailabilityUpdate(cmd.ProductID, cmd.SupplierID.String(), cmd.toFields(), started)

	resp, err := s.menu.UpdateAvailability(ctx, update)
	s.record(ctx, forwardRecord{
		action:      relay.SyncActionAvailabilityUpdate,
		platform:    relay.PlatformMenuPlatform,
		supplierID:  cmd.SupplierID.String(),
		referenceID: cmd.ProductID,
		items:       1,
	}, started, err)
	if err != nil {
		return nil, gatewayError(relay.PlatformMenuPlatform, "Failed to update product availability on Menu Platform", err)
	}

	return &AvailabilityResult{
		ProductID:            cmd.ProductID,
		SupplierID:           cmd.SupplierID.String(),
		Updates:              update.AvailabilityFields,
		UpdatedAt:            update.UpdatedAt,
		MenuPlatformResponse: resp,
	}, nil
}

// GetProduct fetches a product from the Supplier Portal and returns its public fields
func (s *ProductService) GetProduct(ctx context.Context, q *GetProductQuery) (*relay.ProductDetails, error) {
	if err := validateCommand(q); err != nil {
		return nil, err
	}

	raw, err := s.portal.GetProduct(ctx, q.ProductID, q.SupplierID)
	if err != nil {
		if errors.Is(err, relay.ErrPlatformNotFound) {
			return nil, relay.NewNotFoundError("Product not found", err)
		}
		return nil, gatewayError(relay.PlatformSupplierPortal, "Failed to fetch product from Supplier Portal", err)
	}

	details, err := relay.ProjectProduct(raw)
	if err != nil {
		return nil, gatewayError(relay.PlatformSupplierPortal, "Failed to fetch product from Supplier Portal", err)
	}
	return details, nil
}
