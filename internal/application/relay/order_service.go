package relay

import (
	"context"
	"errors"

	"github.com/supplierhub/relay/internal/domain/relay"
)

// OrderService relays orders and backorder notices from the Menu Platform
// to the Supplier Portal and serves order lookups.
type OrderService struct {
	base
	portal relay.SupplierPortal
}

// NewOrderService creates a new OrderService
func NewOrderService(portal relay.SupplierPortal, opts ...Option) *OrderService {
	return &OrderService{
		base:   newBase(opts),
		portal: portal,
	}
}

// SubmitOrder validates an incoming order, computes its totals and creates
// it in the Supplier Portal.
func (s *OrderService) SubmitOrder(ctx context.Context, cmd *SubmitOrderCommand) (*OrderRelayResult, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	started := s.now()
	submission := cmd.toOrder().Submission(started)

	resp, err := s.portal.SubmitOrder(ctx, submission)
	s.record(ctx, forwardRecord{
		action:       relay.SyncActionOrderRelay,
		platform:     relay.PlatformSupplierPortal,
		supplierID:   cmd.SupplierID.String(),
		restaurantID: cmd.RestaurantID.String(),
		referenceID:  cmd.OrderID.String(),
		items:        len(cmd.Items),
	}, started, err)
	if err != nil {
		return nil, gatewayError(relay.PlatformSupplierPortal, "Failed to create order in Supplier Portal", err)
	}

	return &OrderRelayResult{
		OrderID:                cmd.OrderID.String(),
		RestaurantID:           cmd.RestaurantID.String(),
		SupplierID:             cmd.SupplierID.String(),
		ItemsCount:             len(cmd.Items),
		Total:                  submission.Total,
		Status:                 submission.Status,
		CreatedAt:              relay.FormatTimestamp(s.now()),
		SupplierPortalResponse: resp,
	}, nil
}

// NotifyBackorder tells the Supplier Portal which order lines cannot be filled
func (s *OrderService) NotifyBackorder(ctx context.Context, cmd *NotifyBackorderCommand) (*BackorderResult, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	started := s.now()
	backorder := cmd.toBackorder()

	resp, err := s.portal.NotifyBackorder(ctx, backorder.Notice(started))
	s.record(ctx, forwardRecord{
		action:       relay.SyncActionBackorderNotice,
		platform:     relay.PlatformSupplierPortal,
		supplierID:   cmd.SupplierID.String(),
		restaurantID: cmd.RestaurantID.String(),
		referenceID:  cmd.OrderID.String(),
		items:        len(cmd.BackorderedItems),
	}, started, err)
	if err != nil {
		return nil, gatewayError(relay.PlatformSupplierPortal, "Failed to send backorder notification to Supplier Portal", err)
	}

	return &BackorderResult{
		OrderID:                cmd.OrderID.String(),
		RestaurantID:           cmd.RestaurantID.String(),
		SupplierID:             cmd.SupplierID.String(),
		BackorderedItemsCount:  len(cmd.BackorderedItems),
		TotalBackorderQuantity: backorder.TotalBackorderQuantity().InexactFloat64(),
		NotificationSentAt:     relay.FormatTimestamp(s.now()),
		SupplierPortalResponse: resp,
	}, nil
}

// GetOrder fetches an order from the Supplier Portal and returns its public fields
func (s *OrderService) GetOrder(ctx context.Context, q *GetOrderQuery) (*relay.OrderDetails, error) {
	if err := validateCommand(q); err != nil {
		return nil, err
	}

	raw, err := s.portal.GetOrder(ctx, q.OrderID, q.SupplierID)
	if err != nil {
		if errors.Is(err, relay.ErrPlatformNotFound) {
			return nil, relay.NewNotFoundError("Order not found", err)
		}
		return nil, gatewayError(relay.PlatformSupplierPortal, "Failed to fetch order from Supplier Portal", err)
	}

	details, err := relay.ProjectOrder(raw)
	if err != nil {
		return nil, gatewayError(relay.PlatformSupplierPortal, "Failed to fetch order from Supplier Portal", err)
	}
	return details, nil
}
