package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/supplierhub/relay/internal/domain/relay"
)

// SupplierPortalClient implements relay.SupplierPortal
type SupplierPortalClient struct {
	client *Client
}

// NewSupplierPortalClient wraps a client built for relay.PlatformSupplierPortal
func NewSupplierPortalClient(client *Client) *SupplierPortalClient {
	return &SupplierPortalClient{client: client}
}

// SubmitOrder creates an order in the Supplier Portal
func (s *SupplierPortalClient) SubmitOrder(ctx context.Context, order *relay.OrderSubmission) (json.RawMessage, error) {
	return s.client.do(ctx, call{
		operation: "submit_order",
		method:    http.MethodPost,
		path:      "/api/orders/receive",
		body:      order,
	})
}

// NotifyBackorder sends a backorder notice to the Supplier Portal
func (s *SupplierPortalClient) NotifyBackorder(ctx context.Context, notice *relay.BackorderNotice) (json.RawMessage, error) {
	return s.client.do(ctx, call{
		operation: "notify_backorder",
		method:    http.MethodPost,
		path:      "/api/orders/backorder",
		body:      notice,
	})
}

// GetProduct fetches one product document
func (s *SupplierPortalClient) GetProduct(ctx context.Context, productID, supplierID string) (json.RawMessage, error) {
	return s.client.do(ctx, call{
		operation: "get_product",
		method:    http.MethodGet,
		path:      "/api/products/" + url.PathEscape(productID),
		query:     url.Values{"supplierId": {supplierID}},
	})
}

// GetOrder fetches one order document
func (s *SupplierPortalClient) GetOrder(ctx context.Context, orderID, supplierID string) (json.RawMessage, error) {
	return s.client.do(ctx, call{
		operation: "get_order",
		method:    http.MethodGet,
		path:      "/api/orders/" + url.PathEscape(orderID),
		query:     url.Values{"supplierId": {supplierID}},
	})
}

var _ relay.SupplierPortal = (*SupplierPortalClient)(nil)
