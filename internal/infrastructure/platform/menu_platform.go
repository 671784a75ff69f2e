package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/supplierhub/relay/internal/domain/relay"
)

// MenuPlatformClient implements relay.MenuPlatform
type MenuPlatformClient struct {
	client *Client
}

// NewMenuPlatformClient wraps a client built for relay.PlatformMenuPlatform
func NewMenuPlatformClient(client *Client) *MenuPlatformClient {
	return &MenuPlatformClient{client: client}
}

// SyncProducts pushes a catalog batch in one call
func (m *MenuPlatformClient) SyncProducts(ctx context.Context, batch *relay.CatalogSync) (json.RawMessage, error) {
	return m.client.do(ctx, call{
		operation: "sync_products",
		method:    http.MethodPost,
		path:      "/api/suppliers/products/sync",
		body:      batch,
	})
}

// UpdateAvailability patches stock fields of one product
func (m *MenuPlatformClient) UpdateAvailability(ctx context.Context, update *relay.AvailabilityUpdate) (json.RawMessage, error) {
	return m.client.do(ctx, call{
		operation: "update_availability",
		method:    http.MethodPatch,
		path:      "/api/suppliers/products/" + url.PathEscape(update.ProductID) + "/availability",
		body:      update,
	})
}

var _ relay.MenuPlatform = (*MenuPlatformClient)(nil)
