package relay

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/supplierhub/relay/internal/domain/relay"
)

const productJSON = `{
	"id": "p-1", "name": "Olive Oil", "description": "Extra virgin", "price": 12.5,
	"currency": "USD", "category": "oils", "unit": "bottle"
}`

func TestProductService_SyncProducts(t *testing.T) {
	t.Run("remaps products and forwards one batch", func(t *testing.T) {
		menu := new(MockMenuPlatform)
		recorder := new(MockSyncRecorder)
		svc := NewProductService(menu, new(MockSupplierPortal), WithClock(fixedClock), WithSyncRecorder(recorder))

		var batch *relay.CatalogSync
		menu.On("SyncProducts", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { batch = args.Get(1).(*relay.CatalogSync) }).
			Return(json.RawMessage(`{"synced":2}`), nil).Once()
		recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *relay.SyncLog) bool {
			return e.Action == relay.SyncActionProductSync && e.ItemsSucceeded == 2
		})).Return()

		var cmd SyncProductsCommand
		decode(t, `{"supplierId":"sup-1","products":[`+productJSON+`,{
			"id": "p-2", "name": "Salt", "description": "Sea salt", "price": "3",
			"currency": "USD", "category": "spices", "unit": "kg",
			"stock": "40", "isAvailable": false, "minimumOrderQuantity": 5, "brand": "Maldon"
		}]}`, &cmd)

		result, err := svc.SyncProducts(context.Background(), &cmd)
		require.NoError(t, err)
		assert.Equal(t, 2, result.ProductsCount)
		assert.Equal(t, "2025-01-15T10:30:00.000Z", result.SyncedAt)

		require.NotNil(t, batch)
		require.Len(t, batch.Products, 2)
		first, second := batch.Products[0], batch.Products[1]
		assert.True(t, first.IsAvailable)
		assert.Equal(t, int64(0), first.Stock)
		assert.Equal(t, int64(relay.DefaultMinimumOrderQuantity), first.MinimumOrderQuantity)
		assert.Nil(t, first.Brand)
		assert.False(t, second.IsAvailable)
		assert.Equal(t, 3.0, second.Price)
		assert.Equal(t, int64(40), second.Stock)
		assert.Equal(t, int64(5), second.MinimumOrderQuantity)
		require.NotNil(t, second.Brand)
		assert.Equal(t, "Maldon", *second.Brand)

		menu.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("allows an empty catalog", func(t *testing.T) {
		menu := new(MockMenuPlatform)
		svc := NewProductService(menu, new(MockSupplierPortal))
		menu.On("SyncProducts", mock.Anything, mock.Anything).Return(nil, nil)

		var cmd SyncProductsCommand
		decode(t, `{"supplierId":"sup-1","products":[]}`, &cmd)

		result, err := svc.SyncProducts(context.Background(), &cmd)
		require.NoError(t, err)
		assert.Equal(t, 0, result.ProductsCount)
	})

	validationCases := []struct {
		name    string
		body    string
		message string
	}{
		{"missing supplierId", `{"products":[]}`, "supplierId is required"},
		{"missing products", `{"supplierId":"s"}`, "products array is required"},
		{"product without currency", `{"supplierId":"s","products":[{"id":"p","name":"n","description":"d","price":1,"category":"c","unit":"u"}]}`, "Product missing required field: currency"},
		{"zero price", `{"supplierId":"s","products":[{"id":"p","name":"n","description":"d","price":0,"currency":"USD","category":"c","unit":"u"}]}`, "Product missing required field: price"},
		{"negative price", `{"supplierId":"s","products":[{"id":"p","name":"n","description":"d","price":-2,"currency":"USD","category":"c","unit":"u"}]}`, "Product price must be a non-negative number"},
	}
	for _, tc := range validationCases {
		t.Run(tc.name, func(t *testing.T) {
			menu := new(MockMenuPlatform)
			svc := NewProductService(menu, new(MockSupplierPortal))

			var cmd SyncProductsCommand
			decode(t, tc.body, &cmd)

			_, err := svc.SyncProducts(context.Background(), &cmd)
			requireRelayError(t, err, relay.KindValidation, tc.message)
			menu.AssertNotCalled(t, "SyncProducts", mock.Anything, mock.Anything)
		})
	}

	t.Run("menu platform unreachable", func(t *testing.T) {
		menu := new(MockMenuPlatform)
		svc := NewProductService(menu, new(MockSupplierPortal))
		menu.On("SyncProducts", mock.Anything, mock.Anything).Return(nil, relay.ErrPlatformUnavailable)

		var cmd SyncProductsCommand
		decode(t, `{"supplierId":"s","products":[`+productJSON+`]}`, &cmd)

		_, err := svc.SyncProducts(context.Background(), &cmd)
		requireRelayError(t, err, relay.KindGateway, "Unable to communicate with Menu Platform")
	})
}

func TestProductService_UpdateAvailability(t *testing.T) {
	t.Run("forwards only provided fields", func(t *testing.T) {
		menu := new(MockMenuPlatform)
		svc := NewProductService(menu, new(MockSupplierPortal), WithClock(fixedClock))

		var update *relay.AvailabilityUpdate
		menu.On("UpdateAvailability", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { update = args.Get(1).(*relay.AvailabilityUpdate) }).
			Return(json.RawMessage(`{"ok":true}`), nil)

		cmd := UpdateAvailabilityCommand{ProductID: "p-1"}
		decode(t, `{"supplierId":"s-1","stockQuantity":12}`, &cmd)

		result, err := svc.UpdateAvailability(context.Background(), &cmd)
		require.NoError(t, err)
		assert.Equal(t, "p-1", result.ProductID)
		assert.Equal(t, "2025-01-15T10:30:00.000Z", result.UpdatedAt)

		require.NotNil(t, update)
		assert.Equal(t, "p-1", update.ProductID)
		body, err := json.Marshal(update)
		require.NoError(t, err)
		assert.JSONEq(t, `{"supplierId":"s-1","stockQuantity":12,"updatedAt":"2025-01-15T10:30:00.000Z"}`, string(body))
	})

	t.Run("forwards an explicit false", func(t *testing.T) {
		menu := new(MockMenuPlatform)
		svc := NewProductService(menu, new(MockSupplierPortal))
		menu.On("UpdateAvailability", mock.Anything, mock.MatchedBy(func(u *relay.AvailabilityUpdate) bool {
			return u.IsAvailable != nil && !*u.IsAvailable && u.StockQuantity == nil
		})).Return(json.RawMessage(`{}`), nil)

		cmd := UpdateAvailabilityCommand{ProductID: "p-1"}
		decode(t, `{"supplierId":"s-1","isAvailable":false}`, &cmd)

		_, err := svc.UpdateAvailability(context.Background(), &cmd)
		require.NoError(t, err)
		menu.AssertExpectations(t)
	})

	validationCases := []struct {
		name      string
		productID string
		body      string
		message   string
	}{
		{"missing product id", "", `{"supplierId":"s","stockQuantity":1}`, "Product ID is required"},
		{"missing supplierId", "p", `{"stockQuantity":1}`, "supplierId is required"},
		{"no fields", "p", `{"supplierId":"s"}`, "At least one of stockQuantity or isAvailable must be provided"},
		{"null fields", "p", `{"supplierId":"s","stockQuantity":null,"isAvailable":null}`, "At least one of stockQuantity or isAvailable must be provided"},
		{"negative stock", "p", `{"supplierId":"s","stockQuantity":-1}`, "stockQuantity must be a non-negative number"},
		{"text stock", "p", `{"supplierId":"s","stockQuantity":"many"}`, "stockQuantity must be a non-negative number"},
		{"string flag", "p", `{"supplierId":"s","isAvailable":"yes"}`, "isAvailable must be a boolean"},
	}
	for _, tc := range validationCases {
		t.Run(tc.name, func(t *testing.T) {
			menu := new(MockMenuPlatform)
			svc := NewProductService(menu, new(MockSupplierPortal))

			cmd := UpdateAvailabilityCommand{ProductID: tc.productID}
			decode(t, tc.body, &cmd)

			_, err := svc.UpdateAvailability(context.Background(), &cmd)
			requireRelayError(t, err, relay.KindValidation, tc.message)
			menu.AssertNotCalled(t, "UpdateAvailability", mock.Anything, mock.Anything)
		})
	}

	t.Run("rejected update", func(t *testing.T) {
		menu := new(MockMenuPlatform)
		svc := NewProductService(menu, new(MockSupplierPortal))
		menu.On("UpdateAvailability", mock.Anything, mock.Anything).Return(nil, relay.ErrPlatformRejected)

		cmd := UpdateAvailabilityCommand{ProductID: "p"}
		decode(t, `{"supplierId":"s","isAvailable":true}`, &cmd)

		_, err := svc.UpdateAvailability(context.Background(), &cmd)
		requireRelayError(t, err, relay.KindGateway, "Failed to update product availability on Menu Platform")
	})
}

func TestProductService_GetProduct(t *testing.T) {
	t.Run("requires supplierId", func(t *testing.T) {
		portal := new(MockSupplierPortal)
		svc := NewProductService(new(MockMenuPlatform), portal)

		_, err := svc.GetProduct(context.Background(), &GetProductQuery{ProductID: "p-1"})
		requireRelayError(t, err, relay.KindValidation, "supplierId query parameter is required")
		portal.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps downstream 404 to not found", func(t *testing.T) {
		portal := new(MockSupplierPortal)
		svc := NewProductService(new(MockMenuPlatform), portal)
		portal.On("GetProduct", mock.Anything, "p-1", "s-1").Return(nil, relay.ErrPlatformNotFound)

		_, err := svc.GetProduct(context.Background(), &GetProductQuery{ProductID: "p-1", SupplierID: "s-1"})
		requireRelayError(t, err, relay.KindNotFound, "Product not found")
	})

	t.Run("other failures are gateway errors", func(t *testing.T) {
		portal := new(MockSupplierPortal)
		svc := NewProductService(new(MockMenuPlatform), portal)
		portal.On("GetProduct", mock.Anything, "p-1", "s-1").Return(nil, relay.ErrPlatformRejected)

		_, err := svc.GetProduct(context.Background(), &GetProductQuery{ProductID: "p-1", SupplierID: "s-1"})
		requireRelayError(t, err, relay.KindGateway, "Failed to fetch product from Supplier Portal")
	})

	t.Run("projects public fields", func(t *testing.T) {
		portal := new(MockSupplierPortal)
		svc := NewProductService(new(MockMenuPlatform), portal)
		portal.On("GetProduct", mock.Anything, "p-1", "s-1").
			Return(json.RawMessage(`{"id":"p-1","unitPrice":4.2,"stockQuantity":9,"images":["a.png"],"costPrice":1.1}`), nil)

		details, err := svc.GetProduct(context.Background(), &GetProductQuery{ProductID: "p-1", SupplierID: "s-1"})
		require.NoError(t, err)
		body, err := json.Marshal(details)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"p-1","price":4.2,"stock":9,"imageUrl":"a.png"}`, string(body))
	})
}
