package relay

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/supplierhub/relay/internal/domain/relay"
)

var fixedNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// MockSupplierPortal is a mock implementation of relay.SupplierPortal
type MockSupplierPortal struct {
	mock.Mock
}

func (m *MockSupplierPortal) SubmitOrder(ctx context.Context, order *relay.OrderSubmission) (json.RawMessage, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockSupplierPortal) NotifyBackorder(ctx context.Context, notice *relay.BackorderNotice) (json.RawMessage, error) {
	args := m.Called(ctx, notice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockSupplierPortal) GetProduct(ctx context.Context, productID, supplierID string) (json.RawMessage, error) {
	args := m.Called(ctx, productID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockSupplierPortal) GetOrder(ctx context.Context, orderID, supplierID string) (json.RawMessage, error) {
	args := m.Called(ctx, orderID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockMenuPlatform is a mock implementation of relay.MenuPlatform
type MockMenuPlatform struct {
	mock.Mock
}

func (m *MockMenuPlatform) SyncProducts(ctx context.Context, batch *relay.CatalogSync) (json.RawMessage, error) {
	args := m.Called(ctx, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockMenuPlatform) UpdateAvailability(ctx context.Context, update *relay.AvailabilityUpdate) (json.RawMessage, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockSyncRecorder is a mock implementation of SyncRecorder
type MockSyncRecorder struct {
	mock.Mock
}

func (m *MockSyncRecorder) Record(ctx context.Context, entry *relay.SyncLog) {
	m.Called(ctx, entry)
}

// MockSyncLogRepository is a mock implementation of relay.SyncLogRepository
type MockSyncLogRepository struct {
	mock.Mock
}

func (m *MockSyncLogRepository) Save(ctx context.Context, entry *relay.SyncLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSyncLogRepository) FindRecent(ctx context.Context, filter relay.SyncLogFilter) ([]relay.SyncLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]relay.SyncLog), args.Error(1)
}

// decode fills dst from a JSON request body the way the handlers do
func decode(t *testing.T, body string, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), dst))
}

func requireRelayError(t *testing.T, err error, kind relay.ErrorKind, message string) {
	t.Helper()
	require.Error(t, err)
	re := relay.AsError(err)
	require.Equal(t, kind, re.Kind, "unexpected kind for %v", err)
	require.Equal(t, message, re.Message)
}
