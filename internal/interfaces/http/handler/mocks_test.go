package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/supplierhub/relay/internal/domain/relay"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// MockSupplierPortal is a mock implementation of relay.SupplierPortal
type MockSupplierPortal struct {
	mock.Mock
}

func (m *MockSupplierPortal) SubmitOrder(ctx context.Context, order *relay.OrderSubmission) (json.RawMessage, error) {
	args := m.Called(ctx, order)
	return rawResult(args)
}

func (m *MockSupplierPortal) NotifyBackorder(ctx context.Context, notice *relay.BackorderNotice) (json.RawMessage, error) {
	args := m.Called(ctx, notice)
	return rawResult(args)
}

func (m *MockSupplierPortal) GetProduct(ctx context.Context, productID, supplierID string) (json.RawMessage, error) {
	args := m.Called(ctx, productID, supplierID)
	return rawResult(args)
}

func (m *MockSupplierPortal) GetOrder(ctx context.Context, orderID, supplierID string) (json.RawMessage, error) {
	args := m.Called(ctx, orderID, supplierID)
	return rawResult(args)
}

// MockMenuPlatform is a mock implementation of relay.MenuPlatform
type MockMenuPlatform struct {
	mock.Mock
}

func (m *MockMenuPlatform) SyncProducts(ctx context.Context, batch *relay.CatalogSync) (json.RawMessage, error) {
	args := m.Called(ctx, batch)
	return rawResult(args)
}

func (m *MockMenuPlatform) UpdateAvailability(ctx context.Context, update *relay.AvailabilityUpdate) (json.RawMessage, error) {
	args := m.Called(ctx, update)
	return rawResult(args)
}

// MockSyncLogRepository is a mock implementation of relay.SyncLogRepository
type MockSyncLogRepository struct {
	mock.Mock
}

func (m *MockSyncLogRepository) Save(ctx context.Context, entry *relay.SyncLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockSyncLogRepository) FindRecent(ctx context.Context, filter relay.SyncLogFilter) ([]relay.SyncLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]relay.SyncLog), args.Error(1)
}

func rawResult(args mock.Arguments) (json.RawMessage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// envelope mirrors dto.Response with raw data for field level assertions
type envelope struct {
	Status    int             `json:"status"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

func perform(t *testing.T, route, method, target string, body string, h gin.HandlerFunc) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	engine := gin.New()
	engine.Handle(method, route, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func requireEnvelope(t *testing.T, env envelope, status int, message string) {
	t.Helper()
	require.Equal(t, status, env.Status)
	require.Equal(t, message, env.Message)
	_, err := time.Parse(relay.TimestampLayout, env.Timestamp)
	require.NoError(t, err)
}

