package relay

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	cause := fmt.Errorf("post /api/orders/receive: %w", ErrPlatformRejected)
	err := NewGatewayError("Failed to create order in Supplier Portal", cause)

	assert.True(t, errors.Is(err, ErrPlatformRejected))
	assert.Contains(t, err.Error(), "GATEWAY")
	assert.True(t, IsKind(err, KindGateway))
	assert.False(t, IsKind(err, KindNotFound))

	wrapped := fmt.Errorf("relay: %w", err)
	assert.Same(t, err, AsError(wrapped))
}

func TestAsError_UnknownErrorBecomesInternal(t *testing.T) {
	re := AsError(errors.New("nil map"))

	assert.Equal(t, KindInternal, re.Kind)
	assert.Equal(t, "Internal server error", re.Message)
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("orderId", "orderId is required")

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "orderId", err.Field)
	assert.Equal(t, "VALIDATION: orderId is required", err.Error())
}

func TestKindConstructors(t *testing.T) {
	tests := []struct {
		err  *Error
		kind ErrorKind
	}{
		{NewUnauthorizedError("Invalid API key"), KindUnauthorized},
		{NewMisconfiguredError("Server configuration error: API key not configured"), KindMisconfigured},
		{NewRateLimitedError("Too many requests. Please try again later."), KindRateLimited},
		{NewNotFoundError("Order not found", ErrPlatformNotFound), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.True(t, IsKind(tt.err, tt.kind))
		})
	}
}
