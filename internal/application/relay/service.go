package relay

import (
	"context"
	"errors"
	"time"

	"github.com/supplierhub/relay/internal/domain/relay"
)

// SyncRecorder receives one audit entry per forwarded call. Implementations
// must not fail the relay: errors are theirs to log.
type SyncRecorder interface {
	Record(ctx context.Context, entry *relay.SyncLog)
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, *relay.SyncLog) {}

// Option configures a relay service
type Option func(*base)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(b *base) {
		b.now = now
	}
}

// WithSyncRecorder enables the sync log
func WithSyncRecorder(recorder SyncRecorder) Option {
	return func(b *base) {
		if recorder != nil {
			b.recorder = recorder
		}
	}
}

// base holds what every relay service shares
type base struct {
	now      func() time.Time
	recorder SyncRecorder
}

func newBase(opts []Option) base {
	b := base{
		now:      time.Now,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// forwardRecord describes one outbound call for the sync log
type forwardRecord struct {
	action       relay.SyncAction
	platform     relay.Platform
	supplierID   string
	restaurantID string
	referenceID  string
	items        int
}

func (b *base) record(ctx context.Context, rec forwardRecord, started time.Time, err error) {
	now := b.now()
	entry := relay.NewSyncLog(rec.action, rec.platform, rec.supplierID, rec.referenceID, rec.items, err, now.Sub(started), now)
	entry.RestaurantID = rec.restaurantID
	b.recorder.Record(ctx, entry)
}

// gatewayError classifies a failed platform call. Transport failures and
// unreadable responses share the "unable to communicate" message. Anything
// the platform rejected gets the operation-specific message. The platform
// client has already logged the failure.
func gatewayError(platform relay.Platform, failure string, err error) error {
	if errors.Is(err, relay.ErrPlatformUnavailable) || errors.Is(err, relay.ErrPlatformInvalidResponse) {
		return relay.NewGatewayError("Unable to communicate with "+platform.DisplayName(), err)
	}
	return relay.NewGatewayError(failure, err)
}
