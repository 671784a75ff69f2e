package relay

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SyncAction names the relay operation a sync log entry records
type SyncAction string

const (
	SyncActionOrderRelay         SyncAction = "order_relay"
	SyncActionBackorderNotice    SyncAction = "backorder_notice"
	SyncActionProductSync        SyncAction = "product_sync"
	SyncActionAvailabilityUpdate SyncAction = "availability_update"
)

// IsValid returns true for known actions
func (a SyncAction) IsValid() bool {
	switch a {
	case SyncActionOrderRelay, SyncActionBackorderNotice, SyncActionProductSync, SyncActionAvailabilityUpdate:
		return true
	}
	return false
}

// SyncStatus is the outcome of a forwarded call
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncLog is an audit record of one forwarded call
type SyncLog struct {
	ID             uuid.UUID
	Action         SyncAction
	Platform       Platform
	SupplierID     string
	RestaurantID   string
	ReferenceID    string
	Status         SyncStatus
	ItemsProcessed int
	ItemsSucceeded int
	ItemsFailed    int
	Error          string
	Duration       time.Duration
	CreatedAt      time.Time
}

// NewSyncLog records the outcome of a forwarded call. A non-nil cause marks
// every item as failed.
func NewSyncLog(action SyncAction, platform Platform, supplierID, referenceID string, items int, cause error, duration time.Duration, now time.Time) *SyncLog {
	entry := &SyncLog{
		ID:             uuid.New(),
		Action:         action,
		Platform:       platform,
		SupplierID:     supplierID,
		ReferenceID:    referenceID,
		Status:         SyncStatusSuccess,
		ItemsProcessed: items,
		ItemsSucceeded: items,
		Duration:       duration,
		CreatedAt:      now.UTC(),
	}
	if cause != nil {
		entry.Status = SyncStatusFailed
		entry.ItemsSucceeded = 0
		entry.ItemsFailed = items
		entry.Error = cause.Error()
	}
	return entry
}

// SyncLogFilter narrows a sync log query
type SyncLogFilter struct {
	SupplierID string
	Action     SyncAction
	Status     SyncStatus
	Limit      int
}

// SyncLogRepository persists sync log entries
type SyncLogRepository interface {
	Save(ctx context.Context, entry *SyncLog) error
	FindRecent(ctx context.Context, filter SyncLogFilter) ([]SyncLog, error)
}
